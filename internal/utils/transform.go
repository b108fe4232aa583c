package utils

import (
	"time"

	"github.com/antonkarev/healthhub/internal/domain"
)

// OneHotProfession expands a profession category into the seven boolean
// columns the health risk model was trained on. Exactly one column is 1.
func OneHotProfession(p domain.Profession) map[string]int {
	return map[string]int{
		"profession_doctor":        BoolToFlag(p == domain.ProfessionDoctor),
		"profession_driver":        BoolToFlag(p == domain.ProfessionDriver),
		"profession_engineer":      BoolToFlag(p == domain.ProfessionEngineer),
		"profession_farmer":        BoolToFlag(p == domain.ProfessionFarmer),
		"profession_office_worker": BoolToFlag(p == domain.ProfessionOfficeWorker),
		"profession_student":       BoolToFlag(p == domain.ProfessionStudent),
		"profession_teacher":       BoolToFlag(p == domain.ProfessionTeacher),
	}
}

// FormatDateForAPI renders a date the way the backend expects it.
func FormatDateForAPI(t time.Time) string {
	return t.Format("2006-01-02")
}

// BoolToFlag converts a boolean into the 0/1 flags the prediction
// endpoints expect.
func BoolToFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// YesNo converts a boolean into the "Yes"/"No" strings the depression
// endpoint expects.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
