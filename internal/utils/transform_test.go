package utils

import (
	"testing"
	"time"

	"github.com/antonkarev/healthhub/internal/domain"
)

func TestOneHotProfession(t *testing.T) {
	encoded := OneHotProfession(domain.ProfessionEngineer)

	if encoded["profession_engineer"] != 1 {
		t.Errorf("profession_engineer = %d, want 1", encoded["profession_engineer"])
	}
	for column, flag := range encoded {
		if column == "profession_engineer" {
			continue
		}
		if flag != 0 {
			t.Errorf("%s = %d, want 0", column, flag)
		}
	}
	if len(encoded) != 7 {
		t.Errorf("expected 7 columns, got %d", len(encoded))
	}
}

func TestOneHotProfessionOfficeWorker(t *testing.T) {
	encoded := OneHotProfession(domain.ProfessionOfficeWorker)
	if encoded["profession_office_worker"] != 1 {
		t.Errorf("profession_office_worker = %d, want 1", encoded["profession_office_worker"])
	}
}

func TestFormatDateForAPI(t *testing.T) {
	date := time.Date(1990, 4, 2, 13, 45, 0, 0, time.UTC)
	if got := FormatDateForAPI(date); got != "1990-04-02" {
		t.Errorf("FormatDateForAPI = %q, want %q", got, "1990-04-02")
	}
}

func TestYesNo(t *testing.T) {
	if YesNo(true) != "Yes" || YesNo(false) != "No" {
		t.Error("YesNo mapping is wrong")
	}
}
