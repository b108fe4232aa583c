package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/antonkarev/healthhub/internal/domain"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors collects every failing field with its own message, so a form
// can annotate each input instead of showing only the first problem.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = fmt.Sprintf("%s: %s", field, f[field])
	}
	return strings.Join(parts, "; ")
}

// AsFieldErrors unwraps err into FieldErrors if it is one.
func AsFieldErrors(err error) (FieldErrors, bool) {
	fe, ok := err.(FieldErrors)
	return fe, ok
}

func (f FieldErrors) orNil() error {
	if len(f) == 0 {
		return nil
	}
	return f
}

// ValidateLogin checks the login form.
func ValidateLogin(creds domain.Credentials) error {
	errs := FieldErrors{}
	if !emailRegex.MatchString(creds.Email) {
		errs["email"] = "Invalid email address"
	}
	if len(creds.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters"
	}
	return errs.orNil()
}

// ValidateRegistration checks the registration form, including the
// confirm-password cross-field rule.
func ValidateRegistration(reg domain.Registration) error {
	errs := FieldErrors{}
	if len(reg.FirstName) < 2 {
		errs["firstName"] = "First name must be at least 2 characters"
	}
	if len(reg.LastName) < 2 {
		errs["lastName"] = "Last name must be at least 2 characters"
	}
	if !emailRegex.MatchString(reg.Email) {
		errs["email"] = "Invalid email address"
	}
	if len(reg.Phone) < 10 {
		errs["phone"] = "Phone number must be at least 10 digits"
	}
	if len(reg.Address) < 5 {
		errs["address"] = "Address must be at least 5 characters"
	}
	if len(reg.EmergencyContact) < 10 {
		errs["emergencyContact"] = "Emergency contact must be at least 10 digits"
	}
	if reg.DateOfBirth.IsZero() {
		errs["dateOfBirth"] = "Date of birth is required"
	}
	if !isGender(reg.Gender) {
		errs["gender"] = "Gender is required"
	}
	if !isBloodType(reg.BloodType) {
		errs["bloodType"] = "Blood type is required"
	}
	if len(reg.PatientID) < 3 {
		errs["patientId"] = "Patient ID must be at least 3 characters"
	}
	if len(reg.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters"
	}
	if reg.Password != reg.ConfirmPassword {
		errs["confirmPassword"] = "Passwords don't match"
	}
	return errs.orNil()
}

// ValidateHealthInput checks the health risk form.
func ValidateHealthInput(in domain.HealthInput) error {
	errs := FieldErrors{}
	if in.Age < 0 || in.Age > 150 {
		errs["age"] = "Age must be between 0 and 150"
	}
	if in.Weight < 0 || in.Weight > 300 {
		errs["weight"] = "Weight must be between 0 and 300 kg"
	}
	if in.Height < 0 || in.Height > 300 {
		errs["height"] = "Height must be between 0 and 300 cm"
	}
	if in.Exercise < 0 || in.Exercise > 24 {
		errs["exercise"] = "Exercise hours must be between 0 and 24"
	}
	if in.Sleep < 0 || in.Sleep > 24 {
		errs["sleep"] = "Sleep hours must be between 0 and 24"
	}
	if in.SugarIntake < 0 {
		errs["sugarIntake"] = "Sugar intake must be positive"
	}
	if in.BMI < 0 || in.BMI > 100 {
		errs["bmi"] = "BMI must be between 0 and 100"
	}
	if !isProfession(in.Profession) {
		errs["profession"] = "Profession is required"
	}
	return errs.orNil()
}

// ValidateDepressionInput checks the depression assessment form.
func ValidateDepressionInput(in domain.DepressionInput) error {
	errs := FieldErrors{}
	if strings.TrimSpace(in.Gender) == "" {
		errs["gender"] = "Gender is required"
	}
	if in.Age < 13 {
		errs["age"] = "Age must be at least 13"
	} else if in.Age > 150 {
		errs["age"] = "Age must be less than 150"
	}
	if strings.TrimSpace(in.Profession) == "" {
		errs["profession"] = "Profession/Status is required"
	}
	if in.SleepDuration < 0 {
		errs["sleepDuration"] = "Sleep duration must be positive"
	} else if in.SleepDuration > 24 {
		errs["sleepDuration"] = "Sleep duration cannot exceed 24 hours"
	}
	if strings.TrimSpace(in.DietaryHabits) == "" {
		errs["dietaryHabits"] = "Dietary habits are required"
	}
	if in.WorkHours < 0 {
		errs["workHours"] = "Work hours must be positive"
	} else if in.WorkHours > 24 {
		errs["workHours"] = "Work hours cannot exceed 24"
	}
	if in.FinancialStress < 1 || in.FinancialStress > 10 {
		errs["financialStress"] = "Financial stress level must be between 1 and 10"
	}
	if in.PressureLevel < 1 || in.PressureLevel > 10 {
		errs["pressureLevel"] = "Pressure level must be between 1 and 10"
	}
	if in.SatisfactionLevel < 1 || in.SatisfactionLevel > 10 {
		errs["satisfactionLevel"] = "Satisfaction level must be between 1 and 10"
	}
	return errs.orNil()
}

func isGender(g domain.Gender) bool {
	for _, known := range domain.Genders() {
		if g == known {
			return true
		}
	}
	return false
}

func isBloodType(bt domain.BloodType) bool {
	for _, known := range domain.BloodTypes() {
		if bt == known {
			return true
		}
	}
	return false
}

func isProfession(p domain.Profession) bool {
	for _, known := range domain.Professions() {
		if p == known {
			return true
		}
	}
	return false
}
