package validation

import (
	"testing"
	"time"

	"github.com/antonkarev/healthhub/internal/domain"
)

func validRegistration() domain.Registration {
	return domain.Registration{
		FirstName:        "Jane",
		LastName:         "Doe",
		Email:            "jane@example.com",
		Phone:            "5551234567",
		Address:          "12 Main Street",
		EmergencyContact: "5559876543",
		DateOfBirth:      time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC),
		Gender:           domain.GenderFemale,
		BloodType:        domain.BloodOPos,
		PatientID:        "PAT-001",
		Password:         "supersecret1",
		ConfirmPassword:  "supersecret1",
	}
}

func TestValidateRegistration(t *testing.T) {
	t.Run("valid input passes", func(t *testing.T) {
		if err := ValidateRegistration(validRegistration()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("password mismatch reports confirmPassword", func(t *testing.T) {
		reg := validRegistration()
		reg.ConfirmPassword = "different123"
		err := ValidateRegistration(reg)
		if err == nil {
			t.Fatal("expected error")
		}
		fieldErrs, ok := AsFieldErrors(err)
		if !ok {
			t.Fatalf("expected FieldErrors, got %T", err)
		}
		if fieldErrs["confirmPassword"] != "Passwords don't match" {
			t.Errorf("wrong message: %q", fieldErrs["confirmPassword"])
		}
	})

	t.Run("every failing field gets its own message", func(t *testing.T) {
		reg := validRegistration()
		reg.FirstName = "J"
		reg.Email = "not-an-email"
		reg.Phone = "123"
		err := ValidateRegistration(reg)
		fieldErrs, ok := AsFieldErrors(err)
		if !ok {
			t.Fatalf("expected FieldErrors, got %T", err)
		}
		for _, field := range []string{"firstName", "email", "phone"} {
			if fieldErrs[field] == "" {
				t.Errorf("missing message for %s", field)
			}
		}
	})
}

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name      string
		creds     domain.Credentials
		wantField string
	}{
		{"valid", domain.Credentials{Email: "a@b.co", Password: "longenough"}, ""},
		{"bad email", domain.Credentials{Email: "nope", Password: "longenough"}, "email"},
		{"short password", domain.Credentials{Email: "a@b.co", Password: "short"}, "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogin(tt.creds)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			fieldErrs, ok := AsFieldErrors(err)
			if !ok {
				t.Fatalf("expected FieldErrors, got %T", err)
			}
			if fieldErrs[tt.wantField] == "" {
				t.Errorf("expected message for %s, got %v", tt.wantField, fieldErrs)
			}
		})
	}
}

func validHealthInput() domain.HealthInput {
	return domain.HealthInput{
		Age:         34,
		Weight:      70,
		Height:      175,
		Exercise:    1,
		Sleep:       7,
		SugarIntake: 30,
		BMI:         22.9,
		Profession:  domain.ProfessionEngineer,
	}
}

func TestValidateHealthInputAgeBounds(t *testing.T) {
	tests := []struct {
		name    string
		age     float64
		wantErr bool
	}{
		{"lower bound", 0, false},
		{"upper bound", 150, false},
		{"negative", -1, true},
		{"too old", 151, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validHealthInput()
			in.Age = tt.age
			err := ValidateHealthInput(in)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func validDepressionInput() domain.DepressionInput {
	return domain.DepressionInput{
		Gender:            "Female",
		Age:               30,
		Profession:        "Engineer",
		SleepDuration:     7,
		DietaryHabits:     "Healthy",
		WorkHours:         8,
		FinancialStress:   5,
		PressureLevel:     5,
		SatisfactionLevel: 5,
	}
}

func TestValidateDepressionInput(t *testing.T) {
	t.Run("valid input passes", func(t *testing.T) {
		if err := ValidateDepressionInput(validDepressionInput()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("minimum age is 13", func(t *testing.T) {
		in := validDepressionInput()
		in.Age = 12
		err := ValidateDepressionInput(in)
		fieldErrs, ok := AsFieldErrors(err)
		if !ok || fieldErrs["age"] == "" {
			t.Fatalf("expected age error, got %v", err)
		}
	})

	t.Run("scale bounds are 1-10", func(t *testing.T) {
		in := validDepressionInput()
		in.FinancialStress = 0
		in.PressureLevel = 11
		err := ValidateDepressionInput(in)
		fieldErrs, ok := AsFieldErrors(err)
		if !ok {
			t.Fatalf("expected FieldErrors, got %T", err)
		}
		if fieldErrs["financialStress"] == "" || fieldErrs["pressureLevel"] == "" {
			t.Errorf("expected both scale errors, got %v", fieldErrs)
		}
	})
}
