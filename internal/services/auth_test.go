package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/antonkarev/healthhub/internal/domain"
)

func validRegistrationInput() domain.Registration {
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

func TestRegisterPayloadContract(t *testing.T) {
	var payload map[string]any
	client, _ := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Errorf("path = %s", r.URL.Path)
		}
		payload = decodeBody(t, r)
		json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]any{"id": "u-2", "role": "patient"}, "token": "tok-2",
		})
	}))

	svc := NewAuthService(client)
	resp, err := svc.Register(context.Background(), validRegistrationInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token != "tok-2" || resp.User.ID != "u-2" {
		t.Errorf("response = %+v", resp)
	}

	if payload["dateOfBirth"] != "1990-04-02" {
		t.Errorf("dateOfBirth = %v, want 1990-04-02", payload["dateOfBirth"])
	}
	if _, present := payload["confirmPassword"]; present {
		t.Error("confirmPassword must never be transmitted")
	}
	if payload["patientId"] != "PAT-001" {
		t.Errorf("patientId = %v", payload["patientId"])
	}
}

func TestRegisterMismatchedPasswordsNeverReachNetwork(t *testing.T) {
	requests := 0
	client, _ := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	svc := NewAuthService(client)
	reg := validRegistrationInput()
	reg.ConfirmPassword = "different123"
	if _, err := svc.Register(context.Background(), reg); err == nil {
		t.Fatal("expected validation error")
	}
	if requests != 0 {
		t.Errorf("expected no network call, got %d", requests)
	}
}

func TestLoginInvalidInputNeverReachesNetwork(t *testing.T) {
	requests := 0
	client, _ := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	svc := NewAuthService(client)
	creds := domain.Credentials{Email: "not-an-email", Password: "short"}
	if _, err := svc.Login(context.Background(), creds); err == nil {
		t.Fatal("expected validation error")
	}
	if requests != 0 {
		t.Errorf("expected no network call, got %d", requests)
	}
}
