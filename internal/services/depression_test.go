package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/antonkarev/healthhub/internal/domain"
	apperrors "github.com/antonkarev/healthhub/internal/errors"
)

func validDepressionInput() domain.DepressionInput {
	return domain.DepressionInput{
		Gender:            "Female",
		Age:               30,
		Profession:        "Engineer",
		SleepDuration:     7,
		DietaryHabits:     "Healthy",
		SuicidalThoughts:  false,
		WorkHours:         8,
		FinancialStress:   5,
		FamilyHistory:     true,
		PressureLevel:     5,
		SatisfactionLevel: 5,
	}
}

func TestDepressionAssessPayloadShape(t *testing.T) {
	var payload map[string]any
	client, sess := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/depression/assess" {
			t.Errorf("path = %s", r.URL.Path)
		}
		payload = decodeBody(t, r)
		json.NewEncoder(w).Encode(map[string]any{
			"riskPrediction": 0, "probability": 0.12, "riskStatus": "Low Risk",
		})
	}))

	svc := NewDepressionService(client, sess)
	result, err := svc.Assess(context.Background(), validDepressionInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Probability != 0.12 {
		t.Errorf("probability = %v", result.Probability)
	}

	if payload["succide"] != "No" {
		t.Errorf("succide = %v, want No", payload["succide"])
	}
	if payload["family"] != "Yes" {
		t.Errorf("family = %v, want Yes", payload["family"])
	}
	if payload["work_hours"] != float64(8) {
		t.Errorf("work_hours = %v", payload["work_hours"])
	}
}

func TestDepressionAssess503IsModelUnavailable(t *testing.T) {
	client, sess := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	svc := NewDepressionService(client, sess)
	_, err := svc.Assess(context.Background(), validDepressionInput())
	if !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatal("expected AppError")
	}
	if appErr.Message == "" || appErr.Code != "MODEL_UNAVAILABLE" {
		t.Errorf("unexpected error detail: %+v", appErr)
	}
}

func TestDepressionAssess500IsNotModelUnavailable(t *testing.T) {
	client, sess := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	svc := NewDepressionService(client, sess)
	_, err := svc.Assess(context.Background(), validDepressionInput())
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrModelUnavailable) {
		t.Error("a generic server error must stay distinct from model unavailable")
	}
}

func TestDepressionAssessValidationBlocksRequest(t *testing.T) {
	requests := 0
	client, sess := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	svc := NewDepressionService(client, sess)
	in := validDepressionInput()
	in.Age = 12
	if _, err := svc.Assess(context.Background(), in); err == nil {
		t.Fatal("expected validation error")
	}
	if requests != 0 {
		t.Errorf("expected no network call, got %d", requests)
	}
}
