package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/antonkarev/healthhub/internal/apiclient"
	"github.com/antonkarev/healthhub/internal/domain"
	"github.com/antonkarev/healthhub/internal/logger"
	"github.com/antonkarev/healthhub/internal/session"
	"github.com/antonkarev/healthhub/internal/utils"
	"github.com/antonkarev/healthhub/internal/validation"
)

const (
	statusHighRisk = "High Risk"
	statusLowRisk  = "Low Risk/Save"
)

// HealthService runs the health risk workflow: validate, transform,
// predict, record.
type HealthService struct {
	api   *apiclient.Client
	sess  *session.Store
	guard inflightGuard
}

func NewHealthService(api *apiclient.Client, sess *session.Store) *HealthService {
	return &HealthService{api: api, sess: sess}
}

func (s *HealthService) Assess(ctx context.Context, in domain.HealthInput) (*domain.HealthResult, error) {
	if err := s.guard.begin(); err != nil {
		return nil, err
	}
	defer s.guard.end()

	if err := validation.ValidateHealthInput(in); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"age":          in.Age,
		"weight":       in.Weight,
		"height":       in.Height,
		"exercise":     in.Exercise,
		"sleep":        in.Sleep,
		"sugar_intake": in.SugarIntake,
		"bmi":          in.BMI,
		"smoking":      utils.BoolToFlag(in.Smoking),
		"alcohol":      utils.BoolToFlag(in.Alcohol),
	}
	for column, flag := range utils.OneHotProfession(in.Profession) {
		payload[column] = flag
	}

	var result domain.HealthResult
	if err := s.api.PostJSON(ctx, "/health-risk/predict", payload, &result); err != nil {
		return nil, err
	}

	// The status string must agree with the binary prediction. A backend
	// that disagrees is overridden by the prediction.
	if result.RiskPrediction == 1 {
		if !strings.Contains(result.RiskStatus, "High") {
			result.RiskStatus = statusHighRisk
		}
	} else if result.RiskStatus == "" || strings.Contains(result.RiskStatus, "High") {
		result.RiskStatus = statusLowRisk
	}

	s.record(in, result)
	return &result, nil
}

func (s *HealthService) record(in domain.HealthInput, result domain.HealthResult) {
	user := s.sess.User()
	if user == nil {
		return
	}
	s.sess.AddAssessment(domain.HealthAssessment{
		ID:     uuid.NewString(),
		UserID: user.ID,
		Type:   domain.AssessmentHealthRisk,
		Input: map[string]any{
			"age":          in.Age,
			"weight":       in.Weight,
			"height":       in.Height,
			"exercise":     in.Exercise,
			"sleep":        in.Sleep,
			"sugar_intake": in.SugarIntake,
			"bmi":          in.BMI,
			"smoking":      in.Smoking,
			"alcohol":      in.Alcohol,
			"profession":   string(in.Profession),
		},
		Result: map[string]any{
			"riskPrediction": result.RiskPrediction,
			"riskStatus":     result.RiskStatus,
		},
		CreatedAt: time.Now(),
	})
	logger.Info("Health risk assessment recorded", "prediction", result.RiskPrediction)
}
