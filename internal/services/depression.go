package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/antonkarev/healthhub/internal/apiclient"
	"github.com/antonkarev/healthhub/internal/domain"
	apperrors "github.com/antonkarev/healthhub/internal/errors"
	"github.com/antonkarev/healthhub/internal/logger"
	"github.com/antonkarev/healthhub/internal/session"
	"github.com/antonkarev/healthhub/internal/utils"
	"github.com/antonkarev/healthhub/internal/validation"
)

// ErrModelUnavailable is the named condition for a 503 from the depression
// endpoint: the model is retired server-side, retrying will not help.
var ErrModelUnavailable = apperrors.New(apperrors.ErrorTypeServer, "MODEL_UNAVAILABLE",
	"The depression assessment model is currently unavailable. This feature requires the backend model to be retrained with the current scikit-learn version. Please contact the system administrator.")

// DepressionService runs the depression assessment workflow.
type DepressionService struct {
	api   *apiclient.Client
	sess  *session.Store
	guard inflightGuard
}

func NewDepressionService(api *apiclient.Client, sess *session.Store) *DepressionService {
	return &DepressionService{api: api, sess: sess}
}

func (s *DepressionService) Assess(ctx context.Context, in domain.DepressionInput) (*domain.DepressionResult, error) {
	if err := s.guard.begin(); err != nil {
		return nil, err
	}
	defer s.guard.end()

	if err := validation.ValidateDepressionInput(in); err != nil {
		return nil, err
	}

	// Field names match what the model was trained against, including the
	// backend's "succide" spelling.
	payload := map[string]any{
		"gender":       in.Gender,
		"age":          in.Age,
		"profession":   in.Profession,
		"sleep":        in.SleepDuration,
		"dietary":      in.DietaryHabits,
		"succide":      utils.YesNo(in.SuicidalThoughts),
		"work_hours":   in.WorkHours,
		"financial":    in.FinancialStress,
		"family":       utils.YesNo(in.FamilyHistory),
		"pressure":     in.PressureLevel,
		"satisfaction": in.SatisfactionLevel,
	}

	var result domain.DepressionResult
	if err := s.api.PostJSON(ctx, "/depression/assess", payload, &result); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Status == 503 {
			return nil, ErrModelUnavailable
		}
		return nil, err
	}

	if result.RiskPrediction == 1 {
		if !strings.Contains(result.RiskStatus, "High") {
			result.RiskStatus = "High Risk"
		}
	} else if result.RiskStatus == "" || strings.Contains(result.RiskStatus, "High") {
		result.RiskStatus = "Low Risk"
	}

	s.record(in, result)
	return &result, nil
}

func (s *DepressionService) record(in domain.DepressionInput, result domain.DepressionResult) {
	user := s.sess.User()
	if user == nil {
		return
	}
	s.sess.AddAssessment(domain.HealthAssessment{
		ID:     uuid.NewString(),
		UserID: user.ID,
		Type:   domain.AssessmentDepression,
		Input: map[string]any{
			"gender":            in.Gender,
			"age":               in.Age,
			"profession":        in.Profession,
			"sleepDuration":     in.SleepDuration,
			"dietaryHabits":     in.DietaryHabits,
			"suicidalThoughts":  in.SuicidalThoughts,
			"workHours":         in.WorkHours,
			"financialStress":   in.FinancialStress,
			"familyHistory":     in.FamilyHistory,
			"pressureLevel":     in.PressureLevel,
			"satisfactionLevel": in.SatisfactionLevel,
		},
		Result: map[string]any{
			"riskPrediction": result.RiskPrediction,
			"probability":    result.Probability,
			"riskStatus":     result.RiskStatus,
		},
		CreatedAt: time.Now(),
	})
	logger.Info("Depression assessment recorded",
		"prediction", result.RiskPrediction, "probability", result.Probability)
}
