package services

import (
	"context"

	"github.com/antonkarev/healthhub/internal/apiclient"
	"github.com/antonkarev/healthhub/internal/domain"
	"github.com/antonkarev/healthhub/internal/utils"
	"github.com/antonkarev/healthhub/internal/validation"
)

// AuthService talks to the backend auth endpoints. Validation runs fully
// client-side, so an invalid form never produces a request.
type AuthService struct {
	api *apiclient.Client
}

func NewAuthService(api *apiclient.Client) *AuthService {
	return &AuthService{api: api}
}

func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	if err := validation.ValidateLogin(creds); err != nil {
		return nil, err
	}

	var resp domain.AuthResponse
	if err := s.api.PostJSON(ctx, "/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResponse, error) {
	if err := validation.ValidateRegistration(reg); err != nil {
		return nil, err
	}

	// Date of birth goes over the wire in canonical string form. The
	// confirm-password field stays local.
	payload := map[string]any{
		"firstName":        reg.FirstName,
		"lastName":         reg.LastName,
		"email":            reg.Email,
		"phone":            reg.Phone,
		"address":          reg.Address,
		"emergencyContact": reg.EmergencyContact,
		"dateOfBirth":      utils.FormatDateForAPI(reg.DateOfBirth),
		"gender":           reg.Gender,
		"bloodType":        reg.BloodType,
		"patientId":        reg.PatientID,
		"password":         reg.Password,
	}

	var resp domain.AuthResponse
	if err := s.api.PostJSON(ctx, "/auth/register", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
