package domain

import (
	"context"
)

// AuthAPI performs remote credential checks and account creation.
type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) (*AuthResponse, error)
	Register(ctx context.Context, reg Registration) (*AuthResponse, error)
}

// HealthAssessor runs the health risk workflow end to end.
type HealthAssessor interface {
	Assess(ctx context.Context, in HealthInput) (*HealthResult, error)
}

// DepressionAssessor runs the depression assessment workflow end to end.
type DepressionAssessor interface {
	Assess(ctx context.Context, in DepressionInput) (*DepressionResult, error)
}

// PneumoniaDetector handles X-ray image selection and classification.
type PneumoniaDetector interface {
	Select(path string) error
	Selected() string
	Clear()
	Detect(ctx context.Context) (*PneumoniaResult, error)
}

// ChatAssistant handles the chat workflow against the current thread.
type ChatAssistant interface {
	Send(ctx context.Context, content string) (*Message, error)
	NewThread() ChatThread
	DeleteThread(id string)
}
