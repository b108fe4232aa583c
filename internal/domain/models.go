package domain

import (
	"time"
)

// Gender values accepted during registration
type Gender string

const (
	GenderMale        Gender = "Male"
	GenderFemale      Gender = "Female"
	GenderOther       Gender = "Other"
	GenderUndisclosed Gender = "Prefer not to say"
)

// Genders returns the accepted gender choices in display order.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther, GenderUndisclosed}
}

// BloodType values accepted during registration
type BloodType string

const (
	BloodAPos  BloodType = "A+"
	BloodANeg  BloodType = "A-"
	BloodBPos  BloodType = "B+"
	BloodBNeg  BloodType = "B-"
	BloodABPos BloodType = "AB+"
	BloodABNeg BloodType = "AB-"
	BloodOPos  BloodType = "O+"
	BloodONeg  BloodType = "O-"
)

// BloodTypes returns the accepted blood type choices in display order.
func BloodTypes() []BloodType {
	return []BloodType{BloodAPos, BloodANeg, BloodBPos, BloodBNeg, BloodABPos, BloodABNeg, BloodOPos, BloodONeg}
}

// Role distinguishes patient accounts from doctor accounts.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// Profession categories known to the health risk model. The backend expects
// the selected category one-hot encoded into seven boolean columns.
type Profession string

const (
	ProfessionDoctor       Profession = "Doctor"
	ProfessionDriver       Profession = "Driver"
	ProfessionEngineer     Profession = "Engineer"
	ProfessionFarmer       Profession = "Farmer"
	ProfessionOfficeWorker Profession = "Office Worker"
	ProfessionStudent      Profession = "Student"
	ProfessionTeacher      Profession = "Teacher"
)

// Professions returns the known profession categories in display order.
func Professions() []Profession {
	return []Profession{
		ProfessionDoctor,
		ProfessionDriver,
		ProfessionEngineer,
		ProfessionFarmer,
		ProfessionOfficeWorker,
		ProfessionStudent,
		ProfessionTeacher,
	}
}

// User is the identity record owned by the session store once authenticated.
type User struct {
	ID               string    `json:"id"`
	PatientID        string    `json:"patientId"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	EmergencyContact string    `json:"emergencyContact"`
	DateOfBirth      string    `json:"dateOfBirth"` // YYYY-MM-DD
	Gender           Gender    `json:"gender"`
	BloodType        BloodType `json:"bloodType"`
	Role             Role      `json:"role"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Credentials is transient login input. Never persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the input collected by the registration screen.
// ConfirmPassword is checked locally and never transmitted.
type Registration struct {
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Address          string
	EmergencyContact string
	DateOfBirth      time.Time
	Gender           Gender
	BloodType        BloodType
	PatientID        string
	Password         string
	ConfirmPassword  string
}

// AuthResponse is what the backend returns for login and register.
// Only Token and User are ever persisted locally.
type AuthResponse struct {
	User         User   `json:"user"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// MessageRole is the author of a chat message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is a single chat turn. Immutable once created.
type Message struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

// ChatThread is an ordered conversation with the assistant. Messages are
// only ever appended.
type ChatThread struct {
	ID        string    `json:"id"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
}

// AssessmentType names the three assessment features.
type AssessmentType string

const (
	AssessmentHealthRisk AssessmentType = "health_risk"
	AssessmentPneumonia  AssessmentType = "pneumonia"
	AssessmentDepression AssessmentType = "depression"
)

// HealthAssessment is an append-only history entry recording one completed
// assessment: what was sent and what came back.
type HealthAssessment struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Type      AssessmentType `json:"assessmentType"`
	Input     map[string]any `json:"data"`
	Result    map[string]any `json:"result"`
	CreatedAt time.Time      `json:"createdAt"`
}

// HealthInput is the typed input of the health risk screen.
type HealthInput struct {
	Age         float64
	Weight      float64 // kg
	Height      float64 // cm
	Exercise    float64 // hours per day
	Sleep       float64 // hours per day
	SugarIntake float64
	BMI         float64
	Smoking     bool
	Alcohol     bool
	Profession  Profession
}

// HealthResult is the backend's answer for a health risk prediction.
type HealthResult struct {
	RiskPrediction int    `json:"riskPrediction"`
	RiskStatus     string `json:"riskStatus"`
}

// DepressionInput is the typed input of the depression assessment screen.
type DepressionInput struct {
	Gender            string
	Age               int
	Profession        string
	SleepDuration     float64
	DietaryHabits     string
	SuicidalThoughts  bool
	WorkHours         float64
	FinancialStress   int
	FamilyHistory     bool
	PressureLevel     int
	SatisfactionLevel int
}

// DepressionResult is the backend's answer for a depression assessment.
type DepressionResult struct {
	RiskPrediction int     `json:"riskPrediction"`
	Probability    float64 `json:"probability"`
	RiskStatus     string  `json:"riskStatus"`
}

// PneumoniaResult is the backend's answer for a chest X-ray classification.
type PneumoniaResult struct {
	Probability float64 `json:"probability"`
	Label       string  `json:"label"` // "Pneumonia" or "Normal"
}
