package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/antonkarev/healthhub/internal/domain"
	apperrors "github.com/antonkarev/healthhub/internal/errors"
	"github.com/antonkarev/healthhub/internal/router"
	"github.com/antonkarev/healthhub/internal/session"
	"github.com/antonkarev/healthhub/internal/validation"
)

// App drives the terminal screens. Each screen collects input, hands it to
// its service and renders the outcome; all state lives in the session store.
type App struct {
	in  *bufio.Reader
	out io.Writer

	router     *router.Router
	sess       *session.Store
	health     domain.HealthAssessor
	depression domain.DepressionAssessor
	pneumonia  domain.PneumoniaDetector
	chat       domain.ChatAssistant
}

func New(in io.Reader, out io.Writer, rt *router.Router, sess *session.Store,
	health domain.HealthAssessor, depression domain.DepressionAssessor,
	pneumonia domain.PneumoniaDetector, chat domain.ChatAssistant) *App {
	return &App{
		in:         newReader(in),
		out:        out,
		router:     rt,
		sess:       sess,
		health:     health,
		depression: depression,
		pneumonia:  pneumonia,
		chat:       chat,
	}
}

// Run loops over the current route until the user quits.
func (a *App) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var quit bool
		switch a.router.Current() {
		case router.PathLanding:
			quit = a.landingScreen()
		case router.PathLogin:
			a.loginScreen(ctx)
		case router.PathRegister:
			a.registerScreen(ctx)
		case router.PathPatientDashboard:
			quit = a.patientDashboard(ctx)
		case router.PathDoctorDashboard:
			quit = a.doctorDashboard(ctx)
		case router.PathHealthPrediction:
			a.healthScreen(ctx)
		case router.PathDepression:
			a.depressionScreen(ctx)
		case router.PathPneumonia:
			a.pneumoniaScreen(ctx)
		case router.PathChatbot:
			a.chatScreen(ctx)
		default:
			a.router.Navigate(router.PathLanding)
		}
		if quit {
			return nil
		}
	}
}

func (a *App) landingScreen() bool {
	fmt.Fprintln(a.out, "\n=== HealthHub ===")
	choice := a.promptChoice("Choose", []string{"Log in", "Register", "Patient dashboard", "Quit"})
	switch choice {
	case "Log in":
		a.router.Navigate(router.PathLogin)
	case "Register":
		a.router.Navigate(router.PathRegister)
	case "Patient dashboard":
		// Goes through the guard; lands on login when unauthenticated.
		a.router.Navigate(router.PathPatientDashboard)
	case "Quit":
		return true
	}
	return false
}

func (a *App) loginScreen(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- Log in ---")
	creds := domain.Credentials{
		Email:    a.prompt("Email"),
		Password: a.prompt("Password"),
	}
	if err := a.sess.Login(ctx, creds); err != nil {
		a.showError(err)
		a.router.Navigate(router.PathLanding)
		return
	}
	fmt.Fprintln(a.out, "Logged in.")
	a.router.Navigate(a.router.ConsumeIntended())
}

func (a *App) registerScreen(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- Register ---")
	genders := make([]string, 0, len(domain.Genders()))
	for _, g := range domain.Genders() {
		genders = append(genders, string(g))
	}
	bloodTypes := make([]string, 0, len(domain.BloodTypes()))
	for _, bt := range domain.BloodTypes() {
		bloodTypes = append(bloodTypes, string(bt))
	}

	reg := domain.Registration{
		FirstName:        a.prompt("First name"),
		LastName:         a.prompt("Last name"),
		Email:            a.prompt("Email"),
		Phone:            a.prompt("Phone"),
		Address:          a.prompt("Address"),
		EmergencyContact: a.prompt("Emergency contact"),
		DateOfBirth:      a.promptDate("Date of birth"),
		Gender:           domain.Gender(a.promptChoice("Gender", genders)),
		BloodType:        domain.BloodType(a.promptChoice("Blood type", bloodTypes)),
		PatientID:        a.prompt("Patient ID"),
		Password:         a.prompt("Password"),
		ConfirmPassword:  a.prompt("Confirm password"),
	}
	if err := a.sess.Register(ctx, reg); err != nil {
		a.showError(err)
		a.router.Navigate(router.PathLanding)
		return
	}
	fmt.Fprintln(a.out, "Account created.")
	a.router.Navigate(a.router.ConsumeIntended())
}

func (a *App) patientDashboard(ctx context.Context) bool {
	user := a.sess.User()
	if user == nil {
		a.router.Navigate(router.PathLanding)
		return false
	}
	fmt.Fprintf(a.out, "\n--- Patient Dashboard: %s %s ---\n", user.FirstName, user.LastName)
	a.renderRecentAssessments(3)

	choice := a.promptChoice("Choose", []string{
		"Health risk prediction",
		"Depression assessment",
		"Pneumonia detection",
		"Medical chatbot",
		"Log out",
		"Quit",
	})
	switch choice {
	case "Health risk prediction":
		a.router.Navigate(router.PathHealthPrediction)
	case "Depression assessment":
		a.router.Navigate(router.PathDepression)
	case "Pneumonia detection":
		a.router.Navigate(router.PathPneumonia)
	case "Medical chatbot":
		a.router.Navigate(router.PathChatbot)
	case "Log out":
		a.logout(ctx)
	case "Quit":
		return true
	}
	return false
}

func (a *App) doctorDashboard(ctx context.Context) bool {
	user := a.sess.User()
	if user == nil {
		a.router.Navigate(router.PathLanding)
		return false
	}
	fmt.Fprintf(a.out, "\n--- Doctor Dashboard: Dr. %s %s ---\n", user.FirstName, user.LastName)
	a.renderRecentAssessments(10)

	choice := a.promptChoice("Choose", []string{"Refresh", "Log out", "Quit"})
	switch choice {
	case "Log out":
		a.logout(ctx)
	case "Quit":
		return true
	}
	return false
}

func (a *App) logout(ctx context.Context) {
	if err := a.sess.Logout(ctx); err != nil {
		a.showError(err)
	}
	a.pneumonia.Clear()
	fmt.Fprintln(a.out, "Logged out.")
	a.router.Navigate(router.PathLanding)
}

func (a *App) renderRecentAssessments(n int) {
	assessments := a.sess.Assessments()
	if len(assessments) == 0 {
		fmt.Fprintln(a.out, "No assessments yet.")
		return
	}
	if len(assessments) > n {
		assessments = assessments[len(assessments)-n:]
	}
	fmt.Fprintln(a.out, "Recent assessments:")
	for _, as := range assessments {
		fmt.Fprintf(a.out, "  %s  %s  %v\n", as.CreatedAt.Format("2006-01-02 15:04"), as.Type, as.Result["riskStatus"])
	}
}

// showError renders an error the way a screen would: per-field messages for
// validation failures, a mapped title+message for everything else.
func (a *App) showError(err error) {
	if fieldErrs, ok := validation.AsFieldErrors(err); ok {
		fmt.Fprintln(a.out, "Please fix the following:")
		fields := make([]string, 0, len(fieldErrs))
		for field := range fieldErrs {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(a.out, "  %s: %s\n", field, fieldErrs[field])
		}
		return
	}
	friendly := apperrors.UserFacing(err)
	fmt.Fprintf(a.out, "%s: %s\n", friendly.Title, friendly.Message)
	if friendly.CanRetry {
		fmt.Fprintln(a.out, "You can try again.")
	}
}
