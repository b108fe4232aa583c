package cli

import (
	"context"
	"fmt"

	"github.com/antonkarev/healthhub/internal/domain"
	"github.com/antonkarev/healthhub/internal/router"
)

func (a *App) healthScreen(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- Health Risk Prediction ---")
	professions := make([]string, 0, len(domain.Professions()))
	for _, p := range domain.Professions() {
		professions = append(professions, string(p))
	}

	in := domain.HealthInput{
		Age:         a.promptFloat("Age"),
		Weight:      a.promptFloat("Weight (kg)"),
		Height:      a.promptFloat("Height (cm)"),
		Exercise:    a.promptFloat("Exercise hours per day"),
		Sleep:       a.promptFloat("Sleep hours per day"),
		SugarIntake: a.promptFloat("Sugar intake (g/day)"),
		BMI:         a.promptFloat("BMI"),
		Smoking:     a.promptYesNo("Do you smoke?"),
		Alcohol:     a.promptYesNo("Do you drink alcohol?"),
		Profession:  domain.Profession(a.promptChoice("Profession", professions)),
	}

	result, err := a.health.Assess(ctx, in)
	if err != nil {
		a.showError(err)
	} else {
		fmt.Fprintf(a.out, "Result: %s (prediction=%d)\n", result.RiskStatus, result.RiskPrediction)
	}
	a.router.Navigate(router.PathPatientDashboard)
}

func (a *App) depressionScreen(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- Depression Assessment ---")
	in := domain.DepressionInput{
		Gender:            a.prompt("Gender"),
		Age:               a.promptInt("Age"),
		Profession:        a.prompt("Profession/Status"),
		SleepDuration:     a.promptFloat("Sleep duration (hours)"),
		DietaryHabits:     a.prompt("Dietary habits"),
		SuicidalThoughts:  a.promptYesNo("Have you ever had suicidal thoughts?"),
		WorkHours:         a.promptFloat("Work hours per day"),
		FinancialStress:   a.promptIntDefault("Financial stress (1-10)", 5),
		FamilyHistory:     a.promptYesNo("Family history of mental illness?"),
		PressureLevel:     a.promptIntDefault("Pressure level (1-10)", 5),
		SatisfactionLevel: a.promptIntDefault("Satisfaction level (1-10)", 5),
	}

	result, err := a.depression.Assess(ctx, in)
	if err != nil {
		a.showError(err)
	} else {
		fmt.Fprintf(a.out, "Result: %s (probability=%.2f)\n", result.RiskStatus, result.Probability)
	}
	a.router.Navigate(router.PathPatientDashboard)
}

func (a *App) pneumoniaScreen(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- Pneumonia Detection ---")
	if selected := a.pneumonia.Selected(); selected != "" {
		fmt.Fprintf(a.out, "Selected: %s\n", selected)
	}

	choice := a.promptChoice("Choose", []string{"Select X-ray image", "Analyze", "Clear selection", "Back"})
	switch choice {
	case "Select X-ray image":
		path := a.prompt("Image path (JPG or PNG, max 5MB)")
		if err := a.pneumonia.Select(path); err != nil {
			a.showError(err)
		} else {
			fmt.Fprintln(a.out, "Image staged for analysis.")
		}
	case "Analyze":
		result, err := a.pneumonia.Detect(ctx)
		if err != nil {
			a.showError(err)
		} else {
			fmt.Fprintf(a.out, "Result: %s (probability=%.2f)\n", result.Label, result.Probability)
		}
	case "Clear selection":
		a.pneumonia.Clear()
	case "Back":
		// Leaving the screen releases the preview resource.
		a.pneumonia.Clear()
		a.router.Navigate(router.PathPatientDashboard)
	}
}

func (a *App) chatScreen(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- Medical Chatbot ---")
	a.renderThreads()

	choice := a.promptChoice("Choose", []string{"Send message", "New conversation", "Switch conversation", "Delete conversation", "Back"})
	switch choice {
	case "Send message":
		content := a.prompt("You")
		if _, err := a.chat.Send(ctx, content); err != nil {
			a.showError(err)
		}
		a.renderCurrentThread()
	case "New conversation":
		a.chat.NewThread()
	case "Switch conversation":
		id := a.prompt("Thread id")
		if _, ok := a.sess.Thread(id); ok {
			a.sess.SetCurrentThread(id)
		} else {
			fmt.Fprintln(a.out, "No such conversation.")
		}
	case "Delete conversation":
		id := a.prompt("Thread id")
		a.chat.DeleteThread(id)
	case "Back":
		a.router.Navigate(router.PathPatientDashboard)
	}
}

func (a *App) renderThreads() {
	threads := a.sess.Threads()
	if len(threads) == 0 {
		fmt.Fprintln(a.out, "No conversations yet.")
		return
	}
	current := a.sess.CurrentThreadID()
	for _, t := range threads {
		marker := " "
		if t.ID == current {
			marker = "*"
		}
		preview := "New conversation"
		if len(t.Messages) > 0 {
			// Truncate on runes so multi-byte text is never split.
			preview = t.Messages[0].Content
			if runes := []rune(preview); len(runes) > 30 {
				preview = string(runes[:30])
			}
		}
		fmt.Fprintf(a.out, "%s %s  %s\n", marker, t.ID, preview)
	}
}

func (a *App) renderCurrentThread() {
	id := a.sess.CurrentThreadID()
	if id == "" {
		return
	}
	thread, ok := a.sess.Thread(id)
	if !ok {
		return
	}
	for _, m := range thread.Messages {
		fmt.Fprintf(a.out, "[%s] %s\n", m.Role, m.Content)
	}
}
