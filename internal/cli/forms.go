package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// prompt helpers for the interactive screens. Inputs re-prompt on parse
// errors; validation proper happens in the validation package.

func (a *App) prompt(label string) string {
	fmt.Fprintf(a.out, "%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func (a *App) promptFloat(label string) float64 {
	for {
		raw := a.prompt(label)
		value, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			return value
		}
		fmt.Fprintln(a.out, "Please enter a number.")
	}
}

func (a *App) promptInt(label string) int {
	for {
		raw := a.prompt(label)
		value, err := strconv.Atoi(raw)
		if err == nil {
			return value
		}
		fmt.Fprintln(a.out, "Please enter a whole number.")
	}
}

// promptIntDefault returns def when the user just presses enter.
func (a *App) promptIntDefault(label string, def int) int {
	for {
		raw := a.prompt(fmt.Sprintf("%s [%d]", label, def))
		if raw == "" {
			return def
		}
		value, err := strconv.Atoi(raw)
		if err == nil {
			return value
		}
		fmt.Fprintln(a.out, "Please enter a whole number.")
	}
}

func (a *App) promptYesNo(label string) bool {
	for {
		raw := strings.ToLower(a.prompt(label + " (yes/no)"))
		switch raw {
		case "yes", "y":
			return true
		case "no", "n":
			return false
		}
		fmt.Fprintln(a.out, "Please answer yes or no.")
	}
}

func (a *App) promptChoice(label string, options []string) string {
	for i, opt := range options {
		fmt.Fprintf(a.out, "  %d) %s\n", i+1, opt)
	}
	for {
		raw := a.prompt(label)
		idx, err := strconv.Atoi(raw)
		if err == nil && idx >= 1 && idx <= len(options) {
			return options[idx-1]
		}
		fmt.Fprintf(a.out, "Please choose 1-%d.\n", len(options))
	}
}

func (a *App) promptDate(label string) time.Time {
	for {
		raw := a.prompt(label + " (YYYY-MM-DD)")
		t, err := time.Parse("2006-01-02", raw)
		if err == nil {
			return t
		}
		fmt.Fprintln(a.out, "Please enter a date as YYYY-MM-DD.")
	}
}

func newReader(r io.Reader) *bufio.Reader {
	return bufio.NewReader(r)
}
