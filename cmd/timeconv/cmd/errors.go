package cmd

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/timeconv/foundation/core/error"
	"github.com/msto63/timeconv/foundation/utils/timex"
)

// printError writes err to w, styled when w is a terminal.
func printError(w io.Writer, err error) {
	renderer := lipgloss.NewRenderer(w)
	label := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("1")).Render("Error:")

	msg := err.Error()
	if code := mdwerror.GetCode(err); code != mdwerror.CodeUnknown {
		hint := renderer.NewStyle().Faint(true).Render("(" + code.String() + ")")
		msg += " " + hint
	}
	fmt.Fprintf(w, "%s %s\n", label, msg)
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if _, ok := mdwerror.As(err); ok {
		return mdwerror.GetCode(err).ExitCode()
	}
	return 1
}

func invalidArg(operation, name, value, expected string) error {
	return mdwerror.New(fmt.Sprintf("invalid %s %q: expected %s", name, value, expected)).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("cmd." + operation).
		WithDetail(name, value)
}

func parseNumber(operation, name, value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalidArg(operation, name, value, "a finite number")
	}
	return f, nil
}

// parseMs parses epoch milliseconds limited to years 1 through 9999.
func parseMs(operation, value string) (float64, error) {
	ms, err := parseNumber(operation, "milliseconds", value)
	if err != nil {
		return 0, err
	}
	if ms < timex.MinUTCMs || ms > timex.MaxUTCMs {
		return 0, mdwerror.New(fmt.Sprintf("milliseconds %s outside years 1 to 9999", value)).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation("cmd." + operation).
			WithDetail("milliseconds", value)
	}
	return ms, nil
}

func parseDays(operation, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, invalidArg(operation, "days", value, "an integer")
	}
	return n, nil
}
