// File: format.go
// Title: strftime Formatting
// Description: Custom datetime rendering with C strftime directives. The
//              pattern is checked up front so unknown directives fail
//              instead of being copied into the output.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation on go-strftime

package timex

import (
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

const (
	supportedDirectives = "AaBbhmdeIlHkMSLfNyYCUWVgGsQwujpPZz+cvFDxrTXR%tn"
	eModifierDirectives = "cCxXyY"
	oModifierDirectives = "deHImMSuUVwWy"
)

// FormatDatetimeToCustomString renders t with a strftime pattern. The
// default pattern is DefaultCustomFormat.
func FormatDatetimeToCustomString(t time.Time, format ...string) (string, error) {
	pattern := DefaultCustomFormat
	if len(format) > 0 {
		pattern = format[0]
	}

	if err := ValidateFormat(pattern); err != nil {
		return "", err
	}

	return strftime.Format(pattern, t), nil
}

// ValidateFormat reports the first directive in pattern that cannot be
// rendered as a *FormatError.
func ValidateFormat(pattern string) error {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			continue
		}
		start := i
		i++

		var flag, modifier byte
		if i < len(pattern) && (pattern[i] == '-' || pattern[i] == ':') {
			flag = pattern[i]
			i++
		}
		if i < len(pattern) && (pattern[i] == 'E' || pattern[i] == 'O') {
			modifier = pattern[i]
			i++
		}
		if i >= len(pattern) {
			return newFormatError(pattern, pattern[start:], "incomplete directive")
		}

		directive := pattern[start : i+1]
		verb := pattern[i]
		switch {
		case !strings.ContainsRune(supportedDirectives, rune(verb)):
			return newFormatError(pattern, directive, "unknown directive")
		case flag == ':' && verb != 'z':
			return newFormatError(pattern, directive, "the ':' flag applies to %z only")
		case modifier == 'E' && !strings.ContainsRune(eModifierDirectives, rune(verb)):
			return newFormatError(pattern, directive, "invalid E modifier")
		case modifier == 'O' && !strings.ContainsRune(oModifierDirectives, rune(verb)):
			return newFormatError(pattern, directive, "invalid O modifier")
		}
	}
	return nil
}
