package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorMode selects when diagnostics are colored.
type ColorMode string

// Supported color modes.
const (
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
	ColorAuto   ColorMode = "auto"
)

// ParseColorMode converts a flag value into a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAlways, ColorNever, ColorAuto:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode %q: must be 'always', 'never', or 'auto'", s)
	}
}

// shouldUseColor resolves mode for the writer w. In auto mode the
// NO_COLOR, CLICOLOR=0 and CLICOLOR_FORCE conventions are honored before
// falling back to TTY detection.
func shouldUseColor(mode ColorMode, w io.Writer, getenv func(string) string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if getenv("NO_COLOR") != "" {
		return false
	}
	if getenv("CLICOLOR") == "0" {
		return false
	}
	if getenv("CLICOLOR_FORCE") != "" {
		return true
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
