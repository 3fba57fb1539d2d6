package cli

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/classnamecheck/internal/app"
	"github.com/vk/classnamecheck/internal/report"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	wd, err := os.Getwd()
	require.NoError(t, err)

	// --- Act ---
	cfg, shouldExit, err := Parse(nil, out)

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, &app.Config{
		Root:      wd,
		Extension: app.DefaultExtension,
		Replace:   true,
		Color:     report.ColorAlways,
		LogFormat: "text",
		LogLevel:  "warn",
	}, cfg)
	require.Empty(t, out.String())
}

func TestParse_Flags(t *testing.T) {
	t.Parallel()

	args := []string{"-replace=false", "-color", "NEVER", "-log-format", "JSON", "-log-level", "debug", "src"}

	cfg, shouldExit, err := Parse(args, &bytes.Buffer{})

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "src", cfg.Root)
	require.False(t, cfg.Replace)
	require.Equal(t, report.ColorNever, cfg.Color)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
	require.Contains(t, out.String(), "-replace")
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"--nope"}, wantMsg: "flag provided but not defined: -nope"},
		{name: "bad color", args: []string{"-color", "rainbow"}, wantMsg: "invalid color mode"},
		{name: "bad log format", args: []string{"-log-format", "xml"}, wantMsg: "invalid log-format"},
		{name: "bad log level", args: []string{"-log-level", "trace"}, wantMsg: "invalid log-level"},
		{name: "too many roots", args: []string{"a", "b"}, wantMsg: "at most one ROOT"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			require.False(t, shouldExit)
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "expected an ExitError, got %v", err)
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
