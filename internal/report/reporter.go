package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	colorRed   = lipgloss.Color("9")
	colorGreen = lipgloss.Color("10")
)

// Reporter prints diagnostics for mismatching files.
type Reporter struct {
	w          io.Writer
	errorStyle lipgloss.Style
	oldStyle   lipgloss.Style
	newStyle   lipgloss.Style
	doneStyle  lipgloss.Style
}

// New returns a Reporter writing to w. Colors are emitted according to mode.
func New(w io.Writer, mode ColorMode) *Reporter {
	renderer := lipgloss.NewRenderer(w)
	if shouldUseColor(mode, w, os.Getenv) {
		renderer.SetColorProfile(termenv.ANSI)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Reporter{
		w:          w,
		errorStyle: renderer.NewStyle().Foreground(colorRed),
		oldStyle:   renderer.NewStyle().Foreground(colorRed),
		newStyle:   renderer.NewStyle().Foreground(colorGreen),
		doneStyle:  renderer.NewStyle().Foreground(colorGreen),
	}
}

// Mismatch reports that the class declared in absPath is named className
// instead of fileName.
func (r *Reporter) Mismatch(className, fileName, absPath string) error {
	_, err := fmt.Fprintf(r.w, "%s Class name '%s' does not match file name '%s' in file: %s\n",
		r.errorStyle.Render("Error:"),
		r.oldStyle.Render(className),
		r.newStyle.Render(fileName),
		absPath,
	)
	return err
}

// Replaced confirms that className was rewritten to fileName in absPath.
func (r *Reporter) Replaced(className, fileName, absPath string) error {
	msg := fmt.Sprintf("Replaced class name '%s' with '%s' in file: %s", className, fileName, absPath)
	_, err := fmt.Fprintln(r.w, r.doneStyle.Render(msg))
	return err
}
