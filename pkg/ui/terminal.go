package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

type terminalRenderer struct {
	w      io.Writer
	styles styles
}

func newTerminalRenderer(w io.Writer) *terminalRenderer {
	r := lipgloss.NewRenderer(w)
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		r.SetColorProfile(termenv.Ascii)
	}
	return &terminalRenderer{w: w, styles: newStyles(r)}
}

func (t *terminalRenderer) RenderReport(report *Report) error {
	s := t.styles
	if _, err := fmt.Fprintln(t.w, s.Header.Render("Resolved packages")); err != nil {
		return err
	}

	for _, p := range report.Packages {
		if p.Failed() {
			fmt.Fprintf(t.w, "%s %s %s\n", s.Error.Render("✗"), s.Package.Render(p.Name), s.Error.Render(p.Error))
			continue
		}
		fmt.Fprintf(t.w, "%s %s %s %s\n",
			s.Success.Render("✓"),
			s.Package.Render(p.Name),
			s.Muted.Render(p.Version),
			s.Accent.Render(fmt.Sprintf("%s via %s (%s)", p.Folder, p.TFM, p.Strategy)),
		)
		for _, b := range p.Binaries {
			fmt.Fprintln(t.w, s.Binary.Render(b))
		}
	}

	resolved, failed := report.Counts()
	summary := fmt.Sprintf("%d resolved, %d failed, output in %s", resolved, failed, report.OutputRoot)
	style := s.Summary.Inherit(s.Success)
	if failed > 0 {
		style = s.Summary.Inherit(s.Error)
	}
	_, err := fmt.Fprintln(t.w, style.Render(summary))
	return err
}

func (t *terminalRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(t.w, t.styles.Error.Render("Error: "+err.Error()))
	return werr
}

func (t *terminalRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(t.w, msg)
	return err
}
