package ui

import (
	"fmt"
	"io"
)

type textRenderer struct {
	w io.Writer
}

func (t *textRenderer) RenderReport(report *Report) error {
	for _, p := range report.Packages {
		if p.Failed() {
			if _, err := fmt.Fprintf(t.w, "FAIL %s: %s\n", p.Name, p.Error); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(t.w, "OK   %s %s %s (%s, %s)\n", p.Name, p.Version, p.Folder, p.TFM, p.Strategy); err != nil {
			return err
		}
		for _, b := range p.Binaries {
			if _, err := fmt.Fprintf(t.w, "       %s\n", b); err != nil {
				return err
			}
		}
	}
	resolved, failed := report.Counts()
	_, err := fmt.Fprintf(t.w, "%d resolved, %d failed, output in %s\n", resolved, failed, report.OutputRoot)
	return err
}

func (t *textRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(t.w, "Error: %v\n", err)
	return werr
}

func (t *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(t.w, msg)
	return err
}
