// Package ui renders command results for the terminal, as plain text or
// as JSON.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/nue/pkg/errors"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderReport renders the outcome of a resolve run
	RenderReport(report *Report) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto inspects output
// when it is a file and falls back to text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return newTerminalRenderer(output), nil
	case FormatText:
		return &textRenderer{w: output}, nil
	case FormatJSON:
		return newJSONRenderer(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
