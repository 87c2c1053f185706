package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}
	colorError   = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#E57373"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#616161", Dark: "#9E9E9E"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#64B5F6"}
)

// styles holds the lipgloss styles bound to one output renderer
type styles struct {
	Header  lipgloss.Style
	Package lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Binary  lipgloss.Style
	Summary lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		Header:  r.NewStyle().Bold(true).Underline(true),
		Package: r.NewStyle().Bold(true),
		Success: r.NewStyle().Foreground(colorSuccess),
		Error:   r.NewStyle().Foreground(colorError).Bold(true),
		Muted:   r.NewStyle().Foreground(colorMuted),
		Accent:  r.NewStyle().Foreground(colorAccent),
		Binary:  r.NewStyle().PaddingLeft(4),
		Summary: r.NewStyle().MarginTop(1).Bold(true),
	}
}
