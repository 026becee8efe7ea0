package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/portal/sink"
)

// Style controls the editor's rendering.
type Style struct {
	Frame  sink.Styles
	Status lipgloss.Style
	Help   lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Frame:  sink.DefaultStyles(),
		Status: lipgloss.NewStyle().Reverse(true),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
