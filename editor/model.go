package editor

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/portal/sink"
	"github.com/iw2rmb/portal/viewport"
)

// Model is a Bubble Tea component that renders and edits a viewport.
//
// The viewport is shared between copies of the Model, as Bubble Tea copies
// models by value on every update.
type Model struct {
	cfg Config
	vp  *viewport.Viewport

	frame *sink.Frame
	help  help.Model

	focused       bool
	width, height int
}

func New(vp *viewport.Viewport, cfg Config) Model {
	h := help.New()
	h.Styles.ShortKey = cfg.Style.Help
	h.Styles.ShortDesc = cfg.Style.Help
	h.Styles.ShortSeparator = cfg.Style.Help
	return Model{
		cfg:     cfg,
		vp:      vp,
		frame:   sink.NewFrame(cfg.Style.Frame),
		help:    h,
		focused: true,
	}
}

func (m Model) Viewport() *viewport.Viewport { return m.vp }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the outer size of the component, status and help rows
// included.
func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.help.Width = m.width
	m.vp.Resize(max(m.height-m.chromeRows(), 1))
	return m
}

func (m Model) chromeRows() int {
	n := 0
	if m.cfg.ShowStatus {
		n++
	}
	if m.cfg.ShowHelp {
		n++
	}
	return n
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }
