package main

import (
	"context"
	"errors"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	pkgerrors "github.com/pkg/errors"

	"github.com/iw2rmb/portal/config"
	"github.com/iw2rmb/portal/editor"
	"github.com/iw2rmb/portal/screen"
	"github.com/iw2rmb/portal/viewport"
)

// app hosts the editor component and ends the program on any message the
// viewport sends back; portal has no file picker to return to.
type app struct {
	editor editor.Model
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(editor.MessageMsg); ok {
		return a, tea.Quit
	}
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.editor.View() }

func runBubbleTea(ctx context.Context, vp *viewport.Viewport, cfg config.Config) error {
	ecfg := editor.DefaultConfig()
	ecfg.ShowStatus = cfg.UI.ShowStatus
	ecfg.ShowHelp = cfg.UI.ShowHelp
	ecfg.Style = editorStyle(cfg.Theme)

	p := tea.NewProgram(app{editor: editor.New(vp, ecfg)},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return pkgerrors.Wrap(err, "run bubbletea program")
	}
	return nil
}

func runTcell(ctx context.Context, vp *viewport.Viewport, cfg config.Config) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return pkgerrors.Wrap(err, "create tcell screen")
	}
	if err := scr.Init(); err != nil {
		return pkgerrors.Wrap(err, "init tcell screen")
	}
	defer scr.Fini()
	screen.Run(ctx, scr, vp, screen.Options{
		Styles:     tcellStyles(cfg.Theme),
		ShowStatus: cfg.UI.ShowStatus,
	})
	return nil
}

func editorStyle(theme config.ThemeConfig) editor.Style {
	st := editor.DefaultStyle()
	if theme.Gutter != "" {
		st.Frame.Gutter = st.Frame.Gutter.Foreground(lipgloss.Color(theme.Gutter))
	}
	if theme.GutterActive != "" {
		st.Frame.GutterActive = st.Frame.GutterActive.Foreground(lipgloss.Color(theme.GutterActive))
	}
	if theme.Status != "" {
		st.Status = lipgloss.NewStyle().Background(lipgloss.Color(theme.Status))
	}
	return st
}

func tcellStyles(theme config.ThemeConfig) screen.Styles {
	st := screen.DefaultStyles()
	if c, ok := tcellColor(theme.Gutter); ok {
		st.Gutter = st.Gutter.Foreground(c)
	}
	if c, ok := tcellColor(theme.GutterActive); ok {
		st.GutterActive = st.GutterActive.Foreground(c)
	}
	if c, ok := tcellColor(theme.Status); ok {
		st.Status = tcell.StyleDefault.Background(c)
	}
	return st
}

// tcellColor accepts the same strings as lipgloss.Color: an ANSI palette
// number or a color name or #rrggbb value.
func tcellColor(s string) (tcell.Color, bool) {
	if s == "" {
		return tcell.ColorDefault, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 255 {
			return tcell.ColorDefault, false
		}
		return tcell.PaletteColor(n), true
	}
	c := tcell.GetColor(s)
	return c, c != tcell.ColorDefault
}
