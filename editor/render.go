package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/portal/viewport"
)

func (m Model) View() string {
	m.frame.Reset()
	m.vp.Render(m.frame, m.width, m.focused)

	parts := []string{m.frame.String()}
	if m.cfg.ShowStatus {
		parts = append(parts, m.statusView())
	}
	if m.cfg.ShowHelp {
		parts = append(parts, m.help.View(m.cfg.KeyMap))
	}
	return strings.Join(parts, "\n")
}

func (m Model) statusView() string {
	var st viewport.StatusLine
	m.vp.Status(&st)
	return m.cfg.Style.Status.Render(layoutStatus(st, m.width))
}

// layoutStatus places the three status parts left, centered and right in a
// row of width cells, dropping the middle first when space runs out.
func layoutStatus(st viewport.StatusLine, width int) string {
	left := " " + st.Left + " "
	right := " " + st.Right + " "
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		return truncate(left+right, width)
	}
	mid := st.Middle
	if lipgloss.Width(mid)+2 > gap {
		mid = ""
	}
	pad := gap - lipgloss.Width(mid)
	before := pad / 2
	return left + strings.Repeat(" ", before) + mid + strings.Repeat(" ", pad-before) + right
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		r = r[:max(width, 0)]
	}
	return string(r)
}
