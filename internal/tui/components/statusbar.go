package components

import (
	"fmt"

	"github.com/finplanhq/finplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: keybinding hints on the
// left, the active scenario and compute state on the right.
func RenderStatusBar(width int, scenario string, computing, dirty bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [e]dit  [w]rite plan  [1/2/3]scenario  [?]help  [q]uit"

	right := fmt.Sprintf("%s ", scenario)
	if dirty {
		right = "unsaved · " + right
	}
	if computing {
		right = "computing… · " + right
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
