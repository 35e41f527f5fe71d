package tui

import (
	"fmt"

	"github.com/killallgit/otto/pkg/feed"
)

func (m feedModel) View() string {
	return fmt.Sprintf(
		"%s\n%s\n%s",
		m.viewport.View(),
		m.statusLine(),
		m.styles.InputBar.Width(m.width).Render(m.textarea.View()),
	)
}

func (m feedModel) statusLine() string {
	if m.processing {
		return m.spinner.View() + m.styles.StatusBar.Render(" working...")
	}

	switch m.state {
	case feed.StateFailed:
		return m.styles.StatusBar.Render("failed")
	case feed.StateComplete:
		return m.styles.StatusBar.Render("done")
	default:
		return m.styles.StatusBar.Render("ready")
	}
}
