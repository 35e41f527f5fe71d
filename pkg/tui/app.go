package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/killallgit/otto/pkg/agent"
	"github.com/killallgit/otto/pkg/feed"
)

// StartApp runs the interactive feed until the user quits
func StartApp(client *agent.Client) error {
	controller := feed.NewController(client)
	defer controller.Close()

	model := newFeedModel(controller)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run application: %w", err)
	}
	return nil
}
