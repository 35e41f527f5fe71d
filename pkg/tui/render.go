package tui

import (
	"strings"

	"github.com/killallgit/otto/pkg/classify"
	"github.com/killallgit/otto/pkg/feed"
	"github.com/killallgit/otto/pkg/tui/theme"
)

// renderFeed renders the submitted prompt followed by every message of
// the current request, classified at render time.
func (m feedModel) renderFeed() string {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}

	var sections []string
	if m.prompt != "" {
		sections = append(sections, m.styles.UserPrompt.Width(width).Render("> "+m.prompt))
	}

	for _, msg := range m.messages {
		sections = append(sections, renderMessage(m.styles, msg, width))
	}

	return strings.Join(sections, "\n\n")
}

// renderMessage renders one feed entry according to its classification
func renderMessage(styles *theme.Styles, msg feed.Message, width int) string {
	if msg.Err {
		return styles.ErrorMessage.Width(width).Render(msg.Text)
	}

	blockWidth := width - 4
	if blockWidth < 20 {
		blockWidth = 20
	}

	c := classify.Classify(msg.Text)
	switch c.Kind {
	case classify.KindToolResult:
		header := styles.ToolHeader.Render(strings.TrimSpace(c.Header))
		body := styles.ToolBody.Width(blockWidth).Render(c.Body)
		return header + "\n" + body

	case classify.KindThought:
		return styles.Thought.Width(blockWidth).Render(c.Text)

	case classify.KindTabular:
		return styles.Tabular.MaxWidth(width).Render(c.Text)

	default:
		return styles.PlainMessage.Width(width).Render(highlightCodeBlocks(c.Text))
	}
}
