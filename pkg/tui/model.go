package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/killallgit/otto/pkg/feed"
	"github.com/killallgit/otto/pkg/tui/theme"
)

var spinnerFrames = []string{"░", "▒", "▓", "█"}

type feedModel struct {
	controller *feed.Controller
	sink       *channelSink

	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	messages   []feed.Message
	prompt     string // last submitted prompt, echoed at the top of the feed
	processing bool
	state      feed.State

	width  int
	height int
	styles *theme.Styles
}

func newFeedModel(controller *feed.Controller) feedModel {
	styles := theme.DefaultStyles()

	ta := textarea.New()
	ta.Focus()
	ta.Placeholder = "Describe a task for the agent..."
	ta.CharLimit = 0
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	vp := viewport.New(80, 20)

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: spinnerFrames,
		FPS:    time.Second / 8,
	}
	sp.Style = styles.Spinner

	return feedModel{
		controller: controller,
		sink:       newChannelSink(),
		viewport:   vp,
		textarea:   ta,
		spinner:    sp,
		state:      feed.StateIdle,
		styles:     styles,
	}
}

func (m feedModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, waitForUpdate(m.sink.updates))
}

// submit starts a new exchange for the typed prompt. The controller
// cancels any exchange still in flight.
func (m *feedModel) submit(prompt string) {
	m.prompt = prompt
	m.messages = nil
	m.controller.Submit(context.Background(), prompt, m.sink)
}
