package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/killallgit/otto/pkg/feed"
)

// Feed updates delivered into the bubbletea loop
type (
	feedMsg struct {
		message feed.Message
	}

	processingMsg struct {
		active bool
	}

	doneMsg struct {
		state feed.State
	}
)

// channelSink adapts feed.Sink callbacks into tea messages on a channel
// the update loop keeps draining.
type channelSink struct {
	updates chan tea.Msg
}

func newChannelSink() *channelSink {
	return &channelSink{updates: make(chan tea.Msg, 64)}
}

func (s *channelSink) Append(ctx context.Context, msg feed.Message) {
	s.deliver(ctx, feedMsg{message: msg})
}

func (s *channelSink) Processing(ctx context.Context, active bool) {
	s.deliver(ctx, processingMsg{active: active})
}

func (s *channelSink) Done(ctx context.Context, state feed.State) {
	s.deliver(ctx, doneMsg{state: state})
}

// deliver blocks until the update loop takes the message or the
// exchange is cancelled. A cancelled exchange drops its delivery, so a
// replaced exchange can never wedge the loop behind a full buffer.
func (s *channelSink) deliver(ctx context.Context, msg tea.Msg) {
	select {
	case s.updates <- msg:
	case <-ctx.Done():
	}
}

// waitForUpdate re-arms the listener for the next sink callback
func waitForUpdate(updates <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-updates
	}
}
