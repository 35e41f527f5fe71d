package headless

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/killallgit/otto/pkg/classify"
	"github.com/killallgit/otto/pkg/feed"
)

// ConsoleSink writes feed messages to a writer as they arrive. It
// implements feed.Sink for headless runs.
type ConsoleSink struct {
	w        io.Writer
	finished chan feed.State
}

func NewConsoleSink(w io.Writer) *ConsoleSink {
	return &ConsoleSink{
		w:        w,
		finished: make(chan feed.State, 1),
	}
}

// Append renders one message according to its classification
func (s *ConsoleSink) Append(ctx context.Context, msg feed.Message) {
	c := classify.Classify(msg.Text)

	switch c.Kind {
	case classify.KindToolResult:
		fmt.Fprintln(s.w, strings.TrimSpace(c.Header))
		fmt.Fprintln(s.w, indent(c.Body, "  "))
	case classify.KindThought, classify.KindTabular:
		fmt.Fprintln(s.w, c.Text)
	default:
		fmt.Fprintln(s.w, c.Text)
	}
}

// Processing is a no-op on the console; progress is the output itself
func (s *ConsoleSink) Processing(ctx context.Context, active bool) {}

// Done records the terminal state of the request
func (s *ConsoleSink) Done(ctx context.Context, state feed.State) {
	s.finished <- state
}

// Wait blocks until the current request reaches a terminal state
func (s *ConsoleSink) Wait() feed.State {
	return <-s.finished
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
