package feed

import (
	"context"
	"strings"
	"sync"

	"github.com/killallgit/otto/pkg/agent"
	"github.com/killallgit/otto/pkg/logger"
)

// Sink receives feed updates in arrival order. The TUI and the headless
// runner both implement it. A delivery may block until the consumer is
// ready; the exchange context bounds that wait, so cancelling the
// exchange releases any delivery still in flight.
type Sink interface {
	// Append delivers the next message of the current request
	Append(ctx context.Context, msg Message)
	// Processing flips while an exchange is active
	Processing(ctx context.Context, active bool)
	// Done reports the terminal state of the current request
	Done(ctx context.Context, state State)
}

// Controller owns the transcript and the single in-flight exchange. A
// new submission cancels and drains the previous exchange before its
// own begins, so at most one exchange is ever active.
type Controller struct {
	client *agent.Client

	mu         sync.Mutex
	cancel     context.CancelFunc
	drained    chan struct{}
	generation int

	transcript *Transcript
	state      State
}

func NewController(client *agent.Client) *Controller {
	return &Controller{
		client:     client,
		transcript: NewTranscript(),
		state:      StateIdle,
	}
}

// Transcript returns the messages of the current request
func (c *Controller) Transcript() *Transcript {
	return c.transcript
}

// State returns the current request state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit starts a new exchange for prompt and streams its messages to
// sink. A blank prompt is a silent no-op. Submit returns once the
// exchange is underway; delivery happens on a background goroutine.
func (c *Controller) Submit(ctx context.Context, prompt string, sink Sink) {
	if strings.TrimSpace(prompt) == "" {
		return
	}

	log := logger.WithComponent("feed")

	// The generation bump happens before the old exchange is cancelled,
	// so its drain sees itself replaced and goes quiet before we wait.
	exchangeCtx, cancel := context.WithCancel(ctx)
	drained := make(chan struct{})

	c.mu.Lock()
	prevCancel := c.cancel
	prevDrained := c.drained
	c.cancel = cancel
	c.drained = drained
	c.generation++
	generation := c.generation
	c.state = StateStreaming
	c.mu.Unlock()

	if prevCancel != nil {
		log.Debug("Cancelling in-flight exchange before new submission")
		prevCancel()
		<-prevDrained
	}

	c.transcript.Reset()
	events := c.client.Submit(exchangeCtx, prompt)

	go c.drain(exchangeCtx, events, sink, generation, drained, cancel)
}

func (c *Controller) drain(ctx context.Context, events <-chan agent.Event, sink Sink, generation int, drained chan struct{}, cancel context.CancelFunc) {
	defer close(drained)
	defer cancel()

	sink.Processing(ctx, true)

	final := StateComplete
	for ev := range events {
		msg := fromEvent(ev)
		if ev.Err {
			final = StateFailed
		}

		c.mu.Lock()
		current := c.generation == generation
		c.mu.Unlock()
		if !current {
			// Replaced mid-flight; the new exchange owns the sink now.
			return
		}

		c.transcript.Append(msg)
		sink.Append(ctx, msg)
	}

	c.mu.Lock()
	if c.generation != generation {
		c.mu.Unlock()
		return
	}
	c.state = final
	c.cancel = nil
	c.mu.Unlock()

	sink.Processing(ctx, false)
	sink.Done(ctx, final)
}

// Close is the teardown hook: it cancels any open exchange and waits
// for its resources to be released.
func (c *Controller) Close() {
	c.mu.Lock()
	cancel := c.cancel
	drained := c.drained
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if drained != nil {
		<-drained
	}
}
