package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/killallgit/otto/pkg/logger"
)

// TransportErrorText is the message shown in the feed when the exchange
// fails at the transport level. Streaming consumers never see a raw error;
// they see this as an ordinary message followed by end of stream.
const TransportErrorText = "An error occurred while communicating with the agent backend. Please make sure the server is running and try again."

// Event is one display message produced by an exchange, in arrival order.
type Event struct {
	Text string
	Err  bool
}

type promptRequest struct {
	Prompt string `json:"prompt"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Submit opens one exchange for the given prompt and returns a finite
// channel of events. A blank prompt opens no exchange and yields an
// immediately closed channel. Transport failures surface as a single
// error event; Submit itself never fails.
//
// Each call is a fresh exchange. The caller is responsible for cancelling
// a prior in-flight exchange (via its context) before starting a new one.
func (c *Client) Submit(ctx context.Context, prompt string) <-chan Event {
	events := make(chan Event, 16)

	if strings.TrimSpace(prompt) == "" {
		close(events)
		return events
	}

	go c.run(ctx, prompt, events)
	return events
}

func (c *Client) run(ctx context.Context, prompt string, events chan<- Event) {
	defer close(events)

	log := logger.WithComponent("agent")
	exchangeID := uuid.NewString()
	log.Debug("Opening exchange", "exchange_id", exchangeID, "prompt_length", len(prompt))

	body, err := json.Marshal(promptRequest{Prompt: prompt})
	if err != nil {
		log.Error("Failed to marshal prompt", "exchange_id", exchangeID, "error", err)
		events <- Event{Text: TransportErrorText, Err: true}
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/process/", bytes.NewReader(body))
	if err != nil {
		log.Error("Failed to create request", "exchange_id", exchangeID, "error", err)
		events <- Event{Text: TransportErrorText, Err: true}
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			log.Debug("Exchange cancelled", "exchange_id", exchangeID)
			return
		}
		log.Error("Exchange failed", "exchange_id", exchangeID, "error", err)
		events <- Event{Text: TransportErrorText, Err: true}
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error("Backend returned non-2xx status", "exchange_id", exchangeID, "status", resp.StatusCode)
		events <- Event{Text: TransportErrorText, Err: true}
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "text/event-stream") {
		c.readSingle(resp.Body, events, exchangeID)
		return
	}

	c.readStream(ctx, resp.Body, events, exchangeID)
}

// readSingle handles the non-streaming case: one JSON document with a
// single message field, emitted as exactly one event.
func (c *Client) readSingle(body io.Reader, events chan<- Event, exchangeID string) {
	log := logger.WithComponent("agent")

	var single messageResponse
	if err := json.NewDecoder(body).Decode(&single); err != nil {
		log.Error("Failed to decode response", "exchange_id", exchangeID, "error", err)
		events <- Event{Text: TransportErrorText, Err: true}
		return
	}

	log.Debug("Exchange complete", "exchange_id", exchangeID, "streaming", false)
	events <- Event{Text: single.Message}
}

// readStream pulls raw chunks from the body and emits one event per
// complete SSE frame, in arrival order.
func (c *Client) readStream(ctx context.Context, body io.Reader, events chan<- Event, exchangeID string) {
	log := logger.WithComponent("agent")

	frames := newFrameBuffer()
	buf := make([]byte, 4096)
	emitted := 0

	for {
		n, err := body.Read(buf)
		if n > 0 {
			for _, payload := range frames.Feed(buf[:n]) {
				select {
				case events <- Event{Text: payload}:
					emitted++
				case <-ctx.Done():
					log.Debug("Exchange cancelled", "exchange_id", exchangeID, "events", emitted)
					return
				}
			}
		}
		if err != nil {
			if err == io.EOF {
				if rest := frames.Flush(); rest != "" {
					log.Debug("Discarding undelimited trailing frame", "exchange_id", exchangeID, "length", len(rest))
				}
				log.Debug("Exchange complete", "exchange_id", exchangeID, "streaming", true, "events", emitted)
				return
			}
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				log.Debug("Exchange cancelled", "exchange_id", exchangeID, "events", emitted)
				return
			}
			log.Error("Stream read failed", "exchange_id", exchangeID, "error", err)
			events <- Event{Text: TransportErrorText, Err: true}
			return
		}
	}
}
