package headless

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/killallgit/otto/pkg/agent"
	"github.com/killallgit/otto/pkg/feed"
)

// Run executes a single prompt without the TUI and prints each message
// to stdout in arrival order.
func Run(client *agent.Client, prompt string) error {
	return runTo(os.Stdout, client, prompt)
}

func runTo(w io.Writer, client *agent.Client, prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return fmt.Errorf("prompt cannot be empty in headless mode")
	}

	controller := feed.NewController(client)
	defer controller.Close()

	sink := NewConsoleSink(w)
	controller.Submit(context.Background(), prompt, sink)

	if state := sink.Wait(); state == feed.StateFailed {
		return fmt.Errorf("request failed: %s", agent.TransportErrorText)
	}
	return nil
}
