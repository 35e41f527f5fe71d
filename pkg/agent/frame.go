package agent

import "strings"

// eventDelimiter separates SSE frames. Detection is on the literal
// two-newline sequence; payloads may themselves contain single newlines.
const eventDelimiter = "\n\n"

// dataPrefix marks a frame carrying payload. Frames without it are
// protocol framing and are dropped.
const dataPrefix = "data: "

// frameBuffer reassembles SSE frames from arbitrarily split byte chunks.
// After every Feed the buffer holds at most one partial trailing frame;
// every complete frame seen so far has been returned.
type frameBuffer struct {
	decoder utf8Decoder
	pending string
}

func newFrameBuffer() *frameBuffer {
	return &frameBuffer{}
}

// Feed appends a raw chunk and returns the payloads of all frames it
// completed, in arrival order.
func (b *frameBuffer) Feed(chunk []byte) []string {
	b.pending += b.decoder.Decode(chunk)

	var payloads []string
	for {
		idx := strings.Index(b.pending, eventDelimiter)
		if idx < 0 {
			break
		}

		segment := b.pending[:idx]
		b.pending = b.pending[idx+len(eventDelimiter):]

		// Empty segments (back-to-back delimiters) and frames without
		// the data prefix carry no payload.
		if payload, ok := strings.CutPrefix(segment, dataPrefix); ok {
			payloads = append(payloads, payload)
		}
	}
	return payloads
}

// Pending returns the undelimited remainder, useful for diagnostics.
func (b *frameBuffer) Pending() string {
	return b.pending
}

// Flush folds any partial rune held by the decoder into the pending
// remainder and returns it. Called at end of stream, where an
// undelimited trailing frame is reported but never emitted.
func (b *frameBuffer) Flush() string {
	b.pending += b.decoder.Flush()
	return b.pending
}
