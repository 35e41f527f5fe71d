package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func feedString(b *frameBuffer, s string) []string {
	return b.Feed([]byte(s))
}

func TestFrameBuffer(t *testing.T) {
	t.Run("should emit events from a single chunk in order", func(t *testing.T) {
		b := newFrameBuffer()

		payloads := feedString(b, "data: hello\n\ndata: world\n\n")
		assert.Equal(t, []string{"hello", "world"}, payloads)
		assert.Empty(t, b.Pending())
	})

	t.Run("should reassemble an event split across chunks", func(t *testing.T) {
		b := newFrameBuffer()

		assert.Empty(t, feedString(b, "data: hel"))
		assert.Equal(t, []string{"hello"}, feedString(b, "lo\n\n"))
	})

	t.Run("should handle a split inside the data prefix", func(t *testing.T) {
		b := newFrameBuffer()

		assert.Empty(t, feedString(b, "da"))
		assert.Empty(t, feedString(b, "ta: pay"))
		assert.Equal(t, []string{"payload"}, feedString(b, "load\n\n"))
	})

	t.Run("should handle a split inside the delimiter", func(t *testing.T) {
		b := newFrameBuffer()

		assert.Empty(t, feedString(b, "data: first\n"))
		// The second chunk completes both frames at once.
		assert.Equal(t, []string{"first", "second"}, feedString(b, "\ndata: second\n\n"))
	})

	t.Run("should not split on single newlines inside a payload", func(t *testing.T) {
		b := newFrameBuffer()

		payloads := feedString(b, "data: line one\nline two\n\n")
		assert.Equal(t, []string{"line one\nline two"}, payloads)
	})

	t.Run("should drop empty segments without desynchronizing", func(t *testing.T) {
		b := newFrameBuffer()

		payloads := feedString(b, "data: before\n\n\n\ndata: after\n\n")
		assert.Equal(t, []string{"before", "after"}, payloads)
		assert.Empty(t, b.Pending())
	})

	t.Run("should drop segments without the data prefix", func(t *testing.T) {
		b := newFrameBuffer()

		payloads := feedString(b, ": keepalive\n\nevent: ping\n\ndata: real\n\n")
		assert.Equal(t, []string{"real"}, payloads)
	})

	t.Run("should retain a partial trailing event", func(t *testing.T) {
		b := newFrameBuffer()

		payloads := feedString(b, "data: done\n\ndata: not yet")
		assert.Equal(t, []string{"done"}, payloads)
		assert.Equal(t, "data: not yet", b.Pending())
	})

	t.Run("should flush a truncated rune into the trailing remainder", func(t *testing.T) {
		b := newFrameBuffer()

		truncated := []byte("data: cut 🚀")
		assert.Empty(t, b.Feed(truncated[:len(truncated)-2]))
		assert.Equal(t, "data: cut �", b.Flush())
	})
}

// Any chunking of the same bytes must produce the same event sequence.
func TestFrameBufferChunkingInvariance(t *testing.T) {
	input := "data: alpha\n\ndata: beta\ngamma\n\n\n\ndata: 🎯 delta\n\n"
	want := []string{"alpha", "beta\ngamma", "🎯 delta"}

	raw := []byte(input)
	for split := 1; split < len(raw); split++ {
		b := newFrameBuffer()
		var got []string
		got = append(got, b.Feed(raw[:split])...)
		got = append(got, b.Feed(raw[split:])...)

		assert.Equalf(t, want, got, "split at byte %d", split)
		assert.Emptyf(t, b.Pending(), "split at byte %d", split)
	}
}

func TestFrameBufferBytePerByte(t *testing.T) {
	input := "data: hello\n\ndata: wörld\n\n"
	want := []string{"hello", "wörld"}

	b := newFrameBuffer()
	var got []string
	for _, by := range []byte(input) {
		got = append(got, b.Feed([]byte{by})...)
	}

	assert.Equal(t, want, got)
}
