package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscript(t *testing.T) {
	t.Run("should append in order", func(t *testing.T) {
		tr := NewTranscript()
		tr.Append(NewMessage("a"))
		tr.Append(NewMessage("b"))

		msgs := tr.Messages()
		assert.Equal(t, 2, tr.Len())
		assert.Equal(t, "a", msgs[0].Text)
		assert.Equal(t, "b", msgs[1].Text)
	})

	t.Run("should return an independent copy", func(t *testing.T) {
		tr := NewTranscript()
		tr.Append(NewMessage("original"))

		msgs := tr.Messages()
		msgs[0].Text = "mutated"

		assert.Equal(t, "original", tr.Messages()[0].Text)
	})

	t.Run("should clear on reset", func(t *testing.T) {
		tr := NewTranscript()
		tr.Append(NewMessage("gone"))
		tr.Reset()

		assert.Zero(t, tr.Len())
		assert.Empty(t, tr.Messages())
	})
}

func TestState(t *testing.T) {
	t.Run("should format states", func(t *testing.T) {
		assert.Equal(t, "idle", StateIdle.String())
		assert.Equal(t, "streaming", StateStreaming.String())
		assert.Equal(t, "complete", StateComplete.String())
		assert.Equal(t, "failed", StateFailed.String())
	})

	t.Run("should allow submission only outside streaming", func(t *testing.T) {
		assert.True(t, StateIdle.Terminal())
		assert.True(t, StateComplete.Terminal())
		assert.True(t, StateFailed.Terminal())
		assert.False(t, StateStreaming.Terminal())
	})
}

func TestMessage(t *testing.T) {
	t.Run("should flag error messages", func(t *testing.T) {
		assert.True(t, NewErrorMessage("boom").Err)
		assert.False(t, NewMessage("fine").Err)
	})

	t.Run("should detect empty content", func(t *testing.T) {
		assert.True(t, NewMessage("  \n").IsEmpty())
		assert.False(t, NewMessage("text").IsEmpty())
	})
}
