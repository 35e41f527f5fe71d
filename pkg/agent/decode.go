package agent

import (
	"strings"
	"unicode/utf8"
)

// utf8Decoder converts raw chunks to text across chunk boundaries. A
// multi-byte rune split between two reads is held back until its
// continuation bytes arrive; genuinely invalid bytes become U+FFFD so a
// corrupt unit never stalls the stream.
type utf8Decoder struct {
	tail []byte
}

// Decode returns the text for chunk, carrying any trailing partial rune
// into the next call.
func (d *utf8Decoder) Decode(chunk []byte) string {
	data := chunk
	if len(d.tail) > 0 {
		data = append(d.tail, chunk...)
		d.tail = nil
	}

	if n := incompleteTailLen(data); n > 0 {
		d.tail = append([]byte(nil), data[len(data)-n:]...)
		data = data[:len(data)-n]
	}

	if utf8.Valid(data) {
		return string(data)
	}

	var sb strings.Builder
	sb.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		sb.WriteRune(r) // RuneError for invalid sequences
		data = data[size:]
	}
	return sb.String()
}

// Flush converts a partial rune still held at end of stream into the
// replacement rune. A stream never ends cleanly mid-rune, so the held
// bytes can no longer complete.
func (d *utf8Decoder) Flush() string {
	if len(d.tail) == 0 {
		return ""
	}
	d.tail = nil
	return string(utf8.RuneError)
}

// incompleteTailLen reports how many bytes at the end of data begin a
// rune whose continuation bytes have not arrived yet. Zero means the
// data ends on a rune boundary (or on bytes that are invalid outright).
func incompleteTailLen(data []byte) int {
	end := len(data)
	for i := 1; i <= utf8.UTFMax && i <= end; i++ {
		b := data[end-i]
		if b < utf8.RuneSelf {
			return 0
		}
		if b&0xC0 == 0xC0 { // start byte of a multi-byte rune
			if expectedRuneLen(b) > i {
				return i
			}
			return 0
		}
		// continuation byte, keep scanning backwards
	}
	return 0
}

func expectedRuneLen(b byte) int {
	switch {
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}
