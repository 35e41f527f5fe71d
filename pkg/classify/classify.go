package classify

import (
	"regexp"
	"strings"
)

// Kind is the semantic category of a backend message, decided at render
// time from the text alone.
type Kind int

const (
	// KindPlain is the fallthrough: ordinary inline text
	KindPlain Kind = iota
	// KindToolResult is a tool invocation with a result body
	KindToolResult
	// KindThought is the agent reasoning about its next step
	KindThought
	// KindTabular is data-shaped output rendered as a monospaced block
	KindTabular
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindToolResult:
		return "tool"
	case KindThought:
		return "thought"
	case KindTabular:
		return "data"
	case KindPlain:
		return "plain"
	default:
		return "unknown"
	}
}

// Classification describes how a message should be rendered. For tool
// results Header and Body carry the split halves; for every other kind
// the full text is in Text.
type Classification struct {
	Kind   Kind
	Text   string
	Header string // tool results: text before the result separator
	Body   string // tool results: trimmed text after the result separator
}

// Wire markers the backend embeds in its log-derived messages.
const (
	toolMarker      = "🎯"
	resultSeparator = "Result:"
	thoughtMarker   = "✨ Manus's thoughts:"
)

// Keywords that mark financial/tabular tool output headers.
var tabularKeywords = []string{"Date", "Open", "High", "Low", "Close", "Volume"}

var (
	isoDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	// Three or more columns separated by runs of two or more spaces.
	columnHeaderPattern = regexp.MustCompile(`\S+\s{2,}\S+\s{2,}\S+`)
)

// Classify determines the category of a single message. It is pure and
// total: the same text always yields the same result, and unmatched
// input falls through to KindPlain.
//
// Rule order matters. Tool results and thoughts are checked before the
// tabular heuristics so that a result body containing commas or
// newlines is not misread as generic data output.
func Classify(text string) Classification {
	if strings.Contains(text, toolMarker) && strings.Contains(text, resultSeparator) {
		header, body, _ := strings.Cut(text, resultSeparator)
		return Classification{
			Kind:   KindToolResult,
			Text:   text,
			Header: header,
			Body:   strings.TrimSpace(body),
		}
	}

	if strings.Contains(text, thoughtMarker) {
		return Classification{Kind: KindThought, Text: text}
	}

	if looksTabular(text) {
		return Classification{Kind: KindTabular, Text: text}
	}

	return Classification{Kind: KindPlain, Text: text}
}

// looksTabular applies the data-output heuristics. These are heuristics
// over log-derived text, not a protocol; any one match is enough.
func looksTabular(text string) bool {
	for _, keyword := range tabularKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	if columnHeaderPattern.MatchString(text) {
		return true
	}
	if strings.Contains(text, "\n") {
		return true
	}
	if isoDatePattern.MatchString(text) {
		return true
	}
	if strings.Contains(text, "|") {
		return true
	}
	if strings.Count(text, ",") >= 3 {
		return true
	}
	return false
}
