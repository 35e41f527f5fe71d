package tui

import (
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

var codeFencePattern = regexp.MustCompile("(?s)```([a-zA-Z0-9_+-]*)\n(.*?)```")

// highlightCodeBlocks replaces fenced code blocks in plain messages with
// syntax-highlighted terminal output. Text outside fences is untouched;
// a block that fails to tokenise is left as-is.
func highlightCodeBlocks(text string) string {
	if !strings.Contains(text, "```") {
		return text
	}

	return codeFencePattern.ReplaceAllStringFunc(text, func(block string) string {
		match := codeFencePattern.FindStringSubmatch(block)
		if match == nil {
			return block
		}
		return highlightCode(match[2], match[1])
	})
}

func highlightCode(code, language string) string {
	var lexer chroma.Lexer
	if language != "" {
		lexer = lexers.Get(language)
	}
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, styles.Get("monokai"), iterator); err != nil {
		return code
	}
	return buf.String()
}
