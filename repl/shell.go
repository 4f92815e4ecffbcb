package repl

import (
	"errors"
	"fmt"
	"strings"
)

// SplitCommands splits a line into commands, each being a list of arguments.
// Commands are separated by newlines or `;`, arguments by spaces or tabs.
// Supports single quotes (no escaping), double quotes (backslash escaping)
// and basic escaping with backslash. An empty quoted string, with either kind
// of quotes, is an empty argument, which is how the empty word is written.
// Returns an error if quotes are unclosed or escape sequences are unterminated.
func SplitCommands(line string) ([][]string, error) {
	var cmds [][]string
	var parts []string
	var current strings.Builder
	inArg := false // current holds an argument, possibly empty ("").
	inQuote := rune(0)
	escaped := false

	endArg := func() {
		if inArg {
			parts = append(parts, current.String())
			current.Reset()
			inArg = false
		}
	}
	endCmd := func() {
		endArg()
		if len(parts) > 0 {
			cmds = append(cmds, parts)
			parts = nil
		}
	}
	for _, r := range line {
		if escaped {
			current.WriteRune(r)
			escaped = false
			continue
		}
		// Backslash is literal inside single quotes, escapes the next char otherwise.
		if r == '\\' && inQuote != '\'' {
			escaped = true
			inArg = true
			continue
		}
		if inQuote != 0 {
			if r == inQuote {
				inQuote = 0
			} else {
				current.WriteRune(r)
			}
			continue
		}
		switch r {
		case '"', '\'':
			inQuote = r
			inArg = true
		case ' ', '\t', '\r':
			endArg()
		case '\n', ';':
			endCmd()
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if escaped {
		return nil, errors.New("unterminated escape sequence: command ends with backslash")
	}
	if inQuote != 0 {
		return nil, fmt.Errorf("unclosed quote: missing closing %c", inQuote)
	}
	endCmd()
	return cmds, nil
}
