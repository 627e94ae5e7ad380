package cli

import (
	"errors"
	"strings"
)

var (
	errUnterminatedQuote  = errors.New("unterminated quoted string")
	errUnterminatedEscape = errors.New("unterminated escape sequence")
)

// splitShellArgs splits a shell line into words. Single quotes are literal,
// double quotes allow backslash escapes, and a backslash outside quotes
// escapes the next rune. An empty quoted word is kept.
func splitShellArgs(line string) ([]string, error) {
	var (
		words   []string
		cur     strings.Builder
		quote   rune
		escaped bool
		started bool
	)

	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case quote == '\'':
			if r == '\'' {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case quote == '"':
			switch r {
			case '"':
				quote = 0
			case '\\':
				escaped = true
			default:
				cur.WriteRune(r)
			}
		case r == '\\':
			escaped, started = true, true
		case r == '\'' || r == '"':
			quote, started = r, true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if started {
				words = append(words, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}

	if escaped {
		return nil, errUnterminatedEscape
	}
	if quote != 0 {
		return nil, errUnterminatedQuote
	}
	if started {
		words = append(words, cur.String())
	}
	return words, nil
}
