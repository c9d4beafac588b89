// Package align implements the word-alignment engine that keeps two
// parallel token sequences (original text and its translation) visually
// in sync while the pointer moves across either column.
//
// The package is pure index math plus one small state machine: nothing in
// here performs I/O, and no function returns an error. Missing data
// (unmeasured boxes, absent mappings, out-of-range indices) always
// degrades to a "none" result rather than failing.
package align

import "strings"

// Origin identifies which of the two parallel sequences a token belongs to.
type Origin int

const (
	// OriginSource is the original-language column (e.g. Arabic).
	OriginSource Origin = iota
	// OriginTarget is the translation column.
	OriginTarget
)

func (o Origin) String() string {
	switch o {
	case OriginSource:
		return "source"
	case OriginTarget:
		return "target"
	default:
		return "unknown"
	}
}

// Token is a whitespace-delimited unit of displayed text. Index is its
// 0-based position within the sequence it was tokenized from.
type Token struct {
	Text  string
	Index int
}

// Tokenize splits text into display tokens. Leading and trailing
// whitespace is trimmed and runs of whitespace collapse into a single
// separator, so token indices are dense. Empty or all-whitespace input
// yields a nil slice, never an error.
func Tokenize(text string) []Token {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	tokens := make([]Token, len(fields))
	for i, f := range fields {
		tokens[i] = Token{Text: f, Index: i}
	}
	return tokens
}

// JoinTokens reassembles token text with single spaces. Tokenize and
// JoinTokens round-trip for any input without altered whitespace runs.
func JoinTokens(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.Text
	}
	return strings.Join(parts, " ")
}
