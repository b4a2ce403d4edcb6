package index

import (
	"strings"
	"unicode"
)

// minTokenLen is the shortest token worth indexing. Shorter tokens ("a",
// "of", "ye") match most of the corpus and bloat the trie for no benefit.
const minTokenLen = 3

// Tokenize splits verse display text into lowercase index tokens: split on
// any non-alphanumeric boundary, lowercase, drop tokens of length <= 2.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if len(f) < minTokenLen {
			continue
		}
		tokens = append(tokens, strings.ToLower(f))
	}
	return tokens
}
