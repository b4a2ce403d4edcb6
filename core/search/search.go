// Package search implements the query engine: free-text queries answered by
// trie lookup for single words, or a chunked conjunctive scan for multi-word
// queries, with cooperative cancellation at chunk boundaries.
package search

import (
	"context"
	"strings"

	"github.com/FocuswithJustin/CedarBible/core/corpus"
	"github.com/FocuswithJustin/CedarBible/core/index"
)

// scanChunkSize bounds how many verses a linear scan visits between
// cancellation checks.
const scanChunkSize = 500

// Query runs a free-text search over the corpus.
//
// ix may be nil (indices not yet built); the engine then falls back to a
// case-insensitive substring scan so callers never see an artificial
// "search unavailable" state during cold start.
//
// Results follow corpus order, are duplicate-free, unranked, and truncated
// to limit. An empty or whitespace-only query yields an empty result and a
// nil error. A cancelled query returns the results collected so far along
// with ctx.Err().
func Query(ctx context.Context, c *corpus.Corpus, ix *index.Indices, query string, limit int) ([]corpus.Verse, error) {
	if c == nil || c.Len() == 0 || limit <= 0 {
		return nil, nil
	}

	terms := strings.Fields(strings.ToLower(strings.TrimSpace(query)))
	if len(terms) == 0 {
		return nil, nil
	}

	if len(terms) == 1 && ix != nil {
		keys := ix.Trie.Search(terms[0])
		verses := ix.Resolve(c, keys)
		if len(verses) > limit {
			verses = verses[:limit]
		}
		return verses, nil
	}

	return scan(ctx, c, terms, limit)
}

// scan is the chunked linear pass selecting verses whose display text
// contains every term as a substring (conjunctive, order-independent).
func scan(ctx context.Context, c *corpus.Corpus, terms []string, limit int) ([]corpus.Verse, error) {
	var results []corpus.Verse

	for lo := 0; lo < c.Len(); lo += scanChunkSize {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		hi := lo + scanChunkSize
		if hi > c.Len() {
			hi = c.Len()
		}

		for i := lo; i < hi; i++ {
			v := &c.Verses[i]
			if containsAll(strings.ToLower(v.DisplayText()), terms) {
				results = append(results, *v)
				if len(results) >= limit {
					return results, nil
				}
			}
		}
	}
	return results, nil
}

// containsAll reports whether text contains every term as a substring.
func containsAll(text string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(text, term) {
			return false
		}
	}
	return true
}
