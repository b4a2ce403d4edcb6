// Package index derives lookup structures from a loaded corpus: the direct
// verse-lookup map, the per-book ordered verse map with chapter summaries,
// the books-info projection, and the word-search trie.
package index

import (
	"sort"

	"github.com/FocuswithJustin/CedarBible/core/corpus"
	"github.com/FocuswithJustin/CedarBible/core/trie"
)

// ChapterInfo summarizes one chapter of a book.
type ChapterInfo struct {
	// Chapter is the chapter number (1-indexed).
	Chapter int `json:"chapter"`

	// VerseCount is the number of verses in the chapter.
	VerseCount int `json:"verse_count"`
}

// BookInfo is one entry of the books-info projection.
type BookInfo struct {
	// Name is the canonical book name.
	Name string `json:"name"`

	// ChapterCount is the number of chapters in the book.
	ChapterCount int `json:"chapter_count"`

	// Order is the canonical book ordinal (1..66).
	Order int `json:"order"`
}

// Indices holds every derived structure for one corpus. Built once, then
// published atomically and treated as immutable; readers either see a fully
// built Indices or none at all.
type Indices struct {
	// VerseLookup maps "BookName_chapter_verse" keys to verses.
	VerseLookup map[string]corpus.Verse

	// BookIndex maps canonical book names to verses sorted by
	// (chapter, verse).
	BookIndex map[string][]corpus.Verse

	// ChapterSummaries maps book names to per-chapter verse counts in
	// chapter order.
	ChapterSummaries map[string][]ChapterInfo

	// Books is the ordered books-info projection.
	Books []BookInfo

	// Trie is the word-search trie.
	Trie *trie.Trie

	// Keys maps a compact verse key back to its position in the corpus,
	// resolving trie postings to verses without duplicating text.
	Keys map[corpus.VerseKey]int
}

// Resolve maps trie posting keys back to verses in corpus order.
// Keys that don't resolve (stale postings after a corpus swap) are skipped.
func (ix *Indices) Resolve(c *corpus.Corpus, keys []corpus.VerseKey) []corpus.Verse {
	verses := make([]corpus.Verse, 0, len(keys))
	for _, k := range keys {
		if pos, ok := ix.Keys[k]; ok && pos < len(c.Verses) {
			verses = append(verses, c.Verses[pos])
		}
	}
	sort.Slice(verses, func(i, j int) bool {
		a, b := verses[i], verses[j]
		if a.Book != b.Book {
			return a.Book < b.Book
		}
		if a.Chapter != b.Chapter {
			return a.Chapter < b.Chapter
		}
		return a.Verse < b.Verse
	})
	return verses
}
