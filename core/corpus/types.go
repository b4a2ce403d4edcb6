package corpus

import (
	"fmt"
	"strings"
)

// pilcrow is the paragraph marker embedded in some KJV source texts.
const pilcrow = "¶"

// Verse is a single addressable unit of scripture text.
// Verses are immutable after load.
type Verse struct {
	// BookName is the display name of the book (e.g., "1 Chronicles").
	BookName string `json:"book_name"`

	// Book is the canonical book ordinal (1..66), giving a total order
	// across the corpus independent of BookName spelling.
	Book int `json:"book"`

	// Chapter is the chapter number (1-indexed).
	Chapter int `json:"chapter"`

	// Verse is the verse number within the chapter (1-indexed).
	Verse int `json:"verse"`

	// Text is the raw verse text, possibly containing paragraph markers.
	Text string `json:"text"`
}

// Key returns the lookup key for this verse: "BookName_chapter_verse".
func (v *Verse) Key() string {
	return fmt.Sprintf("%s_%d_%d", v.BookName, v.Chapter, v.Verse)
}

// VerseKey returns the compact index identity for this verse.
func (v *Verse) VerseKey() VerseKey {
	return VerseKey{Book: v.Book, Chapter: v.Chapter, Verse: v.Verse}
}

// DisplayText returns the verse text with paragraph markers removed.
func (v *Verse) DisplayText() string {
	if !strings.Contains(v.Text, pilcrow) {
		return v.Text
	}
	return strings.TrimSpace(strings.ReplaceAll(v.Text, pilcrow, ""))
}

// Reference returns a human-readable reference, e.g. "John 3:16".
func (v *Verse) Reference() string {
	return fmt.Sprintf("%s %d:%d", v.BookName, v.Chapter, v.Verse)
}

// VerseKey is the compact (book, chapter, verse) identity used inside
// indices and trie posting sets. It deliberately excludes the book name so
// the trie stores three ints per posting instead of a copied verse.
type VerseKey struct {
	Book    int `json:"book"`
	Chapter int `json:"chapter"`
	Verse   int `json:"verse"`
}

// Less reports whether k sorts before other in canonical corpus order.
func (k VerseKey) Less(other VerseKey) bool {
	if k.Book != other.Book {
		return k.Book < other.Book
	}
	if k.Chapter != other.Chapter {
		return k.Chapter < other.Chapter
	}
	return k.Verse < other.Verse
}

// Corpus is the complete, ordered, immutable collection of verses.
type Corpus struct {
	// Translation is an optional identifier for the text edition.
	Translation string `json:"translation,omitempty"`

	// Verses holds every verse in canonical order.
	Verses []Verse `json:"verses"`
}

// Len returns the number of verses in the corpus.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Verses)
}
