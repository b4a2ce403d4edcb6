package books

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Ref represents a parsed free-text scripture reference.
type Ref struct {
	// Book is the book name exactly as written (e.g., "1 Chronicles",
	// "I Chr"). Resolution against the corpus goes through ExpandVariants.
	Book string `json:"book"`

	// Chapter is the chapter number (1-indexed).
	Chapter int `json:"chapter"`

	// Verse is the verse number (1-indexed).
	Verse int `json:"verse"`

	// VerseEnd is the ending verse for ranges (optional).
	VerseEnd int `json:"verse_end,omitempty"`
}

// refGrammar is the participle grammar for human-readable references.
// Examples: "John 3:16", "1 Chronicles 29:11", "Song of Solomon 2:1",
// "Psalm 23:1-4", "I Chr 29:11".
//
//nolint:govet // participle grammar tags are not standard struct tags
type refGrammar struct {
	Prefix    string     `parser:"@Int?"`
	Words     []string   `parser:"@Word+"`
	Chapter   int        `parser:"@Int"`
	VersePart *versePart `parser:"( \":\" @@ )?"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type versePart struct {
	Verse int  `parser:"@Int"`
	End   *int `parser:"( \"-\" @Int )?"`
}

// refLexer defines the lexer for free-text references.
var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Word", Pattern: `[A-Za-z]+\.?`},
	{Name: "Punct", Pattern: `[:\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// refParser is the participle parser for free-text references.
var refParser = participle.MustBuild[refGrammar](
	participle.Lexer(refLexer),
	participle.Elide("Whitespace"),
)

// ParseReference parses a human-readable reference string.
// Supported formats:
//   - "John 3:16"
//   - "1 Chronicles 29:11"
//   - "Psalm 23" (whole chapter, Verse = 0)
//   - "Psalm 23:1-4" (verse range)
//   - "I Chr 29:11" (roman prefix and abbreviation)
func ParseReference(s string) (*Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty reference string")
	}

	parsed, err := refParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("invalid reference format: %q: %w", s, err)
	}

	book := strings.Join(parsed.Words, " ")
	if parsed.Prefix != "" {
		book = parsed.Prefix + " " + book
	}

	ref := &Ref{
		Book:    book,
		Chapter: parsed.Chapter,
	}
	if parsed.VersePart != nil {
		ref.Verse = parsed.VersePart.Verse
		if parsed.VersePart.End != nil {
			ref.VerseEnd = *parsed.VersePart.End
		}
	}
	return ref, nil
}

// String returns the reference in display form, e.g. "John 3:16".
func (r *Ref) String() string {
	var sb strings.Builder
	sb.WriteString(r.Book)
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(r.Chapter))
	if r.Verse > 0 {
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(r.Verse))
		if r.VerseEnd > 0 {
			sb.WriteString("-")
			sb.WriteString(strconv.Itoa(r.VerseEnd))
		}
	}
	return sb.String()
}

// IsRange returns true if this reference spans multiple verses.
func (r *Ref) IsRange() bool {
	return r.VerseEnd > 0 && r.VerseEnd > r.Verse
}

// Candidates returns the candidate canonical book names for this reference,
// in resolution order.
func (r *Ref) Candidates() []string {
	return ExpandVariants(r.Book)
}
