package books

import "strings"

// Canonical book names in canonical order (ordinal 1..66).
var canonical = []string{
	"Genesis", "Exodus", "Leviticus", "Numbers", "Deuteronomy",
	"Joshua", "Judges", "Ruth", "1 Samuel", "2 Samuel",
	"1 Kings", "2 Kings", "1 Chronicles", "2 Chronicles", "Ezra",
	"Nehemiah", "Esther", "Job", "Psalms", "Proverbs",
	"Ecclesiastes", "Song of Solomon", "Isaiah", "Jeremiah", "Lamentations",
	"Ezekiel", "Daniel", "Hosea", "Joel", "Amos",
	"Obadiah", "Jonah", "Micah", "Nahum", "Habakkuk",
	"Zephaniah", "Haggai", "Zechariah", "Malachi",
	"Matthew", "Mark", "Luke", "John", "Acts",
	"Romans", "1 Corinthians", "2 Corinthians", "Galatians", "Ephesians",
	"Philippians", "Colossians", "1 Thessalonians", "2 Thessalonians", "1 Timothy",
	"2 Timothy", "Titus", "Philemon", "Hebrews", "James",
	"1 Peter", "2 Peter", "1 John", "2 John", "3 John",
	"Jude", "Revelation",
}

// canonicalOrder maps canonical name to ordinal (1-indexed).
var canonicalOrder = func() map[string]int {
	m := make(map[string]int, len(canonical))
	for i, name := range canonical {
		m[name] = i + 1
	}
	return m
}()

// aliases maps alternate spellings to canonical names. The legacy sources
// carried two partially overlapping tables (a small alias table plus an
// abbreviation table used only for reference parsing); they are unified
// here, with abbreviations derived separately in variants.go.
var aliases = map[string]string{
	"Psalm":                "Psalms",
	"Song of Songs":        "Song of Solomon",
	"Canticles":            "Song of Solomon",
	"Revelation of John":   "Revelation",
	"The Revelation":       "Revelation",
	"Acts of the Apostles": "Acts",
	"1st Samuel":           "1 Samuel",
	"2nd Samuel":           "2 Samuel",
	"1st Kings":            "1 Kings",
	"2nd Kings":            "2 Kings",
	"1st Chronicles":       "1 Chronicles",
	"2nd Chronicles":       "2 Chronicles",
	"1st Corinthians":      "1 Corinthians",
	"2nd Corinthians":      "2 Corinthians",
	"1st Thessalonians":    "1 Thessalonians",
	"2nd Thessalonians":    "2 Thessalonians",
	"1st Timothy":          "1 Timothy",
	"2nd Timothy":          "2 Timothy",
	"1st Peter":            "1 Peter",
	"2nd Peter":            "2 Peter",
	"1st John":             "1 John",
	"2nd John":             "2 John",
	"3rd John":             "3 John",
}

// Normalize maps an alternate or abbreviated book name to its canonical
// spelling. Unknown names are returned trimmed but otherwise unchanged, so
// callers can use the result directly as a lookup key.
func Normalize(name string) string {
	trimmed := strings.TrimSpace(name)
	if c, ok := aliases[trimmed]; ok {
		return c
	}
	return trimmed
}

// IsCanonical reports whether name is a canonical book name.
func IsCanonical(name string) bool {
	_, ok := canonicalOrder[name]
	return ok
}

// Order returns the canonical ordinal (1..66) for a book name, resolving
// aliases first. Returns 0 if the name is unknown.
func Order(name string) int {
	return canonicalOrder[Normalize(name)]
}

// Canonical returns the canonical book names in canonical order.
// The returned slice is a copy.
func Canonical() []string {
	out := make([]string, len(canonical))
	copy(out, canonical)
	return out
}
