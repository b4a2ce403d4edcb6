package books

import "strings"

// abbreviations maps common book abbreviations to canonical names. These are
// only consulted by ExpandVariants, not by Normalize: abbreviation forms show
// up in free-text references ("1 Chr 29:11") but never in the corpus itself.
var abbreviations = map[string]string{
	"Gen":  "Genesis",
	"Exo":  "Exodus",
	"Ex":   "Exodus",
	"Lev":  "Leviticus",
	"Num":  "Numbers",
	"Deut": "Deuteronomy",
	"Deu":  "Deuteronomy",
	"Josh": "Joshua",
	"Judg": "Judges",
	"1 Sam": "1 Samuel",
	"2 Sam": "2 Samuel",
	"1 Kgs": "1 Kings",
	"2 Kgs": "2 Kings",
	"1 Chr": "1 Chronicles",
	"2 Chr": "2 Chronicles",
	"Neh":  "Nehemiah",
	"Est":  "Esther",
	"Ps":   "Psalms",
	"Psa":  "Psalms",
	"Prov": "Proverbs",
	"Eccl": "Ecclesiastes",
	"Song": "Song of Solomon",
	"Isa":  "Isaiah",
	"Jer":  "Jeremiah",
	"Lam":  "Lamentations",
	"Ezek": "Ezekiel",
	"Dan":  "Daniel",
	"Hos":  "Hosea",
	"Obad": "Obadiah",
	"Jon":  "Jonah",
	"Mic":  "Micah",
	"Nah":  "Nahum",
	"Hab":  "Habakkuk",
	"Zeph": "Zephaniah",
	"Hag":  "Haggai",
	"Zech": "Zechariah",
	"Mal":  "Malachi",
	"Matt": "Matthew",
	"Mk":   "Mark",
	"Lk":   "Luke",
	"Jn":   "John",
	"Rom":  "Romans",
	"1 Cor": "1 Corinthians",
	"2 Cor": "2 Corinthians",
	"Gal":  "Galatians",
	"Eph":  "Ephesians",
	"Phil": "Philippians",
	"Col":  "Colossians",
	"1 Thess": "1 Thessalonians",
	"2 Thess": "2 Thessalonians",
	"1 Tim": "1 Timothy",
	"2 Tim": "2 Timothy",
	"Tit":  "Titus",
	"Phlm": "Philemon",
	"Heb":  "Hebrews",
	"Jas":  "James",
	"1 Pet": "1 Peter",
	"2 Pet": "2 Peter",
	"Rev":  "Revelation",
}

// romanPrefixes maps roman-numeral book prefixes to their arabic form.
// Order matters: longer prefixes must be tried before shorter ones.
var romanPrefixes = []struct {
	roman  string
	arabic string
}{
	{"III ", "3 "},
	{"II ", "2 "},
	{"I ", "1 "},
}

// ExpandVariants returns the deterministic list of candidate canonical names
// for a possibly abbreviated or aliased book name, most likely first. The
// caller tries each candidate against the corpus until one resolves. The
// input itself (trimmed) is always the first candidate, so exact matches win.
func ExpandVariants(name string) []string {
	trimmed := strings.TrimSpace(name)
	seen := make(map[string]bool)
	var out []string
	add := func(c string) {
		if c != "" && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	add(trimmed)
	add(Normalize(trimmed))

	// Roman-numeral prefixes: "I Chronicles" -> "1 Chronicles".
	for _, p := range romanPrefixes {
		if strings.HasPrefix(trimmed, p.roman) {
			arabic := p.arabic + strings.TrimPrefix(trimmed, p.roman)
			add(arabic)
			add(Normalize(arabic))
			if c, ok := abbreviations[arabic]; ok {
				add(c)
			}
			break
		}
	}

	if c, ok := abbreviations[trimmed]; ok {
		add(c)
	}
	// Abbreviations are often written with a trailing period.
	if c, ok := abbreviations[strings.TrimSuffix(trimmed, ".")]; ok {
		add(c)
	}

	return out
}
