package corpus

import (
	"testing"
)

func TestVerseKeyString(t *testing.T) {
	v := Verse{BookName: "1 Chronicles", Book: 13, Chapter: 29, Verse: 11, Text: "x"}
	if got := v.Key(); got != "1 Chronicles_29_11" {
		t.Errorf("Key() = %q, want %q", got, "1 Chronicles_29_11")
	}
}

func TestVerseDisplayText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"no marker", "In the beginning", "In the beginning"},
		{"leading pilcrow", "¶ The LORD is my shepherd", "The LORD is my shepherd"},
		{"inner pilcrow", "first ¶ second", "first  second"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Verse{Text: tt.text}
			if got := v.DisplayText(); got != tt.want {
				t.Errorf("DisplayText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVerseKeyLess(t *testing.T) {
	a := VerseKey{Book: 1, Chapter: 1, Verse: 1}
	b := VerseKey{Book: 1, Chapter: 1, Verse: 2}
	c := VerseKey{Book: 1, Chapter: 2, Verse: 1}
	d := VerseKey{Book: 2, Chapter: 1, Verse: 1}

	if !a.Less(b) || !b.Less(c) || !c.Less(d) {
		t.Error("expected a < b < c < d in canonical order")
	}
	if b.Less(a) {
		t.Error("Less is not antisymmetric")
	}
	if a.Less(a) {
		t.Error("Less must be irreflexive")
	}
}

func TestDecodeVerseArray(t *testing.T) {
	data := []byte(`[
		{"book_name": "John", "book": 43, "chapter": 3, "verse": 16, "text": "For God so loved the world"},
		{"book_name": "John", "book": 43, "chapter": 3, "verse": 17, "text": "For God sent not his Son"}
	]`)

	c, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if c.Verses[0].BookName != "John" || c.Verses[0].Verse != 16 {
		t.Errorf("unexpected first verse: %+v", c.Verses[0])
	}
}

func TestDecodeCorpusObject(t *testing.T) {
	data := []byte(`{"translation": "KJV", "verses": [
		{"book_name": "Genesis", "book": 1, "chapter": 1, "verse": 1, "text": "In the beginning"}
	]}`)

	c, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if c.Translation != "KJV" {
		t.Errorf("Translation = %q, want %q", c.Translation, "KJV")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"whitespace only", []byte("   \n\t")},
		{"malformed array", []byte(`[{"book_name": }]`)},
		{"malformed object", []byte(`{"verses": [}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.data); err == nil {
				t.Error("Decode() expected error, got nil")
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := &Corpus{
		Translation: "KJV",
		Verses: []Verse{
			{BookName: "Psalms", Book: 19, Chapter: 23, Verse: 1, Text: "¶ The LORD is my shepherd; I shall not want."},
			{BookName: "John", Book: 43, Chapter: 3, Verse: 16, Text: "For God so loved the world"},
		},
	}

	data, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if out.Translation != in.Translation {
		t.Errorf("Translation = %q, want %q", out.Translation, in.Translation)
	}
	if len(out.Verses) != len(in.Verses) {
		t.Fatalf("got %d verses, want %d", len(out.Verses), len(in.Verses))
	}
	for i := range in.Verses {
		if out.Verses[i] != in.Verses[i] {
			t.Errorf("verse %d = %+v, want %+v", i, out.Verses[i], in.Verses[i])
		}
	}
}
