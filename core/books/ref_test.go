package books

import (
	"testing"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		in   string
		want Ref
	}{
		{"John 3:16", Ref{Book: "John", Chapter: 3, Verse: 16}},
		{"1 Chronicles 29:11", Ref{Book: "1 Chronicles", Chapter: 29, Verse: 11}},
		{"Song of Solomon 2:1", Ref{Book: "Song of Solomon", Chapter: 2, Verse: 1}},
		{"Psalm 23", Ref{Book: "Psalm", Chapter: 23}},
		{"Psalm 23:1-4", Ref{Book: "Psalm", Chapter: 23, Verse: 1, VerseEnd: 4}},
		{"I Chr 29:11", Ref{Book: "I Chr", Chapter: 29, Verse: 11}},
		{"2 Tim 1:7", Ref{Book: "2 Tim", Chapter: 1, Verse: 7}},
		{"Gen. 1:1", Ref{Book: "Gen.", Chapter: 1, Verse: 1}},
		{"  John 3:16  ", Ref{Book: "John", Chapter: 3, Verse: 16}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseReference(tt.in)
			if err != nil {
				t.Fatalf("ParseReference(%q) error = %v", tt.in, err)
			}
			if *got != tt.want {
				t.Errorf("ParseReference(%q) = %+v, want %+v", tt.in, *got, tt.want)
			}
		})
	}
}

func TestParseReferenceErrors(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"3:16",
		"John",
		"John three sixteen",
	}
	for _, in := range tests {
		if _, err := ParseReference(in); err == nil {
			t.Errorf("ParseReference(%q) expected error, got nil", in)
		}
	}
}

func TestRefString(t *testing.T) {
	tests := []struct {
		ref  Ref
		want string
	}{
		{Ref{Book: "John", Chapter: 3, Verse: 16}, "John 3:16"},
		{Ref{Book: "Psalm", Chapter: 23}, "Psalm 23"},
		{Ref{Book: "Psalm", Chapter: 23, Verse: 1, VerseEnd: 4}, "Psalm 23:1-4"},
	}
	for _, tt := range tests {
		if got := tt.ref.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRefIsRange(t *testing.T) {
	single := Ref{Book: "John", Chapter: 3, Verse: 16}
	if single.IsRange() {
		t.Error("single verse should not be a range")
	}
	rng := Ref{Book: "Psalm", Chapter: 23, Verse: 1, VerseEnd: 4}
	if !rng.IsRange() {
		t.Error("1-4 should be a range")
	}
	degenerate := Ref{Book: "Psalm", Chapter: 23, Verse: 4, VerseEnd: 4}
	if degenerate.IsRange() {
		t.Error("4-4 should not be a range")
	}
}

func TestRefCandidates(t *testing.T) {
	ref := Ref{Book: "I Chr", Chapter: 29, Verse: 11}
	got := ref.Candidates()
	found := false
	for _, c := range got {
		if c == "1 Chronicles" {
			found = true
		}
	}
	if !found {
		t.Errorf("Candidates() = %v, want it to include %q", got, "1 Chronicles")
	}
}
