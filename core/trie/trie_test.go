package trie

import (
	"sync"
	"testing"

	"github.com/FocuswithJustin/CedarBible/core/corpus"
)

func key(b, c, v int) corpus.VerseKey {
	return corpus.VerseKey{Book: b, Chapter: c, Verse: v}
}

func TestInsertAndSearch(t *testing.T) {
	tr := New()
	tr.Insert("faith", key(58, 11, 1))
	tr.Insert("faith", key(46, 13, 13))
	tr.Insert("hope", key(46, 13, 13))

	got := tr.Search("faith")
	if len(got) != 2 {
		t.Fatalf("Search(faith) returned %d keys, want 2", len(got))
	}
	if got[0] != key(46, 13, 13) || got[1] != key(58, 11, 1) {
		t.Errorf("Search(faith) = %v, want canonical order", got)
	}

	if got := tr.Search("hope"); len(got) != 1 || got[0] != key(46, 13, 13) {
		t.Errorf("Search(hope) = %v, want [{46 13 13}]", got)
	}
}

func TestSearchMissing(t *testing.T) {
	tr := New()
	tr.Insert("faith", key(58, 11, 1))

	if got := tr.Search("hope"); got != nil {
		t.Errorf("Search(hope) = %v, want nil", got)
	}
	// Missing edge partway down the path.
	if got := tr.Search("fax"); got != nil {
		t.Errorf("Search(fax) = %v, want nil", got)
	}
	if got := tr.Search(""); got != nil {
		t.Errorf("Search(\"\") = %v, want nil", got)
	}
}

func TestPrefixClosure(t *testing.T) {
	tr := New()
	tr.Insert("faith", key(58, 11, 1))
	tr.Insert("faithful", key(66, 19, 11))
	tr.Insert("father", key(43, 3, 16))

	// Every key under "fa" must be visible at "fa".
	got := tr.SearchPrefix("fa")
	if len(got) != 3 {
		t.Fatalf("SearchPrefix(fa) returned %d keys, want 3", len(got))
	}

	// "faith" sees itself and "faithful", but not "father".
	got = tr.SearchPrefix("faith")
	if len(got) != 2 {
		t.Fatalf("SearchPrefix(faith) returned %d keys, want 2", len(got))
	}
	for _, k := range got {
		if k == key(43, 3, 16) {
			t.Error("father's key leaked into the faith subtree")
		}
	}
}

func TestContains(t *testing.T) {
	tr := New()
	tr.Insert("faith", key(58, 11, 1))

	if !tr.Contains("faith") {
		t.Error("Contains(faith) = false, want true")
	}
	// Proper prefixes of inserted words are not words themselves.
	if tr.Contains("fai") {
		t.Error("Contains(fai) = true, want false")
	}
	if tr.Contains("") {
		t.Error("Contains(\"\") = true, want false")
	}
}

func TestDuplicateInsert(t *testing.T) {
	tr := New()
	tr.Insert("faith", key(58, 11, 1))
	tr.Insert("faith", key(58, 11, 1))

	if got := tr.Search("faith"); len(got) != 1 {
		t.Errorf("duplicate insert produced %d postings, want 1", len(got))
	}
}

func TestClear(t *testing.T) {
	tr := New()
	tr.Insert("faith", key(58, 11, 1))
	tr.Insert("hope", key(46, 13, 13))

	tr.Clear()

	if got := tr.Search("faith"); got != nil {
		t.Errorf("Search after Clear = %v, want nil", got)
	}
	if n := tr.NodeCount(); n != 1 {
		t.Errorf("NodeCount after Clear = %d, want 1", n)
	}

	// The trie is reusable after Clear.
	tr.Insert("grace", key(49, 2, 8))
	if got := tr.Search("grace"); len(got) != 1 {
		t.Errorf("Search after reuse = %v, want one key", got)
	}
}

func TestNodeCount(t *testing.T) {
	tr := New()
	if n := tr.NodeCount(); n != 1 {
		t.Fatalf("empty trie NodeCount = %d, want 1", n)
	}

	tr.Insert("ab", key(1, 1, 1))
	if n := tr.NodeCount(); n != 3 {
		t.Errorf("NodeCount = %d, want 3", n)
	}

	// Shared prefix adds only the new suffix nodes.
	tr.Insert("ac", key(1, 1, 2))
	if n := tr.NodeCount(); n != 4 {
		t.Errorf("NodeCount = %d, want 4", n)
	}
}

func TestConcurrentAccess(t *testing.T) {
	tr := New()
	words := []string{"faith", "hope", "charity", "love", "grace", "mercy"}

	var wg sync.WaitGroup
	for i, w := range words {
		wg.Add(1)
		go func(i int, w string) {
			defer wg.Done()
			tr.Insert(w, key(1, 1, i+1))
		}(i, w)
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, w := range words {
				tr.Search(w)
			}
		}()
	}
	wg.Wait()

	for _, w := range words {
		if !tr.Contains(w) {
			t.Errorf("Contains(%q) = false after concurrent inserts", w)
		}
	}
}
