package cachestore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/FocuswithJustin/CedarBible/core/corpus"
	apperrors "github.com/FocuswithJustin/CedarBible/core/errors"
)

func testCorpus() *corpus.Corpus {
	return &corpus.Corpus{
		Translation: "KJV",
		Verses: []corpus.Verse{
			{BookName: "Genesis", Book: 1, Chapter: 1, Verse: 1, Text: "In the beginning"},
			{BookName: "John", Book: 43, Chapter: 3, Verse: 16, Text: "For God so loved the world"},
		},
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFileStore(t.TempDir())
	c := testCorpus()

	if err := s.Save(c, "abc123"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	hash, err := s.Hash()
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash != "abc123" {
		t.Errorf("Hash() = %q, want %q", hash, "abc123")
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Translation != c.Translation || len(got.Verses) != len(c.Verses) {
		t.Fatalf("Load() = %+v, want %+v", got, c)
	}
	for i := range c.Verses {
		if got.Verses[i] != c.Verses[i] {
			t.Errorf("verse %d = %+v, want %+v", i, got.Verses[i], c.Verses[i])
		}
	}
}

func TestFileStoreEmpty(t *testing.T) {
	s := NewFileStore(t.TempDir())

	hash, err := s.Hash()
	if err != nil {
		t.Fatalf("Hash() on empty store error = %v", err)
	}
	if hash != "" {
		t.Errorf("Hash() = %q, want empty", hash)
	}

	if _, err := s.Load(); err == nil {
		t.Error("Load() on empty store should return an error")
	}
}

func TestFileStoreCorruptSnapshot(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir)

	if err := s.Save(testCorpus(), "abc123"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	// Simulate a torn write: truncate the snapshot mid-stream.
	path := filepath.Join(dir, "corpus.json.xz")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data[:len(data)/2], 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Load(); err == nil {
		t.Error("Load() of a truncated snapshot should return an error")
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	s := NewFileStore(t.TempDir())

	if err := s.Save(testCorpus(), "hash-one"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	second := &corpus.Corpus{Verses: []corpus.Verse{
		{BookName: "Psalms", Book: 19, Chapter: 23, Verse: 1, Text: "The LORD is my shepherd"},
	}}
	if err := s.Save(second, "hash-two"); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	hash, err := s.Hash()
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash != "hash-two" {
		t.Errorf("Hash() = %q, want %q", hash, "hash-two")
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got.Verses) != 1 || got.Verses[0].BookName != "Psalms" {
		t.Errorf("Load() after overwrite = %+v, want the second snapshot", got)
	}
}

func TestFileStoreClear(t *testing.T) {
	s := NewFileStore(t.TempDir())

	if err := s.Save(testCorpus(), "abc123"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	hash, err := s.Hash()
	if err != nil || hash != "" {
		t.Errorf("after Clear: hash = %q, err = %v; want empty, nil", hash, err)
	}
	if _, err := s.Load(); err == nil {
		t.Error("Load() after Clear should return an error")
	}

	// Clearing an already empty store is not an error.
	if err := s.Clear(); err != nil {
		t.Errorf("second Clear() error = %v", err)
	}
}

func TestFileStoreLoadErrorIsCacheRead(t *testing.T) {
	s := NewFileStore(t.TempDir())
	_, err := s.Load()
	if !errors.Is(err, apperrors.ErrCacheRead) {
		t.Errorf("Load() error = %v, want ErrCacheRead in chain", err)
	}
}
