package cachestore

import (
	"errors"
	"path/filepath"
	"testing"

	apperrors "github.com/FocuswithJustin/CedarBible/core/errors"
	"github.com/FocuswithJustin/CedarBible/core/corpus"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)
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
	if got.Translation != "KJV" {
		t.Errorf("Translation = %q, want KJV", got.Translation)
	}
	if len(got.Verses) != len(c.Verses) {
		t.Fatalf("got %d verses, want %d", len(got.Verses), len(c.Verses))
	}
	// Position order must reproduce corpus order exactly.
	for i := range c.Verses {
		if got.Verses[i] != c.Verses[i] {
			t.Errorf("verse %d = %+v, want %+v", i, got.Verses[i], c.Verses[i])
		}
	}
}

func TestSQLiteStoreEmpty(t *testing.T) {
	s := newTestSQLiteStore(t)

	hash, err := s.Hash()
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash != "" {
		t.Errorf("Hash() = %q, want empty", hash)
	}

	_, err = s.Load()
	if err == nil {
		t.Fatal("Load() on empty store should return an error")
	}
	if !errors.Is(err, apperrors.ErrDecodeFailed) {
		t.Errorf("Load() error = %v, want ErrDecodeFailed in chain", err)
	}
}

func TestSQLiteStoreOverwrite(t *testing.T) {
	s := newTestSQLiteStore(t)

	if err := s.Save(testCorpus(), "hash-one"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	second := &corpus.Corpus{Translation: "WEB", Verses: []corpus.Verse{
		{BookName: "Psalms", Book: 19, Chapter: 23, Verse: 1, Text: "The LORD is my shepherd"},
	}}
	if err := s.Save(second, "hash-two"); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	hash, _ := s.Hash()
	if hash != "hash-two" {
		t.Errorf("Hash() = %q, want %q", hash, "hash-two")
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got.Verses) != 1 || got.Translation != "WEB" {
		t.Errorf("Load() after overwrite = %+v, want the second snapshot", got)
	}
}

func TestSQLiteStoreClear(t *testing.T) {
	s := newTestSQLiteStore(t)

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
}
