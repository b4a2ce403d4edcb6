// Package daily selects the verse of the day from a curated reference list.
//
// Selection is deterministic per calendar day. The selector tolerates a
// manager that has not finished loading: it retries on an interval, and a
// small TTL cache keeps the last successfully resolved verse so the UI can
// still display something when a load attempt fails.
package daily

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/CedarBible/core/books"
	"github.com/FocuswithJustin/CedarBible/core/corpus"
	apperrors "github.com/FocuswithJustin/CedarBible/core/errors"
	"github.com/FocuswithJustin/CedarBible/internal/bible"
	"github.com/FocuswithJustin/CedarBible/internal/cache"
)

// defaultReferences is the curated daily rotation. Spellings are mixed
// (aliases, abbreviations, roman prefixes); resolution goes through variant
// expansion, so the list tolerates however a reference was written down.
var defaultReferences = []string{
	"John 3:16",
	"Jeremiah 29:11",
	"Philippians 4:13",
	"Psalm 23:1",
	"Romans 8:28",
	"Proverbs 3:5",
	"Isaiah 41:10",
	"Matthew 11:28",
	"1 Chronicles 29:11",
	"Joshua 1:9",
	"Song of Songs 2:1",
	"I Cor 13:4",
	"Hebrews 11:1",
	"2 Tim 1:7",
	"Zephaniah 3:17",
	"Lamentations 3:22",
	"Galatians 5:22",
	"I Pet 5:7",
	"Revelation of John 21:4",
	"Deut 31:6",
}

// retryInterval is how often the selector re-checks a manager that was not
// ready yet.
const retryInterval = 250 * time.Millisecond

// Selector picks and caches the daily verse.
type Selector struct {
	mgr       *bible.Manager
	refs      []string
	lastKnown *cache.TTLCache[string, corpus.Verse]
}

// New creates a Selector over the default reference rotation.
func New(mgr *bible.Manager) *Selector {
	return NewWithReferences(mgr, defaultReferences)
}

// NewWithReferences creates a Selector with a custom reference list.
func NewWithReferences(mgr *bible.Manager, refs []string) *Selector {
	return &Selector{
		mgr:       mgr,
		refs:      refs,
		lastKnown: cache.New[string, corpus.Verse](24 * time.Hour),
	}
}

// ReferenceForDate returns the rotation entry for the given date. The pick
// hashes the date so consecutive days don't walk the list in order, but the
// same date always picks the same reference.
func (s *Selector) ReferenceForDate(date time.Time) string {
	if len(s.refs) == 0 {
		return ""
	}
	day := date.Format("2006-01-02")
	h := blake3.Sum256([]byte(day))
	idx := binary.BigEndian.Uint64(h[:8]) % uint64(len(s.refs))
	return s.refs[idx]
}

// VerseForDate resolves the daily verse for the given date. If the manager
// is not Ready yet, it retries until the context expires; unlike the corpus
// load itself, this layer does retry. On success the verse is cached as the
// last-known verse for the day.
func (s *Selector) VerseForDate(ctx context.Context, date time.Time) (*corpus.Verse, error) {
	refStr := s.ReferenceForDate(date)
	if refStr == "" {
		return nil, apperrors.NewNotFound("daily verse", "")
	}

	day := date.Format("2006-01-02")
	if v, ok := s.lastKnown.Get(day); ok {
		return &v, nil
	}

	ref, err := books.ParseReference(refStr)
	if err != nil {
		return nil, apperrors.Wrapf(err, "bad daily reference %q", refStr)
	}

	for {
		if v, ok := s.mgr.ResolveReference(ref); ok {
			s.lastKnown.Set(day, *v)
			return v, nil
		}
		if s.mgr.State() == bible.StateReady {
			// Corpus loaded and the reference still doesn't resolve:
			// retrying won't change anything.
			return nil, apperrors.NewNotFound("verse", refStr)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}

// LastKnown returns the most recently resolved daily verse, if its cache
// window has not expired. The cache is independent of the corpus caches,
// so it still answers after a failed corpus load.
func (s *Selector) LastKnown(date time.Time) (*corpus.Verse, bool) {
	v, ok := s.lastKnown.Get(date.Format("2006-01-02"))
	if !ok {
		return nil, false
	}
	return &v, true
}
