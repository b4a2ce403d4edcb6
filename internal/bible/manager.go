// Package bible provides the corpus manager facade: it owns the
// not-loaded/loading/ready lifecycle, coordinates the loader and index
// builder, and exposes the public read API consumed by every collaborator.
package bible

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/FocuswithJustin/CedarBible/core/books"
	"github.com/FocuswithJustin/CedarBible/core/corpus"
	"github.com/FocuswithJustin/CedarBible/core/index"
	"github.com/FocuswithJustin/CedarBible/core/loader"
	"github.com/FocuswithJustin/CedarBible/core/search"
	"github.com/FocuswithJustin/CedarBible/internal/logging"
)

// State is the manager lifecycle state.
type State int

const (
	// StateEmpty means no load has been attempted.
	StateEmpty State = iota
	// StateLoading means a corpus load is in flight.
	StateLoading
	// StateReady means the corpus is loaded and readable.
	StateReady
	// StateFailed means the last load attempt failed; a new explicit
	// LoadIfNeeded call is required to retry.
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Manager is the single coordination point over the corpus and its derived
// indices. Construct one per process with New and pass it to collaborators;
// there is no global instance.
//
// The corpus is written once and immutable afterwards, so it is shared by
// reference without locking. The derived indices are swapped as a unit
// under mu: readers see either a fully built Indices or none. The verse
// lookup map inside Indices is the one structure mutated after publish
// (alias cache-fill on lookup misses); all access to it goes through mu.
type Manager struct {
	loader *loader.Loader

	mu       sync.RWMutex
	state    State
	loadErr  string
	corpus   *corpus.Corpus
	indices  *index.Indices
	building bool

	searchMu     sync.Mutex
	searchGen    uint64
	searchCancel context.CancelFunc
	lastResults  []corpus.Verse
}

// New creates a Manager around the given loader.
func New(l *loader.Loader) *Manager {
	return &Manager{loader: l}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// LoadError returns the stored error message from the last failed load,
// or "" if the last load did not fail.
func (m *Manager) LoadError() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loadErr
}

// LoadIfNeeded loads the corpus if no load has been attempted yet. It is a
// no-op in any state other than Empty or Failed-after-explicit-retry: a
// Failed manager retries only through this call, never automatically.
// On success the manager is Ready immediately and the index build starts in
// the background; verse text is usable right away through linear fallbacks.
func (m *Manager) LoadIfNeeded(ctx context.Context) error {
	m.mu.Lock()
	if m.state == StateLoading || m.state == StateReady {
		m.mu.Unlock()
		return nil
	}
	m.state = StateLoading
	m.loadErr = ""
	m.mu.Unlock()

	c, err := m.loader.Load(ctx)

	m.mu.Lock()
	if err != nil {
		m.state = StateFailed
		m.loadErr = err.Error()
		m.mu.Unlock()
		logging.Error("corpus load failed", "error", err)
		return err
	}
	m.corpus = c
	m.state = StateReady
	m.mu.Unlock()

	go m.buildIndices()
	return nil
}

// buildIndices runs the index build once per corpus instance, guarded by
// the building flag, and publishes the result atomically.
func (m *Manager) buildIndices() {
	m.mu.Lock()
	if m.building || m.indices != nil || m.corpus == nil {
		m.mu.Unlock()
		return
	}
	m.building = true
	c := m.corpus
	m.mu.Unlock()

	ix, err := index.Build(context.Background(), c)

	m.mu.Lock()
	m.building = false
	// Publish only if the corpus we built against is still current.
	if err == nil && m.corpus == c && m.indices == nil {
		m.indices = ix
	}
	m.mu.Unlock()

	if err != nil {
		logging.Warn("index build aborted", "error", err)
	}
}

// ClearCaches drops all derived indices. Subsequent reads fall back to
// linear scans until the background rebuild completes.
func (m *Manager) ClearCaches() {
	m.mu.Lock()
	// The old indices are dropped by reference so searches that already
	// snapshotted them finish consistently against the old trie.
	m.indices = nil
	rebuild := m.corpus != nil
	m.mu.Unlock()

	if rebuild {
		go m.buildIndices()
	}
}

// snapshot returns the current corpus and indices references.
func (m *Manager) snapshot() (*corpus.Corpus, *index.Indices) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.corpus, m.indices
}

// FindVerse resolves one verse by book name, chapter, and verse number.
// The lookup tries the exact spelling, then the normalized book name, then
// a linear scan; alias spellings that resolve are memoized into the lookup
// map so repeat lookups are O(1).
func (m *Manager) FindVerse(bookName string, chapter, verseNum int) (*corpus.Verse, bool) {
	c, ix := m.snapshot()
	if c == nil {
		return nil, false
	}

	key := fmt.Sprintf("%s_%d_%d", bookName, chapter, verseNum)
	norm := books.Normalize(bookName)

	if ix != nil {
		m.mu.RLock()
		v, ok := ix.VerseLookup[key]
		if !ok {
			v, ok = ix.VerseLookup[fmt.Sprintf("%s_%d_%d", norm, chapter, verseNum)]
		}
		m.mu.RUnlock()
		if ok {
			m.fillLookup(ix, key, v)
			return &v, true
		}
	}

	for i := range c.Verses {
		v := &c.Verses[i]
		if v.Chapter != chapter || v.Verse != verseNum {
			continue
		}
		if v.BookName == bookName || v.BookName == norm {
			if ix != nil {
				m.fillLookup(ix, key, *v)
			}
			found := *v
			return &found, true
		}
	}
	return nil, false
}

// fillLookup memoizes a resolved alias spelling into the lookup map.
func (m *Manager) fillLookup(ix *index.Indices, key string, v corpus.Verse) {
	m.mu.Lock()
	if m.indices == ix {
		ix.VerseLookup[key] = v
	}
	m.mu.Unlock()
}

// ResolveReference resolves a parsed free-text reference, trying each book
// name candidate in order until one matches.
func (m *Manager) ResolveReference(ref *books.Ref) (*corpus.Verse, bool) {
	if ref == nil {
		return nil, false
	}
	verseNum := ref.Verse
	if verseNum == 0 {
		verseNum = 1
	}
	for _, candidate := range ref.Candidates() {
		if v, ok := m.FindVerse(candidate, ref.Chapter, verseNum); ok {
			return v, true
		}
	}
	return nil, false
}

// VersesForBook returns the verses of a book sorted by (chapter, verse).
// The returned slice must not be mutated.
func (m *Manager) VersesForBook(bookName string) []corpus.Verse {
	c, ix := m.snapshot()
	if c == nil {
		return nil
	}
	name := books.Normalize(bookName)

	if ix != nil {
		if verses, ok := ix.BookIndex[name]; ok {
			return verses
		}
		if verses, ok := ix.BookIndex[bookName]; ok {
			return verses
		}
		return nil
	}

	var verses []corpus.Verse
	for _, v := range c.Verses {
		if v.BookName == name || v.BookName == bookName {
			verses = append(verses, v)
		}
	}
	sort.Slice(verses, func(i, j int) bool {
		if verses[i].Chapter != verses[j].Chapter {
			return verses[i].Chapter < verses[j].Chapter
		}
		return verses[i].Verse < verses[j].Verse
	})
	return verses
}

// VersesForChapter returns one chapter of a book sorted by verse number.
func (m *Manager) VersesForChapter(bookName string, chapter int) []corpus.Verse {
	all := m.VersesForBook(bookName)
	var verses []corpus.Verse
	for _, v := range all {
		if v.Chapter == chapter {
			verses = append(verses, v)
		}
	}
	return verses
}

// BooksInfo returns the ordered (name, chapterCount, order) projection.
func (m *Manager) BooksInfo() []index.BookInfo {
	c, ix := m.snapshot()
	if c == nil {
		return nil
	}
	if ix != nil {
		return ix.Books
	}

	// Linear fallback while indices warm up.
	type agg struct {
		order    int
		chapters map[int]bool
	}
	byBook := make(map[string]*agg)
	for _, v := range c.Verses {
		a, ok := byBook[v.BookName]
		if !ok {
			a = &agg{order: v.Book, chapters: make(map[int]bool)}
			byBook[v.BookName] = a
		}
		a.chapters[v.Chapter] = true
	}
	infos := make([]index.BookInfo, 0, len(byBook))
	for name, a := range byBook {
		infos = append(infos, index.BookInfo{Name: name, ChapterCount: len(a.chapters), Order: a.order})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Order < infos[j].Order })
	return infos
}

// ChaptersForBook returns the ordered (chapter, verseCount) summary for a book.
func (m *Manager) ChaptersForBook(bookName string) []index.ChapterInfo {
	c, ix := m.snapshot()
	if c == nil {
		return nil
	}
	name := books.Normalize(bookName)

	if ix != nil {
		if chapters, ok := ix.ChapterSummaries[name]; ok {
			return chapters
		}
		return ix.ChapterSummaries[bookName]
	}

	var chapters []index.ChapterInfo
	for _, v := range m.VersesForBook(name) {
		if n := len(chapters); n > 0 && chapters[n-1].Chapter == v.Chapter {
			chapters[n-1].VerseCount++
		} else {
			chapters = append(chapters, index.ChapterInfo{Chapter: v.Chapter, VerseCount: 1})
		}
	}
	return chapters
}

// SearchVerses runs a cancellable search. Issuing a new search cancels the
// previous in-flight one; a superseded search may still return its partial
// results to its own caller, but it never overwrites the latest-results
// slot.
func (m *Manager) SearchVerses(ctx context.Context, query string, limit int) ([]corpus.Verse, error) {
	m.searchMu.Lock()
	if m.searchCancel != nil {
		m.searchCancel()
	}
	sctx, cancel := context.WithCancel(ctx)
	m.searchCancel = cancel
	m.searchGen++
	gen := m.searchGen
	m.searchMu.Unlock()

	c, ix := m.snapshot()
	results, err := search.Query(sctx, c, ix, query, limit)

	m.searchMu.Lock()
	if gen == m.searchGen {
		m.lastResults = results
		m.searchCancel = nil
	}
	m.searchMu.Unlock()
	cancel()
	return results, err
}

// SearchVersesSync is the best-effort synchronous variant: it uses whatever
// indices are ready, never blocks on index construction, and neither
// cancels nor updates the latest-results slot.
func (m *Manager) SearchVersesSync(query string, limit int) []corpus.Verse {
	c, ix := m.snapshot()
	results, _ := search.Query(context.Background(), c, ix, query, limit)
	return results
}

// LastSearchResults returns the results of the most recent non-superseded
// SearchVerses call.
func (m *Manager) LastSearchResults() []corpus.Verse {
	m.searchMu.Lock()
	defer m.searchMu.Unlock()
	return m.lastResults
}

// IndicesBuilt reports whether the derived indices are published.
func (m *Manager) IndicesBuilt() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.indices != nil
}

// Stats describes the manager's current holdings, for diagnostics.
type Stats struct {
	State        string `json:"state"`
	Verses       int    `json:"verses"`
	Books        int    `json:"books"`
	IndicesBuilt bool   `json:"indices_built"`
	TrieNodes    int    `json:"trie_nodes,omitempty"`
	LoadError    string `json:"load_error,omitempty"`
}

// Snapshot returns current diagnostics.
func (m *Manager) Snapshot() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Stats{
		State:        m.state.String(),
		Verses:       m.corpus.Len(),
		IndicesBuilt: m.indices != nil,
		LoadError:    m.loadErr,
	}
	if m.indices != nil {
		s.Books = len(m.indices.Books)
		s.TrieNodes = m.indices.Trie.NodeCount()
	}
	return s
}
