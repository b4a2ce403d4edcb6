// Package loader decodes the raw corpus asset exactly once, gated by a
// content-hash-validated persistent cache so warm starts skip the decode.
package loader

import (
	"context"
	"encoding/hex"
	"sync"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/CedarBible/core/corpus"
	apperrors "github.com/FocuswithJustin/CedarBible/core/errors"
	"github.com/FocuswithJustin/CedarBible/internal/cachestore"
	"github.com/FocuswithJustin/CedarBible/internal/logging"
)

// HashBytes computes the BLAKE3 content hash of raw asset bytes as a hex
// string. The hash gates cache validity: a new build shipping a changed
// asset changes the hash and forces a fresh decode.
func HashBytes(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:])
}

// call tracks one in-flight load so concurrent callers share its result.
type call struct {
	done   chan struct{}
	corpus *corpus.Corpus
	err    error
}

// Loader loads the corpus from an asset source with a cache store gate.
// Load is single-flight: concurrent or repeated calls while a load is in
// flight all observe the same eventual result. A failed load does not
// poison the loader; a later call starts a fresh attempt.
type Loader struct {
	asset AssetSource
	store cachestore.Store

	mu       sync.Mutex
	inflight *call
}

// New creates a Loader. store may be nil, which disables persistence and
// always takes the full decode path.
func New(asset AssetSource, store cachestore.Store) *Loader {
	return &Loader{asset: asset, store: store}
}

// Load returns the corpus, from cache when the stored content hash matches
// the current asset, otherwise by full decode. On a fresh decode the
// snapshot is persisted asynchronously, best-effort.
func (l *Loader) Load(ctx context.Context) (*corpus.Corpus, error) {
	l.mu.Lock()
	if l.inflight != nil {
		cl := l.inflight
		l.mu.Unlock()
		select {
		case <-cl.done:
			return cl.corpus, cl.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	cl := &call{done: make(chan struct{})}
	l.inflight = cl
	l.mu.Unlock()

	cl.corpus, cl.err = l.load(ctx)
	close(cl.done)

	l.mu.Lock()
	l.inflight = nil
	l.mu.Unlock()

	return cl.corpus, cl.err
}

func (l *Loader) load(ctx context.Context) (*corpus.Corpus, error) {
	raw, err := l.asset.Bytes()
	if err != nil {
		return nil, err
	}
	hash := HashBytes(raw)

	if c := l.fromCache(hash); c != nil {
		logging.Debug("corpus loaded from cache", "hash", hash, "verses", c.Len())
		return c, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, err := corpus.Decode(raw)
	if err != nil {
		return nil, apperrors.NewDecode("asset", err.Error(), err)
	}
	logging.Info("corpus decoded", "hash", hash, "verses", c.Len())

	// Best-effort persistence off the caller's critical path. Failures
	// are swallowed: the cache is never required for correctness.
	if l.store != nil {
		go func() {
			if err := l.store.Save(c, hash); err != nil {
				logging.Debug("cache persist failed", "error", err)
			}
		}()
	}

	return c, nil
}

// fromCache returns the cached corpus if the stored hash matches, nil on
// any miss or failure. Deserialization failure is a cache miss, not an
// error.
func (l *Loader) fromCache(hash string) *corpus.Corpus {
	if l.store == nil {
		return nil
	}
	stored, err := l.store.Hash()
	if err != nil || stored == "" || stored != hash {
		return nil
	}
	c, err := l.store.Load()
	if err != nil {
		logging.Debug("cache snapshot unusable, falling back to decode", "error", err)
		return nil
	}
	return c
}
