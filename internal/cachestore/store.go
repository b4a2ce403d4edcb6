// Package cachestore persists validated corpus snapshots so warm starts
// skip the expensive asset decode.
//
// A store holds two things: the decoded corpus snapshot and the content
// hash of the raw asset the snapshot was decoded from. The loader compares
// the stored hash against the freshly computed asset hash before trusting
// the snapshot; any mismatch or decode failure is a cache miss, never an
// error the caller sees. Stores are safely deletable at any time.
package cachestore

import "github.com/FocuswithJustin/CedarBible/core/corpus"

// Store is a persisted corpus cache backend.
type Store interface {
	// Hash returns the stored content hash, or "" if no cache exists.
	Hash() (string, error)

	// Load deserializes the cached corpus snapshot.
	Load() (*corpus.Corpus, error)

	// Save persists the corpus snapshot together with the content hash of
	// the raw asset it was decoded from. Save must be atomic: a crash
	// mid-write leaves either the old cache or a snapshot that fails to
	// deserialize, never a silently corrupt one.
	Save(c *corpus.Corpus, hash string) error

	// Clear removes the persisted cache. Clearing a missing cache is not
	// an error.
	Clear() error
}
