package cachestore

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/CedarBible/core/corpus"
	apperrors "github.com/FocuswithJustin/CedarBible/core/errors"
)

const (
	snapshotName = "corpus.json.xz"
	hashName     = "corpus.hash"
)

// FileStore persists the snapshot as an xz-compressed JSON file plus a
// small hash record, in a process-local cache directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed cache store rooted at dir.
// The directory is created on first Save, not here.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Hash returns the stored content hash, or "" if no hash record exists.
func (s *FileStore) Hash() (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, hashName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", apperrors.NewCache("read", s.dir, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Load reads and decompresses the snapshot, then decodes the corpus.
func (s *FileStore) Load() (*corpus.Corpus, error) {
	path := filepath.Join(s.dir, snapshotName)
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewCache("read", path, err)
	}
	defer f.Close()

	r, err := xz.NewReader(f)
	if err != nil {
		return nil, apperrors.NewCache("read", path, err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.NewCache("read", path, err)
	}

	c, err := corpus.Decode(data)
	if err != nil {
		// A torn write from a crashed persist shows up here; callers
		// treat it as a cache miss.
		return nil, apperrors.NewDecode("cache snapshot", err.Error(), err)
	}
	return c, nil
}

// Save compresses and writes the snapshot, then the hash record, each via
// temp-file-and-rename so readers never observe a partial write.
func (s *FileStore) Save(c *corpus.Corpus, hash string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return apperrors.NewCache("write", s.dir, err)
	}

	data, err := corpus.Encode(c)
	if err != nil {
		return apperrors.NewCache("write", s.dir, err)
	}

	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return apperrors.NewCache("write", s.dir, err)
	}
	if _, err := w.Write(data); err != nil {
		return apperrors.NewCache("write", s.dir, err)
	}
	if err := w.Close(); err != nil {
		return apperrors.NewCache("write", s.dir, err)
	}

	if err := s.writeAtomic(snapshotName, buf.Bytes()); err != nil {
		return err
	}
	// The hash record goes last: a crash between the two writes leaves a
	// snapshot with a stale or missing hash, which reads as a cache miss.
	return s.writeAtomic(hashName, []byte(hash+"\n"))
}

// Clear removes the snapshot and hash record.
func (s *FileStore) Clear() error {
	for _, name := range []string{snapshotName, hashName} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			return apperrors.NewCache("write", s.dir, err)
		}
	}
	return nil
}

// writeAtomic writes data to a temp file in the cache directory and renames
// it into place.
func (s *FileStore) writeAtomic(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, "."+name+"-*")
	if err != nil {
		return apperrors.NewCache("write", s.dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return apperrors.NewCache("write", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return apperrors.NewCache("write", tmpPath, err)
	}
	if err := os.Rename(tmpPath, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpPath)
		return apperrors.NewCache("write", tmpPath, err)
	}
	return nil
}
