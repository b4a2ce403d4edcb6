package loader

import (
	"os"

	apperrors "github.com/FocuswithJustin/CedarBible/core/errors"
)

// AssetSource supplies the raw corpus asset bytes. Injected so the manager
// works the same against the embedded dataset, a file on disk, or a test
// fixture.
type AssetSource interface {
	Bytes() ([]byte, error)
}

// BytesAsset is an in-memory asset source.
type BytesAsset []byte

// Bytes returns the asset bytes.
func (b BytesAsset) Bytes() ([]byte, error) {
	if len(b) == 0 {
		return nil, apperrors.ErrAssetMissing
	}
	return b, nil
}

// FileAsset reads the asset from a file path.
type FileAsset struct {
	Path string
}

// Bytes reads the asset file. A missing file maps to ErrAssetMissing.
func (f FileAsset) Bytes() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrapf(apperrors.ErrAssetMissing, "asset file %s", f.Path)
		}
		return nil, apperrors.Wrap(err, "failed to read asset")
	}
	return data, nil
}
