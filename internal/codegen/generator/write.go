package generator

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
)

// WriteFile replaces path with data through a temporary file in the same
// directory, so readers never observe partial output. An existing file whose
// blake2b-256 digest matches data is left untouched and written is false.
func WriteFile(path string, data []byte) (written bool, digest string, err error) {
	sum := blake2b.Sum256(data)
	digest = hex.EncodeToString(sum[:])

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		old := blake2b.Sum256(existing)
		if bytes.Equal(old[:], sum[:]) {
			return false, digest, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return false, digest, fmt.Errorf("read existing output %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return false, digest, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return false, digest, fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return false, digest, fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return false, digest, fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return false, digest, fmt.Errorf("replace %s: %w", path, err)
	}
	return true, digest, nil
}
