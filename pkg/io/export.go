package io

import (
	"crypto/sha256"
	"encoding/hex"
	"os"

	"github.com/matzehuels/boxicon/pkg/errors"
)

// WriteFile writes data to path, replacing any existing file.
// Failures are returned as WRITE_FAILED errors wrapping the OS error.
func WriteFile(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeWriteFailed, cerr, "close %s", path)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	return nil
}

// Digest computes a SHA-256 hash of data.
// Returns the full 64-character hex string.
func Digest(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
