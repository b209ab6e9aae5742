package internal

import (
	"errors"
	"os"
	"path/filepath"
)

// WriteFile writes body to name when the file does not exist yet, or when
// overwrite is set. Parent directories are created as needed.
func WriteFile(name string, body []byte, overwrite bool) error {
	_, err := os.Stat(name)
	switch {
	case err == nil && !overwrite:
		return nil
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return err
	}

	if err := os.MkdirAll(filepath.Dir(name), 0o700); err != nil {
		return err
	}

	return os.WriteFile(name, body, 0o644)
}
