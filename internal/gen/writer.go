package gen

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes generated content to path. The content goes to a temp file
// in the same directory first and is renamed into place, so readers never see a
// partial file.
func WriteFile(path string, content []byte) (err error) {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return errors.Wrapf(err, "creating output directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "writing %s", tmpPath)
	}

	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", tmpPath)
	}

	if err = os.Chmod(tmpPath, filePerm); err != nil {
		return errors.Wrapf(err, "chmod %s", tmpPath)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return errors.Wrapf(err, "writing file %s", path)
	}

	return nil
}
