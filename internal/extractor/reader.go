package extractor

import (
	"os"

	"golang.org/x/xerrors"
)

// ReadFile loads one route source file. The second return reports whether
// the file exists; a stale mapping entry pointing at a deleted file is a
// normal condition, not an error.
func ReadFile(path string) (string, bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", false, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", true, xerrors.Errorf("reading route file %s: %w", path, err)
	}
	return string(data), true, nil
}
