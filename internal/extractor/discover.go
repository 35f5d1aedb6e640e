package extractor

import (
	"path/filepath"
	"sort"

	"github.com/samber/lo"
	"golang.org/x/xerrors"
)

// Discover lists route files under dir matching pattern that are not
// already in mapped, sorted by name. It picks up route files added to the
// backend before anyone remembered to extend the mapping.
func Discover(dir, pattern string, mapped []string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, xerrors.Errorf("scanning %s: %w", dir, err)
	}

	names := lo.Map(matches, func(m string, _ int) string {
		return filepath.Base(m)
	})
	extra := lo.Filter(names, func(n string, _ int) bool {
		return !lo.Contains(mapped, n)
	})
	sort.Strings(extra)
	return extra, nil
}
