package collection

import (
	"encoding/json"
	"os"
	"path/filepath"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// WriteFile writes the collection to path in the given format. JSON output
// is four-space indented with HTML escaping off, so URLs and the raw body
// template read back exactly as built and re-runs over unchanged sources
// are byte-identical.
func WriteFile(path string, coll *Collection, format string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return xerrors.Errorf("creating output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return xerrors.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	switch format {
	case "json":
		encoder := json.NewEncoder(file)
		encoder.SetIndent("", "    ")
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(coll); err != nil {
			return xerrors.Errorf("encoding JSON: %w", err)
		}
	case "yaml":
		encoder := yaml.NewEncoder(file)
		encoder.SetIndent(2)
		if err := encoder.Encode(coll); err != nil {
			return xerrors.Errorf("encoding YAML: %w", err)
		}
	default:
		return xerrors.Errorf("unsupported format: %s (supported: json, yaml)", format)
	}

	return nil
}
