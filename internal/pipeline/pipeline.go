package pipeline

import (
	"path/filepath"

	logging "github.com/ipfs/go-log/v2"
	"github.com/samber/lo"
	"golang.org/x/xerrors"

	"github.com/wexp-dev/go-postman-generator/internal/collection"
	"github.com/wexp-dev/go-postman-generator/internal/config"
	"github.com/wexp-dev/go-postman-generator/internal/extractor"
)

var log = logging.Logger("postmangen")

// Result carries everything a run produced, before or instead of writing.
type Result struct {
	Files          []extractor.FileRoutes
	Collection     *collection.Collection
	FilesProcessed int
	RoutesFound    int
	MissingFiles   []string
}

// Run extracts routes from every mapped file in order and assembles the
// collection document. Missing files are warned about and skipped; nothing
// here touches the output path.
func Run(cfg *config.Config) (*Result, error) {
	routesDir := filepath.Join(cfg.ProjectPath, cfg.RoutesDir)

	entries := cfg.Routes
	if cfg.Discover {
		mapped := lo.Map(entries, func(rf config.RouteFile, _ int) string {
			return rf.File
		})
		extra, err := extractor.Discover(routesDir, cfg.DiscoverPattern, mapped)
		if err != nil {
			return nil, err
		}
		for _, file := range extra {
			log.Infof("discovered unmapped route file %s", file)
			entries = append(entries, config.Derive(file))
		}
	}

	ext := extractor.New(cfg.Routers...)
	res := &Result{}
	for _, entry := range entries {
		log.Infof("processing %s", entry.File)

		path := filepath.Join(routesDir, entry.File)
		source, found, err := extractor.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if !found {
			log.Warnf("file not found: %s", path)
			res.MissingFiles = append(res.MissingFiles, path)
			continue
		}

		routes := ext.Extract(source, entry.BasePath, entry.File)
		res.FilesProcessed++
		res.RoutesFound += len(routes)
		res.Files = append(res.Files, extractor.FileRoutes{
			File:     entry.File,
			BasePath: entry.BasePath,
			Routes:   routes,
		})
	}

	builder := collection.New(collection.Config{
		Name:        cfg.CollectionName,
		Description: cfg.CollectionDescription,
	})
	res.Collection = builder.Build(res.Files)

	if err := collection.Validate(res.Collection); err != nil {
		log.Warnf("validation: %s", err)
	}
	return res, nil
}

// Generate is Run plus the write. The write is the one stage whose failure
// aborts a run; a relative output path lands under the project root.
func Generate(cfg *config.Config) (*Result, error) {
	res, err := Run(cfg)
	if err != nil {
		return nil, err
	}

	out := cfg.OutputPath
	if !filepath.IsAbs(out) {
		out = filepath.Join(cfg.ProjectPath, out)
	}
	if err := collection.WriteFile(out, res.Collection, cfg.OutputFormat); err != nil {
		return nil, xerrors.Errorf("writing collection: %w", err)
	}

	log.Infof("collection written to %s (%d routes in %d folders)", out, res.RoutesFound, len(res.Collection.Item))
	return res, nil
}
