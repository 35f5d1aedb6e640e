package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// RouteFile maps one route source file to the base path its router is
// mounted under in the backend.
type RouteFile struct {
	File     string `json:"file" toml:"file" yaml:"file"`
	BasePath string `json:"base_path" toml:"base_path" yaml:"base_path"`
}

// Config drives one generator run. Zero-valued fields are filled from the
// defaults by Finalize, so a partial config file is fine. Routes keeps its
// load order; that order decides folder order in the output.
type Config struct {
	ProjectPath           string      `json:"project_path" toml:"project_path" yaml:"project_path"`
	RoutesDir             string      `json:"routes_dir" toml:"routes_dir" yaml:"routes_dir"`
	OutputPath            string      `json:"output_path" toml:"output_path" yaml:"output_path"`
	OutputFormat          string      `json:"output_format" toml:"output_format" yaml:"output_format"`
	CollectionName        string      `json:"collection_name" toml:"collection_name" yaml:"collection_name"`
	CollectionDescription string      `json:"collection_description" toml:"collection_description" yaml:"collection_description"`
	Routers               []string    `json:"routers" toml:"routers" yaml:"routers"`
	Discover              bool        `json:"discover" toml:"discover" yaml:"discover"`
	DiscoverPattern       string      `json:"discover_pattern" toml:"discover_pattern" yaml:"discover_pattern"`
	Routes                []RouteFile `json:"routes" toml:"routes" yaml:"routes"`
}

// Load reads a config file, picking the decoder by file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("reading config file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, xerrors.Errorf("unsupported config format %q (supported: json, toml, yaml)", filepath.Ext(path))
	}
	if err != nil {
		return nil, xerrors.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}

// JavaScript identifier, the only shape a router receiver can have.
var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Finalize fills unset fields from Default and validates the result. An
// explicitly empty (but non-nil) Routes list is kept as is, for
// discovery-only runs.
func (c *Config) Finalize() error {
	def := Default()
	if c.ProjectPath == "" {
		c.ProjectPath = def.ProjectPath
	}
	if c.RoutesDir == "" {
		c.RoutesDir = def.RoutesDir
	}
	if c.OutputPath == "" {
		c.OutputPath = def.OutputPath
	}
	if c.OutputFormat == "" {
		c.OutputFormat = def.OutputFormat
	}
	if c.CollectionName == "" {
		c.CollectionName = def.CollectionName
	}
	if c.CollectionDescription == "" {
		c.CollectionDescription = def.CollectionDescription
	}
	if len(c.Routers) == 0 {
		c.Routers = def.Routers
	}
	if c.DiscoverPattern == "" {
		c.DiscoverPattern = def.DiscoverPattern
	}
	if c.Routes == nil {
		c.Routes = def.Routes
	}
	return c.validate()
}

func (c *Config) validate() error {
	if c.OutputFormat != "json" && c.OutputFormat != "yaml" {
		return xerrors.Errorf("unsupported output format %q (supported: json, yaml)", c.OutputFormat)
	}
	for _, r := range c.Routers {
		if !identRe.MatchString(r) {
			return xerrors.Errorf("invalid router identifier %q", r)
		}
	}

	seen := make(map[string]bool)
	for i, rf := range c.Routes {
		if rf.File == "" {
			return xerrors.Errorf("route entry %d: empty file name", i)
		}
		if !strings.HasPrefix(rf.BasePath, "/") {
			return xerrors.Errorf("route entry %s: base path %q must start with /", rf.File, rf.BasePath)
		}
		if seen[rf.File] {
			return xerrors.Errorf("route entry %s listed twice", rf.File)
		}
		seen[rf.File] = true
	}
	return nil
}

// Derive builds a mapping entry for a route file that is not in the
// configured table: the file stem minus any trailing routes marker,
// lowercased and mounted under /api/. whatsapp.routes.ts and
// messagingRoutes.ts end up under /api/whatsapp and /api/messaging.
func Derive(file string) RouteFile {
	stem := strings.TrimSuffix(file, filepath.Ext(file))
	stem = strings.TrimSuffix(stem, ".routes")
	stem = strings.TrimSuffix(stem, "Routes")
	return RouteFile{File: file, BasePath: "/api/" + strings.ToLower(stem)}
}
