package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"

	"github.com/wexp-dev/go-postman-generator/internal/config"
	"github.com/wexp-dev/go-postman-generator/internal/pipeline"
)

var log = logging.Logger("main")

const Version = "1.0.0"

func main() {
	app := &cli.App{
		Name:                 "postman-generator",
		Usage:                "generate a Postman collection from Express route files",
		Version:              Version,
		EnableBashCompletion: true,
		DefaultCommand:       "generate",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "Set log level",
			},
		},
		Before: func(cctx *cli.Context) error {
			return logging.SetLogLevel("*", cctx.String("log-level"))
		},
		Commands: []*cli.Command{
			generateCmd,
			routesCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Errorf("%+v", err)
		os.Exit(1)
	}
}

var scanFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "project",
		Aliases: []string{"p"},
		Value:   ".",
		Usage:   "Path to the backend project",
	},
	&cli.StringFlag{
		Name:  "routes-dir",
		Value: config.DefaultRoutesDir,
		Usage: "Route files directory, relative to the project",
	},
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to a config file (json, toml or yaml)",
	},
	&cli.BoolFlag{
		Name:  "discover",
		Usage: "Also scan the routes directory for unmapped route files",
	},
}

var generateCmd = &cli.Command{
	Name:  "generate",
	Usage: "Extract routes and write the collection file",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   config.DefaultOutputFile,
			Usage:   "Output file path, relative to the project unless absolute",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "json",
			Usage:   "Output format (json|yaml)",
		},
		&cli.StringFlag{
			Name:  "name",
			Value: config.DefaultName,
			Usage: "Collection name",
		},
		&cli.StringFlag{
			Name:  "description",
			Usage: "Collection description",
		},
	}, scanFlags...),
	Action: func(cctx *cli.Context) error {
		cfg, err := buildConfig(cctx)
		if err != nil {
			return err
		}
		_, err = pipeline.Generate(cfg)
		return err
	},
}

var routesCmd = &cli.Command{
	Name:  "routes",
	Usage: "List the routes extraction finds, without writing anything",
	Flags: scanFlags,
	Action: func(cctx *cli.Context) error {
		cfg, err := buildConfig(cctx)
		if err != nil {
			return err
		}
		res, err := pipeline.Run(cfg)
		if err != nil {
			return err
		}
		printRoutes(os.Stdout, res)
		return nil
	},
}

var tableCell = lipgloss.NewStyle().Padding(0, 1)

// printRoutes renders the extraction result as a table. Column widths are
// measured with ANSI escapes stripped, so the colored method cells line up
// with the header.
func printRoutes(w io.Writer, res *pipeline.Result) {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style { return tableCell }).
		Headers("METHOD", "PATH", "NAME", "SOURCE")
	for _, fr := range res.Files {
		for _, route := range fr.Routes {
			tbl.Row(colorMethod(route.Method), route.Path, route.Name,
				fmt.Sprintf("%s:%d", route.File, route.Line))
		}
	}
	fmt.Fprintln(w, tbl)
	fmt.Fprintf(w, "\n%d routes in %d files\n", res.RoutesFound, res.FilesProcessed)
}

// buildConfig layers flag overrides on top of an optional config file on
// top of the built-in defaults. Flags win only when actually set.
func buildConfig(cctx *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := cctx.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cctx.IsSet("project") {
		cfg.ProjectPath = cctx.String("project")
	}
	if cctx.IsSet("routes-dir") {
		cfg.RoutesDir = cctx.String("routes-dir")
	}
	if cctx.IsSet("output") {
		cfg.OutputPath = cctx.String("output")
	}
	if cctx.IsSet("format") {
		cfg.OutputFormat = cctx.String("format")
	}
	if cctx.IsSet("name") {
		cfg.CollectionName = cctx.String("name")
	}
	if cctx.IsSet("description") {
		cfg.CollectionDescription = cctx.String("description")
	}
	if cctx.IsSet("discover") {
		cfg.Discover = cctx.Bool("discover")
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func colorMethod(method string) string {
	switch method {
	case "GET":
		return color.GreenString(method)
	case "POST":
		return color.YellowString(method)
	case "DELETE":
		return color.RedString(method)
	default:
		return color.CyanString(method)
	}
}
