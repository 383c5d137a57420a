// Command shpimport is a developer harness: it imports every shapefile
// group found under a folder into the in-memory drawing backend and prints
// a YAML summary of what would be created in a host drawing.
package main

import (
	"context"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	shpimport "github.com/godeepar/shpimport"
	"github.com/godeepar/shpimport/config"
	"github.com/godeepar/shpimport/drawing"
	"github.com/godeepar/shpimport/workspace"
)

type Options struct {
	ConfigFile string `short:"c" long:"config"    env:"CONFIG_FILE" description:"Path to importer options file"`
	LogLevel   string `short:"L" long:"log-level" env:"LOG_LEVEL"   description:"Log level" default:"info"`
	Mercator   bool   `short:"m" long:"mercator"  description:"Reproject geographic coordinates to web mercator"`

	Args struct {
		Dir string `positional-arg-name:"DIR" description:"Workspace folder to import"`
	} `positional-args:"yes" required:"yes"`
}

type summary struct {
	Layers    int `yaml:"layers"`
	Entities  int `yaml:"entities"`
	Circles   int `yaml:"circles"`
	Lines     int `yaml:"lines"`
	Polylines int `yaml:"polylines"`
}

// logProgress narrates the busy flag through the logger.
type logProgress struct{}

func (logProgress) Busy(status string) { log.Info().Bool("busy", true).Msg(status) }
func (logProgress) End()               { log.Info().Bool("busy", false).Msg("Import finished") }

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(opts.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Default()
	if opts.ConfigFile != "" {
		if cfg, err = config.Load(opts.ConfigFile); err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
	}
	if opts.Mercator {
		cfg.Mercator = true
	}

	root, err := workspace.OpenDir(opts.Args.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open workspace folder")
	}

	mem := &drawing.Memory{}
	importer := shpimport.New(cfg)
	importer.Progress = logProgress{}

	if err := importer.Import(context.Background(), root, mem); err != nil {
		// already reported by the importer
		os.Exit(1)
	}

	s := summary{Layers: len(mem.Layers), Entities: len(mem.Entities)}
	for _, entity := range mem.Entities {
		switch entity.Kind {
		case "circle":
			s.Circles++
		case "line":
			s.Lines++
		case "polyline":
			s.Polylines++
		}
	}

	out, err := yaml.Marshal(s)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to render summary")
	}
	if _, err := os.Stdout.Write(out); err != nil {
		log.Error().Err(err).Msg("Failed to write summary")
	}
}
