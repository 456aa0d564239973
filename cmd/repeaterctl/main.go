// Command repeaterctl drives a repeater editing session from the command
// line: it loads a context catalog, attaches contexts, configures one
// repeater and prints what it would show.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/surrealdb/repeater.go"
	"github.com/surrealdb/repeater.go/pkg/catalog"
	"github.com/surrealdb/repeater.go/pkg/logger"
	"github.com/surrealdb/repeater.go/pkg/selection"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app is the state shared by the subcommands of one invocation.
type app struct {
	configPath string
	cfg        *Config
	flags      Config
	log        logger.Logger
	closeLog   func()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "repeaterctl",
		Short: "Preview repeater data sources, filters and sorting",
		Long: `repeaterctl loads a catalog of contexts (collections of records) and
shows how a repeater renders them for a given set of attachments, filter
rules and sort rules.

Without --catalog the built-in demo catalog (recipes, team, projects) is used.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.closeLog != nil {
				a.closeLog()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.flags.CatalogPath, "catalog", "", "catalog file (.yaml, .yml, .json or .cbor)")
	pf.StringVar(&a.flags.Personality, "personality", "", "editor personality: studio or classic")
	pf.StringSliceVar(&a.flags.Sections, "sections", nil, "section ids in document order")
	pf.StringVar(&a.flags.Log.Backend, "log-backend", "", "log backend: zerolog, slog, zap or none")
	pf.StringVar(&a.flags.Log.Level, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&a.flags.Log.Format, "log-format", "", "log format: json or text (slog), prod or dev (zap)")
	pf.StringVar(&a.flags.Log.File, "log-file", "", "write zerolog output to this file")

	root.AddCommand(
		newContextsCmd(a),
		newFieldsCmd(a),
		newRenderCmd(a),
		newLabelsCmd(a),
		newConvertCmd(a),
	)
	return root
}

// setup loads the config, lets flags override it and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("catalog") {
		cfg.CatalogPath = a.flags.CatalogPath
	}
	if f.Changed("personality") {
		cfg.Personality = a.flags.Personality
	}
	if f.Changed("sections") {
		cfg.Sections = a.flags.Sections
	}
	if f.Changed("log-backend") {
		cfg.Log.Backend = a.flags.Log.Backend
	}
	if f.Changed("log-level") {
		cfg.Log.Level = a.flags.Log.Level
	}
	if f.Changed("log-format") {
		cfg.Log.Format = a.flags.Log.Format
	}
	if f.Changed("log-file") {
		cfg.Log.File = a.flags.Log.File
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.log, a.closeLog, err = newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func (a *app) catalog() (*catalog.Catalog, error) {
	if a.cfg.CatalogPath == "" {
		return catalog.Demo(), nil
	}
	cat, err := catalog.Load(a.cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	a.log.Debug("catalog loaded", "path", a.cfg.CatalogPath, "contexts", len(cat.IDs()))
	return cat, nil
}

func (a *app) editor() (*repeater.Editor, error) {
	cat, err := a.catalog()
	if err != nil {
		return nil, err
	}
	personality, _ := selection.ParsePersonality(a.cfg.Personality)

	opts := []repeater.Option{
		repeater.WithLogger(a.log),
		repeater.WithPersonality(personality),
	}
	if len(a.cfg.Sections) > 0 {
		opts = append(opts, repeater.WithSections(a.cfg.Sections...))
	}
	return repeater.New(cat, opts...)
}
