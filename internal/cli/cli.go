// Package cli implements the memelab command-line interface.
//
// The CLI drives the same pipeline as the HTTP server, so every endpoint's
// operation can be exercised from a terminal, for instance to check which
// provider credentials work.
//
// # Commands
//
//   - serve: run the HTTP API
//   - search, trending, category: run an aggregation and print the results
//   - categories, sources, templates: list static and catalog data
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes one line per provider call.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/memelab/internal/config"
	"github.com/matzehuels/memelab/pkg/buildinfo"
	"github.com/matzehuels/memelab/pkg/cache"
	"github.com/matzehuels/memelab/pkg/pipeline"
	"github.com/matzehuels/memelab/pkg/providers"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	noCache    bool
	verbose    bool
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "memelab",
		Short:        "Memelab searches meme images across many providers",
		Long:         `Memelab fans a meme search out to every configured image provider, merges and deduplicates the results, and serves them from a short-lived cache.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.SetLogLevel(LogDebug)
				registerLogHooks(c.Logger)
			}
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&c.configPath, "config", "", "path to a TOML config file (default $"+config.PathEnv+")")
	flags.BoolVar(&c.noCache, "no-cache", false, "disable the result cache")

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.trendingCommand())
	root.AddCommand(c.categoryCommand())
	root.AddCommand(c.categoriesCommand())
	root.AddCommand(c.sourcesCommand())
	root.AddCommand(c.templatesCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner loads the configuration and wires cache, registry and runner.
// The caller must Close the runner.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, config.Config{}, err
	}

	backend, keyer, err := c.newCache(ctx, cfg)
	if err != nil {
		return nil, config.Config{}, err
	}
	registry := providers.New(cfg.Credentials(), backend, keyer)
	return pipeline.NewRunner(backend, keyer, registry, c.Logger), cfg, nil
}

func (c *CLI) newCache(ctx context.Context, cfg config.Config) (cache.Cache, cache.Keyer, error) {
	if c.noCache {
		return cache.NewNullCache(), cache.NewDefaultKeyer(), nil
	}
	if !cfg.UseRedis() {
		return cache.NewMemoryCache(), cache.NewDefaultKeyer(), nil
	}

	backend, err := cache.NewRedisCache(ctx, cache.RedisConfig{
		Addr:      cfg.Redis.Addr,
		Password:  cfg.Redis.Password,
		DB:        cfg.Redis.DB,
		Namespace: cfg.Redis.Namespace,
	})
	if err != nil {
		return nil, nil, err
	}
	c.Logger.Debug("using redis cache", "addr", cfg.Redis.Addr, "namespace", cfg.Redis.Namespace)
	return backend, cache.NewScopedKeyer(cache.NewDefaultKeyer(), cfg.Redis.Namespace), nil
}
