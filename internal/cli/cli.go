// Package cli implements the repocards command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/repocards/pkg/buildinfo"
	"github.com/matzehuels/repocards/pkg/config"
	"github.com/matzehuels/repocards/pkg/flagstore"
	"github.com/matzehuels/repocards/pkg/github"
	"github.com/matzehuels/repocards/pkg/httputil"
	"github.com/matzehuels/repocards/pkg/observability"
	"github.com/matzehuels/repocards/pkg/showcase"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "repocards"

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
	Config config.Config

	configPath string
	envFile    string
	user       string
	noCache    bool
	noState    bool
	out        io.Writer
	hooks      *logHooks
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command output, mainly for tests.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "repocards shows a GitHub account's repositories as filterable cards",
		Long:         `repocards fetches the public repositories of one GitHub account and presents the most recently updated ones as cards, filterable by language and free-text search, in the terminal, as JSON or HTML, or over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.envFile, "env-file", config.DefaultEnvFile, "dotenv file read before the config (GITHUB_TOKEN, REPOCARDS_CONFIG)")
	flags.StringVar(&c.configPath, "config", "", "config file (default ~/.config/repocards/config.toml, or $REPOCARDS_CONFIG)")
	flags.StringVarP(&c.user, "user", "u", "", "GitHub account to list (default from config, else "+github.DefaultUser+")")
	flags.BoolVar(&c.noCache, "no-cache", false, "always fetch from the API")
	flags.BoolVar(&c.noState, "no-state", false, "do not read or write the persisted intro flag")

	root.AddCommand(c.browseCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.languagesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.introCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads configuration, applies flag overrides and registers the
// logging hooks. It runs before every subcommand.
func (c *CLI) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(c.envFile); err != nil {
		return err
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.user != "" {
		cfg.User = c.user
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	c.Config = cfg

	c.hooks = &logHooks{logger: c.Logger}
	observability.SetBrowserHooks(c.hooks)
	observability.SetHTTPHooks(c.hooks)
	observability.SetCacheHooks(c.hooks)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Factories
// =============================================================================

// newClient creates a GitHub client from the loaded config.
func (c *CLI) newClient(ctx context.Context) *github.Client {
	opts := []github.Option{
		github.WithBaseURL(c.Config.BaseURL),
		github.WithToken(c.Config.Token),
		github.WithTimeout(c.Config.Timeout),
	}
	if cache := c.newCache(ctx); cache != nil {
		opts = append(opts, github.WithCache(cache))
	}
	return github.NewClient(opts...)
}

// newFetcher creates the repository fetcher for the configured account.
func (c *CLI) newFetcher(ctx context.Context) *github.Fetcher {
	return github.NewFetcher(c.newClient(ctx), c.Config.User, c.Config.PerPage)
}

// newBrowser wires a browser session over target.
func (c *CLI) newBrowser(ctx context.Context, target showcase.RenderTarget) *showcase.Browser {
	return showcase.NewBrowser(c.newFetcher(ctx), target,
		showcase.WithLimit(c.Config.MaxResults),
		showcase.WithDebounce(c.Config.Debounce),
		showcase.WithLogger(c.Logger),
	)
}

// newCache returns the response cache, or nil when caching is disabled or
// the backend is unusable. A configured Redis URL takes precedence over
// the cache directory.
func (c *CLI) newCache(ctx context.Context) httputil.Store {
	if c.noCache || c.Config.CacheTTL == 0 {
		return nil
	}
	if c.Config.RedisURL != "" {
		cache, err := httputil.NewRedisCache(ctx, c.Config.RedisURL, c.Config.CacheTTL)
		if err != nil {
			c.Logger.Warn("redis cache disabled", "error", err)
			return nil
		}
		return cache
	}
	cache, err := httputil.NewCache("", c.Config.CacheTTL)
	if err != nil {
		c.Logger.Debug("cache disabled", "error", err)
		return nil
	}
	return cache
}

// newFlagStore returns the persisted flag store. Failures degrade to a
// store that remembers nothing.
func (c *CLI) newFlagStore() flagstore.Store {
	if c.noState {
		return flagstore.Null{}
	}
	store, err := flagstore.NewFileStore("")
	if err != nil {
		c.Logger.Debug("state disabled", "error", err)
		return flagstore.Null{}
	}
	return store
}

// loadCatalog creates a browser over target and runs its single fetch.
func (c *CLI) loadCatalog(ctx context.Context, target showcase.RenderTarget) (*showcase.Browser, error) {
	b := c.newBrowser(ctx, target)
	err := b.Load(ctx)
	return b, err
}

// servedFromCache reports whether any listing came from the response cache.
func (c *CLI) servedFromCache() bool {
	return c.hooks != nil && c.hooks.cacheHits.Load() > 0
}
