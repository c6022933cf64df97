// Package config loads repocards settings from a TOML file and the
// environment.
//
// Lookup order, later wins: built-in defaults, the config file
// (~/.config/repocards/config.toml, or $REPOCARDS_CONFIG, or an explicit
// path), then GITHUB_TOKEN for the API token. Command-line flags are applied
// on top by the CLI.
//
// Example file:
//
//	user        = "noxx-code"
//	max_results = 6
//	debounce    = "200ms"
//	cache_ttl   = "10m"
//	listen      = ":8080"
//	redis_url   = "redis://localhost:6379/0"  # optional shared cache
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	rcerrors "github.com/matzehuels/repocards/pkg/errors"
	"github.com/matzehuels/repocards/pkg/github"
	"github.com/matzehuels/repocards/pkg/render"
	"github.com/matzehuels/repocards/pkg/showcase"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "REPOCARDS_CONFIG"
	EnvToken      = "GITHUB_TOKEN"
)

// DefaultListen is the serve command's default address.
const DefaultListen = "127.0.0.1:8080"

// DefaultCacheTTL is how long a fetched listing is reused.
const DefaultCacheTTL = 10 * time.Minute

// Config holds every tunable setting.
type Config struct {
	User       string        `toml:"user"`
	PerPage    int           `toml:"per_page"`
	MaxResults int           `toml:"max_results"`
	Debounce   time.Duration `toml:"debounce"`
	Stagger    time.Duration `toml:"stagger"`
	CacheTTL   time.Duration `toml:"cache_ttl"`
	Timeout    time.Duration `toml:"timeout"` // 0 means no client timeout
	BaseURL    string        `toml:"base_url"`
	Listen     string        `toml:"listen"`
	RedisURL   string        `toml:"redis_url"` // shared listing cache instead of files

	Token string `toml:"-"` // from GITHUB_TOKEN only
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		User:       github.DefaultUser,
		PerPage:    github.DefaultPerPage,
		MaxResults: showcase.MaxResults,
		Debounce:   showcase.DebounceDelay,
		Stagger:    render.StaggerStep,
		CacheTTL:   DefaultCacheTTL,
		BaseURL:    github.DefaultBaseURL,
		Listen:     DefaultListen,
	}
}

// DefaultPath returns ~/.config/repocards/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "repocards", "config.toml"), nil
}

// Load reads the config file at path on top of the defaults.
//
// An empty path falls back to $REPOCARDS_CONFIG and then DefaultPath. A
// missing file is only an error when the path was given explicitly.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigPath)
		explicit = path != ""
	}
	if path == "" {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		if err != nil && (explicit || !errors.Is(err, fs.ErrNotExist)) {
			return cfg, rcerrors.Wrap(rcerrors.ErrCodeInvalidInput, err, "load config %s", path)
		}
	}

	if tok := os.Getenv(EnvToken); tok != "" {
		cfg.Token = tok
	}
	return cfg, cfg.Validate()
}

// Validate checks that every field is usable.
func (c Config) Validate() error {
	if err := rcerrors.ValidateAccountName(c.User); err != nil {
		return err
	}
	if err := rcerrors.ValidatePageSize(c.PerPage); err != nil {
		return err
	}
	if err := rcerrors.ValidateBaseURL(c.BaseURL); err != nil {
		return err
	}
	if c.RedisURL != "" && !strings.HasPrefix(c.RedisURL, "redis://") && !strings.HasPrefix(c.RedisURL, "rediss://") {
		return rcerrors.New(rcerrors.ErrCodeInvalidInput, "redis_url must start with redis:// or rediss://: %q", c.RedisURL)
	}
	if c.MaxResults < 1 {
		return rcerrors.New(rcerrors.ErrCodeInvalidInput, "max_results must be positive, got %d", c.MaxResults)
	}
	durations := []struct {
		name string
		d    time.Duration
	}{
		{"debounce", c.Debounce},
		{"stagger", c.Stagger},
		{"cache_ttl", c.CacheTTL},
		{"timeout", c.Timeout},
	}
	for _, f := range durations {
		if f.d < 0 {
			return rcerrors.New(rcerrors.ErrCodeInvalidInput, "%s must not be negative, got %s", f.name, f.d)
		}
	}
	return nil
}
