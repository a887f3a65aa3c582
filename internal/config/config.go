package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/gww/internal/history"
)

// Environment variables that override the config file.
const (
	EnvWorktreeRoot   = "WORKTREE_ROOT"
	EnvNoColour       = "GWW_NO_COLOUR"
	EnvNoColor        = "NO_COLOR"
	EnvInitSubmodules = "GWW_INIT_SUBMODULES"
	EnvHistoryFile    = "GWW_HISTORY_FILE"
)

// Config holds the gww configuration
type Config struct {
	WorktreeRoot   string `toml:"worktree_root"`
	NoColour       bool   `toml:"no_colour"`
	InitSubmodules bool   `toml:"init_submodules"`
	HistoryFile    string `toml:"history_file"`
}

// LookupEnv matches os.LookupEnv.
type LookupEnv func(key string) (string, bool)

// Default returns the default configuration
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		WorktreeRoot: filepath.Join(home, "devel", "worktrees"),
		HistoryFile:  history.DefaultPath(),
	}
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// Path returns the path to the config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gww", "config.toml"), nil
}

// Load reads config from the file at path and applies environment overrides.
// A missing file is not an error. env is consulted for every override, so
// callers pass os.LookupEnv in production and a fixed map in tests.
//
// Problems do not discard the whole config: an unreadable file falls back to
// the defaults before env overrides are applied, and an invalid path setting
// falls back to its default alone. The returned error joins every problem.
func Load(path string, env LookupEnv) (Config, error) {
	cfg := Default()
	var errs []error

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			errs = append(errs, fmt.Errorf("failed to read config file: %w", err))
		default:
			if _, err := toml.Decode(string(data), &cfg); err != nil {
				cfg = Default()
				errs = append(errs, fmt.Errorf("failed to parse config file %s: %w", path, err))
			}
		}
	}

	if env != nil {
		applyEnv(&cfg, env)
	}

	def := Default()
	cfg.WorktreeRoot = checkPath(cfg.WorktreeRoot, def.WorktreeRoot, "worktree_root", &errs)
	cfg.HistoryFile = checkPath(cfg.HistoryFile, def.HistoryFile, "history_file", &errs)

	return cfg, errors.Join(errs...)
}

// checkPath validates and expands one path setting. An explicitly empty
// value or an invalid one yields def; only the latter is reported.
func checkPath(value, def, name string, errs *[]error) string {
	if err := ValidatePath(value, name); err != nil {
		*errs = append(*errs, err)
		return def
	}
	expanded, err := expandPath(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("expand %s: %w", name, err))
		return def
	}
	if expanded == "" {
		return def
	}
	return expanded
}

func applyEnv(cfg *Config, env LookupEnv) {
	if v, ok := env(EnvWorktreeRoot); ok && v != "" {
		cfg.WorktreeRoot = v
	}
	if _, ok := env(EnvNoColour); ok {
		cfg.NoColour = true
	}
	if v, ok := env(EnvNoColor); ok && v != "" {
		cfg.NoColour = true
	}
	if v, ok := env(EnvInitSubmodules); ok {
		cfg.InitSubmodules = parseBool(v)
	}
	if v, ok := env(EnvHistoryFile); ok && v != "" {
		cfg.HistoryFile = v
	}
}

// parseBool accepts 1, true and yes in any case.
func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// Encode writes the configuration as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

const defaultConfig = `# gww configuration

# Base directory for worktrees. A worktree for branch B of repository R
# lives at <worktree_root>/R/B; branch names with "/" become nested folders.
# Must be an absolute path or start with ~. Overridden by WORKTREE_ROOT.
# worktree_root = "~/devel/worktrees"

# Disable colour in the branch picker. Overridden by GWW_NO_COLOUR or NO_COLOR.
# no_colour = false

# Initialize submodules in freshly created worktrees.
# Overridden by GWW_INIT_SUBMODULES (1, true or yes).
# init_submodules = false

# Where worktree access times are stored for recency ordering.
# Overridden by GWW_HISTORY_FILE.
# history_file = "~/.gww/history.json"
`

// Init creates a commented default config file at path.
// If force is true, overwrites an existing file.
func Init(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfig), 0644)
}

type ctxKey struct{}

// WithConfig attaches cfg to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the Config stored in ctx, or nil.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	return nil
}
