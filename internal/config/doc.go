// Package config handles loading and validation of gww configuration.
//
// Configuration is read once at startup from ~/.config/gww/config.toml and
// environment variable overrides, then passed explicitly to the engine.
//
// # Configuration Sources (highest priority first)
//
//   - Environment: WORKTREE_ROOT, GWW_NO_COLOUR / NO_COLOR,
//     GWW_INIT_SUBMODULES, GWW_HISTORY_FILE
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - worktree_root: Base directory for worktrees (default: ~/devel/worktrees)
//   - no_colour: Disable colour in the picker
//   - init_submodules: Run "git submodule update --init --recursive" in new worktrees
//   - history_file: Where worktree access times are kept (default: ~/.gww/history.json)
//
// # Path Validation
//
// Paths must be absolute or start with ~ (no relative paths like "." or "..")
// to avoid confusion about the working directory.
package config
