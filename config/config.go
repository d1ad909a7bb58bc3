// Package config loads and saves the terminal's persistent settings:
// shell path, RC-sourcing policy, extra environment variables, and the
// theme/font used by the renderer, serialized as TOML
// (github.com/BurntSushi/toml).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the terminal's persistent configuration.
type Config struct {
	Shell   ShellConfig   `toml:"shell"`
	Theme   ThemeConfig   `toml:"theme"`
	Aliases map[string]string `toml:"aliases"`
}

// ShellConfig controls how the PTY transport spawns the shell.
type ShellConfig struct {
	Path     string            `toml:"path"`      // empty = auto-detect
	SourceRC bool              `toml:"source_rc"` // source user RC files on start
	Env      map[string]string `toml:"env"`
}

// ThemeConfig selects the renderer's color theme and font.
type ThemeConfig struct {
	Name     string  `toml:"name"`
	FontPath string  `toml:"font_path"`
	FontSize float64 `toml:"font_size"`
}

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Shell: ShellConfig{
			Path:     "",
			SourceRC: false,
			Env:      map[string]string{},
		},
		Theme: ThemeConfig{
			Name:     "raven-blue",
			FontPath: "",
			FontSize: 14,
		},
		Aliases: map[string]string{},
	}
}

// Path returns the path to the TOML config file, creating its parent
// directory if necessary.
func Path() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".ravenvt.toml"
	}
	dir := filepath.Join(homeDir, ".config", "ravenvt")
	os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, "config.toml")
}

// Load reads the config file, returning Default() if it does not exist.
func Load() (*Config, error) {
	path := Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Shell.Env == nil {
		cfg.Shell.Env = map[string]string{}
	}
	if cfg.Aliases == nil {
		cfg.Aliases = map[string]string{}
	}
	return cfg, nil
}

// Save writes c to the config file as TOML.
func (c *Config) Save() error {
	path := Path()
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("config: encode %s: %w", path, err)
	}
	return nil
}

// AvailableShells lists installed shells present on the filesystem, for
// a settings UI to offer as choices.
func AvailableShells() []string {
	candidates := []string{
		"/bin/bash", "/usr/bin/bash",
		"/bin/zsh", "/usr/bin/zsh",
		"/bin/fish", "/usr/bin/fish",
		"/bin/sh", "/usr/bin/sh",
		"/bin/dash", "/usr/bin/dash",
		"/bin/tcsh", "/usr/bin/tcsh",
		"/bin/ksh", "/usr/bin/ksh",
	}
	seen := make(map[string]bool)
	var shells []string
	for _, sh := range candidates {
		if _, err := os.Stat(sh); err != nil {
			continue
		}
		base := filepath.Base(sh)
		if seen[base] {
			continue
		}
		seen[base] = true
		shells = append(shells, sh)
	}
	return shells
}

// SetAlias sets a shell alias in the configuration.
func (c *Config) SetAlias(name, command string) {
	if c.Aliases == nil {
		c.Aliases = make(map[string]string)
	}
	c.Aliases[name] = command
}

// RemoveAlias removes an alias.
func (c *Config) RemoveAlias(name string) { delete(c.Aliases, name) }
