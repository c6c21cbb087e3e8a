package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

type mergeOverlay struct {
	Commands []CommandConfig `toml:"commands"`
}

func getConfigFilePath() string {
	var configDirs []string

	// useful during development or other non-standard setups.
	if dir := os.Getenv("SCENED_CONFIG_DIR"); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return filepath.Join(dir, "config.toml")
		}
	}

	// os.UserConfigDir() already does this for linux leaving darwin to handle
	if runtime.GOOS == "darwin" {
		configDirs = append(configDirs, path.Join(os.Getenv("HOME"), ".config"))
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			configDirs = append(configDirs, xdg)
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		configDirs = append(configDirs, configDir)
	}

	for _, dir := range configDirs {
		configPath := filepath.Join(dir, "scened", "config.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}

	if len(configDirs) > 0 {
		return filepath.Join(configDirs[0], "scened", "config.toml")
	}
	return ""
}

// Default returns the configuration embedded in the binary.
func Default() (*Config, error) {
	data, err := configFS.ReadFile("default/config.toml")
	if err != nil {
		return nil, fmt.Errorf("no embedded default config: %w", err)
	}
	cfg := &Config{}
	if err := cfg.Load(string(data)); err != nil {
		return nil, fmt.Errorf("embedded default config: %w", err)
	}
	return cfg, nil
}

// LoadFile returns the default configuration overlaid with the file at
// configPath. An empty path means the user's config file; a missing user
// config file is not an error.
func LoadFile(configPath string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	explicit := configPath != ""
	if !explicit {
		configPath = getConfigFilePath()
		if configPath == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %q: %w", configPath, err)
	}
	if err := cfg.Load(string(data)); err != nil {
		return nil, fmt.Errorf("loading config %q: %w", configPath, err)
	}
	return cfg, nil
}

// Load decodes data on top of the current values. [[commands]] entries are
// merged by name with the ones already present instead of replacing them.
func (c *Config) Load(data string) error {
	baseCommands := slices.Clone(c.Commands)

	metadata, err := toml.Decode(data, c)
	if err != nil {
		return err
	}

	// Decode merge-managed arrays into a fresh struct so they are always read
	// from the file content alone.
	overlay := &mergeOverlay{}
	if _, err := toml.Decode(data, overlay); err != nil {
		return err
	}
	if metadata.IsDefined("commands") {
		c.Commands = mergeCommands(baseCommands, overlay.Commands)
	}

	return c.Validate()
}

// Warnings reports keys in content that the configuration does not know about.
func Warnings(content string) []string {
	var probe Config
	md, err := toml.Decode(content, &probe)
	if err != nil {
		return nil
	}
	var warnings []string
	for _, key := range md.Undecoded() {
		// colour tables are decoded by Color.UnmarshalTOML
		if len(key) > 2 && key[0] == "ui" && key[1] == "colors" {
			continue
		}
		warnings = append(warnings, fmt.Sprintf("unknown config key %q", strings.Join(key, ".")))
	}
	return warnings
}
