package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// Config holds all configuration options.
type Config struct {
	DeckDir string `json:"deck_dir"`
}

// ConfigSources tracks which config files were loaded.
type ConfigSources struct {
	Global  string // path to global config if loaded, empty otherwise
	Project string // path to project config if loaded, empty otherwise
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{DeckDir: ".deck"}
}

// configFileName is the project-level config file name.
const configFileName = ".swot.json"

// globalConfigPath returns the path to the global config file:
// $XDG_CONFIG_HOME/swot/config.json if set, otherwise
// ~/.config/swot/config.json. Empty when no home directory is known.
func globalConfigPath(env map[string]string) string {
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, "swot", "config.json")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "swot", "config.json")
	}
	return ""
}

// LoadConfig loads configuration with the following precedence (highest
// wins): defaults, global user config, project config (.swot.json in
// workDir), explicit config file via configPath, CLI overrides.
func LoadConfig(workDir, configPath string, cliOverrides Config, env map[string]string) (Config, ConfigSources, error) {
	cfg := DefaultConfig()

	var sources ConfigSources

	if global := globalConfigPath(env); global != "" {
		loaded, found, err := readConfigFile(global)
		if err != nil {
			return Config{}, ConfigSources{}, err
		}
		if found {
			sources.Global = global
			cfg = mergeConfig(cfg, loaded)
		}
	}

	project := filepath.Join(workDir, configFileName)
	if configPath != "" {
		project = configPath
	}
	loaded, found, err := readConfigFile(project)
	if err != nil {
		return Config{}, ConfigSources{}, err
	}
	if !found && configPath != "" {
		return Config{}, ConfigSources{}, fmt.Errorf("config file not found: %s", configPath)
	}
	if found {
		sources.Project = project
		cfg = mergeConfig(cfg, loaded)
	}

	cfg = mergeConfig(cfg, cliOverrides)
	return cfg, sources, nil
}

// readConfigFile parses a JSONC config file. A missing file is not an
// error; found reports whether the file existed.
func readConfigFile(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, false, nil
	}
	if err != nil {
		return Config{}, false, fmt.Errorf("reading config %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("parsing config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, false, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, true, nil
}

// mergeConfig overlays non-empty fields of overlay onto base.
func mergeConfig(base, overlay Config) Config {
	if overlay.DeckDir != "" {
		base.DeckDir = overlay.DeckDir
	}
	return base
}
