package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the seqhost.json configuration file
type Config struct {
	Demo DemoConfig `json:"demo"`
	Run  RunConfig  `json:"run"`
}

// DemoConfig controls the host-side demo pull loop
type DemoConfig struct {
	Generator string `json:"generator"` // default generator name for the demo command
	Limit     int    `json:"limit"`     // element cap for unbounded generators
}

// RunConfig controls how guest modules are driven
type RunConfig struct {
	Entry   string   `json:"entry"`   // guest export invoked to start the pull loop
	Watch   []string `json:"watch"`   // patterns re-run on change in watch mode
	Exclude []string `json:"exclude"` // patterns ignored in watch mode
}

// LoadConfig loads seqhost.json from the current directory or a parent
// directory. A missing file is not an error; defaults apply.
func LoadConfig() (*Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return loadConfigFromDir(dir)
}

// LoadConfigFromPath loads the seqhost.json configuration from a specific path
func LoadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

// Default returns the configuration used when no seqhost.json exists.
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

func (c *Config) applyDefaults() {
	if c.Demo.Generator == "" {
		c.Demo.Generator = "get_rows"
	}
	if c.Demo.Limit == 0 {
		c.Demo.Limit = 64
	}
	if c.Run.Entry == "" {
		c.Run.Entry = "run"
	}
	if len(c.Run.Watch) == 0 {
		c.Run.Watch = []string{"*.wasm"}
	}
	if len(c.Run.Exclude) == 0 {
		c.Run.Exclude = []string{".git/", "build/"}
	}
}

// loadConfigFromDir searches for seqhost.json in the given directory and its
// parents. Falls back to defaults when none is found.
func loadConfigFromDir(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, "seqhost.json")
		if _, err := os.Stat(configPath); err == nil {
			config, err := LoadConfigFromPath(configPath)
			if err != nil {
				return nil, "", err
			}
			return config, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return Default(), startDir, nil
}
