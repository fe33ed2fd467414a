// Package commands contains the CLI commands for the application
package commands

import (
	"github.com/rs/zerolog"
	"github.com/seqhost/seqhost/internal/config"
)

type Flags struct {
	LogLevel string
}

type Controller struct {
	Flags  *Flags
	Logger zerolog.Logger
}

// loadConfig resolves the effective configuration, falling back to defaults
// when no seqhost.json is present.
func (c *Controller) loadConfig() *config.Config {
	cfg, dir, err := config.LoadConfig()
	if err != nil {
		c.Logger.Warn().Err(err).Msg("failed to load seqhost.json, using defaults")
		return config.Default()
	}
	c.Logger.Debug().Str("dir", dir).Msg("configuration resolved")
	return cfg
}
