// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It loads an optional .env file with 'joho/godotenv', then leverages
'caarlos0/env' to map OS environment variables into a strongly-typed Go
struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to the bot, transport and ops server via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/taibuivan/xkcdbot/internal/platform/constants"
	"github.com/taibuivan/xkcdbot/internal/platform/validate"
)

// # Render Modes

const (
	// RenderRich replies with an embed (image, title link, fields, footer).
	RenderRich = "rich"

	// RenderPlain replies with the bare image URL.
	RenderPlain = "plain"
)

// # Configuration Schema

// Config holds all runtime configuration for the bot.
type Config struct {

	// Chat platform session
	DiscordToken     string `env:"DISCORD_TOKEN"`
	GuildID          string `env:"DISCORD_GUILD_ID"`
	RegisterCommands bool   `env:"REGISTER_COMMANDS"  envDefault:"true"`

	// Prefix command surface
	CommandPrefix    string `env:"COMMAND_PREFIX"     envDefault:"~"`
	PrefixRenderMode string `env:"PREFIX_RENDER_MODE" envDefault:"rich"`

	// Comic archive
	ArchiveBaseURL string        `env:"ARCHIVE_BASE_URL" envDefault:"https://xkcd.com"`
	FetchTimeout   time.Duration `env:"FETCH_TIMEOUT"    envDefault:"10s"`
	UserAgent      string        `env:"USER_AGENT"       envDefault:"xkcdbot/0.1.0-dev"`

	// Ops HTTP server. Unset means the default port; set but empty disables
	// it, so the default is applied in LoadFiles rather than by a tag.
	OpsPort string `env:"OPS_PORT"`

	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG"       envDefault:"false"`
}

// # Configuration Loading

// Load reads ./.env (if present) and parses environment variables into a [Config].
//
// Variables already set in the process environment win over the .env file.
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is [Load] with explicit dotenv paths. Missing files are skipped.
func LoadFiles(paths ...string) (*Config, error) {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: failed to load %s: %w", path, err)
		}
	}

	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if _, isSet := os.LookupEnv("OPS_PORT"); !isSet {
		cfg.OpsPort = constants.DefaultOpsPort
	}

	return cfg, nil
}

// Validate checks the archive and rendering settings.
//
// The Discord token is checked separately by [Config.RequireToken] because
// offline commands (fetch) run without one.
func (c *Config) Validate() error {
	v := &validate.Validator{}
	v.URL("ARCHIVE_BASE_URL", c.ArchiveBaseURL).
		OneOf("PREFIX_RENDER_MODE", c.PrefixRenderMode, RenderRich, RenderPlain).
		Required("COMMAND_PREFIX", c.CommandPrefix).
		Custom("FETCH_TIMEOUT", c.FetchTimeout <= 0, "Must be a positive duration")
	return v.Err()
}

// RequireToken fails when no Discord token is configured.
func (c *Config) RequireToken() error {
	v := &validate.Validator{}
	return v.Required("DISCORD_TOKEN", c.DiscordToken).Err()
}

// OpsEnabled reports whether the ops HTTP server should be started.
func (c *Config) OpsEnabled() bool {
	return c.OpsPort != ""
}
