// Package config provides configuration loading for the scraper using TOML.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
)

// Browser fetching settings.
type Fetcher struct {
	UserAgent      string `toml:"userAgent"`
	ChromePath     string `toml:"chromePath"`
	TimeoutSeconds int    `toml:"timeoutSeconds"`
	SettleSeconds  int    `toml:"settleSeconds"`
}

// Config is the full tool configuration.
type Config struct {
	OutputPath string  `toml:"outputPath"`
	Fetcher    Fetcher `toml:"fetcher"`
}

// fileName is looked up in the working directory; the file is optional.
const fileName = "leaderboard.toml"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputPath: "data.json",
		Fetcher: Fetcher{
			TimeoutSeconds: 60,
			SettleSeconds:  3,
		},
	}
}

// Load reads leaderboard.toml from the working directory when present and
// applies environment overrides on top. A missing file yields the defaults;
// a malformed file is an error. A .env file, if any, is loaded first so it
// can supply the override variables.
func Load() (Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := Default()
	if _, err := os.Stat(fileName); err == nil {
		if _, err := toml.DecodeFile(fileName, &cfg); err != nil {
			return cfg, eris.Wrapf(err, "parsing %s", fileName)
		}
	}

	if v := os.Getenv("CHROME_PATH"); v != "" {
		cfg.Fetcher.ChromePath = v
	}
	if v := os.Getenv("OUTPUT_PATH"); v != "" {
		cfg.OutputPath = v
	}
	return cfg, nil
}

// Timeout returns the navigation timeout as a duration.
func (f Fetcher) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// Settle returns the post-idle settle delay as a duration.
func (f Fetcher) Settle() time.Duration {
	return time.Duration(f.SettleSeconds) * time.Second
}
