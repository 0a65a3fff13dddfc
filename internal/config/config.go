package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"jobads/internal/config/configs"
	"jobads/internal/core/domain"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP     configs.HTTP     `envPrefix:"HTTP_"`
	Engine   configs.Engine   `envPrefix:"ENGINE_"`
	Log      configs.Logger   `envPrefix:"LOG_"`
	Psql     configs.Postgres `envPrefix:"PSQL_"`
	Taxonomy configs.Taxonomy `envPrefix:"TAXONOMY_"`

	// Platform identities. Each section reads ACCOUNT_ID, PAGE_ID,
	// FUNDING_INSTRUMENT_ID, BRAND_NAME and DEFAULT_COUNTRY under its prefix.
	Meta     configs.Platform `envPrefix:"META_"`
	Google   configs.Platform `envPrefix:"GOOGLE_"`
	Twitter  configs.Platform `envPrefix:"TWITTER_"`
	TikTok   configs.Platform `envPrefix:"TIKTOK_"`
	Snapchat configs.Platform `envPrefix:"SNAPCHAT_"`
}

// Load reads an optional .env file from the working directory and then
// parses the environment into a Config. Variables already set in the
// environment win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return Parse()
}

// Parse reads configuration from environment variables only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Platforms returns the per-platform configuration handed to the compiler.
func (c Config) Platforms() map[domain.Platform]domain.PlatformConfig {
	return map[domain.Platform]domain.PlatformConfig{
		domain.PlatformMeta:     c.Meta.Domain(),
		domain.PlatformGoogle:   c.Google.Domain(),
		domain.PlatformTwitter:  c.Twitter.Domain(),
		domain.PlatformTikTok:   c.TikTok.Domain(),
		domain.PlatformSnapchat: c.Snapchat.Domain(),
	}
}
