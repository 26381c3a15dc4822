package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	WordsAPI  WordsAPIConfig  `yaml:"words_api"`
	Thesaurus ThesaurusConfig `yaml:"thesaurus"`
	Cache     CacheConfig     `yaml:"cache"`
	Selection SelectionConfig `yaml:"selection"`
	Refresh   RefreshConfig   `yaml:"refresh"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// WordsAPIConfig holds random-word dictionary API settings (RapidAPI).
type WordsAPIConfig struct {
	BaseURL string        `yaml:"base_url" env:"WORDS_API_URL"     env-default:"https://wordsapiv1.p.rapidapi.com"`
	APIKey  string        `yaml:"api_key"  env:"WORDS_API_KEY"     env-required:"true"`
	APIHost string        `yaml:"api_host" env:"WORDS_API_HOST"    env-default:"wordsapiv1.p.rapidapi.com"`
	Timeout time.Duration `yaml:"timeout"  env:"WORDS_API_TIMEOUT" env-default:"10s"`
}

// ThesaurusConfig holds thesaurus API settings (Merriam-Webster).
type ThesaurusConfig struct {
	BaseURL string        `yaml:"base_url" env:"THESAURUS_URL"     env-default:"https://www.dictionaryapi.com/api/v3/references/thesaurus/json"`
	APIKey  string        `yaml:"api_key"  env:"THESAURUS_KEY"     env-required:"true"`
	Timeout time.Duration `yaml:"timeout"  env:"THESAURUS_TIMEOUT" env-default:"10s"`
}

// CacheConfig holds Upstash Redis REST settings.
type CacheConfig struct {
	BaseURL string        `yaml:"base_url" env:"CACHE_URL"     env-required:"true"`
	Token   string        `yaml:"token"    env:"CACHE_TOKEN"   env-required:"true"`
	Key     string        `yaml:"key"      env:"CACHE_KEY"     env-default:"word-of-the-day"`
	Timeout time.Duration `yaml:"timeout"  env:"CACHE_TIMEOUT" env-default:"5s"`
}

// SelectionConfig holds word selection pipeline settings.
type SelectionConfig struct {
	Timezone           string `yaml:"timezone"             env:"SELECTION_TIMEZONE"  env-default:"America/Los_Angeles"`
	MaxResolutionDepth int    `yaml:"max_resolution_depth" env:"SELECTION_MAX_DEPTH" env-default:"5"`
	ScoringEnabled     bool   `yaml:"scoring_enabled"      env:"SELECTION_SCORING"   env-default:"true"`

	// Location is parsed from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// RefreshConfig holds the scheduled pre-warm settings. When enabled, the
// selection pipeline runs on a cron schedule so the first request of the day
// never pays the generation cost.
type RefreshConfig struct {
	Enabled  bool   `yaml:"enabled"  env:"REFRESH_ENABLED"  env-default:"false"`
	Schedule string `yaml:"schedule" env:"REFRESH_SCHEDULE" env-default:"1 0 * * *"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
