package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Provider  ProviderConfig  `yaml:"provider"`
	TTS       TTSConfig       `yaml:"tts"`
	History   HistoryConfig   `yaml:"history"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// ProviderConfig holds generative-provider settings for dictionary lookups.
// Structured long-form generation is slow, so the timeout default is generous.
type ProviderConfig struct {
	APIKey  string        `yaml:"api_key" env:"PROVIDER_API_KEY" env-required:"true"`
	Model   string        `yaml:"model"   env:"PROVIDER_MODEL"   env-default:"claude-3-5-haiku-latest"`
	Timeout time.Duration `yaml:"timeout" env:"PROVIDER_TIMEOUT" env-default:"45s"`
}

// TTSConfig holds text-to-speech provider settings. The endpoint is any
// OpenAI-compatible audio/speech API.
type TTSConfig struct {
	BaseURL    string        `yaml:"base_url"     env:"TTS_BASE_URL"     env-default:"https://api.openai.com/v1"`
	APIKey     string        `yaml:"api_key"      env:"TTS_API_KEY"`
	Model      string        `yaml:"model"        env:"TTS_MODEL"        env-default:"tts-1"`
	Voice      string        `yaml:"voice"        env:"TTS_VOICE"        env-default:"alloy"`
	Timeout    time.Duration `yaml:"timeout"      env:"TTS_TIMEOUT"      env-default:"30s"`
	MaxTextLen int           `yaml:"max_text_len" env:"TTS_MAX_TEXT_LEN" env-default:"80"`
}

// HistoryConfig holds search-history listing settings.
type HistoryConfig struct {
	DefaultLimit int `yaml:"default_limit" env:"HISTORY_DEFAULT_LIMIT" env-default:"5"`
	MaxLimit     int `yaml:"max_limit"     env:"HISTORY_MAX_LIMIT"     env-default:"50"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-IP rate limits for provider-backed routes.
type RateLimitConfig struct {
	LookupPerMinute int `yaml:"lookup_per_minute" env:"RATELIMIT_LOOKUP_PER_MINUTE" env-default:"20"`
	TTSPerMinute    int `yaml:"tts_per_minute"    env:"RATELIMIT_TTS_PER_MINUTE"    env-default:"30"`
}
