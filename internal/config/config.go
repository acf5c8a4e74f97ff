package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Parser ParserConfig
	CORS   CORSConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// ParserConfig holds remote prompt-parser settings. An empty APIKey disables
// the remote parser entirely; the local engine still runs.
type ParserConfig struct {
	Provider    string  `mapstructure:"provider"`
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Endpoint    string  `mapstructure:"endpoint"`
	TimeoutSecs int     `mapstructure:"timeout_secs"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the KAGAZ_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("KAGAZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "kagaz")
	v.SetDefault("db.password", "kagaz_secret")
	v.SetDefault("db.name", "kagaz_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Parser defaults
	v.SetDefault("parser.provider", "sambanova")
	v.SetDefault("parser.api_key", "")
	v.SetDefault("parser.model", "Meta-Llama-3.3-70B-Instruct")
	v.SetDefault("parser.endpoint", "")
	v.SetDefault("parser.timeout_secs", 60)
	v.SetDefault("parser.max_tokens", 2000)
	v.SetDefault("parser.temperature", 0.1)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "KAGAZ_SERVER_PORT",
		"server.read_timeout":  "KAGAZ_SERVER_READ_TIMEOUT",
		"server.write_timeout": "KAGAZ_SERVER_WRITE_TIMEOUT",
		"server.environment":   "KAGAZ_SERVER_ENVIRONMENT",
		"db.host":              "KAGAZ_DB_HOST",
		"db.port":              "KAGAZ_DB_PORT",
		"db.user":              "KAGAZ_DB_USER",
		"db.password":          "KAGAZ_DB_PASSWORD",
		"db.name":              "KAGAZ_DB_NAME",
		"db.sslmode":           "KAGAZ_DB_SSLMODE",
		"db.max_open":          "KAGAZ_DB_MAX_OPEN",
		"db.max_idle":          "KAGAZ_DB_MAX_IDLE",
		"parser.provider":      "KAGAZ_PARSER_PROVIDER",
		"parser.api_key":       "KAGAZ_PARSER_API_KEY",
		"parser.model":         "KAGAZ_PARSER_MODEL",
		"parser.endpoint":      "KAGAZ_PARSER_ENDPOINT",
		"parser.timeout_secs":  "KAGAZ_PARSER_TIMEOUT_SECS",
		"parser.max_tokens":    "KAGAZ_PARSER_MAX_TOKENS",
		"parser.temperature":   "KAGAZ_PARSER_TEMPERATURE",
		"cors.allowed_origins": "KAGAZ_CORS_ALLOWED_ORIGINS",
		"log.level":            "KAGAZ_LOG_LEVEL",
		"log.format":           "KAGAZ_LOG_FORMAT",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding env %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
