package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "TASKBOARD_"

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server" envPrefix:"SERVER_"`
	DB     DBConfig     `yaml:"db"     envPrefix:"DB_"`
	Log    LogConfig    `yaml:"log"    envPrefix:"LOG_"`
	Auth   AuthConfig   `yaml:"auth"   envPrefix:"AUTH_"`
	Redis  RedisConfig  `yaml:"redis"  envPrefix:"REDIS_"`
	MCP    MCPConfig    `yaml:"mcp"    envPrefix:"MCP_"`
	Views  ViewsConfig  `yaml:"views"  envPrefix:"VIEWS_"`
}

type ServerConfig struct {
	Host            string        `yaml:"host"             env:"HOST"`
	Port            int           `yaml:"port"             env:"PORT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

type DBConfig struct {
	Path string `yaml:"path" env:"PATH"`
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"` // text or json
	// File, when set, receives logs instead of stderr and is rotated.
	File       string `yaml:"file"         env:"FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"MAX_SIZE_MB"`
	MaxBackups int    `yaml:"max_backups"  env:"MAX_BACKUPS"`
	MaxAgeDays int    `yaml:"max_age_days" env:"MAX_AGE_DAYS"`
}

type AuthConfig struct {
	// Enabled requires a bearer token on the API. When disabled every
	// request acts as the local user.
	Enabled        bool          `yaml:"enabled"          env:"ENABLED"`
	JWTSecret      string        `yaml:"jwt_secret"       env:"JWT_SECRET"`
	TokenTTL       time.Duration `yaml:"token_ttl"        env:"TOKEN_TTL"`
	LocalUserID    string        `yaml:"local_user_id"    env:"LOCAL_USER_ID"`
	LocalUserEmail string        `yaml:"local_user_email" env:"LOCAL_USER_EMAIL"`
}

type RedisConfig struct {
	// URL enables the shared in-flight guard; empty keeps it in process.
	URL         string        `yaml:"url"          env:"URL"`
	InflightTTL time.Duration `yaml:"inflight_ttl" env:"INFLIGHT_TTL"`
}

type MCPConfig struct {
	Enabled        bool          `yaml:"enabled"         env:"ENABLED"`
	Path           string        `yaml:"path"            env:"PATH"`
	SessionTimeout time.Duration `yaml:"session_timeout" env:"SESSION_TIMEOUT"`
	LogTraffic     bool          `yaml:"log_traffic"     env:"LOG_TRAFFIC"`
}

type ViewsConfig struct {
	MonthPreview int `yaml:"month_preview" env:"MONTH_PREVIEW"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
		},
		DB: DBConfig{
			Path: "taskboard.db",
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Auth: AuthConfig{
			Enabled:        true,
			TokenTTL:       24 * time.Hour,
			LocalUserID:    "local",
			LocalUserEmail: "local@taskboard.local",
		},
		Redis: RedisConfig{
			InflightTTL: 30 * time.Second,
		},
		MCP: MCPConfig{
			Enabled:        true,
			Path:           "/mcp",
			SessionTimeout: 30 * time.Minute,
		},
		Views: ViewsConfig{
			MonthPreview: 3,
		},
	}
}

// Load layers the defaults, an optional YAML file named by
// TASKBOARD_CONFIG_PATH, and TASKBOARD_* environment variables, in that order.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvPrefix + "CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail late at startup.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if strings.TrimSpace(c.DB.Path) == "" {
		errs = append(errs, errors.New("db.path is required"))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is not text or json", c.Log.Format))
	}
	if c.Auth.Enabled && c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret is required when auth is enabled"))
	}
	if c.Auth.LocalUserID == "" {
		errs = append(errs, errors.New("auth.local_user_id is required"))
	}
	if c.MCP.Enabled && !strings.HasPrefix(c.MCP.Path, "/") {
		errs = append(errs, fmt.Errorf("mcp.path %q must start with /", c.MCP.Path))
	}
	if c.Views.MonthPreview < 1 {
		errs = append(errs, errors.New("views.month_preview must be at least 1"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Addr is the host:port the HTTP server listens on.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
