package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Probe     ProbeConfig     `mapstructure:"probe"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	Dir string `mapstructure:"dir"`
}

type AuthConfig struct {
	// APIKey is the single shared secret. Empty disables auth (dev).
	APIKey string `mapstructure:"api_key"`
}

type ProbeConfig struct {
	// Timeout caps a whole probe: connect + read.
	Timeout time.Duration `mapstructure:"timeout"`
}

type RateLimitConfig struct {
	RPM   int `mapstructure:"rpm"` // 0 disables rate limiting
	Burst int `mapstructure:"burst"`
}

type CORSConfig struct {
	// AllowedOrigins is comma-separated; empty allows all origins.
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

// Origins splits the configured origin list, nil when unset.
func (c CORSConfig) Origins() []string {
	if strings.TrimSpace(c.AllowedOrigins) == "" {
		return nil
	}
	parts := strings.Split(c.AllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load reads defaults, then an optional yaml file at path, then the
// environment (SERVER_ADDR, LOG_DIR, AUTH_API_KEY, PROBE_TIMEOUT,
// RATELIMIT_RPM, RATELIMIT_BURST, CORS_ALLOWED_ORIGINS).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		_ = v.ReadInConfig()
	}

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("log.dir", "logs")
	v.SetDefault("auth.api_key", "")
	v.SetDefault("probe.timeout", "10s")
	v.SetDefault("ratelimit.rpm", 0)
	v.SetDefault("ratelimit.burst", 0)
	v.SetDefault("cors.allowed_origins", "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if cfg.Probe.Timeout <= 0 {
		return fmt.Errorf("probe.timeout must be positive, got %s", cfg.Probe.Timeout)
	}
	if cfg.RateLimit.RPM < 0 || cfg.RateLimit.Burst < 0 {
		return fmt.Errorf("ratelimit values must not be negative")
	}
	if cfg.RateLimit.RPM > 0 && cfg.RateLimit.Burst == 0 {
		return fmt.Errorf("ratelimit.burst is required when ratelimit.rpm is set")
	}
	return nil
}
