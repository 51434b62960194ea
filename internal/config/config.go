// Package config loads application configuration from file and environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Server ServerConfig
	Parse  ParseConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr          string `mapstructure:"addr"`
	StaticDir     string `mapstructure:"static_dir"`
	MaxUploadMB   int    `mapstructure:"max_upload_mb"`
	ReadTimeoutMS int    `mapstructure:"read_timeout_ms"`
}

// ParseConfig holds statement-parsing defaults.
type ParseConfig struct {
	// DefaultYear is used when a request or CLI call omits the statement
	// year. Zero means "current year".
	DefaultYear int `mapstructure:"default_year"`
}

// Load reads configuration from an optional config file and the environment.
// Env overrides use the STATEMENT_PARSER_ prefix, e.g.
// STATEMENT_PARSER_SERVER_ADDR=:9090.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.static_dir", "")
	v.SetDefault("server.max_upload_mb", 32)
	v.SetDefault("server.read_timeout_ms", 30000)
	v.SetDefault("parse.default_year", 0)

	v.SetConfigName("statement-parser")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/statement-parser")

	v.SetEnvPrefix("STATEMENT_PARSER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// StatementYear resolves the effective statement year: the explicit request
// value, then the configured default, then the current year.
func (c Config) StatementYear(requested int) int {
	if requested > 0 {
		return requested
	}
	if c.Parse.DefaultYear > 0 {
		return c.Parse.DefaultYear
	}
	return time.Now().Year()
}
