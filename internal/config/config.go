// Package config loads application settings from defaults, an optional YAML
// file and CAYLEY_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable: CAYLEY_SERVER_ADDR.
const EnvPrefix = "CAYLEY"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Analysis AnalysisConfig `mapstructure:"analysis" validate:"required"`
}

// ServerConfig contains the HTTP listener settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// AnalysisConfig bounds the work a single analysis may do.
type AnalysisConfig struct {
	// MaxElements caps n; checks are cubic in n.
	MaxElements int `mapstructure:"max_elements" validate:"gte=1,lte=512"`
	// Parallel is the number of goroutines for independent checks; 1 is sequential.
	Parallel int `mapstructure:"parallel" validate:"gte=1,lte=64"`
}

// Defaults.
const (
	DefaultAddr            = ":8080"
	DefaultReadTimeout     = 10 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultMaxElements     = 64
	DefaultParallel        = 1
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// New returns a viper instance with defaults and environment binding.
// Callers may bind command-line flags to it before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("server.addr", DefaultAddr)
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("analysis.max_elements", DefaultMaxElements)
	v.SetDefault("analysis.parallel", DefaultParallel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads file (if non-empty) into v, unmarshals and validates.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &cfg, nil
}
