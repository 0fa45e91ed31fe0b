// Package config loads the service configuration from a YAML file and
// SKYBOOK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	EnvPrefix   = "SKYBOOK"
	EnvPath     = "SKYBOOK_CONFIG"
	DefaultPath = "config/config.yaml"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Log     LogConfig     `mapstructure:"log"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Booking BookingConfig `mapstructure:"booking"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

type AppConfig struct {
	Name   string       `mapstructure:"name" validate:"required"`
	Server ServerConfig `mapstructure:"server"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json text"`
}

type AuthConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"min=4,max=31"`
}

type BookingConfig struct {
	RequireLogin bool `mapstructure:"require_login"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"min=1,dive,required"`
}

// Path returns the config file location, honouring SKYBOOK_CONFIG.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the file at path, applies environment overrides and validates
// the result. A missing file is not an error; defaults cover every key.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "skybook")
	v.SetDefault("app.server.address", ":8080")
	v.SetDefault("app.server.read_timeout", 15*time.Second)
	v.SetDefault("app.server.write_timeout", 15*time.Second)
	v.SetDefault("app.server.idle_timeout", 60*time.Second)
	v.SetDefault("app.server.shutdown_timeout", 30*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("booking.require_login", true)
	v.SetDefault("cors.allowed_origins", []string{"*"})
}
