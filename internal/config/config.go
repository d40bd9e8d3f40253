package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/bakingai/bakingai/internal/validation"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Recipes RecipesConfig `mapstructure:"recipes"`
	Remote  RemoteConfig  `mapstructure:"remote"`
	Export  ExportConfig  `mapstructure:"export"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RecipesConfig struct {
	// Source is a CSV path, an .xlsx path, or an http(s) URL to either.
	Source string `mapstructure:"source" validate:"required"`
	// Sheet selects the spreadsheet sheet. Empty means the first one.
	Sheet        string `mapstructure:"sheet"`
	DefaultLimit int    `mapstructure:"default_limit" validate:"min=1"`
}

type RemoteConfig struct {
	MaxRetryAttempts uint `mapstructure:"max_retry_attempts"`
	TimeoutSeconds   int  `mapstructure:"timeout_seconds" validate:"min=1"`
}

func (c RemoteConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type ExportConfig struct {
	CardTemplate    string `mapstructure:"card_template" validate:"omitempty,file"`
	OutputDirectory string `mapstructure:"output_directory" validate:"required"`
}

type ConfigLoader struct {
	viper     *viper.Viper
	validator *validation.Validator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/bakingai")
	}

	return &ConfigLoader{
		viper:     v,
		validator: validate,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"https://bakingai.netlify.app"})
	v.SetDefault("recipes.source", "recipes.csv")
	v.SetDefault("recipes.sheet", "")
	v.SetDefault("recipes.default_limit", 20)
	v.SetDefault("remote.max_retry_attempts", 3)
	v.SetDefault("remote.timeout_seconds", 30)
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("export.card_template", "")
	v.SetDefault("export.output_directory", "outputs")

	if err := v.BindEnv("server.port", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind PORT environment variable: %w", err)
	}
	if err := v.BindEnv("recipes.source", "RECIPES_SOURCE"); err != nil {
		return nil, fmt.Errorf("failed to bind RECIPES_SOURCE environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func newValidator() (*validation.Validator, error) {
	validate, err := validation.New("mapstructure")
	if err != nil {
		return nil, err
	}
	if err := validate.RegisterRule("file", isFileReadable, "{0} must be an existing and readable file"); err != nil {
		return nil, err
	}
	return validate, nil
}

func isFileReadable(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return false
	}

	// Check if the owner has read permission
	return info.Mode().Perm()&(1<<(uint(7))) != 0
}
