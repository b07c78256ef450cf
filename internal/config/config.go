package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	Session SessionConfig `mapstructure:"session"`
	Outputs OutputsConfig `mapstructure:"outputs"`
}

type BackendConfig struct {
	BaseURL       string `mapstructure:"base_url" validate:"required,url"`
	RetryAttempts uint   `mapstructure:"retry_attempts"`
}

type SessionConfig struct {
	// CookieFile persists the backend session cookie between runs. Empty
	// disables persistence and every run starts logged out.
	CookieFile string `mapstructure:"cookie_file"`
}

type OutputsConfig struct {
	ExportDirectory string `mapstructure:"export_directory"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
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
		v.AddConfigPath("$HOME/.config/estudia")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("backend.base_url", "http://localhost:5000")
	v.SetDefault("backend.retry_attempts", 3)
	v.SetDefault("session.cookie_file", defaultCookieFile())
	v.SetDefault("outputs.export_directory", "exports")

	// The base URL is the one deployment-specific value, so it also binds to
	// an environment variable.
	if err := v.BindEnv("backend.base_url", "ESTUDIA_API_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind ESTUDIA_API_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// Load is a convenience wrapper used by the commands.
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader > %w", err)
	}
	return loader.Load()
}

func defaultCookieFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".estudia", "cookies.json")
	}
	return filepath.Join(home, ".config", "estudia", "cookies.json")
}
