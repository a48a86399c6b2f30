// Package config loads runtime configuration from environment variables
// and flags. The rest of the adapter receives the resulting record and
// never touches the process environment itself.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix       = "NOTEHUB"
	defaultLogLevel = "info"
	defaultLogFile  = "notehub-mcp.log"
)

// Config captures everything the adapter needs to talk to the NoteHub
// service and to run as an MCP stdio server.
type Config struct {
	BaseURL            string
	APIToken           string
	DefaultWorkspaceID string
	Debug              bool
	LogLevel           string
	LogFile            string
}

// NewViper returns a viper instance with defaults and env bindings
// configured.
func NewViper() *viper.Viper {
	configViper := viper.New()
	ApplyDefaults(configViper)
	return configViper
}

// ApplyDefaults configures defaults and env bindings on the provided
// viper instance.
func ApplyDefaults(configViper *viper.Viper) {
	configViper.SetEnvPrefix(envPrefix)
	configViper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	configViper.AutomaticEnv()

	configViper.SetDefault("log.level", defaultLogLevel)
	configViper.SetDefault("log.file", defaultLogFile)
	configViper.SetDefault("debug", false)
}

// Load parses runtime configuration from viper.
func Load(configViper *viper.Viper) (Config, error) {
	cfg := Config{
		BaseURL:            configViper.GetString("base_url"),
		APIToken:           configViper.GetString("api_token"),
		DefaultWorkspaceID: configViper.GetString("workspace_id"),
		Debug:              configViper.GetBool("debug"),
		LogLevel:           configViper.GetString("log.level"),
		LogFile:            configViper.GetString("log.file"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("base_url is required")
	}
	if strings.TrimSpace(c.APIToken) == "" {
		return fmt.Errorf("api_token is required")
	}
	return nil
}
