package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Model struct {
		Path            string `yaml:"path"`
		InfoPath        string `yaml:"info_path"`
		MaxTextLength   int    `yaml:"max_text_length"`
		StoredTextLimit int    `yaml:"stored_text_limit"`
	} `yaml:"model"`
	Server struct {
		Port        string `yaml:"port"`
		Environment string `yaml:"environment"`
	} `yaml:"server"`
}

const (
	defaultMaxTextLength   = 5000
	defaultStoredTextLimit = 1000
)

// LoadConfig reads configuration from the specified YAML file.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if config.Model.MaxTextLength <= 0 {
		config.Model.MaxTextLength = defaultMaxTextLength
	}
	if config.Model.StoredTextLimit <= 0 {
		config.Model.StoredTextLimit = defaultStoredTextLimit
	}
	if config.Server.Environment == "" {
		config.Server.Environment = "development"
	}

	return config, nil
}
