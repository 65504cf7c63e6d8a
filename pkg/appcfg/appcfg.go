package appcfg

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Language             string `yaml:"language"`  // "en" | "ru"
	LogLevel             string `yaml:"log_level"` // "debug"|"info"|"warn"|"error"
	LogFile              string `yaml:"log_file"`  // empty = console only
	HideSecretsInConsole bool   `yaml:"hide_secrets_in_console"`
	Cores                int    `yaml:"cores"` // 0 = all CPUs
}

func Default() *Config {
	return &Config{Language: "en", LogLevel: "info", HideSecretsInConsole: true}
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open app config %q: %w", path, err)
	}
	defer f.Close()

	c := Default()
	if err := yaml.NewDecoder(f).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode app yaml %q: %w", path, err)
	}

	// defaults
	if c.Language == "" {
		c.Language = "en"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Cores < 0 {
		return nil, fmt.Errorf("app config %q: cores must be >= 0", path)
	}
	return c, nil
}
