package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SearchConfig holds the search defaults that command-line flags override.
type SearchConfig struct {
	Mode                 string        `yaml:"mode"`                   // lower|checksum
	DerivationPath       string        `yaml:"derivation_path"`        // base path, index appended
	AddressesPerMnemonic int           `yaml:"addresses_per_mnemonic"` // random mode fan-out
	Progress             bool          `yaml:"progress"`
	ProgressInterval     time.Duration `yaml:"progress_interval"` // e.g. "5s"
}

func Default() SearchConfig {
	return SearchConfig{
		Mode:                 "lower",
		DerivationPath:       "m/44'/60'/0'/0",
		AddressesPerMnemonic: 10,
		ProgressInterval:     5 * time.Second,
	}
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (*SearchConfig, error) {
	cfg := Default()
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open config %q: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml %q: %w", path, err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation %q: %w", path, err)
	}
	return &cfg, nil
}

func validate(c *SearchConfig) error {
	switch c.Mode {
	case "", "lower", "checksum":
	default:
		return errors.New("mode must be one of: lower, checksum")
	}
	if c.AddressesPerMnemonic < 0 {
		return errors.New("addresses_per_mnemonic must be >= 0")
	}
	if c.ProgressInterval < 0 {
		return errors.New("progress_interval must be >= 0")
	}
	return nil
}
