package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "search.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != Default() {
		t.Errorf("got %+v, want defaults", *cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	cfg, err := Load(write(t, "mode: checksum\nprogress: true\nprogress_interval: 2s\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != "checksum" || !cfg.Progress || cfg.ProgressInterval != 2*time.Second {
		t.Errorf("overrides not applied: %+v", *cfg)
	}
	if cfg.DerivationPath != "m/44'/60'/0'/0" || cfg.AddressesPerMnemonic != 10 {
		t.Errorf("defaults lost: %+v", *cfg)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := map[string]string{
		"bad mode":     "mode: upper\n",
		"neg fan-out":  "addresses_per_mnemonic: -1\n",
		"neg interval": "progress_interval: -1s\n",
		"bad yaml":     "mode: [lower\n",
		"bad duration": "progress_interval: soon\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(write(t, body)); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}
