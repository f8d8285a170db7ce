package app

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadConfig_OptionsOverrideFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, "api_base = \"127.0.0.1:1\"\npage_limit = 20\n")

	cfg, err := LoadConfig(Options{ConfigPath: path, APIBase: " http://shop.test ", PageLimit: 5})
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.APIBase != "http://shop.test" {
		t.Fatalf("APIBase = %q, want override", cfg.APIBase)
	}
	if cfg.PageLimit != 5 {
		t.Fatalf("PageLimit = %d, want 5", cfg.PageLimit)
	}
}

func TestLoadConfig_KeepsFileValuesWithoutOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, "api_base = \"127.0.0.1:1\"\npage_limit = 20\n")

	cfg, err := LoadConfig(Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.APIBase != "127.0.0.1:1" || cfg.PageLimit != 20 {
		t.Fatalf("cfg = %#v", cfg)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := LoadConfig(Options{ConfigPath: writeConfig(t, "api_base = [")}); err == nil {
		t.Fatalf("LoadConfig accepted invalid TOML")
	}
	if _, err := LoadConfig(Options{ConfigPath: writeConfig(t, ""), PageLimit: -1}); err == nil {
		t.Fatalf("LoadConfig accepted a negative page limit")
	}
}
