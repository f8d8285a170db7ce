package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != defaultAPIBase {
		t.Fatalf("APIBase = %q, want %q", cfg.APIBase, defaultAPIBase)
	}
	if cfg.ProductsPath != "/api/products" {
		t.Fatalf("ProductsPath = %q, want /api/products", cfg.ProductsPath)
	}
	if cfg.PageLimit != 10 {
		t.Fatalf("PageLimit = %d, want 10", cfg.PageLimit)
	}
	want := filepath.Join(home, ".local", "state", "satchel", "satchel.log")
	if cfg.LogFile != want {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, want)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_base = "  10.0.0.5:9999  "
products_path = "v2/products"
page_limit = 25
log_file = "  ~/logs/satchel.log  "
log_level = "DEBUG"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != "10.0.0.5:9999" {
		t.Fatalf("APIBase = %q, want %q", cfg.APIBase, "10.0.0.5:9999")
	}
	if cfg.ProductsPath != "/v2/products" {
		t.Fatalf("ProductsPath = %q, want /v2/products", cfg.ProductsPath)
	}
	if cfg.PageLimit != 25 {
		t.Fatalf("PageLimit = %d, want 25", cfg.PageLimit)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SATCHEL_API_BASE", "http://shop.test:9000")
	t.Setenv("SATCHEL_PAGE_LIMIT", "5")
	t.Setenv("SATCHEL_LOG_FILE", "-")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("api_base = \"127.0.0.1:1\"\npage_limit = 20\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != "http://shop.test:9000" {
		t.Fatalf("APIBase = %q, want env override", cfg.APIBase)
	}
	if cfg.PageLimit != 5 {
		t.Fatalf("PageLimit = %d, want 5", cfg.PageLimit)
	}
	if cfg.LogFile != "" {
		t.Fatalf("LogFile = %q, want disabled", cfg.LogFile)
	}
}

func TestLoad_BadEnvironmentValueFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SATCHEL_PAGE_LIMIT", "lots")

	if _, err := Load(filepath.Join(t.TempDir(), "none.toml")); err == nil {
		t.Fatalf("Load returned nil error, want environment error")
	}
}

func TestLoad_PageLimitOutOfRange(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("page_limit = 500\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "page_limit") {
		t.Fatalf("Load error = %v, want page_limit error", err)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_base = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
