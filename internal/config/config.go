package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/satchel/internal/catalog"
	"github.com/five82/satchel/internal/storefront"
)

// EnvPrefix prefixes every environment override, e.g. SATCHEL_API_BASE.
const EnvPrefix = "SATCHEL"

// Config holds the client settings.
type Config struct {
	APIBase      string
	ProductsPath string
	PageLimit    int
	LogFile      string
	LogLevel     string
}

const (
	defaultConfigPath = "~/.config/satchel/config.toml"
	defaultAPIBase    = "127.0.0.1:8088"
	defaultLogFile    = "~/.local/state/satchel/satchel.log"
	defaultLogLevel   = "info"
	maxPageLimit      = 100
)

type fileConfig struct {
	APIBase      string `toml:"api_base"`
	ProductsPath string `toml:"products_path"`
	PageLimit    int    `toml:"page_limit"`
	LogFile      string `toml:"log_file"`
	LogLevel     string `toml:"log_level"`
}

type envConfig struct {
	APIBase      string `envconfig:"API_BASE"`
	ProductsPath string `envconfig:"PRODUCTS_PATH"`
	PageLimit    int    `envconfig:"PAGE_LIMIT"`
	LogFile      string `envconfig:"LOG_FILE"`
	LogLevel     string `envconfig:"LOG_LEVEL"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		APIBase:      defaultAPIBase,
		ProductsPath: storefront.DefaultProductsPath,
		PageLimit:    catalog.DefaultPageLimit,
		LogFile:      mustExpand(defaultLogFile),
		LogLevel:     defaultLogLevel,
	}
}

// Load reads the TOML config at path (or the default location), then applies
// SATCHEL_* environment overrides. A .env file in the working directory is
// loaded first when present. A missing config file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	raw, err := readFile(resolved)
	if err != nil {
		return Config{}, err
	}
	cfg.merge(raw.APIBase, raw.ProductsPath, raw.PageLimit, raw.LogFile, raw.LogLevel)

	var env envConfig
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	cfg.merge(env.APIBase, env.ProductsPath, env.PageLimit, env.LogFile, env.LogLevel)

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string) (fileConfig, error) {
	var raw fileConfig
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return raw, nil
		}
		return raw, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return raw, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return raw, fmt.Errorf("parse config: %w", err)
	}
	return raw, nil
}

// merge overlays non-empty values.
func (c *Config) merge(apiBase, productsPath string, pageLimit int, logFile, logLevel string) {
	if v := strings.TrimSpace(apiBase); v != "" {
		c.APIBase = v
	}
	if v := strings.TrimSpace(productsPath); v != "" {
		c.ProductsPath = v
	}
	if pageLimit != 0 {
		c.PageLimit = pageLimit
	}
	if v := strings.TrimSpace(logFile); v != "" {
		c.LogFile = v
	}
	if v := strings.TrimSpace(logLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
}

func (c *Config) normalize() error {
	if c.PageLimit < 0 || c.PageLimit > maxPageLimit {
		return fmt.Errorf("page_limit must be between 1 and %d, got %d", maxPageLimit, c.PageLimit)
	}
	if c.PageLimit == 0 {
		c.PageLimit = catalog.DefaultPageLimit
	}
	if !strings.HasPrefix(c.ProductsPath, "/") {
		c.ProductsPath = "/" + c.ProductsPath
	}
	// "-" disables the log file.
	if c.LogFile == "-" {
		c.LogFile = ""
		return nil
	}
	expanded, err := expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("log_file: %w", err)
	}
	c.LogFile = expanded
	return nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
