package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/five82/satchel/internal/command"
	"github.com/five82/satchel/internal/config"
	"github.com/five82/satchel/internal/logging"
	"github.com/five82/satchel/internal/prefs"
	"github.com/five82/satchel/internal/state"
	"github.com/five82/satchel/internal/storefront"
	"github.com/five82/satchel/internal/ui"
)

// Options configure the satchel application. Non-zero fields override the
// loaded config.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/satchel/prefs.toml
	APIBase    string
	PageLimit  int
	Keyword    string
}

// LoadConfig loads the config file and applies the option overrides.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.APIBase); v != "" {
		cfg.APIBase = v
	}
	if opts.PageLimit < 0 {
		return config.Config{}, fmt.Errorf("page limit must be positive, got %d", opts.PageLimit)
	}
	if opts.PageLimit > 0 {
		cfg.PageLimit = opts.PageLimit
	}
	return cfg, nil
}

// Run boots the satchel TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	logger, closer, err := logging.NewFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	client, err := storefront.NewClient(cfg.APIBase, cfg.ProductsPath)
	if err != nil {
		return fmt.Errorf("init storefront client: %w", err)
	}

	store := &state.Store{}
	fetch := command.NewFetchProducts(client, store, logger)

	logger.WithFields(logrus.Fields{
		"api":        client.BaseURL(),
		"path":       cfg.ProductsPath,
		"page_limit": cfg.PageLimit,
		"theme":      userPrefs.Theme,
	}).Info("satchel starting")

	err = ui.Run(ui.Options{
		Context:   ctx,
		Command:   fetch,
		Store:     store,
		Config:    &cfg,
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		Sort:      userPrefs.Sort,
		Keyword:   opts.Keyword,
		PrefsPath: opts.PrefsPath,
	})
	if err != nil {
		logger.WithError(err).Error("ui exited with error")
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("satchel stopped")
	return nil
}
