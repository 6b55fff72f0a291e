package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/strrl/learning-journey/internal/config"
	"github.com/strrl/learning-journey/internal/journey"
	"github.com/strrl/learning-journey/internal/logger"
	"github.com/strrl/learning-journey/internal/notify"
	"github.com/strrl/learning-journey/internal/schedule"
	"github.com/strrl/learning-journey/internal/storage"
	"github.com/strrl/learning-journey/internal/topics"
)

// app bundles everything a command needs
type app struct {
	cfg     *config.Config
	store   storage.Store
	book    *schedule.Book
	ctrl    *journey.Controller
	gen     topics.Generator
	toaster *notify.Toaster
}

// applyFlags copies explicitly set persistent flags over the env config
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir, _ = flags.GetString("data-dir")
	}
	if flags.Changed("store") {
		cfg.Store, _ = flags.GetString("store")
	}
	if flags.Changed("storage-key") {
		cfg.StorageKey, _ = flags.GetString("storage-key")
	}
	if flags.Changed("webhook-url") {
		cfg.WebhookURL, _ = flags.GetString("webhook-url")
	}
	if flags.Changed("desktop-notify") {
		cfg.DesktopNotify, _ = flags.GetBool("desktop-notify")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
}

// openApp loads configuration, starts logging and restores the schedule.
// extra notifiers receive every notification alongside the in-UI toaster.
func openApp(cmd *cobra.Command, extra ...notify.Notifier) (*app, error) {
	cfg := config.Load()
	applyFlags(cmd, cfg)

	if err := logger.Init(cfg.LogPath(), logger.ParseLevel(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("failed to start logging: %w", err)
	}

	store, err := storage.Open(cfg.Store, cfg.StorePath())
	if err != nil {
		logger.Close()
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store, err)
	}
	logger.Info("store opened", "driver", cfg.Store, "path", cfg.StorePath())

	toaster := notify.NewToaster(toastTTL)
	notifiers := notify.Multi{toaster, notify.Log{}}
	if cfg.DesktopNotify {
		notifiers = append(notifiers, notify.Desktop{})
	}
	notifiers = append(notifiers, extra...)

	book := schedule.Restore(store, cfg.StorageKey)
	return &app{
		cfg:     cfg,
		store:   store,
		book:    book,
		ctrl:    journey.NewController(book, notifiers),
		gen: topics.New(topics.Options{
			WebhookURL: cfg.WebhookURL,
			Timeout:    cfg.WebhookTimeout,
			Delay:      cfg.GenerateDelay,
		}),
		toaster: toaster,
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		logger.Warn("failed to close store", "error", err)
	}
	logger.Close()
}
