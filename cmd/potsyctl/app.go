package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/potsy/internal/config"
	"github.com/terraincognita07/potsy/internal/localcache"
	"github.com/terraincognita07/potsy/internal/offline"
	"github.com/terraincognita07/potsy/internal/reconcile"
	"github.com/terraincognita07/potsy/internal/remote"
	"github.com/terraincognita07/potsy/internal/settings"
)

// app holds everything a command needs. Commands build one per invocation
// and close it before returning.
type app struct {
	config     config.ClientConfig
	settings   *settings.Store
	cache      *localcache.Cache
	remote     *remote.Client
	writer     *offline.Writer
	reconciler *reconcile.Reconciler
	location   *time.Location
	now        func() time.Time
}

// loadSettings reads the settings file without opening the cache.
func loadSettings() (config.ClientConfig, *settings.Store, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return config.ClientConfig{}, nil, fmt.Errorf("load config: %w", err)
	}
	store, err := settings.Load(cfg.SettingsPath, settings.Defaults(cfg.RemoteURL))
	if err != nil {
		return config.ClientConfig{}, nil, err
	}
	applyDisplaySettings(store.Get())
	return cfg, store, nil
}

func loadApp(cmd *cobra.Command, opts *rootOptions) (*app, error) {
	cfg, store, err := loadSettings()
	if err != nil {
		return nil, err
	}

	cache, err := localcache.Open(cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("open local cache: %w", err)
	}

	client := remote.New(store.RemoteURL(), cfg.HTTPTimeout)
	queries := offline.NewQueryCache(0, 0)
	writer := offline.NewWriter(store, cache, client, queries, noticePrinter(cmd.ErrOrStderr(), opts))

	return &app{
		config:     cfg,
		settings:   store,
		cache:      cache,
		remote:     client,
		writer:     writer,
		reconciler: reconcile.New(cache, client, queries, offline.QuerySymptoms),
		location:   time.Local,
		now:        time.Now,
	}, nil
}

func (a *app) Close() error {
	return a.cache.Close()
}

// noticePrinter shows write notices on stderr so --json stdout stays
// parseable. Error notices are skipped; the returned error is printed at exit.
func noticePrinter(w io.Writer, opts *rootOptions) offline.Notifier {
	return offline.NotifierFunc(func(notice offline.Notice) {
		if opts.jsonOutput || notice.Kind == offline.NoticeError {
			return
		}
		if notice.Kind == offline.NoticeSuccess {
			printSuccess(w, "%s", notice.Title)
		} else {
			printInfo(w, "%s", notice.Title)
		}
		if notice.Description != "" {
			printMuted(w, "  %s", notice.Description)
		}
	})
}
