package config

import (
	"errors"
	"time"
)

type ClientConfig struct {
	RemoteURL    string        `env:"POTSY_REMOTE_URL"          envDefault:"http://localhost:8080"`
	CachePath    string        `env:"POTSY_CACHE_PATH,expand"    envDefault:"${HOME}/.potsy/cache.db"`
	SettingsPath string        `env:"POTSY_SETTINGS_PATH,expand" envDefault:"${HOME}/.potsy/settings.yaml"`
	HTTPTimeout  time.Duration `env:"POTSY_HTTP_TIMEOUT"        envDefault:"10s"`
}

func LoadClient() (ClientConfig, error) {
	var cfg ClientConfig
	if err := ParseEnv(&cfg); err != nil {
		return ClientConfig{}, err
	}
	if cfg.HTTPTimeout <= 0 {
		return ClientConfig{}, errors.New("POTSY_HTTP_TIMEOUT must be positive")
	}
	return cfg, nil
}
