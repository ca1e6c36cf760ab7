package config

import (
	"log"
	"time"
)

type ServerConfig struct {
	Port     string `env:"PORT"     envDefault:"8080"`
	DBPath   string `env:"DB_PATH"  envDefault:":memory:"`
	TimeZone string `env:"TZ"       envDefault:"UTC"`
	AppName  string `env:"APP_NAME" envDefault:"Potsy"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

// Location resolves TimeZone, falling back to UTC for unknown names.
func (cfg ServerConfig) Location() *time.Location {
	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", cfg.TimeZone)
		return time.UTC
	}
	return location
}
