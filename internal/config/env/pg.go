package env

import (
	"errors"
	"slot_engine/internal/config"

	"github.com/kelseyhightower/envconfig"
)

type pgConfig struct {
	DSNValue string `envconfig:"PG_DSN"`
}

func NewPGConfig() (config.PGConfig, error) {
	var cfg pgConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if len(cfg.DSNValue) == 0 {
		return nil, errors.New("pg dsn not found")
	}

	return &cfg, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.DSNValue
}
