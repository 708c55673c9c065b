package env

import (
	"errors"
	"slot_engine/internal/config"

	"github.com/kelseyhightower/envconfig"
)

type redisConfig struct {
	AddrValue     string `envconfig:"REDIS_ADDR"`
	PasswordValue string `envconfig:"REDIS_PASSWORD"`
	DBValue       int    `envconfig:"REDIS_DB" default:"0"`
}

func NewRedisConfig() (config.RedisConfig, error) {
	var cfg redisConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if len(cfg.AddrValue) == 0 {
		return nil, errors.New("redis addr not found")
	}
	return &cfg, nil
}

func (cfg *redisConfig) Addr() string {
	return cfg.AddrValue
}

func (cfg *redisConfig) Password() string {
	return cfg.PasswordValue
}

func (cfg *redisConfig) DB() int {
	return cfg.DBValue
}
