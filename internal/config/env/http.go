package env

import (
	"net"
	"slot_engine/internal/config"
	"strconv"

	"github.com/kelseyhightower/envconfig"
)

type httpConfig struct {
	Host string `envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port int    `envconfig:"HTTP_PORT" default:"8080"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	var cfg httpConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
}
