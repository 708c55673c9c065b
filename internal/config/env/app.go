package env

import (
	"fmt"
	"slot_engine/internal/config"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverRedis    = "redis"
	StoreDriverMemory   = "memory"
)

type storeConfig struct {
	DriverValue string `envconfig:"STORE_DRIVER" default:"postgres"`
}

func NewStoreConfig() (config.StoreConfig, error) {
	var cfg storeConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	switch cfg.DriverValue {
	case StoreDriverPostgres, StoreDriverRedis, StoreDriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.DriverValue)
	}
	return &cfg, nil
}

func (c *storeConfig) Driver() string {
	return c.DriverValue
}

type statsConfig struct {
	SessionGapValue        time.Duration `envconfig:"SESSION_GAP" default:"30m"`
	HistoryLimitValue      int           `envconfig:"STATS_HISTORY_LIMIT" default:"1000"`
	RTPWindowValue         int           `envconfig:"RTP_WINDOW" default:"500"`
	RTPReportScheduleValue string        `envconfig:"RTP_REPORT_SCHEDULE" default:"@every 5m"`
}

func NewStatsConfig() (config.StatsConfig, error) {
	var cfg statsConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.SessionGapValue <= 0 {
		return nil, fmt.Errorf("SESSION_GAP must be positive")
	}
	if cfg.HistoryLimitValue <= 0 || cfg.RTPWindowValue <= 0 {
		return nil, fmt.Errorf("STATS_HISTORY_LIMIT and RTP_WINDOW must be positive")
	}
	return &cfg, nil
}

func (c *statsConfig) SessionGap() time.Duration {
	return c.SessionGapValue
}

func (c *statsConfig) HistoryLimit() int {
	return c.HistoryLimitValue
}

func (c *statsConfig) RTPWindow() int {
	return c.RTPWindowValue
}

func (c *statsConfig) RTPReportSchedule() string {
	return c.RTPReportScheduleValue
}

type logConfig struct {
	LevelValue  string `envconfig:"LOG_LEVEL" default:"info"`
	FormatValue string `envconfig:"LOG_FORMAT" default:"text"`
}

func NewLogConfig() (config.LogConfig, error) {
	var cfg logConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *logConfig) Level() string {
	return c.LevelValue
}

func (c *logConfig) Format() string {
	return c.FormatValue
}
