package config

import (
	"slot_engine/internal/model"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// MachineRegistry - реестр автоматов, загружается при старте
type MachineRegistry interface {
	Get(machineType string) (model.MachineConfig, bool)
	List() []model.MachineConfig
}

type LedgerConfig interface {
	StartingBalance() decimal.Decimal
	LevelCap() int
	VIPLevel() int
	DailyBonusBase() decimal.Decimal
	DailyBonusPerLevel() decimal.Decimal
	DailyBonusCooldown() time.Duration
	MaxRetries() int
}

type StoreConfig interface {
	Driver() string
}

type StatsConfig interface {
	SessionGap() time.Duration
	HistoryLimit() int
	RTPWindow() int
	RTPReportSchedule() string
}

type LogConfig interface {
	Level() string
	Format() string
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type RedisConfig interface {
	Addr() string
	Password() string
	DB() int
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
}
