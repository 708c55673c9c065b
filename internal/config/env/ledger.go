package env

import (
	"fmt"
	"slot_engine/internal/config"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type ledgerConfig struct {
	StartingBalanceValue    string        `envconfig:"STARTING_BALANCE" default:"1000"`
	LevelCapValue           int           `envconfig:"LEVEL_CAP" default:"0"`
	VIPLevelValue           int           `envconfig:"VIP_LEVEL" default:"5"`
	DailyBonusBaseValue     string        `envconfig:"DAILY_BONUS_BASE" default:"100"`
	DailyBonusPerLevelValue string        `envconfig:"DAILY_BONUS_PER_LEVEL" default:"25"`
	DailyBonusCooldownValue time.Duration `envconfig:"DAILY_BONUS_COOLDOWN" default:"24h"`
	MaxRetriesValue         int           `envconfig:"LEDGER_MAX_RETRIES" default:"3"`

	startingBalance    decimal.Decimal
	dailyBonusBase     decimal.Decimal
	dailyBonusPerLevel decimal.Decimal
}

func NewLedgerConfig() (config.LedgerConfig, error) {
	var cfg ledgerConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	var err error
	if cfg.startingBalance, err = parseAmount("STARTING_BALANCE", cfg.StartingBalanceValue); err != nil {
		return nil, err
	}
	if cfg.dailyBonusBase, err = parseAmount("DAILY_BONUS_BASE", cfg.DailyBonusBaseValue); err != nil {
		return nil, err
	}
	if cfg.dailyBonusPerLevel, err = parseAmount("DAILY_BONUS_PER_LEVEL", cfg.DailyBonusPerLevelValue); err != nil {
		return nil, err
	}
	if cfg.LevelCapValue < 0 {
		return nil, fmt.Errorf("LEVEL_CAP must be >= 0")
	}
	if cfg.VIPLevelValue < 1 {
		return nil, fmt.Errorf("VIP_LEVEL must be >= 1")
	}
	if cfg.DailyBonusCooldownValue <= 0 {
		return nil, fmt.Errorf("DAILY_BONUS_COOLDOWN must be positive")
	}
	if cfg.MaxRetriesValue < 0 {
		return nil, fmt.Errorf("LEDGER_MAX_RETRIES must be >= 0")
	}

	return &cfg, nil
}

func parseAmount(name, raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", name, err)
	}
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s must not be negative", name)
	}
	return v, nil
}

func (c *ledgerConfig) StartingBalance() decimal.Decimal {
	return c.startingBalance
}

func (c *ledgerConfig) LevelCap() int {
	return c.LevelCapValue
}

func (c *ledgerConfig) VIPLevel() int {
	return c.VIPLevelValue
}

func (c *ledgerConfig) DailyBonusBase() decimal.Decimal {
	return c.dailyBonusBase
}

func (c *ledgerConfig) DailyBonusPerLevel() decimal.Decimal {
	return c.dailyBonusPerLevel
}

func (c *ledgerConfig) DailyBonusCooldown() time.Duration {
	return c.DailyBonusCooldownValue
}

func (c *ledgerConfig) MaxRetries() int {
	return c.MaxRetriesValue
}
