package account

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountResponse struct {
	UserID           string          `json:"user_id"`
	Balance          decimal.Decimal `json:"balance"`
	Level            int             `json:"level"`
	VIP              bool            `json:"vip"`
	GamesPlayed      int64           `json:"games_played"`
	TotalWinnings    decimal.Decimal `json:"total_winnings"`
	TotalWagered     decimal.Decimal `json:"total_wagered"`
	FreeSpins        int             `json:"free_spins"`
	Multiplier       int64           `json:"multiplier"`
	LastDailyBonusAt *time.Time      `json:"last_daily_bonus_at,omitempty"`
}

type DailyBonusResponse struct {
	Bonus          decimal.Decimal `json:"bonus"`
	Balance        decimal.Decimal `json:"balance"`
	NextEligibleAt time.Time       `json:"next_eligible_at"`
}
