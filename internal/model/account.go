package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account - экономическое состояние игрока. Меняется только через леджер
type Account struct {
	UserID           string          `json:"user_id"`
	Balance          decimal.Decimal `json:"balance"`
	Level            int             `json:"level"`
	GamesPlayed      int64           `json:"games_played"`
	TotalWinnings    decimal.Decimal `json:"total_winnings"`
	TotalWagered     decimal.Decimal `json:"total_wagered"`
	VIP              bool            `json:"vip"`
	LastDailyBonusAt *time.Time      `json:"last_daily_bonus_at,omitempty"`
	BonusState
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAccount создаёт аккаунт со стартовым балансом и нулевыми счётчиками
func NewAccount(userID string, startingBalance decimal.Decimal, now time.Time) Account {
	return Account{
		UserID:        userID,
		Balance:       startingBalance,
		Level:         1,
		TotalWinnings: decimal.Zero,
		TotalWagered:  decimal.Zero,
		BonusState:    BonusState{Multiplier: 1},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Clone возвращает независимую копию аккаунта
func (a Account) Clone() Account {
	if a.LastDailyBonusAt != nil {
		t := *a.LastDailyBonusAt
		a.LastDailyBonusAt = &t
	}
	return a
}

// DailyBonus - результат получения ежедневного бонуса
type DailyBonus struct {
	Amount         decimal.Decimal
	Account        Account
	NextEligibleAt time.Time
}
