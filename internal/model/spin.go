package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpinRequest - запрос на спин
type SpinRequest struct {
	Machine string
	Bet     decimal.Decimal
}

// Evaluation - результат оценки комбинации по таблице выплат
type Evaluation struct {
	Tier             Tier
	RuleName         string
	Multiplier       int64
	Flat             decimal.Decimal
	BonusTriggered   bool
	BonusCount       int
	FreeSpinsAwarded int
}

// BasePayout - выплата по таблице без учёта бонусного множителя
func (e Evaluation) BasePayout(bet decimal.Decimal) decimal.Decimal {
	if e.Multiplier > 0 {
		return bet.Mul(decimal.NewFromInt(e.Multiplier))
	}
	return e.Flat
}

// SpinCharge - всё, что леджеру нужно для атомарного расчёта спина
type SpinCharge struct {
	Bet              decimal.Decimal
	BasePayout       decimal.Decimal
	MaxPayout        decimal.Decimal // ноль - без ограничения
	BonusTriggered   bool
	FreeSpinsAwarded int
	MultiplierBump   int64
	Stacking         Stacking
	MaxMultiplier    int64 // 0 - DefaultMaxMultiplier
}

// Settlement - итог спина, зафиксированный в аккаунте
type Settlement struct {
	Account    Account
	FreeSpin   bool
	Charged    decimal.Decimal
	Multiplier int64
	Payout     decimal.Decimal
	Capped     bool
}

// SpinOutcome - неизменяемый результат одного спина
type SpinOutcome struct {
	Symbols            []string
	Tier               Tier
	RuleName           string
	PaytableMultiplier int64
	Multiplier         int64
	Payout             decimal.Decimal
	BonusTriggered     bool
	FreeSpinsAwarded   int
	FreeSpin           bool
	Capped             bool
}

// SpinResult - ответ на спин: исход и новое состояние аккаунта
type SpinResult struct {
	ID          uuid.UUID
	Machine     string
	Bet         decimal.Decimal
	Charged     decimal.Decimal
	Outcome     SpinOutcome
	Balance     decimal.Decimal
	Level       int
	VIP         bool
	GamesPlayed int64
	FreeSpins   int
	Multiplier  int64
}

// SpinRecord - запись истории спинов
type SpinRecord struct {
	ID               uuid.UUID       `json:"id"`
	UserID           string          `json:"user_id"`
	Machine          string          `json:"machine"`
	Bet              decimal.Decimal `json:"bet"`
	Charged          decimal.Decimal `json:"charged"`
	Payout           decimal.Decimal `json:"payout"`
	Tier             Tier            `json:"tier"`
	Symbols          []string        `json:"symbols"`
	FreeSpin         bool            `json:"free_spin"`
	BonusTriggered   bool            `json:"bonus_triggered"`
	FreeSpinsAwarded int             `json:"free_spins_awarded"`
	Multiplier       int64           `json:"multiplier"`
	BalanceAfter     decimal.Decimal `json:"balance_after"`
	CreatedAt        time.Time       `json:"created_at"`
}
