package slot

import (
	"time"

	"github.com/shopspring/decimal"
)

type SpinRequest struct {
	Bet decimal.Decimal `json:"bet"` // Размер ставки, строкой или числом
}

type SpinResponse struct {
	ID                 string          `json:"id"`
	Machine            string          `json:"machine"`
	Symbols            []string        `json:"symbols"`             // По символу на барабан
	Tier               string          `json:"tier"`                // none|small|medium|big|jackpot
	Rule               string          `json:"rule,omitempty"`      // Сработавшее правило таблицы
	PaytableMultiplier int64           `json:"paytable_multiplier"` // Множитель по таблице выплат
	Multiplier         int64           `json:"multiplier"`          // Применённый бонусный множитель
	Bet                decimal.Decimal `json:"bet"`
	Charged            decimal.Decimal `json:"charged"` // 0 для фриспина
	Payout             decimal.Decimal `json:"payout"`
	Capped             bool            `json:"capped"`
	FreeSpin           bool            `json:"free_spin"`
	BonusTriggered     bool            `json:"bonus_triggered"`
	FreeSpinsAwarded   int             `json:"free_spins_awarded"`
	Balance            decimal.Decimal `json:"balance"`    // Баланс после
	Level              int             `json:"level"`      // Уровень после
	VIP                bool            `json:"vip"`        // VIP после
	FreeSpins          int             `json:"free_spins"` // Остаток фриспинов
	ActiveMultiplier   int64           `json:"active_multiplier"`
	GamesPlayed        int64           `json:"games_played"`
}

type MachineResponse struct {
	Type             string          `json:"type"`
	Name             string          `json:"name"`
	ReelCount        int             `json:"reel_count"`
	Symbols          []string        `json:"symbols"`
	MinBet           decimal.Decimal `json:"min_bet"`
	MaxBet           decimal.Decimal `json:"max_bet"`
	MaxWinMultiplier int64           `json:"max_win_multiplier,omitempty"`
	Paytable         []PayRule       `json:"paytable"`
	Bonus            *Bonus          `json:"bonus,omitempty"`
}

type PayRule struct {
	Name       string          `json:"name"`
	Kind       string          `json:"kind"`
	Symbols    []string        `json:"symbols,omitempty"`
	Count      int             `json:"count,omitempty"`
	Multiplier int64           `json:"multiplier,omitempty"`
	Flat       decimal.Decimal `json:"flat"`
	Tier       string          `json:"tier"`
}

type Bonus struct {
	Symbol         string `json:"symbol"`
	MinCount       int    `json:"min_count"`
	FreeSpins      int    `json:"free_spins"`
	MultiplierBump int64  `json:"multiplier_bump"`
	Stacking       string `json:"stacking"`
	MaxMultiplier  int64  `json:"max_multiplier"`
}

type StatsResponse struct {
	UserID   string    `json:"user_id"`
	Lifetime Aggregate `json:"lifetime"`
	Session  Aggregate `json:"session"`
}

type Aggregate struct {
	Spins         int             `json:"spins"`
	Wagered       decimal.Decimal `json:"wagered"`
	Paid          decimal.Decimal `json:"paid"`
	Net           decimal.Decimal `json:"net"`
	RTP           float64         `json:"rtp"`
	WinRate       float64         `json:"win_rate"`
	BiggestWin    decimal.Decimal `json:"biggest_win"`
	MeanPayout    float64         `json:"mean_payout"`
	StdDevPayout  float64         `json:"stddev_payout"`
	FreeSpins     int             `json:"free_spins"`
	BonusTriggers int             `json:"bonus_triggers"`
	TierCounts    map[string]int  `json:"tier_counts"`
	FirstSpinAt   *time.Time      `json:"first_spin_at,omitempty"`
	LastSpinAt    *time.Time      `json:"last_spin_at,omitempty"`
}
