package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stats - статистика игрока за всё время и за текущую сессию
type Stats struct {
	UserID   string
	Lifetime Aggregate
	Session  Aggregate
}

// Aggregate - агрегаты по набору спинов
type Aggregate struct {
	Spins         int
	Wagered       decimal.Decimal
	Paid          decimal.Decimal
	Net           decimal.Decimal
	RTP           float64 // процент выплат от ставок
	WinRate       float64 // доля выигрышных спинов
	BiggestWin    decimal.Decimal
	MeanPayout    float64
	StdDevPayout  float64
	FreeSpins     int
	BonusTriggers int
	TierCounts    map[Tier]int
	FirstSpinAt   *time.Time
	LastSpinAt    *time.Time
}
