package slot

import (
	"context"
	"slot_engine/internal/model"
	"time"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

var hundred = decimal.NewFromInt(100)

// Stats Статистика игрока. Счётчики за всё время берутся из аккаунта,
// распределение выплат и сессия считаются по истории спинов
func (s *serv) Stats(ctx context.Context, userID string, limit int) (*model.Stats, error) {
	acc, err := s.ledger.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	maxLimit := s.statsCfg.HistoryLimit()
	if limit <= 0 || limit > maxLimit {
		limit = maxLimit
	}

	var records []model.SpinRecord
	if s.history != nil {
		records, err = s.history.ListByUser(ctx, userID, limit)
		if err != nil {
			return nil, err
		}
	}

	lifetime := Aggregate(records)
	lifetime.Spins = int(acc.GamesPlayed)
	lifetime.Wagered = acc.TotalWagered
	lifetime.Paid = acc.TotalWinnings
	lifetime.Net = acc.TotalWinnings.Sub(acc.TotalWagered)
	lifetime.RTP = rtpPercent(acc.TotalWinnings, acc.TotalWagered)

	return &model.Stats{
		UserID:   userID,
		Lifetime: lifetime,
		Session:  Aggregate(CurrentSession(records, s.now(), s.statsCfg.SessionGap())),
	}, nil
}

// CurrentSession - хвост истории, где соседние спины идут с разрывом меньше gap.
// records отсортированы от новых к старым. Если последний спин старше gap, сессии нет
func CurrentSession(records []model.SpinRecord, now time.Time, gap time.Duration) []model.SpinRecord {
	if len(records) == 0 || now.Sub(records[0].CreatedAt) >= gap {
		return nil
	}

	n := 1
	for n < len(records) && records[n-1].CreatedAt.Sub(records[n].CreatedAt) < gap {
		n++
	}
	return records[:n]
}

// Aggregate Считает агрегаты по набору спинов
func Aggregate(records []model.SpinRecord) model.Aggregate {
	agg := model.Aggregate{
		Wagered:    decimal.Zero,
		Paid:       decimal.Zero,
		Net:        decimal.Zero,
		BiggestWin: decimal.Zero,
		TierCounts: make(map[model.Tier]int),
	}
	if len(records) == 0 {
		return agg
	}

	payouts := make([]float64, 0, len(records))
	wins := 0
	for _, rec := range records {
		agg.Spins++
		agg.Wagered = agg.Wagered.Add(rec.Charged)
		agg.Paid = agg.Paid.Add(rec.Payout)
		if rec.Payout.IsPositive() {
			wins++
		}
		if rec.Payout.GreaterThan(agg.BiggestWin) {
			agg.BiggestWin = rec.Payout
		}
		if rec.FreeSpin {
			agg.FreeSpins++
		}
		if rec.BonusTriggered {
			agg.BonusTriggers++
		}
		agg.TierCounts[rec.Tier]++
		payouts = append(payouts, rec.Payout.InexactFloat64())

		at := rec.CreatedAt
		if agg.FirstSpinAt == nil || at.Before(*agg.FirstSpinAt) {
			agg.FirstSpinAt = &at
		}
		if agg.LastSpinAt == nil || at.After(*agg.LastSpinAt) {
			agg.LastSpinAt = &at
		}
	}

	agg.Net = agg.Paid.Sub(agg.Wagered)
	agg.RTP = rtpPercent(agg.Paid, agg.Wagered)
	agg.WinRate = float64(wins) / float64(agg.Spins)

	if len(payouts) > 1 {
		agg.MeanPayout, agg.StdDevPayout = stat.MeanStdDev(payouts, nil)
	} else {
		agg.MeanPayout = payouts[0]
	}

	return agg
}

func rtpPercent(paid, wagered decimal.Decimal) float64 {
	if !wagered.IsPositive() {
		return 0
	}
	return paid.Div(wagered).Mul(hundred).InexactFloat64()
}
