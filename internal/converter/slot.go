package converter

import (
	"slot_engine/internal/api/dto/slot"
	"slot_engine/internal/model"
)

func ToSpinRequest(machine string, req slot.SpinRequest) model.SpinRequest {
	return model.SpinRequest{
		Machine: machine,
		Bet:     req.Bet,
	}
}

func ToSpinResponse(res model.SpinResult) slot.SpinResponse {
	return slot.SpinResponse{
		ID:                 res.ID.String(),
		Machine:            res.Machine,
		Symbols:            res.Outcome.Symbols,
		Tier:               string(res.Outcome.Tier),
		Rule:               res.Outcome.RuleName,
		PaytableMultiplier: res.Outcome.PaytableMultiplier,
		Multiplier:         res.Outcome.Multiplier,
		Bet:                res.Bet,
		Charged:            res.Charged,
		Payout:             res.Outcome.Payout,
		Capped:             res.Outcome.Capped,
		FreeSpin:           res.Outcome.FreeSpin,
		BonusTriggered:     res.Outcome.BonusTriggered,
		FreeSpinsAwarded:   res.Outcome.FreeSpinsAwarded,
		Balance:            res.Balance,
		Level:              res.Level,
		VIP:                res.VIP,
		FreeSpins:          res.FreeSpins,
		ActiveMultiplier:   res.Multiplier,
		GamesPlayed:        res.GamesPlayed,
	}
}

func ToMachinesResponse(machines []model.MachineConfig) []slot.MachineResponse {
	result := make([]slot.MachineResponse, len(machines))
	for i, m := range machines {
		symbols := make([]string, len(m.Symbols))
		for j, s := range m.Symbols {
			symbols[j] = s.Symbol
		}

		result[i] = slot.MachineResponse{
			Type:             m.Type,
			Name:             m.Name,
			ReelCount:        m.ReelCount,
			Symbols:          symbols,
			MinBet:           m.MinBet,
			MaxBet:           m.MaxBet,
			MaxWinMultiplier: m.MaxWinMultiplier,
			Paytable:         toPayRules(m.Paytable),
		}
		if m.Bonus != nil {
			result[i].Bonus = &slot.Bonus{
				Symbol:         m.Bonus.Symbol,
				MinCount:       m.Bonus.MinCount,
				FreeSpins:      m.Bonus.FreeSpins,
				MultiplierBump: m.Bonus.MultiplierBump,
				Stacking:       string(m.Bonus.Stacking),
				MaxMultiplier:  m.Bonus.MaxMultiplier,
			}
		}
	}
	return result
}

func toPayRules(rules []model.PayRule) []slot.PayRule {
	result := make([]slot.PayRule, len(rules))
	for i, r := range rules {
		symbols := r.Symbols
		if r.Kind == model.PatternAll {
			symbols = []string{r.Symbol}
		}
		result[i] = slot.PayRule{
			Name:       r.Name,
			Kind:       string(r.Kind),
			Symbols:    symbols,
			Count:      r.Count,
			Multiplier: r.Multiplier,
			Flat:       r.Flat,
			Tier:       string(r.Tier),
		}
	}
	return result
}

func ToStatsResponse(stats model.Stats) slot.StatsResponse {
	return slot.StatsResponse{
		UserID:   stats.UserID,
		Lifetime: toAggregate(stats.Lifetime),
		Session:  toAggregate(stats.Session),
	}
}

func toAggregate(agg model.Aggregate) slot.Aggregate {
	tiers := make(map[string]int, len(agg.TierCounts))
	for tier, n := range agg.TierCounts {
		tiers[string(tier)] = n
	}

	return slot.Aggregate{
		Spins:         agg.Spins,
		Wagered:       agg.Wagered,
		Paid:          agg.Paid,
		Net:           agg.Net,
		RTP:           agg.RTP,
		WinRate:       agg.WinRate,
		BiggestWin:    agg.BiggestWin,
		MeanPayout:    agg.MeanPayout,
		StdDevPayout:  agg.StdDevPayout,
		FreeSpins:     agg.FreeSpins,
		BonusTriggers: agg.BonusTriggers,
		TierCounts:    tiers,
		FirstSpinAt:   agg.FirstSpinAt,
		LastSpinAt:    agg.LastSpinAt,
	}
}
