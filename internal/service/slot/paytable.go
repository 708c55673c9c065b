package slot

import (
	"fmt"
	"slices"
	"slot_engine/internal/model"

	"github.com/shopspring/decimal"
)

// Evaluate сопоставляет символы с таблицей выплат автомата.
// Из всех совпавших правил выбирается то, что платит больше при этой ставке.
// При равной выплате побеждает правило, стоящее выше в таблице
func Evaluate(cfg model.MachineConfig, bet decimal.Decimal, symbols []string) (model.Evaluation, error) {
	if len(symbols) != cfg.ReelCount {
		return model.Evaluation{}, fmt.Errorf("machine %s: expected %d symbols, got %d", cfg.Type, cfg.ReelCount, len(symbols))
	}

	paytable := cfg.Paytable
	if !slices.IsSortedFunc(paytable, model.ComparePayRules) {
		paytable = slices.Clone(paytable)
		slices.SortStableFunc(paytable, model.ComparePayRules)
	}

	counts := make(map[string]int, len(symbols))
	for _, s := range symbols {
		counts[s]++
	}

	res := model.Evaluation{Tier: model.TierNone}
	var best decimal.Decimal
	found := false
	for _, rule := range paytable {
		if !matchRule(rule, symbols, counts, cfg.BonusSymbol()) {
			continue
		}
		payout := rule.Payout(bet)
		if found && !payout.GreaterThan(best) {
			continue
		}
		found = true
		best = payout
		res.Tier = rule.Tier
		res.RuleName = rule.Name
		res.Multiplier = rule.Multiplier
		res.Flat = rule.Flat
	}

	if cfg.Bonus != nil {
		res.BonusCount = counts[cfg.Bonus.Symbol]
		if res.BonusCount >= cfg.Bonus.MinCount {
			res.BonusTriggered = true
			res.FreeSpinsAwarded = cfg.Bonus.FreeSpins
		}
	}

	return res, nil
}

func matchRule(rule model.PayRule, symbols []string, counts map[string]int, bonusSymbol string) bool {
	switch rule.Kind {
	case model.PatternAll:
		return counts[rule.Symbol] == len(symbols)
	case model.PatternNOfAKind:
		if len(rule.Symbols) > 0 {
			for _, s := range rule.Symbols {
				if counts[s] >= rule.Count {
					return true
				}
			}
			return false
		}
		// Бонусный символ платит только по правилу, где он назван явно
		for s, n := range counts {
			if s != bonusSymbol && n >= rule.Count {
				return true
			}
		}
		return false
	case model.PatternMixed:
		hits := 0
		for _, s := range rule.Symbols {
			hits += counts[s]
		}
		return hits >= rule.Count
	}
	return false
}
