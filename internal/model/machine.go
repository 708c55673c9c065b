package model

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Tier - класс выигрыша
type Tier string

const (
	TierNone    Tier = "none"
	TierSmall   Tier = "small"
	TierMedium  Tier = "medium"
	TierBig     Tier = "big"
	TierJackpot Tier = "jackpot"
)

// Valid проверяет, что тир один из известных
func (t Tier) Valid() bool {
	switch t {
	case TierNone, TierSmall, TierMedium, TierBig, TierJackpot:
		return true
	}
	return false
}

// PatternKind - вид шаблона в таблице выплат
type PatternKind string

const (
	// PatternAll - на всех барабанах один и тот же символ Symbol
	PatternAll PatternKind = "all"
	// PatternNOfAKind - не меньше Count одинаковых символов из Symbols (пусто = любой, кроме бонусного)
	PatternNOfAKind PatternKind = "n_of_a_kind"
	// PatternMixed - не меньше Count позиций с любыми символами из Symbols
	PatternMixed PatternKind = "mixed"
)

// Stacking - как множитель складывается при повторном бонусе
type Stacking string

const (
	StackingAdditive       Stacking = "additive"
	StackingMultiplicative Stacking = "multiplicative"
)

// WeightedSymbol - символ барабана и его относительный вес
type WeightedSymbol struct {
	Symbol string `yaml:"symbol"`
	Weight int    `yaml:"weight"`
}

// PayRule - одно правило таблицы выплат
type PayRule struct {
	Name       string          `yaml:"name"`
	Kind       PatternKind     `yaml:"kind"`
	Symbol     string          `yaml:"symbol"`
	Symbols    []string        `yaml:"symbols"`
	Count      int             `yaml:"count"`
	Multiplier int64           `yaml:"multiplier"`
	Flat       decimal.Decimal `yaml:"flat"`
	Tier       Tier            `yaml:"tier"`
}

// BonusRule - условия запуска бонусного раунда
type BonusRule struct {
	Symbol         string   `yaml:"symbol"`
	MinCount       int      `yaml:"min_count"`
	FreeSpins      int      `yaml:"free_spins"`
	MultiplierBump int64    `yaml:"multiplier_bump"`
	Stacking       Stacking `yaml:"stacking"`
	MaxMultiplier  int64    `yaml:"max_multiplier"` // 0 - DefaultMaxMultiplier
}

// MachineConfig - неизменяемая конфигурация автомата
type MachineConfig struct {
	Type             string           `yaml:"type"`
	Name             string           `yaml:"name"`
	ReelCount        int              `yaml:"reel_count"`
	Symbols          []WeightedSymbol `yaml:"symbols"`
	MinBet           decimal.Decimal  `yaml:"min_bet"`
	MaxBet           decimal.Decimal  `yaml:"max_bet"`
	Paytable         []PayRule        `yaml:"paytable"`
	Bonus            *BonusRule       `yaml:"bonus"`
	MaxWinMultiplier int64            `yaml:"max_win_multiplier"`
}

// HasSymbol проверяет, что символ есть на барабанах автомата
func (m *MachineConfig) HasSymbol(symbol string) bool {
	for _, s := range m.Symbols {
		if s.Symbol == symbol {
			return true
		}
	}
	return false
}

// BonusSymbol возвращает бонусный символ или пустую строку
func (m *MachineConfig) BonusSymbol() string {
	if m.Bonus == nil {
		return ""
	}
	return m.Bonus.Symbol
}

// Normalize проверяет конфигурацию и сортирует таблицу выплат по убыванию ценности
func (m *MachineConfig) Normalize() error {
	if m.Type == "" {
		return fmt.Errorf("machine type is empty")
	}
	if m.ReelCount != 3 && m.ReelCount != 5 {
		return fmt.Errorf("machine %s: reel count must be 3 or 5, got %d", m.Type, m.ReelCount)
	}
	if len(m.Symbols) == 0 {
		return fmt.Errorf("machine %s: no symbols", m.Type)
	}

	total := 0
	seen := make(map[string]struct{}, len(m.Symbols))
	for _, s := range m.Symbols {
		if s.Symbol == "" {
			return fmt.Errorf("machine %s: empty symbol", m.Type)
		}
		if _, ok := seen[s.Symbol]; ok {
			return fmt.Errorf("machine %s: duplicate symbol %s", m.Type, s.Symbol)
		}
		seen[s.Symbol] = struct{}{}
		if s.Weight < 0 {
			return fmt.Errorf("machine %s: negative weight for %s", m.Type, s.Symbol)
		}
		total += s.Weight
	}
	if total <= 0 {
		return fmt.Errorf("machine %s: total weight must be positive", m.Type)
	}

	if !m.MinBet.IsPositive() || m.MaxBet.LessThan(m.MinBet) {
		return fmt.Errorf("machine %s: invalid bet bounds %s..%s", m.Type, m.MinBet, m.MaxBet)
	}
	if m.MaxWinMultiplier < 0 {
		return fmt.Errorf("machine %s: negative max win multiplier", m.Type)
	}

	for _, rule := range m.Paytable {
		if err := m.validateRule(rule); err != nil {
			return fmt.Errorf("machine %s: rule %q: %w", m.Type, rule.Name, err)
		}
	}

	if m.Bonus != nil {
		if !m.HasSymbol(m.Bonus.Symbol) {
			return fmt.Errorf("machine %s: unknown bonus symbol %s", m.Type, m.Bonus.Symbol)
		}
		if m.Bonus.MinCount <= 0 || m.Bonus.MinCount > m.ReelCount {
			return fmt.Errorf("machine %s: bonus min count out of range", m.Type)
		}
		if m.Bonus.FreeSpins < 0 || m.Bonus.MultiplierBump < 0 {
			return fmt.Errorf("machine %s: negative bonus award", m.Type)
		}
		switch {
		case m.Bonus.MaxMultiplier == 0:
			m.Bonus.MaxMultiplier = DefaultMaxMultiplier
		case m.Bonus.MaxMultiplier < 1:
			return fmt.Errorf("machine %s: max multiplier must be >= 1", m.Type)
		}
		switch m.Bonus.Stacking {
		case "":
			m.Bonus.Stacking = StackingAdditive
		case StackingAdditive, StackingMultiplicative:
		default:
			return fmt.Errorf("machine %s: unknown stacking %s", m.Type, m.Bonus.Stacking)
		}
	}

	slices.SortStableFunc(m.Paytable, ComparePayRules)
	return nil
}

func (m *MachineConfig) validateRule(rule PayRule) error {
	if !rule.Tier.Valid() || rule.Tier == TierNone {
		return fmt.Errorf("invalid tier %q", rule.Tier)
	}
	if rule.Multiplier < 0 || rule.Flat.IsNegative() {
		return fmt.Errorf("negative payout")
	}
	if rule.Multiplier == 0 && rule.Flat.IsZero() {
		return fmt.Errorf("rule pays nothing")
	}
	switch rule.Kind {
	case PatternAll:
		if !m.HasSymbol(rule.Symbol) {
			return fmt.Errorf("unknown symbol %s", rule.Symbol)
		}
	case PatternNOfAKind, PatternMixed:
		if rule.Count <= 0 || rule.Count > m.ReelCount {
			return fmt.Errorf("count %d out of range", rule.Count)
		}
		if rule.Kind == PatternMixed && len(rule.Symbols) == 0 {
			return fmt.Errorf("mixed rule needs symbols")
		}
		for _, s := range rule.Symbols {
			if !m.HasSymbol(s) {
				return fmt.Errorf("unknown symbol %s", s)
			}
		}
	default:
		return fmt.Errorf("unknown pattern kind %q", rule.Kind)
	}
	return nil
}

// Payout - выплата правила при ставке bet: bet*Multiplier или Flat, если множителя нет
func (r PayRule) Payout(bet decimal.Decimal) decimal.Decimal {
	if r.Multiplier > 0 {
		return bet.Mul(decimal.NewFromInt(r.Multiplier))
	}
	return r.Flat
}

// ComparePayRules - порядок правил в таблице: сначала множитель по убыванию, потом фикс.
// Задаёт порядок показа и разрешает ничьи при оценке
func ComparePayRules(a, b PayRule) int {
	if c := cmp.Compare(b.Multiplier, a.Multiplier); c != 0 {
		return c
	}
	return b.Flat.Cmp(a.Flat)
}
