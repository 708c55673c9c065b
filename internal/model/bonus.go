package model

// DefaultMaxMultiplier - потолок бонусного множителя, если автомат не задал свой
const DefaultMaxMultiplier int64 = 1000

// BonusState - фриспины и активный множитель аккаунта.
// Множитель хранится вместе с аккаунтом и переживает перелогин
type BonusState struct {
	FreeSpins  int   `json:"free_spins"`
	Multiplier int64 `json:"multiplier"`
}

// ConsumeFreeSpin списывает один фриспин. false - фриспинов нет, ставка платная
func (b *BonusState) ConsumeFreeSpin() bool {
	if b.FreeSpins <= 0 {
		return false
	}
	b.FreeSpins--
	return true
}

// ApplyBonusTrigger начисляет фриспины и наращивает множитель, но не выше maxMultiplier
// (0 - DefaultMaxMultiplier). Два срабатывания начисляют фриспины дважды
func (b *BonusState) ApplyBonusTrigger(freeSpins int, bump int64, stacking Stacking, maxMultiplier int64) {
	if maxMultiplier <= 0 {
		maxMultiplier = DefaultMaxMultiplier
	}
	if b.Multiplier < 1 {
		b.Multiplier = 1
	}
	if freeSpins > 0 {
		b.FreeSpins += freeSpins
	}
	switch stacking {
	case StackingMultiplicative:
		if bump > 1 {
			if b.Multiplier > maxMultiplier/bump {
				b.Multiplier = maxMultiplier
			} else {
				b.Multiplier *= bump
			}
		}
	default:
		if bump > 0 {
			if b.Multiplier > maxMultiplier-bump {
				b.Multiplier = maxMultiplier
			} else {
				b.Multiplier += bump
			}
		}
	}
	b.Multiplier = min(b.Multiplier, maxMultiplier)
}

// ActiveMultiplier - множитель, который применяется к выплате спина
func (b *BonusState) ActiveMultiplier(freeSpin bool) int64 {
	if !freeSpin || b.Multiplier < 1 {
		return 1
	}
	return b.Multiplier
}

// Settle сбрасывает множитель после спина без бонуса, когда серия фриспинов закончилась
func (b *BonusState) Settle(triggered bool) {
	if !triggered && b.FreeSpins == 0 {
		b.Multiplier = 1
	}
}
