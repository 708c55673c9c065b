package model

import "testing"

func TestBonusState_ConsumeFreeSpin(t *testing.T) {
	b := BonusState{FreeSpins: 2, Multiplier: 1}

	if !b.ConsumeFreeSpin() || !b.ConsumeFreeSpin() {
		t.Fatalf("expected two free spins to be consumed")
	}
	if b.ConsumeFreeSpin() {
		t.Fatalf("free spin consumed from empty counter")
	}
	if b.FreeSpins != 0 {
		t.Fatalf("free spins = %d, want 0", b.FreeSpins)
	}
}

func TestBonusState_ApplyBonusTrigger(t *testing.T) {
	tests := []struct {
		name       string
		start      BonusState
		freeSpins  int
		bump       int64
		stacking   Stacking
		wantSpins  int
		wantMulti  int64
		limit      int64
		applyTwice bool
	}{
		{name: "additive", start: BonusState{Multiplier: 1}, freeSpins: 10, bump: 1, stacking: StackingAdditive, wantSpins: 10, wantMulti: 2},
		{name: "additive twice", start: BonusState{Multiplier: 1}, freeSpins: 10, bump: 1, stacking: StackingAdditive, wantSpins: 20, wantMulti: 3, applyTwice: true},
		{name: "multiplicative", start: BonusState{Multiplier: 2}, freeSpins: 5, bump: 3, stacking: StackingMultiplicative, wantSpins: 5, wantMulti: 6},
		{name: "multiplicative bump one", start: BonusState{Multiplier: 2}, freeSpins: 5, bump: 1, stacking: StackingMultiplicative, wantSpins: 5, wantMulti: 2},
		{name: "zero bump", start: BonusState{Multiplier: 1}, freeSpins: 10, bump: 0, stacking: StackingAdditive, wantSpins: 10, wantMulti: 1},
		{name: "multiplicative saturates", start: BonusState{Multiplier: 8}, freeSpins: 1, bump: 2, stacking: StackingMultiplicative, limit: 10, wantSpins: 1, wantMulti: 10},
		{name: "additive saturates", start: BonusState{Multiplier: 9}, freeSpins: 1, bump: 5, stacking: StackingAdditive, limit: 10, wantSpins: 1, wantMulti: 10},
		{name: "default limit", start: BonusState{Multiplier: DefaultMaxMultiplier}, freeSpins: 1, bump: 3, stacking: StackingMultiplicative, wantSpins: 1, wantMulti: DefaultMaxMultiplier},
		{name: "zero multiplier repaired", start: BonusState{}, freeSpins: 1, bump: 0, stacking: StackingAdditive, wantSpins: 1, wantMulti: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.start
			b.ApplyBonusTrigger(tt.freeSpins, tt.bump, tt.stacking, tt.limit)
			if tt.applyTwice {
				b.ApplyBonusTrigger(tt.freeSpins, tt.bump, tt.stacking, tt.limit)
			}
			if b.FreeSpins != tt.wantSpins || b.Multiplier != tt.wantMulti {
				t.Fatalf("got %+v, want spins=%d multiplier=%d", b, tt.wantSpins, tt.wantMulti)
			}
		})
	}
}

func TestBonusState_ActiveMultiplierAndSettle(t *testing.T) {
	b := BonusState{FreeSpins: 1, Multiplier: 3}

	if got := b.ActiveMultiplier(false); got != 1 {
		t.Fatalf("paid spin multiplier = %d, want 1", got)
	}
	if got := b.ActiveMultiplier(true); got != 3 {
		t.Fatalf("free spin multiplier = %d, want 3", got)
	}

	b.Settle(false)
	if b.Multiplier != 3 {
		t.Fatalf("multiplier reset while free spins remain")
	}

	b.ConsumeFreeSpin()
	b.Settle(true)
	if b.Multiplier != 3 {
		t.Fatalf("multiplier reset on a bonus spin")
	}

	b.Settle(false)
	if b.Multiplier != 1 {
		t.Fatalf("multiplier = %d after the run ended, want 1", b.Multiplier)
	}
}
