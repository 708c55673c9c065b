package ledger

import (
	"context"
	"fmt"
	"slot_engine/internal/model"
	"time"

	"github.com/shopspring/decimal"
)

// ApplySpin атомарно проводит спин: фриспин или списание ставки, выплата с множителем,
// счётчики, уровень и бонусное состояние. При нехватке средств аккаунт не меняется
func (s *serv) ApplySpin(ctx context.Context, userID string, charge model.SpinCharge) (*model.Settlement, error) {
	if !charge.Bet.IsPositive() {
		return nil, fmt.Errorf("%w: bet must be positive", model.ErrInvalidBet)
	}
	if charge.BasePayout.IsNegative() {
		return nil, fmt.Errorf("%w: negative payout", model.ErrInvariantViolation)
	}

	var st model.Settlement
	acc, err := s.update(ctx, userID, "apply spin", func(acc *model.Account, _ time.Time) (decimal.Decimal, error) {
		st = model.Settlement{Charged: decimal.Zero}

		st.FreeSpin = acc.ConsumeFreeSpin()
		if !st.FreeSpin {
			if acc.Balance.LessThan(charge.Bet) {
				return decimal.Zero, fmt.Errorf("%w: balance %s, bet %s", model.ErrInsufficientCredits, acc.Balance, charge.Bet)
			}
			st.Charged = charge.Bet
		}

		st.Multiplier = acc.ActiveMultiplier(st.FreeSpin)
		st.Payout = charge.BasePayout.Mul(decimal.NewFromInt(st.Multiplier))
		if charge.MaxPayout.IsPositive() && st.Payout.GreaterThan(charge.MaxPayout) {
			st.Payout = charge.MaxPayout
			st.Capped = true
		}

		acc.Balance = acc.Balance.Sub(st.Charged).Add(st.Payout)
		acc.TotalWagered = acc.TotalWagered.Add(st.Charged)
		acc.TotalWinnings = acc.TotalWinnings.Add(st.Payout)
		acc.GamesPlayed++
		s.progress(acc)

		if charge.BonusTriggered {
			acc.ApplyBonusTrigger(charge.FreeSpinsAwarded, charge.MultiplierBump, charge.Stacking, charge.MaxMultiplier)
		}
		acc.Settle(charge.BonusTriggered)

		return st.Payout.Sub(st.Charged), nil
	})
	if err != nil {
		return nil, err
	}

	st.Account = *acc
	return &st, nil
}
