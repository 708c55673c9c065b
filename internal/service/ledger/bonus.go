package ledger

import (
	"context"
	"slot_engine/internal/model"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// DailyBonusAmount - base + level*perLevel, для VIP вдвое больше
func DailyBonusAmount(level int, vip bool, base, perLevel decimal.Decimal) decimal.Decimal {
	amount := base.Add(perLevel.Mul(decimal.NewFromInt(int64(level))))
	if vip {
		amount = amount.Mul(decimal.NewFromInt(2))
	}
	return amount
}

// ClaimDailyBonus начисляет ежедневный бонус не чаще раза в окно DAILY_BONUS_COOLDOWN.
// Отказ возвращает *model.AlreadyClaimedError и ничего не меняет
func (s *serv) ClaimDailyBonus(ctx context.Context, userID string) (*model.DailyBonus, error) {
	cooldown := s.cfg.DailyBonusCooldown()

	var amount decimal.Decimal
	var claimedAt time.Time
	acc, err := s.update(ctx, userID, "claim daily bonus", func(acc *model.Account, now time.Time) (decimal.Decimal, error) {
		if acc.LastDailyBonusAt != nil {
			next := acc.LastDailyBonusAt.Add(cooldown)
			if now.Before(next) {
				return decimal.Zero, &model.AlreadyClaimedError{NextEligibleAt: next}
			}
		}

		amount = DailyBonusAmount(acc.Level, acc.VIP, s.cfg.DailyBonusBase(), s.cfg.DailyBonusPerLevel())
		claimedAt = now
		last := now
		acc.Balance = acc.Balance.Add(amount)
		acc.LastDailyBonusAt = &last

		return amount, nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"user_id": userID,
		"amount":  amount.String(),
		"level":   acc.Level,
		"vip":     acc.VIP,
	}).Info("daily bonus claimed")

	return &model.DailyBonus{
		Amount:         amount,
		Account:        *acc,
		NextEligibleAt: claimedAt.Add(cooldown),
	}, nil
}
