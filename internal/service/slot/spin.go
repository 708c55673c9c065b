package slot

import (
	"context"
	"fmt"
	"slices"
	"slot_engine/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// Spin выполняет спин: проверка ставки, барабаны, оценка и одно атомарное обновление аккаунта.
// История и RTP пишутся после фиксации и на результат спина не влияют
func (s *serv) Spin(ctx context.Context, userID string, req model.SpinRequest) (*model.SpinResult, error) {
	cfg, ok := s.machines.Get(req.Machine)
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownMachine, req.Machine)
	}
	if err := validateBet(cfg, req.Bet); err != nil {
		return nil, err
	}

	symbols := s.generator.Generate(cfg)
	eval, err := Evaluate(cfg, req.Bet, symbols)
	if err != nil {
		return nil, err
	}

	charge := model.SpinCharge{
		Bet:              req.Bet,
		BasePayout:       eval.BasePayout(req.Bet),
		BonusTriggered:   eval.BonusTriggered,
		FreeSpinsAwarded: eval.FreeSpinsAwarded,
	}
	if cfg.MaxWinMultiplier > 0 {
		charge.MaxPayout = req.Bet.Mul(decimal.NewFromInt(cfg.MaxWinMultiplier))
	}
	if cfg.Bonus != nil {
		charge.MultiplierBump = cfg.Bonus.MultiplierBump
		charge.Stacking = cfg.Bonus.Stacking
		charge.MaxMultiplier = cfg.Bonus.MaxMultiplier
	}

	// После списания спин должен дойти до конца, отмена клиента здесь не действует
	settleCtx := context.WithoutCancel(ctx)

	st, err := s.ledger.ApplySpin(settleCtx, userID, charge)
	if err != nil {
		return nil, err
	}

	res := &model.SpinResult{
		ID:      uuid.New(),
		Machine: cfg.Type,
		Bet:     req.Bet,
		Charged: st.Charged,
		Outcome: model.SpinOutcome{
			Symbols:            slices.Clone(symbols),
			Tier:               eval.Tier,
			RuleName:           eval.RuleName,
			PaytableMultiplier: eval.Multiplier,
			Multiplier:         st.Multiplier,
			Payout:             st.Payout,
			BonusTriggered:     eval.BonusTriggered,
			FreeSpinsAwarded:   eval.FreeSpinsAwarded,
			FreeSpin:           st.FreeSpin,
			Capped:             st.Capped,
		},
		Balance:     st.Account.Balance,
		Level:       st.Account.Level,
		VIP:         st.Account.VIP,
		GamesPlayed: st.Account.GamesPlayed,
		FreeSpins:   st.Account.FreeSpins,
		Multiplier:  st.Account.Multiplier,
	}

	s.afterSpin(settleCtx, userID, res)

	return res, nil
}

func validateBet(cfg model.MachineConfig, bet decimal.Decimal) error {
	if !bet.IsPositive() {
		return fmt.Errorf("%w: bet must be positive", model.ErrInvalidBet)
	}
	if bet.LessThan(cfg.MinBet) || bet.GreaterThan(cfg.MaxBet) {
		return fmt.Errorf("%w: bet %s outside %s..%s", model.ErrInvalidBet, bet, cfg.MinBet, cfg.MaxBet)
	}
	return nil
}

// afterSpin пишет историю и RTP. Ошибки только логируются
func (s *serv) afterSpin(ctx context.Context, userID string, res *model.SpinResult) {
	fields := log.Fields{
		"user_id": userID,
		"machine": res.Machine,
		"spin_id": res.ID.String(),
	}

	switch res.Outcome.Tier {
	case model.TierBig, model.TierJackpot:
		log.WithFields(fields).WithFields(log.Fields{
			"tier":   res.Outcome.Tier,
			"payout": res.Outcome.Payout.String(),
		}).Info("big win")
	}
	if res.Outcome.BonusTriggered {
		log.WithFields(fields).WithFields(log.Fields{
			"free_spins_awarded": res.Outcome.FreeSpinsAwarded,
			"multiplier":         res.Multiplier,
		}).Info("bonus round triggered")
	}

	if s.history != nil {
		rec := model.SpinRecord{
			ID:               res.ID,
			UserID:           userID,
			Machine:          res.Machine,
			Bet:              res.Bet,
			Charged:          res.Charged,
			Payout:           res.Outcome.Payout,
			Tier:             res.Outcome.Tier,
			Symbols:          res.Outcome.Symbols,
			FreeSpin:         res.Outcome.FreeSpin,
			BonusTriggered:   res.Outcome.BonusTriggered,
			FreeSpinsAwarded: res.Outcome.FreeSpinsAwarded,
			Multiplier:       res.Outcome.Multiplier,
			BalanceAfter:     res.Balance,
			CreatedAt:        s.now().UTC(),
		}
		if err := s.history.Save(ctx, rec); err != nil {
			log.WithFields(fields).WithError(err).Error("failed to save spin history")
		}
	}

	if s.rtp != nil {
		s.rtp.Observe(res.Machine, res.Charged.InexactFloat64(), res.Outcome.Payout.InexactFloat64())
	}
}
