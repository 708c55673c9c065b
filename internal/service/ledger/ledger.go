package ledger

import (
	"context"
	"errors"
	"fmt"
	"slot_engine/internal/config"
	"slot_engine/internal/model"
	"slot_engine/internal/repository"
	"slot_engine/internal/service"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const defaultRetryBackoff = 5 * time.Millisecond

// Deps - зависимости леджера. Now и RetryBackoff необязательны
type Deps struct {
	Repo         repository.AccountRepository
	Cfg          config.LedgerConfig
	Now          func() time.Time
	RetryBackoff time.Duration
}

type serv struct {
	repo    repository.AccountRepository
	cfg     config.LedgerConfig
	now     func() time.Time
	backoff time.Duration
}

// NewLedgerService - единственная точка изменения аккаунтов
func NewLedgerService(deps Deps) service.LedgerService {
	s := &serv{
		repo:    deps.Repo,
		cfg:     deps.Cfg,
		now:     deps.Now,
		backoff: deps.RetryBackoff,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.backoff <= 0 {
		s.backoff = defaultRetryBackoff
	}
	return s
}

// Open создаёт аккаунт со стартовым балансом. Повторный вызов возвращает существующий
func (s *serv) Open(ctx context.Context, userID string) (*model.Account, error) {
	acc := model.NewAccount(userID, s.cfg.StartingBalance(), s.now().UTC())
	err := s.repo.Create(ctx, acc)
	if errors.Is(err, model.ErrAccountExists) {
		return s.repo.Get(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("open account: %w", err)
	}

	log.WithField("user_id", userID).Info("account opened")
	return &acc, nil
}

func (s *serv) Get(ctx context.Context, userID string) (*model.Account, error) {
	return s.repo.Get(ctx, userID)
}

// mutation меняет аккаунт и возвращает ожидаемое изменение баланса
type mutation func(acc *model.Account, now time.Time) (decimal.Decimal, error)

// update проводит мутацию через хранилище, проверяет инварианты
// и повторяет попытку при конкурентном конфликте
func (s *serv) update(ctx context.Context, userID, op string, fn mutation) (*model.Account, error) {
	for attempt := 0; ; attempt++ {
		acc, err := s.repo.Update(ctx, userID, func(acc *model.Account) error {
			before := acc.Clone()
			now := s.now().UTC()

			delta, err := fn(acc, now)
			if err != nil {
				return err
			}
			acc.UpdatedAt = now

			return checkInvariants(before, *acc, delta)
		})
		if err == nil {
			return acc, nil
		}
		if !errors.Is(err, model.ErrConcurrencyConflict) {
			return nil, err
		}
		if attempt >= s.cfg.MaxRetries() {
			return nil, fmt.Errorf("%s: gave up after %d attempts: %w", op, attempt+1, err)
		}

		log.WithFields(log.Fields{
			"user_id": userID,
			"op":      op,
			"attempt": attempt + 1,
		}).Warn("account update conflict, retrying")

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", op, errors.Join(err, ctx.Err()))
		case <-time.After(s.backoff * time.Duration(attempt+1)):
		}
	}
}

func checkInvariants(before, after model.Account, delta decimal.Decimal) error {
	switch {
	case after.Balance.IsNegative():
		return fmt.Errorf("%w: negative balance %s", model.ErrInvariantViolation, after.Balance)
	case !after.Balance.Sub(before.Balance).Equal(delta):
		return fmt.Errorf("%w: balance moved by %s, expected %s", model.ErrInvariantViolation,
			after.Balance.Sub(before.Balance), delta)
	case after.Level < 1 || after.Level < before.Level:
		return fmt.Errorf("%w: level %d after %d", model.ErrInvariantViolation, after.Level, before.Level)
	case after.GamesPlayed < before.GamesPlayed:
		return fmt.Errorf("%w: games played went backwards", model.ErrInvariantViolation)
	case after.FreeSpins < 0:
		return fmt.Errorf("%w: negative free spins", model.ErrInvariantViolation)
	case after.Multiplier < 1:
		return fmt.Errorf("%w: multiplier %d", model.ErrInvariantViolation, after.Multiplier)
	}
	return nil
}
