package repository

import (
	"context"
	"slot_engine/internal/model"
)

// AccountMutator меняет аккаунт внутри атомарного обновления.
// Ошибка отменяет обновление целиком
type AccountMutator func(acc *model.Account) error

// AccountRepository - хранилище аккаунтов. Update сериализует изменения одного аккаунта
// и возвращает model.ErrConcurrencyConflict, если аккаунт изменили параллельно
type AccountRepository interface {
	Create(ctx context.Context, acc model.Account) error
	Get(ctx context.Context, userID string) (*model.Account, error)
	Update(ctx context.Context, userID string, fn AccountMutator) (*model.Account, error)
}

// SpinHistoryRepository - история спинов для статистики. ListByUser отдаёт новые записи первыми
type SpinHistoryRepository interface {
	Save(ctx context.Context, rec model.SpinRecord) error
	ListByUser(ctx context.Context, userID string, limit int) ([]model.SpinRecord, error)
}

// RTPRepository - наблюдатель фактического RTP по автоматам
type RTPRepository interface {
	Observe(machine string, bet, payout float64)
	State(machine string) model.RTPState
	States() []model.RTPState
}
