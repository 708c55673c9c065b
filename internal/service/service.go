package service

import (
	"context"
	"slot_engine/internal/model"
)

type SlotService interface {
	Spin(ctx context.Context, userID string, req model.SpinRequest) (*model.SpinResult, error)
	Stats(ctx context.Context, userID string, limit int) (*model.Stats, error)
	Machines() []model.MachineConfig
}

type LedgerService interface {
	Open(ctx context.Context, userID string) (*model.Account, error)
	Get(ctx context.Context, userID string) (*model.Account, error)
	ApplySpin(ctx context.Context, userID string, charge model.SpinCharge) (*model.Settlement, error)
	ClaimDailyBonus(ctx context.Context, userID string) (*model.DailyBonus, error)
}
