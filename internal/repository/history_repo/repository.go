package history_repo

import (
	"context"
	"fmt"
	"slot_engine/internal/model"
	"slot_engine/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	table               = "spin_history"
	colID               = "id"
	colUserID           = "user_id"
	colMachine          = "machine"
	colBet              = "bet"
	colCharged          = "charged"
	colPayout           = "payout"
	colTier             = "tier"
	colSymbols          = "symbols"
	colFreeSpin         = "free_spin"
	colBonusTriggered   = "bonus_triggered"
	colFreeSpinsAwarded = "free_spins_awarded"
	colMultiplier       = "multiplier"
	colBalanceAfter     = "balance_after"
	colCreatedAt        = "created_at"
)

type repo struct {
	db     *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSpinHistoryRepository(db *pgxpool.Pool) repository.SpinHistoryRepository {
	return &repo{
		db:     db,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Save - добавляет запись о спине
func (r *repo) Save(ctx context.Context, rec model.SpinRecord) error {
	query := sq.Insert(table).
		Columns(colID, colUserID, colMachine, colBet, colCharged, colPayout, colTier, colSymbols,
			colFreeSpin, colBonusTriggered, colFreeSpinsAwarded, colMultiplier, colBalanceAfter, colCreatedAt).
		Values(rec.ID.String(), rec.UserID, rec.Machine, rec.Bet.String(), rec.Charged.String(), rec.Payout.String(),
			string(rec.Tier), rec.Symbols, rec.FreeSpin, rec.BonusTriggered, rec.FreeSpinsAwarded, rec.Multiplier,
			rec.BalanceAfter.String(), rec.CreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.db).Exec(ctx, sqlStr, args...)
	return err
}

// ListByUser - последние limit спинов игрока, новые первыми
func (r *repo) ListByUser(ctx context.Context, userID string, limit int) ([]model.SpinRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	query := sq.Select(colID+"::text", colUserID, colMachine, colBet+"::text", colCharged+"::text",
		colPayout+"::text", colTier, colSymbols, colFreeSpin, colBonusTriggered, colFreeSpinsAwarded,
		colMultiplier, colBalanceAfter+"::text", colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.db).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []model.SpinRecord
	for rows.Next() {
		var rec model.SpinRecord
		var id, bet, charged, payout, balanceAfter, tier string
		err = rows.Scan(&id, &rec.UserID, &rec.Machine, &bet, &charged, &payout, &tier, &rec.Symbols,
			&rec.FreeSpin, &rec.BonusTriggered, &rec.FreeSpinsAwarded, &rec.Multiplier, &balanceAfter, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}

		if rec.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("scan spin id: %w", err)
		}
		rec.Tier = model.Tier(tier)
		if rec.Bet, err = decimal.NewFromString(bet); err != nil {
			return nil, err
		}
		if rec.Charged, err = decimal.NewFromString(charged); err != nil {
			return nil, err
		}
		if rec.Payout, err = decimal.NewFromString(payout); err != nil {
			return nil, err
		}
		if rec.BalanceAfter, err = decimal.NewFromString(balanceAfter); err != nil {
			return nil, err
		}
		res = append(res, rec)
	}

	return res, rows.Err()
}
