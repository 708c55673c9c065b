package account_repo

import (
	"context"
	"errors"
	"fmt"
	"slot_engine/internal/model"
	"slot_engine/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	table            = "accounts"
	colUserID        = "user_id"
	colBalance       = "balance"
	colLevel         = "level"
	colGamesPlayed   = "games_played"
	colTotalWinnings = "total_winnings"
	colTotalWagered  = "total_wagered"
	colVIP           = "vip"
	colLastDailyAt   = "last_daily_bonus_at"
	colFreeSpins     = "free_spins"
	colMultiplier    = "multiplier"
	colVersion       = "version"
	colCreatedAt     = "created_at"
	colUpdatedAt     = "updated_at"
)

// SQLSTATE, после которых транзакцию можно повторить
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeUniqueViolation      = "23505"
)

type repo struct {
	db        *pgxpool.Pool
	getter    *trmpgx.CtxGetter
	txManager trm.Manager
}

func NewAccountRepository(db *pgxpool.Pool, txManager trm.Manager) repository.AccountRepository {
	return &repo{
		db:        db,
		getter:    trmpgx.DefaultCtxGetter,
		txManager: txManager,
	}
}

// Create - вставляет новый аккаунт. Если аккаунт уже есть, возвращает model.ErrAccountExists
func (r *repo) Create(ctx context.Context, acc model.Account) error {
	query := sq.Insert(table).
		Columns(colUserID, colBalance, colLevel, colGamesPlayed, colTotalWinnings, colTotalWagered,
			colVIP, colLastDailyAt, colFreeSpins, colMultiplier, colVersion, colCreatedAt, colUpdatedAt).
		Values(acc.UserID, acc.Balance.String(), acc.Level, acc.GamesPlayed, acc.TotalWinnings.String(),
			acc.TotalWagered.String(), acc.VIP, acc.LastDailyBonusAt, acc.FreeSpins, acc.Multiplier,
			acc.Version, acc.CreatedAt, acc.UpdatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.db).Exec(ctx, sqlStr, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
			return model.ErrAccountExists
		}
		return err
	}

	return nil
}

// Get - читает аккаунт без блокировки
func (r *repo) Get(ctx context.Context, userID string) (*model.Account, error) {
	return r.get(ctx, userID, false)
}

// Update - читает строку под FOR UPDATE, применяет fn и пишет результат с проверкой версии.
// Всё в одной транзакции, ошибка fn откатывает её
func (r *repo) Update(ctx context.Context, userID string, fn repository.AccountMutator) (*model.Account, error) {
	var res *model.Account
	err := r.txManager.Do(ctx, func(txCtx context.Context) error {
		acc, err := r.get(txCtx, userID, true)
		if err != nil {
			return err
		}

		prevVersion := acc.Version
		if err := fn(acc); err != nil {
			return err
		}
		acc.Version = prevVersion + 1

		query := sq.Update(table).
			SetMap(map[string]interface{}{
				colBalance:       acc.Balance.String(),
				colLevel:         acc.Level,
				colGamesPlayed:   acc.GamesPlayed,
				colTotalWinnings: acc.TotalWinnings.String(),
				colTotalWagered:  acc.TotalWagered.String(),
				colVIP:           acc.VIP,
				colLastDailyAt:   acc.LastDailyBonusAt,
				colFreeSpins:     acc.FreeSpins,
				colMultiplier:    acc.Multiplier,
				colVersion:       acc.Version,
				colUpdatedAt:     acc.UpdatedAt,
			}).
			Where(sq.Eq{colUserID: userID, colVersion: prevVersion}).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err := query.ToSql()
		if err != nil {
			return err
		}

		tag, err := r.getter.DefaultTrOrDB(txCtx, r.db).Exec(txCtx, sqlStr, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return model.ErrConcurrencyConflict
		}

		res = acc
		return nil
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	return res, nil
}

func (r *repo) get(ctx context.Context, userID string, forUpdate bool) (*model.Account, error) {
	query := sq.Select(
		colUserID, colBalance+"::text", colLevel, colGamesPlayed, colTotalWinnings+"::text",
		colTotalWagered+"::text", colVIP, colLastDailyAt, colFreeSpins, colMultiplier,
		colVersion, colCreatedAt, colUpdatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var acc model.Account
	var balance, winnings, wagered string
	err = r.getter.DefaultTrOrDB(ctx, r.db).QueryRow(ctx, sqlStr, args...).Scan(
		&acc.UserID, &balance, &acc.Level, &acc.GamesPlayed, &winnings, &wagered, &acc.VIP,
		&acc.LastDailyBonusAt, &acc.FreeSpins, &acc.Multiplier, &acc.Version, &acc.CreatedAt, &acc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	if acc.Balance, err = decimal.NewFromString(balance); err != nil {
		return nil, fmt.Errorf("scan balance: %w", err)
	}
	if acc.TotalWinnings, err = decimal.NewFromString(winnings); err != nil {
		return nil, fmt.Errorf("scan total winnings: %w", err)
	}
	if acc.TotalWagered, err = decimal.NewFromString(wagered); err != nil {
		return nil, fmt.Errorf("scan total wagered: %w", err)
	}

	return &acc, nil
}

// mapTxError - сбой сериализации и дедлок считаются конкурентным конфликтом
func mapTxError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected:
			return fmt.Errorf("%w: %s", model.ErrConcurrencyConflict, pgErr.Message)
		}
	}
	return err
}
