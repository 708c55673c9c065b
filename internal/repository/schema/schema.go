package schema

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		user_id             TEXT PRIMARY KEY,
		balance             NUMERIC NOT NULL CHECK (balance >= 0),
		level               INTEGER NOT NULL DEFAULT 1,
		games_played        BIGINT NOT NULL DEFAULT 0,
		total_winnings      NUMERIC NOT NULL DEFAULT 0,
		total_wagered       NUMERIC NOT NULL DEFAULT 0,
		vip                 BOOLEAN NOT NULL DEFAULT FALSE,
		last_daily_bonus_at TIMESTAMPTZ,
		free_spins          INTEGER NOT NULL DEFAULT 0 CHECK (free_spins >= 0),
		multiplier          BIGINT NOT NULL DEFAULT 1,
		version             BIGINT NOT NULL DEFAULT 0,
		created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS spin_history (
		id                 UUID PRIMARY KEY,
		user_id            TEXT NOT NULL REFERENCES accounts (user_id),
		machine            TEXT NOT NULL,
		bet                NUMERIC NOT NULL,
		charged            NUMERIC NOT NULL,
		payout             NUMERIC NOT NULL,
		tier               TEXT NOT NULL,
		symbols            TEXT[] NOT NULL,
		free_spin          BOOLEAN NOT NULL,
		bonus_triggered    BOOLEAN NOT NULL,
		free_spins_awarded INTEGER NOT NULL,
		multiplier         BIGINT NOT NULL,
		balance_after      NUMERIC NOT NULL,
		created_at         TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS spin_history_user_created_idx ON spin_history (user_id, created_at DESC)`,
}

// EnsureSchema - создаёт таблицы аккаунтов и истории, если их ещё нет
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
