package account_redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slot_engine/internal/model"
	"slot_engine/internal/repository"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "slot:account:"

type repo struct {
	rdb *redis.Client
}

// клиент или транзакция WATCH
type reader interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// NewAccountRepository - аккаунты в Redis, по ключу на игрока.
// Update работает через WATCH/MULTI, проигравший гонку получает model.ErrConcurrencyConflict
func NewAccountRepository(rdb *redis.Client) repository.AccountRepository {
	return &repo{rdb: rdb}
}

func accountKey(userID string) string {
	return keyPrefix + userID
}

func (r *repo) Create(ctx context.Context, acc model.Account) error {
	data, err := json.Marshal(acc)
	if err != nil {
		return err
	}

	ok, err := r.rdb.SetNX(ctx, accountKey(acc.UserID), data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrAccountExists
	}
	return nil
}

func (r *repo) Get(ctx context.Context, userID string) (*model.Account, error) {
	return r.load(ctx, r.rdb, userID)
}

func (r *repo) Update(ctx context.Context, userID string, fn repository.AccountMutator) (*model.Account, error) {
	key := accountKey(userID)

	var res *model.Account
	err := r.rdb.Watch(ctx, func(tx *redis.Tx) error {
		acc, err := r.load(ctx, tx, userID)
		if err != nil {
			return err
		}

		prevVersion := acc.Version
		if err := fn(acc); err != nil {
			return err
		}
		acc.Version = prevVersion + 1

		data, err := json.Marshal(acc)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		if err != nil {
			return err
		}

		res = acc
		return nil
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return nil, fmt.Errorf("%w: account %s changed concurrently", model.ErrConcurrencyConflict, userID)
	}
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (r *repo) load(ctx context.Context, c reader, userID string) (*model.Account, error) {
	raw, err := c.Get(ctx, accountKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, model.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	var acc model.Account
	if err := json.Unmarshal(raw, &acc); err != nil {
		return nil, fmt.Errorf("decode account %s: %w", userID, err)
	}
	return &acc, nil
}
