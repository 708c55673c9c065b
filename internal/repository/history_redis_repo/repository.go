package history_redis_repo

import (
	"context"
	"encoding/json"
	"fmt"
	"slot_engine/internal/model"
	"slot_engine/internal/repository"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "slot:history:"

type repo struct {
	rdb    *redis.Client
	maxLen int64
}

// NewSpinHistoryRepository - история в списке Redis, хранится не больше maxLen последних спинов
func NewSpinHistoryRepository(rdb *redis.Client, maxLen int) repository.SpinHistoryRepository {
	return &repo{rdb: rdb, maxLen: int64(maxLen)}
}

func historyKey(userID string) string {
	return keyPrefix + userID
}

func (r *repo) Save(ctx context.Context, rec model.SpinRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	key := historyKey(rec.UserID)
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, data)
		pipe.LTrim(ctx, key, 0, r.maxLen-1)
		return nil
	})
	return err
}

func (r *repo) ListByUser(ctx context.Context, userID string, limit int) ([]model.SpinRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	items, err := r.rdb.LRange(ctx, historyKey(userID), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, err
	}

	res := make([]model.SpinRecord, 0, len(items))
	for _, item := range items {
		var rec model.SpinRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("decode spin record: %w", err)
		}
		res = append(res, rec)
	}
	return res, nil
}
