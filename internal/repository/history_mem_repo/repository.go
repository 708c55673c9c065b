package history_mem_repo

import (
	"context"
	"slices"
	"slot_engine/internal/model"
	"slot_engine/internal/repository"
	"sync"
)

type repo struct {
	mtx     sync.RWMutex
	maxLen  int
	records map[string][]model.SpinRecord
}

// NewSpinHistoryRepository - история в памяти, по maxLen последних спинов на игрока
func NewSpinHistoryRepository(maxLen int) repository.SpinHistoryRepository {
	return &repo{
		maxLen:  maxLen,
		records: make(map[string][]model.SpinRecord),
	}
}

func (r *repo) Save(_ context.Context, rec model.SpinRecord) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	rec.Symbols = slices.Clone(rec.Symbols)
	list := append(r.records[rec.UserID], rec)
	if len(list) > r.maxLen {
		list = slices.Clone(list[len(list)-r.maxLen:])
	}
	r.records[rec.UserID] = list
	return nil
}

func (r *repo) ListByUser(_ context.Context, userID string, limit int) ([]model.SpinRecord, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	list := r.records[userID]
	n := min(limit, len(list))
	res := make([]model.SpinRecord, 0, max(n, 0))
	for i := len(list) - 1; i >= 0 && len(res) < n; i-- {
		res = append(res, list[i])
	}
	return res, nil
}
