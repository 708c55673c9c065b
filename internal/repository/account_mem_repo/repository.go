package account_mem_repo

import (
	"context"
	"slot_engine/internal/model"
	"slot_engine/internal/repository"
	"sync"
)

type entry struct {
	mtx sync.Mutex
	acc model.Account
}

// repo - хранилище аккаунтов в памяти. Обновления одного аккаунта идут строго по очереди,
// разные аккаунты друг друга не ждут
type repo struct {
	mtx      sync.RWMutex
	accounts map[string]*entry
}

func NewAccountRepository() repository.AccountRepository {
	return &repo{
		accounts: make(map[string]*entry),
	}
}

func (r *repo) Create(_ context.Context, acc model.Account) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.accounts[acc.UserID]; ok {
		return model.ErrAccountExists
	}
	r.accounts[acc.UserID] = &entry{acc: acc.Clone()}
	return nil
}

func (r *repo) Get(_ context.Context, userID string) (*model.Account, error) {
	e, err := r.entry(userID)
	if err != nil {
		return nil, err
	}

	e.mtx.Lock()
	defer e.mtx.Unlock()
	acc := e.acc.Clone()
	return &acc, nil
}

func (r *repo) Update(ctx context.Context, userID string, fn repository.AccountMutator) (*model.Account, error) {
	e, err := r.entry(userID)
	if err != nil {
		return nil, err
	}

	e.mtx.Lock()
	defer e.mtx.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	next := e.acc.Clone()
	if err := fn(&next); err != nil {
		return nil, err
	}
	next.Version = e.acc.Version + 1
	e.acc = next

	res := next.Clone()
	return &res, nil
}

func (r *repo) entry(userID string) (*entry, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	e, ok := r.accounts[userID]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return e, nil
}
