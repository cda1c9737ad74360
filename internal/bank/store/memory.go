package store

import (
	"context"
	"sync"

	"github.com/shandysiswandi/gobank/internal/bank/entity"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgerror"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*accountRecord
}

type accountRecord struct {
	mu      sync.RWMutex
	account entity.Account
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		accounts: make(map[string]*accountRecord),
	}
}

func (s *InMemoryStore) CreateAccount(ctx context.Context, account entity.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.ID]; exists {
		return pkgerror.NewBusiness("account already open", pkgerror.CodeConflict)
	}

	s.accounts[account.ID] = &accountRecord{
		account: account.Clone(),
	}

	return nil
}

// UpdateAccount runs fn on a working copy of the account and keeps the copy
// only when fn returns nil, so a rejected operation leaves no trace.
func (s *InMemoryStore) UpdateAccount(ctx context.Context, accountID string, fn func(account *entity.Account) error) error {
	rec, err := s.get(accountID)
	if err != nil {
		return err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	working := rec.account.Clone()
	if err := fn(&working); err != nil {
		return err
	}
	rec.account = working

	return nil
}

func (s *InMemoryStore) GetAccount(ctx context.Context, accountID string) (entity.Account, error) {
	rec, err := s.get(accountID)
	if err != nil {
		return entity.Account{}, err
	}

	rec.mu.RLock()
	defer rec.mu.RUnlock()

	return rec.account.Clone(), nil
}

// ListTransactions returns one page of the log in insertion order plus the
// total count. A pageSize below 1 returns the whole log.
func (s *InMemoryStore) ListTransactions(ctx context.Context, accountID string, page, pageSize int) ([]entity.Transaction, int, error) {
	rec, err := s.get(accountID)
	if err != nil {
		return nil, 0, err
	}

	rec.mu.RLock()
	defer rec.mu.RUnlock()

	all := rec.account.Transactions
	total := len(all)

	start, end := 0, total
	if pageSize > 0 {
		if page < 1 {
			page = 1
		}
		// (page-1)*pageSize may overflow int; compare first.
		start = total
		if page-1 <= (total-1)/pageSize {
			start = (page - 1) * pageSize
		}
		end = start + min(pageSize, total-start)
	}

	items := make([]entity.Transaction, end-start)
	copy(items, all[start:end])

	return items, total, nil
}

func (s *InMemoryStore) get(accountID string) (*accountRecord, error) {
	s.mu.RLock()
	rec, ok := s.accounts[accountID]
	s.mu.RUnlock()
	if !ok {
		return nil, pkgerror.ErrNotFound
	}

	return rec, nil
}
