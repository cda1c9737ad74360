package store

import (
	"context"
	"errors"
	"sync"

	"github.com/shandysiswandi/gobank/internal/pkg/pkgerror"
	"golang.org/x/crypto/bcrypt"
)

// CredentialStore keeps bcrypt hashes of enrolled secrets for the lifetime
// of the process.
type CredentialStore struct {
	mu     sync.RWMutex
	cost   int
	hashes map[string][]byte
}

// NewCredentialStore returns an empty store hashing with cost. Out-of-range
// costs fall back to bcrypt.DefaultCost.
func NewCredentialStore(cost int) *CredentialStore {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &CredentialStore{
		cost:   cost,
		hashes: make(map[string][]byte),
	}
}

// Enroll stores the secret for id. An id can be enrolled once.
func (s *CredentialStore) Enroll(ctx context.Context, id, secret string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), s.cost)
	if err != nil {
		return pkgerror.NewServer(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.hashes[id]; exists {
		return pkgerror.NewBusiness("credentials already enrolled", pkgerror.CodeConflict)
	}
	s.hashes[id] = hash

	return nil
}

// Verify reports whether secret matches the enrolled one for id. Unknown ids
// return pkgerror.ErrNotFound.
func (s *CredentialStore) Verify(ctx context.Context, id, secret string) (bool, error) {
	s.mu.RLock()
	hash, ok := s.hashes[id]
	s.mu.RUnlock()
	if !ok {
		return false, pkgerror.ErrNotFound
	}

	err := bcrypt.CompareHashAndPassword(hash, []byte(secret))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, pkgerror.NewServer(err)
	}

	return true, nil
}
