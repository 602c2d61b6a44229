package state

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used by tests and as a fallback
// when no persistence is configured.
type MemoryStore struct {
	mu       sync.Mutex
	auth     *AuthRecord
	invoices *InvoicesRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LoadAuth(_ context.Context) (*AuthRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth, nil
}

func (s *MemoryStore) SaveAuth(_ context.Context, rec *AuthRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = rec
	return nil
}

func (s *MemoryStore) LoadInvoices(_ context.Context) (*InvoicesRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.invoices, nil
}

func (s *MemoryStore) SaveInvoices(_ context.Context, rec *InvoicesRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = rec
	return nil
}
