package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"invoice-service/internal/domain/account"
	"invoice-service/internal/infra/state"
	"invoice-service/internal/pkg/errs"
)

// AccountRepository is the credential store: all registered accounts
// plus the single current session. State is loaded once from the
// snapshot port and saved back after every mutation; in-memory state
// is only committed once the save succeeded, so a failed operation
// leaves nothing behind.
type AccountRepository struct {
	mu       sync.Mutex
	store    state.Store
	accounts []*account.Account
	current  *uuid.UUID
}

func NewAccountRepository(ctx context.Context, store state.Store) (*AccountRepository, error) {
	rec, err := store.LoadAuth(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load auth state")
	}

	repo := &AccountRepository{store: store}
	if rec == nil {
		return repo, nil
	}

	repo.accounts = make([]*account.Account, 0, len(rec.Users))
	for _, userRec := range rec.Users {
		acc, convErr := accountFromRecord(userRec)
		if convErr != nil {
			return nil, errs.Wrap(convErr, "corrupt account in auth state")
		}
		repo.accounts = append(repo.accounts, acc)
	}
	if rec.IsAuthenticated && rec.User != nil {
		id := rec.User.ID
		repo.current = &id
	}
	return repo, nil
}

// Create registers a new account and makes it the current session in
// one persisted step (registration logs the user in immediately).
func (r *AccountRepository) Create(ctx context.Context, acc *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.Email().Value() == acc.Email().Value() {
			return errs.ErrDuplicateAccount
		}
	}

	accounts := append(append([]*account.Account{}, r.accounts...), acc)
	id := acc.ID()

	if err := r.persist(ctx, accounts, &id); err != nil {
		return err
	}

	r.accounts = accounts
	r.current = &id
	return nil
}

func (r *AccountRepository) FindByEmail(email account.Email) (*account.Account, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, acc := range r.accounts {
		if acc.Email().Value() == email.Value() {
			return acc, true
		}
	}
	return nil, false
}

func (r *AccountRepository) FindByID(id uuid.UUID) (*account.Account, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findByIDLocked(id)
}

func (r *AccountRepository) findByIDLocked(id uuid.UUID) (*account.Account, bool) {
	for _, acc := range r.accounts {
		if acc.ID() == id {
			return acc, true
		}
	}
	return nil, false
}

// SetSession marks the given account as the authenticated session.
func (r *AccountRepository) SetSession(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.findByIDLocked(id); !ok {
		return errs.ErrAccountNotFound
	}

	if err := r.persist(ctx, r.accounts, &id); err != nil {
		return err
	}
	r.current = &id
	return nil
}

// ClearSession logs the current account out. Idempotent: clearing an
// already-empty session succeeds.
func (r *AccountRepository) ClearSession(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.persist(ctx, r.accounts, nil); err != nil {
		return err
	}
	r.current = nil
	return nil
}

// CurrentSession returns the authenticated account, if any.
func (r *AccountRepository) CurrentSession() (*account.Account, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return nil, false
	}
	return r.findByIDLocked(*r.current)
}

func (r *AccountRepository) persist(ctx context.Context, accounts []*account.Account, current *uuid.UUID) error {
	rec := &state.AuthRecord{
		Users: make([]state.AccountRecord, len(accounts)),
	}
	for i, acc := range accounts {
		rec.Users[i] = accountToRecord(acc)
	}
	if current != nil {
		for _, acc := range accounts {
			if acc.ID() == *current {
				userRec := accountToRecord(acc)
				rec.User = &userRec
				rec.IsAuthenticated = true
				break
			}
		}
	}

	if err := r.store.SaveAuth(ctx, rec); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to save auth state"), errs.ErrStateOperationFailed)
	}
	return nil
}
