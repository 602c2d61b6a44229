package account

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered user of the invoicing app. Single-user
// ownership model: every invoice implicitly belongs to whoever is
// signed in, so the entity carries no references to other aggregates.
type Account struct {
	id           uuid.UUID
	name         string
	email        Email
	passwordHash string
	createdAt    time.Time
}

func NewAccount(name string, email Email, passwordHash string, createdAt time.Time) *Account {
	return &Account{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}
}

// ReconstructAccount rebuilds an account from persisted state without
// assigning a new identity.
func ReconstructAccount(id uuid.UUID, name string, email Email, passwordHash string, createdAt time.Time) *Account {
	return &Account{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}
}

func (a *Account) ID() uuid.UUID        { return a.id }
func (a *Account) Name() string         { return a.name }
func (a *Account) Email() Email         { return a.email }
func (a *Account) PasswordHash() string { return a.passwordHash }
func (a *Account) CreatedAt() time.Time { return a.createdAt }
