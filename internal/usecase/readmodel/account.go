package readmodel

import (
	"time"

	"github.com/google/uuid"

	"invoice-service/internal/domain/account"
)

// AccountRM is the authenticated-account view returned to clients.
// The password hash never leaves the domain.
type AccountRM struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAccountRM(acc *account.Account) *AccountRM {
	return &AccountRM{
		ID:        acc.ID(),
		Name:      acc.Name(),
		Email:     acc.Email().Value(),
		CreatedAt: acc.CreatedAt(),
	}
}
