package state

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// The application persists two independent records, mirroring the
// storage layout the front end reads back. There is deliberately no
// transactional link between them.
const (
	AuthRecordName    = "auth-storage"
	InvoiceRecordName = "invoice-storage"
)

type AccountRecord struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AuthRecord is the persisted credential-store state: all registered
// accounts plus the currently authenticated one, if any.
type AuthRecord struct {
	User            *AccountRecord  `json:"user"`
	Users           []AccountRecord `json:"users"`
	IsAuthenticated bool            `json:"isAuthenticated"`
}

type LineItemRecord struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type InvoiceSnapshot struct {
	ID            uuid.UUID        `json:"id"`
	InvoiceNumber string           `json:"invoiceNumber"`
	Date          string           `json:"date"`
	CustomerName  string           `json:"customerName"`
	Products      []LineItemRecord `json:"products"`
	Total         float64          `json:"total"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// InvoicesRecord is the persisted invoice-store state. The counter is
// monotonic and survives deletions; numbers are never reclaimed.
type InvoicesRecord struct {
	Invoices          []InvoiceSnapshot `json:"invoices"`
	NextInvoiceNumber int               `json:"nextInvoiceNumber"`
}

// Store is the snapshot persistence port: load once at start, save the
// whole record after every mutation. Load returns (nil, nil) when
// nothing has been persisted yet.
type Store interface {
	LoadAuth(ctx context.Context) (*AuthRecord, error)
	SaveAuth(ctx context.Context, rec *AuthRecord) error
	LoadInvoices(ctx context.Context) (*InvoicesRecord, error)
	SaveInvoices(ctx context.Context, rec *InvoicesRecord) error
}
