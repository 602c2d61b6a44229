package usecase

import (
	"context"

	"github.com/google/uuid"

	"invoice-service/internal/domain/invoice"
	"invoice-service/internal/pkg/clock"
	"invoice-service/internal/pkg/errs"
	"invoice-service/internal/usecase/readmodel"
)

// InvoiceRepository is the invoice store contract. The store trusts
// its callers: drafts arrive validated with a precomputed total.
type InvoiceRepository interface {
	Create(ctx context.Context, draft invoice.Draft, total float64) (*invoice.Invoice, error)
	Update(ctx context.Context, id uuid.UUID, p invoice.Patch) (*invoice.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(id uuid.UUID) (*invoice.Invoice, bool)
	List() []*invoice.Invoice
}

type InvoiceUseCase interface {
	NewDraft(ctx context.Context) invoice.Draft
	CreateInvoice(ctx context.Context, draft invoice.Draft) (*readmodel.InvoiceRM, error)
	UpdateInvoice(ctx context.Context, id uuid.UUID, draft invoice.Draft) (*readmodel.InvoiceRM, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
	GetInvoice(ctx context.Context, id uuid.UUID) (*readmodel.InvoiceRM, error)
	ListInvoices(ctx context.Context) ([]*readmodel.InvoiceRM, error)
}

type invoiceUseCaseImpl struct {
	invoiceRepo InvoiceRepository
	clock       clock.Clock
}

func NewInvoiceUseCase(invoiceRepo InvoiceRepository, clk clock.Clock) InvoiceUseCase {
	return &invoiceUseCaseImpl{
		invoiceRepo: invoiceRepo,
		clock:       clk,
	}
}

// NewDraft returns the form's initial state: today's date plus one
// default line item row.
func (u *invoiceUseCaseImpl) NewDraft(_ context.Context) invoice.Draft {
	return invoice.NewDraft(u.clock.Now())
}

// CreateInvoice validates the draft, attaches the computed total and
// hands it to the store. A draft that fails validation never reaches
// the store.
func (u *invoiceUseCaseImpl) CreateInvoice(ctx context.Context, draft invoice.Draft) (*readmodel.InvoiceRM, error) {
	if fieldErrs := draft.Validate(); len(fieldErrs) > 0 {
		return nil, errs.NewValidationError(fieldErrs)
	}

	inv, err := u.invoiceRepo.Create(ctx, draft, draft.Total())
	if err != nil {
		return nil, err
	}
	return readmodel.NewInvoiceRM(inv), nil
}

// UpdateInvoice re-validates the whole draft (edits go through the same
// form) and merges only the mutable fields into the stored invoice.
func (u *invoiceUseCaseImpl) UpdateInvoice(ctx context.Context, id uuid.UUID, draft invoice.Draft) (*readmodel.InvoiceRM, error) {
	if fieldErrs := draft.Validate(); len(fieldErrs) > 0 {
		return nil, errs.NewValidationError(fieldErrs)
	}

	total := draft.Total()
	p := invoice.Patch{
		Date:         &draft.Date,
		CustomerName: &draft.CustomerName,
		Products:     &draft.Products,
		Total:        &total,
	}

	inv, err := u.invoiceRepo.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	return readmodel.NewInvoiceRM(inv), nil
}

func (u *invoiceUseCaseImpl) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	return u.invoiceRepo.Delete(ctx, id)
}

func (u *invoiceUseCaseImpl) GetInvoice(_ context.Context, id uuid.UUID) (*readmodel.InvoiceRM, error) {
	inv, ok := u.invoiceRepo.FindByID(id)
	if !ok {
		return nil, errs.ErrInvoiceNotFound
	}
	return readmodel.NewInvoiceRM(inv), nil
}

func (u *invoiceUseCaseImpl) ListInvoices(_ context.Context) ([]*readmodel.InvoiceRM, error) {
	invoices := u.invoiceRepo.List()
	result := make([]*readmodel.InvoiceRM, len(invoices))
	for i, inv := range invoices {
		result[i] = readmodel.NewInvoiceRM(inv)
	}
	return result, nil
}
