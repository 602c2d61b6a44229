package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"invoice-service/internal/domain/invoice"
	"invoice-service/internal/infra/state"
	"invoice-service/internal/pkg/clock"
	"invoice-service/internal/pkg/errs"
)

// InvoiceRepository is the invoice store: an ordered collection plus
// the monotonic invoice-number counter, seeded at 1. The counter never
// reuses a number, even after deletions.
type InvoiceRepository struct {
	mu          sync.Mutex
	store       state.Store
	clock       clock.Clock
	invoices    []*invoice.Invoice
	nextCounter int
}

func NewInvoiceRepository(ctx context.Context, store state.Store, clk clock.Clock) (*InvoiceRepository, error) {
	rec, err := store.LoadInvoices(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load invoice state")
	}

	repo := &InvoiceRepository{store: store, clock: clk, nextCounter: 1}
	if rec == nil {
		return repo, nil
	}

	repo.invoices = make([]*invoice.Invoice, len(rec.Invoices))
	for i, snap := range rec.Invoices {
		repo.invoices[i] = invoiceFromSnapshot(snap)
	}
	if rec.NextInvoiceNumber > 0 {
		repo.nextCounter = rec.NextInvoiceNumber
	}
	return repo, nil
}

// Create stamps the validated draft with identity, the next sequential
// number and the creation time, appends it in insertion order and
// advances the counter.
func (r *InvoiceRepository) Create(ctx context.Context, draft invoice.Draft, total float64) (*invoice.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv := invoice.NewInvoice(invoice.FormatNumber(r.nextCounter), draft, total, r.clock.Now())
	invoices := append(append([]*invoice.Invoice{}, r.invoices...), inv)

	if err := r.persist(ctx, invoices, r.nextCounter+1); err != nil {
		return nil, err
	}

	r.invoices = invoices
	r.nextCounter++
	return inv, nil
}

// Update merges the patch into the stored invoice. Identity fields are
// untouchable by construction of invoice.Patch. Validation is the
// caller's responsibility.
func (r *InvoiceRepository) Update(ctx context.Context, id uuid.UUID, p invoice.Patch) (*invoice.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOfLocked(id)
	if idx < 0 {
		return nil, errs.ErrInvoiceNotFound
	}

	updated := invoice.ReconstructInvoice(
		r.invoices[idx].ID(),
		r.invoices[idx].InvoiceNumber(),
		r.invoices[idx].Date(),
		r.invoices[idx].CustomerName(),
		r.invoices[idx].Products(),
		r.invoices[idx].Total(),
		r.invoices[idx].CreatedAt(),
	)
	updated.Apply(p)

	invoices := append([]*invoice.Invoice{}, r.invoices...)
	invoices[idx] = updated

	if err := r.persist(ctx, invoices, r.nextCounter); err != nil {
		return nil, err
	}

	r.invoices = invoices
	return updated, nil
}

// Delete removes the invoice if present. Deleting an absent id is a
// no-op, not an error, and leaves the collection unchanged.
func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOfLocked(id)
	if idx < 0 {
		return nil
	}

	invoices := append([]*invoice.Invoice{}, r.invoices...)
	invoices = append(invoices[:idx], invoices[idx+1:]...)

	if err := r.persist(ctx, invoices, r.nextCounter); err != nil {
		return err
	}

	r.invoices = invoices
	return nil
}

func (r *InvoiceRepository) FindByID(id uuid.UUID) (*invoice.Invoice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOfLocked(id)
	if idx < 0 {
		return nil, false
	}
	return r.invoices[idx], true
}

// List returns the collection in insertion order.
func (r *InvoiceRepository) List() []*invoice.Invoice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*invoice.Invoice{}, r.invoices...)
}

func (r *InvoiceRepository) indexOfLocked(id uuid.UUID) int {
	for i, inv := range r.invoices {
		if inv.ID() == id {
			return i
		}
	}
	return -1
}

func (r *InvoiceRepository) persist(ctx context.Context, invoices []*invoice.Invoice, nextCounter int) error {
	rec := &state.InvoicesRecord{
		Invoices:          make([]state.InvoiceSnapshot, len(invoices)),
		NextInvoiceNumber: nextCounter,
	}
	for i, inv := range invoices {
		rec.Invoices[i] = invoiceToSnapshot(inv)
	}

	if err := r.store.SaveInvoices(ctx, rec); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to save invoice state"), errs.ErrStateOperationFailed)
	}
	return nil
}
