package invoice

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"invoice-service/internal/pkg/patch"
)

// Invoice is the persisted aggregate. id, invoiceNumber and createdAt
// are assigned once at creation and never change afterwards.
type Invoice struct {
	id            uuid.UUID
	invoiceNumber string
	date          string
	customerName  string
	products      []LineItem
	total         float64
	createdAt     time.Time
}

// NewInvoice stamps a validated draft with identity, a sequential
// number and the creation time. The draft's total must already have
// been computed by the caller.
func NewInvoice(number string, draft Draft, total float64, createdAt time.Time) *Invoice {
	return &Invoice{
		id:            uuid.New(),
		invoiceNumber: number,
		date:          draft.Date,
		customerName:  draft.CustomerName,
		products:      draft.Products,
		total:         total,
		createdAt:     createdAt,
	}
}

func ReconstructInvoice(id uuid.UUID, number, date, customerName string, products []LineItem, total float64, createdAt time.Time) *Invoice {
	return &Invoice{
		id:            id,
		invoiceNumber: number,
		date:          date,
		customerName:  customerName,
		products:      products,
		total:         total,
		createdAt:     createdAt,
	}
}

func (inv *Invoice) ID() uuid.UUID         { return inv.id }
func (inv *Invoice) InvoiceNumber() string { return inv.invoiceNumber }
func (inv *Invoice) Date() string          { return inv.date }
func (inv *Invoice) CustomerName() string  { return inv.customerName }
func (inv *Invoice) Products() []LineItem  { return inv.products }
func (inv *Invoice) Total() float64        { return inv.total }
func (inv *Invoice) CreatedAt() time.Time  { return inv.createdAt }

// Patch lists exactly the mutable invoice fields. Identity fields
// (id, invoiceNumber, createdAt) are not representable here, so a
// merge can never overwrite them.
type Patch struct {
	Date         *string
	CustomerName *string
	Products     *[]LineItem
	Total        *float64
}

// Apply merges the patch into the invoice in place, keeping every
// field the patch leaves nil.
func (inv *Invoice) Apply(p Patch) {
	inv.date = patch.Coalesce(p.Date, inv.date)
	inv.customerName = patch.Coalesce(p.CustomerName, inv.customerName)
	inv.products = patch.Coalesce(p.Products, inv.products)
	inv.total = patch.Coalesce(p.Total, inv.total)
}

// FormatNumber renders the human-readable sequential label for the
// given counter value, e.g. 7 becomes "INVOICE-0007".
func FormatNumber(counter int) string {
	return fmt.Sprintf("INVOICE-%04d", counter)
}
