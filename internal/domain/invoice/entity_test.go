//go:build unit

package invoice_test

import (
	"testing"
	"time"

	"invoice-service/internal/domain/invoice"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "INVOICE-0001", invoice.FormatNumber(1))
	assert.Equal(t, "INVOICE-0042", invoice.FormatNumber(42))
	assert.Equal(t, "INVOICE-9999", invoice.FormatNumber(9999))
	assert.Equal(t, "INVOICE-10000", invoice.FormatNumber(10000))
}

func TestNewInvoice(t *testing.T) {
	createdAt := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	draft := validDraft()

	inv := invoice.NewInvoice("INVOICE-0007", draft, draft.Total(), createdAt)

	assert.NotEqual(t, uuid.Nil, inv.ID())
	assert.Equal(t, "INVOICE-0007", inv.InvoiceNumber())
	assert.Equal(t, draft.Date, inv.Date())
	assert.Equal(t, draft.CustomerName, inv.CustomerName())
	assert.Equal(t, draft.Products, inv.Products())
	assert.InDelta(t, 26.0, inv.Total(), 1e-9)
	assert.Equal(t, createdAt, inv.CreatedAt())
}

func TestInvoiceApplyPatch(t *testing.T) {
	createdAt := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	inv := invoice.NewInvoice("INVOICE-0001", validDraft(), 26.0, createdAt)

	id := inv.ID()

	t.Run("patches only the fields that are set", func(t *testing.T) {
		name := "New Customer"
		inv.Apply(invoice.Patch{CustomerName: &name})

		assert.Equal(t, "New Customer", inv.CustomerName())
		assert.Equal(t, "2025-06-01", inv.Date())
		assert.InDelta(t, 26.0, inv.Total(), 1e-9)
	})

	t.Run("identity fields survive any patch", func(t *testing.T) {
		date := "2025-07-01"
		products := []invoice.LineItem{{Name: "Bolt", Quantity: 4, Price: 2}}
		total := 8.0
		inv.Apply(invoice.Patch{Date: &date, Products: &products, Total: &total})

		assert.Equal(t, id, inv.ID())
		assert.Equal(t, "INVOICE-0001", inv.InvoiceNumber())
		assert.Equal(t, createdAt, inv.CreatedAt())
		require.Len(t, inv.Products(), 1)
		assert.InDelta(t, 8.0, inv.Total(), 1e-9)
	})
}
