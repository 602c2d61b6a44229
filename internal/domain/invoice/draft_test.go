//go:build unit

package invoice_test

import (
	"testing"
	"time"

	"invoice-service/internal/domain/invoice"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() invoice.Draft {
	return invoice.Draft{
		Date:         "2025-06-01",
		CustomerName: "ACME Corp",
		Products: []invoice.LineItem{
			{Name: "Widget", Quantity: 2, Price: 10.5},
			{Name: "Gadget", Quantity: 1, Price: 5},
		},
	}
}

func TestDraftValidate(t *testing.T) {
	t.Run("valid draft produces an empty error map", func(t *testing.T) {
		assert.Empty(t, validDraft().Validate())
	})

	t.Run("collects every violation, not just the first", func(t *testing.T) {
		draft := invoice.Draft{
			Date:         "",
			CustomerName: "",
			Products: []invoice.LineItem{
				{Name: "", Quantity: 0, Price: 0},
			},
		}

		expected := map[string]string{
			"customerName":       "Customer name is required",
			"date":               "Date is required",
			"product_0_name":     "Product name is required",
			"product_0_quantity": "Quantity must be greater than 0",
			"product_0_price":    "Price must be greater than 0",
		}
		if diff := cmp.Diff(expected, draft.Validate()); diff != "" {
			t.Errorf("validation errors mismatch (-expected +actual):\n%s", diff)
		}
	})

	t.Run("field keys carry the line item index", func(t *testing.T) {
		draft := validDraft()
		draft.Products = append(draft.Products, invoice.LineItem{Name: "Bolt", Quantity: -3, Price: 1})

		errs := draft.Validate()
		assert.Equal(t, map[string]string{
			"product_2_quantity": "Quantity must be greater than 0",
		}, errs)
	})

	t.Run("zero and negative are both rejected for quantity and price", func(t *testing.T) {
		cases := []struct {
			name string
			item invoice.LineItem
			keys []string
		}{
			{"zero quantity", invoice.LineItem{Name: "a", Quantity: 0, Price: 1}, []string{"product_0_quantity"}},
			{"negative quantity", invoice.LineItem{Name: "a", Quantity: -1, Price: 1}, []string{"product_0_quantity"}},
			{"zero price", invoice.LineItem{Name: "a", Quantity: 1, Price: 0}, []string{"product_0_price"}},
			{"negative price", invoice.LineItem{Name: "a", Quantity: 1, Price: -0.5}, []string{"product_0_price"}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				draft := validDraft()
				draft.Products = []invoice.LineItem{tc.item}
				errs := draft.Validate()
				require.Len(t, errs, len(tc.keys))
				for _, key := range tc.keys {
					assert.Contains(t, errs, key)
				}
			})
		}
	})

	t.Run("a draft without line items is invalid", func(t *testing.T) {
		draft := validDraft()
		draft.Products = nil
		assert.Contains(t, draft.Validate(), "products")
	})
}

func TestDraftTotal(t *testing.T) {
	t.Run("sums quantity times price over all items", func(t *testing.T) {
		assert.InDelta(t, 26.0, validDraft().Total(), 1e-9)
	})

	t.Run("non-positive items contribute nothing", func(t *testing.T) {
		draft := invoice.Draft{
			Products: []invoice.LineItem{
				{Name: "free sample", Quantity: 3, Price: 0},
				{Name: "widget", Quantity: 1, Price: 7.25},
			},
		}
		assert.InDelta(t, 7.25, draft.Total(), 1e-9)
	})
}

func TestLineItemSubtotal(t *testing.T) {
	assert.InDelta(t, 21.0, invoice.LineItem{Name: "w", Quantity: 2, Price: 10.5}.Subtotal(), 1e-9)
	assert.Zero(t, invoice.LineItem{Name: "w", Quantity: 0, Price: 10.5}.Subtotal())
	assert.Zero(t, invoice.LineItem{Name: "w", Quantity: 2, Price: -1}.Subtotal())
}

func TestNewDraft(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	draft := invoice.NewDraft(now)

	assert.Equal(t, "2025-06-15", draft.Date)
	assert.Empty(t, draft.CustomerName)
	require.Len(t, draft.Products, 1)
	assert.Equal(t, invoice.LineItem{Name: "", Quantity: 1, Price: 0}, draft.Products[0])
}

func TestDraftLineItemEditing(t *testing.T) {
	t.Run("append adds a default row", func(t *testing.T) {
		draft := invoice.NewDraft(time.Now())
		draft.AppendLineItem()

		require.Len(t, draft.Products, 2)
		assert.Equal(t, invoice.NewLineItem(), draft.Products[1])
	})

	t.Run("remove deletes the row at the index", func(t *testing.T) {
		draft := validDraft()
		require.NoError(t, draft.RemoveLineItem(0))

		require.Len(t, draft.Products, 1)
		assert.Equal(t, "Gadget", draft.Products[0].Name)
	})

	t.Run("the last remaining row cannot be removed", func(t *testing.T) {
		draft := invoice.NewDraft(time.Now())
		err := draft.RemoveLineItem(0)

		assert.ErrorIs(t, err, invoice.ErrLastLineItem)
		assert.Len(t, draft.Products, 1)
	})

	t.Run("out of range index is rejected", func(t *testing.T) {
		draft := validDraft()
		assert.Error(t, draft.RemoveLineItem(5))
		assert.Error(t, draft.RemoveLineItem(-1))
	})
}
