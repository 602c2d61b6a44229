package request

import (
	"invoice-service/internal/domain/invoice"
)

// SaveInvoiceRequest carries an invoice draft for create and update.
// Business rules (required fields, positive quantities and prices) are
// deliberately NOT expressed as binding tags: draft validation collects
// every violation into a field→message map, which a field-level 400
// from the binder would short-circuit.
type SaveInvoiceRequest struct {
	Date         string            `json:"date"`
	CustomerName string            `json:"customerName"`
	Products     []LineItemRequest `json:"products"`
	// Clients send the total they displayed alongside the form data.
	// It is accepted but ignored; the server recomputes it from the
	// line items, even with strict JSON decoding enabled.
	Total float64 `json:"total"`
}

type LineItemRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func (r SaveInvoiceRequest) ToDraft() invoice.Draft {
	products := make([]invoice.LineItem, len(r.Products))
	for i, item := range r.Products {
		products[i] = invoice.LineItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}
	return invoice.Draft{
		Date:         r.Date,
		CustomerName: r.CustomerName,
		Products:     products,
	}
}
