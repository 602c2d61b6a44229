package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"invoice-service/internal/domain/invoice"
	"invoice-service/internal/usecase/readmodel"
)

type InvoiceResponse struct {
	ID            uuid.UUID          `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	Date          string             `json:"date"`
	CustomerName  string             `json:"customer_name"`
	Products      []LineItemResponse `json:"products"`
	Total         float64            `json:"total"`
	CreatedAt     time.Time          `json:"created_at"`
}

type LineItemResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

type DraftResponse struct {
	Date         string             `json:"date"`
	CustomerName string             `json:"customerName"`
	Products     []LineItemResponse `json:"products"`
}

func FromInvoiceRM(rm *readmodel.InvoiceRM) *InvoiceResponse {
	var resp InvoiceResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

// FromDraft renders the form's initial state. Subtotals come from the
// line item's Subtotal method.
func FromDraft(d invoice.Draft) *DraftResponse {
	var resp DraftResponse
	_ = copier.Copy(&resp, &d)
	return &resp
}
