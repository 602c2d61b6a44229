package readmodel

import (
	"time"

	"github.com/google/uuid"

	"invoice-service/internal/domain/invoice"
)

type LineItemRM struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

type InvoiceRM struct {
	ID            uuid.UUID    `json:"id"`
	InvoiceNumber string       `json:"invoice_number"`
	Date          string       `json:"date"`
	CustomerName  string       `json:"customer_name"`
	Products      []LineItemRM `json:"products"`
	Total         float64      `json:"total"`
	CreatedAt     time.Time    `json:"created_at"`
}

func NewInvoiceRM(inv *invoice.Invoice) *InvoiceRM {
	products := make([]LineItemRM, len(inv.Products()))
	for i, item := range inv.Products() {
		products[i] = LineItemRM{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Subtotal: item.Subtotal(),
		}
	}
	return &InvoiceRM{
		ID:            inv.ID(),
		InvoiceNumber: inv.InvoiceNumber(),
		Date:          inv.Date(),
		CustomerName:  inv.CustomerName(),
		Products:      products,
		Total:         inv.Total(),
		CreatedAt:     inv.CreatedAt(),
	}
}
