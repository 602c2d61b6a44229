package repository

import (
	"invoice-service/internal/domain/account"
	"invoice-service/internal/domain/invoice"
	"invoice-service/internal/infra/state"
)

func accountToRecord(a *account.Account) state.AccountRecord {
	return state.AccountRecord{
		ID:           a.ID(),
		Name:         a.Name(),
		Email:        a.Email().Value(),
		PasswordHash: a.PasswordHash(),
		CreatedAt:    a.CreatedAt(),
	}
}

func accountFromRecord(rec state.AccountRecord) (*account.Account, error) {
	email, err := account.NewEmail(rec.Email)
	if err != nil {
		return nil, err
	}
	return account.ReconstructAccount(rec.ID, rec.Name, email, rec.PasswordHash, rec.CreatedAt), nil
}

func invoiceToSnapshot(inv *invoice.Invoice) state.InvoiceSnapshot {
	products := make([]state.LineItemRecord, len(inv.Products()))
	for i, item := range inv.Products() {
		products[i] = state.LineItemRecord{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}
	return state.InvoiceSnapshot{
		ID:            inv.ID(),
		InvoiceNumber: inv.InvoiceNumber(),
		Date:          inv.Date(),
		CustomerName:  inv.CustomerName(),
		Products:      products,
		Total:         inv.Total(),
		CreatedAt:     inv.CreatedAt(),
	}
}

func invoiceFromSnapshot(snap state.InvoiceSnapshot) *invoice.Invoice {
	products := make([]invoice.LineItem, len(snap.Products))
	for i, rec := range snap.Products {
		products[i] = invoice.LineItem{
			Name:     rec.Name,
			Quantity: rec.Quantity,
			Price:    rec.Price,
		}
	}
	return invoice.ReconstructInvoice(
		snap.ID,
		snap.InvoiceNumber,
		snap.Date,
		snap.CustomerName,
		products,
		snap.Total,
		snap.CreatedAt,
	)
}
