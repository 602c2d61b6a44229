package invoice

import (
	"errors"
	"fmt"
	"time"
)

// Validation messages shown next to the offending form field.
const (
	msgCustomerNameRequired = "Customer name is required"
	msgDateRequired         = "Date is required"
	msgProductNameRequired  = "Product name is required"
	msgQuantityPositive     = "Quantity must be greater than 0"
	msgPricePositive        = "Price must be greater than 0"
	msgProductsRequired     = "At least one product is required"
)

// DateLayout is the calendar-date format carried on invoices.
const DateLayout = "2006-01-02"

var ErrLastLineItem = errors.New("an invoice must keep at least one line item")

// Draft is an in-progress, unvalidated invoice produced by the form
// before save. It has no identity; the store assigns one on create.
type Draft struct {
	Date         string     `json:"date"`
	CustomerName string     `json:"customerName"`
	Products     []LineItem `json:"products"`
}

// NewDraft returns the form's initial state: today's date and a single
// default line item row.
func NewDraft(now time.Time) Draft {
	return Draft{
		Date:         now.Format(DateLayout),
		CustomerName: "",
		Products:     []LineItem{NewLineItem()},
	}
}

// Total sums the line item subtotals. It is recomputed at save time and
// attached to the draft; the stored total is never independently mutable.
func (d Draft) Total() float64 {
	var total float64
	for _, item := range d.Products {
		total += item.Subtotal()
	}
	return total
}

// Validate runs every check and collects all violations keyed by field
// path, never stopping at the first. The draft is valid iff the result
// is empty.
func (d Draft) Validate() map[string]string {
	errs := make(map[string]string)

	if d.CustomerName == "" {
		errs["customerName"] = msgCustomerNameRequired
	}
	if d.Date == "" {
		errs["date"] = msgDateRequired
	}
	if len(d.Products) == 0 {
		errs["products"] = msgProductsRequired
	}

	for i, item := range d.Products {
		if item.Name == "" {
			errs[fmt.Sprintf("product_%d_name", i)] = msgProductNameRequired
		}
		if item.Quantity <= 0 {
			errs[fmt.Sprintf("product_%d_quantity", i)] = msgQuantityPositive
		}
		if item.Price <= 0 {
			errs[fmt.Sprintf("product_%d_price", i)] = msgPricePositive
		}
	}

	return errs
}

// AppendLineItem adds a default row to the end of the product list.
func (d *Draft) AppendLineItem() {
	d.Products = append(d.Products, NewLineItem())
}

// RemoveLineItem deletes the row at index i. The last remaining row
// cannot be removed; the form always keeps at least one.
func (d *Draft) RemoveLineItem(i int) error {
	if i < 0 || i >= len(d.Products) {
		return fmt.Errorf("line item index %d out of range", i)
	}
	if len(d.Products) == 1 {
		return ErrLastLineItem
	}
	d.Products = append(d.Products[:i], d.Products[i+1:]...)
	return nil
}
