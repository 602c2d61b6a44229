package invoice

// LineItem is one product entry within an invoice. It is embedded in
// the invoice and not independently addressable.
type LineItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Subtotal is quantity times price. Not stored; derived on demand.
// Non-positive quantity or price contributes nothing: validation
// rejects such items before save, the arithmetic itself never errors.
func (li LineItem) Subtotal() float64 {
	if li.Quantity <= 0 || li.Price <= 0 {
		return 0
	}
	return float64(li.Quantity) * li.Price
}

// NewLineItem returns the default row appended while editing a draft.
func NewLineItem() LineItem {
	return LineItem{Name: "", Quantity: 1, Price: 0}
}
