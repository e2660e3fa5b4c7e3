package entity

import "github.com/shopspring/decimal"

// LineItem represents a single line on the active sale
type LineItem struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// NewLineItem builds a line item with its total computed in exact decimal
// arithmetic (unit price times quantity, never floats).
func NewLineItem(name string, unitPrice decimal.Decimal, quantity int) LineItem {
	return LineItem{
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Total:     unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// Totals holds the computed sale amounts. VAT is treated as already
// included in displayed unit prices: total is the sum of line totals,
// vat = total * rate, subtotal = total - vat.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	VAT      decimal.Decimal `json:"vat"`
	Total    decimal.Decimal `json:"total"`
}

// Sale is the in-memory ledger of line items for the transaction
// currently being built. It exists per session and is never persisted;
// the Receipt snapshot taken at checkout is what survives.
type Sale struct {
	items   []LineItem
	vatRate decimal.Decimal
}

// NewSale creates an empty ledger with the given VAT rate (e.g. 0.20).
func NewSale(vatRate decimal.Decimal) *Sale {
	return &Sale{vatRate: vatRate}
}

// Add appends a line item to the ledger.
func (s *Sale) Add(item LineItem) {
	s.items = append(s.items, item)
}

// Remove deletes the line item at index. Out-of-range indexes are a no-op
// and return false.
func (s *Sale) Remove(index int) bool {
	if index < 0 || index >= len(s.items) {
		return false
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return true
}

// Clear empties the ledger unconditionally.
func (s *Sale) Clear() {
	s.items = nil
}

// Items returns a copy of the current line items.
func (s *Sale) Items() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of line items.
func (s *Sale) Len() int {
	return len(s.items)
}

// VATRate returns the configured VAT rate.
func (s *Sale) VATRate() decimal.Decimal {
	return s.vatRate
}

// Totals computes subtotal, VAT and total for the current ledger.
func (s *Sale) Totals() Totals {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Total)
	}
	vat := total.Mul(s.vatRate)
	return Totals{
		Subtotal: total.Sub(vat),
		VAT:      vat,
		Total:    total,
	}
}
