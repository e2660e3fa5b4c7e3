package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is an immutable snapshot of a completed sale, taken at checkout.
// It is a value object, not a stored record: the canonical persisted form
// is the rendered text document in the receipts directory.
type Receipt struct {
	StoreName  string          `json:"store_name"`
	CreatedAt  time.Time       `json:"created_at"`
	Employee   string          `json:"employee"`
	EmployeeID string          `json:"employee_id"`
	Items      []LineItem      `json:"items"`
	VATRate    decimal.Decimal `json:"vat_rate"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	VAT        decimal.Decimal `json:"vat"`
	Total      decimal.Decimal `json:"total"`
}

// NewReceipt snapshots the given sale. employee is the cashier's display
// name as printed on the receipt; employeeID is their username.
func NewReceipt(storeName string, sale *Sale, employee, employeeID string, at time.Time) *Receipt {
	totals := sale.Totals()
	return &Receipt{
		StoreName:  storeName,
		CreatedAt:  at,
		Employee:   employee,
		EmployeeID: employeeID,
		Items:      sale.Items(),
		VATRate:    sale.VATRate(),
		Subtotal:   totals.Subtotal,
		VAT:        totals.VAT,
		Total:      totals.Total,
	}
}

// ArchiveEntry is one row of the receipt archive listing, reconstructed
// from a receipt file's name and content.
type ArchiveEntry struct {
	Date     string          `json:"date"` // YYYY-MM-DD
	Time     string          `json:"time"` // HH:MM:SS
	Cashier  string          `json:"cashier"`
	Total    decimal.Decimal `json:"total"`
	Filename string          `json:"filename"`
}

const (
	receiptPrefix = "receipt_"
	receiptExt    = ".txt"
)

// ReceiptFilename returns the archive filename for a receipt created at t,
// in the form receipt_YYYYMMDD_HHMMSS.txt. The timestamp doubles as the
// archive sort and lookup key.
func ReceiptFilename(t time.Time) string {
	return receiptPrefix + t.Format("20060102_150405") + receiptExt
}

// ArchiveFilename rebuilds a receipt filename from the displayed date
// (YYYY-MM-DD) and time (HH:MM:SS) of an archive entry.
func ArchiveFilename(date, clock string) string {
	d := strings.ReplaceAll(date, "-", "")
	c := strings.ReplaceAll(clock, ":", "")
	return receiptPrefix + d + "_" + c + receiptExt
}

// ParseReceiptFilename extracts the display date and time from an archive
// filename. It returns ok=false for names that do not match the
// receipt_YYYYMMDD_HHMMSS.txt pattern.
func ParseReceiptFilename(name string) (date, clock string, ok bool) {
	if !strings.HasPrefix(name, receiptPrefix) || !strings.HasSuffix(name, receiptExt) {
		return "", "", false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, receiptPrefix), receiptExt)
	if len(stamp) != 15 || stamp[8] != '_' {
		return "", "", false
	}
	d, c := stamp[:8], stamp[9:]
	for _, r := range d + c {
		if r < '0' || r > '9' {
			return "", "", false
		}
	}
	date = d[:4] + "-" + d[4:6] + "-" + d[6:]
	clock = c[:2] + ":" + c[2:4] + ":" + c[4:]
	return date, clock, true
}
