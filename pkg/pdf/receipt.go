// Package pdf renders a paginated PDF view of a till receipt. It is a
// presentation path only: the canonical receipt format is the fixed-width
// text document, and nothing here is required to round-trip.
package pdf

import (
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// Item is one sale line on the PDF receipt.
type Item struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// Receipt is the logical content of the PDF rendering.
type Receipt struct {
	StoreName  string
	Date       string
	Time       string
	Employee   string
	EmployeeID string
	Currency   string
	VATRate    decimal.Decimal
	Items      []Item
	Total      decimal.Decimal
}

// Subtotal derives the ex-VAT amount from the VAT-inclusive total as
// total / (1 + rate). The ledger uses its own formula; this one is kept
// for the PDF layout only.
func (r *Receipt) Subtotal() decimal.Decimal {
	return r.Total.Div(decimal.NewFromInt(1).Add(r.VATRate))
}

// VAT is the tax portion of the total under the inclusive convention.
func (r *Receipt) VAT() decimal.Decimal {
	return r.Total.Sub(r.Subtotal())
}

// RenderFile renders the receipt PDF to the given path.
func RenderFile(r *Receipt, path string) error {
	doc := build(r)
	return doc.OutputFileAndClose(path)
}

// Render writes the receipt PDF to w.
func Render(r *Receipt, w io.Writer) error {
	doc := build(r)
	return doc.Output(w)
}

func build(r *Receipt) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()
	// Core fonts are cp1252; currency symbols need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Title block
	pdf.SetFont("Arial", "", 24)
	pdf.Ln(10)
	pdf.CellFormat(0, 15, tr(r.StoreName+" Receipt"), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 18)
	pdf.CellFormat(0, 15, "Simple VAT Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Date, time and cashier
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, "Date: "+r.Date, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, "Time: "+r.Time, "", 1, "L", false, 0, "")
	pdf.Ln(5)
	pdf.CellFormat(0, 8, "Cashier Information", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, tr("Employee: "+r.Employee), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, tr("Employee ID: "+r.EmployeeID), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Items table
	colWidths := [4]float64{90, 30, 30, 40}
	rowHeight := 8.0
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(colWidths[0], rowHeight, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colWidths[1], rowHeight, "Price", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colWidths[2], rowHeight, "Qty", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colWidths[3], rowHeight, "Total", "1", 1, "L", true, 0, "")

	for _, item := range r.Items {
		name := item.Name
		if len(name) > 35 {
			name = name[:35]
		}
		pdf.CellFormat(colWidths[0], rowHeight, tr(name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], rowHeight, tr(r.Currency+item.UnitPrice.StringFixed(2)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], rowHeight, strconv.Itoa(item.Quantity), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[3], rowHeight, tr(r.Currency+item.Total.StringFixed(2)), "1", 1, "L", false, 0, "")
	}

	// Summary table
	pdf.Ln(5)
	summaryWidth := 140.0
	amountWidth := 50.0
	rowHeight = 10.0

	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(summaryWidth, rowHeight, "Summary", "1", 0, "L", true, 0, "")
	pdf.CellFormat(amountWidth, rowHeight, "Amount", "1", 1, "L", true, 0, "")

	vatLabel := "VAT (" + r.VATRate.Mul(decimal.NewFromInt(100)).String() + "%)"
	pdf.CellFormat(summaryWidth, rowHeight, "Subtotal", "1", 0, "L", false, 0, "")
	pdf.CellFormat(amountWidth, rowHeight, tr(r.Currency+r.Subtotal().StringFixed(2)), "1", 1, "L", false, 0, "")
	pdf.CellFormat(summaryWidth, rowHeight, vatLabel, "1", 0, "L", false, 0, "")
	pdf.CellFormat(amountWidth, rowHeight, tr(r.Currency+r.VAT().StringFixed(2)), "1", 1, "L", false, 0, "")

	pdf.SetFillColor(230, 230, 250)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(summaryWidth, rowHeight, "Total", "1", 0, "L", true, 0, "")
	pdf.CellFormat(amountWidth, rowHeight, tr(r.Currency+r.Total.StringFixed(2)), "1", 1, "L", true, 0, "")

	// Footer
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, "Thank you for shopping with us", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 8, "We hope you have a great day", "", 1, "C", false, 0, "")

	return pdf
}
