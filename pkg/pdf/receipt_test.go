package pdf

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func sampleReceipt() *Receipt {
	return &Receipt{
		StoreName:  "Supermarket Till",
		Date:       "2024-05-01",
		Time:       "13:45:10",
		Employee:   "Administrator",
		EmployeeID: "admin",
		Currency:   "£",
		VATRate:    decimal.RequireFromString("0.20"),
		Items: []Item{
			{Name: "Apple", Quantity: 3, UnitPrice: decimal.RequireFromString("2.50"), Total: decimal.RequireFromString("7.50")},
		},
		Total: decimal.RequireFromString("7.50"),
	}
}

func TestSubtotalAndVAT(t *testing.T) {
	r := sampleReceipt()
	if got := r.Subtotal().StringFixed(2); got != "6.25" {
		t.Fatalf("subtotal = %s, want total/(1+rate) = 6.25", got)
	}
	if got := r.VAT().StringFixed(2); got != "1.25" {
		t.Fatalf("vat = %s, want 1.25", got)
	}
	sum := r.Subtotal().Add(r.VAT())
	if !sum.Equal(r.Total) {
		t.Fatalf("subtotal + vat = %s, want the total %s", sum, r.Total)
	}
}

func TestRenderProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(sampleReceipt(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Fatal("output does not start with a PDF header")
	}
	if buf.Len() < 500 {
		t.Fatalf("output is %d bytes, implausibly small", buf.Len())
	}
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := RenderFile(sampleReceipt(), path); err != nil {
		t.Fatalf("render file: %v", err)
	}
}

func TestRenderTruncatesLongNames(t *testing.T) {
	r := sampleReceipt()
	r.Items = append(r.Items, Item{
		Name:      strings.Repeat("Very Long Product Name ", 5),
		Quantity:  1,
		UnitPrice: decimal.RequireFromString("1.00"),
		Total:     decimal.RequireFromString("1.00"),
	})
	var buf bytes.Buffer
	if err := Render(r, &buf); err != nil {
		t.Fatalf("render with long name: %v", err)
	}
}
