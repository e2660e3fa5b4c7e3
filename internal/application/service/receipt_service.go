package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/sangkips/till-pos/internal/domain/entity"
	"github.com/sangkips/till-pos/internal/domain/repository"
	"github.com/sangkips/till-pos/pkg/apperror"
	"github.com/sangkips/till-pos/pkg/pdf"
)

const receiptWidth = 40

// ReceiptService renders sale snapshots into the canonical text receipt
// format, persists them to the archive and reads them back.
type ReceiptService struct {
	receiptRepo repository.ReceiptRepository
	storeName   string
	currency    string
	logger      *log.Logger
}

// NewReceiptService creates a new receipt service
func NewReceiptService(receiptRepo repository.ReceiptRepository, storeName, currency string, logger *log.Logger) *ReceiptService {
	return &ReceiptService{
		receiptRepo: receiptRepo,
		storeName:   storeName,
		currency:    currency,
		logger:      logger,
	}
}

// Render lays out a receipt in the canonical fixed-width text format.
// This exact shape is what the archive parser reads back; changing it
// breaks every previously saved receipt.
func (s *ReceiptService) Render(r *entity.Receipt) string {
	var lines []string
	rule := strings.Repeat("=", receiptWidth)
	thin := strings.Repeat("-", receiptWidth)

	lines = append(lines,
		rule,
		r.StoreName+" Receipt",
		rule,
		"Date: "+r.CreatedAt.Format("2006-01-02 15:04:05"),
		"Employee: "+r.Employee,
		thin,
		"Items:",
		thin,
	)

	for _, item := range r.Items {
		lines = append(lines, fmt.Sprintf("%-30s %3d x %s%6s = %s%7s",
			item.Name, item.Quantity,
			s.currency, item.UnitPrice.StringFixed(2),
			s.currency, item.Total.StringFixed(2)))
	}

	vatLabel := fmt.Sprintf("VAT (%s%%):", r.VATRate.Mul(decimal.NewFromInt(100)))
	lines = append(lines,
		thin,
		fmt.Sprintf("%-20s %s%7s", "Subtotal:", s.currency, r.Subtotal.StringFixed(2)),
		fmt.Sprintf("%-20s %s%7s", vatLabel, s.currency, r.VAT.StringFixed(2)),
		fmt.Sprintf("%-20s %s%7s", "Total:", s.currency, r.Total.StringFixed(2)),
		rule,
		"Thank you for shopping with us!",
		rule,
	)

	return strings.Join(lines, "\n")
}

// Checkout snapshots the sale, renders and persists the receipt, and
// clears the ledger. If the write fails, the rendered receipt and text
// are still returned alongside the error so nothing shown to the cashier
// is lost, and the ledger is left intact.
func (s *ReceiptService) Checkout(ctx context.Context, sale *entity.Sale, employee, employeeID string, at time.Time) (*entity.Receipt, string, string, error) {
	if sale.Len() == 0 {
		return nil, "", "", apperror.NewValidationError("No items to complete sale")
	}

	receipt := entity.NewReceipt(s.storeName, sale, employee, employeeID, at)
	text := s.Render(receipt)

	path, err := s.receiptRepo.Save(ctx, entity.ReceiptFilename(at), text)
	if err != nil {
		s.logger.WithError(err).Error("failed to save receipt to history")
		return receipt, text, "", err
	}

	sale.Clear()
	return receipt, text, path, nil
}

// List returns the archive entries, newest first.
func (s *ReceiptService) List(ctx context.Context) ([]entity.ArchiveEntry, error) {
	return s.receiptRepo.List(ctx)
}

// View returns the raw text of the receipt saved at the given display
// date (YYYY-MM-DD) and time (HH:MM:SS).
func (s *ReceiptService) View(ctx context.Context, date, clock string) (string, error) {
	return s.receiptRepo.Get(ctx, entity.ArchiveFilename(date, clock))
}

// Delete removes the archived receipt for the given display date and time.
func (s *ReceiptService) Delete(ctx context.Context, date, clock string) error {
	return s.receiptRepo.Delete(ctx, entity.ArchiveFilename(date, clock))
}

// ExportPDF writes an independently laid-out PDF rendering of the receipt
// to path. The PDF recomputes its subtotal from the total and VAT rate;
// it is a presentation path and does not touch the text archive.
func (s *ReceiptService) ExportPDF(r *entity.Receipt, path string) error {
	doc := &pdf.Receipt{
		StoreName:  r.StoreName,
		Date:       r.CreatedAt.Format("2006-01-02"),
		Time:       r.CreatedAt.Format("15:04:05"),
		Employee:   r.Employee,
		EmployeeID: r.EmployeeID,
		Currency:   s.currency,
		VATRate:    r.VATRate,
		Total:      r.Total,
	}
	for _, item := range r.Items {
		doc.Items = append(doc.Items, pdf.Item{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		})
	}
	if err := pdf.RenderFile(doc, path); err != nil {
		return apperror.NewIOError("Failed to save receipt PDF", err)
	}
	return nil
}
