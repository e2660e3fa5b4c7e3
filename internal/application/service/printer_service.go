package service

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/sangkips/till-pos/internal/domain/entity"
	"github.com/sangkips/till-pos/internal/domain/repository"
	"github.com/sangkips/till-pos/pkg/printer"
)

// PrinterService formats receipts for a thermal printer and sends them.
type PrinterService struct {
	printer     printer.Printer
	receiptRepo repository.ReceiptRepository
	printerType string
	currency    string
	logger      *log.Logger
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, receiptRepo repository.ReceiptRepository, printerType, currency string, logger *log.Logger) *PrinterService {
	return &PrinterService{
		printer:     p,
		receiptRepo: receiptRepo,
		printerType: printerType,
		currency:    currency,
		logger:      logger,
	}
}

// PrinterStatus describes the configured printer.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintReceipt formats a receipt snapshot as ESC/POS and prints it.
func (s *PrinterService) PrintReceipt(r *entity.Receipt) error {
	if err := s.printer.Print(s.FormatReceipt(r)); err != nil {
		s.logger.WithError(err).Error("printer error")
		return fmt.Errorf("failed to print receipt: %w", err)
	}
	return nil
}

// PrintArchived prints a previously saved receipt by its archive date and
// time. The canonical text is printed verbatim, line by line.
func (s *PrinterService) PrintArchived(ctx context.Context, date, clock string) error {
	content, err := s.receiptRepo.Get(ctx, entity.ArchiveFilename(date, clock))
	if err != nil {
		return err
	}

	doc := printer.NewDocument(48)
	for _, line := range strings.Split(content, "\n") {
		doc.Line(line)
	}
	doc.Feed(3).Cut()

	if err := s.printer.Print(doc.Bytes()); err != nil {
		s.logger.WithError(err).Error("printer error")
		return fmt.Errorf("failed to print receipt: %w", err)
	}
	return nil
}

// FormatReceipt converts a receipt snapshot into ESC/POS bytes.
func (s *PrinterService) FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(48)

	doc.Align(printer.AlignCenter).
		Bold(true).
		DoubleSize(true).
		Line(r.StoreName).
		DoubleSize(false).
		Bold(false).
		Align(printer.AlignLeft).
		Rule('-')

	doc.Amount("Date:", r.CreatedAt.Format("2006-01-02 15:04:05")).
		Amount("Employee:", r.Employee).
		Rule('-')

	for _, item := range r.Items {
		doc.Item(item.Name, item.Quantity,
			s.currency+item.UnitPrice.StringFixed(2),
			s.currency+item.Total.StringFixed(2))
	}

	doc.Rule('-').
		Amount("Subtotal:", s.currency+r.Subtotal.StringFixed(2)).
		Amount("VAT:", s.currency+r.VAT.StringFixed(2)).
		Bold(true).
		Amount("TOTAL:", s.currency+r.Total.StringFixed(2)).
		Bold(false).
		Rule('-')

	doc.Align(printer.AlignCenter).
		Feed(1).
		Line("Thank you for shopping with us!").
		Align(printer.AlignLeft).
		Feed(3).
		Cut()

	return doc.Bytes()
}
