package repository

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/sangkips/till-pos/internal/domain/entity"
	domainRepo "github.com/sangkips/till-pos/internal/domain/repository"
	"github.com/sangkips/till-pos/pkg/apperror"
)

type receiptRepository struct {
	dir      string
	currency string
	logger   *log.Logger
}

// NewReceiptRepository opens the receipt archive rooted at dir, creating
// the directory if needed. currency is the symbol receipts were rendered
// with; the listing parser uses it to find amounts.
func NewReceiptRepository(dir, currency string, logger *log.Logger) (domainRepo.ReceiptRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperror.NewIOError("Failed to create receipts directory", err)
	}
	return &receiptRepository{dir: dir, currency: currency, logger: logger}, nil
}

func (r *receiptRepository) Save(ctx context.Context, filename, content string) (string, error) {
	path := filepath.Join(r.dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", apperror.NewIOError("Failed to save receipt to history", err)
	}
	return path, nil
}

func (r *receiptRepository) List(ctx context.Context) ([]entity.ArchiveEntry, error) {
	dirEntries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, apperror.NewIOError("Failed to read receipts directory", err)
	}

	names := make([]string, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		names = append(names, de.Name())
	}
	// The timestamp in the filename is the sort key: reverse name order
	// puts the most recent receipt first.
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	entries := make([]entity.ArchiveEntry, 0, len(names))
	for _, name := range names {
		date, clock, ok := entity.ParseReceiptFilename(name)
		if !ok {
			continue
		}
		content, err := os.ReadFile(filepath.Join(r.dir, name))
		if err != nil {
			r.logger.WithError(err).WithField("file", name).Warn("skipping unreadable receipt")
			continue
		}
		cashier, total := r.parseContent(string(content))
		entries = append(entries, entity.ArchiveEntry{
			Date:     date,
			Time:     clock,
			Cashier:  cashier,
			Total:    total,
			Filename: name,
		})
	}
	return entries, nil
}

// parseContent extracts the cashier name and grand total by line-prefix
// scanning. The total check is a containment match; if several lines
// match, the last one wins, which is the grand total on well-formed
// receipts.
func (r *receiptRepository) parseContent(content string) (string, decimal.Decimal) {
	cashier := "Unknown"
	total := decimal.Zero

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "Employee: "); ok {
			cashier = strings.TrimSpace(rest)
		} else if strings.Contains(line, "Total:") {
			idx := strings.LastIndex(line, r.currency)
			if idx < 0 {
				continue
			}
			amount := strings.TrimSpace(line[idx+len(r.currency):])
			if v, err := decimal.NewFromString(amount); err == nil {
				total = v
			}
		}
	}
	return cashier, total
}

func (r *receiptRepository) Get(ctx context.Context, filename string) (string, error) {
	content, err := os.ReadFile(filepath.Join(r.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return "", apperror.NewNotFoundError("Receipt")
		}
		return "", apperror.NewIOError("Failed to read receipt", err)
	}
	return string(content), nil
}

func (r *receiptRepository) Delete(ctx context.Context, filename string) error {
	if err := os.Remove(filepath.Join(r.dir, filename)); err != nil {
		if os.IsNotExist(err) {
			return apperror.NewNotFoundError("Receipt")
		}
		return apperror.NewIOError("Failed to delete receipt", err)
	}
	return nil
}
