package repository

import (
	"context"

	"github.com/sangkips/till-pos/internal/domain/entity"
)

// ReceiptRepository defines the interface for the receipt archive:
// one UTF-8 text file per checkout under the receipts directory.
type ReceiptRepository interface {
	// Save writes content to filename and returns the full path.
	Save(ctx context.Context, filename, content string) (string, error)
	// List scans the archive and returns entries newest first.
	// Files that cannot be read or named outside the receipt pattern
	// are skipped with a logged warning.
	List(ctx context.Context) ([]entity.ArchiveEntry, error)
	// Get returns the raw text of an archived receipt.
	Get(ctx context.Context, filename string) (string, error)
	// Delete removes an archived receipt file.
	Delete(ctx context.Context, filename string) error
}
