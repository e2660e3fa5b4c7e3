package repository

import (
	"context"

	"github.com/sangkips/till-pos/internal/domain/entity"
)

// ProductRepository defines the interface for the till catalog.
// GetByName returns (nil, nil) for unknown items.
type ProductRepository interface {
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	List(ctx context.Context, category string) ([]entity.Product, error)
	Categories(ctx context.Context) ([]string, error)
}
