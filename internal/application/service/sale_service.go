package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sangkips/till-pos/internal/domain/entity"
	"github.com/sangkips/till-pos/internal/domain/repository"
	"github.com/sangkips/till-pos/pkg/apperror"
)

// SaleService handles the active sale ledger: adding catalog items,
// removing lines and computing VAT-inclusive totals.
type SaleService struct {
	productRepo repository.ProductRepository
	vatRate     decimal.Decimal
}

// NewSaleService creates a new sale service
func NewSaleService(productRepo repository.ProductRepository, vatRate decimal.Decimal) *SaleService {
	return &SaleService{
		productRepo: productRepo,
		vatRate:     vatRate,
	}
}

// NewSale starts an empty ledger at the configured VAT rate.
func (s *SaleService) NewSale() *entity.Sale {
	return entity.NewSale(s.vatRate)
}

// AddItem validates the item name against the catalog and the quantity,
// then appends a line to the ledger. Validation failures are reported to
// the cashier and leave the ledger unchanged.
func (s *SaleService) AddItem(ctx context.Context, sale *entity.Sale, name string, quantity int) (entity.LineItem, error) {
	name = strings.TrimSpace(name)
	product, err := s.productRepo.GetByName(ctx, name)
	if err != nil {
		return entity.LineItem{}, err
	}
	if product == nil {
		return entity.LineItem{}, apperror.NewValidationError("Please select an item from the list")
	}
	if quantity < 1 {
		return entity.LineItem{}, apperror.NewValidationError("Quantity must be at least 1")
	}

	item := entity.NewLineItem(product.Name, product.Price, quantity)
	sale.Add(item)
	return item, nil
}

// RemoveItem removes the line at index; out-of-range is a no-op.
func (s *SaleService) RemoveItem(sale *entity.Sale, index int) bool {
	return sale.Remove(index)
}

// Clear empties the ledger.
func (s *SaleService) Clear(sale *entity.Sale) {
	sale.Clear()
}

// Totals returns subtotal, VAT and total for the ledger.
func (s *SaleService) Totals(sale *entity.Sale) entity.Totals {
	return sale.Totals()
}

// ListProducts lists catalog items, optionally filtered by category
// ("" or "All" lists everything).
func (s *SaleService) ListProducts(ctx context.Context, category string) ([]entity.Product, error) {
	return s.productRepo.List(ctx, category)
}

// Categories returns the catalog categories.
func (s *SaleService) Categories(ctx context.Context) ([]string, error) {
	return s.productRepo.Categories(ctx)
}
