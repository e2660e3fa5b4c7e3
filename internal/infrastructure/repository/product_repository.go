package repository

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sangkips/till-pos/internal/domain/entity"
	domainRepo "github.com/sangkips/till-pos/internal/domain/repository"
)

type productRepository struct {
	products map[string]entity.Product
}

// NewProductRepository creates the static till catalog. Prices are
// VAT-inclusive, as displayed on the shelf.
func NewProductRepository() domainRepo.ProductRepository {
	products := []entity.Product{
		{Name: "Apple", Price: price("2.50"), Category: entity.CategoryFruits},
		{Name: "Orange", Price: price("1.80"), Category: entity.CategoryFruits},
		{Name: "Banana", Price: price("1.20"), Category: entity.CategoryFruits},
		{Name: "Grapes", Price: price("3.50"), Category: entity.CategoryFruits},
		{Name: "Strawberries", Price: price("4.00"), Category: entity.CategoryFruits},
		{Name: "Mango", Price: price("3.00"), Category: entity.CategoryFruits},
		{Name: "Pineapple", Price: price("4.50"), Category: entity.CategoryFruits},
		{Name: "Watermelon", Price: price("6.00"), Category: entity.CategoryFruits},
		{Name: "Peach", Price: price("2.00"), Category: entity.CategoryFruits},
		{Name: "Kiwi", Price: price("1.50"), Category: entity.CategoryFruits},
		{Name: "Tomato", Price: price("1.20"), Category: entity.CategoryVegetables},
		{Name: "Cucumber", Price: price("1.00"), Category: entity.CategoryVegetables},
		{Name: "Carrot", Price: price("1.50"), Category: entity.CategoryVegetables},
		{Name: "Potato", Price: price("2.00"), Category: entity.CategoryVegetables},
		{Name: "Onion", Price: price("1.00"), Category: entity.CategoryVegetables},
		{Name: "Lettuce", Price: price("2.50"), Category: entity.CategoryVegetables},
		{Name: "Broccoli", Price: price("3.00"), Category: entity.CategoryVegetables},
		{Name: "Cauliflower", Price: price("3.50"), Category: entity.CategoryVegetables},
		{Name: "Bell Pepper", Price: price("2.00"), Category: entity.CategoryVegetables},
		{Name: "Spinach", Price: price("2.50"), Category: entity.CategoryVegetables},
	}

	m := make(map[string]entity.Product, len(products))
	for _, p := range products {
		m[p.Name] = p
	}
	return &productRepository{products: m}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (r *productRepository) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	p, ok := r.products[name]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context, category string) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *productRepository) Categories(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	for _, p := range r.products {
		seen[p.Category] = true
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}
