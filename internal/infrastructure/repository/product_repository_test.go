package repository

import (
	"context"
	"sort"
	"testing"

	"github.com/sangkips/till-pos/internal/domain/entity"
)

func TestGetByName(t *testing.T) {
	repo := NewProductRepository()

	p, err := repo.GetByName(context.Background(), "Apple")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p == nil {
		t.Fatal("Apple not found in catalog")
	}
	if got := p.Price.StringFixed(2); got != "2.50" {
		t.Fatalf("Apple price = %s, want 2.50", got)
	}
	if p.Category != entity.CategoryFruits {
		t.Fatalf("Apple category = %q, want %q", p.Category, entity.CategoryFruits)
	}

	missing, err := repo.GetByName(context.Background(), "Durian")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("unknown product = %+v, want nil", missing)
	}
}

func TestListFiltersByCategory(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	fruits, err := repo.List(ctx, entity.CategoryFruits)
	if err != nil {
		t.Fatalf("list fruits: %v", err)
	}
	for _, p := range fruits {
		if p.Category != entity.CategoryFruits {
			t.Fatalf("%s listed under Fruits with category %q", p.Name, p.Category)
		}
	}

	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	veg, err := repo.List(ctx, entity.CategoryVegetables)
	if err != nil {
		t.Fatalf("list vegetables: %v", err)
	}
	if len(all) != len(fruits)+len(veg) {
		t.Fatalf("all=%d fruits=%d veg=%d, categories do not partition the catalog", len(all), len(fruits), len(veg))
	}

	if !sort.SliceIsSorted(all, func(i, j int) bool { return all[i].Name < all[j].Name }) {
		t.Fatal("listing is not sorted by name")
	}
}

func TestCategories(t *testing.T) {
	repo := NewProductRepository()
	cats, err := repo.Categories(context.Background())
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(cats) != 2 || cats[0] != entity.CategoryFruits || cats[1] != entity.CategoryVegetables {
		t.Fatalf("categories = %v, want [Fruits Vegetables]", cats)
	}
}
