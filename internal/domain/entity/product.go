package entity

import "github.com/shopspring/decimal"

// Product categories available on the till.
const (
	CategoryFruits     = "Fruits"
	CategoryVegetables = "Vegetables"
)

// Product represents an item in the static till catalog
type Product struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}
