package inventory

import (
	"time"

	"github.com/google/uuid"
)

const (
	StockOut = "Out of Stock"
	StockLow = "Low Stock"
	StockIn  = "In Stock"

	// LowStockThreshold is the fixed boundary below which an item counts as
	// low stock.
	LowStockThreshold = 50
)

// InventoryItem maps to the inventory_item table. Stock status is derived,
// never stored.
type InventoryItem struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Stock      int       `db:"stock" json:"stock"`
	Supplier   string    `db:"supplier" json:"supplier"`
	Price      float64   `db:"price" json:"price"`
	ExpiryDate string    `db:"expiry_date" json:"expiryDate"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// StockStatus classifies a stock level: zero is out, anything under the
// threshold is low, the rest is in stock.
func StockStatus(stock int) string {
	switch {
	case stock <= 0:
		return StockOut
	case stock < LowStockThreshold:
		return StockLow
	default:
		return StockIn
	}
}
