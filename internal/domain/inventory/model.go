// Package inventory tracks clinic consumables and materials.
package inventory

import (
	"time"

	"github.com/google/uuid"
)

// Item maps to the inventory_items table.
type Item struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Category     string     `db:"category" json:"category"`
	Unit         string     `db:"unit" json:"unit"`
	Stock        int        `db:"stock" json:"stock"`
	ReorderLevel int        `db:"reorder_level" json:"reorder_level"`
	UnitCost     int        `db:"unit_cost" json:"unit_cost"`
	Supplier     string     `db:"supplier" json:"supplier,omitempty"`
	ExpiryDate   *time.Time `db:"expiry_date" json:"expiry_date,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// LowStock reports whether the item has fallen to its reorder level.
func (i *Item) LowStock() bool {
	return i.Stock <= i.ReorderLevel
}

// Movement is one stock adjustment, kept as an audit trail.
type Movement struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ItemID     uuid.UUID `db:"item_id" json:"item_id"`
	Delta      int       `db:"delta" json:"delta"`
	Reason     string    `db:"reason" json:"reason"`
	StockAfter int       `db:"stock_after" json:"stock_after"`
	RecordedBy string    `db:"recorded_by" json:"recorded_by"`
	RecordedAt time.Time `db:"recorded_at" json:"recorded_at"`
}
