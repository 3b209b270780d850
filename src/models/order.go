package models

import (
	"time"

	"rms/src/types"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID          uint              `gorm:"primarykey" json:"id"`
	ReferenceID string            `gorm:"uniqueIndex" json:"reference_id,omitempty"`
	UserID      uint              `json:"user_id,omitempty"`
	TableID     *uint             `json:"table_id,omitempty"`
	Status      types.OrderStatus `gorm:"default:'PENDING'" json:"status"`
	TotalAmount decimal.Decimal   `gorm:"type:numeric(10,2)" json:"total_amount"`
	PlacedAt    time.Time         `gorm:"autoCreateTime" json:"placed_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	User  *User       `json:"user,omitempty"`
	Table *Table      `json:"table,omitempty"`
	Lines []OrderLine `gorm:"constraint:OnDelete:CASCADE" json:"lines,omitempty"`
}

type OrderLine struct {
	ID         uint            `gorm:"primarykey" json:"id"`
	OrderID    uint            `gorm:"uniqueIndex:order_line_item" json:"order_id,omitempty"`
	MenuItemID uint            `gorm:"uniqueIndex:order_line_item" json:"menu_item_id"`
	Quantity   uint            `json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(8,2)" json:"unit_price"`

	MenuItem MenuItem `json:"menu_item,omitempty"`
}

// LineTotal multiplies the price captured at order time by the quantity,
// so a later menu price change never rewrites historical totals.
func (l *OrderLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
