package models

import (
	"rms/src/types"
)

// InventoryItem is the stock ledger entry for a menu item. Quantity is
// never mutated directly; see common.IncreaseStock / common.DecreaseStock,
// which keep the quantity >= 0 invariant.
type InventoryItem struct {
	ID         uint `gorm:"primarykey" json:"id"`
	MenuItemID uint `gorm:"uniqueIndex" json:"menu_item_id"`
	Quantity   int  `gorm:"default:0" json:"quantity"`
	Threshold  int  `gorm:"default:5" json:"threshold"`

	MenuItem MenuItem `json:"menu_item,omitempty"`

	types.Timestamps
}
