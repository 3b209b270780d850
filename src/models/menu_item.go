package models

import (
	"rms/src/types"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	Name        string          `gorm:"uniqueIndex" json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:numeric(8,2)" json:"price"`
	IsActive    bool            `gorm:"default:true" json:"is_active"`

	Inventory *InventoryItem `gorm:"constraint:OnDelete:CASCADE" json:"inventory,omitempty"`

	types.Timestamps
}
