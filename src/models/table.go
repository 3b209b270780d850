package models

import (
	"rms/src/types"
)

type Table struct {
	ID       uint `gorm:"primarykey" json:"id"`
	Number   uint `gorm:"uniqueIndex" json:"number"`
	Seats    uint `gorm:"default:4" json:"seats"`
	IsActive bool `gorm:"default:true" json:"is_active"`

	Reservations []Reservation `gorm:"foreignKey:table_id" json:"reservations,omitempty"`
	Orders       []Order       `gorm:"foreignKey:table_id" json:"orders,omitempty"`

	types.Timestamps
}
