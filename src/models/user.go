package models

import (
	"rms/src/types"
)

type User struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Name     string `json:"name,omitempty"`
	Email    string `gorm:"uniqueIndex" json:"email,omitempty"`
	Role     string `gorm:"default:'customer'" json:"role,omitempty"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	Reservations []Reservation `gorm:"foreignKey:user_id" json:"reservations,omitempty"`
	Orders       []Order       `gorm:"foreignKey:user_id" json:"orders,omitempty"`

	types.Timestamps
}
