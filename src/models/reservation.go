package models

import (
	"time"

	"rms/src/types"
)

type Reservation struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `json:"user_id,omitempty"`
	TableID   uint      `gorm:"index:idx_reservations_table_start;index:idx_reservations_table_end" json:"table_id,omitempty"`
	StartTime time.Time `gorm:"index:idx_reservations_table_start" json:"start_time"`
	EndTime   time.Time `gorm:"index:idx_reservations_table_end" json:"end_time"`

	User  *User  `json:"user,omitempty"`
	Table *Table `json:"table,omitempty"`

	types.Timestamps
}
