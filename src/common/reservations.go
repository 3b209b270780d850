package common

import (
	"errors"
	"fmt"
	"log"
	"time"

	"rms/src/db"
	"rms/src/models"
	"rms/src/types"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CheckTableAvailability reports whether the table is free for the
// half-open slot [start, end): a persisted reservation conflicts iff its
// start is before end AND its end is after start. Back-to-back slots that
// share a boundary do not conflict. excludeID skips the reservation being
// re-validated on update.
func CheckTableAvailability(tx *gorm.DB, tableID uint, start, end time.Time, excludeID uint) (bool, error) {
	q := tx.
		Model(&models.Reservation{}).
		Where("table_id = ? AND start_time < ? AND end_time > ?", tableID, end, start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// CreateReservation books a table for the acting user. The table row is
// locked before the availability check so two concurrent requests for an
// overlapping slot serialize at the row lock instead of both passing the
// check.
func CreateReservation(userID uint, params *types.CreateReservationRequestBody, start, end time.Time) (uint, error) {
	reservation := models.Reservation{
		UserID:    userID,
		TableID:   params.TableID,
		StartTime: start,
		EndTime:   end,
	}
	dbi := db.GetDb()
	err := dbi.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(&models.Table{ID: params.TableID, IsActive: true}).
			First(&table).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("table [%d] not found", params.TableID)
			}
			return err
		}
		available, err := CheckTableAvailability(tx, table.ID, start, end, 0)
		if err != nil {
			return err
		}
		if !available {
			return fmt.Errorf("%w: table %d", ErrReservationConflict, table.Number)
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		log.Printf("CreateReservation failed: %s\n", err.Error())
		return 0, err
	}
	return reservation.ID, nil
}

// UpdateReservation re-validates the slot excluding the reservation
// itself, under the same table lock as creation.
func UpdateReservation(userID uint, id uint, params *types.CreateReservationRequestBody, start, end time.Time) error {
	dbi := db.GetDb()
	err := dbi.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.
			Where(&models.Reservation{ID: id, UserID: userID}).
			First(&reservation).
			Error; err != nil {
			return err
		}
		var table models.Table
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(&models.Table{ID: params.TableID, IsActive: true}).
			First(&table).
			Error; err != nil {
			return err
		}
		available, err := CheckTableAvailability(tx, table.ID, start, end, reservation.ID)
		if err != nil {
			return err
		}
		if !available {
			return fmt.Errorf("%w: table %d", ErrReservationConflict, table.Number)
		}
		return tx.
			Model(&models.Reservation{}).
			Where(&models.Reservation{ID: reservation.ID}).
			Updates(&models.Reservation{
				TableID:   params.TableID,
				StartTime: start,
				EndTime:   end,
			}).
			Error
	})
	if err != nil {
		log.Printf("UpdateReservation failed: %s\n", err.Error())
	}
	return err
}
