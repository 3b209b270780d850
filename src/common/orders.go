package common

import (
	"fmt"
	"log"

	"rms/src/db"
	"rms/src/models"
	"rms/src/types"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var orderStatuses = map[types.OrderStatus]bool{
	types.ORDER_PENDING:    true,
	types.ORDER_PROCESSING: true,
	types.ORDER_COMPLETED:  true,
	types.ORDER_CANCELLED:  true,
}

// MarkOrderStatus persists the status column only.
func MarkOrderStatus(tx *gorm.DB, order *models.Order, status types.OrderStatus) error {
	if !orderStatuses[status] {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	if err := tx.
		Model(&models.Order{}).
		Where(&models.Order{ID: order.ID}).
		Update("status", status).
		Error; err != nil {
		return err
	}
	order.Status = status
	return nil
}

// RecalculateOrderTotal sums the line totals of the order's current lines
// and persists the total_amount column only. Calling it twice without
// line changes yields the same total.
func RecalculateOrderTotal(tx *gorm.DB, order *models.Order) (decimal.Decimal, error) {
	var lines []models.OrderLine
	if err := tx.
		Where(&models.OrderLine{OrderID: order.ID}).
		Find(&lines).
		Error; err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal())
	}
	total = total.Round(2)
	if err := tx.
		Model(&models.Order{}).
		Where(&models.Order{ID: order.ID}).
		Update("total_amount", total).
		Error; err != nil {
		return decimal.Zero, err
	}
	order.TotalAmount = total
	return total, nil
}

// ProcessOrder fulfills a freshly created pending order: within one
// transaction it locks every referenced stock entry in ascending menu item
// id order (the canonical lock order, so two orders touching the same two
// items cannot deadlock), validates and deducts each line's quantity, then
// recalculates the total and advances the order to PROCESSING.
//
// On any business failure the transaction rolls back in full and the order
// is marked CANCELLED in a separate transaction, so the cancellation
// itself survives the rollback. The originating error is returned.
func ProcessOrder(order *models.Order) error {
	dbi := db.GetDb()
	ferr := dbi.Transaction(func(tx *gorm.DB) error {
		var lines []models.OrderLine
		if err := tx.
			Where(&models.OrderLine{OrderID: order.ID}).
			Preload("MenuItem").
			Order("menu_item_id asc").
			Find(&lines).
			Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyOrder
		}
		for _, line := range lines {
			item, err := LockInventoryItem(tx, line.MenuItemID)
			if err != nil {
				return err
			}
			if item.Quantity < int(line.Quantity) {
				return fmt.Errorf("%w for %s (requested %d, have %d)",
					ErrInsufficientStock, line.MenuItem.Name, line.Quantity, item.Quantity)
			}
			if err := DecreaseStock(tx, item, int(line.Quantity)); err != nil {
				return err
			}
		}
		if _, err := RecalculateOrderTotal(tx, order); err != nil {
			return err
		}
		return MarkOrderStatus(tx, order, types.ORDER_PROCESSING)
	})
	if ferr == nil {
		return nil
	}
	if IsBusinessError(ferr) {
		log.Printf("Inventory error while processing Order [%d]: %s\n", order.ID, ferr.Error())
		// fresh transaction: the deductions above are already unwound
		if err := dbi.Transaction(func(tx *gorm.DB) error {
			return MarkOrderStatus(tx, order, types.ORDER_CANCELLED)
		}); err != nil {
			log.Printf("Could not cancel Order [%d]: %s\n", order.ID, err.Error())
		}
	}
	return ferr
}
