package common

import (
	"errors"
	"fmt"
	"log"

	"rms/src/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LockInventoryItem acquires a FOR UPDATE row lock on the stock entry for
// the given menu item. The lock is held until the surrounding transaction
// commits or rolls back, so concurrent deductions on the same item
// serialize instead of racing.
func LockInventoryItem(tx *gorm.DB, menuItemID uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(&models.InventoryItem{MenuItemID: menuItemID}).
		First(&item).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w for menu item [%d]", ErrMissingInventoryRecord, menuItemID)
		}
		return nil, err
	}
	return &item, nil
}

// DecreaseStock deducts amount from the entry's quantity. The caller must
// hold the entry's row lock (LockInventoryItem) within tx.
func DecreaseStock(tx *gorm.DB, item *models.InventoryItem, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidAmount, amount)
	}
	if amount > item.Quantity {
		return fmt.Errorf("%w (requested %d, have %d)", ErrInsufficientStock, amount, item.Quantity)
	}
	item.Quantity -= amount
	if err := tx.
		Model(&models.InventoryItem{}).
		Where(&models.InventoryItem{ID: item.ID}).
		Update("quantity", item.Quantity).
		Error; err != nil {
		log.Printf("Error updating stock for InventoryItem [%d]: %s\n", item.ID, err.Error())
		return err
	}
	return nil
}

func IncreaseStock(tx *gorm.DB, item *models.InventoryItem, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidAmount, amount)
	}
	item.Quantity += amount
	if err := tx.
		Model(&models.InventoryItem{}).
		Where(&models.InventoryItem{ID: item.ID}).
		Update("quantity", item.Quantity).
		Error; err != nil {
		log.Printf("Error updating stock for InventoryItem [%d]: %s\n", item.ID, err.Error())
		return err
	}
	return nil
}
