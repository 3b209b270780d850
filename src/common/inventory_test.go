package common

import (
	"testing"

	"rms/src/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestDecreaseStockRejectsNonPositiveAmount(t *testing.T) {
	item := &models.InventoryItem{ID: 1, MenuItemID: 1, Quantity: 10}

	err := DecreaseStock(nil, item, 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	err = DecreaseStock(nil, item, -3)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	assert.Equal(t, 10, item.Quantity)
}

func TestDecreaseStockRejectsOverdraw(t *testing.T) {
	item := &models.InventoryItem{ID: 1, MenuItemID: 1, Quantity: 4}

	err := DecreaseStock(nil, item, 5)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 4, item.Quantity)
}

func TestDecreaseStockPersistsNewQuantity(t *testing.T) {
	gormDB, mock := NewMockDB()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "inventory_items" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	item := &models.InventoryItem{ID: 1, MenuItemID: 1, Quantity: 10}
	err := DecreaseStock(gormDB, item, 4)

	assert.Nil(t, err)
	assert.Equal(t, 6, item.Quantity)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestIncreaseStockRejectsNonPositiveAmount(t *testing.T) {
	item := &models.InventoryItem{ID: 1, MenuItemID: 1, Quantity: 2}

	err := IncreaseStock(nil, item, 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, 2, item.Quantity)
}

func TestIncreaseStockPersistsNewQuantity(t *testing.T) {
	gormDB, mock := NewMockDB()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "inventory_items" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	item := &models.InventoryItem{ID: 1, MenuItemID: 1, Quantity: 2}
	err := IncreaseStock(gormDB, item, 8)

	assert.Nil(t, err)
	assert.Equal(t, 10, item.Quantity)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestLockInventoryItemMissingRecord(t *testing.T) {
	gormDB, mock := NewMockDB()

	mock.ExpectQuery(`SELECT (.+) FROM "inventory_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "menu_item_id", "quantity", "threshold"}))

	item, err := LockInventoryItem(gormDB, 42)

	assert.Nil(t, item)
	assert.ErrorIs(t, err, ErrMissingInventoryRecord)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestLockInventoryItemFound(t *testing.T) {
	gormDB, mock := NewMockDB()

	rows := sqlmock.NewRows([]string{"id", "menu_item_id", "quantity", "threshold"}).
		AddRow(7, 3, 12, 5)
	mock.ExpectQuery(`SELECT (.+) FROM "inventory_items" (.+) FOR UPDATE`).
		WillReturnRows(rows)

	item, err := LockInventoryItem(gormDB, 3)

	assert.Nil(t, err)
	assert.Equal(t, uint(7), item.ID)
	assert.Equal(t, 12, item.Quantity)
	assert.Nil(t, mock.ExpectationsWereMet())
}
