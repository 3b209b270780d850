package common

import (
	"time"

	"rms/src/db"
	"rms/src/models"
	"rms/src/types"

	"github.com/shopspring/decimal"
)

type DailySalesSummary struct {
	Date              string `json:"date"`
	TotalOrders       int64  `json:"total_orders"`
	CompletedOrders   int64  `json:"completed_orders"`
	PendingOrders     int64  `json:"pending_orders"`
	GrossRevenue      string `json:"gross_revenue"`
	AverageOrderValue string `json:"average_order_value"`
}

type StockAlert struct {
	MenuItem         string `json:"menu_item"`
	Quantity         int    `json:"quantity"`
	Threshold        int    `json:"threshold"`
	IsBelowThreshold bool   `json:"is_below_threshold"`
	Deficit          int    `json:"deficit"`
}

func localDayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}

// GetDailySalesSummary aggregates order counts and revenue for the local
// day containing the supplied time. Gross revenue counts completed orders
// only.
func GetDailySalesSummary(day time.Time) (*DailySalesSummary, error) {
	start, end := localDayBounds(day)
	var agg struct {
		TotalOrders     int64
		CompletedOrders int64
		PendingOrders   int64
		GrossRevenue    decimal.Decimal
	}
	dbi := db.GetDb()
	err := dbi.
		Model(&models.Order{}).
		Select(
			"COUNT(id) AS total_orders, "+
				"COUNT(id) FILTER (WHERE status = ?) AS completed_orders, "+
				"COUNT(id) FILTER (WHERE status = ?) AS pending_orders, "+
				"COALESCE(SUM(total_amount) FILTER (WHERE status = ?), 0) AS gross_revenue",
			types.ORDER_COMPLETED, types.ORDER_PENDING, types.ORDER_COMPLETED,
		).
		Where("placed_at >= ? AND placed_at < ?", start, end).
		Scan(&agg).
		Error
	if err != nil {
		return nil, err
	}
	average := decimal.Zero
	if agg.CompletedOrders > 0 {
		average = agg.GrossRevenue.Div(decimal.NewFromInt(agg.CompletedOrders))
	}
	return &DailySalesSummary{
		Date:              start.Format("2006-01-02"),
		TotalOrders:       agg.TotalOrders,
		CompletedOrders:   agg.CompletedOrders,
		PendingOrders:     agg.PendingOrders,
		GrossRevenue:      agg.GrossRevenue.StringFixed(2),
		AverageOrderValue: average.StringFixed(2),
	}, nil
}

// GetStockAlerts lists stock entries at or below their threshold plus an
// optional buffer, lowest quantity first.
func GetStockAlerts(buffer int) ([]StockAlert, error) {
	if buffer < 0 {
		buffer = 0
	}
	var items []models.InventoryItem
	dbi := db.GetDb()
	err := dbi.
		Model(&models.InventoryItem{}).
		Preload("MenuItem").
		Order("quantity asc").
		Find(&items).
		Error
	if err != nil {
		return nil, err
	}
	alerts := make([]StockAlert, 0)
	for _, item := range items {
		isBelow := item.Quantity <= item.Threshold+buffer
		deficit := item.Threshold - item.Quantity
		if deficit < 0 {
			deficit = 0
		}
		if !isBelow && deficit <= 0 {
			continue
		}
		alerts = append(alerts, StockAlert{
			MenuItem:         item.MenuItem.Name,
			Quantity:         item.Quantity,
			Threshold:        item.Threshold,
			IsBelowThreshold: isBelow,
			Deficit:          deficit,
		})
	}
	return alerts, nil
}
