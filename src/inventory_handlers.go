package main

import (
	"errors"
	"log"
	"net/http"

	"rms/src/common"
	"rms/src/db"
	"rms/src/models"
	"rms/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func inventoryHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/inventory", func(ctx *gin.Context) {
			dbi := db.GetDb()
			var items []models.InventoryItem
			if err := dbi.
				Preload("MenuItem").
				Order("quantity asc").
				Find(&items).
				Error; err != nil {
				log.Printf("Error retrieving Inventory: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": items, "count": len(items)})
		}).
		PUT("/inventory/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateInventoryRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if body.Threshold == nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
				return
			}
			if *body.Threshold < 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "threshold must not be negative"})
				return
			}
			dbi := db.GetDb()
			var item models.InventoryItem
			if err := dbi.First(&item, params.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := dbi.
				Model(&item).
				Update("threshold", *body.Threshold).
				Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": item})
		}).
		POST("/inventory/:id/adjust", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.AdjustInventoryRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			dbi := db.GetDb()
			var item *models.InventoryItem
			err := dbi.Transaction(func(tx *gorm.DB) error {
				var record models.InventoryItem
				if err := tx.First(&record, params.ID).Error; err != nil {
					return err
				}
				locked, err := common.LockInventoryItem(tx, record.MenuItemID)
				if err != nil {
					return err
				}
				if body.Op == "increase" {
					err = common.IncreaseStock(tx, locked, body.Amount)
				} else {
					err = common.DecreaseStock(tx, locked, body.Amount)
				}
				item = locked
				return err
			})
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				if common.IsBusinessError(err) {
					ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": item})
		})
	return g
}
