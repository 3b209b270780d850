package main

import (
	"errors"
	"log"
	"net/http"

	"rms/src/db"
	"rms/src/models"
	"rms/src/types"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func menuHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/menu", func(ctx *gin.Context) {
			var items []models.MenuItem
			dbi := db.GetDb()
			if err := dbi.
				Where(&models.MenuItem{IsActive: true}).
				Order("name asc").
				Find(&items).
				Error; err != nil {
				log.Printf("Error retrieving menu: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": items, "count": len(items)})
		}).
		GET("/menu/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var item models.MenuItem
			dbi := db.GetDb()
			if err := dbi.
				Where(&models.MenuItem{ID: params.ID, IsActive: true}).
				First(&item).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": item})
		})
	return g
}

func menuAdminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/menu", func(ctx *gin.Context) {
			var body types.CreateMenuItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			price, err := decimal.NewFromString(body.Price)
			if err != nil || price.LessThanOrEqual(decimal.Zero) {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than zero"})
				return
			}
			isActive := true
			if body.IsActive != nil {
				isActive = *body.IsActive
			}
			item := models.MenuItem{
				Name:        body.Name,
				Description: body.Description,
				Price:       price,
				IsActive:    isActive,
			}
			dbi := db.GetDb()
			err = dbi.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
				// every menu item gets its stock ledger entry up front
				inventory := models.InventoryItem{MenuItemID: item.ID, Quantity: body.Quantity}
				if body.Threshold != nil {
					inventory.Threshold = *body.Threshold
				}
				return tx.Create(&inventory).Error
			})
			if err != nil {
				log.Printf("Error creating MenuItem: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": item.ID})
		}).
		PUT("/menu/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateMenuItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updates := map[string]any{}
			if body.Name != nil {
				updates["name"] = *body.Name
			}
			if body.Description != nil {
				updates["description"] = *body.Description
			}
			if body.Price != nil {
				price, err := decimal.NewFromString(*body.Price)
				if err != nil || price.LessThanOrEqual(decimal.Zero) {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than zero"})
					return
				}
				updates["price"] = price
			}
			if body.IsActive != nil {
				updates["is_active"] = *body.IsActive
			}
			if len(updates) == 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
				return
			}
			dbi := db.GetDb()
			err := dbi.Transaction(func(tx *gorm.DB) error {
				var item models.MenuItem
				if err := tx.
					Where(&models.MenuItem{ID: params.ID}).
					First(&item).
					Error; err != nil {
					return err
				}
				return tx.
					Model(&models.MenuItem{}).
					Where(&models.MenuItem{ID: params.ID}).
					Updates(updates).
					Error
			})
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		DELETE("/menu/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			dbi := db.GetDb()
			err := dbi.Transaction(func(tx *gorm.DB) error {
				var item models.MenuItem
				if err := tx.
					Where(&models.MenuItem{ID: params.ID}).
					First(&item).
					Error; err != nil {
					return err
				}
				// soft delete; historical order lines keep their snapshot
				return tx.Delete(&item).Error
			})
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
