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
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func orderHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/orders", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			role := ctx.GetString("role")
			dbi := db.GetDb()
			query := dbi.Model(&models.Order{})
			if !types.IsManagerRole(role) {
				query = query.Where(&models.Order{UserID: userId})
			}
			var orders []models.Order
			if err := query.
				Preload("Lines").
				Preload("Lines.MenuItem").
				Order("placed_at desc").
				Limit(100).
				Find(&orders).
				Error; err != nil {
				log.Printf("Error retrieving Orders: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": orders, "count": len(orders)})
		}).
		GET("/orders/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			role := ctx.GetString("role")
			dbi := db.GetDb()
			query := dbi.Where(&models.Order{ID: params.ID})
			if !types.IsManagerRole(role) {
				query = query.Where(&models.Order{UserID: userId})
			}
			var order models.Order
			if err := query.
				Preload("Lines").
				Preload("Lines.MenuItem").
				Preload("Table").
				First(&order).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": order})
		}).
		POST("/orders", func(ctx *gin.Context) {
			var body types.CreateOrderRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			dbi := db.GetDb()
			order := models.Order{
				ReferenceID: uuid.NewString(),
				UserID:      userId,
				TableID:     body.TableID,
				Status:      types.ORDER_PENDING,
			}
			err := dbi.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&order).Error; err != nil {
					return err
				}
				for _, item := range body.Items {
					var menuItem models.MenuItem
					if err := tx.
						Where(&models.MenuItem{ID: item.MenuItemID, IsActive: true}).
						First(&menuItem).
						Error; err != nil {
						return err
					}
					// Price is captured here so the line survives later menu edits.
					line := models.OrderLine{
						OrderID:    order.ID,
						MenuItemID: menuItem.ID,
						Quantity:   item.Quantity,
						UnitPrice:  menuItem.Price,
					}
					if err := tx.Create(&line).Error; err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "one or more menu items are unavailable"})
					return
				}
				log.Printf("Error creating Order: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := common.ProcessOrder(&order); err != nil {
				if common.IsBusinessError(err) {
					ctx.JSON(http.StatusConflict, gin.H{"error": err.Error(), "id": order.ID, "status": order.Status})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": order.ID, "reference_id": order.ReferenceID, "status": order.Status, "total_amount": order.TotalAmount})
		})
	return g
}

func orderManagerHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	transition := func(ctx *gin.Context, status types.OrderStatus) {
		var params types.SimpleRequestParams
		if err := ctx.ShouldBindUri(&params); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		dbi := db.GetDb()
		var order models.Order
		err := dbi.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&order, params.ID).Error; err != nil {
				return err
			}
			if order.Status == types.ORDER_COMPLETED || order.Status == types.ORDER_CANCELLED {
				return common.ErrInvalidStatus
			}
			// completion is only reachable from a fulfilled order
			if status == types.ORDER_COMPLETED && order.Status != types.ORDER_PROCESSING {
				return common.ErrInvalidStatus
			}
			return common.MarkOrderStatus(tx, &order, status)
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.Status(http.StatusNotFound)
				return
			}
			if errors.Is(err, common.ErrInvalidStatus) {
				ctx.JSON(http.StatusConflict, gin.H{"error": "order cannot transition from its current status", "status": order.Status})
				return
			}
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"id": order.ID, "status": order.Status})
	}
	g.
		POST("/orders/:id/complete", func(ctx *gin.Context) {
			transition(ctx, types.ORDER_COMPLETED)
		}).
		POST("/orders/:id/cancel", func(ctx *gin.Context) {
			transition(ctx, types.ORDER_CANCELLED)
		})
	return g
}
