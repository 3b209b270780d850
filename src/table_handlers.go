package main

import (
	"errors"
	"log"
	"net/http"

	"rms/src/db"
	"rms/src/models"
	"rms/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func tableHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/tables", func(ctx *gin.Context) {
			var tables []models.Table
			dbi := db.GetDb()
			if err := dbi.
				Where(&models.Table{IsActive: true}).
				Order("number asc").
				Find(&tables).
				Error; err != nil {
				log.Printf("Error retrieving Tables: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": tables, "count": len(tables)})
		})
	return g
}

func tableAdminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/tables", func(ctx *gin.Context) {
			var body types.CreateTableRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			table := models.Table{Number: body.Number}
			if body.Seats > 0 {
				table.Seats = body.Seats
			}
			dbi := db.GetDb()
			err := dbi.Transaction(func(tx *gorm.DB) error {
				return tx.Create(&table).Error
			})
			if err != nil {
				log.Printf("Error creating Table: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": table.ID})
		}).
		PUT("/tables/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateTableRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updates := map[string]any{}
			if body.Seats != nil {
				updates["seats"] = *body.Seats
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
				var table models.Table
				if err := tx.
					Where(&models.Table{ID: params.ID}).
					First(&table).
					Error; err != nil {
					return err
				}
				return tx.
					Model(&models.Table{}).
					Where(&models.Table{ID: params.ID}).
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
		})
	return g
}
