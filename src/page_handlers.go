package main

import (
	"log"
	"net/http"

	"rms/src/db"
	"rms/src/models"
	"rms/src/types"

	"github.com/gin-gonic/gin"
)

func pageHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.GET("/", func(ctx *gin.Context) {
		dbi := db.GetDb()
		var items []models.MenuItem
		if err := dbi.
			Where(&models.MenuItem{IsActive: true}).
			Order("name asc").
			Find(&items).
			Error; err != nil {
			log.Printf("Error retrieving MenuItems for home page: %s\n", err.Error())
		}
		ctx.HTML(http.StatusOK, "home.html", gin.H{
			"title": "Restaurant",
			"items": items,
		})
	})
	return g
}

func managerPageHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.GET("/managers", func(ctx *gin.Context) {
		dbi := db.GetDb()
		var managers []models.User
		if err := dbi.
			Where("role IN ?", []string{types.ROLE_MANAGER, types.ROLE_ADMIN}).
			Order("name asc").
			Find(&managers).
			Error; err != nil {
			log.Printf("Error retrieving managers for dashboard: %s\n", err.Error())
		}
		ctx.HTML(http.StatusOK, "managers.html", gin.H{
			"title":    "Managers",
			"managers": managers,
			"email":    ctx.GetString("email"),
		})
	})
	return g
}
