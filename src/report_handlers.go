package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"rms/src/common"
	"rms/src/lib"
	"rms/src/types"

	"github.com/gin-gonic/gin"
)

const reportCacheTTL = 60 * time.Second

func reportHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/reports/daily-sales", func(ctx *gin.Context) {
			var query types.DailySalesQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			day := time.Now()
			if query.Date != "" {
				parsed, err := time.ParseInLocation("2006-01-02", query.Date, time.Local)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				day = parsed
			}
			cacheKey := fmt.Sprintf("reports:daily-sales:%s", day.Format("2006-01-02"))
			if rdb := lib.GetRedisClient(); rdb != nil {
				if cached, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
					var summary common.DailySalesSummary
					if json.Unmarshal([]byte(cached), &summary) == nil {
						ctx.JSON(http.StatusOK, gin.H{"data": summary, "cached": true})
						return
					}
				}
			}
			summary, err := common.GetDailySalesSummary(day)
			if err != nil {
				log.Printf("Error building daily sales summary: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if rdb := lib.GetRedisClient(); rdb != nil {
				if encoded, err := json.Marshal(summary); err == nil {
					if err := rdb.SetEx(ctx, cacheKey, encoded, reportCacheTTL).Err(); err != nil {
						log.Printf("[redis] Error caching %s: %s\n", cacheKey, err.Error())
					}
				}
			}
			ctx.JSON(http.StatusOK, gin.H{"data": summary})
		}).
		GET("/reports/stock-alerts", func(ctx *gin.Context) {
			var query types.StockAlertsQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			alerts, err := common.GetStockAlerts(query.Buffer)
			if err != nil {
				log.Printf("Error building stock alerts: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": alerts, "count": len(alerts)})
		})
	return g
}
