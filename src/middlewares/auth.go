package middlewares

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"rms/src/config"
	"rms/src/db"
	"rms/src/models"
	"rms/src/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func bearerToken(ctx *gin.Context) string {
	header := ctx.Request.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.Split(header, " ")[1]
	}
	// dashboard pages authenticate via cookie
	if cookie, err := ctx.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}

func AuthMiddleware(ctx *gin.Context) {
	reqToken := bearerToken(ctx)
	if reqToken == "" {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(reqToken, claims, func(t *jwt.Token) (any, error) {
		return config.JWTKey(), nil
	})
	if err != nil {
		log.Printf("token error: %s\n", err.Error())
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	if !tkn.Valid {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	uid, err := strconv.Atoi(claims.Subject)
	if err != nil {
		log.Println("error parsing claims:", err.Error())
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	dbi := db.GetDb()
	var user models.User
	dbi.Model(&models.User{}).Where(&models.User{ID: uint(uid)}).Find(&user)
	if uint(uid) != user.ID || user.ID < 1 || !user.IsActive {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	ctx.Set("email", user.Email)
	ctx.Set("id", user.ID)
	ctx.Set("role", user.Role)
}

// ManagerOnly gates privileged operations; run after AuthMiddleware.
func ManagerOnly(ctx *gin.Context) {
	role := ctx.GetString("role")
	if !types.IsManagerRole(role) {
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Only managers may perform this action"})
		return
	}
}

func SecureHeaders(ctx *gin.Context) {
	ctx.Header("X-Frame-Options", "DENY")
	ctx.Header("X-Content-Type-Options", "nosniff")
	ctx.Header("Referrer-Policy", "strict-origin-when-cross-origin")
}
