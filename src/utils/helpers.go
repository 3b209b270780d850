package utils

import (
	"fmt"
	"os"
	"time"

	"rms/src/config"
	"rms/src/types"

	"github.com/golang-jwt/jwt/v5"
)

func GenerateJWT(email string, id uint, role string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &types.Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(id),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTKey())
}

func IsProd() bool {
	return os.Getenv("API_ENV") == "production"
}
