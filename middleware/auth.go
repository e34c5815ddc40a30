package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"cart-gateway/config"
	"cart-gateway/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return ""
	}
	return tokenParts[1]
}

func parseClaims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// OptionalAuthMiddleware checks for a bearer credential on every request.
// A missing, malformed or expired token means the request proceeds as a
// guest; cart operations work either way.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := parseClaims(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set("token", token)
		if sub, ok := claims["user_id"]; ok {
			c.Set("user_id", fmt.Sprintf("%v", sub))
		}
		c.Next()
	}
}

// AuthMiddleware rejects requests without a valid bearer credential.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		claims, err := parseClaims(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set("token", token)
		if sub, ok := claims["user_id"]; ok {
			c.Set("user_id", fmt.Sprintf("%v", sub))
		}
		c.Next()
	}
}
