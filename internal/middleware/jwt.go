package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 7 * 24 * time.Hour

// NewToken issues an HS256 token for the given account identity.
func NewToken(secret []byte, username, name, role string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  username,
		"name": name,
		"role": role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}).SignedString(secret)
}

// JWTAuth validates Bearer tokens and exposes the caller identity on
// the gin context.
func JWTAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		token, err := jwt.Parse(auth[7:], func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		claims := token.Claims.(jwt.MapClaims)
		username, _ := claims["sub"].(string)
		name, _ := claims["name"].(string)
		c.Set("user_name", username)
		c.Set("display_name", name)

		// Renew when less than a day remains.
		if exp, ok := claims["exp"].(float64); ok {
			if time.Until(time.Unix(int64(exp), 0)) < 24*time.Hour {
				newToken, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
					"sub":  claims["sub"],
					"name": claims["name"],
					"role": claims["role"],
					"exp":  time.Now().Add(tokenTTL).Unix(),
				}).SignedString(secret)
				c.Header("X-New-Token", newToken)
			}
		}

		c.Next()
	}
}
