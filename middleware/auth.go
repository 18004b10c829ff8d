package middleware

import (
	"net/http"
	"os"
	"strings"

	"submitease-api/config"
	"submitease-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID int      `json:"user_id"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the bearer JWT and loads the caller into the
// request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		// Check if user still exists; roles come from the row, not the
		// token, so a revoked role takes effect without reissuing tokens.
		var user models.User
		if err := config.DB.Where("user_id = ? AND delete_at IS NULL", claims.UserID).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		c.Set("userID", user.UserID)
		c.Set("email", user.Email)
		c.Set("roles", []string(user.Roles))

		c.Next()
	}
}

// RequireRole allows the request through when the caller holds any of the
// given role tags.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !HasAnyRole(c, roles...) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// HasAnyRole reports whether the authenticated caller holds one of the
// given role tags.
func HasAnyRole(c *gin.Context, roles ...string) bool {
	v, exists := c.Get("roles")
	if !exists {
		return false
	}
	held, ok := v.([]string)
	if !ok {
		return false
	}
	for _, want := range roles {
		for _, have := range held {
			if have == want {
				return true
			}
		}
	}
	return false
}
