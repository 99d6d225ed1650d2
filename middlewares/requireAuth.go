package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userClaimsKey = "user"
	userIDKey     = "userId"
)

var errNoSigningKey = errors.New("no signing key configured")

// RequireAuth accepts requests carrying a valid HS256 bearer token and puts
// its claims and user id on the context. An empty secret rejects every token.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing bearer token"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if secret == "" {
				return nil, errNoSigningKey
			}
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
			return
		}
		userID, err := userIDFromClaims(claims)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
			return
		}

		ctx.Set(userClaimsKey, claims)
		ctx.Set(userIDKey, userID)
		ctx.Next()
	}
}

// CurrentUserID returns the id RequireAuth stored on the context.
func CurrentUserID(ctx *gin.Context) (uint, bool) {
	v, ok := ctx.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func userIDFromClaims(claims jwt.MapClaims) (uint, error) {
	// JSON numbers decode as float64
	raw, ok := claims["user_id"].(float64)
	if !ok || raw < 1 || raw != float64(uint(raw)) {
		return 0, fmt.Errorf("user_id claim missing or malformed")
	}
	return uint(raw), nil
}
