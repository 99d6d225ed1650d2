package middlewares

import (
	"errors"
	"net/http"

	"github.com/Kariqs/amexan-checkout/checkout"
	"github.com/gin-gonic/gin"
)

const sessionKey = "checkoutSession"

// RequireSessionOwner loads the checkout session named in the path and lets
// the request through only for the user who started it.
func RequireSessionOwner(sessions *checkout.Registry) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := CurrentUserID(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		session, err := sessions.Get(ctx.Param("sessionId"))
		if err != nil {
			if errors.Is(err, checkout.ErrSessionNotFound) {
				ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Checkout session not found"})
				return
			}
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Unable to load checkout session"})
			return
		}

		if session.UserID != userID {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Checkout session belongs to another user"})
			return
		}

		ctx.Set(sessionKey, session)
		ctx.Next()
	}
}

// CurrentSession returns the session RequireSessionOwner stored on the context.
func CurrentSession(ctx *gin.Context) *checkout.Session {
	v, ok := ctx.Get(sessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*checkout.Session)
	return session
}
