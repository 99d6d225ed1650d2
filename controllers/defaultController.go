package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to Amexan Checkout API ❤️. Every route below except this one needs a bearer token.

CART
- POST "/cart" - Add an item to your cart
- GET "/cart" - Get your cart with totals

CHECKOUT
- POST "/checkout" - Start checking out your cart
- GET "/checkout/:sessionId" - Get the current checkout step
- PATCH "/checkout/:sessionId/fields" - Update a form field
- POST "/checkout/:sessionId/billing-toggle" - Toggle billing same as shipping
- POST "/checkout/:sessionId/advance" - Continue, or place the order on the payment step
- POST "/checkout/:sessionId/retreat" - Go back a step
- DELETE "/checkout/:sessionId" - Leave checkout and return to shopping`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
