package controllers

import (
	"github.com/gin-gonic/gin"
)

const (
	msgInvalidInput        = "invalid input"
	msgInternalServerError = "Internal server error"
	msgUserNotFound        = "User not found in context"
	msgSessionNotFound     = "Checkout session not found"
	msgCartEmpty           = "Your cart is empty. Continue shopping to add items."
	msgStepIncomplete      = "Please fill in all required fields before continuing."
	msgSessionClosed       = "This checkout session has already ended."
	msgPlacementFailed     = "We could not place your order. Please try again."
	msgCartNotCleared      = "Your order was placed, but your cart could not be emptied. Please remove the items manually."
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}
