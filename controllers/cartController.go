package controllers

import (
	"errors"
	"net/http"

	"github.com/Kariqs/amexan-checkout/checkout"
	"github.com/Kariqs/amexan-checkout/initializers"
	"github.com/Kariqs/amexan-checkout/middlewares"
	"github.com/Kariqs/amexan-checkout/models"
	"github.com/Kariqs/amexan-checkout/repositories"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func CreateCartItem(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUserNotFound)
		return
	}

	var cartItem models.CartItem
	if err := ctx.ShouldBindJSON(&cartItem); err != nil {
		initializers.Logger.Debug("cart item bind error", zap.Error(err))
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	repo := repositories.NewCartRepository(initializers.DB, userID)
	saved, merged, err := repo.AddItem(ctx.Request.Context(), cartItem)
	if errors.Is(err, repositories.ErrQuantityLimit) {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		initializers.Logger.Error("failed to add cart item", zap.Uint("user_id", userID), zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add item to cart")
		return
	}

	if merged {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Cart item quantity updated",
			"id":      saved.ID,
		})
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": saved.ProductName + " added to cart",
		"id":      saved.ID,
	})
}

func GetCart(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUserNotFound)
		return
	}

	repo := repositories.NewCartRepository(initializers.DB, userID)
	cart, err := repo.Find(ctx.Request.Context())
	if err != nil {
		initializers.Logger.Error("failed to fetch cart", zap.Uint("user_id", userID), zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	items := make([]checkout.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, item.ToCheckoutItem())
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"cart":   cart,
		"totals": checkout.CalculateTotals(items),
	})
}
