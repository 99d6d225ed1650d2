package routes

import (
	"github.com/Kariqs/amexan-checkout/controllers"
	"github.com/Kariqs/amexan-checkout/initializers"
	"github.com/Kariqs/amexan-checkout/middlewares"
	"github.com/gin-gonic/gin"
)

func CheckoutRoutes(server *gin.Engine) {
	checkout := server.Group("/checkout", middlewares.RequireAuth(initializers.Config.JWTSecret))
	checkout.POST("", controllers.StartCheckout)

	session := checkout.Group("/:sessionId", middlewares.RequireSessionOwner(initializers.Sessions))
	{
		session.GET("", controllers.GetCheckout)
		session.PATCH("/fields", controllers.UpdateCheckoutField)
		session.POST("/billing-toggle", controllers.ToggleBillingSameAsShipping)
		session.POST("/advance", controllers.AdvanceCheckout)
		session.POST("/retreat", controllers.RetreatCheckout)
		session.DELETE("", controllers.LeaveCheckout)
	}
}
