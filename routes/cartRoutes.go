package routes

import (
	"github.com/Kariqs/amexan-checkout/controllers"
	"github.com/Kariqs/amexan-checkout/initializers"
	"github.com/Kariqs/amexan-checkout/middlewares"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.RequireAuth(initializers.Config.JWTSecret))
	{
		cart.POST("", controllers.CreateCartItem)
		cart.GET("", controllers.GetCart)
	}
}
