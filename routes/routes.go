package routes

import "github.com/gin-gonic/gin"

// Register mounts every route group on the server.
func Register(server *gin.Engine) {
	DefaultRoutes(server)
	CartRoutes(server)
	CheckoutRoutes(server)
}
