package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pavannsshetty7022/Blog-Fullstack-application/controllers"
	"github.com/pavannsshetty7022/Blog-Fullstack-application/middlewares"
	"github.com/pavannsshetty7022/Blog-Fullstack-application/services"
)

func AuthRouter(api *gin.RouterGroup, ac *controllers.AuthController, users services.UserRepository) {
	auth := api.Group("/auth")

	auth.POST("/register", ac.Register)
	auth.POST("/login", ac.Login)
	auth.POST("/logout", ac.Logout)
	auth.PUT("/profile", middlewares.RequireAuth(users), ac.UpdateProfile)
}
