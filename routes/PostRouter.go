package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pavannsshetty7022/Blog-Fullstack-application/controllers"
	"github.com/pavannsshetty7022/Blog-Fullstack-application/middlewares"
	"github.com/pavannsshetty7022/Blog-Fullstack-application/services"
)

func PostRouter(api *gin.RouterGroup, pc *controllers.PostController, users services.UserRepository) {
	requireAuth := middlewares.RequireAuth(users)
	optionalAuth := middlewares.OptionalAuth(users)

	posts := api.Group("/posts")

	// read endpoints stay open; an attached token only personalizes the
	// viewer fields
	posts.GET("", optionalAuth, pc.GetPosts)
	posts.GET("/:id", optionalAuth, pc.GetPostByID)

	posts.POST("", requireAuth, pc.CreatePost)
	posts.PUT("/:id", requireAuth, pc.UpdatePost)
	posts.DELETE("/:id", requireAuth, pc.DeletePost)

	posts.POST("/:id/react", requireAuth, pc.ReactPost)
	posts.POST("/:id/comments", requireAuth, pc.AddComment)
	posts.DELETE("/:id/comments/:commentId", requireAuth, pc.DeleteComment)

	api.GET("/images/:image_id", pc.GetImage)
}
