package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pavannsshetty7022/Blog-Fullstack-application/controllers"
	"github.com/pavannsshetty7022/Blog-Fullstack-application/database"
	"github.com/pavannsshetty7022/Blog-Fullstack-application/initializers"
	"github.com/pavannsshetty7022/Blog-Fullstack-application/routes"
	"github.com/pavannsshetty7022/Blog-Fullstack-application/services"
	"github.com/pavannsshetty7022/Blog-Fullstack-application/stores"
)

func init() {
	initializers.LoadEnvVariables()
}

func main() {
	if err := database.EnsureIndexes(context.Background(), database.Client); err != nil {
		log.Fatal("failed to create indexes: ", err)
	}

	users := stores.NewUserStore(database.OpenCollection(database.Client, "users"))
	posts := stores.NewPostStore(database.OpenCollection(database.Client, "posts"))
	reactions := stores.NewReactionStore(database.OpenCollection(database.Client, "likes"))
	comments := stores.NewCommentStore(database.OpenCollection(database.Client, "comments"))
	txn := stores.NewMongoTransactor(database.Client)

	aggregation := services.NewAggregationService(reactions, comments, users)
	postService := services.NewPostService(posts, reactions, comments, users, aggregation, txn)

	authController := controllers.NewAuthController(users, database.GridFSBucket)
	postController := controllers.NewPostController(postService, database.GridFSBucket)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := router.Group("/api")
	routes.AuthRouter(api, authController, users)
	routes.PostRouter(api, postController, users)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func corsOrigins() []string {
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		return strings.Split(origins, ",")
	}
	return []string{"http://localhost:3000", "http://localhost:5173"}
}
