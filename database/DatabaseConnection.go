package database

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pavannsshetty7022/Blog-Fullstack-application/initializers"
)

func DBinstance() *mongo.Client {
	initializers.LoadEnvVariables()

	mongoURI := os.Getenv("MONGO_URI")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatal("failed to connect to MongoDB: ", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("failed to ping MongoDB: ", err)
	}
	log.Println("Connected to MongoDB!")
	return client
}

var Client *mongo.Client = DBinstance()

func OpenCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	return client.Database(os.Getenv("DB_NAME")).Collection(collectionName)
}

var GridFSBucket *gridfs.Bucket = newBucket(Client)

func newBucket(client *mongo.Client) *gridfs.Bucket {
	bucket, err := gridfs.NewBucket(
		client.Database(os.Getenv("DB_NAME")),
		options.GridFSBucket().SetName("images"),
	)
	if err != nil {
		log.Fatal("failed to open GridFS bucket: ", err)
	}
	return bucket
}
