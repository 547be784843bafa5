package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the application relies on. The unique
// compound index on likes is the concurrency-correctness mechanism for
// reactions: two racing requests for the same (postId, userId) pair cannot
// both insert.
func EnsureIndexes(ctx context.Context, client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	usersIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
	}
	if _, err := OpenCollection(client, "users").Indexes().CreateMany(ctx, usersIndexes); err != nil {
		return err
	}

	likesIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "postId", Value: 1}, {Key: "userId", Value: 1}},
		Options: unique,
	}
	if _, err := OpenCollection(client, "likes").Indexes().CreateOne(ctx, likesIndex); err != nil {
		return err
	}

	commentsIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "postId", Value: 1}, {Key: "createdAt", Value: -1}},
	}
	if _, err := OpenCollection(client, "comments").Indexes().CreateOne(ctx, commentsIndex); err != nil {
		return err
	}

	postsIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	}
	_, err := OpenCollection(client, "posts").Indexes().CreateOne(ctx, postsIndex)
	return err
}
