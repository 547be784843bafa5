package stores

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pavannsshetty7022/Blog-Fullstack-application/models"
	"github.com/pavannsshetty7022/Blog-Fullstack-application/services"
)

type CommentStore struct {
	collection *mongo.Collection
}

func NewCommentStore(collection *mongo.Collection) *CommentStore {
	return &CommentStore{collection: collection}
}

func (s *CommentStore) Insert(ctx context.Context, comment *models.Comment) error {
	_, err := s.collection.InsertOne(ctx, comment)
	return err
}

func (s *CommentStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	var comment models.Comment
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: comment", services.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPost returns the post's comments newest first.
func (s *CommentStore) ListByPost(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{"postId": postID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentStore) CountByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.M{"postId": postID})
}

func (s *CommentStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: comment", services.ErrNotFound)
	}
	return nil
}

func (s *CommentStore) DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, bson.M{"postId": postID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
