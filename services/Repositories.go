package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pavannsshetty7022/Blog-Fullstack-application/models"
)

// Repository contracts satisfied by the stores package. Lookups that miss
// return ErrNotFound; inserts hitting a unique index return ErrConflict.

type UserRepository interface {
	Insert(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
	ByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error)
}

type PostRepository interface {
	Insert(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	FindAll(ctx context.Context) ([]models.Post, error)
	Save(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ReactionRepository interface {
	// Set applies toggle semantics for the (postID, userID) pair and
	// returns the reaction now in effect, nil meaning none.
	Set(ctx context.Context, postID, userID primitive.ObjectID, kind *models.ReactionKind) (*models.ReactionKind, error)
	// Find returns (nil, nil) when the pair has no reaction.
	Find(ctx context.Context, postID, userID primitive.ObjectID) (*models.Reaction, error)
	CountByKind(ctx context.Context, postID primitive.ObjectID, kind models.ReactionKind) (int64, error)
	Likers(ctx context.Context, postID primitive.ObjectID, limit int64) ([]primitive.ObjectID, error)
	DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error)
}

type CommentRepository interface {
	Insert(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	ListByPost(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error)
	CountByPost(ctx context.Context, postID primitive.ObjectID) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error)
}

// Transactor runs fn atomically when the deployment supports multi-document
// transactions, and sequentially otherwise.
type Transactor interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}
