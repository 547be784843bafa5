package stores

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pavannsshetty7022/Blog-Fullstack-application/models"
)

// ReactionStore persists at most one reaction per (postId, userId) pair in
// the likes collection. The unique compound index is the only concurrency
// guarantee: no lock is held across the read-resolve-write sequence, so a
// racing insert surfaces as a duplicate-key error and gets one retry.
type ReactionStore struct {
	collection *mongo.Collection
}

func NewReactionStore(collection *mongo.Collection) *ReactionStore {
	return &ReactionStore{collection: collection}
}

// reactionOp is the write resolveReaction picks for a toggle request.
type reactionOp int

const (
	reactionNoop   reactionOp = iota // nothing stored, nothing requested
	reactionCreate                   // insert a new row
	reactionRemove                   // delete the row (toggle off or clear)
	reactionSwitch                   // update the row's kind in place
)

// resolveReaction decides what to do with the stored reaction given the
// requested one:
//   - no existing row, request nil: noop
//   - no existing row, request set: create
//   - existing row of the same kind, or request nil: remove
//   - existing row of a different kind: switch in place
func resolveReaction(existing, requested *models.ReactionKind) reactionOp {
	if existing == nil {
		if requested == nil {
			return reactionNoop
		}
		return reactionCreate
	}
	if requested == nil || *existing == *requested {
		return reactionRemove
	}
	return reactionSwitch
}

// reactionWriter is the slice of collection operations setReaction needs.
// ReactionStore backs it with MongoDB; tests drive the retry sequence with
// a stub.
type reactionWriter interface {
	// find returns (nil, nil) when the pair has no reaction.
	find(ctx context.Context, postID, userID primitive.ObjectID) (*models.Reaction, error)
	insert(ctx context.Context, reaction models.Reaction) error
	remove(ctx context.Context, id primitive.ObjectID) error
	update(ctx context.Context, id primitive.ObjectID, kind models.ReactionKind) error
}

// Set applies toggle semantics and returns the reaction now in effect,
// nil meaning none.
func (s *ReactionStore) Set(ctx context.Context, postID, userID primitive.ObjectID, kind *models.ReactionKind) (*models.ReactionKind, error) {
	return setReaction(ctx, s, postID, userID, kind)
}

func setReaction(ctx context.Context, w reactionWriter, postID, userID primitive.ObjectID, kind *models.ReactionKind) (*models.ReactionKind, error) {
	for attempt := 0; attempt < 2; attempt++ {
		existing, err := w.find(ctx, postID, userID)
		if err != nil {
			return nil, err
		}
		var existingKind *models.ReactionKind
		if existing != nil {
			existingKind = &existing.Kind
		}

		switch resolveReaction(existingKind, kind) {
		case reactionNoop:
			return nil, nil
		case reactionCreate:
			now := time.Now().UTC().Truncate(time.Millisecond)
			err := w.insert(ctx, models.Reaction{
				ID:        primitive.NewObjectID(),
				PostID:    postID,
				UserID:    userID,
				Kind:      *kind,
				CreatedAt: now,
				UpdatedAt: now,
			})
			if mongo.IsDuplicateKeyError(err) {
				// a concurrent request won the insert; re-read and resolve
				// against the row that now exists
				continue
			}
			if err != nil {
				return nil, err
			}
			return kind, nil
		case reactionRemove:
			if err := w.remove(ctx, existing.ID); err != nil {
				return nil, err
			}
			return nil, nil
		case reactionSwitch:
			if err := w.update(ctx, existing.ID, *kind); err != nil {
				return nil, err
			}
			return kind, nil
		}
	}
	// two consecutive duplicate-key errors mean the index is broken
	return nil, errors.New("reaction insert kept conflicting after retry")
}

func (s *ReactionStore) find(ctx context.Context, postID, userID primitive.ObjectID) (*models.Reaction, error) {
	return s.Find(ctx, postID, userID)
}

func (s *ReactionStore) insert(ctx context.Context, reaction models.Reaction) error {
	_, err := s.collection.InsertOne(ctx, reaction)
	return err
}

func (s *ReactionStore) remove(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *ReactionStore) update(ctx context.Context, id primitive.ObjectID, kind models.ReactionKind) error {
	_, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"type":      kind,
		"updatedAt": time.Now().UTC().Truncate(time.Millisecond),
	}})
	return err
}

func (s *ReactionStore) Find(ctx context.Context, postID, userID primitive.ObjectID) (*models.Reaction, error) {
	var reaction models.Reaction
	err := s.collection.FindOne(ctx, bson.M{"postId": postID, "userId": userID}).Decode(&reaction)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

func (s *ReactionStore) CountByKind(ctx context.Context, postID primitive.ObjectID, kind models.ReactionKind) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.M{"postId": postID, "type": kind})
}

// Likers returns up to limit user IDs that liked the post, most recent
// reaction first.
func (s *ReactionStore) Likers(ctx context.Context, postID primitive.ObjectID, limit int64) ([]primitive.ObjectID, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "updatedAt", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{"userId": 1})
	cursor, err := s.collection.Find(ctx, bson.M{"postId": postID, "type": models.ReactionLike}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ids []primitive.ObjectID
	for cursor.Next(ctx) {
		var row struct {
			UserID primitive.ObjectID `bson:"userId"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		ids = append(ids, row.UserID)
	}
	return ids, cursor.Err()
}

func (s *ReactionStore) DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, bson.M{"postId": postID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
