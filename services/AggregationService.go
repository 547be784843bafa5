package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pavannsshetty7022/Blog-Fullstack-application/models"
)

// likedUsersSampleSize caps the liker names disclosed per post; the total
// like count is reported separately and does not depend on the sample.
const likedUsersSampleSize = 10

// AggregationService computes the per-post stats block. It is a derived,
// read-only view recomputed on every call; there is no cache to invalidate.
type AggregationService struct {
	reactions ReactionRepository
	comments  CommentRepository
	users     UserRepository
}

func NewAggregationService(reactions ReactionRepository, comments CommentRepository, users UserRepository) *AggregationService {
	return &AggregationService{reactions: reactions, comments: comments, users: users}
}

// GetStats returns the counts for postID personalized for viewerID. A nil
// viewerID (anonymous reader) degrades the viewer-relative fields to their
// null/false defaults.
func (a *AggregationService) GetStats(ctx context.Context, postID primitive.ObjectID, viewerID *primitive.ObjectID) (models.PostStats, error) {
	likeCount, err := a.reactions.CountByKind(ctx, postID, models.ReactionLike)
	if err != nil {
		return models.PostStats{}, err
	}
	dislikeCount, err := a.reactions.CountByKind(ctx, postID, models.ReactionDislike)
	if err != nil {
		return models.PostStats{}, err
	}
	commentsCount, err := a.comments.CountByPost(ctx, postID)
	if err != nil {
		return models.PostStats{}, err
	}

	var viewerReaction *models.ReactionKind
	if viewerID != nil {
		reaction, err := a.reactions.Find(ctx, postID, *viewerID)
		if err != nil {
			return models.PostStats{}, err
		}
		if reaction != nil {
			viewerReaction = &reaction.Kind
		}
	}

	likedUsers, err := a.likedUsers(ctx, postID)
	if err != nil {
		return models.PostStats{}, err
	}

	return buildStats(likeCount, dislikeCount, commentsCount, viewerReaction, likedUsers), nil
}

func (a *AggregationService) likedUsers(ctx context.Context, postID primitive.ObjectID) ([]models.LikedUser, error) {
	likerIDs, err := a.reactions.Likers(ctx, postID, likedUsersSampleSize)
	if err != nil {
		return nil, err
	}
	if len(likerIDs) == 0 {
		return []models.LikedUser{}, nil
	}
	usersByID, err := a.users.ByIDs(ctx, likerIDs)
	if err != nil {
		return nil, err
	}
	likedUsers := make([]models.LikedUser, 0, len(likerIDs))
	for _, id := range likerIDs {
		user, ok := usersByID[id]
		if !ok {
			// liker account deleted since reacting
			continue
		}
		likedUsers = append(likedUsers, models.LikedUser{ID: id, Name: user.Name})
	}
	return likedUsers, nil
}

// buildStats assembles the stats block. otherLikeCount backs the "you and N
// others" phrasing and never goes negative.
func buildStats(likeCount, dislikeCount, commentsCount int64, viewerReaction *models.ReactionKind, likedUsers []models.LikedUser) models.PostStats {
	likedByCurrentUser := viewerReaction != nil && *viewerReaction == models.ReactionLike
	otherLikeCount := likeCount
	if likedByCurrentUser {
		otherLikeCount--
	}
	if otherLikeCount < 0 {
		otherLikeCount = 0
	}
	if likedUsers == nil {
		likedUsers = []models.LikedUser{}
	}
	return models.PostStats{
		TotalLikeCount:     likeCount,
		DislikeCount:       dislikeCount,
		CommentsCount:      commentsCount,
		UserReaction:       viewerReaction,
		LikedByCurrentUser: likedByCurrentUser,
		OtherLikeCount:     otherLikeCount,
		LikedUsers:         likedUsers,
	}
}
