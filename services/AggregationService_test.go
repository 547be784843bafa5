package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pavannsshetty7022/Blog-Fullstack-application/models"
)

func kindPtr(k models.ReactionKind) *models.ReactionKind { return &k }

func TestBuildStats(t *testing.T) {
	cases := []struct {
		name           string
		likes          int64
		viewerReaction *models.ReactionKind
		wantLikedByMe  bool
		wantOthers     int64
	}{
		{"anonymous viewer", 3, nil, false, 3},
		{"viewer liked", 3, kindPtr(models.ReactionLike), true, 2},
		{"viewer disliked", 3, kindPtr(models.ReactionDislike), false, 3},
		{"sole liker", 1, kindPtr(models.ReactionLike), true, 0},
		{"no likes", 0, nil, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stats := buildStats(tc.likes, 2, 5, tc.viewerReaction, nil)
			assert.Equal(t, tc.likes, stats.TotalLikeCount)
			assert.Equal(t, int64(2), stats.DislikeCount)
			assert.Equal(t, int64(5), stats.CommentsCount)
			assert.Equal(t, tc.wantLikedByMe, stats.LikedByCurrentUser)
			assert.Equal(t, tc.wantOthers, stats.OtherLikeCount)
			assert.GreaterOrEqual(t, stats.OtherLikeCount, int64(0))
			assert.NotNil(t, stats.LikedUsers)
		})
	}
}

func TestGetStatsAnonymousViewer(t *testing.T) {
	postID := primitive.NewObjectID()
	alice := models.User{ID: primitive.NewObjectID(), Name: "Alice", Email: "alice@example.com"}
	bob := models.User{ID: primitive.NewObjectID(), Name: "Bob", Email: "bob@example.com"}
	carol := models.User{ID: primitive.NewObjectID(), Name: "Carol", Email: "carol@example.com"}

	reactions := newFakeReactions()
	ctx := context.Background()
	for _, u := range []models.User{alice, bob, carol} {
		_, err := reactions.Set(ctx, postID, u.ID, kindPtr(models.ReactionLike))
		require.NoError(t, err)
	}

	agg := NewAggregationService(reactions, newFakeComments(), newFakeUsers(alice, bob, carol))
	stats, err := agg.GetStats(ctx, postID, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalLikeCount)
	assert.Nil(t, stats.UserReaction)
	assert.False(t, stats.LikedByCurrentUser)
	assert.Equal(t, int64(3), stats.OtherLikeCount)
	assert.Len(t, stats.LikedUsers, 3)
}

func TestGetStatsViewerReaction(t *testing.T) {
	postID := primitive.NewObjectID()
	viewer := models.User{ID: primitive.NewObjectID(), Name: "Viewer"}
	other := models.User{ID: primitive.NewObjectID(), Name: "Other"}

	ctx := context.Background()
	reactions := newFakeReactions()
	_, err := reactions.Set(ctx, postID, viewer.ID, kindPtr(models.ReactionLike))
	require.NoError(t, err)
	_, err = reactions.Set(ctx, postID, other.ID, kindPtr(models.ReactionDislike))
	require.NoError(t, err)

	agg := NewAggregationService(reactions, newFakeComments(), newFakeUsers(viewer, other))
	stats, err := agg.GetStats(ctx, postID, &viewer.ID)
	require.NoError(t, err)

	require.NotNil(t, stats.UserReaction)
	assert.Equal(t, models.ReactionLike, *stats.UserReaction)
	assert.True(t, stats.LikedByCurrentUser)
	assert.Equal(t, int64(1), stats.TotalLikeCount)
	assert.Equal(t, int64(1), stats.DislikeCount)
	assert.Equal(t, int64(0), stats.OtherLikeCount)
}

func TestGetStatsSampleSkipsDeletedLikers(t *testing.T) {
	postID := primitive.NewObjectID()
	known := models.User{ID: primitive.NewObjectID(), Name: "Known"}
	ghostID := primitive.NewObjectID()

	ctx := context.Background()
	reactions := newFakeReactions()
	_, err := reactions.Set(ctx, postID, known.ID, kindPtr(models.ReactionLike))
	require.NoError(t, err)
	_, err = reactions.Set(ctx, postID, ghostID, kindPtr(models.ReactionLike))
	require.NoError(t, err)

	agg := NewAggregationService(reactions, newFakeComments(), newFakeUsers(known))
	stats, err := agg.GetStats(ctx, postID, nil)
	require.NoError(t, err)

	// the total still counts the ghost, the sample only discloses known names
	assert.Equal(t, int64(2), stats.TotalLikeCount)
	require.Len(t, stats.LikedUsers, 1)
	assert.Equal(t, "Known", stats.LikedUsers[0].Name)
}

func TestGetStatsSampleCappedAtTen(t *testing.T) {
	postID := primitive.NewObjectID()
	ctx := context.Background()
	reactions := newFakeReactions()

	likers := make([]models.User, 0, 13)
	for i := 0; i < 13; i++ {
		u := models.User{ID: primitive.NewObjectID(), Name: "User"}
		likers = append(likers, u)
		_, err := reactions.Set(ctx, postID, u.ID, kindPtr(models.ReactionLike))
		require.NoError(t, err)
	}

	agg := NewAggregationService(reactions, newFakeComments(), newFakeUsers(likers...))
	stats, err := agg.GetStats(ctx, postID, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(13), stats.TotalLikeCount)
	assert.Len(t, stats.LikedUsers, 10)
}
