package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	Content     string             `json:"content" bson:"content"`
	UploadImage string             `json:"uploadImage" bson:"uploadImage,omitempty"`
	Author      primitive.ObjectID `json:"author" bson:"author"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// LikedUser is one entry of the liker sample shown in the likes dropdown.
type LikedUser struct {
	ID   primitive.ObjectID `json:"_id"`
	Name string             `json:"name"`
}

// PostStats is the aggregation block merged into every post payload. All
// counts are totals for the post; the viewer-relative fields fall back to
// null/false for anonymous readers.
type PostStats struct {
	TotalLikeCount     int64         `json:"totalLikeCount"`
	DislikeCount       int64         `json:"dislikeCount"`
	CommentsCount      int64         `json:"commentsCount"`
	UserReaction       *ReactionKind `json:"userReaction"`
	LikedByCurrentUser bool          `json:"likedByCurrentUser"`
	OtherLikeCount     int64         `json:"otherLikeCount"`
	LikedUsers         []LikedUser   `json:"likedUsers"`
}

// PostView is a post joined with its author identity and stats, the unit
// returned by the list endpoint.
type PostView struct {
	ID          primitive.ObjectID `json:"_id"`
	Title       string             `json:"title"`
	Content     string             `json:"content"`
	UploadImage string             `json:"uploadImage,omitempty"`
	Author      string             `json:"author"`
	AuthorID    primitive.ObjectID `json:"authorId"`
	Email       string             `json:"email"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	PostStats
}

// PostDetail additionally carries the full comment list.
type PostDetail struct {
	PostView
	Comments []CommentView `json:"comments"`
}
