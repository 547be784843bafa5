package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pavannsshetty7022/Blog-Fullstack-application/models"
)

// PostService orchestrates post CRUD and delegates reaction/comment
// aggregation for the read paths. Ownership rules live here: only the
// author mutates a post, comments fall to their author or the post's
// author.
type PostService struct {
	posts     PostRepository
	reactions ReactionRepository
	comments  CommentRepository
	users     UserRepository
	stats     *AggregationService
	txn       Transactor
}

func NewPostService(posts PostRepository, reactions ReactionRepository, comments CommentRepository, users UserRepository, stats *AggregationService, txn Transactor) *PostService {
	return &PostService{
		posts:     posts,
		reactions: reactions,
		comments:  comments,
		users:     users,
		stats:     stats,
		txn:       txn,
	}
}

type CreatePostInput struct {
	Title       string
	Content     string
	UploadImage string
}

type UpdatePostInput struct {
	Title       *string
	Content     *string
	UploadImage *string
}

func (s *PostService) Create(ctx context.Context, authorID primitive.ObjectID, input CreatePostInput) (*models.PostView, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", ErrValidation)
	}

	now := nowUTC()
	post := &models.Post{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Content:     content,
		UploadImage: input.UploadImage,
		Author:      authorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.posts.Insert(ctx, post); err != nil {
		return nil, err
	}
	return s.view(ctx, post, &authorID)
}

// Update applies the provided fields; unspecified fields keep their prior
// value. Only the author may update.
func (s *PostService) Update(ctx context.Context, postID, requesterID primitive.ObjectID, input UpdatePostInput) (*models.PostView, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Author != requesterID {
		return nil, fmt.Errorf("%w: only the author can update this post", ErrForbidden)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		post.Title = strings.TrimSpace(*input.Title)
	}
	if input.Content != nil {
		if strings.TrimSpace(*input.Content) == "" {
			return nil, fmt.Errorf("%w: content cannot be empty", ErrValidation)
		}
		post.Content = strings.TrimSpace(*input.Content)
	}
	if input.UploadImage != nil {
		post.UploadImage = *input.UploadImage
	}
	post.UpdatedAt = nowUTC()

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return s.view(ctx, post, &requesterID)
}

// Delete removes the post together with all of its reactions and comments
// so no orphaned rows keep referencing the deleted post. The cascade runs
// through the Transactor.
func (s *PostService) Delete(ctx context.Context, postID, requesterID primitive.ObjectID) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.Author != requesterID {
		return fmt.Errorf("%w: only the author can delete this post", ErrForbidden)
	}

	return s.txn.Run(ctx, func(ctx context.Context) error {
		if _, err := s.reactions.DeleteByPost(ctx, postID); err != nil {
			return err
		}
		if _, err := s.comments.DeleteByPost(ctx, postID); err != nil {
			return err
		}
		return s.posts.Delete(ctx, postID)
	})
}

// GetDetail returns the post with stats and its full comment list, newest
// comment first.
func (s *PostService) GetDetail(ctx context.Context, postID primitive.ObjectID, viewerID *primitive.ObjectID) (*models.PostDetail, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	view, err := s.view(ctx, post, viewerID)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	commentViews, err := s.commentViews(ctx, comments)
	if err != nil {
		return nil, err
	}
	return &models.PostDetail{PostView: *view, Comments: commentViews}, nil
}

// ListAll returns every post with stats, newest first, without comment
// bodies.
func (s *PostService) ListAll(ctx context.Context, viewerID *primitive.ObjectID) ([]models.PostView, error) {
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]primitive.ObjectID, 0, len(posts))
	for _, post := range posts {
		authorIDs = append(authorIDs, post.Author)
	}
	authors, err := s.users.ByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]models.PostView, 0, len(posts))
	for i := range posts {
		stats, err := s.stats.GetStats(ctx, posts[i].ID, viewerID)
		if err != nil {
			return nil, err
		}
		views = append(views, assemblePostView(&posts[i], authors[posts[i].Author], stats))
	}
	return views, nil
}

// React applies the requested reaction (nil clears) and returns the fresh
// stats so the caller reads its own write.
func (s *PostService) React(ctx context.Context, postID, userID primitive.ObjectID, kind *models.ReactionKind) (models.PostStats, error) {
	if kind != nil && !kind.Valid() {
		return models.PostStats{}, fmt.Errorf("%w: reaction must be \"like\", \"dislike\" or null", ErrValidation)
	}
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return models.PostStats{}, err
	}
	if _, err := s.reactions.Set(ctx, postID, userID, kind); err != nil {
		return models.PostStats{}, err
	}
	return s.stats.GetStats(ctx, postID, &userID)
}

func (s *PostService) AddComment(ctx context.Context, postID, userID primitive.ObjectID, text string) (*models.CommentView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment text required", ErrValidation)
	}
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	// resolve the author first so a lookup failure leaves nothing persisted
	author, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:        primitive.NewObjectID(),
		PostID:    postID,
		UserID:    userID,
		Text:      text,
		CreatedAt: nowUTC(),
	}
	if err := s.comments.Insert(ctx, comment); err != nil {
		return nil, err
	}
	return &models.CommentView{
		ID:        comment.ID,
		Text:      comment.Text,
		User:      author.Name,
		Email:     author.Email,
		UserID:    author.ID,
		CreatedAt: comment.CreatedAt,
	}, nil
}

// DeleteComment removes a comment if the requester wrote it or owns the
// post it belongs to.
func (s *PostService) DeleteComment(ctx context.Context, postID, commentID, requesterID primitive.ObjectID) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.PostID != postID {
		return fmt.Errorf("%w: comment does not belong to this post", ErrNotFound)
	}
	if comment.UserID != requesterID && post.Author != requesterID {
		return fmt.Errorf("%w: only the comment author or the post author can delete a comment", ErrForbidden)
	}
	return s.comments.Delete(ctx, commentID)
}

func (s *PostService) view(ctx context.Context, post *models.Post, viewerID *primitive.ObjectID) (*models.PostView, error) {
	author, err := s.users.FindByID(ctx, post.Author)
	if err != nil {
		return nil, err
	}
	stats, err := s.stats.GetStats(ctx, post.ID, viewerID)
	if err != nil {
		return nil, err
	}
	view := assemblePostView(post, *author, stats)
	return &view, nil
}

func (s *PostService) commentViews(ctx context.Context, comments []models.Comment) ([]models.CommentView, error) {
	authorIDs := make([]primitive.ObjectID, 0, len(comments))
	for _, comment := range comments {
		authorIDs = append(authorIDs, comment.UserID)
	}
	authors, err := s.users.ByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]models.CommentView, 0, len(comments))
	for _, comment := range comments {
		author := authors[comment.UserID]
		views = append(views, models.CommentView{
			ID:        comment.ID,
			Text:      comment.Text,
			User:      author.Name,
			Email:     author.Email,
			UserID:    comment.UserID,
			CreatedAt: comment.CreatedAt,
		})
	}
	return views, nil
}

// nowUTC truncates to BSON datetime precision so round-tripped documents
// compare equal.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func assemblePostView(post *models.Post, author models.User, stats models.PostStats) models.PostView {
	return models.PostView{
		ID:          post.ID,
		Title:       post.Title,
		Content:     post.Content,
		UploadImage: post.UploadImage,
		Author:      author.Name,
		AuthorID:    post.Author,
		Email:       author.Email,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
		PostStats:   stats,
	}
}
