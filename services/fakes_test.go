package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pavannsshetty7022/Blog-Fullstack-application/models"
)

// In-memory repository fakes. The reaction fake mirrors the store's toggle
// semantics over a map keyed by (postId, userId), which also enforces the
// one-row-per-pair invariant by construction.

type fakeUsers struct {
	users map[primitive.ObjectID]models.User
}

func newFakeUsers(users ...models.User) *fakeUsers {
	f := &fakeUsers{users: make(map[primitive.ObjectID]models.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUsers) Insert(_ context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return fmt.Errorf("%w: username or email already taken", ErrConflict)
		}
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUsers) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	return &user, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: user", ErrNotFound)
}

func (f *fakeUsers) FindByIdentifier(_ context.Context, identifier string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == identifier || user.Username == identifier {
			u := user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: user", ErrNotFound)
}

func (f *fakeUsers) Save(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return fmt.Errorf("%w: user", ErrNotFound)
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUsers) ByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error) {
	result := make(map[primitive.ObjectID]models.User, len(ids))
	for _, id := range ids {
		if user, ok := f.users[id]; ok {
			result[id] = user
		}
	}
	return result, nil
}

type fakePosts struct {
	posts map[primitive.ObjectID]models.Post
}

func newFakePosts(posts ...models.Post) *fakePosts {
	f := &fakePosts{posts: make(map[primitive.ObjectID]models.Post)}
	for _, p := range posts {
		f.posts[p.ID] = p
	}
	return f
}

func (f *fakePosts) Insert(_ context.Context, post *models.Post) error {
	f.posts[post.ID] = *post
	return nil
}

func (f *fakePosts) FindByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, fmt.Errorf("%w: post", ErrNotFound)
	}
	return &post, nil
}

func (f *fakePosts) FindAll(_ context.Context) ([]models.Post, error) {
	all := make([]models.Post, 0, len(f.posts))
	for _, post := range f.posts {
		all = append(all, post)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return all, nil
}

func (f *fakePosts) Save(_ context.Context, post *models.Post) error {
	if _, ok := f.posts[post.ID]; !ok {
		return fmt.Errorf("%w: post", ErrNotFound)
	}
	f.posts[post.ID] = *post
	return nil
}

func (f *fakePosts) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.posts[id]; !ok {
		return fmt.Errorf("%w: post", ErrNotFound)
	}
	delete(f.posts, id)
	return nil
}

type reactionKey struct {
	postID primitive.ObjectID
	userID primitive.ObjectID
}

type fakeReactions struct {
	rows map[reactionKey]models.Reaction
	seq  int
}

func newFakeReactions() *fakeReactions {
	return &fakeReactions{rows: make(map[reactionKey]models.Reaction)}
}

func (f *fakeReactions) Set(_ context.Context, postID, userID primitive.ObjectID, kind *models.ReactionKind) (*models.ReactionKind, error) {
	key := reactionKey{postID: postID, userID: userID}
	existing, ok := f.rows[key]
	if !ok {
		if kind == nil {
			return nil, nil
		}
		f.seq++
		now := time.Now().Add(time.Duration(f.seq) * time.Millisecond)
		f.rows[key] = models.Reaction{
			ID:        primitive.NewObjectID(),
			PostID:    postID,
			UserID:    userID,
			Kind:      *kind,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return kind, nil
	}
	if kind == nil || existing.Kind == *kind {
		delete(f.rows, key)
		return nil, nil
	}
	existing.Kind = *kind
	f.seq++
	existing.UpdatedAt = time.Now().Add(time.Duration(f.seq) * time.Millisecond)
	f.rows[key] = existing
	return kind, nil
}

func (f *fakeReactions) Find(_ context.Context, postID, userID primitive.ObjectID) (*models.Reaction, error) {
	reaction, ok := f.rows[reactionKey{postID: postID, userID: userID}]
	if !ok {
		return nil, nil
	}
	return &reaction, nil
}

func (f *fakeReactions) CountByKind(_ context.Context, postID primitive.ObjectID, kind models.ReactionKind) (int64, error) {
	var count int64
	for _, reaction := range f.rows {
		if reaction.PostID == postID && reaction.Kind == kind {
			count++
		}
	}
	return count, nil
}

func (f *fakeReactions) Likers(_ context.Context, postID primitive.ObjectID, limit int64) ([]primitive.ObjectID, error) {
	likes := make([]models.Reaction, 0)
	for _, reaction := range f.rows {
		if reaction.PostID == postID && reaction.Kind == models.ReactionLike {
			likes = append(likes, reaction)
		}
	}
	sort.Slice(likes, func(i, j int) bool { return likes[i].UpdatedAt.After(likes[j].UpdatedAt) })
	if int64(len(likes)) > limit {
		likes = likes[:limit]
	}
	ids := make([]primitive.ObjectID, 0, len(likes))
	for _, reaction := range likes {
		ids = append(ids, reaction.UserID)
	}
	return ids, nil
}

func (f *fakeReactions) DeleteByPost(_ context.Context, postID primitive.ObjectID) (int64, error) {
	var deleted int64
	for key, reaction := range f.rows {
		if reaction.PostID == postID {
			delete(f.rows, key)
			deleted++
		}
	}
	return deleted, nil
}

func (f *fakeReactions) countByPost(postID primitive.ObjectID) int {
	count := 0
	for _, reaction := range f.rows {
		if reaction.PostID == postID {
			count++
		}
	}
	return count
}

type fakeComments struct {
	comments map[primitive.ObjectID]models.Comment
}

func newFakeComments(comments ...models.Comment) *fakeComments {
	f := &fakeComments{comments: make(map[primitive.ObjectID]models.Comment)}
	for _, c := range comments {
		f.comments[c.ID] = c
	}
	return f
}

func (f *fakeComments) Insert(_ context.Context, comment *models.Comment) error {
	f.comments[comment.ID] = *comment
	return nil
}

func (f *fakeComments) FindByID(_ context.Context, id primitive.ObjectID) (*models.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return nil, fmt.Errorf("%w: comment", ErrNotFound)
	}
	return &comment, nil
}

func (f *fakeComments) ListByPost(_ context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	list := []models.Comment{}
	for _, comment := range f.comments {
		if comment.PostID == postID {
			list = append(list, comment)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (f *fakeComments) CountByPost(_ context.Context, postID primitive.ObjectID) (int64, error) {
	var count int64
	for _, comment := range f.comments {
		if comment.PostID == postID {
			count++
		}
	}
	return count, nil
}

func (f *fakeComments) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.comments[id]; !ok {
		return fmt.Errorf("%w: comment", ErrNotFound)
	}
	delete(f.comments, id)
	return nil
}

func (f *fakeComments) DeleteByPost(_ context.Context, postID primitive.ObjectID) (int64, error) {
	var deleted int64
	for id, comment := range f.comments {
		if comment.PostID == postID {
			delete(f.comments, id)
			deleted++
		}
	}
	return deleted, nil
}

// fakeTxn runs the callback directly; atomicity is the store's concern.
type fakeTxn struct{}

func (fakeTxn) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
