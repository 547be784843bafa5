package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"

	"github.com/pavannsshetty7022/Blog-Fullstack-application/helper"
	"github.com/pavannsshetty7022/Blog-Fullstack-application/models"
	"github.com/pavannsshetty7022/Blog-Fullstack-application/services"
)

type PostController struct {
	posts  *services.PostService
	bucket *gridfs.Bucket
}

func NewPostController(posts *services.PostService, bucket *gridfs.Bucket) *PostController {
	return &PostController{posts: posts, bucket: bucket}
}

type createPostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Image   string `json:"image"`
}

func (pc *PostController) CreatePost(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	imageURL, err := helper.StoreImage(pc.bucket, req.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	post, err := pc.posts.Create(c.Request.Context(), user.ID, services.CreatePostInput{
		Title:       req.Title,
		Content:     req.Content,
		UploadImage: imageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// GetPosts lists every post newest first, personalized for the viewer when
// a valid token came along.
func (pc *PostController) GetPosts(c *gin.Context) {
	posts, err := pc.posts.ListAll(c.Request.Context(), viewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) GetPostByID(c *gin.Context) {
	postID, ok := objectIDParam(c, "id", "Invalid post ID")
	if !ok {
		return
	}
	post, err := pc.posts.GetDetail(c.Request.Context(), postID, viewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

type updatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Image   *string `json:"image"`
}

func (pc *PostController) UpdatePost(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}
	postID, ok := objectIDParam(c, "id", "Invalid post ID")
	if !ok {
		return
	}

	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	input := services.UpdatePostInput{Title: req.Title, Content: req.Content}
	if req.Image != nil {
		imageURL, err := helper.StoreImage(pc.bucket, *req.Image)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		input.UploadImage = &imageURL
	}

	post, err := pc.posts.Update(c.Request.Context(), postID, user.ID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post updated successfully", "post": post})
}

func (pc *PostController) DeletePost(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}
	postID, ok := objectIDParam(c, "id", "Invalid post ID")
	if !ok {
		return
	}
	if err := pc.posts.Delete(c.Request.Context(), postID, user.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

type reactRequest struct {
	Reaction *models.ReactionKind `json:"reaction"`
}

// ReactPost toggles the caller's reaction and answers with the fresh stats
// block so the UI reads its own write.
func (pc *PostController) ReactPost(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}
	postID, ok := objectIDParam(c, "id", "Invalid post ID")
	if !ok {
		return
	}

	var req reactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	stats, err := pc.posts.React(c.Request.Context(), postID, user.ID, req.Reaction)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

type addCommentRequest struct {
	Text string `json:"text"`
}

func (pc *PostController) AddComment(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}
	postID, ok := objectIDParam(c, "id", "Invalid post ID")
	if !ok {
		return
	}

	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	comment, err := pc.posts.AddComment(c.Request.Context(), postID, user.ID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Comment added", "comment": comment})
}

func (pc *PostController) DeleteComment(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}
	postID, ok := objectIDParam(c, "id", "Invalid post ID")
	if !ok {
		return
	}
	commentID, ok := objectIDParam(c, "commentId", "Invalid comment ID")
	if !ok {
		return
	}
	if err := pc.posts.DeleteComment(c.Request.Context(), postID, commentID, user.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// GetImage streams an uploaded image out of GridFS. The upload stored the
// content type as the file name.
func (pc *PostController) GetImage(c *gin.Context) {
	fileID, ok := objectIDParam(c, "image_id", "Invalid image ID")
	if !ok {
		return
	}

	stream, err := pc.bucket.OpenDownloadStream(fileID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Image not found"})
		return
	}
	defer stream.Close()

	if contentType := stream.GetFile().Name; contentType != "" {
		c.Header("Content-Type", contentType)
	}
	if _, err := io.Copy(c.Writer, stream); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to stream image"})
		return
	}
}

func viewerID(c *gin.Context) *primitive.ObjectID {
	user := currentUser(c)
	if user == nil {
		return nil
	}
	return &user.ID
}

func objectIDParam(c *gin.Context, name, message string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": message})
		return primitive.NilObjectID, false
	}
	return id, true
}
