package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"connect/internal/delivery/http/middleware"
	"connect/internal/delivery/http/response"
	"connect/internal/domain/entity"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
	Logger *slog.Logger
}

// PostHandler holds dependencies for post, like, and comment handlers.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler.
func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{
		uc:     params.PostUC,
		logger: params.Logger,
	}
}

// createPostRequest is the body for publishing a post.
type createPostRequest struct {
	Caption   string   `json:"caption" validate:"max=2000"`
	ImageURLs []string `json:"imageUrls"`
}

// updatePostRequest is the body for editing a post.
type updatePostRequest struct {
	Caption   *string  `json:"caption"`
	ImageURLs []string `json:"imageUrls"`
}

// commentRequest is the body for commenting on a post.
type commentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

// commentResponse is the public projection of a comment.
type commentResponse struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"postId"`
	AuthorID  uuid.UUID `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func newCommentResponse(cm *entity.Comment) *commentResponse {
	return &commentResponse{
		ID:        cm.ID,
		PostID:    cm.PostID,
		AuthorID:  cm.AuthorID,
		Content:   cm.Content,
		CreatedAt: cm.CreatedAt,
	}
}

func newCommentResponses(comments []*entity.Comment) []*commentResponse {
	out := make([]*commentResponse, 0, len(comments))
	for _, cm := range comments {
		out = append(out, newCommentResponse(cm))
	}

	return out
}

// postResponse is the public projection of a post. Comments are attached
// where the endpoint loads them.
type postResponse struct {
	ID        uuid.UUID          `json:"id"`
	AuthorID  uuid.UUID          `json:"authorId"`
	Caption   string             `json:"caption,omitempty"`
	ImageURLs []string           `json:"imageUrls,omitempty"`
	LikedBy   []uuid.UUID        `json:"likedBy,omitempty"`
	LikeCount int                `json:"likeCount"`
	Comments  []*commentResponse `json:"comments,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func newPostResponse(p *entity.Post) *postResponse {
	return &postResponse{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Caption:   p.Caption,
		ImageURLs: p.ImageURLs,
		LikedBy:   p.LikedBy,
		LikeCount: len(p.LikedBy),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func newPostResponses(posts []*entity.Post) []*postResponse {
	out := make([]*postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, newPostResponse(p))
	}

	return out
}

// CreatePost handles publishing a new post by the caller.
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.CreatePost(c.Request().Context(), &usecase.CreatePostInput{
		AuthorID:  userID,
		Caption:   req.Caption,
		ImageURLs: req.ImageURLs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newPostResponse(post), "Post created successfully")
}

// GetPost handles fetching a single post with its likes and comments.
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	ctx := c.Request().Context()

	post, err := h.uc.GetPost(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	comments, err := h.uc.ListComments(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	res := newPostResponse(post)
	res.Comments = newCommentResponses(comments)

	return response.Success(c, http.StatusOK, res, "Post retrieved successfully")
}

// ListFeed handles fetching a page of recent posts across all users.
func (h *PostHandler) ListFeed(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	posts, err := h.uc.ListFeed(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPostResponses(posts), "Feed retrieved successfully")
}

// ListPostsByAuthor handles listing every post by the given user.
func (h *PostHandler) ListPostsByAuthor(c echo.Context) error {
	authorID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	posts, err := h.uc.ListPostsByAuthor(c.Request().Context(), authorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPostResponses(posts), "Posts retrieved successfully")
}

// UpdatePost handles editing a post the caller authored.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}

	post, err := h.uc.UpdatePost(c.Request().Context(), postID, userID, &usecase.UpdatePostInput{
		Caption:   req.Caption,
		ImageURLs: req.ImageURLs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPostResponse(post), "Post updated successfully")
}

// DeletePost handles removing a post the caller authored.
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	if err := h.uc.DeletePost(c.Request().Context(), postID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Post deleted"}, "Post deleted successfully")
}

// LikePost handles recording the caller's like on a post.
func (h *PostHandler) LikePost(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	if err := h.uc.LikePost(c.Request().Context(), postID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Post liked"}, "Post liked")
}

// UnlikePost handles removing the caller's like from a post.
func (h *PostHandler) UnlikePost(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	if err := h.uc.UnlikePost(c.Request().Context(), postID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Like removed"}, "Like removed")
}

// AddComment handles attaching a comment to a post.
func (h *PostHandler) AddComment(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	comment, err := h.uc.AddComment(c.Request().Context(), postID, userID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCommentResponse(comment), "Comment added successfully")
}

// ListComments handles listing every comment on a post.
func (h *PostHandler) ListComments(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	comments, err := h.uc.ListComments(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCommentResponses(comments), "Comments retrieved successfully")
}

// DeleteComment handles removing a comment the caller wrote.
func (h *PostHandler) DeleteComment(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid comment ID")
	}

	if err := h.uc.DeleteComment(c.Request().Context(), commentID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Comment deleted"}, "Comment deleted successfully")
}
