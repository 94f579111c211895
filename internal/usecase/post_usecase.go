package usecase

import (
	"context"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePostInput defines the data required to publish a new post.
type CreatePostInput struct {
	AuthorID  uuid.UUID
	Caption   string
	ImageURLs []string
}

// UpdatePostInput defines the mutable post fields.
type UpdatePostInput struct {
	Caption   *string
	ImageURLs []string
}

// PostUsecase defines the interface for post, like, and comment operations.
type PostUsecase interface {
	// CreatePost publishes a new post.
	CreatePost(ctx context.Context, input *CreatePostInput) (*entity.Post, error)

	// GetPost retrieves a post by ID, including its likes.
	GetPost(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// ListFeed retrieves a page of recent posts across all users, newest first.
	ListFeed(ctx context.Context, limit, offset int) ([]*entity.Post, error)

	// ListPostsByAuthor retrieves all posts by the given user, newest first.
	ListPostsByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error)

	// UpdatePost applies the given changes to a post the user authored.
	UpdatePost(ctx context.Context, postID, userID uuid.UUID, input *UpdatePostInput) (*entity.Post, error)

	// DeletePost removes a post the user authored, with its likes and comments.
	DeletePost(ctx context.Context, postID, userID uuid.UUID) error

	// LikePost records the user's like on a post. Liking twice is a no-op.
	LikePost(ctx context.Context, postID, userID uuid.UUID) error

	// UnlikePost removes the user's like from a post.
	UnlikePost(ctx context.Context, postID, userID uuid.UUID) error

	// AddComment attaches a comment to a post.
	AddComment(ctx context.Context, postID, authorID uuid.UUID, content string) (*entity.Comment, error)

	// ListComments retrieves all comments on a post, oldest first.
	ListComments(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error)

	// DeleteComment removes a comment written by the user.
	DeleteComment(ctx context.Context, commentID, userID uuid.UUID) error
}
