// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for post persistence.
var (
	// ErrPostNotFound is returned when a post is not found.
	ErrPostNotFound = errors.New("post not found")
	// ErrCommentNotFound is returned when a comment is not found.
	ErrCommentNotFound = errors.New("comment not found")
)

// PostRepository defines the interface for post-related database operations.
type PostRepository interface {
	// CreatePost persists a new post.
	CreatePost(ctx context.Context, post *entity.Post) error

	// FindPostByID retrieves a post by its unique ID, including likes.
	FindPostByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// FindPostsByAuthor retrieves all posts by the given user, newest first.
	FindPostsByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error)

	// FindRecentPosts retrieves a page of posts across all users, newest first.
	FindRecentPosts(ctx context.Context, limit, offset int) ([]*entity.Post, error)

	// UpdatePost updates an existing post record.
	UpdatePost(ctx context.Context, post *entity.Post) error

	// DeletePost removes a post with its likes and comments.
	DeletePost(ctx context.Context, id uuid.UUID) error

	// AddLike records the user's like on a post. Liking twice is a no-op.
	AddLike(ctx context.Context, postID, userID uuid.UUID) error

	// RemoveLike removes the user's like from a post. Removing a missing like is a no-op.
	RemoveLike(ctx context.Context, postID, userID uuid.UUID) error

	// CreateComment persists a new comment on a post.
	CreateComment(ctx context.Context, comment *entity.Comment) error

	// FindCommentByID retrieves a comment by its unique ID.
	FindCommentByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// FindCommentsByPost retrieves all comments on a post, oldest first.
	FindCommentsByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error)

	// DeleteComment removes a comment by its ID.
	DeleteComment(ctx context.Context, id uuid.UUID) error
}
