package impl

import (
	"context"
	"log/slog"

	deliverycontext "connect/internal/delivery/context"
	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 100
)

// postService implements the PostUsecase interface.
type postService struct {
	postRepo repository.PostRepository
	logger   *slog.Logger
}

// PostServiceParams holds dependencies for postService, injected by Fx.
type PostServiceParams struct {
	fx.In

	PostRepo repository.PostRepository
	Logger   *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		postRepo: params.PostRepo,
		logger:   params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost publishes a new post.
func (srv *postService) CreatePost(ctx context.Context, input *usecase.CreatePostInput) (*entity.Post, error) {
	srv.log(ctx).Info("Creating post", slog.Any("authorID", input.AuthorID))

	post := &entity.Post{
		AuthorID:  input.AuthorID,
		Caption:   input.Caption,
		ImageURLs: input.ImageURLs,
	}

	if err := srv.postRepo.CreatePost(ctx, post); err != nil {
		srv.log(ctx).Error("Failed to create post", slog.Any("error", err), slog.Any("authorID", input.AuthorID))

		return nil, errors.Wrap(err, "failed to create post")
	}

	return post, nil
}

// GetPost retrieves a post by ID, including its likes.
func (srv *postService) GetPost(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	post, err := srv.postRepo.FindPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPostNotFound, "post lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}

// ListFeed retrieves a page of recent posts across all users, newest first.
func (srv *postService) ListFeed(ctx context.Context, limit, offset int) ([]*entity.Post, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}
	if offset < 0 {
		offset = 0
	}

	posts, err := srv.postRepo.FindRecentPosts(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feed")
	}

	return posts, nil
}

// ListPostsByAuthor retrieves all posts by the given user, newest first.
func (srv *postService) ListPostsByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error) {
	posts, err := srv.postRepo.FindPostsByAuthor(ctx, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts by author")
	}

	return posts, nil
}

// UpdatePost applies the given changes to a post the user authored.
func (srv *postService) UpdatePost(ctx context.Context, postID, userID uuid.UUID, input *usecase.UpdatePostInput) (*entity.Post, error) {
	post, err := srv.loadOwnedPost(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	if input.Caption != nil {
		post.Caption = *input.Caption
	}
	if input.ImageURLs != nil {
		post.ImageURLs = input.ImageURLs
	}

	if err := srv.postRepo.UpdatePost(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to update post")
	}

	return post, nil
}

// DeletePost removes a post the user authored, with its likes and comments.
func (srv *postService) DeletePost(ctx context.Context, postID, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting post", slog.Any("postID", postID), slog.Any("userID", userID))

	if _, err := srv.loadOwnedPost(ctx, postID, userID); err != nil {
		return err
	}

	if err := srv.postRepo.DeletePost(ctx, postID); err != nil {
		return errors.Wrap(err, "failed to delete post")
	}

	return nil
}

// loadOwnedPost loads a post and checks the user authored it.
func (srv *postService) loadOwnedPost(ctx context.Context, postID, userID uuid.UUID) (*entity.Post, error) {
	post, err := srv.postRepo.FindPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPostNotFound, "post lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	if post.AuthorID != userID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "post does not belong to user")
	}

	return post, nil
}

// LikePost records the user's like on a post. Liking twice is a no-op.
func (srv *postService) LikePost(ctx context.Context, postID, userID uuid.UUID) error {
	if err := srv.postRepo.AddLike(ctx, postID, userID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return errors.Wrap(domainerrors.ErrPostNotFound, "like rejected")
		}

		return errors.Wrap(err, "failed to add like")
	}

	return nil
}

// UnlikePost removes the user's like from a post.
func (srv *postService) UnlikePost(ctx context.Context, postID, userID uuid.UUID) error {
	if err := srv.postRepo.RemoveLike(ctx, postID, userID); err != nil {
		return errors.Wrap(err, "failed to remove like")
	}

	return nil
}

// AddComment attaches a comment to a post.
func (srv *postService) AddComment(ctx context.Context, postID, authorID uuid.UUID, content string) (*entity.Comment, error) {
	if _, err := srv.GetPost(ctx, postID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	}

	if err := srv.postRepo.CreateComment(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	return comment, nil
}

// ListComments retrieves all comments on a post, oldest first.
func (srv *postService) ListComments(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error) {
	comments, err := srv.postRepo.FindCommentsByPost(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// DeleteComment removes a comment written by the user.
func (srv *postService) DeleteComment(ctx context.Context, commentID, userID uuid.UUID) error {
	comment, err := srv.postRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return errors.Wrap(domainerrors.ErrCommentNotFound, "comment lookup failed")
		}

		return errors.Wrap(err, "failed to find comment")
	}

	if comment.AuthorID != userID {
		return errors.Wrap(domainerrors.ErrForbidden, "comment does not belong to user")
	}

	if err := srv.postRepo.DeleteComment(ctx, commentID); err != nil {
		return errors.Wrap(err, "failed to delete comment")
	}

	return nil
}
