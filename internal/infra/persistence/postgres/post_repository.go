// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	"connect/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// postRepository implements the domain.PostRepository interface.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// CreatePost persists a new post.
func (repo *postRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// FindPostByID retrieves a post by its unique ID, including likes.
func (repo *postRepository) FindPostByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).
		Preload("Likes").
		Where("id = ?", id).
		First(&postM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// FindPostsByAuthor retrieves all posts by the given user, newest first.
func (repo *postRepository) FindPostsByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error) {
	var postModels []model.PostModel
	err := repo.db.WithContext(ctx).
		Preload("Likes").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&postModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts by author")
	}

	return toPostDomainSlice(postModels), nil
}

// FindRecentPosts retrieves a page of posts across all users, newest first.
func (repo *postRepository) FindRecentPosts(ctx context.Context, limit, offset int) ([]*entity.Post, error) {
	var postModels []model.PostModel
	err := repo.db.WithContext(ctx).
		Preload("Likes").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&postModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent posts")
	}

	return toPostDomainSlice(postModels), nil
}

// UpdatePost updates the mutable fields of an existing post.
func (repo *postRepository) UpdatePost(ctx context.Context, post *entity.Post) error {
	err := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", post.ID).
		Select("caption", "image_urls").
		Updates(&model.PostModel{Caption: post.Caption, ImageURLs: post.ImageURLs}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update post")
	}

	return nil
}

// DeletePost removes a post with its likes and comments.
func (repo *postRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("post_id = ?", id).Delete(&model.PostLikeModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete post likes")
	}
	if err := repo.db.WithContext(ctx).Where("post_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete post comments")
	}

	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PostModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// AddLike records the user's like on a post. Liking twice is a no-op.
func (repo *postRepository) AddLike(ctx context.Context, postID, userID uuid.UUID) error {
	likeM := model.PostLikeModel{PostID: postID, UserID: userID}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&likeM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPostNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add like")
	}

	return nil
}

// RemoveLike removes the user's like from a post. Removing a missing like is a no-op.
func (repo *postRepository) RemoveLike(ctx context.Context, postID, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.PostLikeModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove like")
	}

	return nil
}

// CreateComment persists a new comment on a post.
func (repo *postRepository) CreateComment(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPostNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// FindCommentByID retrieves a comment by its unique ID.
func (repo *postRepository) FindCommentByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&commentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by id")
	}

	return toCommentDomain(&commentM), nil
}

// FindCommentsByPost retrieves all comments on a post, oldest first.
func (repo *postRepository) FindCommentsByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	err := repo.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&commentModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for i := range commentModels {
		comments = append(comments, toCommentDomain(&commentModels[i]))
	}

	return comments, nil
}

// DeleteComment removes a comment by its ID.
func (repo *postRepository) DeleteComment(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CommentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	likedBy := make([]uuid.UUID, 0, len(data.Likes))
	for _, like := range data.Likes {
		likedBy = append(likedBy, like.UserID)
	}

	return &entity.Post{
		ID:        data.ID,
		AuthorID:  data.AuthorID,
		Caption:   data.Caption,
		ImageURLs: data.ImageURLs,
		LikedBy:   likedBy,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toPostDomainSlice(models []model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, 0, len(models))
	for i := range models {
		posts = append(posts, toPostDomain(&models[i]))
	}

	return posts
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:        data.ID,
		AuthorID:  data.AuthorID,
		Caption:   data.Caption,
		ImageURLs: data.ImageURLs,
	}
}

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID,
		PostID:    data.PostID,
		AuthorID:  data.AuthorID,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
	}
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:       data.ID,
		PostID:   data.PostID,
		AuthorID: data.AuthorID,
		Content:  data.Content,
	}
}
