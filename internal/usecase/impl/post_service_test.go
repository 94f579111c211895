package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	mockRepo "connect/internal/mocks/repository"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type postServiceFixtures struct {
	service  usecase.PostUsecase
	postRepo *mockRepo.MockPostRepository
}

func createTestPostService(t *testing.T) postServiceFixtures {
	postRepo := mockRepo.NewMockPostRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPostService(PostServiceParams{
		PostRepo: postRepo,
		Logger:   logger,
	})

	return postServiceFixtures{
		service:  service,
		postRepo: postRepo,
	}
}

func TestPostService_CreatePost_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	authorID := uuid.New()
	input := &usecase.CreatePostInput{
		AuthorID:  authorID,
		Caption:   "First day on campus",
		ImageURLs: []string{"http://localhost:8080/uploads/posts/a.png"},
	}

	fx.postRepo.EXPECT().
		CreatePost(ctx, mock.AnythingOfType("*entity.Post")).
		Run(func(ctx context.Context, post *entity.Post) {
			post.ID = uuid.New()
		}).
		Return(nil)

	post, err := fx.service.CreatePost(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, authorID, post.AuthorID)
	assert.Equal(t, "First day on campus", post.Caption)
	assert.NotEqual(t, uuid.Nil, post.ID)
}

func TestPostService_GetPost_NotFound(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()

	fx.postRepo.EXPECT().FindPostByID(ctx, postID).Return(nil, repository.ErrPostNotFound)

	post, err := fx.service.GetPost(ctx, postID)

	require.Error(t, err)
	assert.Nil(t, post)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestPostService_ListFeed_ClampsPagination(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	want := []*entity.Post{{ID: uuid.New()}}

	fx.postRepo.EXPECT().FindRecentPosts(ctx, defaultFeedLimit, 0).Return(want, nil)

	got, err := fx.service.ListFeed(ctx, 0, -5)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPostService_ListFeed_CapsLimit(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()

	fx.postRepo.EXPECT().FindRecentPosts(ctx, maxFeedLimit, 40).Return([]*entity.Post{}, nil)

	_, err := fx.service.ListFeed(ctx, 500, 40)

	require.NoError(t, err)
}

func TestPostService_UpdatePost_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	authorID := uuid.New()
	caption := "Updated caption"
	existing := &entity.Post{ID: postID, AuthorID: authorID, Caption: "Old caption"}

	fx.postRepo.EXPECT().FindPostByID(ctx, postID).Return(existing, nil)
	fx.postRepo.EXPECT().
		UpdatePost(ctx, mock.AnythingOfType("*entity.Post")).
		Run(func(ctx context.Context, post *entity.Post) {
			assert.Equal(t, "Updated caption", post.Caption)
		}).
		Return(nil)

	post, err := fx.service.UpdatePost(ctx, postID, authorID, &usecase.UpdatePostInput{Caption: &caption})

	require.NoError(t, err)
	assert.Equal(t, "Updated caption", post.Caption)
}

func TestPostService_UpdatePost_NotAuthor(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	caption := "Hijacked"
	existing := &entity.Post{ID: postID, AuthorID: uuid.New()}

	fx.postRepo.EXPECT().FindPostByID(ctx, postID).Return(existing, nil)

	post, err := fx.service.UpdatePost(ctx, postID, uuid.New(), &usecase.UpdatePostInput{Caption: &caption})

	require.Error(t, err)
	assert.Nil(t, post)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPostService_DeletePost_NotAuthor(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	existing := &entity.Post{ID: postID, AuthorID: uuid.New()}

	fx.postRepo.EXPECT().FindPostByID(ctx, postID).Return(existing, nil)

	err := fx.service.DeletePost(ctx, postID, uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPostService_LikePost_PostMissing(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	userID := uuid.New()

	fx.postRepo.EXPECT().AddLike(ctx, postID, userID).Return(repository.ErrPostNotFound)

	err := fx.service.LikePost(ctx, postID, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestPostService_LikePost_Idempotent(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	userID := uuid.New()

	fx.postRepo.EXPECT().AddLike(ctx, postID, userID).Return(nil).Twice()

	require.NoError(t, fx.service.LikePost(ctx, postID, userID))
	require.NoError(t, fx.service.LikePost(ctx, postID, userID))
}

func TestPostService_AddComment_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	authorID := uuid.New()

	fx.postRepo.EXPECT().FindPostByID(ctx, postID).Return(&entity.Post{ID: postID}, nil)
	fx.postRepo.EXPECT().
		CreateComment(ctx, mock.AnythingOfType("*entity.Comment")).
		Run(func(ctx context.Context, comment *entity.Comment) {
			comment.ID = uuid.New()
		}).
		Return(nil)

	comment, err := fx.service.AddComment(ctx, postID, authorID, "Nice shot!")

	require.NoError(t, err)
	require.NotNil(t, comment)
	assert.Equal(t, postID, comment.PostID)
	assert.Equal(t, authorID, comment.AuthorID)
	assert.Equal(t, "Nice shot!", comment.Content)
}

func TestPostService_AddComment_PostMissing(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()

	fx.postRepo.EXPECT().FindPostByID(ctx, postID).Return(nil, repository.ErrPostNotFound)

	comment, err := fx.service.AddComment(ctx, postID, uuid.New(), "Nice shot!")

	require.Error(t, err)
	assert.Nil(t, comment)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestPostService_DeleteComment_NotAuthor(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	commentID := uuid.New()
	existing := &entity.Comment{ID: commentID, AuthorID: uuid.New()}

	fx.postRepo.EXPECT().FindCommentByID(ctx, commentID).Return(existing, nil)

	err := fx.service.DeleteComment(ctx, commentID, uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPostService_DeleteComment_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	commentID := uuid.New()
	authorID := uuid.New()
	existing := &entity.Comment{ID: commentID, AuthorID: authorID}

	fx.postRepo.EXPECT().FindCommentByID(ctx, commentID).Return(existing, nil)
	fx.postRepo.EXPECT().DeleteComment(ctx, commentID).Return(nil)

	require.NoError(t, fx.service.DeleteComment(ctx, commentID, authorID))
}
