// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	"connect/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the domain.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// FindOrCreateConversation returns the thread between two users, creating it
// on first contact. The unique index on the canonical pair absorbs the race
// between two concurrent first messages.
func (repo *messageRepository) FindOrCreateConversation(ctx context.Context, userA, userB uuid.UUID) (*entity.Conversation, error) {
	first, second := entity.CanonicalPair(userA, userB)

	var convM model.ConversationModel
	err := repo.db.WithContext(ctx).
		Where("first_user_id = ? AND second_user_id = ?", first, second).
		First(&convM).Error
	if err == nil {
		return toConversationDomain(&convM), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "failed to find conversation")
	}

	convM = model.ConversationModel{FirstUserID: first, SecondUserID: second}
	if err := repo.db.WithContext(ctx).Create(&convM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Lost the creation race; fetch the winner's row.
			var existing model.ConversationModel
			if findErr := repo.db.WithContext(ctx).
				Where("first_user_id = ? AND second_user_id = ?", first, second).
				First(&existing).Error; findErr == nil {
				return toConversationDomain(&existing), nil
			}
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create conversation")
	}

	return toConversationDomain(&convM), nil
}

// FindConversationByID retrieves a conversation by its unique ID.
func (repo *messageRepository) FindConversationByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	var convM model.ConversationModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&convM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation by id")
	}

	return toConversationDomain(&convM), nil
}

// FindConversationsByUser retrieves the user's threads, most recently active first.
func (repo *messageRepository) FindConversationsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	var convModels []model.ConversationModel
	err := repo.db.WithContext(ctx).
		Where("first_user_id = ? OR second_user_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&convModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	conversations := make([]*entity.Conversation, 0, len(convModels))
	for i := range convModels {
		conversations = append(conversations, toConversationDomain(&convModels[i]))
	}

	return conversations, nil
}

// CreateMessage persists a new message and bumps the thread's activity timestamp.
func (repo *messageRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrConversationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	err := repo.db.WithContext(ctx).
		Model(&model.ConversationModel{}).
		Where("id = ?", message.ConversationID).
		Update("updated_at", time.Now()).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to bump conversation activity")
	}

	return nil
}

// FindMessagesByConversation retrieves a page of messages in a thread, newest first.
func (repo *messageRepository) FindMessagesByConversation(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*entity.Message, error) {
	var messageModels []model.MessageModel
	err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messageModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for i := range messageModels {
		messages = append(messages, toMessageDomain(&messageModels[i]))
	}

	return messages, nil
}

// MarkConversationRead marks every message in the thread not sent by the
// reader as read. Marking an already-read thread is a no-op.
func (repo *messageRepository) MarkConversationRead(ctx context.Context, conversationID, readerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = false", conversationID, readerID).
		Update("is_read", true).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark conversation read")
	}

	return nil
}

// CountUnreadByUser returns the number of unread messages addressed to the
// user, keyed by conversation ID.
func (repo *messageRepository) CountUnreadByUser(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int64, error) {
	type unreadRow struct {
		ConversationID uuid.UUID
		Count          int64
	}

	var rows []unreadRow
	err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Select("messages.conversation_id, COUNT(*) AS count").
		Joins("JOIN conversations ON conversations.id = messages.conversation_id").
		Where("(conversations.first_user_id = ? OR conversations.second_user_id = ?)", userID, userID).
		Where("messages.sender_id <> ? AND messages.is_read = false", userID).
		Group("messages.conversation_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unread messages")
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.ConversationID] = row.Count
	}

	return counts, nil
}

// --- Mapper Functions ---

func toConversationDomain(data *model.ConversationModel) *entity.Conversation {
	if data == nil {
		return nil
	}

	return &entity.Conversation{
		ID:           data.ID,
		FirstUserID:  data.FirstUserID,
		SecondUserID: data.SecondUserID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		SenderID:       data.SenderID,
		Content:        data.Content,
		IsRead:         data.IsRead,
		CreatedAt:      data.CreatedAt,
	}
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		SenderID:       data.SenderID,
		Content:        data.Content,
		IsRead:         data.IsRead,
	}
}
