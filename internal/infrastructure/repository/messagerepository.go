package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"vendora/internal/domain/resolution"
	vo "vendora/internal/domain/resolution/valueobjects"
	"vendora/internal/infrastructure/persistence/mappers"
	"vendora/internal/infrastructure/persistence/models"
	"vendora/internal/shared/db"
)

type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.ThreadMapper
}

func NewMessageRepository(gdb *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db:     gdb,
		mapper: mappers.NewThreadMapper(),
	}
}

func (r *MessageRepository) Save(ctx context.Context, message *resolution.Message) error {
	model := r.mapper.MessageToModel(message)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	message.SetID(model.ID)
	return nil
}

func (r *MessageRepository) GetByCase(ctx context.Context, caseKind vo.CaseKind, caseID uint) ([]*resolution.Message, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.CaseMessageModel
	err := tx.
		Where("case_kind = ? AND case_id = ?", caseKind.String(), caseID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]*resolution.Message, 0, len(rows))
	for i := range rows {
		message, err := r.mapper.MessageToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return messages, nil
}
