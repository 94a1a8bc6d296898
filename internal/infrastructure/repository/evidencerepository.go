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

type EvidenceRepository struct {
	db     *gorm.DB
	mapper mappers.ThreadMapper
}

func NewEvidenceRepository(gdb *gorm.DB) *EvidenceRepository {
	return &EvidenceRepository{
		db:     gdb,
		mapper: mappers.NewThreadMapper(),
	}
}

func (r *EvidenceRepository) Save(ctx context.Context, evidence *resolution.Evidence) error {
	model := r.mapper.EvidenceToModel(evidence)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save evidence: %w", err)
	}

	evidence.SetID(model.ID)
	return nil
}

func (r *EvidenceRepository) GetByCase(ctx context.Context, caseKind vo.CaseKind, caseID uint) ([]*resolution.Evidence, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.CaseEvidenceModel
	err := tx.
		Where("case_kind = ? AND case_id = ?", caseKind.String(), caseID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list evidence: %w", err)
	}

	records := make([]*resolution.Evidence, 0, len(rows))
	for i := range rows {
		record, err := r.mapper.EvidenceToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
