package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vendora/internal/domain/resolution"
	vo "vendora/internal/domain/resolution/valueobjects"
	"vendora/internal/infrastructure/persistence/mappers"
	"vendora/internal/infrastructure/persistence/models"
	"vendora/internal/shared/db"
	apperrors "vendora/internal/shared/errors"
)

// openDisputeStatuses are the non-terminal dispute statuses, used by
// the open-case eligibility query.
var openDisputeStatuses = []string{
	vo.DisputeStatusPending.String(),
	vo.DisputeStatusUnderReview.String(),
	vo.DisputeStatusNegotiation.String(),
}

type DisputeRepository struct {
	db     *gorm.DB
	mapper mappers.DisputeMapper
}

func NewDisputeRepository(gdb *gorm.DB) *DisputeRepository {
	return &DisputeRepository{
		db:     gdb,
		mapper: mappers.NewDisputeMapper(),
	}
}

func (r *DisputeRepository) Save(ctx context.Context, dispute *resolution.Dispute) error {
	model := r.mapper.ToModel(dispute)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save dispute: %w", err)
	}

	dispute.SetID(model.ID)
	return nil
}

// Update writes the dispute back guarded by its version, same contract
// as IssueRepository.Update.
func (r *DisputeRepository) Update(ctx context.Context, dispute *resolution.Dispute) error {
	model := r.mapper.ToModel(dispute)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.DisputeModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"status":               model.Status,
			"seller_decision":      model.SellerDecision,
			"seller_response_text": model.SellerResponseText,
			"responded_at":         model.RespondedAt,
			"negotiation_deadline": model.NegotiationDeadline,
			"closed_at":            model.ClosedAt,
			"updated_at":           model.UpdatedAt,
			"version":              model.Version + 1,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update dispute: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewInvalidStateError("dispute was modified concurrently, please retry")
	}

	return nil
}

func (r *DisputeRepository) GetByID(ctx context.Context, disputeID uint) (*resolution.Dispute, error) {
	var model models.DisputeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, disputeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("dispute not found")
		}
		return nil, fmt.Errorf("failed to find dispute: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DisputeRepository) GetByNumber(ctx context.Context, number string) (*resolution.Dispute, error) {
	var model models.DisputeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("dispute_number = ?", number).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("dispute not found")
		}
		return nil, fmt.Errorf("failed to find dispute: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DisputeRepository) GetBySourceIssueID(ctx context.Context, issueID uint) (*resolution.Dispute, error) {
	var model models.DisputeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("source_issue_id = ?", issueID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("dispute not found")
		}
		return nil, fmt.Errorf("failed to find dispute: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DisputeRepository) GetUserDisputes(ctx context.Context, userID uint, filters resolution.CaseFilter) ([]*resolution.Dispute, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.DisputeModel{})
	tx = applyCaseFilters(tx, userID, filters)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count disputes: %w", err)
	}

	var rows []models.DisputeModel
	if err := applyCasePaging(tx, filters).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list disputes: %w", err)
	}

	disputes := make([]*resolution.Dispute, 0, len(rows))
	for i := range rows {
		dispute, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		disputes = append(disputes, dispute)
	}

	return disputes, total, nil
}

func (r *DisputeRepository) HasOpenCase(ctx context.Context, advertisementID, userID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.DisputeModel{}).
		Where("advertisement_id = ?", advertisementID).
		Where("issuer_id = ? OR respondent_id = ?", userID, userID).
		Where("status IN ?", openDisputeStatuses).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check open disputes: %w", err)
	}

	return count > 0, nil
}

func (r *DisputeRepository) CountByStatus(ctx context.Context, userID uint) (map[string]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	return countCaseStatuses(tx.Model(&models.DisputeModel{}), userID)
}
