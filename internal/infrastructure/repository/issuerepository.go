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

// allowedCaseOrderByFields whitelists ORDER BY columns to keep user
// input out of raw SQL.
var allowedCaseOrderByFields = map[string]bool{
	"id":         true,
	"status":     true,
	"created_at": true,
	"updated_at": true,
}

// openIssueStatuses are the non-terminal issue statuses, used by the
// open-case eligibility query.
var openIssueStatuses = []string{
	vo.IssueStatusOpen.String(),
	vo.IssueStatusSellerResponded.String(),
}

type IssueRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewIssueRepository(gdb *gorm.DB) *IssueRepository {
	return &IssueRepository{
		db:     gdb,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *IssueRepository) Save(ctx context.Context, issue *resolution.Issue) error {
	model := r.mapper.ToModel(issue)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save issue: %w", err)
	}

	issue.SetID(model.ID)
	return nil
}

// Update writes the issue back guarded by its version. When the row
// has moved on since this aggregate was loaded, zero rows match and
// the caller gets an invalid-state error instead of a silent lost
// update.
func (r *IssueRepository) Update(ctx context.Context, issue *resolution.Issue) error {
	model := r.mapper.ToModel(issue)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.IssueModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"status":               model.Status,
			"seller_decision":      model.SellerDecision,
			"seller_response_text": model.SellerResponseText,
			"responded_at":         model.RespondedAt,
			"closed_at":            model.ClosedAt,
			"updated_at":           model.UpdatedAt,
			"version":              model.Version + 1,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update issue: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewInvalidStateError("issue was modified concurrently, please retry")
	}

	return nil
}

func (r *IssueRepository) GetByID(ctx context.Context, issueID uint) (*resolution.Issue, error) {
	var model models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, issueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("issue not found")
		}
		return nil, fmt.Errorf("failed to find issue: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *IssueRepository) GetByNumber(ctx context.Context, number string) (*resolution.Issue, error) {
	var model models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("issue_number = ?", number).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("issue not found")
		}
		return nil, fmt.Errorf("failed to find issue: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *IssueRepository) GetUserIssues(ctx context.Context, userID uint, filters resolution.CaseFilter) ([]*resolution.Issue, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.IssueModel{})
	tx = applyCaseFilters(tx, userID, filters)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count issues: %w", err)
	}

	var rows []models.IssueModel
	if err := applyCasePaging(tx, filters).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list issues: %w", err)
	}

	issues := make([]*resolution.Issue, 0, len(rows))
	for i := range rows {
		issue, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		issues = append(issues, issue)
	}

	return issues, total, nil
}

func (r *IssueRepository) HasOpenCase(ctx context.Context, advertisementID, userID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.IssueModel{}).
		Where("advertisement_id = ?", advertisementID).
		Where("issuer_id = ? OR respondent_id = ?", userID, userID).
		Where("status IN ?", openIssueStatuses).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check open issues: %w", err)
	}

	return count > 0, nil
}

func (r *IssueRepository) CountByStatus(ctx context.Context, userID uint) (map[string]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	return countCaseStatuses(tx.Model(&models.IssueModel{}), userID)
}

// applyCaseFilters narrows a case query to the user's own cases plus
// the optional filters. Shared between the issue and dispute
// repositories, whose filterable columns are identical.
func applyCaseFilters(tx *gorm.DB, userID uint, filters resolution.CaseFilter) *gorm.DB {
	switch {
	case filters.Role != nil && *filters.Role == resolution.RoleIssuer:
		tx = tx.Where("issuer_id = ?", userID)
	case filters.Role != nil && *filters.Role == resolution.RoleRespondent:
		tx = tx.Where("respondent_id = ?", userID)
	default:
		tx = tx.Where("issuer_id = ? OR respondent_id = ?", userID, userID)
	}

	if filters.Status != nil {
		tx = tx.Where("status = ?", *filters.Status)
	}
	if filters.AdvertisementID != nil {
		tx = tx.Where("advertisement_id = ?", *filters.AdvertisementID)
	}

	return tx
}

func applyCasePaging(tx *gorm.DB, filters resolution.CaseFilter) *gorm.DB {
	orderBy := "created_at"
	if filters.SortBy != "" && allowedCaseOrderByFields[filters.SortBy] {
		orderBy = filters.SortBy
	}
	direction := "DESC"
	if filters.SortOrder == "asc" {
		direction = "ASC"
	}
	tx = tx.Order(fmt.Sprintf("%s %s", orderBy, direction))

	if filters.PageSize > 0 {
		page := filters.Page
		if page < 1 {
			page = 1
		}
		tx = tx.Offset((page - 1) * filters.PageSize).Limit(filters.PageSize)
	}

	return tx
}

func countCaseStatuses(tx *gorm.DB, userID uint) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}

	var rows []statusCount
	err := tx.
		Select("status, COUNT(*) as count").
		Where("issuer_id = ? OR respondent_id = ?", userID, userID).
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count cases by status: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}
