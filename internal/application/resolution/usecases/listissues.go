package usecases

import (
	"context"

	"vendora/internal/application/resolution/dto"
	"vendora/internal/domain/resolution"
	vo "vendora/internal/domain/resolution/valueobjects"
	"vendora/internal/shared/errors"
	"vendora/internal/shared/logger"
)

type ListIssuesQuery struct {
	UserID    uint
	Status    string
	Role      string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListIssuesResult struct {
	Issues []dto.IssueListItemDTO
	Total  int64
}

// ListIssuesUseCase lists the user's own issues, on either side of the
// table.
type ListIssuesUseCase struct {
	issueRepo resolution.IssueRepository
	logger    logger.Interface
}

func NewListIssuesUseCase(
	issueRepo resolution.IssueRepository,
	logger logger.Interface,
) *ListIssuesUseCase {
	return &ListIssuesUseCase{
		issueRepo: issueRepo,
		logger:    logger,
	}
}

func (uc *ListIssuesUseCase) Execute(ctx context.Context, query ListIssuesQuery) (*ListIssuesResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	filter, err := buildCaseFilter(query.Status, query.Role, query.Page, query.PageSize, query.SortBy, query.SortOrder, func(s string) error {
		_, err := vo.NewIssueStatus(s)
		return err
	})
	if err != nil {
		return nil, err
	}

	issues, total, err := uc.issueRepo.GetUserIssues(ctx, query.UserID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list issues", "error", err, "user_id", query.UserID)
		return nil, err
	}

	items := make([]dto.IssueListItemDTO, 0, len(issues))
	for _, issue := range issues {
		items = append(items, dto.ToIssueListItemDTO(issue, query.UserID))
	}

	return &ListIssuesResult{Issues: items, Total: total}, nil
}

// buildCaseFilter normalizes list parameters shared by issue and
// dispute listings.
func buildCaseFilter(status, role string, page, pageSize int, sortBy, sortOrder string, validateStatus func(string) error) (resolution.CaseFilter, error) {
	filter := resolution.CaseFilter{
		Page:      page,
		PageSize:  pageSize,
		SortBy:    sortBy,
		SortOrder: sortOrder,
	}

	if status != "" {
		if err := validateStatus(status); err != nil {
			return resolution.CaseFilter{}, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if role != "" {
		r := resolution.Role(role)
		if !r.IsParticipant() {
			return resolution.CaseFilter{}, errors.NewValidationError("role must be issuer or respondent")
		}
		filter.Role = &r
	}

	return filter, nil
}
