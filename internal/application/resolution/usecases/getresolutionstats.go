package usecases

import (
	"context"

	"vendora/internal/domain/resolution"
	vo "vendora/internal/domain/resolution/valueobjects"
	"vendora/internal/shared/errors"
	"vendora/internal/shared/logger"
)

type GetResolutionStatsQuery struct {
	UserID uint
}

type GetResolutionStatsResult struct {
	IssuesByStatus   map[string]int64 `json:"issues_by_status"`
	DisputesByStatus map[string]int64 `json:"disputes_by_status"`
	TotalIssues      int64            `json:"total_issues"`
	TotalDisputes    int64            `json:"total_disputes"`
	ActiveCases      int64            `json:"active_cases"`
}

// GetResolutionStatsUseCase aggregates the user's case counts by
// status, for the account dashboard.
type GetResolutionStatsUseCase struct {
	issueRepo   resolution.IssueRepository
	disputeRepo resolution.DisputeRepository
	logger      logger.Interface
}

func NewGetResolutionStatsUseCase(
	issueRepo resolution.IssueRepository,
	disputeRepo resolution.DisputeRepository,
	logger logger.Interface,
) *GetResolutionStatsUseCase {
	return &GetResolutionStatsUseCase{
		issueRepo:   issueRepo,
		disputeRepo: disputeRepo,
		logger:      logger,
	}
}

func (uc *GetResolutionStatsUseCase) Execute(ctx context.Context, query GetResolutionStatsQuery) (*GetResolutionStatsResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	issueCounts, err := uc.issueRepo.CountByStatus(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count issues", "error", err, "user_id", query.UserID)
		return nil, err
	}
	disputeCounts, err := uc.disputeRepo.CountByStatus(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count disputes", "error", err, "user_id", query.UserID)
		return nil, err
	}

	result := &GetResolutionStatsResult{
		IssuesByStatus:   issueCounts,
		DisputesByStatus: disputeCounts,
	}

	for status, count := range issueCounts {
		result.TotalIssues += count
		if s, err := vo.NewIssueStatus(status); err == nil && !s.IsTerminal() {
			result.ActiveCases += count
		}
	}
	for status, count := range disputeCounts {
		result.TotalDisputes += count
		if s, err := vo.NewDisputeStatus(status); err == nil && !s.IsTerminal() {
			result.ActiveCases += count
		}
	}

	return result, nil
}
