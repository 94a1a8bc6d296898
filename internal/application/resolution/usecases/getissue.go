package usecases

import (
	"context"
	"time"

	"vendora/internal/application/resolution/dto"
	"vendora/internal/domain/resolution"
	"vendora/internal/shared/biztime"
	"vendora/internal/shared/errors"
	"vendora/internal/shared/logger"
)

type GetIssueQuery struct {
	UserID      uint
	IssueID     uint
	IssueNumber string
}

// GetIssueUseCase loads a single issue for a participant. Lookup is by
// ID or by case number; non-participants get a forbidden error, not a
// not-found, since the case does exist.
type GetIssueUseCase struct {
	issueRepo      resolution.IssueRepository
	responseWindow time.Duration
	logger         logger.Interface
}

func NewGetIssueUseCase(
	issueRepo resolution.IssueRepository,
	responseWindow time.Duration,
	logger logger.Interface,
) *GetIssueUseCase {
	return &GetIssueUseCase{
		issueRepo:      issueRepo,
		responseWindow: responseWindow,
		logger:         logger,
	}
}

func (uc *GetIssueUseCase) Execute(ctx context.Context, query GetIssueQuery) (*dto.IssueDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if query.IssueID == 0 && query.IssueNumber == "" {
		return nil, errors.NewValidationError("issue ID or number is required")
	}

	var (
		issue *resolution.Issue
		err   error
	)
	if query.IssueID != 0 {
		issue, err = uc.issueRepo.GetByID(ctx, query.IssueID)
	} else {
		issue, err = uc.issueRepo.GetByNumber(ctx, query.IssueNumber)
	}
	if err != nil {
		return nil, err
	}

	if !issue.RoleOf(query.UserID).IsParticipant() {
		return nil, errors.NewForbiddenError("you are not a participant in this case")
	}

	return dto.ToIssueDTO(issue, query.UserID, uc.responseWindow, biztime.NowUTC()), nil
}
