package usecases

import (
	"context"
	"time"

	"vendora/internal/domain/resolution"
	"vendora/internal/shared/biztime"
	"vendora/internal/shared/errors"
	"vendora/internal/shared/logger"
)

type CloseIssueCommand struct {
	UserID  uint
	IssueID uint
}

type CloseIssueResult struct {
	IssueID  uint
	Status   string
	ClosedAt time.Time
}

// CloseIssueUseCase ends an issue at the buyer's request. The final
// status depends on what the seller answered, which the domain
// decides.
type CloseIssueUseCase struct {
	issueRepo resolution.IssueRepository
	events    EventPublisher
	logger    logger.Interface
}

func NewCloseIssueUseCase(
	issueRepo resolution.IssueRepository,
	events EventPublisher,
	logger logger.Interface,
) *CloseIssueUseCase {
	return &CloseIssueUseCase{
		issueRepo: issueRepo,
		events:    events,
		logger:    logger,
	}
}

func (uc *CloseIssueUseCase) Execute(ctx context.Context, cmd CloseIssueCommand) (*CloseIssueResult, error) {
	uc.logger.Infow("executing close issue use case", "issue_id", cmd.IssueID, "user_id", cmd.UserID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}

	issue, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		return nil, err
	}

	if err := issue.Close(cmd.UserID); err != nil {
		uc.logger.Warnw("close issue rejected", "error", err, "issue_id", cmd.IssueID)
		return nil, translateDomainError(err)
	}

	if err := uc.issueRepo.Update(ctx, issue); err != nil {
		uc.logger.Errorw("failed to update issue", "error", err, "issue_id", cmd.IssueID)
		return nil, err
	}

	event := resolution.NewIssueClosedEvent(issue, biztime.NowUTC())
	if err := uc.events.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish issue closed event", "error", err, "issue_id", issue.ID())
	}

	uc.logger.Infow("issue closed", "issue_id", issue.ID(), "status", issue.Status().String())

	return &CloseIssueResult{
		IssueID:  issue.ID(),
		Status:   issue.Status().String(),
		ClosedAt: *issue.ClosedAt(),
	}, nil
}
