package usecases

import (
	"context"
	"time"

	"vendora/internal/domain/resolution"
	vo "vendora/internal/domain/resolution/valueobjects"
	"vendora/internal/shared/biztime"
	"vendora/internal/shared/errors"
	"vendora/internal/shared/logger"
	"vendora/internal/shared/sanitize"
)

type RespondToIssueCommand struct {
	UserID       uint
	IssueID      uint
	Decision     string
	ResponseText string
}

type RespondToIssueResult struct {
	IssueID     uint
	Status      string
	Decision    string
	RespondedAt time.Time
}

// RespondToIssueUseCase records the seller's one-shot answer on an
// issue and drops a system message into the thread so the decision is
// visible inline with the conversation.
type RespondToIssueUseCase struct {
	issueRepo   resolution.IssueRepository
	messageRepo resolution.MessageRepository
	events      EventPublisher
	logger      logger.Interface
}

func NewRespondToIssueUseCase(
	issueRepo resolution.IssueRepository,
	messageRepo resolution.MessageRepository,
	events EventPublisher,
	logger logger.Interface,
) *RespondToIssueUseCase {
	return &RespondToIssueUseCase{
		issueRepo:   issueRepo,
		messageRepo: messageRepo,
		events:      events,
		logger:      logger,
	}
}

func (uc *RespondToIssueUseCase) Execute(ctx context.Context, cmd RespondToIssueCommand) (*RespondToIssueResult, error) {
	uc.logger.Infow("executing respond to issue use case", "issue_id", cmd.IssueID, "user_id", cmd.UserID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}
	decision, err := vo.NewDecision(cmd.Decision)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	issue, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		return nil, err
	}

	if err := issue.Respond(cmd.UserID, decision, sanitize.Text(cmd.ResponseText)); err != nil {
		uc.logger.Warnw("respond to issue rejected", "error", err, "issue_id", cmd.IssueID)
		return nil, translateDomainError(err)
	}

	if err := uc.issueRepo.Update(ctx, issue); err != nil {
		uc.logger.Errorw("failed to update issue", "error", err, "issue_id", cmd.IssueID)
		return nil, err
	}

	uc.recordSystemMessage(ctx, issue, decision)

	event := resolution.NewIssueRespondedEvent(issue, biztime.NowUTC())
	if err := uc.events.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish issue responded event", "error", err, "issue_id", issue.ID())
	}

	uc.logger.Infow("issue responded", "issue_id", issue.ID(), "decision", decision.String())

	return &RespondToIssueResult{
		IssueID:     issue.ID(),
		Status:      issue.Status().String(),
		Decision:    decision.String(),
		RespondedAt: issue.Response().RespondedAt(),
	}, nil
}

func (uc *RespondToIssueUseCase) recordSystemMessage(ctx context.Context, issue *resolution.Issue, decision vo.Decision) {
	body := "Seller declined the request"
	if decision.IsAccept() {
		body = "Seller accepted the request"
	}

	msg, err := resolution.NewSystemMessage(vo.CaseKindIssue, issue.ID(), body)
	if err == nil {
		err = uc.messageRepo.Save(ctx, msg)
	}
	if err != nil {
		uc.logger.Warnw("failed to record system message", "error", err, "issue_id", issue.ID())
	}
}
