package usecases

import (
	"context"
	"fmt"
	"time"

	"vendora/internal/domain/resolution"
	vo "vendora/internal/domain/resolution/valueobjects"
	"vendora/internal/shared/biztime"
	"vendora/internal/shared/errors"
	"vendora/internal/shared/logger"
	"vendora/internal/shared/sanitize"
)

type EscalateIssueCommand struct {
	UserID        uint
	IssueID       uint
	Category      string
	DisputeDemand string
}

type EscalateIssueResult struct {
	IssueID       uint
	IssueStatus   string
	DisputeID     uint
	DisputeNumber string
	DisputeStatus string
	CreatedAt     time.Time
}

// EscalateIssueUseCase turns a responded issue into a dispute. The
// issue transition and the dispute creation commit together or not at
// all, so an escalated issue always has its dispute.
type EscalateIssueUseCase struct {
	issueRepo   resolution.IssueRepository
	disputeRepo resolution.DisputeRepository
	numberGen   resolution.NumberGenerator
	messageRepo resolution.MessageRepository
	txRunner    TransactionRunner
	events      EventPublisher
	logger      logger.Interface
}

func NewEscalateIssueUseCase(
	issueRepo resolution.IssueRepository,
	disputeRepo resolution.DisputeRepository,
	numberGen resolution.NumberGenerator,
	messageRepo resolution.MessageRepository,
	txRunner TransactionRunner,
	events EventPublisher,
	logger logger.Interface,
) *EscalateIssueUseCase {
	return &EscalateIssueUseCase{
		issueRepo:   issueRepo,
		disputeRepo: disputeRepo,
		numberGen:   numberGen,
		messageRepo: messageRepo,
		txRunner:    txRunner,
		events:      events,
		logger:      logger,
	}
}

func (uc *EscalateIssueUseCase) Execute(ctx context.Context, cmd EscalateIssueCommand) (*EscalateIssueResult, error) {
	uc.logger.Infow("executing escalate issue use case", "issue_id", cmd.IssueID, "user_id", cmd.UserID)

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

	if err := issue.MarkEscalated(cmd.UserID); err != nil {
		uc.logger.Warnw("escalate issue rejected", "error", err, "issue_id", cmd.IssueID)
		return nil, translateDomainError(err)
	}

	// The demand defaults to what the buyer already asked for on the
	// issue, the category to a generic escalation label.
	demand := sanitize.Text(cmd.DisputeDemand)
	if demand == "" {
		demand = issue.BuyerRequest()
	}
	category := sanitize.Text(cmd.Category)
	if category == "" {
		category = "issue_escalation"
	}

	issueID := issue.ID()
	dispute, err := resolution.NewDispute(
		issue.AdvertisementID(),
		issue.IssuerID(),
		issue.RespondentID(),
		category,
		issue.Description(),
		demand,
		&issueID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numberGen.Generate(ctx, vo.CaseKindDispute)
	if err != nil {
		uc.logger.Errorw("failed to generate dispute number", "error", err)
		return nil, err
	}
	dispute.SetDisputeNumber(number)

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.issueRepo.Update(txCtx, issue); err != nil {
			return err
		}
		return uc.disputeRepo.Save(txCtx, dispute)
	})
	if err != nil {
		uc.logger.Errorw("failed to escalate issue", "error", err, "issue_id", cmd.IssueID)
		return nil, err
	}

	uc.recordEscalationMessages(ctx, issue, dispute)
	uc.publishEscalated(issue, dispute, biztime.NowUTC())

	uc.logger.Infow("issue escalated to dispute",
		"issue_id", issue.ID(), "dispute_id", dispute.ID(), "dispute_number", dispute.DisputeNumber())

	return &EscalateIssueResult{
		IssueID:       issue.ID(),
		IssueStatus:   issue.Status().String(),
		DisputeID:     dispute.ID(),
		DisputeNumber: dispute.DisputeNumber(),
		DisputeStatus: dispute.Status().String(),
		CreatedAt:     dispute.CreatedAt(),
	}, nil
}

// Both threads record the hand-off: the issue thread points forward to
// the dispute, the dispute thread points back at its source issue.
func (uc *EscalateIssueUseCase) recordEscalationMessages(ctx context.Context, issue *resolution.Issue, dispute *resolution.Dispute) {
	issueMsg, err := resolution.NewSystemMessage(vo.CaseKindIssue, issue.ID(),
		fmt.Sprintf("Escalated to dispute %s", dispute.DisputeNumber()))
	if err == nil {
		err = uc.messageRepo.Save(ctx, issueMsg)
	}
	if err != nil {
		uc.logger.Warnw("failed to record system message", "error", err, "issue_id", issue.ID())
	}

	disputeMsg, err := resolution.NewSystemMessage(vo.CaseKindDispute, dispute.ID(),
		fmt.Sprintf("Dispute opened from issue %s", issue.IssueNumber()))
	if err == nil {
		err = uc.messageRepo.Save(ctx, disputeMsg)
	}
	if err != nil {
		uc.logger.Warnw("failed to record system message", "error", err, "dispute_id", dispute.ID())
	}
}

func (uc *EscalateIssueUseCase) publishEscalated(issue *resolution.Issue, dispute *resolution.Dispute, now time.Time) {
	if err := uc.events.Publish(resolution.NewIssueEscalatedEvent(issue, dispute.ID(), now)); err != nil {
		uc.logger.Warnw("failed to publish issue escalated event", "error", err, "issue_id", issue.ID())
	}
	if err := uc.events.Publish(resolution.NewDisputeOpenedEvent(dispute, now)); err != nil {
		uc.logger.Warnw("failed to publish dispute opened event", "error", err, "dispute_id", dispute.ID())
	}
}
