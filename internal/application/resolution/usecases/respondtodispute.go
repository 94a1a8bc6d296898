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

type RespondToDisputeCommand struct {
	UserID       uint
	DisputeID    uint
	Decision     string
	ResponseText string
}

type RespondToDisputeResult struct {
	DisputeID           uint
	Status              string
	Decision            string
	RespondedAt         time.Time
	NegotiationDeadline time.Time
}

// RespondToDisputeUseCase records the seller's one-shot answer on a
// dispute and opens the negotiation window.
type RespondToDisputeUseCase struct {
	disputeRepo       resolution.DisputeRepository
	messageRepo       resolution.MessageRepository
	negotiationWindow time.Duration
	events            EventPublisher
	logger            logger.Interface
}

func NewRespondToDisputeUseCase(
	disputeRepo resolution.DisputeRepository,
	messageRepo resolution.MessageRepository,
	negotiationWindow time.Duration,
	events EventPublisher,
	logger logger.Interface,
) *RespondToDisputeUseCase {
	return &RespondToDisputeUseCase{
		disputeRepo:       disputeRepo,
		messageRepo:       messageRepo,
		negotiationWindow: negotiationWindow,
		events:            events,
		logger:            logger,
	}
}

func (uc *RespondToDisputeUseCase) Execute(ctx context.Context, cmd RespondToDisputeCommand) (*RespondToDisputeResult, error) {
	uc.logger.Infow("executing respond to dispute use case", "dispute_id", cmd.DisputeID, "user_id", cmd.UserID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.DisputeID == 0 {
		return nil, errors.NewValidationError("dispute ID is required")
	}
	decision, err := vo.NewDecision(cmd.Decision)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	dispute, err := uc.disputeRepo.GetByID(ctx, cmd.DisputeID)
	if err != nil {
		return nil, err
	}

	if err := dispute.Respond(cmd.UserID, decision, sanitize.Text(cmd.ResponseText), uc.negotiationWindow); err != nil {
		uc.logger.Warnw("respond to dispute rejected", "error", err, "dispute_id", cmd.DisputeID)
		return nil, translateDomainError(err)
	}

	if err := uc.disputeRepo.Update(ctx, dispute); err != nil {
		uc.logger.Errorw("failed to update dispute", "error", err, "dispute_id", cmd.DisputeID)
		return nil, err
	}

	uc.recordSystemMessage(ctx, dispute, decision)

	if err := uc.events.Publish(resolution.NewDisputeRespondedEvent(dispute, biztime.NowUTC())); err != nil {
		uc.logger.Warnw("failed to publish dispute responded event", "error", err, "dispute_id", dispute.ID())
	}

	uc.logger.Infow("dispute responded", "dispute_id", dispute.ID(), "decision", decision.String())

	return &RespondToDisputeResult{
		DisputeID:           dispute.ID(),
		Status:              dispute.Status().String(),
		Decision:            decision.String(),
		RespondedAt:         dispute.Response().RespondedAt(),
		NegotiationDeadline: *dispute.NegotiationDeadline(),
	}, nil
}

func (uc *RespondToDisputeUseCase) recordSystemMessage(ctx context.Context, dispute *resolution.Dispute, decision vo.Decision) {
	body := "Seller declined the demand; negotiation is open"
	if decision.IsAccept() {
		body = "Seller accepted the demand; negotiation is open"
	}

	msg, err := resolution.NewSystemMessage(vo.CaseKindDispute, dispute.ID(), body)
	if err == nil {
		err = uc.messageRepo.Save(ctx, msg)
	}
	if err != nil {
		uc.logger.Warnw("failed to record system message", "error", err, "dispute_id", dispute.ID())
	}
}
