package usecases

import (
	"context"
	"time"

	"vendora/internal/domain/resolution"
	"vendora/internal/shared/biztime"
	"vendora/internal/shared/errors"
	"vendora/internal/shared/logger"
)

type CloseDisputeCommand struct {
	UserID    uint
	DisputeID uint
}

type CloseDisputeResult struct {
	DisputeID uint
	Status    string
	ClosedAt  time.Time
}

// CloseDisputeUseCase ends a dispute at the buyer's request. Resolved
// after an accepted response, closed otherwise.
type CloseDisputeUseCase struct {
	disputeRepo resolution.DisputeRepository
	events      EventPublisher
	logger      logger.Interface
}

func NewCloseDisputeUseCase(
	disputeRepo resolution.DisputeRepository,
	events EventPublisher,
	logger logger.Interface,
) *CloseDisputeUseCase {
	return &CloseDisputeUseCase{
		disputeRepo: disputeRepo,
		events:      events,
		logger:      logger,
	}
}

func (uc *CloseDisputeUseCase) Execute(ctx context.Context, cmd CloseDisputeCommand) (*CloseDisputeResult, error) {
	uc.logger.Infow("executing close dispute use case", "dispute_id", cmd.DisputeID, "user_id", cmd.UserID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.DisputeID == 0 {
		return nil, errors.NewValidationError("dispute ID is required")
	}

	dispute, err := uc.disputeRepo.GetByID(ctx, cmd.DisputeID)
	if err != nil {
		return nil, err
	}

	if err := dispute.Close(cmd.UserID); err != nil {
		uc.logger.Warnw("close dispute rejected", "error", err, "dispute_id", cmd.DisputeID)
		return nil, translateDomainError(err)
	}

	if err := uc.disputeRepo.Update(ctx, dispute); err != nil {
		uc.logger.Errorw("failed to update dispute", "error", err, "dispute_id", cmd.DisputeID)
		return nil, err
	}

	if err := uc.events.Publish(resolution.NewDisputeClosedEvent(dispute, biztime.NowUTC())); err != nil {
		uc.logger.Warnw("failed to publish dispute closed event", "error", err, "dispute_id", dispute.ID())
	}

	uc.logger.Infow("dispute closed", "dispute_id", dispute.ID(), "status", dispute.Status().String())

	return &CloseDisputeResult{
		DisputeID: dispute.ID(),
		Status:    dispute.Status().String(),
		ClosedAt:  *dispute.ClosedAt(),
	}, nil
}
