package usecases

import (
	"context"
	"time"

	"vendora/internal/domain/resolution"
	"vendora/internal/shared/biztime"
	"vendora/internal/shared/errors"
	"vendora/internal/shared/logger"
)

type EscalateToClaimCommand struct {
	UserID    uint
	DisputeID uint
}

type EscalateToClaimResult struct {
	DisputeID   uint
	Status      string
	EscalatedAt time.Time
}

// EscalateToClaimUseCase hands a deadlocked dispute off to the
// external claims process. The engine's involvement ends here; the
// claim itself lives outside it.
type EscalateToClaimUseCase struct {
	disputeRepo resolution.DisputeRepository
	events      EventPublisher
	logger      logger.Interface
}

func NewEscalateToClaimUseCase(
	disputeRepo resolution.DisputeRepository,
	events EventPublisher,
	logger logger.Interface,
) *EscalateToClaimUseCase {
	return &EscalateToClaimUseCase{
		disputeRepo: disputeRepo,
		events:      events,
		logger:      logger,
	}
}

func (uc *EscalateToClaimUseCase) Execute(ctx context.Context, cmd EscalateToClaimCommand) (*EscalateToClaimResult, error) {
	uc.logger.Infow("executing escalate to claim use case", "dispute_id", cmd.DisputeID, "user_id", cmd.UserID)

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

	if err := dispute.EscalateToClaim(cmd.UserID); err != nil {
		uc.logger.Warnw("escalate to claim rejected", "error", err, "dispute_id", cmd.DisputeID)
		return nil, translateDomainError(err)
	}

	if err := uc.disputeRepo.Update(ctx, dispute); err != nil {
		uc.logger.Errorw("failed to update dispute", "error", err, "dispute_id", cmd.DisputeID)
		return nil, err
	}

	if err := uc.events.Publish(resolution.NewDisputeEscalatedEvent(dispute, biztime.NowUTC())); err != nil {
		uc.logger.Warnw("failed to publish dispute escalated event", "error", err, "dispute_id", dispute.ID())
	}

	uc.logger.Infow("dispute escalated to claim", "dispute_id", dispute.ID())

	return &EscalateToClaimResult{
		DisputeID:   dispute.ID(),
		Status:      dispute.Status().String(),
		EscalatedAt: *dispute.ClosedAt(),
	}, nil
}
