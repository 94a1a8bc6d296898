package usecases

import (
	"context"

	"vendora/internal/domain/resolution"
	"vendora/internal/shared/errors"
	"vendora/internal/shared/logger"
)

type MarkDisputeUnderReviewCommand struct {
	UserID    uint
	DisputeID uint
}

type MarkDisputeUnderReviewResult struct {
	DisputeID uint
	Status    string
}

// MarkDisputeUnderReviewUseCase lets the seller acknowledge a pending
// dispute before answering it.
type MarkDisputeUnderReviewUseCase struct {
	disputeRepo resolution.DisputeRepository
	logger      logger.Interface
}

func NewMarkDisputeUnderReviewUseCase(
	disputeRepo resolution.DisputeRepository,
	logger logger.Interface,
) *MarkDisputeUnderReviewUseCase {
	return &MarkDisputeUnderReviewUseCase{
		disputeRepo: disputeRepo,
		logger:      logger,
	}
}

func (uc *MarkDisputeUnderReviewUseCase) Execute(ctx context.Context, cmd MarkDisputeUnderReviewCommand) (*MarkDisputeUnderReviewResult, error) {
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

	if err := dispute.MarkUnderReview(cmd.UserID); err != nil {
		uc.logger.Warnw("mark under review rejected", "error", err, "dispute_id", cmd.DisputeID)
		return nil, translateDomainError(err)
	}

	if err := uc.disputeRepo.Update(ctx, dispute); err != nil {
		uc.logger.Errorw("failed to update dispute", "error", err, "dispute_id", cmd.DisputeID)
		return nil, err
	}

	return &MarkDisputeUnderReviewResult{
		DisputeID: dispute.ID(),
		Status:    dispute.Status().String(),
	}, nil
}
