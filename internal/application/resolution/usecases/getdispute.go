package usecases

import (
	"context"

	"vendora/internal/application/resolution/dto"
	"vendora/internal/domain/resolution"
	"vendora/internal/shared/biztime"
	"vendora/internal/shared/errors"
	"vendora/internal/shared/logger"
)

type GetDisputeQuery struct {
	UserID        uint
	DisputeID     uint
	DisputeNumber string
}

// GetDisputeUseCase loads a single dispute for a participant, by ID or
// case number.
type GetDisputeUseCase struct {
	disputeRepo resolution.DisputeRepository
	logger      logger.Interface
}

func NewGetDisputeUseCase(
	disputeRepo resolution.DisputeRepository,
	logger logger.Interface,
) *GetDisputeUseCase {
	return &GetDisputeUseCase{
		disputeRepo: disputeRepo,
		logger:      logger,
	}
}

func (uc *GetDisputeUseCase) Execute(ctx context.Context, query GetDisputeQuery) (*dto.DisputeDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if query.DisputeID == 0 && query.DisputeNumber == "" {
		return nil, errors.NewValidationError("dispute ID or number is required")
	}

	var (
		dispute *resolution.Dispute
		err     error
	)
	if query.DisputeID != 0 {
		dispute, err = uc.disputeRepo.GetByID(ctx, query.DisputeID)
	} else {
		dispute, err = uc.disputeRepo.GetByNumber(ctx, query.DisputeNumber)
	}
	if err != nil {
		return nil, err
	}

	if !dispute.RoleOf(query.UserID).IsParticipant() {
		return nil, errors.NewForbiddenError("you are not a participant in this case")
	}

	return dto.ToDisputeDTO(dispute, query.UserID, biztime.NowUTC()), nil
}
