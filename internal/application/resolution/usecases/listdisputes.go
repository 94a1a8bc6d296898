package usecases

import (
	"context"

	"vendora/internal/application/resolution/dto"
	"vendora/internal/domain/resolution"
	vo "vendora/internal/domain/resolution/valueobjects"
	"vendora/internal/shared/errors"
	"vendora/internal/shared/logger"
)

type ListDisputesQuery struct {
	UserID    uint
	Status    string
	Role      string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListDisputesResult struct {
	Disputes []dto.DisputeListItemDTO
	Total    int64
}

// ListDisputesUseCase lists the user's own disputes.
type ListDisputesUseCase struct {
	disputeRepo resolution.DisputeRepository
	logger      logger.Interface
}

func NewListDisputesUseCase(
	disputeRepo resolution.DisputeRepository,
	logger logger.Interface,
) *ListDisputesUseCase {
	return &ListDisputesUseCase{
		disputeRepo: disputeRepo,
		logger:      logger,
	}
}

func (uc *ListDisputesUseCase) Execute(ctx context.Context, query ListDisputesQuery) (*ListDisputesResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	filter, err := buildCaseFilter(query.Status, query.Role, query.Page, query.PageSize, query.SortBy, query.SortOrder, func(s string) error {
		_, err := vo.NewDisputeStatus(s)
		return err
	})
	if err != nil {
		return nil, err
	}

	disputes, total, err := uc.disputeRepo.GetUserDisputes(ctx, query.UserID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list disputes", "error", err, "user_id", query.UserID)
		return nil, err
	}

	items := make([]dto.DisputeListItemDTO, 0, len(disputes))
	for _, dispute := range disputes {
		items = append(items, dto.ToDisputeListItemDTO(dispute, query.UserID))
	}

	return &ListDisputesResult{Disputes: items, Total: total}, nil
}
