package usecases

import (
	"context"

	"vendora/internal/domain/resolution"
	"vendora/internal/shared/errors"
	"vendora/internal/shared/logger"
)

type CheckEligibilityQuery struct {
	UserID          uint
	AdvertisementID uint
}

type CheckEligibilityResult struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

// CheckEligibilityUseCase answers whether the user may open a new case
// against an advertisement. The same checker backs case creation, so a
// positive answer here only ever turns negative through a race, never
// through a different rule set.
type CheckEligibilityUseCase struct {
	checker *resolution.EligibilityChecker
	logger  logger.Interface
}

func NewCheckEligibilityUseCase(
	checker *resolution.EligibilityChecker,
	logger logger.Interface,
) *CheckEligibilityUseCase {
	return &CheckEligibilityUseCase{
		checker: checker,
		logger:  logger,
	}
}

func (uc *CheckEligibilityUseCase) Execute(ctx context.Context, query CheckEligibilityQuery) (*CheckEligibilityResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if query.AdvertisementID == 0 {
		return nil, errors.NewValidationError("advertisement ID is required")
	}

	result, _, err := uc.checker.Check(ctx, query.UserID, query.AdvertisementID)
	if err != nil {
		uc.logger.Errorw("eligibility check failed", "error", err, "advertisement_id", query.AdvertisementID)
		return nil, err
	}

	return &CheckEligibilityResult{
		Eligible: result.Eligible,
		Reason:   result.Reason,
	}, nil
}
