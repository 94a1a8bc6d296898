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

type CreateDisputeCommand struct {
	UserID          uint
	AdvertisementID uint
	Category        string
	Description     string
	DisputeDemand   string
}

type CreateDisputeResult struct {
	DisputeID     uint
	DisputeNumber string
	Status        string
	CreatedAt     time.Time
}

// CreateDisputeUseCase opens a dispute directly, without a preceding
// issue. Same eligibility rules as issue creation.
type CreateDisputeUseCase struct {
	disputeRepo resolution.DisputeRepository
	checker     *resolution.EligibilityChecker
	numberGen   resolution.NumberGenerator
	messageRepo resolution.MessageRepository
	events      EventPublisher
	logger      logger.Interface
}

func NewCreateDisputeUseCase(
	disputeRepo resolution.DisputeRepository,
	checker *resolution.EligibilityChecker,
	numberGen resolution.NumberGenerator,
	messageRepo resolution.MessageRepository,
	events EventPublisher,
	logger logger.Interface,
) *CreateDisputeUseCase {
	return &CreateDisputeUseCase{
		disputeRepo: disputeRepo,
		checker:     checker,
		numberGen:   numberGen,
		messageRepo: messageRepo,
		events:      events,
		logger:      logger,
	}
}

func (uc *CreateDisputeUseCase) Execute(ctx context.Context, cmd CreateDisputeCommand) (*CreateDisputeResult, error) {
	uc.logger.Infow("executing create dispute use case", "user_id", cmd.UserID, "advertisement_id", cmd.AdvertisementID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.AdvertisementID == 0 {
		return nil, errors.NewValidationError("advertisement ID is required")
	}

	eligibility, ad, err := uc.checker.Check(ctx, cmd.UserID, cmd.AdvertisementID)
	if err != nil {
		uc.logger.Errorw("eligibility check failed", "error", err, "advertisement_id", cmd.AdvertisementID)
		return nil, err
	}
	if !eligibility.Eligible {
		return nil, errors.NewNotEligibleError(eligibility.Reason)
	}

	respondentID := ad.CounterpartyOf(cmd.UserID)
	if respondentID == 0 {
		return nil, errors.NewNotEligibleError("no counterparty recorded for this advertisement")
	}

	dispute, err := resolution.NewDispute(
		cmd.AdvertisementID,
		cmd.UserID,
		respondentID,
		sanitize.Text(cmd.Category),
		sanitize.Text(cmd.Description),
		sanitize.Text(cmd.DisputeDemand),
		nil,
	)
	if err != nil {
		uc.logger.Errorw("failed to create dispute entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numberGen.Generate(ctx, vo.CaseKindDispute)
	if err != nil {
		uc.logger.Errorw("failed to generate dispute number", "error", err)
		return nil, err
	}
	dispute.SetDisputeNumber(number)

	if err := uc.disputeRepo.Save(ctx, dispute); err != nil {
		uc.logger.Errorw("failed to save dispute", "error", err)
		return nil, err
	}

	uc.recordOpenedMessage(ctx, dispute)

	if err := uc.events.Publish(resolution.NewDisputeOpenedEvent(dispute, biztime.NowUTC())); err != nil {
		uc.logger.Warnw("failed to publish dispute opened event", "error", err, "dispute_id", dispute.ID())
	}

	uc.logger.Infow("dispute created", "dispute_id", dispute.ID(), "dispute_number", dispute.DisputeNumber())

	return &CreateDisputeResult{
		DisputeID:     dispute.ID(),
		DisputeNumber: dispute.DisputeNumber(),
		Status:        dispute.Status().String(),
		CreatedAt:     dispute.CreatedAt(),
	}, nil
}

func (uc *CreateDisputeUseCase) recordOpenedMessage(ctx context.Context, dispute *resolution.Dispute) {
	msg, err := resolution.NewSystemMessage(vo.CaseKindDispute, dispute.ID(), "Dispute opened")
	if err == nil {
		err = uc.messageRepo.Save(ctx, msg)
	}
	if err != nil {
		uc.logger.Warnw("failed to record system message", "error", err, "dispute_id", dispute.ID())
	}
}
