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

type CreateIssueCommand struct {
	UserID          uint
	AdvertisementID uint
	Description     string
	BuyerRequest    string
}

type CreateIssueResult struct {
	IssueID     uint
	IssueNumber string
	Status      string
	CreatedAt   time.Time
}

// CreateIssueUseCase opens a first-stage case. Eligibility is
// re-checked here even when the client already called the standalone
// check, since anything can change in between.
type CreateIssueUseCase struct {
	issueRepo   resolution.IssueRepository
	checker     *resolution.EligibilityChecker
	numberGen   resolution.NumberGenerator
	messageRepo resolution.MessageRepository
	events      EventPublisher
	logger      logger.Interface
}

func NewCreateIssueUseCase(
	issueRepo resolution.IssueRepository,
	checker *resolution.EligibilityChecker,
	numberGen resolution.NumberGenerator,
	messageRepo resolution.MessageRepository,
	events EventPublisher,
	logger logger.Interface,
) *CreateIssueUseCase {
	return &CreateIssueUseCase{
		issueRepo:   issueRepo,
		checker:     checker,
		numberGen:   numberGen,
		messageRepo: messageRepo,
		events:      events,
		logger:      logger,
	}
}

func (uc *CreateIssueUseCase) Execute(ctx context.Context, cmd CreateIssueCommand) (*CreateIssueResult, error) {
	uc.logger.Infow("executing create issue use case", "user_id", cmd.UserID, "advertisement_id", cmd.AdvertisementID)

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

	description := sanitize.Text(cmd.Description)
	buyerRequest := sanitize.Text(cmd.BuyerRequest)

	issue, err := resolution.NewIssue(cmd.AdvertisementID, cmd.UserID, respondentID, description, buyerRequest)
	if err != nil {
		uc.logger.Errorw("failed to create issue entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numberGen.Generate(ctx, vo.CaseKindIssue)
	if err != nil {
		uc.logger.Errorw("failed to generate issue number", "error", err)
		return nil, err
	}
	issue.SetIssueNumber(number)

	if err := uc.issueRepo.Save(ctx, issue); err != nil {
		uc.logger.Errorw("failed to save issue", "error", err)
		return nil, err
	}

	uc.recordOpenedMessage(ctx, issue)
	uc.publishOpened(issue)

	uc.logger.Infow("issue created", "issue_id", issue.ID(), "issue_number", issue.IssueNumber())

	return &CreateIssueResult{
		IssueID:     issue.ID(),
		IssueNumber: issue.IssueNumber(),
		Status:      issue.Status().String(),
		CreatedAt:   issue.CreatedAt(),
	}, nil
}

func (uc *CreateIssueUseCase) recordOpenedMessage(ctx context.Context, issue *resolution.Issue) {
	msg, err := resolution.NewSystemMessage(vo.CaseKindIssue, issue.ID(), "Issue opened")
	if err == nil {
		err = uc.messageRepo.Save(ctx, msg)
	}
	if err != nil {
		uc.logger.Warnw("failed to record system message", "error", err, "issue_id", issue.ID())
	}
}

func (uc *CreateIssueUseCase) publishOpened(issue *resolution.Issue) {
	event := resolution.NewIssueOpenedEvent(issue, biztime.NowUTC())
	if err := uc.events.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish issue opened event", "error", err, "issue_id", issue.ID())
	}
}
