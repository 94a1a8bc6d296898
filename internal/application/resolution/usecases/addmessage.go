package usecases

import (
	"context"
	"time"

	"vendora/internal/domain/resolution"
	vo "vendora/internal/domain/resolution/valueobjects"
	"vendora/internal/shared/errors"
	"vendora/internal/shared/logger"
	"vendora/internal/shared/sanitize"
)

type AddMessageCommand struct {
	UserID   uint
	CaseKind string
	CaseID   uint
	Body     string
}

type AddMessageResult struct {
	MessageID uint
	CreatedAt time.Time
}

// AddMessageUseCase appends a participant message to a case thread.
// Closed cases keep their thread readable but frozen.
type AddMessageUseCase struct {
	loader      caseLoader
	messageRepo resolution.MessageRepository
	logger      logger.Interface
}

func NewAddMessageUseCase(
	issueRepo resolution.IssueRepository,
	disputeRepo resolution.DisputeRepository,
	messageRepo resolution.MessageRepository,
	logger logger.Interface,
) *AddMessageUseCase {
	return &AddMessageUseCase{
		loader:      caseLoader{issueRepo: issueRepo, disputeRepo: disputeRepo},
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *AddMessageUseCase) Execute(ctx context.Context, cmd AddMessageCommand) (*AddMessageResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.CaseID == 0 {
		return nil, errors.NewValidationError("case ID is required")
	}
	kind, err := vo.NewCaseKind(cmd.CaseKind)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	access, err := uc.loader.load(ctx, kind, cmd.CaseID)
	if err != nil {
		return nil, err
	}
	if !access.roleOf(cmd.UserID).IsParticipant() {
		return nil, errors.NewForbiddenError("you are not a participant in this case")
	}
	if !access.writable {
		return nil, translateDomainError(resolution.ErrCaseClosed)
	}

	msg, err := resolution.NewMessage(kind, cmd.CaseID, cmd.UserID, sanitize.Text(cmd.Body))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.messageRepo.Save(ctx, msg); err != nil {
		uc.logger.Errorw("failed to save message", "error", err, "case_kind", kind.String(), "case_id", cmd.CaseID)
		return nil, err
	}

	return &AddMessageResult{
		MessageID: msg.ID(),
		CreatedAt: msg.CreatedAt(),
	}, nil
}
