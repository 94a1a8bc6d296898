package usecases

import (
	"context"

	"vendora/internal/application/resolution/dto"
	"vendora/internal/domain/resolution"
	vo "vendora/internal/domain/resolution/valueobjects"
	"vendora/internal/shared/errors"
	"vendora/internal/shared/logger"
)

type ListMessagesQuery struct {
	UserID   uint
	CaseKind string
	CaseID   uint
}

type ListMessagesResult struct {
	Messages []dto.MessageDTO
}

// ListMessagesUseCase returns a case's thread, oldest first, to a
// participant.
type ListMessagesUseCase struct {
	loader      caseLoader
	messageRepo resolution.MessageRepository
	logger      logger.Interface
}

func NewListMessagesUseCase(
	issueRepo resolution.IssueRepository,
	disputeRepo resolution.DisputeRepository,
	messageRepo resolution.MessageRepository,
	logger logger.Interface,
) *ListMessagesUseCase {
	return &ListMessagesUseCase{
		loader:      caseLoader{issueRepo: issueRepo, disputeRepo: disputeRepo},
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, query ListMessagesQuery) (*ListMessagesResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if query.CaseID == 0 {
		return nil, errors.NewValidationError("case ID is required")
	}
	kind, err := vo.NewCaseKind(query.CaseKind)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	access, err := uc.loader.load(ctx, kind, query.CaseID)
	if err != nil {
		return nil, err
	}
	if !access.roleOf(query.UserID).IsParticipant() {
		return nil, errors.NewForbiddenError("you are not a participant in this case")
	}

	messages, err := uc.messageRepo.GetByCase(ctx, kind, query.CaseID)
	if err != nil {
		uc.logger.Errorw("failed to list messages", "error", err, "case_kind", kind.String(), "case_id", query.CaseID)
		return nil, err
	}

	items := make([]dto.MessageDTO, 0, len(messages))
	for _, m := range messages {
		items = append(items, dto.ToMessageDTO(m))
	}

	return &ListMessagesResult{Messages: items}, nil
}
