package usecases

import (
	"context"

	"vendora/internal/application/resolution/dto"
	"vendora/internal/domain/resolution"
	vo "vendora/internal/domain/resolution/valueobjects"
	"vendora/internal/shared/errors"
	"vendora/internal/shared/logger"
)

type ListEvidenceQuery struct {
	UserID   uint
	CaseKind string
	CaseID   uint
}

type ListEvidenceResult struct {
	Evidence []dto.EvidenceDTO
}

// ListEvidenceUseCase returns a case's evidence records to a
// participant.
type ListEvidenceUseCase struct {
	loader       caseLoader
	evidenceRepo resolution.EvidenceRepository
	logger       logger.Interface
}

func NewListEvidenceUseCase(
	issueRepo resolution.IssueRepository,
	disputeRepo resolution.DisputeRepository,
	evidenceRepo resolution.EvidenceRepository,
	logger logger.Interface,
) *ListEvidenceUseCase {
	return &ListEvidenceUseCase{
		loader:       caseLoader{issueRepo: issueRepo, disputeRepo: disputeRepo},
		evidenceRepo: evidenceRepo,
		logger:       logger,
	}
}

func (uc *ListEvidenceUseCase) Execute(ctx context.Context, query ListEvidenceQuery) (*ListEvidenceResult, error) {
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

	records, err := uc.evidenceRepo.GetByCase(ctx, kind, query.CaseID)
	if err != nil {
		uc.logger.Errorw("failed to list evidence", "error", err, "case_kind", kind.String(), "case_id", query.CaseID)
		return nil, err
	}

	items := make([]dto.EvidenceDTO, 0, len(records))
	for _, e := range records {
		items = append(items, dto.ToEvidenceDTO(e))
	}

	return &ListEvidenceResult{Evidence: items}, nil
}
