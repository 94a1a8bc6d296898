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

type AddEvidenceCommand struct {
	UserID     uint
	CaseKind   string
	CaseID     uint
	FileName   string
	FileSize   int64
	MimeType   string
	StorageKey string
}

type AddEvidenceResult struct {
	EvidenceID uint
	CreatedAt  time.Time
}

// AddEvidenceUseCase records an evidence attachment on a case. The
// file itself is already in external storage; only its metadata is
// kept here.
type AddEvidenceUseCase struct {
	loader       caseLoader
	evidenceRepo resolution.EvidenceRepository
	logger       logger.Interface
}

func NewAddEvidenceUseCase(
	issueRepo resolution.IssueRepository,
	disputeRepo resolution.DisputeRepository,
	evidenceRepo resolution.EvidenceRepository,
	logger logger.Interface,
) *AddEvidenceUseCase {
	return &AddEvidenceUseCase{
		loader:       caseLoader{issueRepo: issueRepo, disputeRepo: disputeRepo},
		evidenceRepo: evidenceRepo,
		logger:       logger,
	}
}

func (uc *AddEvidenceUseCase) Execute(ctx context.Context, cmd AddEvidenceCommand) (*AddEvidenceResult, error) {
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

	evidence, err := resolution.NewEvidence(
		kind, cmd.CaseID, cmd.UserID,
		sanitize.Text(cmd.FileName), cmd.FileSize, cmd.MimeType, cmd.StorageKey,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.evidenceRepo.Save(ctx, evidence); err != nil {
		uc.logger.Errorw("failed to save evidence", "error", err, "case_kind", kind.String(), "case_id", cmd.CaseID)
		return nil, err
	}

	return &AddEvidenceResult{
		EvidenceID: evidence.ID(),
		CreatedAt:  evidence.CreatedAt(),
	}, nil
}
