package usecases

import (
	"context"

	"vendora/internal/domain/resolution"
	vo "vendora/internal/domain/resolution/valueobjects"
)

// caseAccess is the slice of case state the thread use cases need:
// who the parties are and whether the case still accepts new content.
type caseAccess struct {
	issuerID     uint
	respondentID uint
	writable     bool
}

func (a caseAccess) roleOf(actorID uint) resolution.Role {
	return resolution.ComputeRole(actorID, a.issuerID, a.respondentID)
}

// caseLoader resolves a (kind, id) pair against the right repository.
type caseLoader struct {
	issueRepo   resolution.IssueRepository
	disputeRepo resolution.DisputeRepository
}

func (l caseLoader) load(ctx context.Context, kind vo.CaseKind, caseID uint) (caseAccess, error) {
	if kind == vo.CaseKindDispute {
		dispute, err := l.disputeRepo.GetByID(ctx, caseID)
		if err != nil {
			return caseAccess{}, err
		}
		return caseAccess{
			issuerID:     dispute.IssuerID(),
			respondentID: dispute.RespondentID(),
			writable:     dispute.CanAcceptMessage(),
		}, nil
	}

	issue, err := l.issueRepo.GetByID(ctx, caseID)
	if err != nil {
		return caseAccess{}, err
	}
	return caseAccess{
		issuerID:     issue.IssuerID(),
		respondentID: issue.RespondentID(),
		writable:     issue.CanAcceptMessage(),
	}, nil
}
