package resolution

import (
	"context"

	vo "vendora/internal/domain/resolution/valueobjects"
)

type IssueRepository interface {
	Save(ctx context.Context, issue *Issue) error
	// Update persists a modified issue guarded by its version: the row
	// is written only if the stored version still matches, so two
	// concurrent writers cannot both win.
	Update(ctx context.Context, issue *Issue) error
	GetByID(ctx context.Context, issueID uint) (*Issue, error)
	GetByNumber(ctx context.Context, number string) (*Issue, error)
	GetUserIssues(ctx context.Context, userID uint, filters CaseFilter) ([]*Issue, int64, error)
	// HasOpenCase reports whether a non-terminal issue already exists
	// between the user and anyone over the given advertisement.
	HasOpenCase(ctx context.Context, advertisementID, userID uint) (bool, error)
	CountByStatus(ctx context.Context, userID uint) (map[string]int64, error)
}

type DisputeRepository interface {
	Save(ctx context.Context, dispute *Dispute) error
	// Update persists a modified dispute guarded by its version, same
	// contract as IssueRepository.Update.
	Update(ctx context.Context, dispute *Dispute) error
	GetByID(ctx context.Context, disputeID uint) (*Dispute, error)
	GetByNumber(ctx context.Context, number string) (*Dispute, error)
	GetBySourceIssueID(ctx context.Context, issueID uint) (*Dispute, error)
	GetUserDisputes(ctx context.Context, userID uint, filters CaseFilter) ([]*Dispute, int64, error)
	HasOpenCase(ctx context.Context, advertisementID, userID uint) (bool, error)
	CountByStatus(ctx context.Context, userID uint) (map[string]int64, error)
}

// CaseFilter narrows case listings. Role filters by the user's side of
// the case rather than by a stored attribute.
type CaseFilter struct {
	Status          *string
	Role            *Role
	AdvertisementID *uint
	Page            int
	PageSize        int
	SortBy          string
	SortOrder       string
}

type MessageRepository interface {
	Save(ctx context.Context, message *Message) error
	GetByCase(ctx context.Context, caseKind vo.CaseKind, caseID uint) ([]*Message, error)
}

type EvidenceRepository interface {
	Save(ctx context.Context, evidence *Evidence) error
	GetByCase(ctx context.Context, caseKind vo.CaseKind, caseID uint) ([]*Evidence, error)
}
