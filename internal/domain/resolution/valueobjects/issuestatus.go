package valueobjects

import "fmt"

type IssueStatus string

const (
	IssueStatusOpen            IssueStatus = "open"
	IssueStatusSellerResponded IssueStatus = "seller_responded"
	IssueStatusSettled         IssueStatus = "settled"
	IssueStatusClosedByBuyer   IssueStatus = "closed_by_buyer"
	IssueStatusEscalated       IssueStatus = "escalated_to_dispute"
)

var validIssueStatuses = map[IssueStatus]bool{
	IssueStatusOpen:            true,
	IssueStatusSellerResponded: true,
	IssueStatusSettled:         true,
	IssueStatusClosedByBuyer:   true,
	IssueStatusEscalated:       true,
}

// issueStatusTransitions is the single source of truth for legal issue
// transitions. Terminal statuses have no outgoing edges.
var issueStatusTransitions = map[IssueStatus][]IssueStatus{
	IssueStatusOpen: {
		IssueStatusSellerResponded,
		IssueStatusClosedByBuyer,
	},
	IssueStatusSellerResponded: {
		IssueStatusSettled,
		IssueStatusClosedByBuyer,
		IssueStatusEscalated,
	},
	IssueStatusSettled:       {},
	IssueStatusClosedByBuyer: {},
	IssueStatusEscalated:     {},
}

func (s IssueStatus) String() string {
	return string(s)
}

func (s IssueStatus) IsValid() bool {
	return validIssueStatuses[s]
}

func (s IssueStatus) CanTransitionTo(newStatus IssueStatus) bool {
	allowed, ok := issueStatusTransitions[s]
	if !ok {
		return false
	}

	for _, candidate := range allowed {
		if candidate == newStatus {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further mutation is permitted. Terminal
// cases are retained for audit, never deleted.
func (s IssueStatus) IsTerminal() bool {
	allowed, ok := issueStatusTransitions[s]
	return ok && len(allowed) == 0
}

func (s IssueStatus) IsOpen() bool {
	return s == IssueStatusOpen
}

func (s IssueStatus) IsSellerResponded() bool {
	return s == IssueStatusSellerResponded
}

func (s IssueStatus) IsEscalated() bool {
	return s == IssueStatusEscalated
}

func NewIssueStatus(s string) (IssueStatus, error) {
	status := IssueStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid issue status: %s", s)
	}
	return status, nil
}
