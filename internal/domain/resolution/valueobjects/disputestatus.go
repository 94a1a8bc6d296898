package valueobjects

import "fmt"

type DisputeStatus string

const (
	DisputeStatusPending     DisputeStatus = "pending"
	DisputeStatusUnderReview DisputeStatus = "under_review"
	DisputeStatusNegotiation DisputeStatus = "negotiation"
	DisputeStatusResolved    DisputeStatus = "resolved"
	DisputeStatusEscalated   DisputeStatus = "escalated"
	DisputeStatusClosed      DisputeStatus = "closed"
)

var validDisputeStatuses = map[DisputeStatus]bool{
	DisputeStatusPending:     true,
	DisputeStatusUnderReview: true,
	DisputeStatusNegotiation: true,
	DisputeStatusResolved:    true,
	DisputeStatusEscalated:   true,
	DisputeStatusClosed:      true,
}

// disputeStatusTransitions is the single source of truth for legal
// dispute transitions. Negotiation is entered when the seller responds;
// resolved/escalated/closed are terminal.
var disputeStatusTransitions = map[DisputeStatus][]DisputeStatus{
	DisputeStatusPending: {
		DisputeStatusUnderReview,
		DisputeStatusNegotiation,
		DisputeStatusClosed,
	},
	DisputeStatusUnderReview: {
		DisputeStatusNegotiation,
		DisputeStatusClosed,
	},
	DisputeStatusNegotiation: {
		DisputeStatusResolved,
		DisputeStatusEscalated,
		DisputeStatusClosed,
	},
	DisputeStatusResolved:  {},
	DisputeStatusEscalated: {},
	DisputeStatusClosed:    {},
}

func (s DisputeStatus) String() string {
	return string(s)
}

func (s DisputeStatus) IsValid() bool {
	return validDisputeStatuses[s]
}

func (s DisputeStatus) CanTransitionTo(newStatus DisputeStatus) bool {
	allowed, ok := disputeStatusTransitions[s]
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

// IsTerminal reports whether no further mutation is permitted.
func (s DisputeStatus) IsTerminal() bool {
	allowed, ok := disputeStatusTransitions[s]
	return ok && len(allowed) == 0
}

// IsAwaitingSeller reports whether the dispute still waits for the
// respondent's answer.
func (s DisputeStatus) IsAwaitingSeller() bool {
	return s == DisputeStatusPending || s == DisputeStatusUnderReview
}

func (s DisputeStatus) IsNegotiation() bool {
	return s == DisputeStatusNegotiation
}

func NewDisputeStatus(s string) (DisputeStatus, error) {
	status := DisputeStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid dispute status: %s", s)
	}
	return status, nil
}
