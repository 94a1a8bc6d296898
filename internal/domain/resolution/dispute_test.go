package resolution

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "vendora/internal/domain/resolution/valueobjects"
)

const negotiationWindow = 7 * 24 * time.Hour

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newPendingDispute(t *testing.T) *Dispute {
	t.Helper()
	d, err := NewDispute(adID, buyerID, sellerID, "item_defective", "Seller refused to fix the broken item", "Refund of the full purchase price", nil)
	require.NoError(t, err)
	return d
}

func negotiationDispute(t *testing.T, decision vo.Decision) *Dispute {
	t.Helper()
	d := newPendingDispute(t)
	require.NoError(t, d.Respond(sellerID, decision, "My position on this dispute", negotiationWindow))
	return d
}

// ---------------------------------------------------------------------------
// Constructor
// ---------------------------------------------------------------------------

func TestNewDispute_Valid(t *testing.T) {
	issueID := uint(3)
	d, err := NewDispute(adID, buyerID, sellerID, "item_defective", "Seller refused to fix the broken item", "Refund of the full purchase price", &issueID)
	require.NoError(t, err)

	assert.Equal(t, vo.DisputeStatusPending, d.Status())
	assert.Equal(t, "item_defective", d.Category())
	require.NotNil(t, d.SourceIssueID())
	assert.Equal(t, issueID, *d.SourceIssueID())
	assert.Nil(t, d.NegotiationDeadline())
	assert.Equal(t, 1, d.Version())
}

func TestNewDispute_DirectHasNoSourceIssue(t *testing.T) {
	d := newPendingDispute(t)
	assert.Nil(t, d.SourceIssueID())
}

func TestNewDispute_Invalid(t *testing.T) {
	tests := []struct {
		name         string
		advertID     uint
		issuerID     uint
		respondentID uint
		category     string
		description  string
		demand       string
	}{
		{"missing advertisement", 0, buyerID, sellerID, "item_defective", "valid description here", "valid demand text here"},
		{"same parties", adID, buyerID, buyerID, "item_defective", "valid description here", "valid demand text here"},
		{"missing category", adID, buyerID, sellerID, "  ", "valid description here", "valid demand text here"},
		{"demand too short", adID, buyerID, sellerID, "item_defective", "valid description here", "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDispute(tt.advertID, tt.issuerID, tt.respondentID, tt.category, tt.description, tt.demand, nil)
			assert.Error(t, err)
			assert.Nil(t, d)
		})
	}
}

// ---------------------------------------------------------------------------
// Triage
// ---------------------------------------------------------------------------

func TestDisputeMarkUnderReview(t *testing.T) {
	d := newPendingDispute(t)

	require.NoError(t, d.MarkUnderReview(sellerID))
	assert.Equal(t, vo.DisputeStatusUnderReview, d.Status())

	// Responding still works after triage.
	require.NoError(t, d.Respond(sellerID, vo.DecisionAccept, "Accepting the demand after review", negotiationWindow))
	assert.Equal(t, vo.DisputeStatusNegotiation, d.Status())
}

func TestDisputeMarkUnderReview_OnlyRespondent(t *testing.T) {
	d := newPendingDispute(t)
	assert.ErrorIs(t, d.MarkUnderReview(buyerID), ErrNotRespondent)
	assert.ErrorIs(t, d.MarkUnderReview(otherID), ErrNotParticipant)
}

// ---------------------------------------------------------------------------
// Respond
// ---------------------------------------------------------------------------

func TestDisputeRespond_OpensNegotiation(t *testing.T) {
	d := newPendingDispute(t)
	before := time.Now().UTC()

	err := d.Respond(sellerID, vo.DecisionDecline, "I decline, the item was fine when shipped", negotiationWindow)
	require.NoError(t, err)

	assert.Equal(t, vo.DisputeStatusNegotiation, d.Status())
	assert.True(t, d.Response().Answered())
	require.NotNil(t, d.NegotiationDeadline())
	assert.WithinDuration(t, before.Add(negotiationWindow), *d.NegotiationDeadline(), 5*time.Second)
}

func TestDisputeRespond_OneShot(t *testing.T) {
	d := negotiationDispute(t, vo.DecisionDecline)

	err := d.Respond(sellerID, vo.DecisionAccept, "second thoughts, accepting now", negotiationWindow)
	assert.ErrorIs(t, err, ErrAlreadyResponded)
	assert.Equal(t, vo.DecisionDecline, d.Response().Decision())
}

func TestDisputeRespond_OnlyRespondent(t *testing.T) {
	d := newPendingDispute(t)
	assert.ErrorIs(t, d.Respond(buyerID, vo.DecisionAccept, "answering my own dispute", negotiationWindow), ErrNotRespondent)
	assert.ErrorIs(t, d.Respond(otherID, vo.DecisionAccept, "not my dispute at all", negotiationWindow), ErrNotParticipant)
}

// ---------------------------------------------------------------------------
// Close
// ---------------------------------------------------------------------------

func TestDisputeClose_Outcomes(t *testing.T) {
	t.Run("withdrawal while pending closes", func(t *testing.T) {
		d := newPendingDispute(t)
		require.NoError(t, d.Close(buyerID))
		assert.Equal(t, vo.DisputeStatusClosed, d.Status())
		assert.NotNil(t, d.ClosedAt())
	})

	t.Run("withdrawal under review closes", func(t *testing.T) {
		d := newPendingDispute(t)
		require.NoError(t, d.MarkUnderReview(sellerID))
		require.NoError(t, d.Close(buyerID))
		assert.Equal(t, vo.DisputeStatusClosed, d.Status())
	})

	t.Run("close after accept resolves", func(t *testing.T) {
		d := negotiationDispute(t, vo.DecisionAccept)
		require.NoError(t, d.Close(buyerID))
		assert.Equal(t, vo.DisputeStatusResolved, d.Status())
	})

	t.Run("close after decline closes", func(t *testing.T) {
		d := negotiationDispute(t, vo.DecisionDecline)
		require.NoError(t, d.Close(buyerID))
		assert.Equal(t, vo.DisputeStatusClosed, d.Status())
	})
}

func TestDisputeClose_OnlyIssuer(t *testing.T) {
	d := newPendingDispute(t)
	assert.ErrorIs(t, d.Close(sellerID), ErrNotIssuer)
	assert.ErrorIs(t, d.Close(otherID), ErrNotParticipant)
}

func TestDisputeClose_TerminalIsFinal(t *testing.T) {
	d := negotiationDispute(t, vo.DecisionAccept)
	require.NoError(t, d.Close(buyerID))

	assert.ErrorIs(t, d.Close(buyerID), ErrInvalidTransition)
	assert.False(t, d.CanAcceptMessage())
}

// ---------------------------------------------------------------------------
// Escalation to claim
// ---------------------------------------------------------------------------

func TestDisputeEscalateToClaim(t *testing.T) {
	t.Run("after decline in negotiation", func(t *testing.T) {
		d := negotiationDispute(t, vo.DecisionDecline)
		require.NoError(t, d.EscalateToClaim(buyerID))
		assert.Equal(t, vo.DisputeStatusEscalated, d.Status())
		assert.NotNil(t, d.ClosedAt())
	})

	t.Run("rejected without response", func(t *testing.T) {
		d := newPendingDispute(t)
		assert.ErrorIs(t, d.EscalateToClaim(buyerID), ErrEscalationRequiresDecline)
	})

	t.Run("rejected after accept", func(t *testing.T) {
		d := negotiationDispute(t, vo.DecisionAccept)
		assert.ErrorIs(t, d.EscalateToClaim(buyerID), ErrEscalationRequiresDecline)
	})

	t.Run("only issuer may escalate", func(t *testing.T) {
		d := negotiationDispute(t, vo.DecisionDecline)
		assert.ErrorIs(t, d.EscalateToClaim(sellerID), ErrNotIssuer)
	})
}
