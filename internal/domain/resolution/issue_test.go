package resolution

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "vendora/internal/domain/resolution/valueobjects"
)

const (
	buyerID  uint = 10
	sellerID uint = 20
	otherID  uint = 99
	adID     uint = 7
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newOpenIssue(t *testing.T) *Issue {
	t.Helper()
	issue, err := NewIssue(adID, buyerID, sellerID, "The delivered chair arrived broken", "I want a full refund please")
	require.NoError(t, err)
	return issue
}

func respondedIssue(t *testing.T, decision vo.Decision) *Issue {
	t.Helper()
	issue := newOpenIssue(t)
	require.NoError(t, issue.Respond(sellerID, decision, "Here is my answer to the complaint"))
	return issue
}

// ---------------------------------------------------------------------------
// Constructor
// ---------------------------------------------------------------------------

func TestNewIssue_Valid(t *testing.T) {
	issue := newOpenIssue(t)

	assert.Equal(t, vo.IssueStatusOpen, issue.Status())
	assert.Equal(t, buyerID, issue.IssuerID())
	assert.Equal(t, sellerID, issue.RespondentID())
	assert.False(t, issue.Response().Answered())
	assert.Equal(t, 1, issue.Version())
	assert.Nil(t, issue.ClosedAt())
}

func TestNewIssue_Invalid(t *testing.T) {
	tests := []struct {
		name         string
		advertID     uint
		issuerID     uint
		respondentID uint
		description  string
		request      string
	}{
		{"missing advertisement", 0, buyerID, sellerID, "valid description here", "valid request text"},
		{"missing issuer", adID, 0, sellerID, "valid description here", "valid request text"},
		{"missing respondent", adID, buyerID, 0, "valid description here", "valid request text"},
		{"same issuer and respondent", adID, buyerID, buyerID, "valid description here", "valid request text"},
		{"description too short", adID, buyerID, sellerID, "short", "valid request text"},
		{"description too long", adID, buyerID, sellerID, strings.Repeat("a", MaxTextLength+1), "valid request text"},
		{"request too short", adID, buyerID, sellerID, "valid description here", "short"},
		{"request too long", adID, buyerID, sellerID, "valid description here", strings.Repeat("a", MaxTextLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue, err := NewIssue(tt.advertID, tt.issuerID, tt.respondentID, tt.description, tt.request)
			assert.Error(t, err)
			assert.Nil(t, issue)
		})
	}
}

// ---------------------------------------------------------------------------
// Respond
// ---------------------------------------------------------------------------

func TestIssueRespond_MovesToSellerResponded(t *testing.T) {
	issue := newOpenIssue(t)

	err := issue.Respond(sellerID, vo.DecisionAccept, "Sorry about that, refund approved")
	require.NoError(t, err)

	assert.Equal(t, vo.IssueStatusSellerResponded, issue.Status())
	assert.True(t, issue.Response().Answered())
	assert.Equal(t, vo.DecisionAccept, issue.Response().Decision())
	assert.False(t, issue.Response().RespondedAt().IsZero())
}

func TestIssueRespond_OnlyRespondent(t *testing.T) {
	t.Run("issuer cannot respond", func(t *testing.T) {
		issue := newOpenIssue(t)
		err := issue.Respond(buyerID, vo.DecisionAccept, "trying to answer my own case")
		assert.ErrorIs(t, err, ErrNotRespondent)
	})

	t.Run("third party cannot respond", func(t *testing.T) {
		issue := newOpenIssue(t)
		err := issue.Respond(otherID, vo.DecisionAccept, "not my case at all")
		assert.ErrorIs(t, err, ErrNotParticipant)
	})
}

func TestIssueRespond_OneShot(t *testing.T) {
	issue := respondedIssue(t, vo.DecisionDecline)

	err := issue.Respond(sellerID, vo.DecisionAccept, "changed my mind, accepting now")
	assert.ErrorIs(t, err, ErrAlreadyResponded)
	// First answer stands untouched.
	assert.Equal(t, vo.DecisionDecline, issue.Response().Decision())
}

func TestIssueRespond_RequiresText(t *testing.T) {
	issue := newOpenIssue(t)

	err := issue.Respond(sellerID, vo.DecisionAccept, "")
	assert.Error(t, err)
	assert.Equal(t, vo.IssueStatusOpen, issue.Status())
	assert.False(t, issue.Response().Answered())
}

// ---------------------------------------------------------------------------
// Close
// ---------------------------------------------------------------------------

func TestIssueClose_Outcomes(t *testing.T) {
	t.Run("withdrawal before response closes by buyer", func(t *testing.T) {
		issue := newOpenIssue(t)
		require.NoError(t, issue.Close(buyerID))
		assert.Equal(t, vo.IssueStatusClosedByBuyer, issue.Status())
		require.NotNil(t, issue.ClosedAt())
	})

	t.Run("close after accept settles", func(t *testing.T) {
		issue := respondedIssue(t, vo.DecisionAccept)
		require.NoError(t, issue.Close(buyerID))
		assert.Equal(t, vo.IssueStatusSettled, issue.Status())
	})

	t.Run("close after decline closes by buyer", func(t *testing.T) {
		issue := respondedIssue(t, vo.DecisionDecline)
		require.NoError(t, issue.Close(buyerID))
		assert.Equal(t, vo.IssueStatusClosedByBuyer, issue.Status())
	})
}

func TestIssueClose_OnlyIssuer(t *testing.T) {
	issue := newOpenIssue(t)

	assert.ErrorIs(t, issue.Close(sellerID), ErrNotIssuer)
	assert.ErrorIs(t, issue.Close(otherID), ErrNotParticipant)
	assert.Equal(t, vo.IssueStatusOpen, issue.Status())
}

func TestIssueClose_TerminalIsFinal(t *testing.T) {
	issue := respondedIssue(t, vo.DecisionAccept)
	require.NoError(t, issue.Close(buyerID))

	assert.ErrorIs(t, issue.Close(buyerID), ErrInvalidTransition)
	assert.ErrorIs(t, issue.Respond(sellerID, vo.DecisionDecline, "far too late to answer"), ErrAlreadyResponded)
	assert.Equal(t, vo.IssueStatusSettled, issue.Status())
}

// ---------------------------------------------------------------------------
// Escalation
// ---------------------------------------------------------------------------

func TestIssueMarkEscalated(t *testing.T) {
	t.Run("after decline", func(t *testing.T) {
		issue := respondedIssue(t, vo.DecisionDecline)
		require.NoError(t, issue.MarkEscalated(buyerID))
		assert.Equal(t, vo.IssueStatusEscalated, issue.Status())
		assert.NotNil(t, issue.ClosedAt())
	})

	t.Run("after accept", func(t *testing.T) {
		issue := respondedIssue(t, vo.DecisionAccept)
		require.NoError(t, issue.MarkEscalated(buyerID))
		assert.Equal(t, vo.IssueStatusEscalated, issue.Status())
	})

	t.Run("rejected without response", func(t *testing.T) {
		issue := newOpenIssue(t)
		assert.ErrorIs(t, issue.MarkEscalated(buyerID), ErrInvalidTransition)
	})

	t.Run("only issuer may escalate", func(t *testing.T) {
		issue := respondedIssue(t, vo.DecisionDecline)
		assert.ErrorIs(t, issue.MarkEscalated(sellerID), ErrNotIssuer)
	})
}

// ---------------------------------------------------------------------------
// Derived state
// ---------------------------------------------------------------------------

func TestIssueResponseDeadline(t *testing.T) {
	issue := newOpenIssue(t)
	window := 72 * time.Hour

	assert.Equal(t, issue.CreatedAt().Add(window), issue.ResponseDeadline(window))
}

func TestIssueCanAcceptMessage(t *testing.T) {
	t.Run("open and responded accept messages", func(t *testing.T) {
		issue := newOpenIssue(t)
		assert.True(t, issue.CanAcceptMessage())

		require.NoError(t, issue.Respond(sellerID, vo.DecisionDecline, "no refund will be given"))
		assert.True(t, issue.CanAcceptMessage())
	})

	t.Run("settled keeps the thread open", func(t *testing.T) {
		issue := respondedIssue(t, vo.DecisionAccept)
		require.NoError(t, issue.Close(buyerID))
		assert.Equal(t, vo.IssueStatusSettled, issue.Status())
		assert.True(t, issue.CanAcceptMessage())
	})

	t.Run("withdrawal freezes the thread", func(t *testing.T) {
		issue := newOpenIssue(t)
		require.NoError(t, issue.Close(buyerID))
		assert.False(t, issue.CanAcceptMessage())
	})

	t.Run("escalation moves the conversation", func(t *testing.T) {
		issue := respondedIssue(t, vo.DecisionDecline)
		require.NoError(t, issue.MarkEscalated(buyerID))
		assert.False(t, issue.CanAcceptMessage())
	})
}

func TestIssueRoleOf(t *testing.T) {
	issue := newOpenIssue(t)

	assert.Equal(t, RoleIssuer, issue.RoleOf(buyerID))
	assert.Equal(t, RoleRespondent, issue.RoleOf(sellerID))
	assert.Equal(t, RoleUnauthorized, issue.RoleOf(otherID))
}
