package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueStatusTransitions(t *testing.T) {
	tests := []struct {
		from    IssueStatus
		to      IssueStatus
		allowed bool
	}{
		{IssueStatusOpen, IssueStatusSellerResponded, true},
		{IssueStatusOpen, IssueStatusClosedByBuyer, true},
		{IssueStatusOpen, IssueStatusSettled, false},
		{IssueStatusOpen, IssueStatusEscalated, false},
		{IssueStatusSellerResponded, IssueStatusSettled, true},
		{IssueStatusSellerResponded, IssueStatusClosedByBuyer, true},
		{IssueStatusSellerResponded, IssueStatusEscalated, true},
		{IssueStatusSellerResponded, IssueStatusOpen, false},
		{IssueStatusSettled, IssueStatusOpen, false},
		{IssueStatusClosedByBuyer, IssueStatusEscalated, false},
		{IssueStatusEscalated, IssueStatusClosedByBuyer, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestIssueStatusTerminal(t *testing.T) {
	assert.False(t, IssueStatusOpen.IsTerminal())
	assert.False(t, IssueStatusSellerResponded.IsTerminal())
	assert.True(t, IssueStatusSettled.IsTerminal())
	assert.True(t, IssueStatusClosedByBuyer.IsTerminal())
	assert.True(t, IssueStatusEscalated.IsTerminal())
}

func TestNewIssueStatus(t *testing.T) {
	s, err := NewIssueStatus("seller_responded")
	require.NoError(t, err)
	assert.Equal(t, IssueStatusSellerResponded, s)

	_, err = NewIssueStatus("reopened")
	assert.Error(t, err)
}

func TestDisputeStatusTransitions(t *testing.T) {
	tests := []struct {
		from    DisputeStatus
		to      DisputeStatus
		allowed bool
	}{
		{DisputeStatusPending, DisputeStatusUnderReview, true},
		{DisputeStatusPending, DisputeStatusNegotiation, true},
		{DisputeStatusPending, DisputeStatusClosed, true},
		{DisputeStatusPending, DisputeStatusResolved, false},
		{DisputeStatusPending, DisputeStatusEscalated, false},
		{DisputeStatusUnderReview, DisputeStatusNegotiation, true},
		{DisputeStatusUnderReview, DisputeStatusClosed, true},
		{DisputeStatusUnderReview, DisputeStatusPending, false},
		{DisputeStatusNegotiation, DisputeStatusResolved, true},
		{DisputeStatusNegotiation, DisputeStatusEscalated, true},
		{DisputeStatusNegotiation, DisputeStatusClosed, true},
		{DisputeStatusResolved, DisputeStatusNegotiation, false},
		{DisputeStatusClosed, DisputeStatusNegotiation, false},
		{DisputeStatusEscalated, DisputeStatusClosed, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestDisputeStatusTerminal(t *testing.T) {
	assert.False(t, DisputeStatusPending.IsTerminal())
	assert.False(t, DisputeStatusUnderReview.IsTerminal())
	assert.False(t, DisputeStatusNegotiation.IsTerminal())
	assert.True(t, DisputeStatusResolved.IsTerminal())
	assert.True(t, DisputeStatusClosed.IsTerminal())
	assert.True(t, DisputeStatusEscalated.IsTerminal())
}

func TestDecision(t *testing.T) {
	d, err := NewDecision("accept")
	require.NoError(t, err)
	assert.True(t, d.IsAccept())

	d, err = NewDecision("decline")
	require.NoError(t, err)
	assert.True(t, d.IsDecline())

	_, err = NewDecision("maybe")
	assert.Error(t, err)
}

func TestCaseKind(t *testing.T) {
	k, err := NewCaseKind("issue")
	require.NoError(t, err)
	assert.Equal(t, CaseKindIssue, k)

	k, err = NewCaseKind("dispute")
	require.NoError(t, err)
	assert.Equal(t, CaseKindDispute, k)

	_, err = NewCaseKind("claim")
	assert.Error(t, err)
}
