package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vendora/internal/domain/advertisement"
	"vendora/internal/domain/resolution"
	vo "vendora/internal/domain/resolution/valueobjects"
)

const (
	testBuyerID   uint = 10
	testSellerID  uint = 20
	testOtherID   uint = 99
	testAdID      uint = 7
	testIssueID   uint = 1
	testDisputeID uint = 2
)

func makeIssue(t *testing.T, status vo.IssueStatus, response resolution.SellerResponse) *resolution.Issue {
	t.Helper()
	now := time.Now().UTC().Add(-time.Hour)
	return resolution.ReconstructIssue(
		testIssueID, "ISS-20260830-0001",
		testAdID, testBuyerID, testSellerID,
		"The delivered chair arrived broken", "I want a full refund please",
		status, response, nil, 1, now, now,
	)
}

func makeDispute(t *testing.T, status vo.DisputeStatus, response resolution.SellerResponse) *resolution.Dispute {
	t.Helper()
	now := time.Now().UTC().Add(-time.Hour)
	var deadline *time.Time
	if response.Answered() {
		d := response.RespondedAt().Add(7 * 24 * time.Hour)
		deadline = &d
	}
	return resolution.ReconstructDispute(
		testDisputeID, "DSP-20260830-0001", nil,
		testAdID, testBuyerID, testSellerID,
		"item_defective", "Seller refused to fix the broken item", "Refund of the full purchase price",
		status, response, deadline, nil, 1, now, now,
	)
}

func declinedResponse(t *testing.T) resolution.SellerResponse {
	t.Helper()
	r, err := resolution.Answered("No refund, the item was fine", vo.DecisionDecline, time.Now().UTC().Add(-30*time.Minute))
	require.NoError(t, err)
	return r
}

func acceptedResponse(t *testing.T) resolution.SellerResponse {
	t.Helper()
	r, err := resolution.Answered("Refund approved, sorry", vo.DecisionAccept, time.Now().UTC().Add(-30*time.Minute))
	require.NoError(t, err)
	return r
}

func makeAd(t *testing.T, ageDays int) *advertisement.Advertisement {
	t.Helper()
	buyer := testBuyerID
	return advertisement.ReconstructAdvertisement(
		testAdID, "Oak chair", 15000, testSellerID, &buyer, advertisement.StatusSold,
		time.Now().UTC().Add(-time.Duration(ageDays)*24*time.Hour),
	)
}
