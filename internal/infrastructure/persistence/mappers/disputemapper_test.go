package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendora/internal/domain/resolution"
	vo "vendora/internal/domain/resolution/valueobjects"
)

func TestDisputeMapper_RoundTrip_Answered(t *testing.T) {
	mapper := NewDisputeMapper()

	respondedAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	deadline := respondedAt.Add(7 * 24 * time.Hour)
	response, err := resolution.Answered("I can offer a partial refund", vo.DecisionDecline, respondedAt)
	require.NoError(t, err)

	sourceID := uint(42)
	original := resolution.ReconstructDispute(
		2, "DSP-20260830-0001", &sourceID,
		7, 10, 20,
		"item_defective", "The delivered chair arrived broken", "I want a full refund please",
		vo.DisputeStatusNegotiation,
		response,
		&deadline, nil,
		3,
		respondedAt.Add(-48*time.Hour), respondedAt,
	)

	model := mapper.ToModel(original)
	require.NotNil(t, model.SellerDecision)
	assert.Equal(t, "decline", *model.SellerDecision)
	require.NotNil(t, model.NegotiationDeadline)
	assert.Equal(t, deadline.UnixMilli(), *model.NegotiationDeadline)
	assert.Nil(t, model.ClosedAt)

	restored, err := mapper.ToDomain(model)
	require.NoError(t, err)

	assert.Equal(t, original.ID(), restored.ID())
	assert.Equal(t, original.DisputeNumber(), restored.DisputeNumber())
	require.NotNil(t, restored.SourceIssueID())
	assert.Equal(t, sourceID, *restored.SourceIssueID())
	assert.Equal(t, original.Category(), restored.Category())
	assert.Equal(t, original.Status(), restored.Status())
	assert.Equal(t, original.Version(), restored.Version())

	require.True(t, restored.Response().Answered())
	assert.Equal(t, vo.DecisionDecline, restored.Response().Decision())
	assert.Equal(t, "I can offer a partial refund", restored.Response().Text())
	assert.True(t, restored.Response().RespondedAt().Equal(respondedAt))

	require.NotNil(t, restored.NegotiationDeadline())
	assert.True(t, restored.NegotiationDeadline().Equal(deadline))
}

func TestDisputeMapper_RoundTrip_Unanswered(t *testing.T) {
	mapper := NewDisputeMapper()

	created := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	original := resolution.ReconstructDispute(
		2, "DSP-20260830-0002", nil,
		7, 10, 20,
		"not_as_described", "The delivered chair arrived broken", "I want a full refund please",
		vo.DisputeStatusPending,
		resolution.Unanswered(),
		nil, nil,
		1,
		created, created,
	)

	model := mapper.ToModel(original)
	assert.Nil(t, model.SellerDecision)
	assert.Nil(t, model.SellerResponseText)
	assert.Nil(t, model.RespondedAt)
	assert.Nil(t, model.NegotiationDeadline)

	restored, err := mapper.ToDomain(model)
	require.NoError(t, err)

	assert.Nil(t, restored.SourceIssueID())
	assert.False(t, restored.Response().Answered())
	assert.Nil(t, restored.NegotiationDeadline())
	assert.Nil(t, restored.ClosedAt())
}

func TestDisputeMapper_ToDomain_RejectsPartialResponse(t *testing.T) {
	mapper := NewDisputeMapper()

	created := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	model := mapper.ToModel(resolution.ReconstructDispute(
		2, "DSP-20260830-0003", nil,
		7, 10, 20,
		"item_defective", "The delivered chair arrived broken", "I want a full refund please",
		vo.DisputeStatusPending,
		resolution.Unanswered(),
		nil, nil,
		1,
		created, created,
	))

	decision := "decline"
	model.SellerDecision = &decision

	_, err := mapper.ToDomain(model)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid dispute response")
}
