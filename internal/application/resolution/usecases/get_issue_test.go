package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendora/internal/domain/resolution"
	vo "vendora/internal/domain/resolution/valueobjects"
	"vendora/internal/shared/errors"
)

const testResponseWindow = 3 * 24 * time.Hour

func TestGetIssueUseCase_ByID(t *testing.T) {
	issue := makeIssue(t, vo.IssueStatusOpen, resolution.Unanswered())
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*resolution.Issue, error) { return issue, nil },
	}

	uc := NewGetIssueUseCase(issueRepo, testResponseWindow, &mockLogger{})
	result, err := uc.Execute(context.Background(), GetIssueQuery{UserID: testBuyerID, IssueID: testIssueID})
	require.NoError(t, err)

	assert.Equal(t, testIssueID, result.ID)
	assert.Equal(t, "issuer", result.ViewerRole)
	require.NotNil(t, result.ResponseDeadline)
	require.NotNil(t, result.TimeRemaining)
	assert.Nil(t, result.SellerResponse)
}

func TestGetIssueUseCase_ByNumber(t *testing.T) {
	issue := makeIssue(t, vo.IssueStatusOpen, resolution.Unanswered())
	issueRepo := &mockIssueRepository{
		GetByNumberFunc: func(ctx context.Context, number string) (*resolution.Issue, error) {
			assert.Equal(t, "ISS-20260830-0001", number)
			return issue, nil
		},
	}

	uc := NewGetIssueUseCase(issueRepo, testResponseWindow, &mockLogger{})
	result, err := uc.Execute(context.Background(), GetIssueQuery{UserID: testSellerID, IssueNumber: "ISS-20260830-0001"})
	require.NoError(t, err)

	assert.Equal(t, "respondent", result.ViewerRole)
}

func TestGetIssueUseCase_NoCountdownAfterResponse(t *testing.T) {
	issue := makeIssue(t, vo.IssueStatusSellerResponded, declinedResponse(t))
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*resolution.Issue, error) { return issue, nil },
	}

	uc := NewGetIssueUseCase(issueRepo, testResponseWindow, &mockLogger{})
	result, err := uc.Execute(context.Background(), GetIssueQuery{UserID: testBuyerID, IssueID: testIssueID})
	require.NoError(t, err)

	assert.Nil(t, result.ResponseDeadline)
	assert.Nil(t, result.TimeRemaining)
	require.NotNil(t, result.SellerResponse)
	assert.Equal(t, "decline", result.SellerResponse.Decision)
}

func TestGetIssueUseCase_StrangerForbidden(t *testing.T) {
	issue := makeIssue(t, vo.IssueStatusOpen, resolution.Unanswered())
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*resolution.Issue, error) { return issue, nil },
	}

	uc := NewGetIssueUseCase(issueRepo, testResponseWindow, &mockLogger{})
	_, err := uc.Execute(context.Background(), GetIssueQuery{UserID: testOtherID, IssueID: testIssueID})
	assert.True(t, errors.IsForbiddenError(err))
}

func TestGetDisputeUseCase(t *testing.T) {
	t.Run("negotiation shows countdown", func(t *testing.T) {
		dispute := makeDispute(t, vo.DisputeStatusNegotiation, declinedResponse(t))
		disputeRepo := &mockDisputeRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*resolution.Dispute, error) { return dispute, nil },
		}

		uc := NewGetDisputeUseCase(disputeRepo, &mockLogger{})
		result, err := uc.Execute(context.Background(), GetDisputeQuery{UserID: testBuyerID, DisputeID: testDisputeID})
		require.NoError(t, err)

		assert.Equal(t, "negotiation", result.Status)
		require.NotNil(t, result.NegotiationDeadline)
		require.NotNil(t, result.TimeRemaining)
	})

	t.Run("pending has no countdown", func(t *testing.T) {
		dispute := makeDispute(t, vo.DisputeStatusPending, resolution.Unanswered())
		disputeRepo := &mockDisputeRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*resolution.Dispute, error) { return dispute, nil },
		}

		uc := NewGetDisputeUseCase(disputeRepo, &mockLogger{})
		result, err := uc.Execute(context.Background(), GetDisputeQuery{UserID: testBuyerID, DisputeID: testDisputeID})
		require.NoError(t, err)

		assert.Nil(t, result.NegotiationDeadline)
		assert.Nil(t, result.TimeRemaining)
	})

	t.Run("stranger forbidden", func(t *testing.T) {
		dispute := makeDispute(t, vo.DisputeStatusPending, resolution.Unanswered())
		disputeRepo := &mockDisputeRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*resolution.Dispute, error) { return dispute, nil },
		}

		uc := NewGetDisputeUseCase(disputeRepo, &mockLogger{})
		_, err := uc.Execute(context.Background(), GetDisputeQuery{UserID: testOtherID, DisputeID: testDisputeID})
		assert.True(t, errors.IsForbiddenError(err))
	})
}
