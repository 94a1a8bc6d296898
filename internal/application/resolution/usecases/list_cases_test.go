package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendora/internal/domain/advertisement"
	"vendora/internal/domain/resolution"
	vo "vendora/internal/domain/resolution/valueobjects"
	"vendora/internal/shared/errors"
)

func TestListIssuesUseCase(t *testing.T) {
	issue := makeIssue(t, vo.IssueStatusOpen, resolution.Unanswered())

	t.Run("returns items with viewer role", func(t *testing.T) {
		issueRepo := &mockIssueRepository{
			GetUserIssuesFunc: func(ctx context.Context, userID uint, filters resolution.CaseFilter) ([]*resolution.Issue, int64, error) {
				return []*resolution.Issue{issue}, 1, nil
			},
		}
		uc := NewListIssuesUseCase(issueRepo, &mockLogger{})

		result, err := uc.Execute(context.Background(), ListIssuesQuery{UserID: testBuyerID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
		require.Len(t, result.Issues, 1)
		assert.Equal(t, "issuer", result.Issues[0].ViewerRole)
	})

	t.Run("passes status filter through", func(t *testing.T) {
		var gotFilter resolution.CaseFilter
		issueRepo := &mockIssueRepository{
			GetUserIssuesFunc: func(ctx context.Context, userID uint, filters resolution.CaseFilter) ([]*resolution.Issue, int64, error) {
				gotFilter = filters
				return nil, 0, nil
			},
		}
		uc := NewListIssuesUseCase(issueRepo, &mockLogger{})

		_, err := uc.Execute(context.Background(), ListIssuesQuery{UserID: testBuyerID, Status: "open", Role: "respondent"})
		require.NoError(t, err)
		require.NotNil(t, gotFilter.Status)
		assert.Equal(t, "open", *gotFilter.Status)
		require.NotNil(t, gotFilter.Role)
		assert.Equal(t, resolution.RoleRespondent, *gotFilter.Role)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		uc := NewListIssuesUseCase(&mockIssueRepository{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), ListIssuesQuery{UserID: testBuyerID, Status: "reopened"})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		uc := NewListIssuesUseCase(&mockIssueRepository{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), ListIssuesQuery{UserID: testBuyerID, Role: "admin"})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestListDisputesUseCase(t *testing.T) {
	dispute := makeDispute(t, vo.DisputeStatusNegotiation, declinedResponse(t))
	disputeRepo := &mockDisputeRepository{
		GetUserDisputesFunc: func(ctx context.Context, userID uint, filters resolution.CaseFilter) ([]*resolution.Dispute, int64, error) {
			return []*resolution.Dispute{dispute}, 1, nil
		},
	}
	uc := NewListDisputesUseCase(disputeRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListDisputesQuery{UserID: testSellerID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Disputes, 1)
	assert.Equal(t, "respondent", result.Disputes[0].ViewerRole)
	assert.Equal(t, "negotiation", result.Disputes[0].Status)
}

func TestCheckEligibilityUseCase(t *testing.T) {
	newUC := func(hasOpenIssue bool) *CheckEligibilityUseCase {
		issueRepo := &mockIssueRepository{
			HasOpenCaseFunc: func(context.Context, uint, uint) (bool, error) { return hasOpenIssue, nil },
		}
		adRepo := &mockAdvertisementRepository{
			GetByIDFunc: func(ctx context.Context, adID uint) (*advertisement.Advertisement, error) {
				return makeAd(t, 5), nil
			},
		}
		checker := resolution.NewEligibilityChecker(issueRepo, &mockDisputeRepository{}, adRepo, 30*24*time.Hour)
		return NewCheckEligibilityUseCase(checker, &mockLogger{})
	}

	t.Run("eligible", func(t *testing.T) {
		result, err := newUC(false).Execute(context.Background(), CheckEligibilityQuery{UserID: testBuyerID, AdvertisementID: testAdID})
		require.NoError(t, err)
		assert.True(t, result.Eligible)
		assert.Empty(t, result.Reason)
	})

	t.Run("ineligible with reason", func(t *testing.T) {
		result, err := newUC(true).Execute(context.Background(), CheckEligibilityQuery{UserID: testBuyerID, AdvertisementID: testAdID})
		require.NoError(t, err)
		assert.False(t, result.Eligible)
		assert.Equal(t, resolution.ReasonExistingOpenCase, result.Reason)
	})

	t.Run("missing advertisement ID", func(t *testing.T) {
		_, err := newUC(false).Execute(context.Background(), CheckEligibilityQuery{UserID: testBuyerID})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestGetResolutionStatsUseCase(t *testing.T) {
	issueRepo := &mockIssueRepository{
		CountByStatusFunc: func(ctx context.Context, userID uint) (map[string]int64, error) {
			return map[string]int64{"open": 2, "settled": 1}, nil
		},
	}
	disputeRepo := &mockDisputeRepository{
		CountByStatusFunc: func(ctx context.Context, userID uint) (map[string]int64, error) {
			return map[string]int64{"negotiation": 1, "closed": 3}, nil
		},
	}

	uc := NewGetResolutionStatsUseCase(issueRepo, disputeRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), GetResolutionStatsQuery{UserID: testBuyerID})
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.TotalIssues)
	assert.Equal(t, int64(4), result.TotalDisputes)
	// Active = open issues + negotiating disputes.
	assert.Equal(t, int64(3), result.ActiveCases)
}
