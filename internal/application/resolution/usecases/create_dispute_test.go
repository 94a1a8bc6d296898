package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendora/internal/domain/advertisement"
	"vendora/internal/domain/resolution"
	"vendora/internal/shared/errors"
)

func newCreateDisputeDeps(t *testing.T, disputeOpen bool, ad *advertisement.Advertisement) (*mockDisputeRepository, *CreateDisputeUseCase) {
	t.Helper()

	issueRepo := &mockIssueRepository{
		HasOpenCaseFunc: func(context.Context, uint, uint) (bool, error) { return false, nil },
	}
	disputeRepo := &mockDisputeRepository{
		HasOpenCaseFunc: func(context.Context, uint, uint) (bool, error) { return disputeOpen, nil },
		SaveFunc: func(ctx context.Context, dispute *resolution.Dispute) error {
			dispute.SetID(testDisputeID)
			return nil
		},
	}
	adRepo := &mockAdvertisementRepository{
		GetByIDFunc: func(context.Context, uint) (*advertisement.Advertisement, error) { return ad, nil },
	}
	checker := resolution.NewEligibilityChecker(issueRepo, disputeRepo, adRepo, 30*24*time.Hour)

	uc := NewCreateDisputeUseCase(disputeRepo, checker, &mockNumberGenerator{}, &mockMessageRepository{}, &mockEventPublisher{}, &mockLogger{})
	return disputeRepo, uc
}

func TestCreateDisputeUseCase_Success(t *testing.T) {
	var saved *resolution.Dispute
	disputeRepo, uc := newCreateDisputeDeps(t, false, makeAd(t, 5))
	disputeRepo.SaveFunc = func(ctx context.Context, dispute *resolution.Dispute) error {
		dispute.SetID(testDisputeID)
		saved = dispute
		return nil
	}

	result, err := uc.Execute(context.Background(), CreateDisputeCommand{
		UserID:          testBuyerID,
		AdvertisementID: testAdID,
		Category:        "item_defective",
		Description:     "The delivered chair arrived broken",
		DisputeDemand:   "I want a full refund please",
	})
	require.NoError(t, err)

	assert.Equal(t, testDisputeID, result.DisputeID)
	assert.Equal(t, "DSP-20260831-0001", result.DisputeNumber)
	assert.Equal(t, "pending", result.Status)

	require.NotNil(t, saved)
	assert.Equal(t, testBuyerID, saved.IssuerID())
	assert.Equal(t, testSellerID, saved.RespondentID())
	assert.Equal(t, "item_defective", saved.Category())
	assert.Nil(t, saved.SourceIssueID())
}

func TestCreateDisputeUseCase_Ineligible(t *testing.T) {
	tests := []struct {
		name        string
		disputeOpen bool
		adAgeDays   int
		userID      uint
		wantReason  string
	}{
		{"existing open dispute", true, 5, testBuyerID, resolution.ReasonExistingOpenCase},
		{"listing too old", false, 45, testBuyerID, resolution.ReasonListingTooOld},
		{"not a counterparty", false, 5, testOtherID, resolution.ReasonNotCounterparty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, uc := newCreateDisputeDeps(t, tt.disputeOpen, makeAd(t, tt.adAgeDays))

			result, err := uc.Execute(context.Background(), CreateDisputeCommand{
				UserID:          tt.userID,
				AdvertisementID: testAdID,
				Category:        "item_defective",
				Description:     "The delivered chair arrived broken",
				DisputeDemand:   "I want a full refund please",
			})
			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, errors.IsNotEligibleError(err))
			assert.Contains(t, err.Error(), tt.wantReason)
		})
	}
}

func TestCreateDisputeUseCase_ValidationFailures(t *testing.T) {
	_, uc := newCreateDisputeDeps(t, false, makeAd(t, 5))

	t.Run("missing user", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateDisputeCommand{AdvertisementID: testAdID})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("missing category", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateDisputeCommand{
			UserID:          testBuyerID,
			AdvertisementID: testAdID,
			Category:        "   ",
			Description:     "The delivered chair arrived broken",
			DisputeDemand:   "I want a full refund please",
		})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("demand too short", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateDisputeCommand{
			UserID:          testBuyerID,
			AdvertisementID: testAdID,
			Category:        "item_defective",
			Description:     "The delivered chair arrived broken",
			DisputeDemand:   "short",
		})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestCreateDisputeUseCase_RecordsOpeningMessage(t *testing.T) {
	var recorded *resolution.Message

	issueRepo := &mockIssueRepository{
		HasOpenCaseFunc: func(context.Context, uint, uint) (bool, error) { return false, nil },
	}
	dRepo := &mockDisputeRepository{
		HasOpenCaseFunc: func(context.Context, uint, uint) (bool, error) { return false, nil },
		SaveFunc: func(ctx context.Context, dispute *resolution.Dispute) error {
			dispute.SetID(testDisputeID)
			return nil
		},
	}
	adRepo := &mockAdvertisementRepository{
		GetByIDFunc: func(context.Context, uint) (*advertisement.Advertisement, error) { return makeAd(t, 5), nil },
	}
	checker := resolution.NewEligibilityChecker(issueRepo, dRepo, adRepo, 30*24*time.Hour)
	msgRepo := &mockMessageRepository{
		SaveFunc: func(ctx context.Context, message *resolution.Message) error {
			recorded = message
			return nil
		},
	}
	uc := NewCreateDisputeUseCase(dRepo, checker, &mockNumberGenerator{}, msgRepo, &mockEventPublisher{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateDisputeCommand{
		UserID:          testBuyerID,
		AdvertisementID: testAdID,
		Category:        "item_defective",
		Description:     "The delivered chair arrived broken",
		DisputeDemand:   "I want a full refund please",
	})
	require.NoError(t, err)

	require.NotNil(t, recorded)
	assert.True(t, recorded.IsSystem())
	assert.Equal(t, testDisputeID, recorded.CaseID())
}
