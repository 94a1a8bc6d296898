package resolution

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendora/internal/domain/advertisement"
	vo "vendora/internal/domain/resolution/valueobjects"
)

const adAgeWindow = 30 * 24 * time.Hour

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockIssueRepo struct {
	IssueRepository
	hasOpenCaseFn func(ctx context.Context, advertisementID, userID uint) (bool, error)
}

func (m *mockIssueRepo) HasOpenCase(ctx context.Context, advertisementID, userID uint) (bool, error) {
	if m.hasOpenCaseFn != nil {
		return m.hasOpenCaseFn(ctx, advertisementID, userID)
	}
	return false, nil
}

type mockDisputeRepo struct {
	DisputeRepository
	hasOpenCaseFn func(ctx context.Context, advertisementID, userID uint) (bool, error)
}

func (m *mockDisputeRepo) HasOpenCase(ctx context.Context, advertisementID, userID uint) (bool, error) {
	if m.hasOpenCaseFn != nil {
		return m.hasOpenCaseFn(ctx, advertisementID, userID)
	}
	return false, nil
}

type mockAdRepo struct {
	getByIDFn func(ctx context.Context, adID uint) (*advertisement.Advertisement, error)
}

func (m *mockAdRepo) Save(ctx context.Context, ad *advertisement.Advertisement) error {
	return nil
}

func (m *mockAdRepo) GetByID(ctx context.Context, adID uint) (*advertisement.Advertisement, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, adID)
	}
	return nil, errors.New("not configured")
}

func adAgedDays(t *testing.T, days int) *advertisement.Advertisement {
	t.Helper()
	buyer := buyerID
	return advertisement.ReconstructAdvertisement(
		adID, "Oak chair", 15000, sellerID, &buyer, advertisement.StatusSold,
		time.Now().UTC().Add(-time.Duration(days)*24*time.Hour),
	)
}

func checkerWith(issueOpen, disputeOpen bool, ad *advertisement.Advertisement) *EligibilityChecker {
	return NewEligibilityChecker(
		&mockIssueRepo{hasOpenCaseFn: func(context.Context, uint, uint) (bool, error) { return issueOpen, nil }},
		&mockDisputeRepo{hasOpenCaseFn: func(context.Context, uint, uint) (bool, error) { return disputeOpen, nil }},
		&mockAdRepo{getByIDFn: func(context.Context, uint) (*advertisement.Advertisement, error) { return ad, nil }},
		adAgeWindow,
	)
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestEligibilityCheck_Eligible(t *testing.T) {
	checker := checkerWith(false, false, adAgedDays(t, 5))

	result, ad, err := checker.Check(context.Background(), buyerID, adID)
	require.NoError(t, err)
	assert.True(t, result.Eligible)
	assert.Empty(t, result.Reason)
	require.NotNil(t, ad)
	assert.Equal(t, adID, ad.ID())
}

func TestEligibilityCheck_Reasons(t *testing.T) {
	t.Run("existing open issue", func(t *testing.T) {
		checker := checkerWith(true, false, adAgedDays(t, 5))
		result, _, err := checker.Check(context.Background(), buyerID, adID)
		require.NoError(t, err)
		assert.False(t, result.Eligible)
		assert.Equal(t, ReasonExistingOpenCase, result.Reason)
	})

	t.Run("existing open dispute", func(t *testing.T) {
		checker := checkerWith(false, true, adAgedDays(t, 5))
		result, _, err := checker.Check(context.Background(), buyerID, adID)
		require.NoError(t, err)
		assert.Equal(t, ReasonExistingOpenCase, result.Reason)
	})

	t.Run("listing too old", func(t *testing.T) {
		checker := checkerWith(false, false, adAgedDays(t, 45))
		result, _, err := checker.Check(context.Background(), buyerID, adID)
		require.NoError(t, err)
		assert.Equal(t, ReasonListingTooOld, result.Reason)
	})

	t.Run("not a counterparty", func(t *testing.T) {
		checker := checkerWith(false, false, adAgedDays(t, 5))
		result, _, err := checker.Check(context.Background(), otherID, adID)
		require.NoError(t, err)
		assert.Equal(t, ReasonNotCounterparty, result.Reason)
	})
}

// A user failing several rules always sees the first one in evaluation
// order: open case, then age, then counterparty.
func TestEligibilityCheck_ReasonPrecedence(t *testing.T) {
	t.Run("open case beats stale listing", func(t *testing.T) {
		checker := checkerWith(true, false, adAgedDays(t, 45))
		result, _, err := checker.Check(context.Background(), buyerID, adID)
		require.NoError(t, err)
		assert.Equal(t, ReasonExistingOpenCase, result.Reason)
	})

	t.Run("stale listing beats non-counterparty", func(t *testing.T) {
		checker := checkerWith(false, false, adAgedDays(t, 45))
		result, _, err := checker.Check(context.Background(), otherID, adID)
		require.NoError(t, err)
		assert.Equal(t, ReasonListingTooOld, result.Reason)
	})
}

func TestEligibilityCheck_AdLookupError(t *testing.T) {
	checker := NewEligibilityChecker(
		&mockIssueRepo{},
		&mockDisputeRepo{},
		&mockAdRepo{getByIDFn: func(context.Context, uint) (*advertisement.Advertisement, error) {
			return nil, errors.New("record not found")
		}},
		adAgeWindow,
	)

	_, _, err := checker.Check(context.Background(), buyerID, adID)
	assert.Error(t, err)
}

func TestDefaultNumberGenerator(t *testing.T) {
	gen := NewDefaultNumberGenerator()
	ctx := context.Background()

	first, err := gen.Generate(ctx, vo.CaseKindIssue)
	require.NoError(t, err)
	second, err := gen.Generate(ctx, vo.CaseKindIssue)
	require.NoError(t, err)
	dispute, err := gen.Generate(ctx, vo.CaseKindDispute)
	require.NoError(t, err)

	assert.Regexp(t, `^ISS-\d{8}-0001$`, first)
	assert.Regexp(t, `^ISS-\d{8}-0002$`, second)
	// Dispute counter is independent of the issue counter.
	assert.Regexp(t, `^DSP-\d{8}-0001$`, dispute)

	_, err = gen.Generate(ctx, vo.CaseKind("bogus"))
	assert.Error(t, err)
}
