package resolution

import (
	"context"
	"fmt"
	"time"

	"vendora/internal/domain/advertisement"
	"vendora/internal/shared/biztime"
)

// Ineligibility reasons, in the order they are evaluated. A user who
// fails several rules always sees the first one.
const (
	ReasonExistingOpenCase = "existing_open_case"
	ReasonListingTooOld    = "listing_too_old"
	ReasonNotCounterparty  = "not_a_counterparty"
)

// EligibilityResult is the outcome of an eligibility check. Reason is
// empty when Eligible is true.
type EligibilityResult struct {
	Eligible bool
	Reason   string
}

func eligible() EligibilityResult {
	return EligibilityResult{Eligible: true}
}

func ineligible(reason string) EligibilityResult {
	return EligibilityResult{Reason: reason}
}

// EligibilityChecker decides whether a user may open a new case
// against an advertisement. The same check backs both the standalone
// eligibility endpoint and case creation itself, so the UI and the
// engine can never disagree.
type EligibilityChecker struct {
	issues      IssueRepository
	disputes    DisputeRepository
	ads         advertisement.Repository
	adAgeWindow time.Duration
}

func NewEligibilityChecker(
	issues IssueRepository,
	disputes DisputeRepository,
	ads advertisement.Repository,
	adAgeWindow time.Duration,
) *EligibilityChecker {
	return &EligibilityChecker{
		issues:      issues,
		disputes:    disputes,
		ads:         ads,
		adAgeWindow: adAgeWindow,
	}
}

// Check evaluates the eligibility rules in fixed order: existing open
// case first, then listing age, then counterparty membership.
func (c *EligibilityChecker) Check(ctx context.Context, userID, advertisementID uint) (EligibilityResult, *advertisement.Advertisement, error) {
	ad, err := c.ads.GetByID(ctx, advertisementID)
	if err != nil {
		return EligibilityResult{}, nil, fmt.Errorf("failed to load advertisement: %w", err)
	}

	hasIssue, err := c.issues.HasOpenCase(ctx, advertisementID, userID)
	if err != nil {
		return EligibilityResult{}, nil, fmt.Errorf("failed to check open issues: %w", err)
	}
	if hasIssue {
		return ineligible(ReasonExistingOpenCase), ad, nil
	}
	hasDispute, err := c.disputes.HasOpenCase(ctx, advertisementID, userID)
	if err != nil {
		return EligibilityResult{}, nil, fmt.Errorf("failed to check open disputes: %w", err)
	}
	if hasDispute {
		return ineligible(ReasonExistingOpenCase), ad, nil
	}

	if ad.Age(biztime.NowUTC()) > c.adAgeWindow {
		return ineligible(ReasonListingTooOld), ad, nil
	}

	if !ad.IsCounterparty(userID) {
		return ineligible(ReasonNotCounterparty), ad, nil
	}

	return eligible(), ad, nil
}
