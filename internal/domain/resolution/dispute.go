package resolution

import (
	"fmt"
	"strings"
	"time"

	vo "vendora/internal/domain/resolution/valueobjects"
	"vendora/internal/shared/biztime"
)

// Dispute is the second-stage case, either escalated from a declined
// issue or opened directly. Unlike an issue it has a negotiation phase
// with its own deadline, and its own exit into an external claims
// process.
type Dispute struct {
	id                  uint
	disputeNumber       string
	sourceIssueID       *uint
	advertisementID     uint
	issuerID            uint
	respondentID        uint
	category            string
	description         string
	disputeDemand       string
	status              vo.DisputeStatus
	response            SellerResponse
	negotiationDeadline *time.Time
	closedAt            *time.Time
	version             int
	createdAt           time.Time
	updatedAt           time.Time
}

// NewDispute creates a pending dispute. sourceIssueID is set when the
// dispute was escalated from an issue, nil when opened directly.
func NewDispute(advertisementID, issuerID, respondentID uint, category, description, disputeDemand string, sourceIssueID *uint) (*Dispute, error) {
	if advertisementID == 0 {
		return nil, fmt.Errorf("advertisement ID is required")
	}
	if issuerID == 0 || respondentID == 0 {
		return nil, fmt.Errorf("issuer and respondent IDs are required")
	}
	if issuerID == respondentID {
		return nil, fmt.Errorf("issuer and respondent must be different users")
	}
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("dispute category is required")
	}
	if err := validateCaseText("description", description); err != nil {
		return nil, err
	}
	if err := validateCaseText("dispute demand", disputeDemand); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Dispute{
		sourceIssueID:   sourceIssueID,
		advertisementID: advertisementID,
		issuerID:        issuerID,
		respondentID:    respondentID,
		category:        strings.TrimSpace(category),
		description:     description,
		disputeDemand:   disputeDemand,
		status:          vo.DisputeStatusPending,
		response:        Unanswered(),
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructDispute rebuilds a dispute from persistence without
// validation.
func ReconstructDispute(
	id uint,
	disputeNumber string,
	sourceIssueID *uint,
	advertisementID, issuerID, respondentID uint,
	category, description, disputeDemand string,
	status vo.DisputeStatus,
	response SellerResponse,
	negotiationDeadline, closedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) *Dispute {
	return &Dispute{
		id:                  id,
		disputeNumber:       disputeNumber,
		sourceIssueID:       sourceIssueID,
		advertisementID:     advertisementID,
		issuerID:            issuerID,
		respondentID:        respondentID,
		category:            category,
		description:         description,
		disputeDemand:       disputeDemand,
		status:              status,
		response:            response,
		negotiationDeadline: negotiationDeadline,
		closedAt:            closedAt,
		version:             version,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

func (d *Dispute) ID() uint                         { return d.id }
func (d *Dispute) DisputeNumber() string            { return d.disputeNumber }
func (d *Dispute) SourceIssueID() *uint             { return d.sourceIssueID }
func (d *Dispute) AdvertisementID() uint            { return d.advertisementID }
func (d *Dispute) IssuerID() uint                   { return d.issuerID }
func (d *Dispute) RespondentID() uint               { return d.respondentID }
func (d *Dispute) Category() string                 { return d.category }
func (d *Dispute) Description() string              { return d.description }
func (d *Dispute) DisputeDemand() string            { return d.disputeDemand }
func (d *Dispute) Status() vo.DisputeStatus         { return d.status }
func (d *Dispute) Response() SellerResponse         { return d.response }
func (d *Dispute) NegotiationDeadline() *time.Time  { return d.negotiationDeadline }
func (d *Dispute) ClosedAt() *time.Time             { return d.closedAt }
func (d *Dispute) Version() int                     { return d.version }
func (d *Dispute) CreatedAt() time.Time             { return d.createdAt }
func (d *Dispute) UpdatedAt() time.Time             { return d.updatedAt }

// SetID assigns the database-generated ID after the first save.
func (d *Dispute) SetID(id uint) {
	d.id = id
}

// SetDisputeNumber assigns the generated case number before the first
// save.
func (d *Dispute) SetDisputeNumber(number string) {
	d.disputeNumber = number
}

// RoleOf derives the acting user's role on this dispute.
func (d *Dispute) RoleOf(actorID uint) Role {
	return ComputeRole(actorID, d.issuerID, d.respondentID)
}

// CanAcceptMessage reports whether the thread is still writable.
func (d *Dispute) CanAcceptMessage() bool {
	return !d.status.IsTerminal()
}

// MarkUnderReview records that the respondent has acknowledged the
// dispute. Optional triage step; responding is allowed with or without
// it.
func (d *Dispute) MarkUnderReview(actorID uint) error {
	switch d.RoleOf(actorID) {
	case RoleRespondent:
	case RoleIssuer:
		return ErrNotRespondent
	default:
		return ErrNotParticipant
	}
	if !d.status.CanTransitionTo(vo.DisputeStatusUnderReview) {
		return fmt.Errorf("%w: cannot mark under review while %s", ErrInvalidTransition, d.status)
	}

	d.status = vo.DisputeStatusUnderReview
	d.touch()
	return nil
}

// Respond records the seller's one-shot answer, opens negotiation and
// stamps the negotiation deadline. The deadline is advisory: its
// passing is shown to the issuer but triggers no transition.
func (d *Dispute) Respond(actorID uint, decision vo.Decision, text string, negotiationWindow time.Duration) error {
	switch d.RoleOf(actorID) {
	case RoleRespondent:
	case RoleIssuer:
		return ErrNotRespondent
	default:
		return ErrNotParticipant
	}
	if d.response.Answered() {
		return ErrAlreadyResponded
	}
	if !d.status.CanTransitionTo(vo.DisputeStatusNegotiation) {
		return fmt.Errorf("%w: cannot respond while %s", ErrInvalidTransition, d.status)
	}

	now := biztime.NowUTC()
	response, err := Answered(text, decision, now)
	if err != nil {
		return err
	}

	deadline := now.Add(negotiationWindow)
	d.response = response
	d.status = vo.DisputeStatusNegotiation
	d.negotiationDeadline = &deadline
	d.touch()
	return nil
}

// Close ends the dispute at the issuer's request. After an accepted
// response the dispute resolves; after a decline, or before any
// response, it closes.
func (d *Dispute) Close(actorID uint) error {
	switch d.RoleOf(actorID) {
	case RoleIssuer:
	case RoleRespondent:
		return ErrNotIssuer
	default:
		return ErrNotParticipant
	}

	target := vo.DisputeStatusClosed
	if d.response.Answered() && d.response.Decision().IsAccept() {
		target = vo.DisputeStatusResolved
	}
	if !d.status.CanTransitionTo(target) {
		return fmt.Errorf("%w: cannot close while %s", ErrInvalidTransition, d.status)
	}

	now := biztime.NowUTC()
	d.status = target
	d.closedAt = &now
	d.touch()
	return nil
}

// EscalateToClaim hands the dispute off to the external claims process.
// Only reachable from negotiation after a declined response.
func (d *Dispute) EscalateToClaim(actorID uint) error {
	switch d.RoleOf(actorID) {
	case RoleIssuer:
	case RoleRespondent:
		return ErrNotIssuer
	default:
		return ErrNotParticipant
	}
	if !d.response.Answered() || !d.response.Decision().IsDecline() {
		return ErrEscalationRequiresDecline
	}
	if !d.status.CanTransitionTo(vo.DisputeStatusEscalated) {
		return fmt.Errorf("%w: cannot escalate while %s", ErrInvalidTransition, d.status)
	}

	now := biztime.NowUTC()
	d.status = vo.DisputeStatusEscalated
	d.closedAt = &now
	d.touch()
	return nil
}

func (d *Dispute) touch() {
	d.updatedAt = biztime.NowUTC()
}
