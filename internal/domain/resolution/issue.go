package resolution

import (
	"fmt"
	"time"

	vo "vendora/internal/domain/resolution/valueobjects"
	"vendora/internal/shared/biztime"
)

const (
	// MinComplaintLength guards against empty-in-spirit complaints.
	MinComplaintLength = 10
	// MaxTextLength bounds every free-text field on a case.
	MaxTextLength = 5000
)

// Issue is the first-stage case a buyer opens against a seller over a
// specific advertisement. It carries the complaint, the buyer's
// requested remedy and the seller's one-shot response, and walks the
// issue state machine until it settles, closes or escalates into a
// dispute.
type Issue struct {
	id              uint
	issueNumber     string
	advertisementID uint
	issuerID        uint
	respondentID    uint
	description     string
	buyerRequest    string
	status          vo.IssueStatus
	response        SellerResponse
	closedAt        *time.Time
	version         int
	createdAt       time.Time
	updatedAt       time.Time
}

// NewIssue creates an open issue. The issuer is the buyer, the
// respondent the seller; they must be distinct.
func NewIssue(advertisementID, issuerID, respondentID uint, description, buyerRequest string) (*Issue, error) {
	if advertisementID == 0 {
		return nil, fmt.Errorf("advertisement ID is required")
	}
	if issuerID == 0 || respondentID == 0 {
		return nil, fmt.Errorf("issuer and respondent IDs are required")
	}
	if issuerID == respondentID {
		return nil, fmt.Errorf("issuer and respondent must be different users")
	}
	if err := validateCaseText("description", description); err != nil {
		return nil, err
	}
	if err := validateCaseText("buyer request", buyerRequest); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Issue{
		advertisementID: advertisementID,
		issuerID:        issuerID,
		respondentID:    respondentID,
		description:     description,
		buyerRequest:    buyerRequest,
		status:          vo.IssueStatusOpen,
		response:        Unanswered(),
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructIssue rebuilds an issue from persistence without
// validation.
func ReconstructIssue(
	id uint,
	issueNumber string,
	advertisementID, issuerID, respondentID uint,
	description, buyerRequest string,
	status vo.IssueStatus,
	response SellerResponse,
	closedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) *Issue {
	return &Issue{
		id:              id,
		issueNumber:     issueNumber,
		advertisementID: advertisementID,
		issuerID:        issuerID,
		respondentID:    respondentID,
		description:     description,
		buyerRequest:    buyerRequest,
		status:          status,
		response:        response,
		closedAt:        closedAt,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (i *Issue) ID() uint                  { return i.id }
func (i *Issue) IssueNumber() string       { return i.issueNumber }
func (i *Issue) AdvertisementID() uint     { return i.advertisementID }
func (i *Issue) IssuerID() uint            { return i.issuerID }
func (i *Issue) RespondentID() uint        { return i.respondentID }
func (i *Issue) Description() string       { return i.description }
func (i *Issue) BuyerRequest() string      { return i.buyerRequest }
func (i *Issue) Status() vo.IssueStatus    { return i.status }
func (i *Issue) Response() SellerResponse  { return i.response }
func (i *Issue) ClosedAt() *time.Time      { return i.closedAt }
func (i *Issue) Version() int              { return i.version }
func (i *Issue) CreatedAt() time.Time      { return i.createdAt }
func (i *Issue) UpdatedAt() time.Time      { return i.updatedAt }

// SetID assigns the database-generated ID after the first save.
func (i *Issue) SetID(id uint) {
	i.id = id
}

// SetIssueNumber assigns the generated case number before the first
// save.
func (i *Issue) SetIssueNumber(number string) {
	i.issueNumber = number
}

// RoleOf derives the acting user's role on this issue.
func (i *Issue) RoleOf(actorID uint) Role {
	return ComputeRole(actorID, i.issuerID, i.respondentID)
}

// ResponseDeadline is the advisory date by which the seller is asked to
// respond. It is computed from policy, never stored, and its passing
// changes nothing by itself.
func (i *Issue) ResponseDeadline(window time.Duration) time.Time {
	return i.createdAt.Add(window)
}

// CanAcceptMessage reports whether the thread is still writable. A
// settled issue keeps its thread open for follow-up; withdrawal
// freezes it, and escalation moves the conversation to the dispute
// thread.
func (i *Issue) CanAcceptMessage() bool {
	return i.status != vo.IssueStatusClosedByBuyer && i.status != vo.IssueStatusEscalated
}

// Respond records the seller's one-shot answer and moves the issue to
// seller_responded. Only the respondent may respond, and only once.
func (i *Issue) Respond(actorID uint, decision vo.Decision, text string) error {
	switch i.RoleOf(actorID) {
	case RoleRespondent:
	case RoleIssuer:
		return ErrNotRespondent
	default:
		return ErrNotParticipant
	}
	if i.response.Answered() {
		return ErrAlreadyResponded
	}
	if !i.status.CanTransitionTo(vo.IssueStatusSellerResponded) {
		return fmt.Errorf("%w: cannot respond while %s", ErrInvalidTransition, i.status)
	}

	response, err := Answered(text, decision, biztime.NowUTC())
	if err != nil {
		return err
	}

	i.response = response
	i.status = vo.IssueStatusSellerResponded
	i.touch()
	return nil
}

// Close ends the issue at the buyer's request. After an accepted
// response the issue settles; otherwise it is closed by the buyer,
// whether as withdrawal before any response or as a dead end after a
// decline.
func (i *Issue) Close(actorID uint) error {
	switch i.RoleOf(actorID) {
	case RoleIssuer:
	case RoleRespondent:
		return ErrNotIssuer
	default:
		return ErrNotParticipant
	}

	target := vo.IssueStatusClosedByBuyer
	if i.response.Answered() && i.response.Decision().IsAccept() {
		target = vo.IssueStatusSettled
	}
	if !i.status.CanTransitionTo(target) {
		return fmt.Errorf("%w: cannot close while %s", ErrInvalidTransition, i.status)
	}

	now := biztime.NowUTC()
	i.status = target
	i.closedAt = &now
	i.touch()
	return nil
}

// MarkEscalated records that the buyer escalated this issue into a
// dispute. Any responded issue may escalate; the buyer can dispute an
// accepted response as well as a declined one.
func (i *Issue) MarkEscalated(actorID uint) error {
	switch i.RoleOf(actorID) {
	case RoleIssuer:
	case RoleRespondent:
		return ErrNotIssuer
	default:
		return ErrNotParticipant
	}
	if !i.status.CanTransitionTo(vo.IssueStatusEscalated) {
		return fmt.Errorf("%w: cannot escalate while %s", ErrInvalidTransition, i.status)
	}

	now := biztime.NowUTC()
	i.status = vo.IssueStatusEscalated
	i.closedAt = &now
	i.touch()
	return nil
}

func (i *Issue) touch() {
	i.updatedAt = biztime.NowUTC()
}

func validateCaseText(field, text string) error {
	if len(text) < MinComplaintLength {
		return fmt.Errorf("%s must be at least %d characters", field, MinComplaintLength)
	}
	if len(text) > MaxTextLength {
		return fmt.Errorf("%s exceeds maximum length of %d characters", field, MaxTextLength)
	}
	return nil
}
