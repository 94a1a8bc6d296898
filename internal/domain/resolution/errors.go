package resolution

import "errors"

// Sentinel errors returned by aggregate methods. The application layer
// maps them onto transport error types; the domain only states which
// rule was broken.
var (
	// ErrNotIssuer is returned when an issuer-only action is attempted
	// by anyone else.
	ErrNotIssuer = errors.New("acting user is not the issuer of this case")

	// ErrNotRespondent is returned when a respondent-only action is
	// attempted by anyone else.
	ErrNotRespondent = errors.New("acting user is not the respondent of this case")

	// ErrNotParticipant is returned when the acting user is neither
	// party to the case.
	ErrNotParticipant = errors.New("acting user is not a participant in this case")

	// ErrInvalidTransition is returned when the requested action is not
	// allowed from the case's current status.
	ErrInvalidTransition = errors.New("action not allowed in current status")

	// ErrAlreadyResponded is returned when the respondent attempts a
	// second response. A response is one-shot.
	ErrAlreadyResponded = errors.New("case has already been responded to")

	// ErrCaseClosed is returned when a message or evidence is added to
	// a case in a terminal status.
	ErrCaseClosed = errors.New("case is closed")

	// ErrEscalationRequiresDecline is returned when a dispute is
	// escalated to a claim without a declined response on record.
	ErrEscalationRequiresDecline = errors.New("escalation requires a declined response")
)
