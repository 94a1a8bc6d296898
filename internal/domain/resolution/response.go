package resolution

import (
	"fmt"
	"time"

	vo "vendora/internal/domain/resolution/valueobjects"
)

// SellerResponse is the respondent's one-shot answer to a case. It is a
// tagged variant - either unanswered, or answered with text, decision
// and timestamp all present. A partial response (text without decision
// or vice versa) cannot be constructed.
type SellerResponse struct {
	answered    bool
	text        string
	decision    vo.Decision
	respondedAt time.Time
}

// Unanswered returns the zero response.
func Unanswered() SellerResponse {
	return SellerResponse{}
}

// Answered builds a complete response. Both text and decision are
// required; respondedAt must be non-zero.
func Answered(text string, decision vo.Decision, respondedAt time.Time) (SellerResponse, error) {
	if len(text) == 0 {
		return SellerResponse{}, fmt.Errorf("response text is required")
	}
	if len(text) > 5000 {
		return SellerResponse{}, fmt.Errorf("response text exceeds maximum length of 5000 characters")
	}
	if !decision.IsValid() {
		return SellerResponse{}, fmt.Errorf("invalid decision: %s", decision)
	}
	if respondedAt.IsZero() {
		return SellerResponse{}, fmt.Errorf("response timestamp is required")
	}

	return SellerResponse{
		answered:    true,
		text:        text,
		decision:    decision,
		respondedAt: respondedAt,
	}, nil
}

func (r SellerResponse) Answered() bool {
	return r.answered
}

func (r SellerResponse) Text() string {
	return r.text
}

func (r SellerResponse) Decision() vo.Decision {
	return r.decision
}

func (r SellerResponse) RespondedAt() time.Time {
	return r.respondedAt
}
