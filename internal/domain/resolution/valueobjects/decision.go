package valueobjects

import "fmt"

// Decision is the respondent's answer to the issuer's claim.
type Decision string

const (
	DecisionAccept  Decision = "accept"
	DecisionDecline Decision = "decline"
)

func (d Decision) String() string {
	return string(d)
}

func (d Decision) IsValid() bool {
	return d == DecisionAccept || d == DecisionDecline
}

func (d Decision) IsAccept() bool {
	return d == DecisionAccept
}

func (d Decision) IsDecline() bool {
	return d == DecisionDecline
}

func NewDecision(s string) (Decision, error) {
	d := Decision(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid decision: %s", s)
	}
	return d, nil
}
