package resolution

import (
	"fmt"
	"time"
)

// Countdown is the remaining time against a deadline. It is display
// data only: the engine never auto-transitions a case when a deadline
// passes. Expiry is surfaced to the issuer as a prompt to close or
// escalate.
type Countdown struct {
	Expired   bool
	Remaining time.Duration
}

// TimeRemaining computes the countdown from now to deadline. Pure, no
// side effects.
func TimeRemaining(now, deadline time.Time) Countdown {
	diff := deadline.Sub(now)
	if diff < 0 {
		return Countdown{Expired: true}
	}
	return Countdown{Remaining: diff}
}

// String renders the countdown the way the client displays it.
func (c Countdown) String() string {
	if c.Expired {
		return "expired"
	}

	days := int(c.Remaining.Hours()) / 24
	if days > 0 {
		if days == 1 {
			return "1 day remaining"
		}
		return fmt.Sprintf("%d days remaining", days)
	}

	hours := int(c.Remaining.Hours())
	switch hours {
	case 0:
		return "less than 1 hour remaining"
	case 1:
		return "1 hour remaining"
	}
	return fmt.Sprintf("%d hours remaining", hours)
}
