package resolution

// Role is a participant's relationship to a case. It is derived, never
// stored: the acting user's ID is compared against the case's issuer
// and respondent IDs. Anyone matching neither is unauthorized.
type Role string

const (
	RoleIssuer       Role = "issuer"
	RoleRespondent   Role = "respondent"
	RoleUnauthorized Role = "unauthorized"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsParticipant() bool {
	return r == RoleIssuer || r == RoleRespondent
}

// ComputeRole derives the acting user's role from the case's two party
// IDs. Shared by issues and disputes so the comparison logic lives in
// exactly one place.
func ComputeRole(actorID, issuerID, respondentID uint) Role {
	switch actorID {
	case issuerID:
		return RoleIssuer
	case respondentID:
		return RoleRespondent
	default:
		return RoleUnauthorized
	}
}
