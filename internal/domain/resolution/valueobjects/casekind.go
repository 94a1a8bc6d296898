package valueobjects

import "fmt"

// CaseKind distinguishes the two case types that own message threads
// and evidence. A message belongs to exactly one issue or one dispute,
// never both.
type CaseKind string

const (
	CaseKindIssue   CaseKind = "issue"
	CaseKindDispute CaseKind = "dispute"
)

func (k CaseKind) String() string {
	return string(k)
}

func (k CaseKind) IsValid() bool {
	return k == CaseKindIssue || k == CaseKindDispute
}

func NewCaseKind(s string) (CaseKind, error) {
	k := CaseKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid case kind: %s", s)
	}
	return k, nil
}
