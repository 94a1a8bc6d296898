package resolution

import (
	"fmt"
	"time"

	vo "vendora/internal/domain/resolution/valueobjects"
	"vendora/internal/shared/biztime"
)

// MaxMessageLength bounds a single thread message.
const MaxMessageLength = 2000

// Message is one entry in a case's conversation thread. System
// messages are written by the engine itself when a case changes state
// and carry no author.
type Message struct {
	id        uint
	caseKind  vo.CaseKind
	caseID    uint
	authorID  *uint
	body      string
	isSystem  bool
	createdAt time.Time
}

// NewMessage creates a participant-authored message.
func NewMessage(caseKind vo.CaseKind, caseID, authorID uint, body string) (*Message, error) {
	if !caseKind.IsValid() {
		return nil, fmt.Errorf("invalid case kind: %s", caseKind)
	}
	if caseID == 0 {
		return nil, fmt.Errorf("case ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if err := validateMessageBody(body); err != nil {
		return nil, err
	}

	return &Message{
		caseKind:  caseKind,
		caseID:    caseID,
		authorID:  &authorID,
		body:      body,
		createdAt: biztime.NowUTC(),
	}, nil
}

// NewSystemMessage creates an engine-authored thread entry, used to
// record state changes inline with the conversation.
func NewSystemMessage(caseKind vo.CaseKind, caseID uint, body string) (*Message, error) {
	if !caseKind.IsValid() {
		return nil, fmt.Errorf("invalid case kind: %s", caseKind)
	}
	if caseID == 0 {
		return nil, fmt.Errorf("case ID is required")
	}
	if err := validateMessageBody(body); err != nil {
		return nil, err
	}

	return &Message{
		caseKind:  caseKind,
		caseID:    caseID,
		body:      body,
		isSystem:  true,
		createdAt: biztime.NowUTC(),
	}, nil
}

// ReconstructMessage rebuilds a message from persistence without
// validation.
func ReconstructMessage(id uint, caseKind vo.CaseKind, caseID uint, authorID *uint, body string, isSystem bool, createdAt time.Time) *Message {
	return &Message{
		id:        id,
		caseKind:  caseKind,
		caseID:    caseID,
		authorID:  authorID,
		body:      body,
		isSystem:  isSystem,
		createdAt: createdAt,
	}
}

func (m *Message) ID() uint              { return m.id }
func (m *Message) CaseKind() vo.CaseKind { return m.caseKind }
func (m *Message) CaseID() uint          { return m.caseID }
func (m *Message) AuthorID() *uint       { return m.authorID }
func (m *Message) Body() string          { return m.body }
func (m *Message) IsSystem() bool        { return m.isSystem }
func (m *Message) CreatedAt() time.Time  { return m.createdAt }

// SetID assigns the database-generated ID after the first save.
func (m *Message) SetID(id uint) {
	m.id = id
}

func validateMessageBody(body string) error {
	if len(body) == 0 {
		return fmt.Errorf("message body is required")
	}
	if len(body) > MaxMessageLength {
		return fmt.Errorf("message body exceeds maximum length of %d characters", MaxMessageLength)
	}
	return nil
}
