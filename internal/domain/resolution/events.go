package resolution

import (
	"strconv"
	"time"

	"vendora/internal/domain/shared/events"
)

// Event types published by the resolution engine. Handlers subscribe
// by these names.
const (
	EventTypeIssueOpened       = "resolution.issue.opened"
	EventTypeIssueResponded    = "resolution.issue.responded"
	EventTypeIssueClosed       = "resolution.issue.closed"
	EventTypeIssueEscalated    = "resolution.issue.escalated"
	EventTypeDisputeOpened     = "resolution.dispute.opened"
	EventTypeDisputeResponded  = "resolution.dispute.responded"
	EventTypeDisputeClosed     = "resolution.dispute.closed"
	EventTypeDisputeEscalated  = "resolution.dispute.escalated"
)

type IssueOpenedEvent struct {
	events.BaseEvent
	IssueID      uint
	IssueNumber  string
	IssuerID     uint
	RespondentID uint
}

func NewIssueOpenedEvent(issue *Issue, occurredAt time.Time) IssueOpenedEvent {
	return IssueOpenedEvent{
		BaseEvent:    baseEvent(issue.ID(), EventTypeIssueOpened, occurredAt),
		IssueID:      issue.ID(),
		IssueNumber:  issue.IssueNumber(),
		IssuerID:     issue.IssuerID(),
		RespondentID: issue.RespondentID(),
	}
}

type IssueRespondedEvent struct {
	events.BaseEvent
	IssueID  uint
	Decision string
}

func NewIssueRespondedEvent(issue *Issue, occurredAt time.Time) IssueRespondedEvent {
	return IssueRespondedEvent{
		BaseEvent: baseEvent(issue.ID(), EventTypeIssueResponded, occurredAt),
		IssueID:   issue.ID(),
		Decision:  issue.Response().Decision().String(),
	}
}

type IssueClosedEvent struct {
	events.BaseEvent
	IssueID     uint
	FinalStatus string
}

func NewIssueClosedEvent(issue *Issue, occurredAt time.Time) IssueClosedEvent {
	return IssueClosedEvent{
		BaseEvent:   baseEvent(issue.ID(), EventTypeIssueClosed, occurredAt),
		IssueID:     issue.ID(),
		FinalStatus: issue.Status().String(),
	}
}

type IssueEscalatedEvent struct {
	events.BaseEvent
	IssueID   uint
	DisputeID uint
}

func NewIssueEscalatedEvent(issue *Issue, disputeID uint, occurredAt time.Time) IssueEscalatedEvent {
	return IssueEscalatedEvent{
		BaseEvent: baseEvent(issue.ID(), EventTypeIssueEscalated, occurredAt),
		IssueID:   issue.ID(),
		DisputeID: disputeID,
	}
}

type DisputeOpenedEvent struct {
	events.BaseEvent
	DisputeID     uint
	DisputeNumber string
	SourceIssueID *uint
	IssuerID      uint
	RespondentID  uint
}

func NewDisputeOpenedEvent(dispute *Dispute, occurredAt time.Time) DisputeOpenedEvent {
	return DisputeOpenedEvent{
		BaseEvent:     baseEvent(dispute.ID(), EventTypeDisputeOpened, occurredAt),
		DisputeID:     dispute.ID(),
		DisputeNumber: dispute.DisputeNumber(),
		SourceIssueID: dispute.SourceIssueID(),
		IssuerID:      dispute.IssuerID(),
		RespondentID:  dispute.RespondentID(),
	}
}

type DisputeRespondedEvent struct {
	events.BaseEvent
	DisputeID uint
	Decision  string
}

func NewDisputeRespondedEvent(dispute *Dispute, occurredAt time.Time) DisputeRespondedEvent {
	return DisputeRespondedEvent{
		BaseEvent: baseEvent(dispute.ID(), EventTypeDisputeResponded, occurredAt),
		DisputeID: dispute.ID(),
		Decision:  dispute.Response().Decision().String(),
	}
}

type DisputeClosedEvent struct {
	events.BaseEvent
	DisputeID   uint
	FinalStatus string
}

func NewDisputeClosedEvent(dispute *Dispute, occurredAt time.Time) DisputeClosedEvent {
	return DisputeClosedEvent{
		BaseEvent:   baseEvent(dispute.ID(), EventTypeDisputeClosed, occurredAt),
		DisputeID:   dispute.ID(),
		FinalStatus: dispute.Status().String(),
	}
}

type DisputeEscalatedEvent struct {
	events.BaseEvent
	DisputeID uint
}

func NewDisputeEscalatedEvent(dispute *Dispute, occurredAt time.Time) DisputeEscalatedEvent {
	return DisputeEscalatedEvent{
		BaseEvent: baseEvent(dispute.ID(), EventTypeDisputeEscalated, occurredAt),
		DisputeID: dispute.ID(),
	}
}

func baseEvent(aggregateID uint, eventType string, occurredAt time.Time) events.BaseEvent {
	return events.BaseEvent{
		AggregateID: strconv.FormatUint(uint64(aggregateID), 10),
		EventType:   eventType,
		OccurredAt:  occurredAt,
		Version:     1,
	}
}
