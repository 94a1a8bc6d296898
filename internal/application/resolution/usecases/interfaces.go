package usecases

import (
	"context"

	"vendora/internal/application/resolution/dto"
	"vendora/internal/domain/shared/events"
)

// EventPublisher publishes domain events after a state change commits.
// Publishing is best effort; a full buffer never fails the request.
type EventPublisher interface {
	Publish(event events.DomainEvent) error
}

// TransactionRunner runs a function within a database transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CheckEligibilityExecutor interface {
	Execute(ctx context.Context, query CheckEligibilityQuery) (*CheckEligibilityResult, error)
}

type CreateIssueExecutor interface {
	Execute(ctx context.Context, cmd CreateIssueCommand) (*CreateIssueResult, error)
}

type RespondToIssueExecutor interface {
	Execute(ctx context.Context, cmd RespondToIssueCommand) (*RespondToIssueResult, error)
}

type CloseIssueExecutor interface {
	Execute(ctx context.Context, cmd CloseIssueCommand) (*CloseIssueResult, error)
}

type EscalateIssueExecutor interface {
	Execute(ctx context.Context, cmd EscalateIssueCommand) (*EscalateIssueResult, error)
}

type GetIssueExecutor interface {
	Execute(ctx context.Context, query GetIssueQuery) (*dto.IssueDTO, error)
}

type ListIssuesExecutor interface {
	Execute(ctx context.Context, query ListIssuesQuery) (*ListIssuesResult, error)
}

type CreateDisputeExecutor interface {
	Execute(ctx context.Context, cmd CreateDisputeCommand) (*CreateDisputeResult, error)
}

type MarkDisputeUnderReviewExecutor interface {
	Execute(ctx context.Context, cmd MarkDisputeUnderReviewCommand) (*MarkDisputeUnderReviewResult, error)
}

type RespondToDisputeExecutor interface {
	Execute(ctx context.Context, cmd RespondToDisputeCommand) (*RespondToDisputeResult, error)
}

type CloseDisputeExecutor interface {
	Execute(ctx context.Context, cmd CloseDisputeCommand) (*CloseDisputeResult, error)
}

type EscalateToClaimExecutor interface {
	Execute(ctx context.Context, cmd EscalateToClaimCommand) (*EscalateToClaimResult, error)
}

type GetDisputeExecutor interface {
	Execute(ctx context.Context, query GetDisputeQuery) (*dto.DisputeDTO, error)
}

type ListDisputesExecutor interface {
	Execute(ctx context.Context, query ListDisputesQuery) (*ListDisputesResult, error)
}

type AddMessageExecutor interface {
	Execute(ctx context.Context, cmd AddMessageCommand) (*AddMessageResult, error)
}

type ListMessagesExecutor interface {
	Execute(ctx context.Context, query ListMessagesQuery) (*ListMessagesResult, error)
}

type AddEvidenceExecutor interface {
	Execute(ctx context.Context, cmd AddEvidenceCommand) (*AddEvidenceResult, error)
}

type ListEvidenceExecutor interface {
	Execute(ctx context.Context, query ListEvidenceQuery) (*ListEvidenceResult, error)
}

type GetResolutionStatsExecutor interface {
	Execute(ctx context.Context, query GetResolutionStatsQuery) (*GetResolutionStatsResult, error)
}
