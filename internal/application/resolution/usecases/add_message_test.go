package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendora/internal/domain/resolution"
	vo "vendora/internal/domain/resolution/valueobjects"
	"vendora/internal/shared/errors"
)

func TestAddMessageUseCase_Success(t *testing.T) {
	issue := makeIssue(t, vo.IssueStatusOpen, resolution.Unanswered())
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*resolution.Issue, error) { return issue, nil },
	}

	var saved *resolution.Message
	messageRepo := &mockMessageRepository{
		SaveFunc: func(ctx context.Context, m *resolution.Message) error {
			m.SetID(5)
			saved = m
			return nil
		},
	}

	uc := NewAddMessageUseCase(issueRepo, &mockDisputeRepository{}, messageRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), AddMessageCommand{
		UserID:   testBuyerID,
		CaseKind: "issue",
		CaseID:   testIssueID,
		Body:     "When can I expect the refund?",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(5), result.MessageID)
	require.NotNil(t, saved)
	assert.False(t, saved.IsSystem())
	require.NotNil(t, saved.AuthorID())
	assert.Equal(t, testBuyerID, *saved.AuthorID())
}

func TestAddMessageUseCase_DisputeThread(t *testing.T) {
	dispute := makeDispute(t, vo.DisputeStatusNegotiation, declinedResponse(t))
	disputeRepo := &mockDisputeRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*resolution.Dispute, error) { return dispute, nil },
	}
	messageRepo := &mockMessageRepository{}

	uc := NewAddMessageUseCase(&mockIssueRepository{}, disputeRepo, messageRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), AddMessageCommand{
		UserID:   testSellerID,
		CaseKind: "dispute",
		CaseID:   testDisputeID,
		Body:     "Would you accept a partial refund?",
	})
	require.NoError(t, err)
}

func TestAddMessageUseCase_SettledIssueStaysWritable(t *testing.T) {
	issue := makeIssue(t, vo.IssueStatusSettled, acceptedResponse(t))
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*resolution.Issue, error) { return issue, nil },
	}
	messageRepo := &mockMessageRepository{}

	// Settlement ends the case but not the conversation; parties can
	// still coordinate the agreed remedy.
	uc := NewAddMessageUseCase(issueRepo, &mockDisputeRepository{}, messageRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), AddMessageCommand{
		UserID:   testSellerID,
		CaseKind: "issue",
		CaseID:   testIssueID,
		Body:     "The refund was sent this morning",
	})
	require.NoError(t, err)
}

func TestAddMessageUseCase_Rejections(t *testing.T) {
	t.Run("stranger forbidden", func(t *testing.T) {
		issue := makeIssue(t, vo.IssueStatusOpen, resolution.Unanswered())
		issueRepo := &mockIssueRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*resolution.Issue, error) { return issue, nil },
		}
		uc := NewAddMessageUseCase(issueRepo, &mockDisputeRepository{}, &mockMessageRepository{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), AddMessageCommand{
			UserID: testOtherID, CaseKind: "issue", CaseID: testIssueID, Body: "let me join in",
		})
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("withdrawn case is frozen", func(t *testing.T) {
		issue := makeIssue(t, vo.IssueStatusClosedByBuyer, resolution.Unanswered())
		issueRepo := &mockIssueRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*resolution.Issue, error) { return issue, nil },
		}
		uc := NewAddMessageUseCase(issueRepo, &mockDisputeRepository{}, &mockMessageRepository{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), AddMessageCommand{
			UserID: testBuyerID, CaseKind: "issue", CaseID: testIssueID, Body: "one more thing",
		})
		assert.True(t, errors.IsInvalidStateError(err))
	})

	t.Run("invalid case kind", func(t *testing.T) {
		uc := NewAddMessageUseCase(&mockIssueRepository{}, &mockDisputeRepository{}, &mockMessageRepository{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), AddMessageCommand{
			UserID: testBuyerID, CaseKind: "claim", CaseID: testIssueID, Body: "hello there",
		})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestListMessagesUseCase(t *testing.T) {
	issue := makeIssue(t, vo.IssueStatusSettled, acceptedResponse(t))
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*resolution.Issue, error) { return issue, nil },
	}

	msg, err := resolution.NewMessage(vo.CaseKindIssue, testIssueID, testBuyerID, "Thanks for sorting this out")
	require.NoError(t, err)
	messageRepo := &mockMessageRepository{
		GetByCaseFunc: func(ctx context.Context, kind vo.CaseKind, caseID uint) ([]*resolution.Message, error) {
			return []*resolution.Message{msg}, nil
		},
	}

	uc := NewListMessagesUseCase(issueRepo, &mockDisputeRepository{}, messageRepo, &mockLogger{})

	// Reading stays allowed on closed cases.
	result, err := uc.Execute(context.Background(), ListMessagesQuery{UserID: testBuyerID, CaseKind: "issue", CaseID: testIssueID})
	require.NoError(t, err)
	require.Len(t, result.Messages, 1)
	assert.Equal(t, "Thanks for sorting this out", result.Messages[0].Body)

	_, err = uc.Execute(context.Background(), ListMessagesQuery{UserID: testOtherID, CaseKind: "issue", CaseID: testIssueID})
	assert.True(t, errors.IsForbiddenError(err))
}

func TestAddEvidenceUseCase(t *testing.T) {
	issue := makeIssue(t, vo.IssueStatusOpen, resolution.Unanswered())
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*resolution.Issue, error) { return issue, nil },
	}

	var saved *resolution.Evidence
	evidenceRepo := &mockEvidenceRepository{
		SaveFunc: func(ctx context.Context, e *resolution.Evidence) error {
			e.SetID(9)
			saved = e
			return nil
		},
	}

	uc := NewAddEvidenceUseCase(issueRepo, &mockDisputeRepository{}, evidenceRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), AddEvidenceCommand{
		UserID:     testBuyerID,
		CaseKind:   "issue",
		CaseID:     testIssueID,
		FileName:   "broken-chair.jpg",
		FileSize:   2048,
		MimeType:   "image/jpeg",
		StorageKey: "cases/issue/1/broken-chair.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(9), result.EvidenceID)
	require.NotNil(t, saved)
	assert.Equal(t, testBuyerID, saved.UploaderID())
}

func TestListEvidenceUseCase_StrangerForbidden(t *testing.T) {
	issue := makeIssue(t, vo.IssueStatusOpen, resolution.Unanswered())
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*resolution.Issue, error) { return issue, nil },
	}

	uc := NewListEvidenceUseCase(issueRepo, &mockDisputeRepository{}, &mockEvidenceRepository{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), ListEvidenceQuery{UserID: testOtherID, CaseKind: "issue", CaseID: testIssueID})
	assert.True(t, errors.IsForbiddenError(err))
}
