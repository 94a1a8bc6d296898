package usecases

import (
	"context"

	"vendora/internal/domain/advertisement"
	"vendora/internal/domain/resolution"
	vo "vendora/internal/domain/resolution/valueobjects"
	"vendora/internal/domain/shared/events"
	"vendora/internal/shared/logger"
)

type mockIssueRepository struct {
	SaveFunc          func(ctx context.Context, issue *resolution.Issue) error
	UpdateFunc        func(ctx context.Context, issue *resolution.Issue) error
	GetByIDFunc       func(ctx context.Context, issueID uint) (*resolution.Issue, error)
	GetByNumberFunc   func(ctx context.Context, number string) (*resolution.Issue, error)
	GetUserIssuesFunc func(ctx context.Context, userID uint, filters resolution.CaseFilter) ([]*resolution.Issue, int64, error)
	HasOpenCaseFunc   func(ctx context.Context, advertisementID, userID uint) (bool, error)
	CountByStatusFunc func(ctx context.Context, userID uint) (map[string]int64, error)
}

func (m *mockIssueRepository) Save(ctx context.Context, issue *resolution.Issue) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, issue)
	}
	return nil
}

func (m *mockIssueRepository) Update(ctx context.Context, issue *resolution.Issue) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, issue)
	}
	return nil
}

func (m *mockIssueRepository) GetByID(ctx context.Context, issueID uint) (*resolution.Issue, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, issueID)
	}
	return nil, nil
}

func (m *mockIssueRepository) GetByNumber(ctx context.Context, number string) (*resolution.Issue, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockIssueRepository) GetUserIssues(ctx context.Context, userID uint, filters resolution.CaseFilter) ([]*resolution.Issue, int64, error) {
	if m.GetUserIssuesFunc != nil {
		return m.GetUserIssuesFunc(ctx, userID, filters)
	}
	return nil, 0, nil
}

func (m *mockIssueRepository) HasOpenCase(ctx context.Context, advertisementID, userID uint) (bool, error) {
	if m.HasOpenCaseFunc != nil {
		return m.HasOpenCaseFunc(ctx, advertisementID, userID)
	}
	return false, nil
}

func (m *mockIssueRepository) CountByStatus(ctx context.Context, userID uint) (map[string]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, userID)
	}
	return map[string]int64{}, nil
}

type mockDisputeRepository struct {
	SaveFunc             func(ctx context.Context, dispute *resolution.Dispute) error
	UpdateFunc           func(ctx context.Context, dispute *resolution.Dispute) error
	GetByIDFunc          func(ctx context.Context, disputeID uint) (*resolution.Dispute, error)
	GetByNumberFunc      func(ctx context.Context, number string) (*resolution.Dispute, error)
	GetBySourceIssueFunc func(ctx context.Context, issueID uint) (*resolution.Dispute, error)
	GetUserDisputesFunc  func(ctx context.Context, userID uint, filters resolution.CaseFilter) ([]*resolution.Dispute, int64, error)
	HasOpenCaseFunc      func(ctx context.Context, advertisementID, userID uint) (bool, error)
	CountByStatusFunc    func(ctx context.Context, userID uint) (map[string]int64, error)
}

func (m *mockDisputeRepository) Save(ctx context.Context, dispute *resolution.Dispute) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, dispute)
	}
	return nil
}

func (m *mockDisputeRepository) Update(ctx context.Context, dispute *resolution.Dispute) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, dispute)
	}
	return nil
}

func (m *mockDisputeRepository) GetByID(ctx context.Context, disputeID uint) (*resolution.Dispute, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, disputeID)
	}
	return nil, nil
}

func (m *mockDisputeRepository) GetByNumber(ctx context.Context, number string) (*resolution.Dispute, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockDisputeRepository) GetBySourceIssueID(ctx context.Context, issueID uint) (*resolution.Dispute, error) {
	if m.GetBySourceIssueFunc != nil {
		return m.GetBySourceIssueFunc(ctx, issueID)
	}
	return nil, nil
}

func (m *mockDisputeRepository) GetUserDisputes(ctx context.Context, userID uint, filters resolution.CaseFilter) ([]*resolution.Dispute, int64, error) {
	if m.GetUserDisputesFunc != nil {
		return m.GetUserDisputesFunc(ctx, userID, filters)
	}
	return nil, 0, nil
}

func (m *mockDisputeRepository) HasOpenCase(ctx context.Context, advertisementID, userID uint) (bool, error) {
	if m.HasOpenCaseFunc != nil {
		return m.HasOpenCaseFunc(ctx, advertisementID, userID)
	}
	return false, nil
}

func (m *mockDisputeRepository) CountByStatus(ctx context.Context, userID uint) (map[string]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, userID)
	}
	return map[string]int64{}, nil
}

type mockMessageRepository struct {
	SaveFunc      func(ctx context.Context, message *resolution.Message) error
	GetByCaseFunc func(ctx context.Context, caseKind vo.CaseKind, caseID uint) ([]*resolution.Message, error)
}

func (m *mockMessageRepository) Save(ctx context.Context, message *resolution.Message) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, message)
	}
	return nil
}

func (m *mockMessageRepository) GetByCase(ctx context.Context, caseKind vo.CaseKind, caseID uint) ([]*resolution.Message, error) {
	if m.GetByCaseFunc != nil {
		return m.GetByCaseFunc(ctx, caseKind, caseID)
	}
	return nil, nil
}

type mockEvidenceRepository struct {
	SaveFunc      func(ctx context.Context, evidence *resolution.Evidence) error
	GetByCaseFunc func(ctx context.Context, caseKind vo.CaseKind, caseID uint) ([]*resolution.Evidence, error)
}

func (m *mockEvidenceRepository) Save(ctx context.Context, evidence *resolution.Evidence) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, evidence)
	}
	return nil
}

func (m *mockEvidenceRepository) GetByCase(ctx context.Context, caseKind vo.CaseKind, caseID uint) ([]*resolution.Evidence, error) {
	if m.GetByCaseFunc != nil {
		return m.GetByCaseFunc(ctx, caseKind, caseID)
	}
	return nil, nil
}

type mockAdvertisementRepository struct {
	SaveFunc    func(ctx context.Context, ad *advertisement.Advertisement) error
	GetByIDFunc func(ctx context.Context, adID uint) (*advertisement.Advertisement, error)
}

func (m *mockAdvertisementRepository) Save(ctx context.Context, ad *advertisement.Advertisement) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, ad)
	}
	return nil
}

func (m *mockAdvertisementRepository) GetByID(ctx context.Context, adID uint) (*advertisement.Advertisement, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, adID)
	}
	return nil, nil
}

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context, kind vo.CaseKind) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context, kind vo.CaseKind) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, kind)
	}
	if kind == vo.CaseKindDispute {
		return "DSP-20260831-0001", nil
	}
	return "ISS-20260831-0001", nil
}

type mockEventPublisher struct {
	PublishFunc func(event events.DomainEvent) error
	published   []events.DomainEvent
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	m.published = append(m.published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

type mockTransactionRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                  {}
func (m *mockLogger) Info(msg string, args ...any)                   {}
func (m *mockLogger) Warn(msg string, args ...any)                   {}
func (m *mockLogger) Error(msg string, args ...any)                  {}
func (m *mockLogger) Fatal(msg string, args ...any)                  {}
func (m *mockLogger) With(args ...any) logger.Interface              { return m }
func (m *mockLogger) Named(name string) logger.Interface             { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
