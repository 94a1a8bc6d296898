package mappers

import (
	"fmt"
	"time"

	"vendora/internal/domain/resolution"
	vo "vendora/internal/domain/resolution/valueobjects"
	"vendora/internal/infrastructure/persistence/models"
)

// IssueMapper handles the conversion between Issue domain entities and
// persistence models.
type IssueMapper interface {
	ToModel(issue *resolution.Issue) *models.IssueModel
	ToDomain(model *models.IssueModel) (*resolution.Issue, error)
}

type IssueMapperImpl struct{}

func NewIssueMapper() IssueMapper {
	return &IssueMapperImpl{}
}

func (m *IssueMapperImpl) ToModel(issue *resolution.Issue) *models.IssueModel {
	model := &models.IssueModel{
		ID:              issue.ID(),
		IssueNumber:     issue.IssueNumber(),
		AdvertisementID: issue.AdvertisementID(),
		IssuerID:        issue.IssuerID(),
		RespondentID:    issue.RespondentID(),
		Description:     issue.Description(),
		BuyerRequest:    issue.BuyerRequest(),
		Status:          issue.Status().String(),
		Version:         issue.Version(),
		CreatedAt:       issue.CreatedAt().UnixMilli(),
		UpdatedAt:       issue.UpdatedAt().UnixMilli(),
	}

	if response := issue.Response(); response.Answered() {
		decision := response.Decision().String()
		text := response.Text()
		respondedAt := response.RespondedAt().UnixMilli()
		model.SellerDecision = &decision
		model.SellerResponseText = &text
		model.RespondedAt = &respondedAt
	}

	if issue.ClosedAt() != nil {
		closed := issue.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

func (m *IssueMapperImpl) ToDomain(model *models.IssueModel) (*resolution.Issue, error) {
	status, err := vo.NewIssueStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid issue status (id=%d): %w", model.ID, err)
	}

	response, err := responseFromColumns(model.SellerDecision, model.SellerResponseText, model.RespondedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid issue response (id=%d): %w", model.ID, err)
	}

	var closedAt *time.Time
	if model.ClosedAt != nil {
		t := millisToTime(*model.ClosedAt)
		closedAt = &t
	}

	return resolution.ReconstructIssue(
		model.ID,
		model.IssueNumber,
		model.AdvertisementID, model.IssuerID, model.RespondentID,
		model.Description, model.BuyerRequest,
		status,
		response,
		closedAt,
		model.Version,
		millisToTime(model.CreatedAt), millisToTime(model.UpdatedAt),
	), nil
}

// responseFromColumns rebuilds the response variant from its three
// columns. All three set means answered; all three null means
// unanswered; anything else is corrupt data.
func responseFromColumns(decision, text *string, respondedAt *int64) (resolution.SellerResponse, error) {
	if decision == nil && text == nil && respondedAt == nil {
		return resolution.Unanswered(), nil
	}
	if decision == nil || text == nil || respondedAt == nil {
		return resolution.SellerResponse{}, fmt.Errorf("partial seller response columns")
	}

	d, err := vo.NewDecision(*decision)
	if err != nil {
		return resolution.SellerResponse{}, err
	}
	return resolution.Answered(*text, d, millisToTime(*respondedAt))
}

func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
