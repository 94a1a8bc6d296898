package mappers

import (
	"fmt"
	"time"

	"vendora/internal/domain/resolution"
	vo "vendora/internal/domain/resolution/valueobjects"
	"vendora/internal/infrastructure/persistence/models"
)

// DisputeMapper handles the conversion between Dispute domain entities
// and persistence models.
type DisputeMapper interface {
	ToModel(dispute *resolution.Dispute) *models.DisputeModel
	ToDomain(model *models.DisputeModel) (*resolution.Dispute, error)
}

type DisputeMapperImpl struct{}

func NewDisputeMapper() DisputeMapper {
	return &DisputeMapperImpl{}
}

func (m *DisputeMapperImpl) ToModel(dispute *resolution.Dispute) *models.DisputeModel {
	model := &models.DisputeModel{
		ID:              dispute.ID(),
		DisputeNumber:   dispute.DisputeNumber(),
		SourceIssueID:   dispute.SourceIssueID(),
		AdvertisementID: dispute.AdvertisementID(),
		IssuerID:        dispute.IssuerID(),
		RespondentID:    dispute.RespondentID(),
		Category:        dispute.Category(),
		Description:     dispute.Description(),
		DisputeDemand:   dispute.DisputeDemand(),
		Status:          dispute.Status().String(),
		Version:         dispute.Version(),
		CreatedAt:       dispute.CreatedAt().UnixMilli(),
		UpdatedAt:       dispute.UpdatedAt().UnixMilli(),
	}

	if response := dispute.Response(); response.Answered() {
		decision := response.Decision().String()
		text := response.Text()
		respondedAt := response.RespondedAt().UnixMilli()
		model.SellerDecision = &decision
		model.SellerResponseText = &text
		model.RespondedAt = &respondedAt
	}

	if dispute.NegotiationDeadline() != nil {
		deadline := dispute.NegotiationDeadline().UnixMilli()
		model.NegotiationDeadline = &deadline
	}

	if dispute.ClosedAt() != nil {
		closed := dispute.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

func (m *DisputeMapperImpl) ToDomain(model *models.DisputeModel) (*resolution.Dispute, error) {
	status, err := vo.NewDisputeStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid dispute status (id=%d): %w", model.ID, err)
	}

	response, err := responseFromColumns(model.SellerDecision, model.SellerResponseText, model.RespondedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid dispute response (id=%d): %w", model.ID, err)
	}

	var negotiationDeadline, closedAt *time.Time
	if model.NegotiationDeadline != nil {
		t := millisToTime(*model.NegotiationDeadline)
		negotiationDeadline = &t
	}
	if model.ClosedAt != nil {
		t := millisToTime(*model.ClosedAt)
		closedAt = &t
	}

	return resolution.ReconstructDispute(
		model.ID,
		model.DisputeNumber,
		model.SourceIssueID,
		model.AdvertisementID, model.IssuerID, model.RespondentID,
		model.Category, model.Description, model.DisputeDemand,
		status,
		response,
		negotiationDeadline, closedAt,
		model.Version,
		millisToTime(model.CreatedAt), millisToTime(model.UpdatedAt),
	), nil
}
