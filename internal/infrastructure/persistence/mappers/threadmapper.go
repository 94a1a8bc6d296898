package mappers

import (
	"fmt"

	"vendora/internal/domain/resolution"
	vo "vendora/internal/domain/resolution/valueobjects"
	"vendora/internal/infrastructure/persistence/models"
)

// ThreadMapper converts messages and evidence records between domain
// and persistence shapes.
type ThreadMapper interface {
	MessageToModel(message *resolution.Message) *models.CaseMessageModel
	MessageToDomain(model *models.CaseMessageModel) (*resolution.Message, error)
	EvidenceToModel(evidence *resolution.Evidence) *models.CaseEvidenceModel
	EvidenceToDomain(model *models.CaseEvidenceModel) (*resolution.Evidence, error)
}

type ThreadMapperImpl struct{}

func NewThreadMapper() ThreadMapper {
	return &ThreadMapperImpl{}
}

func (m *ThreadMapperImpl) MessageToModel(message *resolution.Message) *models.CaseMessageModel {
	return &models.CaseMessageModel{
		ID:        message.ID(),
		CaseKind:  message.CaseKind().String(),
		CaseID:    message.CaseID(),
		AuthorID:  message.AuthorID(),
		Body:      message.Body(),
		IsSystem:  message.IsSystem(),
		CreatedAt: message.CreatedAt().UnixMilli(),
	}
}

func (m *ThreadMapperImpl) MessageToDomain(model *models.CaseMessageModel) (*resolution.Message, error) {
	kind, err := vo.NewCaseKind(model.CaseKind)
	if err != nil {
		return nil, fmt.Errorf("invalid message case kind (id=%d): %w", model.ID, err)
	}

	return resolution.ReconstructMessage(
		model.ID, kind, model.CaseID, model.AuthorID,
		model.Body, model.IsSystem, millisToTime(model.CreatedAt),
	), nil
}

func (m *ThreadMapperImpl) EvidenceToModel(evidence *resolution.Evidence) *models.CaseEvidenceModel {
	return &models.CaseEvidenceModel{
		ID:         evidence.ID(),
		CaseKind:   evidence.CaseKind().String(),
		CaseID:     evidence.CaseID(),
		UploaderID: evidence.UploaderID(),
		FileName:   evidence.FileName(),
		FileSize:   evidence.FileSize(),
		MimeType:   evidence.MimeType(),
		StorageKey: evidence.StorageKey(),
		CreatedAt:  evidence.CreatedAt().UnixMilli(),
	}
}

func (m *ThreadMapperImpl) EvidenceToDomain(model *models.CaseEvidenceModel) (*resolution.Evidence, error) {
	kind, err := vo.NewCaseKind(model.CaseKind)
	if err != nil {
		return nil, fmt.Errorf("invalid evidence case kind (id=%d): %w", model.ID, err)
	}

	return resolution.ReconstructEvidence(
		model.ID, kind, model.CaseID, model.UploaderID,
		model.FileName, model.FileSize, model.MimeType, model.StorageKey,
		millisToTime(model.CreatedAt),
	), nil
}
