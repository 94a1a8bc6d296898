package dto

import (
	"time"

	"vendora/internal/domain/resolution"
)

// ResponseDTO is the seller's answer as shown to participants. Nil on
// a case that has not been answered yet.
type ResponseDTO struct {
	Decision    string    `json:"decision"`
	Text        string    `json:"text"`
	RespondedAt time.Time `json:"responded_at"`
}

type IssueDTO struct {
	ID               uint         `json:"id"`
	IssueNumber      string       `json:"issue_number"`
	AdvertisementID  uint         `json:"advertisement_id"`
	IssuerID         uint         `json:"issuer_id"`
	RespondentID     uint         `json:"respondent_id"`
	ViewerRole       string       `json:"viewer_role"`
	Description      string       `json:"description"`
	BuyerRequest     string       `json:"buyer_request"`
	Status           string       `json:"status"`
	SellerResponse   *ResponseDTO `json:"seller_response"`
	ResponseDeadline *time.Time   `json:"response_deadline"`
	TimeRemaining    *string      `json:"time_remaining"`
	ClosedAt         *time.Time   `json:"closed_at"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

type DisputeDTO struct {
	ID                  uint         `json:"id"`
	DisputeNumber       string       `json:"dispute_number"`
	SourceIssueID       *uint        `json:"source_issue_id"`
	AdvertisementID     uint         `json:"advertisement_id"`
	IssuerID            uint         `json:"issuer_id"`
	RespondentID        uint         `json:"respondent_id"`
	ViewerRole          string       `json:"viewer_role"`
	Category            string       `json:"category"`
	Description         string       `json:"description"`
	DisputeDemand       string       `json:"dispute_demand"`
	Status              string       `json:"status"`
	SellerResponse      *ResponseDTO `json:"seller_response"`
	NegotiationDeadline *time.Time   `json:"negotiation_deadline"`
	TimeRemaining       *string      `json:"time_remaining"`
	ClosedAt            *time.Time   `json:"closed_at"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

type IssueListItemDTO struct {
	ID              uint   `json:"id"`
	IssueNumber     string `json:"issue_number"`
	AdvertisementID uint   `json:"advertisement_id"`
	ViewerRole      string `json:"viewer_role"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type DisputeListItemDTO struct {
	ID              uint   `json:"id"`
	DisputeNumber   string `json:"dispute_number"`
	AdvertisementID uint   `json:"advertisement_id"`
	SourceIssueID   *uint  `json:"source_issue_id"`
	ViewerRole      string `json:"viewer_role"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type MessageDTO struct {
	ID        uint      `json:"id"`
	CaseKind  string    `json:"case_kind"`
	CaseID    uint      `json:"case_id"`
	AuthorID  *uint     `json:"author_id"`
	Body      string    `json:"body"`
	IsSystem  bool      `json:"is_system"`
	CreatedAt time.Time `json:"created_at"`
}

type EvidenceDTO struct {
	ID         uint      `json:"id"`
	CaseKind   string    `json:"case_kind"`
	CaseID     uint      `json:"case_id"`
	UploaderID uint      `json:"uploader_id"`
	FileName   string    `json:"file_name"`
	FileSize   int64     `json:"file_size"`
	MimeType   string    `json:"mime_type"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToIssueDTO assembles the issue view for a given viewer. The response
// deadline and countdown are shown only while a response is still
// awaited; once answered or closed there is nothing left to count
// down.
func ToIssueDTO(issue *resolution.Issue, viewerID uint, responseWindow time.Duration, now time.Time) *IssueDTO {
	if issue == nil {
		return nil
	}

	out := &IssueDTO{
		ID:              issue.ID(),
		IssueNumber:     issue.IssueNumber(),
		AdvertisementID: issue.AdvertisementID(),
		IssuerID:        issue.IssuerID(),
		RespondentID:    issue.RespondentID(),
		ViewerRole:      issue.RoleOf(viewerID).String(),
		Description:     issue.Description(),
		BuyerRequest:    issue.BuyerRequest(),
		Status:          issue.Status().String(),
		SellerResponse:  toResponseDTO(issue.Response()),
		ClosedAt:        issue.ClosedAt(),
		CreatedAt:       issue.CreatedAt(),
		UpdatedAt:       issue.UpdatedAt(),
	}

	if issue.Status().IsOpen() {
		deadline := issue.ResponseDeadline(responseWindow)
		remaining := resolution.TimeRemaining(now, deadline).String()
		out.ResponseDeadline = &deadline
		out.TimeRemaining = &remaining
	}

	return out
}

// ToDisputeDTO assembles the dispute view for a given viewer. The
// negotiation countdown runs only while the dispute is in negotiation.
func ToDisputeDTO(dispute *resolution.Dispute, viewerID uint, now time.Time) *DisputeDTO {
	if dispute == nil {
		return nil
	}

	out := &DisputeDTO{
		ID:                  dispute.ID(),
		DisputeNumber:       dispute.DisputeNumber(),
		SourceIssueID:       dispute.SourceIssueID(),
		AdvertisementID:     dispute.AdvertisementID(),
		IssuerID:            dispute.IssuerID(),
		RespondentID:        dispute.RespondentID(),
		ViewerRole:          dispute.RoleOf(viewerID).String(),
		Category:            dispute.Category(),
		Description:         dispute.Description(),
		DisputeDemand:       dispute.DisputeDemand(),
		Status:              dispute.Status().String(),
		SellerResponse:      toResponseDTO(dispute.Response()),
		NegotiationDeadline: dispute.NegotiationDeadline(),
		ClosedAt:            dispute.ClosedAt(),
		CreatedAt:           dispute.CreatedAt(),
		UpdatedAt:           dispute.UpdatedAt(),
	}

	if dispute.Status().IsNegotiation() && dispute.NegotiationDeadline() != nil {
		remaining := resolution.TimeRemaining(now, *dispute.NegotiationDeadline()).String()
		out.TimeRemaining = &remaining
	}

	return out
}

func ToIssueListItemDTO(issue *resolution.Issue, viewerID uint) IssueListItemDTO {
	return IssueListItemDTO{
		ID:              issue.ID(),
		IssueNumber:     issue.IssueNumber(),
		AdvertisementID: issue.AdvertisementID(),
		ViewerRole:      issue.RoleOf(viewerID).String(),
		Status:          issue.Status().String(),
		CreatedAt:       issue.CreatedAt().Format(time.RFC3339),
		UpdatedAt:       issue.UpdatedAt().Format(time.RFC3339),
	}
}

func ToDisputeListItemDTO(dispute *resolution.Dispute, viewerID uint) DisputeListItemDTO {
	return DisputeListItemDTO{
		ID:              dispute.ID(),
		DisputeNumber:   dispute.DisputeNumber(),
		AdvertisementID: dispute.AdvertisementID(),
		SourceIssueID:   dispute.SourceIssueID(),
		ViewerRole:      dispute.RoleOf(viewerID).String(),
		Status:          dispute.Status().String(),
		CreatedAt:       dispute.CreatedAt().Format(time.RFC3339),
		UpdatedAt:       dispute.UpdatedAt().Format(time.RFC3339),
	}
}

func ToMessageDTO(m *resolution.Message) MessageDTO {
	return MessageDTO{
		ID:        m.ID(),
		CaseKind:  m.CaseKind().String(),
		CaseID:    m.CaseID(),
		AuthorID:  m.AuthorID(),
		Body:      m.Body(),
		IsSystem:  m.IsSystem(),
		CreatedAt: m.CreatedAt(),
	}
}

func ToEvidenceDTO(e *resolution.Evidence) EvidenceDTO {
	return EvidenceDTO{
		ID:         e.ID(),
		CaseKind:   e.CaseKind().String(),
		CaseID:     e.CaseID(),
		UploaderID: e.UploaderID(),
		FileName:   e.FileName(),
		FileSize:   e.FileSize(),
		MimeType:   e.MimeType(),
		CreatedAt:  e.CreatedAt(),
	}
}

func toResponseDTO(r resolution.SellerResponse) *ResponseDTO {
	if !r.Answered() {
		return nil
	}
	return &ResponseDTO{
		Decision:    r.Decision().String(),
		Text:        r.Text(),
		RespondedAt: r.RespondedAt(),
	}
}
