package resolution

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"vendora/internal/application/resolution/usecases"
	"vendora/internal/shared/errors"
	"vendora/internal/shared/utils"
)

type CreateIssueRequest struct {
	AdvertisementID uint   `json:"advertisement_id" binding:"required"`
	Description     string `json:"description" binding:"required,max=5000"`
	BuyerRequest    string `json:"buyer_request" binding:"required,max=5000"`
}

func (r *CreateIssueRequest) ToCommand(userID uint) usecases.CreateIssueCommand {
	return usecases.CreateIssueCommand{
		UserID:          userID,
		AdvertisementID: r.AdvertisementID,
		Description:     r.Description,
		BuyerRequest:    r.BuyerRequest,
	}
}

type CreateDisputeRequest struct {
	AdvertisementID uint   `json:"advertisement_id" binding:"required"`
	Category        string `json:"category" binding:"required,max=100"`
	Description     string `json:"description" binding:"required,max=5000"`
	DisputeDemand   string `json:"dispute_demand" binding:"required,max=5000"`
}

func (r *CreateDisputeRequest) ToCommand(userID uint) usecases.CreateDisputeCommand {
	return usecases.CreateDisputeCommand{
		UserID:          userID,
		AdvertisementID: r.AdvertisementID,
		Category:        r.Category,
		Description:     r.Description,
		DisputeDemand:   r.DisputeDemand,
	}
}

type RespondRequest struct {
	Decision     string `json:"decision" binding:"required,oneof=accept decline"`
	ResponseText string `json:"response_text" binding:"required,max=5000"`
}

type EscalateIssueRequest struct {
	Category      string `json:"category" binding:"omitempty,max=100"`
	DisputeDemand string `json:"dispute_demand" binding:"omitempty,max=5000"`
}

type AddMessageRequest struct {
	Body string `json:"body" binding:"required,max=2000"`
}

type AddEvidenceRequest struct {
	FileName   string `json:"file_name" binding:"required,max=255"`
	FileSize   int64  `json:"file_size" binding:"required,gt=0"`
	MimeType   string `json:"mime_type" binding:"required,max=100"`
	StorageKey string `json:"storage_key" binding:"required,max=512"`
}

type ListCasesRequest struct {
	Page      int
	PageSize  int
	Status    string
	Role      string
	SortBy    string
	SortOrder string
}

func parseListCasesRequest(c *gin.Context) *ListCasesRequest {
	pagination := utils.ParsePagination(c)

	return &ListCasesRequest{
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		Status:    c.Query("status"),
		Role:      c.Query("role"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
}

func parseCaseID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid case ID")
	}
	return uint(id), nil
}
