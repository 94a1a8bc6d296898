package resolution

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"vendora/internal/application/resolution/usecases"
	"vendora/internal/shared/logger"
	"vendora/internal/shared/utils"
)

type DisputeHandler struct {
	createDisputeUC   usecases.CreateDisputeExecutor
	markUnderReviewUC usecases.MarkDisputeUnderReviewExecutor
	respondUC         usecases.RespondToDisputeExecutor
	closeDisputeUC    usecases.CloseDisputeExecutor
	escalateUC        usecases.EscalateToClaimExecutor
	getDisputeUC      usecases.GetDisputeExecutor
	listDisputesUC    usecases.ListDisputesExecutor
	logger            logger.Interface
}

func NewDisputeHandler(
	createDisputeUC usecases.CreateDisputeExecutor,
	markUnderReviewUC usecases.MarkDisputeUnderReviewExecutor,
	respondUC usecases.RespondToDisputeExecutor,
	closeDisputeUC usecases.CloseDisputeExecutor,
	escalateUC usecases.EscalateToClaimExecutor,
	getDisputeUC usecases.GetDisputeExecutor,
	listDisputesUC usecases.ListDisputesExecutor,
) *DisputeHandler {
	return &DisputeHandler{
		createDisputeUC:   createDisputeUC,
		markUnderReviewUC: markUnderReviewUC,
		respondUC:         respondUC,
		closeDisputeUC:    closeDisputeUC,
		escalateUC:        escalateUC,
		getDisputeUC:      getDisputeUC,
		listDisputesUC:    listDisputesUC,
		logger:            logger.NewLogger(),
	}
}

// CreateDispute handles POST /disputes
func (h *DisputeHandler) CreateDispute(c *gin.Context) {
	var req CreateDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create dispute", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := req.ToCommand(userID.(uint))

	result, err := h.createDisputeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Dispute opened successfully")
}

// GetDispute handles GET /disputes/:id. The path segment is either a
// numeric ID or a case number like DSP-20260831-0001.
func (h *DisputeHandler) GetDispute(c *gin.Context) {
	userID, _ := c.Get("user_id")
	query := usecases.GetDisputeQuery{UserID: userID.(uint)}

	ref := c.Param("id")
	if id, err := strconv.ParseUint(ref, 10, 32); err == nil && id > 0 {
		query.DisputeID = uint(id)
	} else if strings.HasPrefix(ref, "DSP-") {
		query.DisputeNumber = ref
	} else {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid dispute reference")
		return
	}

	result, err := h.getDisputeUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListDisputes handles GET /disputes
func (h *DisputeHandler) ListDisputes(c *gin.Context) {
	req := parseListCasesRequest(c)

	userID, _ := c.Get("user_id")
	query := usecases.ListDisputesQuery{
		UserID:    userID.(uint),
		Status:    req.Status,
		Role:      req.Role,
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}

	result, err := h.listDisputesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Disputes, result.Total, req.Page, req.PageSize)
}

// MarkUnderReview handles POST /disputes/:id/review
func (h *DisputeHandler) MarkUnderReview(c *gin.Context) {
	disputeID, err := parseCaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.MarkDisputeUnderReviewCommand{
		UserID:    userID.(uint),
		DisputeID: disputeID,
	}

	result, err := h.markUnderReviewUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dispute marked under review", result)
}

// RespondToDispute handles POST /disputes/:id/response
func (h *DisputeHandler) RespondToDispute(c *gin.Context) {
	disputeID, err := parseCaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for dispute response", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.RespondToDisputeCommand{
		UserID:       userID.(uint),
		DisputeID:    disputeID,
		Decision:     req.Decision,
		ResponseText: req.ResponseText,
	}

	result, err := h.respondUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Response recorded successfully", result)
}

// CloseDispute handles POST /disputes/:id/close
func (h *DisputeHandler) CloseDispute(c *gin.Context) {
	disputeID, err := parseCaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.CloseDisputeCommand{
		UserID:    userID.(uint),
		DisputeID: disputeID,
	}

	result, err := h.closeDisputeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dispute closed successfully", result)
}

// EscalateToClaim handles POST /disputes/:id/escalate
func (h *DisputeHandler) EscalateToClaim(c *gin.Context) {
	disputeID, err := parseCaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.EscalateToClaimCommand{
		UserID:    userID.(uint),
		DisputeID: disputeID,
	}

	result, err := h.escalateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dispute escalated to claim", result)
}
