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

type IssueHandler struct {
	checkEligibilityUC usecases.CheckEligibilityExecutor
	createIssueUC      usecases.CreateIssueExecutor
	respondToIssueUC   usecases.RespondToIssueExecutor
	closeIssueUC       usecases.CloseIssueExecutor
	escalateIssueUC    usecases.EscalateIssueExecutor
	getIssueUC         usecases.GetIssueExecutor
	listIssuesUC       usecases.ListIssuesExecutor
	statsUC            usecases.GetResolutionStatsExecutor
	logger             logger.Interface
}

func NewIssueHandler(
	checkEligibilityUC usecases.CheckEligibilityExecutor,
	createIssueUC usecases.CreateIssueExecutor,
	respondToIssueUC usecases.RespondToIssueExecutor,
	closeIssueUC usecases.CloseIssueExecutor,
	escalateIssueUC usecases.EscalateIssueExecutor,
	getIssueUC usecases.GetIssueExecutor,
	listIssuesUC usecases.ListIssuesExecutor,
	statsUC usecases.GetResolutionStatsExecutor,
) *IssueHandler {
	return &IssueHandler{
		checkEligibilityUC: checkEligibilityUC,
		createIssueUC:      createIssueUC,
		respondToIssueUC:   respondToIssueUC,
		closeIssueUC:       closeIssueUC,
		escalateIssueUC:    escalateIssueUC,
		getIssueUC:         getIssueUC,
		listIssuesUC:       listIssuesUC,
		statsUC:            statsUC,
		logger:             logger.NewLogger(),
	}
}

// CheckEligibility handles GET /issues/eligibility
func (h *IssueHandler) CheckEligibility(c *gin.Context) {
	adIDStr := c.Query("advertisement_id")
	adID, err := strconv.ParseUint(adIDStr, 10, 32)
	if err != nil || adID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid advertisement_id")
		return
	}

	userID, _ := c.Get("user_id")
	query := usecases.CheckEligibilityQuery{
		UserID:          userID.(uint),
		AdvertisementID: uint(adID),
	}

	result, err := h.checkEligibilityUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateIssue handles POST /issues
func (h *IssueHandler) CreateIssue(c *gin.Context) {
	var req CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create issue", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := req.ToCommand(userID.(uint))

	result, err := h.createIssueUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Issue opened successfully")
}

// GetIssue handles GET /issues/:id. The path segment is either a
// numeric ID or a case number like ISS-20260831-0001.
func (h *IssueHandler) GetIssue(c *gin.Context) {
	userID, _ := c.Get("user_id")
	query := usecases.GetIssueQuery{UserID: userID.(uint)}

	ref := c.Param("id")
	if id, err := strconv.ParseUint(ref, 10, 32); err == nil && id > 0 {
		query.IssueID = uint(id)
	} else if strings.HasPrefix(ref, "ISS-") {
		query.IssueNumber = ref
	} else {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid issue reference")
		return
	}

	result, err := h.getIssueUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListIssues handles GET /issues
func (h *IssueHandler) ListIssues(c *gin.Context) {
	req := parseListCasesRequest(c)

	userID, _ := c.Get("user_id")
	query := usecases.ListIssuesQuery{
		UserID:    userID.(uint),
		Status:    req.Status,
		Role:      req.Role,
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}

	result, err := h.listIssuesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Issues, result.Total, req.Page, req.PageSize)
}

// RespondToIssue handles POST /issues/:id/response
func (h *IssueHandler) RespondToIssue(c *gin.Context) {
	issueID, err := parseCaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for issue response", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.RespondToIssueCommand{
		UserID:       userID.(uint),
		IssueID:      issueID,
		Decision:     req.Decision,
		ResponseText: req.ResponseText,
	}

	result, err := h.respondToIssueUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Response recorded successfully", result)
}

// CloseIssue handles POST /issues/:id/close
func (h *IssueHandler) CloseIssue(c *gin.Context) {
	issueID, err := parseCaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.CloseIssueCommand{
		UserID:  userID.(uint),
		IssueID: issueID,
	}

	result, err := h.closeIssueUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue closed successfully", result)
}

// EscalateIssue handles POST /issues/:id/escalate
func (h *IssueHandler) EscalateIssue(c *gin.Context) {
	issueID, err := parseCaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EscalateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.EscalateIssueCommand{
		UserID:        userID.(uint),
		IssueID:       issueID,
		Category:      req.Category,
		DisputeDemand: req.DisputeDemand,
	}

	result, err := h.escalateIssueUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Issue escalated to dispute")
}

// GetStats handles GET /resolution/stats
func (h *IssueHandler) GetStats(c *gin.Context) {
	userID, _ := c.Get("user_id")
	query := usecases.GetResolutionStatsQuery{UserID: userID.(uint)}

	result, err := h.statsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
