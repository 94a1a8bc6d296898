package resolution

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vendora/internal/application/resolution/usecases"
	"vendora/internal/shared/logger"
	"vendora/internal/shared/utils"
)

// ThreadHandler serves the message thread and evidence list shared by
// issues and disputes. The :kind path segment selects which table the
// case ID points into.
type ThreadHandler struct {
	addMessageUC   usecases.AddMessageExecutor
	listMessagesUC usecases.ListMessagesExecutor
	addEvidenceUC  usecases.AddEvidenceExecutor
	listEvidenceUC usecases.ListEvidenceExecutor
	logger         logger.Interface
}

func NewThreadHandler(
	addMessageUC usecases.AddMessageExecutor,
	listMessagesUC usecases.ListMessagesExecutor,
	addEvidenceUC usecases.AddEvidenceExecutor,
	listEvidenceUC usecases.ListEvidenceExecutor,
) *ThreadHandler {
	return &ThreadHandler{
		addMessageUC:   addMessageUC,
		listMessagesUC: listMessagesUC,
		addEvidenceUC:  addEvidenceUC,
		listEvidenceUC: listEvidenceUC,
		logger:         logger.NewLogger(),
	}
}

func parseCaseKind(c *gin.Context) (string, bool) {
	kind := c.Param("kind")
	if kind != "issue" && kind != "dispute" {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid case kind")
		return "", false
	}
	return kind, true
}

// AddMessage handles POST /cases/:kind/:id/messages
func (h *ThreadHandler) AddMessage(c *gin.Context) {
	kind, ok := parseCaseKind(c)
	if !ok {
		return
	}

	caseID, err := parseCaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add message", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.AddMessageCommand{
		UserID:   userID.(uint),
		CaseKind: kind,
		CaseID:   caseID,
		Body:     req.Body,
	}

	result, err := h.addMessageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message added successfully")
}

// ListMessages handles GET /cases/:kind/:id/messages
func (h *ThreadHandler) ListMessages(c *gin.Context) {
	kind, ok := parseCaseKind(c)
	if !ok {
		return
	}

	caseID, err := parseCaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	query := usecases.ListMessagesQuery{
		UserID:   userID.(uint),
		CaseKind: kind,
		CaseID:   caseID,
	}

	result, err := h.listMessagesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Messages)
}

// AddEvidence handles POST /cases/:kind/:id/evidence
func (h *ThreadHandler) AddEvidence(c *gin.Context) {
	kind, ok := parseCaseKind(c)
	if !ok {
		return
	}

	caseID, err := parseCaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add evidence", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.AddEvidenceCommand{
		UserID:     userID.(uint),
		CaseKind:   kind,
		CaseID:     caseID,
		FileName:   req.FileName,
		FileSize:   req.FileSize,
		MimeType:   req.MimeType,
		StorageKey: req.StorageKey,
	}

	result, err := h.addEvidenceUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Evidence recorded successfully")
}

// ListEvidence handles GET /cases/:kind/:id/evidence
func (h *ThreadHandler) ListEvidence(c *gin.Context) {
	kind, ok := parseCaseKind(c)
	if !ok {
		return
	}

	caseID, err := parseCaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	query := usecases.ListEvidenceQuery{
		UserID:   userID.(uint),
		CaseKind: kind,
		CaseID:   caseID,
	}

	result, err := h.listEvidenceUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Evidence)
}
