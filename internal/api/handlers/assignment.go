package handlers

import (
	"net/http"

	"lead-center-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentHandler handles HTTP requests for the assignment log
type AssignmentHandler struct {
	assignmentService service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

// ListAssignments handles GET /assignments
// @Summary List assignment events
// @Description Get the full append-only assignment log
// @Tags assignments
// @Produce json
// @Success 200 {array} service.AssignmentResponse "Assignment events"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assignments [get]
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	events, err := h.assignmentService.ListAssignments()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// BulkAssignBody represents the expected request body for POST /assignments/bulk
type BulkAssignBody struct {
	LeadRefs []string  `json:"lead_refs" binding:"required,min=1"`
	CallerID uuid.UUID `json:"caller_id" binding:"required"`
}

// BulkAssign handles POST /assignments/bulk
// @Summary Assign leads to a caller
// @Description Append one assignment event per selected lead, all-or-nothing. The caller must be an active caller and every lead must exist.
// @Tags assignments
// @Accept json
// @Produce json
// @Param body body BulkAssignBody true "Lead refs and target caller"
// @Success 201 {array} service.AssignmentResponse "Created assignment events"
// @Failure 400 {object} ErrorResponse "Invalid request or ineligible caller"
// @Failure 404 {object} ErrorResponse "A selected lead or the caller does not exist"
// @Security BearerAuth
// @Router /assignments/bulk [post]
func (h *AssignmentHandler) BulkAssign(c *gin.Context) {
	var body BulkAssignBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	events, err := h.assignmentService.BulkAssign(body.LeadRefs, body.CallerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, events)
}

// CreateDisposition handles POST /assignments/disposition
// @Summary Record a disposition
// @Description Append one disposition event for a lead. The log is never updated in place.
// @Tags assignments
// @Accept json
// @Produce json
// @Param disposition body service.CreateDispositionRequest true "Disposition data"
// @Success 201 {object} service.AssignmentResponse "Created event"
// @Failure 400 {object} ErrorResponse "Invalid disposition or sub-disposition"
// @Failure 404 {object} ErrorResponse "Lead or caller not found"
// @Security BearerAuth
// @Router /assignments/disposition [post]
func (h *AssignmentHandler) CreateDisposition(c *gin.Context) {
	var req service.CreateDispositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.assignmentService.CreateDisposition(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// SuggestBody represents the expected request body for POST /assignments/suggest
type SuggestBody struct {
	LeadRef string `json:"lead_ref" binding:"required"`
	Remarks string `json:"remarks"`
}

// SuggestSubDisposition handles POST /assignments/suggest
// @Summary Suggest a sub-disposition
// @Description Ask the external suggester for a sub-disposition based on remarks and the lead's history. Advisory only.
// @Tags assignments
// @Accept json
// @Produce json
// @Param body body SuggestBody true "Lead ref and remarks"
// @Success 200 {object} service.SuggestionResult "Suggested label"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 502 {object} ErrorResponse "Suggester unavailable"
// @Security BearerAuth
// @Router /assignments/suggest [post]
func (h *AssignmentHandler) SuggestSubDisposition(c *gin.Context) {
	var body SuggestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.assignmentService.SuggestSubDisposition(c.Request.Context(), body.LeadRef, body.Remarks)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
