package handlers

import (
	"net/http"
	"strconv"

	"lead-center-backend/internal/auth"
	"lead-center-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeadHandler handles HTTP requests for lead operations
type LeadHandler struct {
	leadService service.LeadServiceInterface
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService service.LeadServiceInterface) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
	}
}

// ListLeads handles GET /leads
// @Summary List leads
// @Description Get leads with pagination, each merged with its current owner and disposition
// @Tags leads
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.LeadListResponse "Successfully retrieved leads"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	resp, err := h.leadService.ListLeads(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateLead handles POST /leads
// @Summary Create a lead manually
// @Description Create a single lead. The phone number is normalized; a missing ref_id is generated.
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body service.CreateLeadRequest true "Lead data"
// @Success 201 {object} service.LeadResponse "Successfully created lead"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Lead already exists"
// @Security BearerAuth
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req service.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.leadService.CreateLead(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lead)
}

// GetLead handles GET /leads/:ref_id
// @Summary Get a lead
// @Description Get a single lead with its derived current state
// @Tags leads
// @Produce json
// @Param ref_id path string true "Lead ref id"
// @Success 200 {object} service.LeadResponse "Successfully retrieved lead"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Security BearerAuth
// @Router /leads/{ref_id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	refID := c.Param("ref_id")

	lead, err := h.leadService.GetLead(refID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// GetHistory handles GET /leads/:ref_id/history
// @Summary Get a lead's assignment history
// @Description Get every assignment event for one lead, newest first
// @Tags leads
// @Produce json
// @Param ref_id path string true "Lead ref id"
// @Success 200 {array} service.AssignmentResponse "History, newest first"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Security BearerAuth
// @Router /leads/{ref_id}/history [get]
func (h *LeadHandler) GetHistory(c *gin.Context) {
	refID := c.Param("ref_id")

	history, err := h.leadService.GetHistory(refID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// SetCampaignBody represents the expected request body for POST /leads/campaign
type SetCampaignBody struct {
	LeadRefs []string `json:"lead_refs" binding:"required,min=1"`
	Campaign string   `json:"campaign" binding:"required"`
}

// SetCampaign handles POST /leads/campaign
// @Summary Tag leads with a campaign
// @Description Attach the named campaign to every selected lead, all-or-nothing. The campaign is created if absent.
// @Tags leads
// @Accept json
// @Produce json
// @Param body body SetCampaignBody true "Leads and campaign name"
// @Success 200 {object} map[string]interface{} "Number of leads tagged"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "A selected lead does not exist"
// @Security BearerAuth
// @Router /leads/campaign [post]
func (h *LeadHandler) SetCampaign(c *gin.Context) {
	var body SetCampaignBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count, err := h.leadService.SetCampaignTag(body.LeadRefs, body.Campaign)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// ListCampaigns handles GET /campaigns
// @Summary List campaigns
// @Description Get every campaign, newest first
// @Tags leads
// @Produce json
// @Success 200 {array} service.CampaignResponse "Campaigns"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaigns [get]
func (h *LeadHandler) ListCampaigns(c *gin.Context) {
	campaigns, err := h.leadService.ListCampaigns()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

// SetCustomFieldBody represents the expected request body for PUT /leads/:ref_id/custom-field
type SetCustomFieldBody struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// SetCustomField handles PUT /leads/:ref_id/custom-field
// @Summary Fill a custom field
// @Description One-time fill of a named custom field, stamped with the acting user and current time. Already-populated fields are read-only.
// @Tags leads
// @Accept json
// @Produce json
// @Param ref_id path string true "Lead ref id"
// @Param body body SetCustomFieldBody true "Field name and value"
// @Success 200 {object} service.LeadResponse "Updated lead"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 409 {object} ErrorResponse "Field already has a value"
// @Security BearerAuth
// @Router /leads/{ref_id}/custom-field [put]
func (h *LeadHandler) SetCustomField(c *gin.Context) {
	refID := c.Param("ref_id")

	var body SetCustomFieldBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	callerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity in token"})
		return
	}

	lead, err := h.leadService.SetCustomField(refID, body.Field, body.Value, callerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}
