package handlers

import (
	"net/http"
	"strconv"

	"lead-center-backend/internal/auth"
	"lead-center-backend/internal/database/models"
	"lead-center-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DashboardHandler serves the derived reporting views. Every response here is
// computed from the assignment log on request; nothing is stored.
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// scopedCallerID returns the caller to scope a view to: admins see the global
// view unless they pass ?caller_id, callers always see their own.
func scopedCallerID(c *gin.Context) (*uuid.UUID, bool) {
	role, _ := c.Get("role")
	if role == string(models.UserRoleAdmin) {
		if raw := c.Query("caller_id"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, false
			}
			return &id, true
		}
		return nil, true
	}

	id, ok := auth.GetUserID(c)
	if !ok {
		return nil, false
	}
	return &id, true
}

// Summary handles GET /dashboard/summary
// @Summary Disposition histogram
// @Description Get lead counts per current disposition. Admins get the global view, callers their own.
// @Tags dashboard
// @Produce json
// @Param caller_id query string false "Scope to one caller (admin only)"
// @Success 200 {object} service.DashboardSummaryResponse "Histogram"
// @Failure 400 {object} ErrorResponse "Invalid caller id"
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	callerID, ok := scopedCallerID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid caller_id"})
		return
	}

	summary, err := h.dashboardService.Summary(callerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// CallerStats handles GET /dashboard/callers
// @Summary Per-caller handled counts
// @Description Get the number of currently-owned leads per caller, busiest first
// @Tags dashboard
// @Produce json
// @Success 200 {array} service.CallerStatsResponse "Handled counts"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/callers [get]
func (h *DashboardHandler) CallerStats(c *gin.Context) {
	stats, err := h.dashboardService.CallerStats()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// RecentActivity handles GET /dashboard/activity
// @Summary Recent activity feed
// @Description Get the most recent disposition events, newest first
// @Tags dashboard
// @Produce json
// @Param limit query int false "Feed size" default(5)
// @Param caller_id query string false "Scope to one caller (admin only)"
// @Success 200 {array} service.ActivityResponse "Recent events"
// @Failure 400 {object} ErrorResponse "Invalid caller id"
// @Security BearerAuth
// @Router /dashboard/activity [get]
func (h *DashboardHandler) RecentActivity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultActivityFeedSize)))

	callerID, ok := scopedCallerID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid caller_id"})
		return
	}

	feed, err := h.dashboardService.RecentActivity(limit, callerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}

// CallerQueue handles GET /dashboard/queue
// @Summary Caller worklist
// @Description Get the ordered queue of leads currently owned by a caller
// @Tags dashboard
// @Produce json
// @Param caller_id query string false "Caller to inspect (admin only)"
// @Success 200 {object} service.CallerQueueResponse "Ordered queue"
// @Failure 400 {object} ErrorResponse "Invalid or missing caller id"
// @Security BearerAuth
// @Router /dashboard/queue [get]
func (h *DashboardHandler) CallerQueue(c *gin.Context) {
	callerID, ok := scopedCallerID(c)
	if !ok || callerID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "caller_id is required"})
		return
	}

	queue, err := h.dashboardService.CallerQueue(*callerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, queue)
}

// QueueNeighbors handles GET /dashboard/queue/:ref_id/neighbors
// @Summary Queue navigation
// @Description Get the previous and next lead around one lead inside a caller's queue
// @Tags dashboard
// @Produce json
// @Param ref_id path string true "Lead ref id"
// @Param caller_id query string false "Caller to inspect (admin only)"
// @Success 200 {object} service.QueueNeighborsResponse "Neighbors"
// @Failure 400 {object} ErrorResponse "Invalid or missing caller id"
// @Security BearerAuth
// @Router /dashboard/queue/{ref_id}/neighbors [get]
func (h *DashboardHandler) QueueNeighbors(c *gin.Context) {
	callerID, ok := scopedCallerID(c)
	if !ok || callerID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "caller_id is required"})
		return
	}

	neighbors, err := h.dashboardService.QueueNeighbors(*callerID, c.Param("ref_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, neighbors)
}
