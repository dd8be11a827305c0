package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/services"
)

// ReportHandler serves the dashboard aggregation views.
type ReportHandler struct {
	reportService services.ReportServicer
	userService   services.UserServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer, userService services.UserServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService, userService: userService}
}

// resolveOwner maps the optional ?username= query to the owning user's id.
func (h *ReportHandler) resolveOwner(c *gin.Context) (*string, bool) {
	username := c.Query("username")
	if username == "" {
		return nil, true
	}
	user, err := h.userService.GetUserByUsername(username)
	if err != nil {
		respondWithError(c, err)
		return nil, false
	}
	return &user.ID, true
}

// GetSummary returns the headline statistics
// @Summary     Summary statistics
// @Description Total amount, transaction count, and average, optionally scoped to a user
// @Tags        reports
// @Produce     json
// @Param       username query string false "Scope to one user"
// @Success     200 {object} map[string]interface{} "Summary"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	ownerID, ok := h.resolveOwner(c)
	if !ok {
		return
	}

	summary, err := h.reportService.Summary(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetMonthly returns per-month totals
// @Summary     Monthly totals
// @Description Sparse month-year buckets plus the chronologically sorted chart series
// @Tags        reports
// @Produce     json
// @Param       username query string false "Scope to one user"
// @Success     200 {object} map[string]interface{} "Monthly totals"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/monthly [get]
func (h *ReportHandler) GetMonthly(c *gin.Context) {
	ownerID, ok := h.resolveOwner(c)
	if !ok {
		return
	}

	totals, series, err := h.reportService.MonthlyTotals(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"totals": totals, "series": series})
}

// GetCategories returns per-category totals
// @Summary     Category breakdown
// @Description Per-category totals with display metadata, largest first
// @Tags        reports
// @Produce     json
// @Param       username query string false "Scope to one user"
// @Success     200 {object} map[string]interface{} "Category breakdown"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/categories [get]
func (h *ReportHandler) GetCategories(c *gin.Context) {
	ownerID, ok := h.resolveOwner(c)
	if !ok {
		return
	}

	breakdown, err := h.reportService.CategoryTotals(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": breakdown})
}
