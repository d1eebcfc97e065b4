package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/happify-app/backend/internal/apierror"
	"github.com/happify-app/backend/internal/models"
	"github.com/happify-app/backend/internal/service"
)

// AnalyticsHandler exposes the aggregation pipeline over HTTP.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// rangeQuery binds the shared ?timeRange= parameter. An absent value falls
// back to the dashboard default; an unknown token is a validation error.
type rangeQuery struct {
	TimeRange string `form:"timeRange" binding:"omitempty,oneof=week month quarter year all"`
}

func bindTimeRange(c *gin.Context) (models.TimeRange, bool) {
	var q rangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "timeRange", Message: "must be one of week, month, quarter, year, all", Code: "oneof"},
		}))
		return "", false
	}
	return models.ParseTimeRange(q.TimeRange), true
}

// GetCombined handles GET /analytics/combined
func (h *AnalyticsHandler) GetCombined(c *gin.Context) {
	timeRange, ok := bindTimeRange(c)
	if !ok {
		return
	}

	combined, err := h.analyticsService.Combined(c.Request.Context(), timeRange)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	c.JSON(http.StatusOK, combined)
}

// GetMoods handles GET /analytics/moods
func (h *AnalyticsHandler) GetMoods(c *gin.Context) {
	timeRange, ok := bindTimeRange(c)
	if !ok {
		return
	}

	records, err := h.analyticsService.Moods(c.Request.Context(), timeRange)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetDistribution handles GET /analytics/mood-distribution
func (h *AnalyticsHandler) GetDistribution(c *gin.Context) {
	timeRange, ok := bindTimeRange(c)
	if !ok {
		return
	}

	result, err := h.analyticsService.Distribution(c.Request.Context(), timeRange)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetTimeOfDay handles GET /analytics/mood-by-time
func (h *AnalyticsHandler) GetTimeOfDay(c *gin.Context) {
	timeRange, ok := bindTimeRange(c)
	if !ok {
		return
	}

	buckets, err := h.analyticsService.TimeOfDay(c.Request.Context(), timeRange)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	c.JSON(http.StatusOK, buckets)
}

// GetActivityCorrelation handles GET /analytics/activity-correlation
func (h *AnalyticsHandler) GetActivityCorrelation(c *gin.Context) {
	timeRange, ok := bindTimeRange(c)
	if !ok {
		return
	}

	result, err := h.analyticsService.ActivityCorrelation(c.Request.Context(), timeRange)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetStreaks handles GET /analytics/streak-data
func (h *AnalyticsHandler) GetStreaks(c *gin.Context) {
	streaks, err := h.analyticsService.Streaks(c.Request.Context())
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	c.JSON(http.StatusOK, streaks)
}

// RegisterRoutes mounts the analytics endpoints on the router group.
func (h *AnalyticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/combined", h.GetCombined)
	rg.GET("/moods", h.GetMoods)
	rg.GET("/mood-distribution", h.GetDistribution)
	rg.GET("/mood-by-time", h.GetTimeOfDay)
	rg.GET("/activity-correlation", h.GetActivityCorrelation)
	rg.GET("/streak-data", h.GetStreaks)
	rg.GET("/export", h.Export)
}
