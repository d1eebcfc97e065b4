package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/happify-app/backend/internal/apierror"
)

// Export handles GET /analytics/export, streaming the filtered records as
// CSV: one header row plus one row per record.
func (h *AnalyticsHandler) Export(c *gin.Context) {
	timeRange, ok := bindTimeRange(c)
	if !ok {
		return
	}

	records, err := h.analyticsService.Moods(c.Request.Context(), timeRange)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="mood-analytics-%s.csv"`, timeRange))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"date", "mood", "intensity", "notes", "source"})
	for _, rec := range records {
		_ = w.Write([]string{
			rec.Date,
			string(rec.Mood),
			strconv.Itoa(rec.Intensity),
			rec.Notes,
			string(rec.Source),
		})
	}
	w.Flush()
}
