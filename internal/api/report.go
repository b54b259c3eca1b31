package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/brentsteel/lunchmenu/internal/service"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Analytics returns the dashboard aggregates --> GET /admin/analytics?days=7
func (h *ReportHandler) Analytics(c echo.Context) error {
	days := 0
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.JSON(400, map[string]string{"error": "Invalid days parameter"})
		}
		days = parsed
	}

	analytics, err := h.reportService.Analytics(c.Request().Context(), days)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(200, analytics)
}
