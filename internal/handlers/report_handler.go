package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sajidul-dev/adboard/backend/internal/models"
	"github.com/sajidul-dev/adboard/backend/internal/repositories"
)

// ReportHandler handles report submission and resolution.
type ReportHandler struct {
	reportRepository repositories.ReportRepository
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportRepo repositories.ReportRepository) *ReportHandler {
	return &ReportHandler{reportRepository: reportRepo}
}

// RegisterReportRoutes registers report-related routes.
func (h *ReportHandler) RegisterReportRoutes(e *echo.Echo) {
	e.POST("/reports", h.SubmitReport)
	e.PATCH("/reports/:id/resolve", h.ResolveReport)
}

// SubmitReport inserts a report with status forced to "new".
func (h *ReportHandler) SubmitReport(c echo.Context) error {
	var body models.Document
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	report, err := h.reportRepository.Submit(c.Request().Context(), body)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, report)
}

// ResolveReport forces the report's status to "resolved". No body needed.
func (h *ReportHandler) ResolveReport(c echo.Context) error {
	report, err := h.reportRepository.Resolve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}
