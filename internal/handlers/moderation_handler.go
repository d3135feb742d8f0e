package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sajidul-dev/adboard/backend/internal/models"
	"github.com/sajidul-dev/adboard/backend/internal/repositories"
)

// ModerationHandler handles ad approval, user approval and user blocking.
// Each transition is a single-field patch on the target document.
type ModerationHandler struct {
	documentRepository repositories.DocumentRepository
}

// NewModerationHandler creates a new ModerationHandler.
func NewModerationHandler(docRepo repositories.DocumentRepository) *ModerationHandler {
	return &ModerationHandler{documentRepository: docRepo}
}

// RegisterModerationRoutes registers the moderation routes.
func (h *ModerationHandler) RegisterModerationRoutes(e *echo.Echo) {
	e.PATCH("/ads/:id/approval", h.SetAdStatus)
	e.PATCH("/users/:id/approval", h.SetUserApproval)
	e.PATCH("/users/:id/block", h.SetUserBlocked)
}

// SetAdStatus updates the status field of an ad.
func (h *ModerationHandler) SetAdStatus(c echo.Context) error {
	var req models.ApprovalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	doc, err := h.documentRepository.Patch(c.Request().Context(), "ads", c.Param("id"),
		models.Document{"status": req.Status})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, doc)
}

// SetUserApproval updates the approvalStatus field of a user.
func (h *ModerationHandler) SetUserApproval(c echo.Context) error {
	var req models.ApprovalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	doc, err := h.documentRepository.Patch(c.Request().Context(), "users", c.Param("id"),
		models.Document{"approvalStatus": req.ApprovalStatus})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, doc)
}

// SetUserBlocked updates the isBlocked flag of a user.
func (h *ModerationHandler) SetUserBlocked(c echo.Context) error {
	var req models.BlockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	doc, err := h.documentRepository.Patch(c.Request().Context(), "users", c.Param("id"),
		models.Document{"isBlocked": *req.IsBlocked})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, doc)
}
