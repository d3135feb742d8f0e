package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sajidul-dev/adboard/backend/internal/models"
	"github.com/sajidul-dev/adboard/backend/internal/repositories"
)

// FollowHandler handles follow/unfollow HTTP requests.
type FollowHandler struct {
	userRepository repositories.UserRepository
}

// NewFollowHandler creates a new FollowHandler.
func NewFollowHandler(userRepo repositories.UserRepository) *FollowHandler {
	return &FollowHandler{userRepository: userRepo}
}

// RegisterFollowRoutes registers follow-related routes.
func (h *FollowHandler) RegisterFollowRoutes(e *echo.Echo) {
	e.POST("/users/toggle-follow", h.ToggleFollow)
}

// ToggleFollow follows the target user, or unfollows when the link already
// exists. Both updated user documents are returned.
func (h *FollowHandler) ToggleFollow(c echo.Context) error {
	var req models.ToggleFollowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	follower, following, err := h.userRepository.ToggleFollow(c.Request().Context(), req.FollowerID, req.FollowingID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"follower":  follower,
		"following": following,
	})
}
