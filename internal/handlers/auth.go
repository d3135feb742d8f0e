package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sajidul-dev/adboard/backend/internal/models"
	"github.com/sajidul-dev/adboard/backend/internal/repositories"
)

// AuthHandler handles signup and login HTTP requests.
type AuthHandler struct {
	userRepository repositories.UserRepository
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userRepo repositories.UserRepository) *AuthHandler {
	return &AuthHandler{userRepository: userRepo}
}

// RegisterAuthRoutes registers the signup and login routes.
func (h *AuthHandler) RegisterAuthRoutes(e *echo.Echo) {
	e.POST("/signup", h.Signup)
	e.POST("/login", h.Login)
}

// Signup creates a new pending user. The body is bound as a raw document so
// extra fields survive; the required username/password pair is validated
// through the request DTO.
func (h *AuthHandler) Signup(c echo.Context) error {
	var body models.Document
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	req := models.SignupRequest{
		Username: models.CoerceString(body["username"]),
		Password: models.CoerceString(body["password"]),
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userRepository.Signup(c.Request().Context(), req.Username, req.Password, body)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

// Login returns the stored user document on an exact credential match. The
// document includes the password field as stored.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userRepository.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}
