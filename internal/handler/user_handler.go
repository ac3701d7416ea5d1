package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "herzlink/internal/errors"
	"herzlink/internal/model"
	"herzlink/internal/service"
)

// UserHandler handles the debug/diagnostic endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List godoc
// @Summary List all users (debug)
// @Tags debug
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if users == nil {
		users = []model.User{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"users": users})
}

// Test godoc
// @Summary Backend connectivity probe (debug)
// @Tags debug
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /test [get]
func (h *UserHandler) Test(c echo.Context) error {
	if err := h.userService.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "backend connection works",
	})
}
