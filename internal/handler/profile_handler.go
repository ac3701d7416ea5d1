package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "herzlink/internal/errors"
	"herzlink/internal/model"
	"herzlink/internal/service"
)

// ProfileHandler handles profile CRUD endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ProfileRequest represents a profile create/update request.
type ProfileRequest struct {
	ID          uint     `json:"id"`
	UserID      string   `json:"userId" validate:"required,uuid"`
	Name        string   `json:"name"`
	Age         int      `json:"age"`
	Location    string   `json:"location"`
	Status      string   `json:"status"`
	Interests   []string `json:"interests"`
	Height      int      `json:"height"`
	Children    string   `json:"children"`
	Education   string   `json:"education"`
	Languages   []string `json:"languages"`
	Description string   `json:"description"`
	Avatar      string   `json:"avatar"`
	Online      bool     `json:"online"`
	Verified    bool     `json:"verified"`
	Seeking     string   `json:"seeking"`
}

func (r *ProfileRequest) toModel() *model.Profile {
	interests := r.Interests
	if interests == nil {
		interests = []string{}
	}
	languages := r.Languages
	if languages == nil {
		languages = []string{}
	}
	userID, _ := uuid.Parse(r.UserID)
	return &model.Profile{
		ID:          r.ID,
		UserID:      userID,
		Name:        r.Name,
		Age:         r.Age,
		Location:    r.Location,
		Status:      r.Status,
		Interests:   interests,
		Height:      r.Height,
		Children:    r.Children,
		Education:   r.Education,
		Languages:   languages,
		Description: r.Description,
		Avatar:      r.Avatar,
		Online:      r.Online,
		Verified:    r.Verified,
		Seeking:     r.Seeking,
	}
}

// List godoc
// @Summary List all profiles, newest first
// @Tags profiles
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /profiles [get]
func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.profileService.List(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if profiles == nil {
		profiles = []model.Profile{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"profiles": profiles})
}

// GetByUserID godoc
// @Summary Get the profile of one user
// @Description Returns {"profile": null} with status 200 when the user has no profile.
// @Tags profiles
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /profiles/{userId} [get]
func (h *ProfileHandler) GetByUserID(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	profile, err := h.profileService.GetByUserID(c.Request().Context(), userID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	// Absent profile is a null payload, not a 404.
	return c.JSON(http.StatusOK, map[string]interface{}{"profile": profile})
}

// Create godoc
// @Summary Create the user's profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body ProfileRequest true "Profile data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /profiles [post]
func (h *ProfileHandler) Create(c echo.Context) error {
	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profileService.Create(c.Request().Context(), req.toModel())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"profile": profile,
		"message": "profile created successfully",
	})
}

// Update godoc
// @Summary Replace a profile record by its id
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body ProfileRequest true "Profile data including id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /profiles [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "profile id is required")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profileService.Update(c.Request().Context(), req.toModel())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"profile": profile,
		"message": "profile updated successfully",
	})
}
