package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "herzlink/internal/errors"
	"herzlink/internal/model"
	"herzlink/internal/service"
)

// GalleryHandler handles gallery image endpoints.
type GalleryHandler struct {
	galleryService service.GalleryService
}

// NewGalleryHandler creates a new gallery handler.
func NewGalleryHandler(galleryService service.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

// ImageUpdateRequest represents a partial gallery image update.
type ImageUpdateRequest struct {
	Caption      *string `json:"caption"`
	DisplayOrder *int    `json:"display_order"`
}

// Upload godoc
// @Summary Upload a gallery image
// @Description Multipart upload. Validates MIME type and 5MB size limit before any write.
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file (JPEG, PNG, WebP, GIF)"
// @Param profileId formData int true "Profile ID"
// @Param userId formData string true "User ID"
// @Param caption formData string false "Caption"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /gallery [post]
func (h *GalleryHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file, profile id and user id are required")
	}
	profileID, err := strconv.ParseUint(c.FormValue("profileId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file, profile id and user id are required")
	}
	userID, err := uuid.Parse(c.FormValue("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file, profile id and user id are required")
	}

	var caption *string
	if v := c.FormValue("caption"); v != "" {
		caption = &v
	}

	// Reject oversized uploads on the declared size before reading the body.
	if fileHeader.Size > service.MaxImageSize {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrImageTooLarge)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid file upload")
	}
	defer src.Close()
	data, err := io.ReadAll(io.LimitReader(src, service.MaxImageSize+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid file upload")
	}

	image, err := h.galleryService.Upload(c.Request().Context(), service.UploadInput{
		ProfileID:   uint(profileID),
		UserID:      userID,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        int64(len(data)),
		Data:        data,
		Caption:     caption,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"image":   image,
	})
}

// ListByProfile godoc
// @Summary List gallery images of a profile
// @Tags gallery
// @Produce json
// @Param profileId path int true "Profile ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /gallery/{profileId} [get]
func (h *GalleryHandler) ListByProfile(c echo.Context) error {
	profileID, err := strconv.ParseUint(c.Param("profileId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid profile id")
	}

	images, err := h.galleryService.ListByProfileID(c.Request().Context(), uint(profileID))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if images == nil {
		images = []model.GalleryImage{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"images": images})
}

// Update godoc
// @Summary Update caption or display order of an image
// @Tags gallery
// @Accept json
// @Produce json
// @Param imageId path int true "Image ID"
// @Param request body ImageUpdateRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /gallery/image/{imageId} [put]
func (h *GalleryHandler) Update(c echo.Context) error {
	imageID, err := strconv.ParseUint(c.Param("imageId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image id")
	}

	var req ImageUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Caption == nil && req.DisplayOrder == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no fields to update")
	}

	image, err := h.galleryService.UpdateImage(c.Request().Context(), uint(imageID), service.ImageUpdate{
		Caption:      req.Caption,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"image": image})
}

// Delete godoc
// @Summary Delete a gallery image
// @Description Deletes the stored object best-effort, then the metadata row.
// @Tags gallery
// @Produce json
// @Param imageId path int true "Image ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /gallery/image/{imageId} [delete]
func (h *GalleryHandler) Delete(c echo.Context) error {
	imageID, err := strconv.ParseUint(c.Param("imageId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image id")
	}

	if err := h.galleryService.DeleteImage(c.Request().Context(), uint(imageID)); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "image deleted successfully",
	})
}
