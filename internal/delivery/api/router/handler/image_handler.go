package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"recipefinder/internal/delivery/api/response"
	"recipefinder/internal/errors"
	"recipefinder/internal/usecase"

	"github.com/labstack/echo/v4"
)

// imageFormField is the multipart field carrying the uploaded file.
const imageFormField = "image"

// ImageHandler uploads and serves stored pictures.
type ImageHandler struct {
	imageUC usecase.ImageUsecase
	logger  *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler
func NewImageHandler(imageUC usecase.ImageUsecase, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{
		imageUC: imageUC,
		logger:  logger,
	}
}

// ImageResponse describes an uploaded image
type ImageResponse struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Upload handles POST /images with a multipart "image" file
func (h *ImageHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart field \"image\" is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded image")
	}

	stored, err := h.imageUC.Upload(c.Request().Context(), data, fileHeader.Header.Get(echo.HeaderContentType))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ImageResponse{
		Key:         stored.Key,
		URL:         stored.URL,
		ContentType: stored.ContentType,
		Size:        stored.Size,
	})
}

// Serve handles GET /images/* and streams the stored object
func (h *ImageHandler) Serve(c echo.Context) error {
	body, info, err := h.imageUC.Open(c.Request().Context(), c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer body.Close()

	header := c.Response().Header()
	// Keys are content checksums, so a key always names the same bytes.
	header.Set("Cache-Control", "public, max-age=31536000, immutable")
	if info.Size > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(info.Size, 10))
	}

	return c.Stream(http.StatusOK, info.ContentType, body)
}
