package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/mpayalal/bridge-lotso-delete/internal/core/domain"
	"github.com/mpayalal/bridge-lotso-delete/internal/core/port"
	"github.com/mpayalal/bridge-lotso-delete/internal/server/middleware"
)

// FilesHTTPHandler exposes read-only file status so clients can observe the
// outcome of asynchronously processed events. It is registered only when the
// gateway runs with a database.
type FilesHTTPHandler struct {
	files port.FileStorage
}

func NewFilesHTTPHandler(files port.FileStorage) *FilesHTTPHandler {
	return &FilesHTTPHandler{
		files: files,
	}
}

func (h *FilesHTTPHandler) List() echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := middleware.IdentityFromContext(c)

		files, err := h.files.ListByUser(c.Request().Context(), identity.UserID)
		if err != nil {
			log.WithError(err).Error("File listing failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "could not list files",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"files": toFileResponses(files),
		})
	}
}

func (h *FilesHTTPHandler) Get() echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := middleware.IdentityFromContext(c)
		fileName := c.Param("file_name")

		file, err := h.files.GetByName(c.Request().Context(), identity.UserID, fileName)
		if err != nil {
			if errors.Is(err, domain.ErrFileNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{
					"error": "file not found",
				})
			}
			log.WithError(err).Error("File lookup failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "could not load file",
			})
		}

		return c.JSON(http.StatusOK, toFileResponse(*file))
	}
}
