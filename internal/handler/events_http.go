package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/mpayalal/bridge-lotso-delete/internal/core/domain"
	"github.com/mpayalal/bridge-lotso-delete/internal/core/port"
	"github.com/mpayalal/bridge-lotso-delete/internal/server/middleware"
)

// EventsHTTPHandler accepts document lifecycle requests and republishes them
// onto the broker. A 200 acknowledges acceptance of the request, not
// completion of the downstream action.
type EventsHTTPHandler struct {
	events port.EventService
}

func NewEventsHTTPHandler(events port.EventService) *EventsHTTPHandler {
	return &EventsHTTPHandler{
		events: events,
	}
}

func (h *EventsHTTPHandler) DeleteFile() echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := middleware.IdentityFromContext(c)
		fileName := c.FormValue("file_name")

		if err := h.events.DeleteFile(c.Request().Context(), identity, fileName); err != nil {
			return publishFailure(c, err)
		}

		return c.JSON(http.StatusOK, map[string]string{
			"message": fmt.Sprintf("File '%s' was accepted for deletion.", fileName),
		})
	}
}

func (h *EventsHTTPHandler) SendFile() echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := middleware.IdentityFromContext(c)
		fileName := c.FormValue("file_name")
		toEmail := c.FormValue("to_email")

		if err := h.events.SendFile(c.Request().Context(), identity, fileName, toEmail); err != nil {
			return publishFailure(c, err)
		}

		return c.JSON(http.StatusOK, map[string]string{
			"message": fmt.Sprintf("File '%s' was accepted for delivery to %s.", fileName, toEmail),
		})
	}
}

func (h *EventsHTTPHandler) AuthenticateFile() echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := middleware.IdentityFromContext(c)
		urlDocument := c.FormValue("url_document")
		fileName := c.FormValue("file_name")

		if err := h.events.AuthenticateFile(c.Request().Context(), identity, urlDocument, fileName); err != nil {
			return publishFailure(c, err)
		}

		return c.JSON(http.StatusOK, map[string]string{
			"message": fmt.Sprintf("File '%s' was accepted for authentication.", fileName),
		})
	}
}

// publishFailure maps service errors to HTTP statuses. Publish and connection
// failures surface the error message, which never carries credentials.
func publishFailure(c echo.Context, err error) error {
	var missing *domain.MissingFieldError
	if errors.As(err, &missing) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": missing.Error(),
		})
	}

	log.WithError(err).Error("Event publish failed")
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": err.Error(),
	})
}
