package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/mpayalal/bridge-lotso-delete/internal/core/domain"
	"github.com/mpayalal/bridge-lotso-delete/internal/core/port"
	"github.com/mpayalal/bridge-lotso-delete/internal/handler"
	"github.com/mpayalal/bridge-lotso-delete/internal/server/middleware"
)

type HTTPServer struct {
	echo *echo.Echo
}

// NewHTTPServer wires routes and middleware. files may be nil when the
// gateway runs without a database; the file-status routes then answer 503.
func NewHTTPServer(
	resolver port.IdentityResolver,
	events port.EventService,
	files port.FileStorage,
) *HTTPServer {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(requestLogger())

	e.GET("/health", healthCheck)

	authenticated := e.Group("", middleware.Authenticate(resolver))

	eventsHandler := handler.NewEventsHTTPHandler(events)
	authenticated.POST("/v1/events/documents/deleteFile", eventsHandler.DeleteFile())
	authenticated.POST("/v1/events/documents/sendFile", eventsHandler.SendFile())
	authenticated.PUT("/v1/events/documents/authenticateFile", eventsHandler.AuthenticateFile())

	if files != nil {
		filesHandler := handler.NewFilesHTTPHandler(files)
		authenticated.GET("/v1/documents/files", filesHandler.List())
		authenticated.GET("/v1/documents/files/:file_name", filesHandler.Get())
	} else {
		authenticated.GET("/v1/documents/files", storageDisabled)
		authenticated.GET("/v1/documents/files/:file_name", storageDisabled)
	}

	return &HTTPServer{echo: e}
}

func healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "event-gateway",
	})
}

func storageDisabled(c echo.Context) error {
	return c.JSON(http.StatusServiceUnavailable, map[string]string{
		"error": domain.ErrStorageDisabled.Error(),
	})
}

// requestLogger emits one structured line per request through logrus.
func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			entry := log.WithFields(log.Fields{
				"method": v.Method,
				"uri":    v.URI,
				"status": v.Status,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
			} else {
				entry.Info("request")
			}
			return nil
		},
	})
}

func (s *HTTPServer) Start(address string) error {
	log.Infof("Starting HTTP server on %s", address)
	return s.echo.Start(address)
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
