package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mpayalal/bridge-lotso-delete/internal/core/domain"
	"github.com/mpayalal/bridge-lotso-delete/internal/server/middleware"
	"github.com/mpayalal/bridge-lotso-delete/mocks"
)

func eventContext(t *testing.T, method, path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetIdentity(c, &domain.Identity{UserID: "u1"})
	return c, rec
}

func TestDeleteFile_Accepted(t *testing.T) {
	events := mocks.NewEventService(t)
	events.EXPECT().DeleteFile(mock.Anything, &domain.Identity{UserID: "u1"}, "report.pdf").Return(nil)

	c, rec := eventContext(t, http.MethodPost, "/v1/events/documents/deleteFile",
		url.Values{"file_name": {"report.pdf"}})

	require.NoError(t, NewEventsHTTPHandler(events).DeleteFile()(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "report.pdf")
}

func TestSendFile_MissingFieldIsClientError(t *testing.T) {
	events := mocks.NewEventService(t)
	events.EXPECT().SendFile(mock.Anything, mock.Anything, "report.pdf", "").
		Return(&domain.MissingFieldError{Field: "to_email"})

	c, rec := eventContext(t, http.MethodPost, "/v1/events/documents/sendFile",
		url.Values{"file_name": {"report.pdf"}})

	require.NoError(t, NewEventsHTTPHandler(events).SendFile()(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "to_email")
}

func TestAuthenticateFile_PublishFailureIsServerError(t *testing.T) {
	events := mocks.NewEventService(t)
	events.EXPECT().AuthenticateFile(mock.Anything, mock.Anything, "https://bucket/u1/report.pdf", "report.pdf").
		Return(&domain.PublishError{Queue: domain.QueueAuthenticateFile, Err: errors.New("channel gone")})

	c, rec := eventContext(t, http.MethodPut, "/v1/events/documents/authenticateFile",
		url.Values{"file_name": {"report.pdf"}, "url_document": {"https://bucket/u1/report.pdf"}})

	require.NoError(t, NewEventsHTTPHandler(events).AuthenticateFile()(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "authenticate_file")
}
