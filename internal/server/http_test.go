package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpayalal/bridge-lotso-delete/internal/auth"
	"github.com/mpayalal/bridge-lotso-delete/internal/client"
	"github.com/mpayalal/bridge-lotso-delete/internal/core/domain"
	"github.com/mpayalal/bridge-lotso-delete/internal/core/service"
)

const testSecret = "test-secret"

type published struct {
	queue string
	body  []byte
}

// fakePublisher stands in for the broker: it records every publish and can be
// told to fail.
type fakePublisher struct {
	mu        sync.Mutex
	published []published
	err       error
}

func (p *fakePublisher) Publish(_ context.Context, queue string, message any) error {
	if p.err != nil {
		return p.err
	}

	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, published{queue: queue, body: body})
	return nil
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.published)
}

func (p *fakePublisher) onQueue(queue string) []published {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []published
	for _, msg := range p.published {
		if msg.queue == queue {
			out = append(out, msg)
		}
	}
	return out
}

func newTestServer(publisher *fakePublisher) *HTTPServer {
	events := service.NewEventService(client.NewAMQPNotifier(publisher))
	resolver := auth.NewResolver(auth.NewHMACVerifier(testSecret), nil)
	return NewHTTPServer(resolver, events, nil)
}

func bearerToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func formRequest(method, path string, form url.Values, authorization string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	return req
}

func TestDeleteFile_EndToEnd(t *testing.T) {
	publisher := &fakePublisher{}
	srv := newTestServer(publisher)

	req := formRequest(http.MethodPost, "/v1/events/documents/deleteFile",
		url.Values{"file_name": {"report.pdf"}},
		bearerToken(t, jwt.MapClaims{"user_id": "u1"}))
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "report.pdf")

	messages := publisher.onQueue("delete_file")
	require.Len(t, messages, 1)
	assert.JSONEq(t, `{"user_id":"u1","file_name":"report.pdf"}`, string(messages[0].body))
}

func TestSendFile_EndToEnd(t *testing.T) {
	publisher := &fakePublisher{}
	srv := newTestServer(publisher)

	req := formRequest(http.MethodPost, "/v1/events/documents/sendFile",
		url.Values{"file_name": {"report.pdf"}, "to_email": {"dest@example.com"}},
		bearerToken(t, jwt.MapClaims{"user_id": "u1"}))
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	messages := publisher.onQueue("notifications")
	require.Len(t, messages, 1)
	assert.JSONEq(t,
		`{"action":"sendFile","to_email":"dest@example.com","user_id":"u1","file_name":"report.pdf"}`,
		string(messages[0].body))
}

func TestAuthenticateFile_EndToEnd(t *testing.T) {
	publisher := &fakePublisher{}
	srv := newTestServer(publisher)

	req := formRequest(http.MethodPut, "/v1/events/documents/authenticateFile",
		url.Values{"file_name": {"report.pdf"}, "url_document": {"https://bucket/u1/report.pdf"}},
		bearerToken(t, jwt.MapClaims{"sub": "u1"}))
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	messages := publisher.onQueue("authenticate_file")
	require.Len(t, messages, 1)
	assert.JSONEq(t,
		`{"user_id":"u1","url_document":"https://bucket/u1/report.pdf","file_name":"report.pdf"}`,
		string(messages[0].body))
}

func TestMissingAuthorization_NoBrokerIO(t *testing.T) {
	publisher := &fakePublisher{}
	srv := newTestServer(publisher)

	req := formRequest(http.MethodPost, "/v1/events/documents/deleteFile",
		url.Values{"file_name": {"report.pdf"}}, "")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, publisher.count())
}

func TestTokenWithoutIdentityClaims(t *testing.T) {
	publisher := &fakePublisher{}
	srv := newTestServer(publisher)

	req := formRequest(http.MethodPost, "/v1/events/documents/deleteFile",
		url.Values{"file_name": {"report.pdf"}},
		bearerToken(t, jwt.MapClaims{"role": "admin"}))
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, publisher.count())
}

func TestMissingFormField(t *testing.T) {
	publisher := &fakePublisher{}
	srv := newTestServer(publisher)

	req := formRequest(http.MethodPost, "/v1/events/documents/sendFile",
		url.Values{"file_name": {"report.pdf"}},
		bearerToken(t, jwt.MapClaims{"user_id": "u1"}))
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "to_email")
	assert.Equal(t, 0, publisher.count())
}

func TestPublishFailure_SanitizedServerError(t *testing.T) {
	publisher := &fakePublisher{
		err: &domain.ConnectionError{Op: "dial", Err: errors.New("connection refused")},
	}
	srv := newTestServer(publisher)

	req := formRequest(http.MethodPost, "/v1/events/documents/deleteFile",
		url.Values{"file_name": {"report.pdf"}},
		bearerToken(t, jwt.MapClaims{"user_id": "u1"}))
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "broker connection failed")
	assert.NotContains(t, rec.Body.String(), testSecret)
}

func TestHealth_NoAuthRequired(t *testing.T) {
	srv := newTestServer(&fakePublisher{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFilesRoute_StorageDisabled(t *testing.T) {
	srv := newTestServer(&fakePublisher{})

	req := formRequest(http.MethodGet, "/v1/documents/files", nil,
		bearerToken(t, jwt.MapClaims{"user_id": "u1"}))
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.ErrStorageDisabled.Error())
}

func TestConcurrentSendFile_NoCrossRequestBleed(t *testing.T) {
	const n = 50

	publisher := &fakePublisher{}
	srv := newTestServer(publisher)
	token := bearerToken(t, jwt.MapClaims{"user_id": "u1"})

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := formRequest(http.MethodPost, "/v1/events/documents/sendFile",
				url.Values{
					"file_name": {fmt.Sprintf("file-%d.pdf", i)},
					"to_email":  {fmt.Sprintf("user-%d@example.com", i)},
				}, token)
			rec := httptest.NewRecorder()
			srv.echo.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
		}(i)
	}
	wg.Wait()

	messages := publisher.onQueue("notifications")
	require.Len(t, messages, n)

	// Each message must match its originating request exactly once.
	seen := make(map[string]int, n)
	for _, msg := range messages {
		var decoded domain.SendFileMessage
		require.NoError(t, json.Unmarshal(msg.body, &decoded))

		var i int
		_, err := fmt.Sscanf(decoded.FileName, "file-%d.pdf", &i)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("user-%d@example.com", i), decoded.ToEmail)
		assert.Equal(t, "u1", decoded.UserID)
		seen[decoded.FileName]++
	}
	for name, count := range seen {
		assert.Equalf(t, 1, count, "message for %s published %d times", name, count)
	}
	assert.Len(t, seen, n)
}
