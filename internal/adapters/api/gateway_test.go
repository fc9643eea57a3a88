package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/bnema/medicapp-cli/internal/application"
	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	ContentType   string
	RequestID     string
	Body          string
}

// fakeBackend counts requests per path and lets each test script responses.
type fakeBackend struct {
	mu       sync.Mutex
	requests []recordedRequest
	refreshs atomic.Int32
	handler  func(w http.ResponseWriter, r *http.Request, attempt int)
	attempts map[string]int
}

func newFakeBackend(t *testing.T, handler func(w http.ResponseWriter, r *http.Request, attempt int)) (*fakeBackend, *httptest.Server) {
	t.Helper()

	backend := &fakeBackend{handler: handler, attempts: map[string]int{}}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		backend.mu.Lock()
		backend.requests = append(backend.requests, recordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			RawQuery:      r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
			RequestID:     r.Header.Get(requestIDHeader),
			Body:          string(body),
		})
		backend.attempts[r.URL.Path]++
		attempt := backend.attempts[r.URL.Path]
		backend.mu.Unlock()

		if r.URL.Path == refreshPath {
			backend.refreshs.Add(1)
		}
		backend.handler(w, r, attempt)
	}))
	t.Cleanup(server.Close)

	return backend, server
}

func (b *fakeBackend) calls(path string) []recordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []recordedRequest
	for _, req := range b.requests {
		if req.Path == path {
			out = append(out, req)
		}
	}
	return out
}

func (b *fakeBackend) total() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func newTestGateway(t *testing.T, serverURL string, accessToken string) (*Gateway, *application.SessionManager, *atomic.Int32) {
	t.Helper()

	session := application.NewSessionManager(nil, nil, RefreshExchanger{BaseURL: serverURL}, application.SessionOptions{})
	if accessToken != "" {
		session.SetAccessToken(context.Background(), accessToken)
	}

	gateway, err := NewGateway(session, Options{BaseURL: serverURL})
	require.NoError(t, err)

	expired := &atomic.Int32{}
	gateway.OnSessionExpired(func(context.Context) { expired.Add(1) })

	return gateway, session, expired
}

func TestGatewayAttachesBearerAndDecodesJSON(t *testing.T) {
	t.Parallel()

	backend, server := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		writeJSON(w, http.StatusCreated, map[string]any{"id": 5, "room_id": 42, "content": "hola"})
	})
	gateway, _, _ := newTestGateway(t, server.URL, "a1")

	var message domain.Message
	err := gateway.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/waiting-room/42/messages",
		Body:   map[string]string{"content": "hola"},
	}, &message)
	require.NoError(t, err)

	assert.Equal(t, domain.Message{ID: 5, RoomID: 42, Content: "hola"}, message)
	calls := backend.calls("/waiting-room/42/messages")
	require.Len(t, calls, 1)
	assert.Equal(t, "Bearer a1", calls[0].Authorization)
	assert.Equal(t, "application/json", calls[0].ContentType)
	assert.JSONEq(t, `{"content":"hola"}`, calls[0].Body)
	assert.NotEmpty(t, calls[0].RequestID)
}

func TestGatewayGetCarriesNoContentType(t *testing.T) {
	t.Parallel()

	backend, server := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		writeJSON(w, http.StatusOK, []any{})
	})
	gateway, _, _ := newTestGateway(t, server.URL, "a1")

	var rooms []domain.Room
	require.NoError(t, gateway.Do(context.Background(), Request{Method: http.MethodGet, Path: "/patient/waiting-rooms"}, &rooms))

	calls := backend.calls("/patient/waiting-rooms")
	require.Len(t, calls, 1)
	assert.Empty(t, calls[0].ContentType)
}

func TestGatewayWithoutAccessTokenSendsNothing(t *testing.T) {
	t.Parallel()

	backend, server := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		writeJSON(w, http.StatusOK, map[string]any{})
	})
	gateway, _, _ := newTestGateway(t, server.URL, "")

	err := gateway.Do(context.Background(), Request{Method: http.MethodGet, Path: "/users/me"}, nil)
	require.ErrorIs(t, err, domain.ErrNoSession)
	assert.Zero(t, backend.total())
}

func TestGatewayPublicRequestWithoutTokenHasNoAuthorization(t *testing.T) {
	t.Parallel()

	backend, server := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		writeJSON(w, http.StatusOK, map[string]any{"access_token": "a1", "refresh_token": "r1"})
	})
	gateway, _, _ := newTestGateway(t, server.URL, "")

	var pair domain.TokenPair
	require.NoError(t, gateway.Do(context.Background(), Request{Method: http.MethodPost, Path: loginPath, Body: credentials{Email: "ana@medicapp.test"}, Public: true}, &pair))

	assert.Equal(t, "a1", pair.AccessToken)
	calls := backend.calls(loginPath)
	require.Len(t, calls, 1)
	assert.Empty(t, calls[0].Authorization)
}

func TestGatewaySuccessBodies(t *testing.T) {
	t.Parallel()

	_, server := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		switch r.URL.Path {
		case "/no-content":
			w.WriteHeader(http.StatusNoContent)
		case "/text":
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte("ok"))
		}
	})
	gateway, _, _ := newTestGateway(t, server.URL, "a1")

	var untouched *domain.Room
	require.NoError(t, gateway.Do(context.Background(), Request{Method: http.MethodPut, Path: "/no-content"}, &untouched))
	assert.Nil(t, untouched)

	var text string
	require.NoError(t, gateway.Do(context.Background(), Request{Method: http.MethodGet, Path: "/text"}, &text))
	assert.Equal(t, "ok", text)
}

func TestGatewayProblemDetails(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		status     int
		body       string
		jsonBody   bool
		wantDetail string
	}{
		{name: "string detail", status: http.StatusBadRequest, body: `{"detail":"Email already registered"}`, jsonBody: true, wantDetail: "Email already registered"},
		{name: "validation list", status: http.StatusUnprocessableEntity, body: `{"detail":[{"loc":["body","rating"],"msg":"rating out of range"}]}`, jsonBody: true, wantDetail: "rating out of range"},
		{name: "no detail", status: http.StatusForbidden, body: `{}`, jsonBody: true, wantDetail: genericErrorDetail},
		{name: "not json", status: http.StatusInternalServerError, body: `<html>boom</html>`, wantDetail: genericErrorDetail},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, server := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
				if tc.jsonBody {
					w.Header().Set("Content-Type", "application/json")
				}
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			gateway, session, expired := newTestGateway(t, server.URL, "a1")

			err := gateway.Do(context.Background(), Request{Method: http.MethodPost, Path: "/ratings"}, nil)

			var problem *ProblemError
			require.ErrorAs(t, err, &problem)
			assert.Equal(t, tc.status, problem.Status)
			assert.Equal(t, tc.wantDetail, problem.Error())
			assert.Equal(t, "a1", session.AccessToken(), "non-401 errors keep the session")
			assert.Zero(t, expired.Load())
		})
	}
}

func TestGatewayLoginUnauthorizedIsCredentialsError(t *testing.T) {
	t.Parallel()

	backend, server := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid credentials"})
	})
	gateway, session, expired := newTestGateway(t, server.URL, "stale")

	err := gateway.Do(context.Background(), Request{Method: http.MethodPost, Path: loginPath, Body: credentials{}, Public: true}, nil)

	require.ErrorIs(t, err, domain.ErrCredentialsInvalid)
	assert.Zero(t, backend.refreshs.Load(), "login failures never trigger a refresh")
	assert.Empty(t, session.AccessToken())
	assert.Zero(t, expired.Load())
}

func TestGatewayRefreshesOnceAndReplays(t *testing.T) {
	t.Parallel()

	backend, server := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		switch r.URL.Path {
		case refreshPath:
			assert.Equal(t, "Bearer expired", r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, map[string]string{"access_token": "fresh"})
		case "/patient/waiting-rooms":
			if r.Header.Get("Authorization") != "Bearer fresh" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "expired"})
				return
			}
			writeJSON(w, http.StatusOK, []map[string]any{{"id": 7, "call_status": "invited"}})
		}
	})
	gateway, session, expired := newTestGateway(t, server.URL, "expired")

	var rooms []domain.Room
	err := gateway.Do(context.Background(), Request{Method: http.MethodGet, Path: "/patient/waiting-rooms"}, &rooms)
	require.NoError(t, err)

	require.Len(t, rooms, 1)
	assert.Equal(t, domain.CallStatusInvited, rooms[0].CallStatus)
	assert.Equal(t, int32(1), backend.refreshs.Load())
	calls := backend.calls("/patient/waiting-rooms")
	require.Len(t, calls, 2)
	assert.Equal(t, "Bearer expired", calls[0].Authorization)
	assert.Equal(t, "Bearer fresh", calls[1].Authorization)
	assert.NotEqual(t, calls[0].RequestID, calls[1].RequestID)
	assert.Equal(t, "fresh", session.AccessToken())
	assert.Zero(t, expired.Load())
}

func TestGatewaySecondUnauthorizedAfterRefreshIsHardFailure(t *testing.T) {
	t.Parallel()

	backend, server := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		if r.URL.Path == refreshPath {
			writeJSON(w, http.StatusOK, map[string]string{"access_token": "fresh"})
			return
		}
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "nope"})
	})
	gateway, session, expired := newTestGateway(t, server.URL, "expired")
	session.SetRefreshToken(context.Background(), "r1")

	err := gateway.Do(context.Background(), Request{Method: http.MethodPut, Path: "/waiting-room/7/respond-call"}, nil)

	require.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Equal(t, int32(1), backend.refreshs.Load())
	assert.Len(t, backend.calls("/waiting-room/7/respond-call"), 2)
	assert.True(t, session.Snapshot().Empty())
	assert.Equal(t, int32(1), expired.Load())
}

func TestGatewayFailedRefreshExpiresSession(t *testing.T) {
	t.Parallel()

	backend, server := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "expired"})
	})
	gateway, session, expired := newTestGateway(t, server.URL, "expired")

	err := gateway.Do(context.Background(), Request{Method: http.MethodGet, Path: "/doctors"}, nil)

	require.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Equal(t, int32(1), backend.refreshs.Load())
	assert.Len(t, backend.calls("/doctors"), 1, "no replay when refresh failed")
	assert.Empty(t, session.AccessToken())
	assert.Equal(t, int32(1), expired.Load())
}

func TestGatewayUnauthorizedOnRefreshPathDoesNotRecurse(t *testing.T) {
	t.Parallel()

	backend, server := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "expired"})
	})
	gateway, session, expired := newTestGateway(t, server.URL, "expired")

	err := gateway.Do(context.Background(), Request{Method: http.MethodPost, Path: refreshPath}, nil)

	require.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Equal(t, int32(1), backend.refreshs.Load(), "only the request itself hit the refresh endpoint")
	assert.Empty(t, session.AccessToken())
	assert.Equal(t, int32(1), expired.Load())
}

func TestGatewayReplaysBinaryPayloadWithCallerContentType(t *testing.T) {
	t.Parallel()

	backend, server := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		if r.URL.Path == refreshPath {
			writeJSON(w, http.StatusOK, map[string]string{"access_token": "fresh"})
			return
		}
		if attempt == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	gateway, _, _ := newTestGateway(t, server.URL, "expired")

	err := gateway.Do(context.Background(), Request{
		Method:  http.MethodPost,
		Path:    "/upload",
		Payload: strings.NewReader("\x89PNG"),
	}, nil)
	require.NoError(t, err)

	calls := backend.calls("/upload")
	require.Len(t, calls, 2)
	for _, call := range calls {
		assert.Empty(t, call.ContentType)
		assert.Equal(t, "\x89PNG", call.Body)
	}
}

func TestNewGatewayValidatesBaseURL(t *testing.T) {
	t.Parallel()

	session := application.NewSessionManager(nil, nil, nil, application.SessionOptions{})
	testCases := []struct {
		name    string
		baseURL string
		wantErr string
	}{
		{name: "empty", baseURL: "", wantErr: "api base url is required"},
		{name: "scheme", baseURL: "ftp://medicapp.test", wantErr: "must use http or https"},
		{name: "host", baseURL: "http://", wantErr: "host is required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGateway(session, Options{BaseURL: tc.baseURL})
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
