package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/bnema/medicapp-cli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCallEndpoints(t *testing.T) {
	t.Parallel()

	backend, server := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 42, "status": "approved", "call_status": "invited"})
	})
	gateway, _, _ := newTestGateway(t, server.URL, "a1")
	client := NewClient(gateway)

	room, err := client.StartCall(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 42, room.ID)

	_, err = client.RespondCall(context.Background(), 7, true)
	require.NoError(t, err)
	_, err = client.RespondCall(context.Background(), 7, false)
	require.NoError(t, err)

	start := backend.calls("/waiting-room/42/start-call")
	require.Len(t, start, 1)
	assert.Equal(t, http.MethodPut, start[0].Method)

	respond := backend.calls("/waiting-room/7/respond-call")
	require.Len(t, respond, 2)
	assert.Equal(t, "accept=true", respond[0].RawQuery)
	assert.Equal(t, "accept=false", respond[1].RawQuery)
	assert.Equal(t, http.MethodPut, respond[1].Method)
}

func TestClientRequestBodies(t *testing.T) {
	t.Parallel()

	backend, server := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 1})
	})
	gateway, _, _ := newTestGateway(t, server.URL, "a1")
	client := NewClient(gateway)
	ctx := context.Background()

	_, err := client.RequestGuard(ctx, 9, "")
	require.NoError(t, err)
	_, err = client.RequestGuard(ctx, 9, "fiebre")
	require.NoError(t, err)
	_, err = client.JoinQueue(ctx, 9)
	require.NoError(t, err)
	_, err = client.SubmitRating(ctx, domain.RatingSubmission{DoctorID: 9, Rating: 4, Comment: "bien"})
	require.NoError(t, err)
	_, err = client.SetDoctorStatus(ctx, true, false)
	require.NoError(t, err)
	_, err = client.SendMessage(ctx, 42, "hola")
	require.NoError(t, err)

	guard := backend.calls("/waiting-room")
	require.Len(t, guard, 2)
	assert.JSONEq(t, `{"doctor_id":9}`, guard[0].Body)
	assert.JSONEq(t, `{"doctor_id":9,"note":"fiebre"}`, guard[1].Body)

	queue := backend.calls("/waiting-rooms")
	require.Len(t, queue, 1)
	assert.JSONEq(t, `{"doctor_id":9}`, queue[0].Body)

	ratings := backend.calls("/ratings")
	require.Len(t, ratings, 1)
	assert.JSONEq(t, `{"doctor_id":9,"rating":4,"comment":"bien"}`, ratings[0].Body)

	status := backend.calls("/doctor/status")
	require.Len(t, status, 1)
	assert.JSONEq(t, `{"is_on_guard":true,"is_accepting":false}`, status[0].Body)

	messages := backend.calls("/waiting-room/42/messages")
	require.Len(t, messages, 1)
	assert.JSONEq(t, `{"content":"hola"}`, messages[0].Body)
}

func TestClientUpdateProfileSendsOnlyEditableFields(t *testing.T) {
	t.Parallel()

	backend, server := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 3, "name": "Ana", "allergies": "penicilina"})
	})
	gateway, _, _ := newTestGateway(t, server.URL, "a1")
	client := NewClient(gateway)

	allergies := "penicilina"
	saved, err := client.UpdateProfile(context.Background(), domain.Profile{ID: 3, Name: "Ana", Email: "ana@medicapp.test", Allergies: &allergies})
	require.NoError(t, err)
	require.NotNil(t, saved.Allergies)
	assert.Equal(t, "penicilina", *saved.Allergies)

	calls := backend.calls("/users/me/profile")
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPut, calls[0].Method)
	assert.JSONEq(t, `{"allergies":"penicilina"}`, calls[0].Body)
}

func TestClientLoginRequiresAccessToken(t *testing.T) {
	t.Parallel()

	_, server := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		writeJSON(w, http.StatusOK, map[string]any{"token_type": "bearer"})
	})
	gateway, _, _ := newTestGateway(t, server.URL, "")
	client := NewClient(gateway)

	_, err := client.Login(context.Background(), "ana@medicapp.test", "secret")
	require.ErrorIs(t, err, errEmptyAccessToken)
}

func TestClientRegisterIsPublic(t *testing.T) {
	t.Parallel()

	backend, server := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		writeJSON(w, http.StatusCreated, map[string]any{"id": 3, "name": "Ana", "email": "ana@medicapp.test", "role": "patient"})
	})
	gateway, _, _ := newTestGateway(t, server.URL, "")
	client := NewClient(gateway)

	user, err := client.Register(context.Background(), ports.RegisterRequest{Name: "Ana", Email: "ana@medicapp.test", Password: "secret", Role: domain.RolePatient})
	require.NoError(t, err)
	assert.Equal(t, domain.RolePatient, user.Role)

	calls := backend.calls(registerPath)
	require.Len(t, calls, 1)
	assert.JSONEq(t, `{"name":"Ana","email":"ana@medicapp.test","password":"secret","role":"patient"}`, calls[0].Body)
}

func TestRefreshExchangerRejectsEmptyAnswer(t *testing.T) {
	t.Parallel()

	_, server := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		writeJSON(w, http.StatusOK, map[string]any{})
	})

	_, err := RefreshExchanger{BaseURL: server.URL}.Exchange(context.Background(), "a1")
	require.ErrorIs(t, err, errEmptyAccessToken)

	_, err = RefreshExchanger{BaseURL: server.URL}.Exchange(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrNoSession)
}
