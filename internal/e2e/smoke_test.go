package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	server := newLoginServer(t)

	stdout, stderr, err := runMedicapp(t, binaryPath, home, server.URL, "", "session", "status")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Not signed in.")

	_, stderr, err = runMedicapp(t, binaryPath, home, server.URL, "", "rooms", "list")
	require.Error(t, err)
	assert.Contains(t, stderr, "no active session")

	stdout, stderr, err = runMedicapp(t, binaryPath, home, server.URL, "s3cret\n", "login", "--email", "ana@example.com")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Logged in as Ana (patient).")

	stdout, stderr, err = runMedicapp(t, binaryPath, home, server.URL, "", "session", "status")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Ana <ana@example.com>")
	assert.Contains(t, stdout, "access token: present")

	stdout, stderr, err = runMedicapp(t, binaryPath, home, server.URL, "", "rooms", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "No rooms yet.")
}

// newLoginServer serves just enough of the API for a patient to sign in
// and list an empty set of rooms.
func newLoginServer(t *testing.T) *httptest.Server {
	t.Helper()

	const token = "e2e-access-token"
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Password != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(w, map[string]string{"access_token": token, "refresh_token": "e2e-refresh-token", "token_type": "bearer"})
	})
	authed := func(body any) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+token {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			writeJSON(w, body)
		}
	}
	mux.HandleFunc("GET /users/me", authed(map[string]any{"id": 3, "name": "Ana", "email": "ana@example.com", "role": "patient"}))
	mux.HandleFunc("GET /patient/waiting-rooms", authed([]any{}))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "medicapp-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/medicapp")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build medicapp binary: %s", string(output))
	return binaryPath
}

func runMedicapp(t *testing.T, binaryPath, home, baseURL, input string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"MEDICAPP_BASE_URL="+baseURL,
		"MEDICAPP_SESSION_DIR="+filepath.Join(home, "session"),
		"MEDICAPP_SECRETS_BACKEND=file",
		"MEDICAPP_CALL_OPEN_BROWSER=false",
	)
	cmd.Stdin = strings.NewReader(input)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
