package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultProfile, cfg.Profile)
	assert.Equal(t, 4*time.Second, cfg.PollInterval)
	assert.Equal(t, 2*time.Second, cfg.AdmissionInterval)
	assert.Equal(t, "meet.jit.si", cfg.CallDomain)
	assert.True(t, cfg.OpenBrowser)
	assert.Equal(t, SessionStoreFile, cfg.SessionStore)
	assert.Equal(t, filepath.Join(home, ".medicapp", "secrets"), cfg.SecretsDir)
	assert.Equal(t, SecretsBackendPass, cfg.SecretsBackend)
	assert.Equal(t, filepath.Join(home, ".medicapp", "sessions.toml"), cfg.SessionsPath)
	assert.Equal(t, "medicapp/default/refresh_token", cfg.SecretKey("refresh_token"))
}

func TestLoadReadsConfigFileAndEnvironment(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".medicapp"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".medicapp", "config.toml"), []byte(`
base_url = "https://api.medicapp.test/"
profile = "clinic"

[poll]
interval = "1500ms"

[session]
store = "memory"
`), 0o600))
	t.Setenv("MEDICAPP_CALL_DOMAIN", "video.medicapp.test")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "https://api.medicapp.test", cfg.BaseURL)
	assert.Equal(t, "clinic", cfg.Profile)
	assert.Equal(t, 1500*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, SessionStoreMemory, cfg.SessionStore)
	assert.Equal(t, "video.medicapp.test", cfg.CallDomain)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name    string
		env     string
		value   string
		wantErr string
	}{
		{name: "base url without scheme", env: "MEDICAPP_BASE_URL", value: "localhost", wantErr: "invalid base_url"},
		{name: "profile with slash", env: "MEDICAPP_PROFILE", value: "a/b", wantErr: "invalid profile"},
		{name: "unknown session store", env: "MEDICAPP_SESSION_STORE", value: "redis", wantErr: "unsupported session.store"},
		{name: "unknown secrets backend", env: "MEDICAPP_SECRETS_BACKEND", value: "keychain", wantErr: "unsupported secrets.backend"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			t.Setenv(tc.env, tc.value)

			_, err := Load(viper.New())
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
