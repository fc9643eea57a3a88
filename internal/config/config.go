// Package config resolves runtime settings from ~/.medicapp/config.toml and
// MEDICAPP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".medicapp"
	envPrefix  = "MEDICAPP"

	KeyBaseURL           = "base_url"
	KeyProfile           = "profile"
	KeyPollInterval      = "poll.interval"
	KeyAdmissionInterval = "admission.interval"
	KeyCallDomain        = "call.domain"
	KeyCallDuration      = "call.duration"
	KeyCallOpenBrowser   = "call.open_browser"
	KeyLogPath           = "log.path"
	KeyLogVerbose        = "log.verbose"
	KeySessionStore      = "session.store"
	KeySessionDir        = "session.dir"
	KeySecretsDir        = "secrets.dir"
	KeySecretsBackend    = "secrets.backend"
	KeySessionsPath      = "sessions.path"

	SessionStoreFile   = "file"
	SessionStoreMemory = "memory"

	SecretsBackendPass = "pass"
	SecretsBackendFile = "file"

	DefaultBaseURL           = "http://localhost:8000"
	DefaultProfile           = "default"
	DefaultPollInterval      = 4 * time.Second
	DefaultAdmissionInterval = 2 * time.Second
	DefaultCallDomain        = "meet.jit.si"
	DefaultCallDuration      = 10 * time.Second
)

type Config struct {
	BaseURL           string
	Profile           string
	PollInterval      time.Duration
	AdmissionInterval time.Duration
	CallDomain        string
	CallDuration      time.Duration
	// OpenBrowser launches the desktop browser on the meeting link; off
	// means the link is only printed.
	OpenBrowser  bool
	LogPath      string
	Verbose      bool
	SessionStore string
	SessionDir   string
	SecretsDir   string
	// SecretsBackend picks the durable store: pass with a file fallback, or
	// files only.
	SecretsBackend string
	SessionsPath   string
}

// Load reads the config file (missing is fine) and applies the environment
// on top. A nil v gets a fresh viper instance.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	root := filepath.Join(homeDir, configDir)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(root)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyBaseURL, DefaultBaseURL)
	v.SetDefault(KeyProfile, DefaultProfile)
	v.SetDefault(KeyPollInterval, DefaultPollInterval)
	v.SetDefault(KeyAdmissionInterval, DefaultAdmissionInterval)
	v.SetDefault(KeyCallDomain, DefaultCallDomain)
	v.SetDefault(KeyCallDuration, DefaultCallDuration)
	v.SetDefault(KeyCallOpenBrowser, true)
	v.SetDefault(KeyLogPath, filepath.Join(root, "medicapp.log"))
	v.SetDefault(KeyLogVerbose, false)
	v.SetDefault(KeySessionStore, SessionStoreFile)
	v.SetDefault(KeySessionDir, filepath.Join(os.TempDir(), "medicapp-"+strconv.Itoa(os.Getuid())))
	v.SetDefault(KeySecretsDir, filepath.Join(root, "secrets"))
	v.SetDefault(KeySecretsBackend, SecretsBackendPass)
	v.SetDefault(KeySessionsPath, filepath.Join(root, "sessions.toml"))

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		BaseURL:           strings.TrimRight(strings.TrimSpace(v.GetString(KeyBaseURL)), "/"),
		Profile:           strings.TrimSpace(v.GetString(KeyProfile)),
		PollInterval:      v.GetDuration(KeyPollInterval),
		AdmissionInterval: v.GetDuration(KeyAdmissionInterval),
		CallDomain:        strings.TrimSpace(v.GetString(KeyCallDomain)),
		CallDuration:      v.GetDuration(KeyCallDuration),
		OpenBrowser:       v.GetBool(KeyCallOpenBrowser),
		LogPath:           v.GetString(KeyLogPath),
		Verbose:           v.GetBool(KeyLogVerbose),
		SessionStore:      strings.ToLower(strings.TrimSpace(v.GetString(KeySessionStore))),
		SessionDir:        v.GetString(KeySessionDir),
		SecretsDir:        v.GetString(KeySecretsDir),
		SecretsBackend:    strings.ToLower(strings.TrimSpace(v.GetString(KeySecretsBackend))),
		SessionsPath:      v.GetString(KeySessionsPath),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid %s %q", KeyBaseURL, c.BaseURL)
	}
	if c.Profile == "" || strings.ContainsAny(c.Profile, `/\`) {
		return fmt.Errorf("invalid %s %q", KeyProfile, c.Profile)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("%s must be positive", KeyPollInterval)
	}
	if c.AdmissionInterval <= 0 {
		return fmt.Errorf("%s must be positive", KeyAdmissionInterval)
	}
	if c.CallDomain == "" {
		return fmt.Errorf("%s is empty", KeyCallDomain)
	}
	switch c.SessionStore {
	case SessionStoreFile, SessionStoreMemory:
	default:
		return fmt.Errorf("unsupported %s %q (want %s or %s)", KeySessionStore, c.SessionStore, SessionStoreFile, SessionStoreMemory)
	}
	switch c.SecretsBackend {
	case SecretsBackendPass, SecretsBackendFile:
	default:
		return fmt.Errorf("unsupported %s %q (want %s or %s)", KeySecretsBackend, c.SecretsBackend, SecretsBackendPass, SecretsBackendFile)
	}

	return nil
}

// SecretKey namespaces a token name under the active profile.
func (c Config) SecretKey(name string) string {
	return "medicapp/" + c.Profile + "/" + name
}
