package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/bnema/medicapp-cli/internal/ports"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	defaultAccessTokenKey  = "medicapp/default/access_token"
	defaultRefreshTokenKey = "medicapp/default/refresh_token"
	refreshFlightKey       = "refresh"
)

type SessionOptions struct {
	AccessTokenKey  string
	RefreshTokenKey string
	Logger          *zap.Logger
}

// SessionManager owns the access/refresh token pair. The two setters are the
// only mutation path; every other component reads through it.
type SessionManager struct {
	// writeMu orders setters so memory and stores agree on the last write.
	writeMu sync.Mutex
	mu      sync.RWMutex
	session domain.Session

	sessionStore ports.SecretStore
	refreshStore ports.SecretStore
	exchanger    ports.TokenExchanger
	flight       singleflight.Group

	accessKey  string
	refreshKey string
	logger     *zap.Logger
}

var _ ports.SessionTokens = (*SessionManager)(nil)

// NewSessionManager wires the short-lived store for the access token and the
// long-lived store (already chained to its fallback) for the refresh token.
func NewSessionManager(sessionStore ports.SecretStore, refreshStore ports.SecretStore, exchanger ports.TokenExchanger, opts SessionOptions) *SessionManager {
	m := &SessionManager{
		sessionStore: sessionStore,
		refreshStore: refreshStore,
		exchanger:    exchanger,
		accessKey:    opts.AccessTokenKey,
		refreshKey:   opts.RefreshTokenKey,
		logger:       opts.Logger,
	}
	if m.accessKey == "" {
		m.accessKey = defaultAccessTokenKey
	}
	if m.refreshKey == "" {
		m.refreshKey = defaultRefreshTokenKey
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}

	return m
}

func (m *SessionManager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.AccessToken
}

func (m *SessionManager) RefreshToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.RefreshToken
}

func (m *SessionManager) Snapshot() domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// SetAccessToken never fails: a store error leaves the token in memory and
// is logged as a warning.
func (m *SessionManager) SetAccessToken(ctx context.Context, token string) {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	m.mu.Lock()
	m.session.AccessToken = token
	m.mu.Unlock()

	m.persist(ctx, m.sessionStore, m.accessKey, token, "access")
}

// SetRefreshToken behaves like SetAccessToken against the long-lived store.
func (m *SessionManager) SetRefreshToken(ctx context.Context, token string) {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	m.mu.Lock()
	m.session.RefreshToken = token
	m.mu.Unlock()

	m.persist(ctx, m.refreshStore, m.refreshKey, token, "refresh")
}

// Refresh exchanges the current access token (or the refresh token when no
// access token is held) for a new access token. Concurrent callers share one
// exchange. Failure leaves both tokens untouched.
func (m *SessionManager) Refresh(ctx context.Context) bool {
	result, _, _ := m.flight.Do(refreshFlightKey, func() (any, error) {
		return m.refresh(context.WithoutCancel(ctx)), nil
	})

	ok, _ := result.(bool)
	return ok
}

func (m *SessionManager) refresh(ctx context.Context) bool {
	if m.exchanger == nil {
		return false
	}

	snapshot := m.Snapshot()
	bearer := snapshot.AccessToken
	if bearer == "" {
		bearer = snapshot.RefreshToken
	}
	if bearer == "" {
		m.logger.Debug("refresh skipped: no credential held")
		return false
	}

	pair, err := m.exchanger.Exchange(ctx, bearer)
	if err != nil {
		m.logger.Warn("token refresh failed", zap.Error(err))
		return false
	}

	m.SetAccessToken(ctx, pair.AccessToken)
	if pair.RefreshToken != "" {
		m.SetRefreshToken(ctx, pair.RefreshToken)
	}
	m.logger.Info("access token refreshed")
	return true
}

// Restore loads whatever the stores still hold, e.g. after a restart.
func (m *SessionManager) Restore(ctx context.Context) domain.Session {
	access := m.load(ctx, m.sessionStore, m.accessKey, "access")
	refresh := m.load(ctx, m.refreshStore, m.refreshKey, "refresh")

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = domain.Session{AccessToken: access, RefreshToken: refresh}
	return m.session
}

// Clear drops both tokens from memory and from the stores.
func (m *SessionManager) Clear(ctx context.Context) {
	m.SetAccessToken(ctx, "")
	m.SetRefreshToken(ctx, "")
}

type TokenClaims struct {
	Subject   string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token carried an expiry that is behind now.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// Claims decodes the access token without verifying its signature. The
// server stays authoritative; this only feeds status output.
func (m *SessionManager) Claims() (TokenClaims, error) {
	token := m.AccessToken()
	if token == "" {
		return TokenClaims{}, domain.ErrNoSession
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenClaims{}, fmt.Errorf("parse access token: %w", err)
	}

	var out TokenClaims
	if subject, err := claims.GetSubject(); err == nil {
		out.Subject = subject
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if issued, err := claims.GetIssuedAt(); err == nil && issued != nil {
		out.IssuedAt = issued.Time
	}
	if expires, err := claims.GetExpirationTime(); err == nil && expires != nil {
		out.ExpiresAt = expires.Time
	}

	return out, nil
}

func (m *SessionManager) persist(ctx context.Context, store ports.SecretStore, key string, token string, kind string) {
	if store == nil {
		return
	}

	var err error
	if token == "" {
		err = store.Delete(ctx, key)
	} else {
		err = store.Put(ctx, key, token)
	}
	if err != nil {
		m.logger.Warn("token store unavailable, keeping token in memory only",
			zap.String("token", kind),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func (m *SessionManager) load(ctx context.Context, store ports.SecretStore, key string, kind string) string {
	if store == nil {
		return ""
	}

	value, err := store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrSecretNotFound) {
			m.logger.Warn("token store read failed", zap.String("token", kind), zap.Error(err))
		}
		return ""
	}

	return strings.TrimSpace(value)
}
