package application

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/medicapp-cli/internal/adapters/secrets/chain"
	"github.com/bnema/medicapp-cli/internal/domain"
	portmocks "github.com/bnema/medicapp-cli/internal/ports/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	accessKey  = "medicapp/default/access_token"
	refreshKey = "medicapp/default/refresh_token"
)

func TestSessionManagerSetAccessTokenPersistsAndClears(t *testing.T) {
	t.Parallel()

	sessionStore := portmocks.NewMockSecretStore(t)
	manager := NewSessionManager(sessionStore, nil, nil, SessionOptions{})

	sessionStore.EXPECT().Put(mock.Anything, accessKey, "a1").Return(nil).Once()
	sessionStore.EXPECT().Put(mock.Anything, accessKey, "a2").Return(nil).Once()
	sessionStore.EXPECT().Delete(mock.Anything, accessKey).Return(nil).Once()

	manager.SetAccessToken(context.Background(), "a1")
	manager.SetAccessToken(context.Background(), "a2")
	assert.Equal(t, "a2", manager.AccessToken())

	manager.SetAccessToken(context.Background(), "")
	assert.Empty(t, manager.AccessToken())
}

func TestSessionManagerKeepsTokenInMemoryWhenStoreFails(t *testing.T) {
	t.Parallel()

	sessionStore := portmocks.NewMockSecretStore(t)
	manager := NewSessionManager(sessionStore, nil, nil, SessionOptions{})

	sessionStore.EXPECT().Put(mock.Anything, accessKey, "a1").Return(errors.New("disk full")).Once()

	manager.SetAccessToken(context.Background(), "a1")
	assert.Equal(t, "a1", manager.AccessToken())
}

func TestSessionManagerRefreshTokenFallsBackToSessionStore(t *testing.T) {
	t.Parallel()

	durable := portmocks.NewMockSecretStore(t)
	sessionStore := portmocks.NewMockSecretStore(t)
	manager := NewSessionManager(sessionStore, chain.NewStore(durable, sessionStore), nil, SessionOptions{})

	durable.EXPECT().Put(mock.Anything, refreshKey, "r1").Return(errors.New("pass unavailable")).Once()
	sessionStore.EXPECT().Put(mock.Anything, refreshKey, "r1").Return(nil).Once()

	manager.SetRefreshToken(context.Background(), "r1")
	assert.Equal(t, "r1", manager.RefreshToken())
}

func TestSessionManagerRefreshUsesAccessTokenAsBearer(t *testing.T) {
	t.Parallel()

	sessionStore := portmocks.NewMockSecretStore(t)
	exchanger := portmocks.NewMockTokenExchanger(t)
	manager := NewSessionManager(sessionStore, nil, exchanger, SessionOptions{})

	sessionStore.EXPECT().Put(mock.Anything, accessKey, mock.Anything).Return(nil).Times(2)
	exchanger.EXPECT().Exchange(mock.Anything, "expired").Return(domain.TokenPair{AccessToken: "fresh"}, nil).Once()

	manager.SetAccessToken(context.Background(), "expired")

	require.True(t, manager.Refresh(context.Background()))
	assert.Equal(t, "fresh", manager.AccessToken())
}

func TestSessionManagerRefreshFallsBackToRefreshToken(t *testing.T) {
	t.Parallel()

	sessionStore := portmocks.NewMockSecretStore(t)
	refreshStore := portmocks.NewMockSecretStore(t)
	exchanger := portmocks.NewMockTokenExchanger(t)
	manager := NewSessionManager(sessionStore, refreshStore, exchanger, SessionOptions{})

	refreshStore.EXPECT().Put(mock.Anything, refreshKey, "r1").Return(nil).Once()
	exchanger.EXPECT().Exchange(mock.Anything, "r1").Return(domain.TokenPair{AccessToken: "a1"}, nil).Once()
	sessionStore.EXPECT().Put(mock.Anything, accessKey, "a1").Return(nil).Once()

	manager.SetRefreshToken(context.Background(), "r1")

	require.True(t, manager.Refresh(context.Background()))
	assert.Equal(t, domain.Session{AccessToken: "a1", RefreshToken: "r1"}, manager.Snapshot())
}

func TestSessionManagerRefreshFailureLeavesTokensUntouched(t *testing.T) {
	t.Parallel()

	sessionStore := portmocks.NewMockSecretStore(t)
	refreshStore := portmocks.NewMockSecretStore(t)
	exchanger := portmocks.NewMockTokenExchanger(t)
	manager := NewSessionManager(sessionStore, refreshStore, exchanger, SessionOptions{})

	sessionStore.EXPECT().Put(mock.Anything, accessKey, "expired").Return(nil).Once()
	refreshStore.EXPECT().Put(mock.Anything, refreshKey, "r1").Return(nil).Once()
	exchanger.EXPECT().Exchange(mock.Anything, "expired").Return(domain.TokenPair{}, errors.New("status 401")).Once()

	manager.SetAccessToken(context.Background(), "expired")
	manager.SetRefreshToken(context.Background(), "r1")

	assert.False(t, manager.Refresh(context.Background()))
	assert.Equal(t, domain.Session{AccessToken: "expired", RefreshToken: "r1"}, manager.Snapshot())
}

func TestSessionManagerRefreshWithoutCredentialsDoesNotCallServer(t *testing.T) {
	t.Parallel()

	exchanger := portmocks.NewMockTokenExchanger(t)
	manager := NewSessionManager(nil, nil, exchanger, SessionOptions{})

	assert.False(t, manager.Refresh(context.Background()))
}

type blockingExchanger struct {
	release  chan struct{}
	calls    atomic.Int32
	inFlight atomic.Int32
	maxSeen  atomic.Int32
}

func (e *blockingExchanger) Exchange(ctx context.Context, bearer string) (domain.TokenPair, error) {
	e.calls.Add(1)
	current := e.inFlight.Add(1)
	defer e.inFlight.Add(-1)
	for {
		seen := e.maxSeen.Load()
		if current <= seen || e.maxSeen.CompareAndSwap(seen, current) {
			break
		}
	}
	<-e.release
	return domain.TokenPair{AccessToken: "fresh"}, nil
}

func TestSessionManagerConcurrentRefreshSharesOneExchange(t *testing.T) {
	t.Parallel()

	exchanger := &blockingExchanger{release: make(chan struct{})}
	manager := NewSessionManager(nil, nil, exchanger, SessionOptions{})
	manager.SetAccessToken(context.Background(), "expired")

	const callers = 8
	results := make([]bool, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = manager.Refresh(context.Background())
		}(i)
	}

	require.Eventually(t, func() bool { return exchanger.calls.Load() >= 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(exchanger.release)
	wg.Wait()

	assert.Equal(t, int32(1), exchanger.maxSeen.Load(), "exchanges must never overlap")
	for _, ok := range results {
		assert.True(t, ok)
	}
	assert.Equal(t, "fresh", manager.AccessToken())
}

func TestSessionManagerRestoreReadsBothStores(t *testing.T) {
	t.Parallel()

	sessionStore := portmocks.NewMockSecretStore(t)
	refreshStore := portmocks.NewMockSecretStore(t)
	manager := NewSessionManager(sessionStore, refreshStore, nil, SessionOptions{})

	sessionStore.EXPECT().Get(mock.Anything, accessKey).Return("", domain.ErrSecretNotFound).Once()
	refreshStore.EXPECT().Get(mock.Anything, refreshKey).Return("r1\n", nil).Once()

	restored := manager.Restore(context.Background())
	assert.Equal(t, domain.Session{RefreshToken: "r1"}, restored)
	assert.False(t, restored.Authenticated())
}

func TestSessionManagerClearRemovesBothTokens(t *testing.T) {
	t.Parallel()

	sessionStore := portmocks.NewMockSecretStore(t)
	refreshStore := portmocks.NewMockSecretStore(t)
	manager := NewSessionManager(sessionStore, refreshStore, nil, SessionOptions{})

	sessionStore.EXPECT().Put(mock.Anything, accessKey, "a1").Return(nil).Once()
	refreshStore.EXPECT().Put(mock.Anything, refreshKey, "r1").Return(nil).Once()
	sessionStore.EXPECT().Delete(mock.Anything, accessKey).Return(nil).Once()
	refreshStore.EXPECT().Delete(mock.Anything, refreshKey).Return(nil).Once()

	manager.SetAccessToken(context.Background(), "a1")
	manager.SetRefreshToken(context.Background(), "r1")
	manager.Clear(context.Background())

	assert.True(t, manager.Snapshot().Empty())
}

func TestSessionManagerClaimsReadsUnverifiedToken(t *testing.T) {
	t.Parallel()

	expires := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "9",
		"role": "doctor",
		"exp":  expires.Unix(),
	}).SignedString([]byte("server-side-secret"))
	require.NoError(t, err)

	manager := NewSessionManager(nil, nil, nil, SessionOptions{})
	manager.SetAccessToken(context.Background(), token)

	claims, err := manager.Claims()
	require.NoError(t, err)
	assert.Equal(t, "9", claims.Subject)
	assert.Equal(t, "doctor", claims.Role)
	assert.True(t, claims.ExpiresAt.Equal(expires))
	assert.True(t, claims.Expired(expires.Add(time.Second)))
	assert.False(t, claims.Expired(expires.Add(-time.Minute)))
}

func TestSessionManagerClaimsWithoutTokenIsNoSession(t *testing.T) {
	t.Parallel()

	manager := NewSessionManager(nil, nil, nil, SessionOptions{})
	_, err := manager.Claims()
	require.ErrorIs(t, err, domain.ErrNoSession)
}
