package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/bnema/medicapp-cli/internal/ports"
	"github.com/patrickmn/go-cache"
)

// Store is a process-lifetime secret store. Entries expire after ttl; a zero
// ttl keeps them until the process exits.
type Store struct {
	cache *cache.Cache
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(ttl time.Duration) *Store {
	expiration := cache.NoExpiration
	cleanup := time.Duration(0)
	if ttl > 0 {
		expiration = ttl
		cleanup = ttl
	}

	return &Store{cache: cache.New(expiration, cleanup)}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cache.Set(key, value, cache.DefaultExpiration)
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if x, found := s.cache.Get(key); found {
		return x.(string), nil
	}
	return "", fmt.Errorf("memory secret %q: %w", key, domain.ErrSecretNotFound)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cache.Delete(key)
	return nil
}

// Flush drops every entry, which is what closing a browser tab does to
// session storage.
func (s *Store) Flush() {
	s.cache.Flush()
}
