package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/medicapp-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/medicapp-cli/internal/adapters/secrets/pass"
	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/bnema/medicapp-cli/internal/ports"
)

// Store holds a token in the primary store, or in the fallback when the
// primary is unusable. Deletes reach both.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}
	return store
}

func NewStoreChecked(primary ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	switch {
	case primary == nil:
		return nil, errNilPrimaryStore
	case fallback == nil:
		return nil, errNilFallbackStore
	}
	return &Store{primary: primary, fallback: fallback}, nil
}

// NewDurable keeps refresh tokens in pass, or in files under fileRoot.
func NewDurable(fileRoot string) (*Store, error) {
	return NewStoreChecked(passstore.NewStore(), filestore.NewStore(fileRoot))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	switch {
	case err == nil:
		_ = s.fallback.Delete(ctx, key)
		return nil
	case interrupted(err):
		return err
	}

	if fallbackErr := s.fallback.Put(ctx, key, value); fallbackErr != nil {
		return bothFailed("put", key, err, fallbackErr)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	token, err := s.primary.Get(ctx, key)
	if err == nil || interrupted(err) {
		return token, err
	}

	token, fallbackErr := s.fallback.Get(ctx, key)
	switch {
	case fallbackErr == nil:
		return token, nil
	case errors.Is(err, domain.ErrSecretNotFound) && errors.Is(fallbackErr, domain.ErrSecretNotFound):
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	}
	return "", bothFailed("get", key, err, fallbackErr)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if interrupted(err) {
		return err
	}

	fallbackErr := s.fallback.Delete(ctx, key)
	switch {
	case err != nil && fallbackErr != nil:
		return bothFailed("delete", key, err, fallbackErr)
	case err != nil:
		return fmt.Errorf("delete %q: primary store: %w", key, err)
	case fallbackErr != nil:
		return fmt.Errorf("delete %q: fallback store: %w", key, fallbackErr)
	}
	return nil
}

func bothFailed(op string, key string, primaryErr error, fallbackErr error) error {
	return fmt.Errorf("%s %q: primary store: %w; fallback store: %w", op, key, primaryErr, fallbackErr)
}

func interrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
