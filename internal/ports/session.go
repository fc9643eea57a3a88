package ports

import (
	"context"

	"github.com/bnema/medicapp-cli/internal/domain"
)

// TokenExchanger trades a bearer credential for a fresh access token.
type TokenExchanger interface {
	Exchange(ctx context.Context, bearer string) (domain.TokenPair, error)
}

// SessionTokens is the slice of the session manager the HTTP gateway needs.
type SessionTokens interface {
	AccessToken() string
	SetAccessToken(ctx context.Context, token string)
	Refresh(ctx context.Context) bool
	Clear(ctx context.Context)
}
