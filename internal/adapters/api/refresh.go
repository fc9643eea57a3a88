package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/bnema/medicapp-cli/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errEmptyAccessToken = errors.New("refresh response missing access token")

// RefreshExchanger calls the refresh endpoint directly. It must not go through
// the Gateway, whose 401 handling would recurse into the session manager.
type RefreshExchanger struct {
	BaseURL        string
	HTTPClient     *http.Client
	Logger         *zap.Logger
	UserAgent      string
	RequestTimeout time.Duration
}

var _ ports.TokenExchanger = RefreshExchanger{}

func (e RefreshExchanger) Exchange(ctx context.Context, bearer string) (domain.TokenPair, error) {
	if bearer == "" {
		return domain.TokenPair{}, domain.ErrNoSession
	}

	baseURL, err := parseBaseURL(e.BaseURL)
	if err != nil {
		return domain.TokenPair{}, err
	}
	endpoint := baseURL.JoinPath(refreshPath).String()

	timeout := e.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	requestCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, nil)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("create refresh request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	userAgent := e.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)

	client := e.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	resp, err := client.Do(req)
	if err != nil {
		logger.Warn("token refresh failed", zap.String("request_id", requestID), zap.Error(err))
		return domain.TokenPair{}, fmt.Errorf("request token refresh: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	logger.Debug("token refresh", zap.String("request_id", requestID), zap.Int("status", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.TokenPair{}, fmt.Errorf("request token refresh: %w", decodeProblem(resp, requestID))
	}

	var pair domain.TokenPair
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&pair); err != nil {
		return domain.TokenPair{}, fmt.Errorf("decode refresh response: %w", err)
	}
	if pair.AccessToken == "" {
		return domain.TokenPair{}, errEmptyAccessToken
	}

	return pair, nil
}
