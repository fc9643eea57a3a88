package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/bnema/medicapp-cli/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxResponseBytes      = 1 << 20
	defaultRequestTimeout = 30 * time.Second
	defaultUserAgent      = "medicapp-cli"

	loginPath    = "/auth/login"
	registerPath = "/auth/register"
	refreshPath  = "/auth/refresh"

	requestIDHeader = "X-Request-ID"
)

// Request describes one API call. Body is JSON-encoded; Payload is sent as-is
// with PayloadType as its content type (empty means no header at all).
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Body        any
	Payload     io.Reader
	PayloadType string
	// Public requests may be sent without an access token.
	Public bool
}

type Options struct {
	BaseURL        string
	HTTPClient     *http.Client
	Logger         *zap.Logger
	UserAgent      string
	RequestTimeout time.Duration
}

// Gateway is the only way requests reach the backend. It attaches the bearer
// token and turns 401 answers into credential errors, a single transparent
// refresh and replay, or a session expiry.
type Gateway struct {
	baseURL        *url.URL
	httpClient     *http.Client
	session        ports.SessionTokens
	logger         *zap.Logger
	userAgent      string
	requestTimeout time.Duration

	mu        sync.RWMutex
	onExpired func(ctx context.Context)
}

func NewGateway(session ports.SessionTokens, opts Options) (*Gateway, error) {
	if session == nil {
		return nil, errors.New("session is required")
	}
	baseURL, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	g := &Gateway{
		baseURL:        baseURL,
		httpClient:     opts.HTTPClient,
		session:        session,
		logger:         opts.Logger,
		userAgent:      opts.UserAgent,
		requestTimeout: opts.RequestTimeout,
	}
	if g.httpClient == nil {
		g.httpClient = http.DefaultClient
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	if g.userAgent == "" {
		g.userAgent = defaultUserAgent
	}
	if g.requestTimeout <= 0 {
		g.requestTimeout = defaultRequestTimeout
	}

	return g, nil
}

// OnSessionExpired registers the hook run after the session was cleared
// because it could not be renewed.
func (g *Gateway) OnSessionExpired(hook func(ctx context.Context)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onExpired = hook
}

func (g *Gateway) Do(ctx context.Context, req Request, out any) error {
	token := g.session.AccessToken()
	if token == "" && !req.Public {
		return domain.ErrNoSession
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return err
	}
	endpoint, err := g.endpoint(req.Path, req.Query)
	if err != nil {
		return err
	}

	for attempt := 1; ; attempt++ {
		resp, requestID, err := g.send(ctx, req.Method, endpoint, body, contentType, token, attempt)
		if err != nil {
			return fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
		}

		if resp.StatusCode != http.StatusUnauthorized {
			defer func() { _ = resp.Body.Close() }()
			return decodeResponse(resp, requestID, out)
		}
		drainAndClose(resp)

		switch {
		case isCredentialsPath(req.Path):
			g.session.SetAccessToken(ctx, "")
			return domain.ErrCredentialsInvalid
		case isRefreshPath(req.Path), attempt > 1:
			g.expire(ctx, req.Path, attempt)
			return domain.ErrSessionExpired
		}

		if !g.session.Refresh(ctx) {
			g.expire(ctx, req.Path, attempt)
			return domain.ErrSessionExpired
		}
		token = g.session.AccessToken()
	}
}

func (g *Gateway) send(ctx context.Context, method string, endpoint string, body []byte, contentType string, token string, attempt int) (*http.Response, string, error) {
	requestCtx, cancel := g.requestContext(ctx)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		cancel()
		return nil, "", fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", g.userAgent)
	httpReq.Header.Set(requestIDHeader, requestID)
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" && method != http.MethodGet {
		httpReq.Header.Set("Content-Type", contentType)
	}

	started := time.Now()
	resp, err := g.httpClient.Do(httpReq)
	fields := []zap.Field{
		zap.String("method", method),
		zap.String("path", httpReq.URL.Path),
		zap.Int("attempt", attempt),
		zap.String("request_id", requestID),
		zap.Duration("elapsed", time.Since(started)),
	}
	if err != nil {
		cancel()
		g.logger.Warn("api request failed", append(fields, zap.Error(err))...)
		return nil, requestID, err
	}
	g.logger.Debug("api request", append(fields, zap.Int("status", resp.StatusCode))...)

	resp.Body = cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, requestID, nil
}

func (g *Gateway) expire(ctx context.Context, path string, attempt int) {
	g.logger.Info("session expired", zap.String("path", path), zap.Int("attempt", attempt))
	g.session.Clear(ctx)

	g.mu.RLock()
	hook := g.onExpired
	g.mu.RUnlock()
	if hook != nil {
		hook(ctx)
	}
}

func (g *Gateway) endpoint(path string, query url.Values) (string, error) {
	if !strings.HasPrefix(path, "/") {
		return "", fmt.Errorf("api path %q must start with /", path)
	}

	endpoint := *g.baseURL
	endpoint.Path = strings.TrimRight(g.baseURL.Path, "/") + path
	endpoint.RawQuery = query.Encode()
	return endpoint.String(), nil
}

func (g *Gateway) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.requestTimeout)
}

func encodeBody(req Request) ([]byte, string, error) {
	if req.Payload != nil {
		// Read once so a replay after refresh sends the same bytes.
		data, err := io.ReadAll(req.Payload)
		if err != nil {
			return nil, "", fmt.Errorf("read request payload: %w", err)
		}
		return data, req.PayloadType, nil
	}
	if req.Body == nil {
		if req.Method != http.MethodGet {
			return nil, "application/json", nil
		}
		return nil, "", nil
	}

	data, err := json.Marshal(req.Body)
	if err != nil {
		return nil, "", fmt.Errorf("encode request body: %w", err)
	}
	return data, "application/json", nil
}

func decodeResponse(resp *http.Response, requestID string, out any) error {
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeProblem(resp, requestID)
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	body := io.LimitReader(resp.Body, maxResponseBytes)
	if isJSON(resp.Header.Get("Content-Type")) {
		if out == nil {
			_, _ = io.Copy(io.Discard, body)
			return nil
		}
		if err := json.NewDecoder(body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	switch target := out.(type) {
	case nil:
		return nil
	case *string:
		*target = string(data)
		return nil
	case *[]byte:
		*target = data
		return nil
	default:
		return fmt.Errorf("unexpected content type %q", resp.Header.Get("Content-Type"))
	}
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(contentType, "application/json")
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func isCredentialsPath(path string) bool {
	return strings.HasPrefix(path, loginPath) || strings.HasPrefix(path, registerPath)
}

func isRefreshPath(path string) bool {
	return strings.HasPrefix(path, refreshPath)
}

func parseBaseURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, errors.New("api base url is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return nil, errors.New("api base url host is required")
	}
	return parsed, nil
}

func drainAndClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
	_ = resp.Body.Close()
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
