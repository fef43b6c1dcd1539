package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/dmitrijs2005/libadmin/internal/client/models"
	"github.com/dmitrijs2005/libadmin/internal/common"
	"github.com/dmitrijs2005/libadmin/internal/logging"
	"github.com/dmitrijs2005/libadmin/internal/netx"
	"golang.org/x/sync/singleflight"
)

// DefaultRefreshPath is the backend endpoint that exchanges the refresh
// cookie for a new access token.
const DefaultRefreshPath = common.APIPrefix + "/auth/refresh"

// refreshTimeout bounds a coalesced refresh, which no single caller owns.
const refreshTimeout = 30 * time.Second

// TokenStore is the persisted Credential as seen by the Gateway.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
}

// ScreenFunc reports the screen the user is currently on.
type ScreenFunc func() string

type Gateway struct {
	baseURL     string
	httpClient  *http.Client
	tokens      TokenStore
	log         logging.Logger
	progress    Progress
	screen      ScreenFunc
	noRefreshOn map[string]bool
	refreshPath string
	coalesce    bool
	refreshes   singleflight.Group
}

type Option func(*Gateway)

// WithHTTPClient replaces the default client (30s timeout, in-memory cookie
// jar for the refresh cookie).
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.httpClient = c }
}

func WithLogger(l logging.Logger) Option {
	return func(g *Gateway) { g.log = l }
}

func WithProgress(p Progress) Option {
	return func(g *Gateway) { g.progress = p }
}

// WithScreen installs the current-screen lookup. While the user is on one of
// screens (default "login" and "register") a 401 is returned without refresh.
func WithScreen(f ScreenFunc, screens ...string) Option {
	return func(g *Gateway) {
		g.screen = f
		if len(screens) > 0 {
			g.noRefreshOn = make(map[string]bool, len(screens))
			for _, s := range screens {
				g.noRefreshOn[s] = true
			}
		}
	}
}

func WithRefreshPath(path string) Option {
	return func(g *Gateway) { g.refreshPath = path }
}

// WithCoalescedRefresh makes concurrent 401s share a single refresh call.
func WithCoalescedRefresh() Option {
	return func(g *Gateway) { g.coalesce = true }
}

func New(baseURL string, tokens TokenStore, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL:     baseURL,
		tokens:      tokens,
		log:         logging.Discard(),
		progress:    nopProgress{},
		noRefreshOn: map[string]bool{"login": true, "register": true},
		refreshPath: DefaultRefreshPath,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.httpClient == nil {
		jar, _ := cookiejar.New(nil)
		g.httpClient = &http.Client{Timeout: 30 * time.Second, Jar: jar}
	}
	return g
}

// Send performs req and resolves to a normalized response; see the package
// documentation for the refresh-and-retry rules.
func (g *Gateway) Send(ctx context.Context, req Request) *Response {
	g.progress.Start()
	defer g.progress.Done()

	token, err := g.tokens.Token(ctx)
	if err != nil {
		g.log.Warn(ctx, "credential unavailable, sending without it", "error", err)
	}

	resp := g.do(ctx, req, token)
	if !g.shouldRefresh(req, resp) {
		return resp
	}

	newToken, err := g.refresh(ctx)
	if err != nil {
		g.log.Warn(ctx, "token refresh failed", "request_id", req.ID, "path", req.Path, "error", err)
		return resp
	}

	return g.do(ctx, req.WithRetried(), newToken)
}

func (g *Gateway) shouldRefresh(req Request, resp *Response) bool {
	if resp.Status != http.StatusUnauthorized || req.Retried {
		return false
	}
	if g.screen != nil && g.noRefreshOn[g.screen()] {
		return false
	}
	return true
}

// refresh obtains and persists a new token. With coalescing enabled,
// concurrent callers share one call and its result.
func (g *Gateway) refresh(ctx context.Context) (string, error) {
	if !g.coalesce {
		return g.callRefresh(ctx)
	}
	// The shared call is detached from the first caller's cancellation and
	// bounded by refreshTimeout; each waiter still stops on its own ctx.
	ch := g.refreshes.DoChan("refresh", func() (any, error) {
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()
		return g.callRefresh(shared)
	})
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", common.ErrRefreshFailed, ctx.Err())
	case r := <-ch:
		if r.Err != nil {
			return "", r.Err
		}
		return r.Val.(string), nil
	}
}

func (g *Gateway) callRefresh(ctx context.Context) (string, error) {
	current, _ := g.tokens.Token(ctx)

	// Marked as retried so a 401 from the refresh endpoint never recurses.
	resp := g.do(ctx, Get(g.refreshPath).WithRetried(), current)

	var result models.RefreshResult
	if err := resp.Decode(&result); err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrRefreshFailed, err)
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", common.ErrRefreshFailed)
	}

	if err := g.tokens.SetToken(ctx, result.AccessToken); err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrRefreshFailed, err)
	}
	g.log.Info(ctx, "access token refreshed")
	return result.AccessToken, nil
}

// do sends one HTTP request without any retry logic.
func (g *Gateway) do(ctx context.Context, req Request, token string) *Response {
	target, err := netx.JoinURL(g.baseURL, req.Path, req.Query)
	if err != nil {
		return transportFailure(err)
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return transportFailure(fmt.Errorf("failed to create request: %w", err))
	}

	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.ID != "" {
		httpReq.Header.Set(common.RequestIDHeaderName, req.ID)
	}
	if token != "" {
		httpReq.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	started := time.Now()
	httpResp, err := g.httpClient.Do(httpReq)
	if err != nil {
		switch {
		case errors.Is(ctx.Err(), context.Canceled):
			err = fmt.Errorf("request canceled: %w", err)
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			err = fmt.Errorf("request timed out: %w", err)
		}
		g.log.Debug(ctx, "request failed", "method", req.Method, "path", req.Path, "request_id", req.ID, "error", err)
		return transportFailure(err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return transportFailure(fmt.Errorf("failed to read response: %w", err))
	}

	g.log.Debug(ctx, "request done",
		"method", req.Method,
		"path", req.Path,
		"status", httpResp.StatusCode,
		"request_id", req.ID,
		"retried", req.Retried,
		"elapsed", time.Since(started),
	)

	return newResponse(httpResp.StatusCode, httpResp.Header, raw)
}
