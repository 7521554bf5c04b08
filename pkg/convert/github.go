package convert

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Defaults for the GitHub markdown endpoint.
const (
	GitHubName        = "github"
	DefaultEndpoint   = "https://api.github.com/markdown/raw"
	DefaultAPIVersion = "2022-11-28"
	DefaultUserAgent  = "go-partyreport"
	DefaultTimeout    = 30 * time.Second
)

// GitHubOption configures the GitHub converter.
type GitHubOption func(*GitHub)

// WithEndpoint overrides the conversion URL.
func WithEndpoint(endpoint string) GitHubOption {
	return func(g *GitHub) {
		if endpoint = strings.TrimSpace(endpoint); endpoint != "" {
			g.endpoint = endpoint
		}
	}
}

// WithToken sets the credential sent in the Authorization header.
func WithToken(token string) GitHubOption {
	return func(g *GitHub) {
		g.token = strings.TrimSpace(token)
	}
}

// WithAPIVersion pins the X-GitHub-Api-Version header.
func WithAPIVersion(version string) GitHubOption {
	return func(g *GitHub) {
		if version = strings.TrimSpace(version); version != "" {
			g.apiVersion = version
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(agent string) GitHubOption {
	return func(g *GitHub) {
		if agent = strings.TrimSpace(agent); agent != "" {
			g.userAgent = agent
		}
	}
}

// WithTimeout bounds the whole request. Zero keeps the default.
func WithTimeout(timeout time.Duration) GitHubOption {
	return func(g *GitHub) {
		if timeout > 0 {
			g.timeout = timeout
		}
	}
}

// WithHTTPClient injects a resty client, mainly for tests. The client is used
// as configured: its retry and timeout settings are left alone, and the
// converter timeout is applied to each request's context instead.
func WithHTTPClient(client *resty.Client) GitHubOption {
	return func(g *GitHub) {
		g.client = client
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *zap.Logger) GitHubOption {
	return func(g *GitHub) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// GitHub posts Markdown to GitHub's raw markdown endpoint. Requests are never
// retried.
type GitHub struct {
	client     *resty.Client
	endpoint   string
	token      string
	apiVersion string
	userAgent  string
	timeout    time.Duration
	logger     *zap.Logger
}

var _ Converter = (*GitHub)(nil)

// NewGitHub constructs the remote converter.
func NewGitHub(options ...GitHubOption) *GitHub {
	g := &GitHub{
		endpoint:   DefaultEndpoint,
		apiVersion: DefaultAPIVersion,
		userAgent:  DefaultUserAgent,
		timeout:    DefaultTimeout,
		logger:     zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	if g.client == nil {
		g.client = resty.New().
			SetRetryCount(0).
			SetTimeout(g.timeout)
	}
	return g
}

// Name implements Converter.
func (g *GitHub) Name() string {
	return GitHubName
}

// Convert implements Converter. The response body is read in full and returned
// whatever the status; only a missing response yields an error, wrapping
// ErrTransport.
func (g *GitHub) Convert(ctx context.Context, markdown string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req := g.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("X-GitHub-Api-Version", g.apiVersion).
		SetHeader("Content-Type", "text/plain").
		SetHeader("User-Agent", g.userAgent).
		SetBody(markdown)
	if auth := authorization(g.token); auth != "" {
		req.SetHeader("Authorization", auth)
	}

	g.logger.Debug("converting markdown",
		zap.String("endpoint", g.endpoint),
		zap.Int("bytes", len(markdown)),
		zap.Bool("authenticated", g.token != ""),
	)

	resp, err := req.Post(g.endpoint)
	if err != nil {
		return Result{}, fmt.Errorf("%w: POST %s: %w", ErrTransport, g.endpoint, err)
	}

	g.logger.Debug("markdown converted",
		zap.Int("status", resp.StatusCode()),
		zap.Duration("elapsed", resp.Time()),
	)
	return Result{Body: string(resp.Body()), StatusCode: resp.StatusCode()}, nil
}

// authorization prefixes bare tokens with the Bearer scheme.
func authorization(token string) string {
	switch {
	case token == "":
		return ""
	case hasScheme(token, "bearer "), hasScheme(token, "token "):
		return token
	default:
		return "Bearer " + token
	}
}

func hasScheme(token, scheme string) bool {
	return len(token) > len(scheme) && strings.EqualFold(token[:len(scheme)], scheme)
}
