package feeds

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"resty.dev/v3"
)

// HTTPSource reads the public hotel feeds.
type HTTPSource struct {
	cfg     Config
	origin  string
	timeout time.Duration
	client  *resty.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewHTTPSource creates a source for the hotel at origin (e.g. https://www.habbo.com).
func NewHTTPSource(cfg Config, origin string, logger *zap.Logger) *HTTPSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "wardrobe/1.0"
	}

	// Retries belong to the cache layer.
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/xml,application/json,text/plain;q=0.9,*/*;q=0.8")

	return &HTTPSource{
		cfg:     cfg,
		origin:  strings.TrimSuffix(origin, "/"),
		timeout: timeout,
		client:  client,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}
}

// Name implements Source.
func (s *HTTPSource) Name() string { return SourceHTTP }

// VariablesURL returns the listing used to discover the base location.
func (s *HTTPSource) VariablesURL() string {
	if s.cfg.VariablesURL != "" {
		return s.cfg.VariablesURL
	}
	return s.origin + "/gamedata/external_variables/1"
}

// Location returns the URL of doc relative to base.
func (s *HTTPSource) Location(base string, doc Document) string {
	switch doc {
	case FigureData:
		return Resolve(base, orDefault(s.cfg.FigureDataPath, "figuredata.xml"))
	case FigureMap:
		return Resolve(base, orDefault(s.cfg.FigureMapPath, "figuremap.xml"))
	default:
		if s.cfg.FurniDataURL != "" {
			return Resolve(base, s.cfg.FurniDataURL)
		}
		return s.origin + "/gamedata/furnidata_json/1"
	}
}

// ResolveBase implements Source.
func (s *HTTPSource) ResolveBase(ctx context.Context) (string, error) {
	body, err := s.get(ctx, s.VariablesURL())
	if err != nil {
		return "", err
	}
	return ParseBase(body, s.cfg.BaseKey)
}

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context, base string, doc Document) ([]byte, error) {
	return s.get(ctx, s.Location(base, doc))
}

func (s *HTTPSource) get(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUpstreamTimeout, url, err)
	}

	start := time.Now()
	resp, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, fmt.Errorf("%w: %s: %v", ErrUpstreamTimeout, url, err)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrUpstreamUnavailable, url, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: %s: status %s", ErrUpstreamUnavailable, url, resp.Status())
	}

	body := resp.Bytes()
	s.logger.Debug("Fetched feed document",
		zap.String("url", url),
		zap.Int("bytes", len(body)),
		zap.Duration("took", time.Since(start)))
	return body, nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
