package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/logger"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/metrics"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/utils"
)

// Fetcher retrieves a JSON document.
type Fetcher interface {
	FetchJSON(ctx context.Context, url string) ([]byte, error)
}

// Client is the HTTP client for the banner list, detail and catalog endpoints.
// Each fetch is a single attempt.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// NewClient creates a client with the given timeout and user agent.
func NewClient(timeout time.Duration, userAgent string) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		HTTP:      &http.Client{Timeout: timeout},
		UserAgent: userAgent,
	}
}

// FetchJSON performs a GET and returns the body. Transport failures and non-2xx
// statuses are ErrUpstreamUnavailable; a body that is not JSON is ErrUpstreamSchema.
func (c *Client) FetchJSON(ctx context.Context, rawURL string) ([]byte, error) {
	host := hostOf(rawURL)
	start := time.Now()
	defer func() {
		metrics.UpstreamRequestDuration.WithLabelValues(host).Observe(time.Since(start).Seconds())
	}()

	logger.FromContext(ctx).Debug(LogMsgFetching, "url", rawURL)
	body, err := c.get(ctx, rawURL, AcceptJSON, MaxResponseBytes)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(host, metrics.OutcomeUnavailable).Inc()
		logger.FromContext(ctx).Warn(LogMsgFetchFailed, "url", rawURL, "error", err)
		return nil, err
	}
	if !json.Valid(body) {
		metrics.UpstreamRequestsTotal.WithLabelValues(host, metrics.OutcomeSchema).Inc()
		return nil, fmt.Errorf("%w: "+ErrMsgInvalidJSON, domain.ErrUpstreamSchema, rawURL)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(host, metrics.OutcomeOK).Inc()
	return body, nil
}

// FetchList fetches a banner list envelope and returns its stubs in upstream
// order with the localized name removed.
func (c *Client) FetchList(ctx context.Context, rawURL string) ([]domain.RawBannerStub, error) {
	body, err := c.FetchJSON(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return ParseList(rawURL, body)
}

// ParseList validates a list envelope: retcode must be 0 and data.list an array.
func ParseList(source string, body []byte) ([]domain.RawBannerStub, error) {
	retcode := gjson.GetBytes(body, PathRetcode)
	if !retcode.Exists() || retcode.Int() != 0 {
		msg := gjson.GetBytes(body, PathMessage).String()
		return nil, fmt.Errorf("%w: "+ErrMsgRetcode, domain.ErrUpstreamSchema, source, retcode.Int(), msg)
	}

	list := gjson.GetBytes(body, PathList)
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: "+ErrMsgMissingList, domain.ErrUpstreamSchema, source)
	}

	var stubs []domain.RawBannerStub
	if err := utils.DecodeJSON([]byte(list.Raw), &stubs); err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgDecodeList, domain.ErrUpstreamSchema, source, err)
	}
	out := make([]domain.RawBannerStub, 0, len(stubs))
	for _, stub := range stubs {
		if stub == nil {
			continue
		}
		delete(stub, domain.StubFieldName)
		out = append(out, stub)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, rawURL, accept string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgBuildRequest, domain.ErrUpstreamUnavailable, rawURL, err)
	}
	req.Header.Set(HeaderUserAgent, c.UserAgent)
	if accept != "" {
		req.Header.Set(HeaderAccept, accept)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: "+ErrMsgStatus, domain.ErrUpstreamUnavailable, rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: "+ErrMsgTooLarge, domain.ErrUpstreamSchema, rawURL, limit)
	}
	return body, nil
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return u.Host
}
