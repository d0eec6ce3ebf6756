package scraper

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"

	"github.com/alvarorichard/mediapoisk/internal/util"
)

const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/121.0"

// Fetcher retrieves one page body, decoded to UTF-8
type Fetcher interface {
	Fetch(ctx context.Context, url string, cookies ...*http.Cookie) ([]byte, error)
}

// ClientOptions configures HTTPClient
type ClientOptions struct {
	Timeout   time.Duration // per request
	Tries     int           // total attempts, at least one
	RetryWait time.Duration
	Transport http.RoundTripper
}

// HTTPClient is the resty-backed Fetcher used against the live site
type HTTPClient struct {
	client *resty.Client
	logger *log.Logger
}

// NewHTTPClient builds a client with per-request timeout and retry on
// transport errors and 5xx responses.
func NewHTTPClient(opts ClientOptions, logger *log.Logger) *HTTPClient {
	tries := opts.Tries
	if tries < 1 {
		tries = 1
	}
	wait := opts.RetryWait
	if wait <= 0 {
		wait = 500 * time.Millisecond
	}

	client := resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(tries-1).
		SetRetryWaitTime(wait).
		SetRetryMaxWaitTime(4*wait).
		SetHeader("User-Agent", UserAgent).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || (r != nil && r.StatusCode() >= http.StatusInternalServerError)
		})
	if opts.Transport != nil {
		client.SetTransport(opts.Transport)
	}

	if logger == nil {
		logger = util.Discard()
	}
	return &HTTPClient{client: client, logger: logger}
}

// Fetch GETs url with the given cookies attached to this request only and
// returns the body converted from the declared page charset.
func (c *HTTPClient) Fetch(ctx context.Context, url string, cookies ...*http.Cookie) ([]byte, error) {
	resp, err := c.get(ctx, url, cookies)
	if err != nil {
		return nil, err
	}

	raw := resp.Body()
	if len(raw) == 0 {
		return []byte{}, nil
	}
	enc, _, _ := charset.DetermineEncoding(raw, resp.Header().Get("Content-Type"))
	body, err := io.ReadAll(transform.NewReader(bytes.NewReader(raw), enc.NewDecoder()))
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", url)
	}
	return body, nil
}

// Download GETs url and returns the raw bytes, for binary payloads
func (c *HTTPClient) Download(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.get(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (c *HTTPClient) get(ctx context.Context, url string, cookies []*http.Cookie) (*resty.Response, error) {
	req := c.client.R().SetContext(ctx)
	if len(cookies) > 0 {
		req.SetCookies(cookies)
	}

	c.logger.Debug("fetching", "url", url)
	resp, err := req.Get(url)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, timeoutError(err, "timed out fetching %s", url)
		}
		return nil, unreachableError(err, "failed to fetch %s", url)
	}
	if resp.IsError() {
		return nil, unreachableError(errors.Errorf("server returned: %s", resp.Status()), "failed to fetch %s", url)
	}
	return resp, nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
