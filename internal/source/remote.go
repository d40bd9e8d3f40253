package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

const (
	DefaultMaxRetryAttempts = 3
	DefaultTimeout          = 30 * time.Second
)

// Fetcher downloads tables published over HTTP.
type Fetcher struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
	retryDelay       time.Duration
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithRetryDelay sets the base delay between attempts.
func WithRetryDelay(delay time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.retryDelay = delay
	}
}

// NewFetcher creates a Fetcher. Each request times out after timeout, and a
// failed download is retried up to maxRetryAttempts times.
func NewFetcher(timeout time.Duration, maxRetryAttempts uint, opts ...FetcherOption) *Fetcher {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "text/csv, application/vnd.openxmlformats-officedocument.spreadsheetml.sheet, */*")

	f := &Fetcher{
		httpClient:       client,
		maxRetryAttempts: maxRetryAttempts,
		retryDelay:       100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Fetcher) Close() error {
	return f.httpClient.Close()
}

// Fetch downloads url. A 404 or 410 response is ErrSourceMissing and is not
// retried; server errors, rate limiting and transport failures are.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	var lastErr error
	if err := retry.Do(
		func() error {
			b, err := f.get(ctx, url)
			if err != nil {
				lastErr = err
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			body = b
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(f.maxRetryAttempts+1),
		retry.Delay(f.retryDelay),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.LastErrorOnly(true),
	); err != nil {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, err
	}
	return body, nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	res, err := f.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("client.R().Get(%s) > %w", url, err)
	}

	switch code := res.StatusCode(); {
	case code == http.StatusOK:
		return res.Bytes(), nil
	case code == http.StatusNotFound || code == http.StatusGone:
		return nil, fmt.Errorf("%w: %s returned %d", ErrSourceMissing, url, code)
	default:
		return nil, fmt.Errorf("response error %d: %s", code, url)
	}
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()

	if strings.Contains(errStr, "response error 5") || strings.Contains(errStr, "response error 429") {
		return true
	}

	// transport failures carry no status code
	return strings.Contains(errStr, "client.R().Get")
}

// IsURL reports whether location should be fetched over HTTP.
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
