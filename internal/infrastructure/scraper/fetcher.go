package scraper

import (
	"compress/gzip"
	"compress/zlib"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/drivespec/backend/internal/domain"
)

// RetryPolicy bounds fetch attempts and spaces them out. Backoff is linear:
// 1s after the first failure, growing by 1s per subsequent failure.
type RetryPolicy struct {
	MaxAttempts int
}

// Backoff returns the sleep duration after the given failed attempt (1-based).
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	return time.Duration(attempt) * time.Second
}

// FetcherConfig holds configuration for the page fetcher
type FetcherConfig struct {
	UserAgent         string
	MaxRetries        int
	AttemptTimeout    time.Duration
	RequestsPerMinute int
}

// Fetcher retrieves manufacturer pages over HTTP. Each attempt carries a
// browser-like header set; manufacturer sites tend to block obvious bots.
// Retries are bounded by the retry policy with linear backoff between
// attempts. The fetcher keeps no state between calls.
type Fetcher struct {
	httpClient  *http.Client
	userAgent   string
	policy      RetryPolicy
	timeout     time.Duration
	rateLimiter *rate.Limiter
	sleep       func(ctx context.Context, d time.Duration) error
}

// NewFetcher creates a new page fetcher
func NewFetcher(config FetcherConfig) *Fetcher {
	maxAttempts := config.MaxRetries
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	timeout := config.AttemptTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	rpm := config.RequestsPerMinute
	if rpm <= 0 {
		rpm = 30
	}
	limiter := rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 5)

	return &Fetcher{
		httpClient:  &http.Client{},
		userAgent:   config.UserAgent,
		policy:      RetryPolicy{MaxAttempts: maxAttempts},
		timeout:     timeout,
		rateLimiter: limiter,
		sleep:       sleepCtx,
	}
}

// Fetch performs a GET against the URL, retrying failed attempts per the
// retry policy. Any transport error or non-2xx status fails the attempt.
// When all attempts fail, the last error is wrapped in domain.ErrFetchFailed.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= f.policy.MaxAttempts; attempt++ {
		if attempt > 1 {
			if err := f.sleep(ctx, f.policy.Backoff(attempt-1)); err != nil {
				return nil, err
			}
		}

		if err := f.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		logrus.WithFields(logrus.Fields{
			"url":     url,
			"attempt": attempt,
		}).Debug("fetching product page")

		body, err := f.doAttempt(ctx, url)
		if err != nil {
			lastErr = err
			logrus.WithFields(logrus.Fields{
				"url":     url,
				"attempt": attempt,
			}).WithError(err).Warn("fetch attempt failed")
			continue
		}

		return body, nil
	}

	return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, lastErr)
}

// doAttempt runs a single GET bounded by the per-attempt timeout
func (f *Fetcher) doAttempt(ctx context.Context, url string) ([]byte, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	req.Header.Set("Connection", "keep-alive")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	reader, err := decompress(resp)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// decompress returns a reader yielding the decoded response body. Setting
// Accept-Encoding explicitly switches off the transport's transparent
// decompression, so compressed bodies must be decoded here.
func decompress(resp *http.Response) (io.ReadCloser, error) {
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		reader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode gzip body: %w", err)
		}
		return reader, nil
	case "deflate":
		reader, err := zlib.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode deflate body: %w", err)
		}
		return reader, nil
	default:
		return resp.Body, nil
	}
}

// sleepCtx sleeps for d unless the context is cancelled first
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
