package upstream

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"numroute/internal/domain/entity"
	"numroute/pkg/logx"
)

const DefaultMaxAttempts = 2

type fetcher interface {
	Fetch(ctx context.Context, url string) (Response, error)
}

// AttemptObserver is told about every finished attempt.
type AttemptObserver interface {
	ObserveAttempt(apiURL string, elapsed time.Duration, err error)
}

// Client runs up to maxAttempts sequential fetches with no delay between
// them and stops at the first success.
type Client struct {
	fetcher     fetcher
	maxAttempts int
	observer    AttemptObserver
}

func NewClient(f fetcher, maxAttempts int) *Client {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}

	return &Client{
		fetcher:     f,
		maxAttempts: maxAttempts,
	}
}

func (c *Client) WithObserver(observer AttemptObserver) *Client {
	c.observer = observer
	return c
}

// FetchWithRetries returns the call record on success and failure alike. A
// failed attempt's message stays in LastError even when a later attempt
// succeeds.
func (c *Client) FetchWithRetries(ctx context.Context, url string) (entity.ContactPayload, entity.UpstreamCall, error) {
	call := entity.UpstreamCall{APIURL: url}

	var (
		payload entity.ContactPayload
		lastErr error
	)

	operation := func() error {
		call.Attempts++

		resp, err := c.fetcher.Fetch(ctx, url)
		c.observe(url, resp, err)

		if err != nil {
			lastErr = err
			call.LastError = err.Error()
			call.Status = 0

			var fetchErr *FetchError
			if errors.As(err, &fetchErr) {
				call.Status = fetchErr.Status
				call.AttemptTimings = append(call.AttemptTimings, fetchErr.Elapsed)
			}

			logger(ctx).Debug("upstream attempt failed",
				slog.Int(logx.FieldAttempt, call.Attempts),
				slog.String(logx.FieldURL, url),
				logx.Error(err),
			)

			return err
		}

		payload = resp.Payload
		call.Status = resp.Status
		call.Elapsed = resp.Elapsed
		call.AttemptTimings = append(call.AttemptTimings, resp.Elapsed)

		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(&backoff.ZeroBackOff{}, uint64(c.maxAttempts-1)), //nolint:gosec // maxAttempts >= 1
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		if lastErr == nil {
			lastErr = err
			call.LastError = err.Error()
		}

		return entity.ContactPayload{}, call, &ExhaustedError{Call: call, last: lastErr}
	}

	return payload, call, nil
}

func (c *Client) observe(url string, resp Response, err error) {
	if c.observer == nil {
		return
	}

	elapsed := resp.Elapsed

	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		elapsed = fetchErr.Elapsed
	}

	c.observer.ObserveAttempt(url, elapsed, err)
}
