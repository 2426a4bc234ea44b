// Package retry wraps request execution with exponential backoff,
// retrying only the failures that are worth repeating: rate limits and
// transport errors. Exchange rejections and decode failures return
// immediately.
package retry

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v4"

	"github.com/DouglasGray/ftx-rest-client/pkg/ftxapi"
)

var MaxRetries uint64 = 101

// General retries op with exponential backoff until it succeeds, the
// retry budget runs out, or ctx is done.
func General(ctx context.Context, op backoff.Operation) error {
	return backoff.Retry(op, backoff.WithContext(
		backoff.WithMaxRetries(
			backoff.NewExponentialBackOff(),
			MaxRetries),
		ctx))
}

// retryable classifies err, marking the ones backoff should give up on
// as permanent.
func retryable(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *ftxapi.Error
	if !errors.As(err, &apiErr) {
		return backoff.Permanent(err)
	}

	switch apiErr.Kind() {
	case ftxapi.ErrRateLimitExceeded, ftxapi.ErrRequestExecutionFailed:
		return err
	}

	return backoff.Permanent(err)
}

// Execute sends a public request until it succeeds or fails with an
// error retrying cannot fix.
func Execute(ctx context.Context, client *ftxapi.Client, req ftxapi.PublicRequest) (*ftxapi.Response, error) {
	var resp *ftxapi.Response

	err := General(ctx, func() error {
		var err2 error
		resp, err2 = client.Execute(ctx, req)
		return retryable(err2)
	})

	return resp, err
}

// ExecuteSigned sends a private request until it succeeds or fails with
// an error retrying cannot fix. Each attempt is signed with a fresh
// timestamp.
func ExecuteSigned(ctx context.Context, client *ftxapi.AuthClient, req ftxapi.PrivateRequest) (*ftxapi.Response, error) {
	var resp *ftxapi.Response

	err := General(ctx, func() error {
		var err2 error
		resp, err2 = client.ExecuteSigned(ctx, req)
		return retryable(err2)
	})

	return resp, err
}
