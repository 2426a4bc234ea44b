package ftxapi

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies a client failure. Callers match on it to decide
// whether to back off and retry (ErrRateLimitExceeded) or abort
// (ErrRejectedByExchange and the rest).
type ErrorKind int

const (
	// ErrInvalidKeyLength means the private key cannot key an HMAC-SHA256
	// instance.
	ErrInvalidKeyLength ErrorKind = iota + 1

	// ErrInvalidHeaderValue means the public key or percent-encoded
	// subaccount name contains bytes that are not legal in an HTTP header
	// value.
	ErrInvalidHeaderValue

	// ErrInvalidURL means the resolved path and query parameters do not
	// form a valid URL.
	ErrInvalidURL

	// ErrInvalidPayload means the request body failed to serialize to
	// JSON.
	ErrInvalidPayload

	// ErrRequestBuildFailed means the HTTP request could not be
	// constructed.
	ErrRequestBuildFailed

	// ErrRequestExecutionFailed means the HTTP call itself failed. The
	// status code, when one was received, is on the error.
	ErrRequestExecutionFailed

	// ErrRateLimitExceeded means the exchange answered with HTTP 429.
	ErrRateLimitExceeded

	// ErrDeserializationFailed means the response parsed as neither a
	// success nor a failure envelope, or a payload field failed to
	// decode.
	ErrDeserializationFailed

	// ErrRejectedByExchange means the exchange returned a structured
	// business-level error rather than a transport failure.
	ErrRejectedByExchange
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidKeyLength:
		return "invalid private key length"
	case ErrInvalidHeaderValue:
		return "invalid header value"
	case ErrInvalidURL:
		return "invalid URL"
	case ErrInvalidPayload:
		return "failed to serialize request payload"
	case ErrRequestBuildFailed:
		return "failed to build request"
	case ErrRequestExecutionFailed:
		return "request failed"
	case ErrRateLimitExceeded:
		return "rate limits exceeded"
	case ErrDeserializationFailed:
		return "failed to deserialize response"
	case ErrRejectedByExchange:
		return "request rejected by the exchange"
	}

	return fmt.Sprintf("unknown error kind %d", int(k))
}

// Error is the single error type returned by this package. It pairs a
// kind with the underlying cause and, for execution failures, the HTTP
// status code.
type Error struct {
	kind       ErrorKind
	statusCode int
	cause      error
}

func newError(kind ErrorKind, cause error) *Error {
	return &Error{kind: kind, cause: cause}
}

// newStatusError classifies a failure observed with an HTTP status code.
// 429 is distinguished so callers can apply backoff; pass 0 when no
// status was received.
func newStatusError(statusCode int, cause error) *Error {
	kind := ErrRequestExecutionFailed
	if statusCode == http.StatusTooManyRequests {
		kind = ErrRateLimitExceeded
	}

	return &Error{kind: kind, statusCode: statusCode, cause: cause}
}

func (e *Error) Kind() ErrorKind {
	return e.kind
}

// StatusCode returns the HTTP status code attached to the error, if one
// was received.
func (e *Error) StatusCode() (int, bool) {
	return e.statusCode, e.statusCode != 0
}

func (e *Error) Error() string {
	if e.kind == ErrRequestExecutionFailed && e.statusCode != 0 {
		return fmt.Sprintf("request failed with status code %d", e.statusCode)
	}

	return e.kind.String()
}

func (e *Error) Unwrap() error {
	return e.cause
}
