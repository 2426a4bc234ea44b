package ftxapi

import (
	"net/http"
	"net/url"
	"strings"
)

// QueryParam is one query string key/value pair.
type QueryParam struct {
	Key   string
	Value string
}

// QueryParams is an ordered list of query parameters. Order is preserved
// when the query string is built.
type QueryParams []QueryParam

// Encode renders the parameters as a percent-encoded query string,
// without a leading question mark. Empty parameters encode to the empty
// string.
func (q QueryParams) Encode() string {
	if len(q) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, p := range q {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}

	return sb.String()
}

// Request describes one REST endpoint call. Implementations live in this
// package; the contract is sealed through the PublicRequest and
// PrivateRequest markers.
type Request interface {
	// Method is the HTTP method in canonical uppercase form.
	Method() string

	// Path is the resolved request path, starting with a slash, without
	// the /api prefix or the query string.
	Path() string

	// Query returns the parameters to send, in order, or nil when there
	// are none. A request with no parameters must never produce a bare
	// question mark in its URL.
	Query() QueryParams

	// Payload returns the value serialized as the JSON request body, or
	// nil for a bodyless request.
	Payload() interface{}
}

// PublicRequest is a Request that needs no signature. Both Client and
// AuthClient can execute it.
type PublicRequest interface {
	Request
	public()
}

// PrivateRequest is a Request that must be signed. Only an AuthClient
// can execute it; handing one to a Client is a compile error.
type PrivateRequest interface {
	Request
	private()
}

// Markers embedded by endpoint request types. The unexported methods
// keep the contracts sealed to this package.
type publicRequest struct{}

func (publicRequest) public() {}

type privateRequest struct{}

func (privateRequest) private() {}

// Method defaults embedded by endpoint request types.
type getRequest struct{}

func (getRequest) Method() string { return http.MethodGet }

type postRequest struct{}

func (postRequest) Method() string { return http.MethodPost }

type deleteRequest struct{}

func (deleteRequest) Method() string { return http.MethodDelete }

// Defaults for requests without query parameters or a body.
type noQuery struct{}

func (noQuery) Query() QueryParams { return nil }

type noPayload struct{}

func (noPayload) Payload() interface{} { return nil }
