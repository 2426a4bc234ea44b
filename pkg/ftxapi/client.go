package ftxapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/DouglasGray/ftx-rest-client/pkg/types"
)

const defaultHTTPTimeout = time.Second * 15

const RestBaseURL = "https://ftx.com"

const apiPathPrefix = "/api"

var logger = logrus.WithField("exchange", "ftx")

// Client executes public requests. Wrap it with Auth to execute private
// ones.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func NewClient() *Client {
	c, err := NewClientWithBaseURL(RestBaseURL)
	if err != nil {
		panic(err)
	}
	return c
}

func NewClientWithBaseURL(baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, newError(ErrInvalidURL, err)
	}

	return &Client{
		baseURL: u,
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
	}, nil
}

// SetHttpClient replaces the underlying HTTP client, e.g. to tune
// timeouts or inject a transport.
func (c *Client) SetHttpClient(client *http.Client) {
	c.httpClient = client
}

// Auth wraps the client with signing credentials. Credentials are
// validated once here, not per request.
func (c *Client) Auth(key, secret, subAccount string) (*AuthClient, error) {
	auth, err := NewAuthenticator(key, secret, subAccount)
	if err != nil {
		return nil, err
	}

	return &AuthClient{Client: c, auth: auth}, nil
}

// Execute sends a public request and returns its undecoded response.
func (c *Client) Execute(ctx context.Context, req PublicRequest) (*Response, error) {
	httpReq, _, _, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	return c.send(httpReq)
}

// AuthClient executes private requests. It embeds Client, so public
// requests go through it unchanged.
type AuthClient struct {
	*Client

	auth *Authenticator
}

// ExecuteSigned sends a private request with signature headers attached.
func (c *AuthClient) ExecuteSigned(ctx context.Context, req PrivateRequest) (*Response, error) {
	return c.executeSignedAt(ctx, req, types.UnixTimestampNow())
}

func (c *AuthClient) executeSignedAt(ctx context.Context, req PrivateRequest, ts types.UnixTimestamp) (*Response, error) {
	httpReq, pathWithQuery, body, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	headers := c.auth.SignHeaders(ts, req.Method(), pathWithQuery, body)
	for key, values := range headers {
		for _, value := range values {
			httpReq.Header.Set(key, value)
		}
	}

	return c.send(httpReq)
}

// newRequest builds the outgoing HTTP request. The returned path
// carries the encoded query but not the api prefix, matching what the
// signature covers.
func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, string, []byte, error) {
	pathWithQuery := req.Path()
	if q := req.Query().Encode(); q != "" {
		pathWithQuery += "?" + q
	}

	rel, err := url.Parse(apiPathPrefix + pathWithQuery)
	if err != nil {
		return nil, "", nil, newError(ErrInvalidURL, err)
	}

	body, err := castPayload(req.Payload())
	if err != nil {
		return nil, "", nil, newError(ErrInvalidPayload, err)
	}

	fullURL := c.baseURL.ResolveReference(rel)

	httpReq, err := http.NewRequestWithContext(ctx, req.Method(), fullURL.String(), bytes.NewReader(body))
	if err != nil {
		return nil, "", nil, newError(ErrRequestBuildFailed, err)
	}

	// Content-Type only makes sense when a body is attached. Bodyless
	// GETs and DELETEs go out without it.
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")

	return httpReq, pathWithQuery, body, nil
}

// send executes the request and reads the whole body. Rate limiting is
// the only status handled here; other failure statuses still carry an
// envelope and are surfaced by the decode step instead.
func (c *Client) send(req *http.Request) (*Response, error) {
	logger.Debugf("%s %s", req.Method, req.URL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newError(ErrRequestExecutionFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newStatusError(resp.StatusCode, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, newStatusError(resp.StatusCode, errors.New(string(body)))
	}

	logger.Debugf("%s %s: status %d, %d bytes", req.Method, req.URL, resp.StatusCode, len(body))

	return NewResponse(body), nil
}

func castPayload(payload interface{}) ([]byte, error) {
	switch v := payload.(type) {
	case nil:
		return nil, nil

	case string:
		return []byte(v), nil

	case []byte:
		return v, nil

	default:
		return json.Marshal(v)
	}
}
