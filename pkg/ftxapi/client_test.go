package ftxapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DouglasGray/ftx-rest-client/pkg/testutil"
	"github.com/DouglasGray/ftx-rest-client/pkg/types"
)

func TestClient_ExecutePublic(t *testing.T) {
	var captured *http.Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(r.Context())
		_, _ = w.Write([]byte(`{"success": true, "result": []}`))
	}))
	defer server.Close()

	client, err := NewClientWithBaseURL(server.URL)
	require.NoError(t, err)

	resp, err := client.Execute(context.Background(), GetMarketsRequest{})
	require.NoError(t, err)

	_, err = Decode[[]Market](resp)
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "/api/markets", captured.URL.Path)
	assert.Empty(t, captured.URL.RawQuery)
	assert.Empty(t, captured.Header.Get(signHeader))
}

func TestClient_BodylessRequestCarriesNoContentType(t *testing.T) {
	var captured http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		_, _ = w.Write([]byte(`{"success": true, "result": []}`))
	}))
	defer server.Close()

	client, err := NewClientWithBaseURL(server.URL)
	require.NoError(t, err)

	_, err = client.Execute(context.Background(), GetMarketsRequest{})
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Empty(t, captured.Get("Content-Type"))
	assert.Equal(t, "application/json", captured.Get("Accept"))
}

func TestClient_PayloadRequestCarriesContentType(t *testing.T) {
	var captured http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		_, _ = w.Write([]byte(`{"success": true, "result": null}`))
	}))
	defer server.Close()

	client, err := NewClientWithBaseURL(server.URL)
	require.NoError(t, err)

	authClient, err := client.Auth("api-key", "T4lPid48QtjNxjLUFOcUZghD7CUJ7sTVsfuvQZF2", "")
	require.NoError(t, err)

	_, err = authClient.ExecuteSigned(context.Background(), CancelAllOrdersRequest{})
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, "application/json", captured.Get("Content-Type"))
}

func TestClient_QueryStringOmittedWhenEmpty(t *testing.T) {
	var requestURI string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestURI = r.RequestURI
		_, _ = w.Write([]byte(`{"success": true, "result": []}`))
	}))
	defer server.Close()

	client, err := NewClientWithBaseURL(server.URL)
	require.NoError(t, err)

	_, err = client.Execute(context.Background(), GetFuturesRequest{})
	require.NoError(t, err)

	assert.Equal(t, "/api/futures", requestURI)
	assert.NotContains(t, requestURI, "?")
}

func TestClient_QueryStringAppended(t *testing.T) {
	var requestURI string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestURI = r.RequestURI
		_, _ = w.Write([]byte(`{"success": true, "result": {"asks": [], "bids": []}}`))
	}))
	defer server.Close()

	client, err := NewClientWithBaseURL(server.URL)
	require.NoError(t, err)

	depth, err := NewBookDepth(20)
	require.NoError(t, err)

	_, err = client.Execute(context.Background(), GetOrderBookRequest{
		Market: "BTC-PERP",
		Depth:  &depth,
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/markets/BTC-PERP/orderbook?depth=20", requestURI)
}

func TestAuthClient_SignedHeaders(t *testing.T) {
	var captured http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		_, _ = w.Write([]byte(`{"success": true, "result": []}`))
	}))
	defer server.Close()

	client, err := NewClientWithBaseURL(server.URL)
	require.NoError(t, err)

	authClient, err := client.Auth("api-key", "YAGN-Np3au9igIMqIAPiJTF1zy9heo55_FNfYEru", "")
	require.NoError(t, err)

	ts, err := types.NewUnixTimestamp(1617659558822)
	require.NoError(t, err)

	_, err = authClient.executeSignedAt(context.Background(), GetBorrowRatesRequest{}, ts)
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, "api-key", captured.Get(keyHeader))
	assert.Equal(t, "1617659558822", captured.Get(tsHeader))
	assert.Equal(t,
		"421c580094ab840e832071c75602f1f7d1504901175589284e6ce81ff163ec0b",
		captured.Get(signHeader))
	assert.Empty(t, captured.Get(subaccountHeader))
}

func TestAuthClient_SignatureCoversBody(t *testing.T) {
	var (
		captured http.Header
		body     []byte
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		body, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"success": true, "result": null}`))
	}))
	defer server.Close()

	client, err := NewClientWithBaseURL(server.URL)
	require.NoError(t, err)

	authClient, err := client.Auth("api-key", "T4lPid48QtjNxjLUFOcUZghD7CUJ7sTVsfuvQZF2", "")
	require.NoError(t, err)

	ts, err := types.NewUnixTimestamp(1588591856950)
	require.NoError(t, err)

	payload := `{"market": "BTC-PERP", "side": "buy", "price": 8500, "size": 1, "type": "limit", "reduceOnly": false, "ioc": false, "postOnly": false, "clientId": null}`

	_, err = authClient.executeSignedAt(context.Background(), rawBodyRequest{body: payload}, ts)
	require.NoError(t, err)

	assert.Equal(t, payload, string(body))
	assert.Equal(t,
		"c4fbabaf178658a59d7bbf57678d44c369382f3da29138f04cd46d3d582ba4ba",
		captured.Get(signHeader))
}

// rawBodyRequest sends a verbatim body, bypassing payload marshalling.
type rawBodyRequest struct {
	privateRequest
	postRequest
	noQuery

	body string
}

func (rawBodyRequest) Path() string { return "/orders" }

func (r rawBodyRequest) Payload() interface{} { return r.body }

func TestClient_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": "Too many requests", "success": false}`))
	}))
	defer server.Close()

	client, err := NewClientWithBaseURL(server.URL)
	require.NoError(t, err)

	_, err = client.Execute(context.Background(), GetMarketsRequest{})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrRateLimitExceeded, apiErr.Kind())

	status, ok := apiErr.StatusCode()
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, status)
}

func TestClient_ErrorStatusStillDecodesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "No such market: ABC-PERP", "success": false}`))
	}))
	defer server.Close()

	client, err := NewClientWithBaseURL(server.URL)
	require.NoError(t, err)

	resp, err := client.Execute(context.Background(), GetMarketRequest{Market: "ABC-PERP"})
	require.NoError(t, err)

	_, err = Decode[Market](resp)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrRejectedByExchange, apiErr.Kind())
	assert.EqualError(t, apiErr.Unwrap(), "No such market: ABC-PERP")
}

func TestCastPayload(t *testing.T) {
	body, err := castPayload(nil)
	require.NoError(t, err)
	assert.Nil(t, body)

	body, err = castPayload("raw")
	require.NoError(t, err)
	assert.Equal(t, []byte("raw"), body)

	body, err = castPayload([]byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), body)

	body, err = castPayload(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(body))
}

func TestClient_GetMarkets_Integration(t *testing.T) {
	_, _, ok := testutil.IntegrationTestConfigured(t, "FTX")
	if !ok {
		t.SkipNow()
	}

	client := NewClient()

	resp, err := client.Execute(context.Background(), GetMarketsRequest{})
	require.NoError(t, err)

	markets, err := Decode[[]Market](resp)
	require.NoError(t, err)
	assert.NotEmpty(t, markets)
}
