package ftxapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams_Encode(t *testing.T) {
	params := QueryParams{
		{"market", "BTC-PERP"},
		{"start_time", "1559881511"},
		{"end_time", "1559881711"},
	}

	assert.Equal(t, "market=BTC-PERP&start_time=1559881511&end_time=1559881711", params.Encode())
}

func TestQueryParams_EncodePreservesOrder(t *testing.T) {
	params := QueryParams{
		{"z", "1"},
		{"a", "2"},
	}

	assert.Equal(t, "z=1&a=2", params.Encode())
}

func TestQueryParams_EncodeEscapes(t *testing.T) {
	params := QueryParams{
		{"market", "BTC/USD"},
	}

	assert.Equal(t, "market=BTC%2FUSD", params.Encode())
}

func TestQueryParams_EncodeEmpty(t *testing.T) {
	assert.Equal(t, "", QueryParams(nil).Encode())
	assert.Equal(t, "", QueryParams{}.Encode())
}

func TestRequestDefaults(t *testing.T) {
	req := GetMarketsRequest{}

	assert.Equal(t, http.MethodGet, req.Method())
	assert.Equal(t, "/markets", req.Path())
	assert.Empty(t, req.Query())
	assert.Nil(t, req.Payload())
}

func TestRequestMethods(t *testing.T) {
	assert.Equal(t, http.MethodPost, PlaceOrderRequest{}.Method())
	assert.Equal(t, http.MethodDelete, CancelAllOrdersRequest{}.Method())
}
