package ftxapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const futureFixture = `{
      "name": "BTC-MOVE-0402",
      "underlying": "BTC",
      "description": "Bitcoin MOVE 2022-04-02 Contracts",
      "type": "move",
      "expiry": "2022-04-03T00:00:00+00:00",
      "perpetual": false,
      "expired": false,
      "enabled": true,
      "postOnly": false,
      "priceIncrement": 1,
      "sizeIncrement": 0.0001,
      "last": 299,
      "bid": 294,
      "ask": 304,
      "index": 46088.731248179,
      "mark": 299,
      "imfFactor": 0.002,
      "lowerBound": 1,
      "upperBound": 4881,
      "underlyingDescription": "Bitcoin",
      "expiryDescription": "Today",
      "moveStart": "2022-04-02T00:00:00+00:00",
      "marginPrice": 46088.731248179,
      "positionLimitWeight": 2,
      "group": "daily",
      "change1h": 0.31140350877192985,
      "change24h": -0.6210392902408112,
      "changeBod": -0.6238993710691824,
      "volumeUsd24h": 361892.0658,
      "volume": 566.0078,
      "openInterest": 507.2044,
      "openInterestUsd": 151654.1156
    }`

func TestGetFutures_Response(t *testing.T) {
	body := `{"success": true, "result": [` + futureFixture + `]}`

	futures, err := DecodeStrictFields[[]Future](NewResponse([]byte(body)))
	require.NoError(t, err)
	require.Len(t, futures, 1)

	f := futures[0]
	assert.Equal(t, "BTC-MOVE-0402", f.Name)
	assert.Equal(t, FutureTypeMove, f.Type)
	assert.Equal(t, FutureGroupDaily, f.Group)
	assert.False(t, f.Perpetual)
	require.NotNil(t, f.Expiry)
	require.NotNil(t, f.MoveStart)
	require.NotNil(t, f.Change24h)
	assert.True(t, f.Change24h.IsNegative())
}

func TestGetFuture_Response(t *testing.T) {
	body := `{"success": true, "result": ` + futureFixture + `}`

	f, err := DecodeStrictFields[Future](NewResponse([]byte(body)))
	require.NoError(t, err)
	assert.Equal(t, "BTC-MOVE-0402", f.Name)
}

func TestGetFutureStats_Response(t *testing.T) {
	body := []byte(`{
  "success": true,
  "result": {
    "volume": 1000.23,
    "nextFundingRate": 0.00025,
    "nextFundingTime": "2019-03-29T03:00:00+00:00",
    "expirationPrice": 3992.1,
    "predictedExpirationPrice": 3993.6,
    "strikePrice": 8182.35,
    "openInterest": 21124.583
  }
}`)

	stats, err := DecodeStrictFields[FutureStats](NewResponse(body))
	require.NoError(t, err)

	assert.Equal(t, "1000.23", stats.Volume.String())
	require.NotNil(t, stats.NextFundingRate)
	assert.Equal(t, "0.00025", stats.NextFundingRate.String())
	require.NotNil(t, stats.StrikePrice)
	assert.Equal(t, "8182.35", stats.StrikePrice.String())
}

func TestGetFundingRates_Response(t *testing.T) {
	body := []byte(`{
  "success": true,
  "result": [
    {
      "future": "BTC-PERP",
      "rate": 0.0025,
      "time": "2019-06-02T08:00:00+00:00"
    }
  ]
}`)

	rates, err := DecodeStrictFields[[]FundingRate](NewResponse(body))
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, "BTC-PERP", rates[0].Future)
	assert.Equal(t, "0.0025", rates[0].Rate.String())
}

func TestGetExpiredFutures_Response(t *testing.T) {
	body := []byte(`{
  "success": true,
  "result": [
    {
      "name": "BTC-MOVE-WK-0401",
      "underlying": "BTC",
      "description": "Bitcoin Weekly MOVE 2022-04-01 Contracts",
      "type": "move",
      "expiry": "2022-04-02T00:00:00+00:00",
      "perpetual": false,
      "expired": true,
      "enabled": false,
      "postOnly": false,
      "priceIncrement": 1,
      "sizeIncrement": 0.0001,
      "last": null,
      "bid": null,
      "ask": null,
      "index": 46300.342396571,
      "mark": 1883.99287306601,
      "imfFactor": 0.002,
      "lowerBound": 1,
      "upperBound": 6561,
      "underlyingDescription": "Bitcoin",
      "expiryDescription": "2022-04-01",
      "moveStart": "2022-03-26T00:00:00+00:00",
      "marginPrice": 46300.342396571,
      "positionLimitWeight": 2,
      "group": "weekly"
    }
  ]
}`)

	futures, err := DecodeStrictFields[[]ExpiredFuture](NewResponse(body))
	require.NoError(t, err)
	require.Len(t, futures, 1)

	f := futures[0]
	assert.True(t, f.Expired)
	assert.False(t, f.Enabled)
	assert.Nil(t, f.Last)
	assert.Nil(t, f.Bid)
	assert.Equal(t, FutureGroupWeekly, f.Group)
}

func TestGetFundingRatesRequest_Query(t *testing.T) {
	assert.Empty(t, GetFundingRatesRequest{}.Query().Encode())

	req := GetFundingRatesRequest{Perpetual: "BTC-PERP"}
	assert.Equal(t, "future=BTC-PERP", req.Query().Encode())
}
