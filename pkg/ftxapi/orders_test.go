package ftxapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DouglasGray/ftx-rest-client/pkg/types"
)

func TestGetOpenOrders_StrictAndPartialAgree(t *testing.T) {
	body := []byte(`{
  "success": true,
  "result": [
    {
      "createdAt": "2019-03-05T09:56:55.728933+00:00",
      "filledSize": 10,
      "future": "XRP-PERP",
      "id": 9596912,
      "market": "XRP-PERP",
      "price": 0.306525,
      "avgFillPrice": 0.306526,
      "remainingSize": 31421,
      "side": "sell",
      "size": 31431,
      "status": "open",
      "type": "limit",
      "reduceOnly": false,
      "ioc": false,
      "postOnly": false,
      "liquidation": false,
      "clientId": null
    }
  ]
}`)

	orders, err := Decode[[]Order](NewResponse(body))
	require.NoError(t, err)
	require.Len(t, orders, 1)

	partials, err := DecodePartial[[]OrderPartial](NewResponse(body))
	require.NoError(t, err)
	require.Len(t, partials, 1)

	fromPartial, err := partials[0].Strict()
	require.NoError(t, err)
	assert.Equal(t, orders[0], fromPartial)

	order := orders[0]
	assert.Equal(t, uint64(9596912), order.ID)
	assert.Nil(t, order.ClientID)
	assert.Equal(t, OrderStatusOpen, order.Status)
	assert.Equal(t, OrderTypeLimit, order.Type)
	require.NotNil(t, order.AvgFillPrice)
	assert.Equal(t, "0.306526", order.AvgFillPrice.String())
}

func TestGetOrderHistory_Response(t *testing.T) {
	body := []byte(`{
  "success": true,
  "result": [
    {
      "avgFillPrice": 10135.25,
      "clientId": null,
      "createdAt": "2019-06-27T15:24:03.101197+00:00",
      "filledSize": 0.001,
      "future": "BTC-PERP",
      "id": 257132591,
      "ioc": false,
      "market": "BTC-PERP",
      "postOnly": false,
      "liquidation": false,
      "price": 10135.25,
      "reduceOnly": false,
      "remainingSize": 0.0,
      "side": "buy",
      "size": 0.001,
      "status": "closed",
      "type": "limit"
    }
  ],
  "hasMoreData": false
}`)

	resp := NewResponse(body)

	orders, err := Decode[[]Order](resp)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, OrderStatusClosed, orders[0].Status)
	assert.True(t, orders[0].RemainingSize.IsZero())

	hasMore, err := resp.HasMoreData()
	require.NoError(t, err)
	assert.False(t, hasMore)
}

func TestPlaceOrder_StrictAndPartialAgree(t *testing.T) {
	body := []byte(`{
  "success": true,
  "result": {
    "createdAt": "2019-03-05T09:56:55.728933+00:00",
    "filledSize": 0,
    "future": "XRP-PERP",
    "id": 9596912,
    "market": "XRP-PERP",
    "price": 0.306525,
    "avgFillPrice": null,
    "remainingSize": 31431,
    "side": "sell",
    "size": 31431,
    "status": "open",
    "type": "limit",
    "reduceOnly": false,
    "ioc": false,
    "postOnly": false,
    "liquidation": false,
    "clientId": null
  }
}`)

	placed, err := Decode[OrderPlaced](NewResponse(body))
	require.NoError(t, err)

	partial, err := DecodePartial[OrderPlacedPartial](NewResponse(body))
	require.NoError(t, err)

	fromPartial, err := partial.Strict()
	require.NoError(t, err)
	assert.Equal(t, placed, fromPartial)

	assert.Nil(t, placed.AvgFillPrice)
	require.NotNil(t, placed.Liquidation)
	assert.False(t, *placed.Liquidation)
}

func TestPlaceOrder_LiquidationMayBeAbsent(t *testing.T) {
	body := []byte(`{
  "success": true,
  "result": {
    "createdAt": "2019-03-05T11:56:55.728933+00:00",
    "filledSize": 0,
    "future": "XRP-PERP",
    "id": 9596932,
    "market": "XRP-PERP",
    "price": 0.326525,
    "avgFillPrice": null,
    "remainingSize": 31431,
    "side": "sell",
    "size": 31431,
    "status": "open",
    "type": "limit",
    "reduceOnly": false,
    "ioc": false,
    "postOnly": false,
    "clientId": null
  }
}`)

	placed, err := Decode[OrderPlaced](NewResponse(body))
	require.NoError(t, err)
	assert.Nil(t, placed.Liquidation)
}

func TestGetOrderStatus_ClientID(t *testing.T) {
	body := []byte(`{
  "success": true,
  "result": {
    "createdAt": "2019-03-05T09:56:55.728933+00:00",
    "filledSize": 10,
    "future": "XRP-PERP",
    "id": 9596912,
    "market": "XRP-PERP",
    "price": 0.306525,
    "avgFillPrice": 0.306526,
    "remainingSize": 31421,
    "side": "sell",
    "size": 31431,
    "status": "open",
    "type": "limit",
    "reduceOnly": false,
    "ioc": false,
    "postOnly": false,
    "liquidation": false,
    "clientId": "your_client_order_id"
  }
}`)

	order, err := Decode[Order](NewResponse(body))
	require.NoError(t, err)
	require.NotNil(t, order.ClientID)
	assert.Equal(t, "your_client_order_id", *order.ClientID)

	partial, err := DecodePartial[OrderPartial](NewResponse(body))
	require.NoError(t, err)

	fromPartial, err := partial.Strict()
	require.NoError(t, err)
	assert.Equal(t, order, fromPartial)
}

func TestCancelOrder_Ack(t *testing.T) {
	body := []byte(`{"success": true, "result": "Order queued for cancelation"}`)

	ack, err := Decode[CancelAck](NewResponse(body))
	require.NoError(t, err)
	assert.Equal(t, CancelAck("Order queued for cancelation"), ack)

	body = []byte(`{"success": true, "result": "Orders queued for cancelation"}`)

	ack, err = Decode[CancelAck](NewResponse(body))
	require.NoError(t, err)
	assert.Equal(t, CancelAck("Orders queued for cancelation"), ack)
}

func TestOrderID_Paths(t *testing.T) {
	assert.Equal(t, "/orders/9596912", GetOrderStatusRequest{OrderID: ExchangeOrderID(9596912)}.Path())
	assert.Equal(t, "/orders/by_client_id/abc-1", GetOrderStatusRequest{OrderID: ClientOrderID("abc-1")}.Path())
	assert.Equal(t, "/orders/9596912/modify", EditOrderRequest{OrderID: ExchangeOrderID(9596912)}.Path())
	assert.Equal(t, "/orders/by_client_id/abc-1/modify", EditOrderRequest{OrderID: ClientOrderID("abc-1")}.Path())
	assert.Equal(t, "/orders/9596912", CancelOrderRequest{OrderID: ExchangeOrderID(9596912)}.Path())
}

func TestPlaceOrderRequest_Payload(t *testing.T) {
	price, err := types.NewPositiveDecimalFromString("8500")
	require.NoError(t, err)
	size, err := types.NewPositiveDecimalFromString("1")
	require.NoError(t, err)

	ioc := false

	req := PlaceOrderRequest{
		Market: "BTC-PERP",
		Side:   types.SideBuy,
		Price:  &price,
		Size:   size,
		Options: OrderOptions{
			IOC: &ioc,
		},
	}

	body, err := json.Marshal(req.Payload())
	require.NoError(t, err)
	assert.JSONEq(t, `{"market": "BTC-PERP", "side": "buy", "price": 8500, "size": 1, "ioc": false}`, string(body))
}

func TestPlaceOrderRequest_MarketOrderSendsNullPrice(t *testing.T) {
	size, err := types.NewPositiveDecimalFromString("0.5")
	require.NoError(t, err)

	req := PlaceOrderRequest{
		Market: "BTC-PERP",
		Side:   types.SideSell,
		Size:   size,
	}

	body, err := json.Marshal(req.Payload())
	require.NoError(t, err)
	assert.JSONEq(t, `{"market": "BTC-PERP", "side": "sell", "price": null, "size": 0.5}`, string(body))
}

func TestCancelAllOrdersRequest_Payload(t *testing.T) {
	limitOnly := true

	req := CancelAllOrdersRequest{
		Market:          "BTC-PERP",
		LimitOrdersOnly: &limitOnly,
	}

	body, err := json.Marshal(req.Payload())
	require.NoError(t, err)
	assert.JSONEq(t, `{"market": "BTC-PERP", "limitOrdersOnly": true}`, string(body))

	body, err = json.Marshal(CancelAllOrdersRequest{}.Payload())
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(body))
}
