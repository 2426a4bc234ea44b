package ftxapi

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/DouglasGray/ftx-rest-client/pkg/types"
)

// OrderType of a placed order.
type OrderType string

const (
	OrderTypeLimit  OrderType = "limit"
	OrderTypeMarket OrderType = "market"
)

// Param renders the order type as a query parameter value.
func (t OrderType) Param() string {
	return string(t)
}

// OrderStatus of an order on the exchange.
type OrderStatus string

const (
	OrderStatusNew    OrderStatus = "new"
	OrderStatusOpen   OrderStatus = "open"
	OrderStatusClosed OrderStatus = "closed"
)

// OrderID identifies an order by either the exchange issued id or the
// client supplied one. A client id always has a corresponding exchange
// issued id.
type OrderID struct {
	exchangeID uint64
	clientID   string
}

func ExchangeOrderID(id uint64) OrderID {
	return OrderID{exchangeID: id}
}

func ClientOrderID(id string) OrderID {
	return OrderID{clientID: id}
}

// pathSegment renders the id the way order endpoints embed it in their
// path: client ids go behind a by_client_id prefix.
func (id OrderID) pathSegment() string {
	if id.clientID != "" {
		return "by_client_id/" + id.clientID
	}

	return strconv.FormatUint(id.exchangeID, 10)
}

// OrderOptions are the optional flags accepted when placing an order.
// The zero value sends none of them.
type OrderOptions struct {
	IOC               *bool                `json:"ioc,omitempty"`
	PostOnly          *bool                `json:"postOnly,omitempty"`
	ReduceOnly        *bool                `json:"reduceOnly,omitempty"`
	RejectOnPriceBand *bool                `json:"rejectOnPriceBand,omitempty"`
	RejectAfterTs     *types.UnixTimestamp `json:"rejectAfterTs,omitempty"`
}

// EditOrderOptions are the changes applied when editing an order. At
// least one of price and size should be set.
type EditOrderOptions struct {
	Price    *types.PositiveDecimal `json:"price,omitempty"`
	Size     *types.PositiveDecimal `json:"size,omitempty"`
	ClientID string                 `json:"clientId,omitempty"`
}

// GetOpenOrdersRequest retrieves all open orders.
type GetOpenOrdersRequest struct {
	privateRequest
	getRequest
	noPayload

	Market string
}

func (GetOpenOrdersRequest) Path() string { return "/orders" }

func (r GetOpenOrdersRequest) Query() QueryParams {
	if r.Market == "" {
		return nil
	}

	return QueryParams{{"market", r.Market}}
}

// GetOrderHistoryRequest retrieves information on historical orders.
type GetOrderHistoryRequest struct {
	privateRequest
	getRequest
	noPayload

	Market    string
	Side      types.Side
	OrderType OrderType
	StartTime *types.UnixTimestamp
	EndTime   *types.UnixTimestamp
}

func (GetOrderHistoryRequest) Path() string { return "/orders/history" }

func (r GetOrderHistoryRequest) Query() QueryParams {
	var params QueryParams

	if r.Market != "" {
		params = append(params, QueryParam{"market", r.Market})
	}
	if r.Side != "" {
		params = append(params, QueryParam{"side", r.Side.Param()})
	}
	if r.OrderType != "" {
		params = append(params, QueryParam{"orderType", r.OrderType.Param()})
	}
	if r.StartTime != nil {
		params = append(params, QueryParam{"start_time", r.StartTime.String()})
	}
	if r.EndTime != nil {
		params = append(params, QueryParam{"end_time", r.EndTime.String()})
	}

	return params
}

// GetOrderStatusRequest retrieves the status of an order.
type GetOrderStatusRequest struct {
	privateRequest
	getRequest
	noQuery
	noPayload

	OrderID OrderID
}

func (r GetOrderStatusRequest) Path() string {
	return "/orders/" + r.OrderID.pathSegment()
}

// PlaceOrderRequest places an order. Leave Price nil when submitting a
// market order.
type PlaceOrderRequest struct {
	privateRequest
	postRequest
	noQuery

	Market   string
	Side     types.Side
	Price    *types.PositiveDecimal
	Size     types.PositiveDecimal
	ClientID string
	Options  OrderOptions
}

func (PlaceOrderRequest) Path() string { return "/orders" }

func (r PlaceOrderRequest) Payload() interface{} {
	return placeOrderPayload{
		Market:       r.Market,
		Side:         r.Side,
		Price:        r.Price,
		Size:         r.Size,
		ClientID:     r.ClientID,
		OrderOptions: r.Options,
	}
}

type placeOrderPayload struct {
	Market   string                 `json:"market"`
	Side     types.Side             `json:"side"`
	Price    *types.PositiveDecimal `json:"price"`
	Size     types.PositiveDecimal  `json:"size"`
	ClientID string                 `json:"clientId,omitempty"`
	OrderOptions
}

// EditOrderRequest edits an order. Exchange side this behaves like a
// cancel followed by a replacement.
type EditOrderRequest struct {
	privateRequest
	postRequest
	noQuery

	OrderID OrderID
	Options EditOrderOptions
}

func (r EditOrderRequest) Path() string {
	return "/orders/" + r.OrderID.pathSegment() + "/modify"
}

func (r EditOrderRequest) Payload() interface{} {
	return r.Options
}

// CancelOrderRequest cancels an order.
type CancelOrderRequest struct {
	privateRequest
	deleteRequest
	noQuery
	noPayload

	OrderID OrderID
}

func (r CancelOrderRequest) Path() string {
	return "/orders/" + r.OrderID.pathSegment()
}

// CancelAllOrdersRequest cancels all orders, optionally filtered down to
// one market or side.
type CancelAllOrdersRequest struct {
	privateRequest
	deleteRequest
	noQuery

	Market          string
	Side            types.Side
	LimitOrdersOnly *bool
}

func (CancelAllOrdersRequest) Path() string { return "/orders" }

func (r CancelAllOrdersRequest) Payload() interface{} {
	return cancelAllOrdersPayload{
		Market:          r.Market,
		Side:            r.Side,
		LimitOrdersOnly: r.LimitOrdersOnly,
	}
}

type cancelAllOrdersPayload struct {
	Market          string     `json:"market,omitempty"`
	Side            types.Side `json:"side,omitempty"`
	LimitOrdersOnly *bool      `json:"limitOrdersOnly,omitempty"`
}

// CancelAck is the free-form acknowledgement message cancel endpoints
// return as their payload.
type CancelAck string

type Order struct {
	ID            uint64            `json:"id"`
	ClientID      *string           `json:"clientId"`
	Market        string            `json:"market"`
	Future        *string           `json:"future"`
	Side          types.Side        `json:"side"`
	Size          decimal.Decimal   `json:"size"`
	Price         decimal.Decimal   `json:"price"`
	AvgFillPrice  *decimal.Decimal  `json:"avgFillPrice"`
	FilledSize    decimal.Decimal   `json:"filledSize"`
	RemainingSize decimal.Decimal   `json:"remainingSize"`
	Type          OrderType         `json:"type"`
	Status        OrderStatus       `json:"status"`
	ReduceOnly    bool              `json:"reduceOnly"`
	IOC           bool              `json:"ioc"`
	PostOnly      bool              `json:"postOnly"`
	Liquidation   bool              `json:"liquidation"`
	CreatedAt     types.DatetimeStr `json:"createdAt"`
}

// OrderPartial is Order with the volatile fields held as unparsed JSON.
type OrderPartial struct {
	ID            Json[uint64]             `json:"id"`
	ClientID      *string                  `json:"clientId"`
	Market        string                   `json:"market"`
	Future        *string                  `json:"future"`
	Side          Json[types.Side]         `json:"side"`
	Size          Json[decimal.Decimal]    `json:"size"`
	Price         Json[decimal.Decimal]    `json:"price"`
	AvgFillPrice  OptJson[decimal.Decimal] `json:"avgFillPrice"`
	FilledSize    Json[decimal.Decimal]    `json:"filledSize"`
	RemainingSize Json[decimal.Decimal]    `json:"remainingSize"`
	Type          Json[OrderType]          `json:"type"`
	Status        Json[OrderStatus]        `json:"status"`
	ReduceOnly    Json[bool]               `json:"reduceOnly"`
	IOC           Json[bool]               `json:"ioc"`
	PostOnly      Json[bool]               `json:"postOnly"`
	Liquidation   Json[bool]               `json:"liquidation"`
	CreatedAt     Json[types.DatetimeStr]  `json:"createdAt"`
}

// Strict decodes every deferred field, producing the value a full decode
// would have.
func (p OrderPartial) Strict() (Order, error) {
	var (
		o   Order
		err error
	)

	if o.ID, err = p.ID.Decode(); err != nil {
		return o, err
	}
	o.ClientID = p.ClientID
	o.Market = p.Market
	o.Future = p.Future
	if o.Side, err = p.Side.Decode(); err != nil {
		return o, err
	}
	if o.Size, err = p.Size.Decode(); err != nil {
		return o, err
	}
	if o.Price, err = p.Price.Decode(); err != nil {
		return o, err
	}
	if o.AvgFillPrice, err = p.AvgFillPrice.Decode(); err != nil {
		return o, err
	}
	if o.FilledSize, err = p.FilledSize.Decode(); err != nil {
		return o, err
	}
	if o.RemainingSize, err = p.RemainingSize.Decode(); err != nil {
		return o, err
	}
	if o.Type, err = p.Type.Decode(); err != nil {
		return o, err
	}
	if o.Status, err = p.Status.Decode(); err != nil {
		return o, err
	}
	if o.ReduceOnly, err = p.ReduceOnly.Decode(); err != nil {
		return o, err
	}
	if o.IOC, err = p.IOC.Decode(); err != nil {
		return o, err
	}
	if o.PostOnly, err = p.PostOnly.Decode(); err != nil {
		return o, err
	}
	if o.Liquidation, err = p.Liquidation.Decode(); err != nil {
		return o, err
	}
	if o.CreatedAt, err = p.CreatedAt.Decode(); err != nil {
		return o, err
	}

	return o, nil
}

// OrderPlaced is the record returned when placing or editing an order.
// Unlike Order, the liquidation flag may be absent.
type OrderPlaced struct {
	ID            uint64            `json:"id"`
	ClientID      *string           `json:"clientId"`
	Market        string            `json:"market"`
	Future        *string           `json:"future"`
	Side          types.Side        `json:"side"`
	Size          decimal.Decimal   `json:"size"`
	Price         decimal.Decimal   `json:"price"`
	AvgFillPrice  *decimal.Decimal  `json:"avgFillPrice"`
	FilledSize    decimal.Decimal   `json:"filledSize"`
	RemainingSize decimal.Decimal   `json:"remainingSize"`
	Type          OrderType         `json:"type"`
	Status        OrderStatus       `json:"status"`
	ReduceOnly    bool              `json:"reduceOnly"`
	IOC           bool              `json:"ioc"`
	PostOnly      bool              `json:"postOnly"`
	Liquidation   *bool             `json:"liquidation"`
	CreatedAt     types.DatetimeStr `json:"createdAt"`
}

type OrderPlacedPartial struct {
	ID            Json[uint64]             `json:"id"`
	ClientID      *string                  `json:"clientId"`
	Market        string                   `json:"market"`
	Future        *string                  `json:"future"`
	Side          Json[types.Side]         `json:"side"`
	Size          Json[decimal.Decimal]    `json:"size"`
	Price         Json[decimal.Decimal]    `json:"price"`
	AvgFillPrice  OptJson[decimal.Decimal] `json:"avgFillPrice"`
	FilledSize    Json[decimal.Decimal]    `json:"filledSize"`
	RemainingSize Json[decimal.Decimal]    `json:"remainingSize"`
	Type          Json[OrderType]          `json:"type"`
	Status        Json[OrderStatus]        `json:"status"`
	ReduceOnly    Json[bool]               `json:"reduceOnly"`
	IOC           Json[bool]               `json:"ioc"`
	PostOnly      Json[bool]               `json:"postOnly"`
	Liquidation   OptJson[bool]            `json:"liquidation"`
	CreatedAt     Json[types.DatetimeStr]  `json:"createdAt"`
}

func (p OrderPlacedPartial) Strict() (OrderPlaced, error) {
	var (
		o   OrderPlaced
		err error
	)

	if o.ID, err = p.ID.Decode(); err != nil {
		return o, err
	}
	o.ClientID = p.ClientID
	o.Market = p.Market
	o.Future = p.Future
	if o.Side, err = p.Side.Decode(); err != nil {
		return o, err
	}
	if o.Size, err = p.Size.Decode(); err != nil {
		return o, err
	}
	if o.Price, err = p.Price.Decode(); err != nil {
		return o, err
	}
	if o.AvgFillPrice, err = p.AvgFillPrice.Decode(); err != nil {
		return o, err
	}
	if o.FilledSize, err = p.FilledSize.Decode(); err != nil {
		return o, err
	}
	if o.RemainingSize, err = p.RemainingSize.Decode(); err != nil {
		return o, err
	}
	if o.Type, err = p.Type.Decode(); err != nil {
		return o, err
	}
	if o.Status, err = p.Status.Decode(); err != nil {
		return o, err
	}
	if o.ReduceOnly, err = p.ReduceOnly.Decode(); err != nil {
		return o, err
	}
	if o.IOC, err = p.IOC.Decode(); err != nil {
		return o, err
	}
	if o.PostOnly, err = p.PostOnly.Decode(); err != nil {
		return o, err
	}
	if o.Liquidation, err = p.Liquidation.Decode(); err != nil {
		return o, err
	}
	if o.CreatedAt, err = p.CreatedAt.Decode(); err != nil {
		return o, err
	}

	return o, nil
}
