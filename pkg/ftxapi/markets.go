package ftxapi

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/DouglasGray/ftx-rest-client/pkg/types"
)

// MarketType distinguishes spot pairs from futures.
type MarketType string

const (
	MarketTypeFuture MarketType = "future"
	MarketTypeSpot   MarketType = "spot"
)

// BookDepth is the number of orderbook levels to return, between 1 and
// 100.
type BookDepth int

func NewBookDepth(depth int) (BookDepth, error) {
	if depth < 1 || depth > 100 {
		return 0, errors.Errorf("book depth must be between 1 and 100, got %d", depth)
	}

	return BookDepth(depth), nil
}

// GetMarketsRequest retrieves info on all markets.
type GetMarketsRequest struct {
	publicRequest
	getRequest
	noQuery
	noPayload
}

func (GetMarketsRequest) Path() string { return "/markets" }

// GetMarketRequest retrieves info on a single market.
type GetMarketRequest struct {
	publicRequest
	getRequest
	noQuery
	noPayload

	Market string
}

func (r GetMarketRequest) Path() string {
	return "/markets/" + r.Market
}

// GetOrderBookRequest retrieves an orderbook snapshot for the provided
// market.
type GetOrderBookRequest struct {
	publicRequest
	getRequest
	noPayload

	Market string
	Depth  *BookDepth
}

func (r GetOrderBookRequest) Path() string {
	return fmt.Sprintf("/markets/%s/orderbook", r.Market)
}

func (r GetOrderBookRequest) Query() QueryParams {
	if r.Depth == nil {
		return nil
	}

	return QueryParams{{"depth", strconv.Itoa(int(*r.Depth))}}
}

// GetTradesRequest retrieves trades in some time frame for the provided
// market.
type GetTradesRequest struct {
	publicRequest
	getRequest
	noPayload

	Market    string
	StartTime *types.UnixTimestamp
	EndTime   *types.UnixTimestamp
}

func (r GetTradesRequest) Path() string {
	return fmt.Sprintf("/markets/%s/trades", r.Market)
}

func (r GetTradesRequest) Query() QueryParams {
	var params QueryParams

	if r.StartTime != nil {
		params = append(params, QueryParam{"start_time", r.StartTime.String()})
	}
	if r.EndTime != nil {
		params = append(params, QueryParam{"end_time", r.EndTime.String()})
	}

	return params
}

// GetCandlesRequest retrieves historical prices in some time frame for
// the provided market.
type GetCandlesRequest struct {
	publicRequest
	getRequest
	noPayload

	Market     string
	Resolution types.WindowLength
	StartTime  *types.UnixTimestamp
	EndTime    *types.UnixTimestamp
}

func (r GetCandlesRequest) Path() string {
	return fmt.Sprintf("/markets/%s/candles", r.Market)
}

func (r GetCandlesRequest) Query() QueryParams {
	params := QueryParams{
		{"resolution", strconv.FormatInt(r.Resolution.Seconds(), 10)},
	}

	if r.StartTime != nil {
		params = append(params, QueryParam{"start_time", r.StartTime.String()})
	}
	if r.EndTime != nil {
		params = append(params, QueryParam{"end_time", r.EndTime.String()})
	}

	return params
}

type Market struct {
	Type                  MarketType                 `json:"type"`
	Name                  string                     `json:"name"`
	Underlying            *string                    `json:"underlying"`
	BaseCurrency          *string                    `json:"baseCurrency"`
	QuoteCurrency         *string                    `json:"quoteCurrency"`
	Enabled               bool                       `json:"enabled"`
	Ask                   *types.Price               `json:"ask"`
	Bid                   *types.Price               `json:"bid"`
	Last                  *types.Price               `json:"last"`
	Price                 *types.Price               `json:"price"`
	PostOnly              bool                       `json:"postOnly"`
	PriceIncrement        types.PositiveDecimal      `json:"priceIncrement"`
	SizeIncrement         types.PositiveDecimal      `json:"sizeIncrement"`
	MinProvideSize        types.PositiveDecimal      `json:"minProvideSize"`
	TokenizedEquity       *bool                      `json:"tokenizedEquity"`
	Restricted            bool                       `json:"restricted"`
	HighLeverageFeeExempt *bool                      `json:"highLeverageFeeExempt"`
	PriceHigh24h          *types.Price               `json:"priceHigh24h"`
	PriceLow24h           *types.Price               `json:"priceLow24h"`
	Change1h              *decimal.Decimal           `json:"change1h"`
	Change24h             *decimal.Decimal           `json:"change24h"`
	ChangeBod             *decimal.Decimal           `json:"changeBod"`
	QuoteVolume24h        *types.NonNegativeDecimal  `json:"quoteVolume24h"`
	VolumeUsd24h          *types.NonNegativeDecimal  `json:"volumeUsd24h"`
	LargeOrderThreshold   types.Size                 `json:"largeOrderThreshold"`
	IsEtfMarket           bool                       `json:"isEtfMarket"`
}

// BookLevel is one orderbook level, sent on the wire as a [price, size]
// pair.
type BookLevel struct {
	Price types.Price
	Size  types.Size
}

func (l *BookLevel) UnmarshalJSON(data []byte) error {
	var level [2]types.PositiveDecimal
	if err := json.Unmarshal(data, &level); err != nil {
		return err
	}

	l.Price, l.Size = level[0], level[1]
	return nil
}

func (l BookLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]types.PositiveDecimal{l.Price, l.Size})
}

type OrderBook struct {
	Asks []BookLevel `json:"asks"`
	Bids []BookLevel `json:"bids"`
}

type Trade struct {
	ID          uint64            `json:"id"`
	Liquidation bool              `json:"liquidation"`
	Price       types.Price       `json:"price"`
	Side        types.Side        `json:"side"`
	Size        types.Size        `json:"size"`
	Time        types.DatetimeStr `json:"time"`
}

type Candle struct {
	Close     types.Price              `json:"close"`
	High      types.Price              `json:"high"`
	Low       types.Price              `json:"low"`
	Open      types.Price              `json:"open"`
	Volume    types.NonNegativeDecimal `json:"volume"`
	StartTime types.DatetimeStr        `json:"startTime"`
	Time      types.UnixTimestamp      `json:"time"`
}
