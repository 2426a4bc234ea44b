package ftxapi

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/DouglasGray/ftx-rest-client/pkg/types"
)

// FillType distinguishes fills originating from orders and OTC
// conversions.
type FillType string

const (
	FillTypeOrder FillType = "order"
	FillTypeOTC   FillType = "otc"
)

// FillLiquidityType records which side of the book the fill took.
type FillLiquidityType string

const (
	FillLiquidityTaker FillLiquidityType = "taker"
	FillLiquidityMaker FillLiquidityType = "maker"
)

// GetFillsRequest retrieves the account's fills. Results are returned in
// descending time order unless Order is set to ascending.
type GetFillsRequest struct {
	privateRequest
	getRequest
	noPayload

	Market    string
	StartTime *types.UnixTimestamp
	EndTime   *types.UnixTimestamp
	OrderID   *uint64
	Order     types.SortOrder
}

func (GetFillsRequest) Path() string { return "/fills" }

func (r GetFillsRequest) Query() QueryParams {
	var params QueryParams

	if r.Market != "" {
		params = append(params, QueryParam{"market", r.Market})
	}
	if r.StartTime != nil {
		params = append(params, QueryParam{"start_time", r.StartTime.String()})
	}
	if r.EndTime != nil {
		params = append(params, QueryParam{"end_time", r.EndTime.String()})
	}
	if r.OrderID != nil {
		params = append(params, QueryParam{"orderId", strconv.FormatUint(*r.OrderID, 10)})
	}
	if r.Order == types.SortAscending {
		params = append(params, QueryParam{"order", "asc"})
	}

	return params
}

type Fill struct {
	Market        string            `json:"market"`
	Future        *string           `json:"future"`
	Side          types.Side        `json:"side"`
	Price         decimal.Decimal   `json:"price"`
	Size          decimal.Decimal   `json:"size"`
	Time          types.DatetimeStr `json:"time"`
	ID            uint64            `json:"id"`
	OrderID       uint64            `json:"orderId"`
	TradeID       uint64            `json:"tradeId"`
	BaseCurrency  *string           `json:"baseCurrency"`
	QuoteCurrency *string           `json:"quoteCurrency"`
	Type          FillType          `json:"type"`
	Liquidity     FillLiquidityType `json:"liquidity"`
	Fee           decimal.Decimal   `json:"fee"`
	FeeCurrency   string            `json:"feeCurrency"`
	FeeRate       decimal.Decimal   `json:"feeRate"`
}

type FillPartial struct {
	Market        string                  `json:"market"`
	Future        *string                 `json:"future"`
	Side          Json[types.Side]        `json:"side"`
	Price         Json[decimal.Decimal]   `json:"price"`
	Size          Json[decimal.Decimal]   `json:"size"`
	Time          Json[types.DatetimeStr] `json:"time"`
	ID            Json[uint64]            `json:"id"`
	OrderID       Json[uint64]            `json:"orderId"`
	TradeID       Json[uint64]            `json:"tradeId"`
	BaseCurrency  *string                 `json:"baseCurrency"`
	QuoteCurrency *string                 `json:"quoteCurrency"`
	Type          Json[FillType]          `json:"type"`
	Liquidity     Json[FillLiquidityType] `json:"liquidity"`
	Fee           Json[decimal.Decimal]   `json:"fee"`
	FeeCurrency   string                  `json:"feeCurrency"`
	FeeRate       Json[decimal.Decimal]   `json:"feeRate"`
}

func (p FillPartial) Strict() (Fill, error) {
	var (
		f   Fill
		err error
	)

	f.Market = p.Market
	f.Future = p.Future
	if f.Side, err = p.Side.Decode(); err != nil {
		return f, err
	}
	if f.Price, err = p.Price.Decode(); err != nil {
		return f, err
	}
	if f.Size, err = p.Size.Decode(); err != nil {
		return f, err
	}
	if f.Time, err = p.Time.Decode(); err != nil {
		return f, err
	}
	if f.ID, err = p.ID.Decode(); err != nil {
		return f, err
	}
	if f.OrderID, err = p.OrderID.Decode(); err != nil {
		return f, err
	}
	if f.TradeID, err = p.TradeID.Decode(); err != nil {
		return f, err
	}
	f.BaseCurrency = p.BaseCurrency
	f.QuoteCurrency = p.QuoteCurrency
	if f.Type, err = p.Type.Decode(); err != nil {
		return f, err
	}
	if f.Liquidity, err = p.Liquidity.Decode(); err != nil {
		return f, err
	}
	if f.Fee, err = p.Fee.Decode(); err != nil {
		return f, err
	}
	f.FeeCurrency = p.FeeCurrency
	if f.FeeRate, err = p.FeeRate.Decode(); err != nil {
		return f, err
	}

	return f, nil
}
