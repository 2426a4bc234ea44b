package ftxapi

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/DouglasGray/ftx-rest-client/pkg/types"
)

// GetIndexWeightsRequest retrieves an index's composition, keyed by the
// underlying currency.
type GetIndexWeightsRequest struct {
	publicRequest
	getRequest
	noQuery
	noPayload

	Index string
}

func (r GetIndexWeightsRequest) Path() string {
	return fmt.Sprintf("/indexes/%s/weights", r.Index)
}

// GetIndexCandlesRequest retrieves historical index prices in some time
// frame.
type GetIndexCandlesRequest struct {
	publicRequest
	getRequest
	noPayload

	Index      string
	Resolution types.WindowLength
	StartTime  *types.UnixTimestamp
	EndTime    *types.UnixTimestamp
}

func (r GetIndexCandlesRequest) Path() string {
	return fmt.Sprintf("/indexes/%s/candles", r.Index)
}

func (r GetIndexCandlesRequest) Query() QueryParams {
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

// GetIndexConstituentsRequest retrieves the markets an index price is
// computed from.
type GetIndexConstituentsRequest struct {
	publicRequest
	getRequest
	noQuery
	noPayload

	Underlying string
}

func (r GetIndexConstituentsRequest) Path() string {
	return "/index_constituents/" + r.Underlying
}

// IndexWeights maps an underlying currency to its weight in the index.
type IndexWeights map[string]decimal.Decimal

// IndexConstituent is one constituent market, sent on the wire as an
// [exchange, base, quote] triple.
type IndexConstituent struct {
	Exchange      string
	BaseCurrency  string
	QuoteCurrency string
}

func (c *IndexConstituent) UnmarshalJSON(data []byte) error {
	var triple [3]string
	if err := json.Unmarshal(data, &triple); err != nil {
		return err
	}

	c.Exchange, c.BaseCurrency, c.QuoteCurrency = triple[0], triple[1], triple[2]
	return nil
}

func (c IndexConstituent) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]string{c.Exchange, c.BaseCurrency, c.QuoteCurrency})
}

// IndexCandle is a Candle without volume, which index price histories
// never carry.
type IndexCandle struct {
	Close     decimal.Decimal     `json:"close"`
	High      decimal.Decimal     `json:"high"`
	Low       decimal.Decimal     `json:"low"`
	Open      decimal.Decimal     `json:"open"`
	StartTime types.DatetimeStr   `json:"startTime"`
	Time      types.UnixTimestamp `json:"time"`
}

type IndexCandlePartial struct {
	Close     Json[decimal.Decimal]     `json:"close"`
	High      Json[decimal.Decimal]     `json:"high"`
	Low       Json[decimal.Decimal]     `json:"low"`
	Open      Json[decimal.Decimal]     `json:"open"`
	StartTime Json[types.DatetimeStr]   `json:"startTime"`
	Time      Json[types.UnixTimestamp] `json:"time"`
}

func (p IndexCandlePartial) Strict() (IndexCandle, error) {
	var (
		c   IndexCandle
		err error
	)

	if c.Close, err = p.Close.Decode(); err != nil {
		return c, err
	}
	if c.High, err = p.High.Decode(); err != nil {
		return c, err
	}
	if c.Low, err = p.Low.Decode(); err != nil {
		return c, err
	}
	if c.Open, err = p.Open.Decode(); err != nil {
		return c, err
	}
	if c.StartTime, err = p.StartTime.Decode(); err != nil {
		return c, err
	}
	if c.Time, err = p.Time.Decode(); err != nil {
		return c, err
	}

	return c, nil
}
