package ftxapi

import (
	"github.com/shopspring/decimal"

	"github.com/DouglasGray/ftx-rest-client/pkg/types"
)

// GetBorrowRatesRequest retrieves the latest borrow rates for all spot
// margin enabled coins.
type GetBorrowRatesRequest struct {
	privateRequest
	getRequest
	noQuery
	noPayload
}

func (GetBorrowRatesRequest) Path() string { return "/spot_margin/borrow_rates" }

// GetDailyBorrowedAmountsRequest retrieves the total daily borrowed
// amounts for all spot margin enabled coins.
type GetDailyBorrowedAmountsRequest struct {
	privateRequest
	getRequest
	noQuery
	noPayload
}

func (GetDailyBorrowedAmountsRequest) Path() string { return "/spot_margin/borrow_summary" }

// GetBorrowForMarketRequest retrieves borrow rates for both currencies
// of the provided spot market.
type GetBorrowForMarketRequest struct {
	privateRequest
	getRequest
	noPayload

	SpotMarket string
}

func (GetBorrowForMarketRequest) Path() string { return "/spot_margin/market_info" }

func (r GetBorrowForMarketRequest) Query() QueryParams {
	return QueryParams{{"market", r.SpotMarket}}
}

// GetBorrowHistoryRequest retrieves the account's borrow history.
type GetBorrowHistoryRequest struct {
	privateRequest
	getRequest
	noPayload

	StartTime *types.UnixTimestamp
	EndTime   *types.UnixTimestamp
}

func (GetBorrowHistoryRequest) Path() string { return "/spot_margin/borrow_history" }

func (r GetBorrowHistoryRequest) Query() QueryParams {
	var params QueryParams

	if r.StartTime != nil {
		params = append(params, QueryParam{"start_time", r.StartTime.String()})
	}
	if r.EndTime != nil {
		params = append(params, QueryParam{"end_time", r.EndTime.String()})
	}

	return params
}

type BorrowRate struct {
	Coin     string          `json:"coin"`
	Estimate decimal.Decimal `json:"estimate"`
	Previous decimal.Decimal `json:"previous"`
}

type BorrowRatePartial struct {
	Coin     string                `json:"coin"`
	Estimate Json[decimal.Decimal] `json:"estimate"`
	Previous Json[decimal.Decimal] `json:"previous"`
}

func (p BorrowRatePartial) Strict() (BorrowRate, error) {
	var (
		r   BorrowRate
		err error
	)

	r.Coin = p.Coin
	if r.Estimate, err = p.Estimate.Decode(); err != nil {
		return r, err
	}
	if r.Previous, err = p.Previous.Decode(); err != nil {
		return r, err
	}

	return r, nil
}

type BorrowAmount struct {
	Coin string          `json:"coin"`
	Size decimal.Decimal `json:"size"`
}

type BorrowAmountPartial struct {
	Coin string                `json:"coin"`
	Size Json[decimal.Decimal] `json:"size"`
}

func (p BorrowAmountPartial) Strict() (BorrowAmount, error) {
	size, err := p.Size.Decode()
	if err != nil {
		return BorrowAmount{}, err
	}

	return BorrowAmount{Coin: p.Coin, Size: size}, nil
}

type BorrowMarket struct {
	Coin          string          `json:"coin"`
	Borrowed      decimal.Decimal `json:"borrowed"`
	Free          decimal.Decimal `json:"free"`
	EstimatedRate decimal.Decimal `json:"estimatedRate"`
	PreviousRate  decimal.Decimal `json:"previousRate"`
}

type BorrowMarketPartial struct {
	Coin          string                `json:"coin"`
	Borrowed      Json[decimal.Decimal] `json:"borrowed"`
	Free          Json[decimal.Decimal] `json:"free"`
	EstimatedRate Json[decimal.Decimal] `json:"estimatedRate"`
	PreviousRate  Json[decimal.Decimal] `json:"previousRate"`
}

func (p BorrowMarketPartial) Strict() (BorrowMarket, error) {
	var (
		m   BorrowMarket
		err error
	)

	m.Coin = p.Coin
	if m.Borrowed, err = p.Borrowed.Decode(); err != nil {
		return m, err
	}
	if m.Free, err = p.Free.Decode(); err != nil {
		return m, err
	}
	if m.EstimatedRate, err = p.EstimatedRate.Decode(); err != nil {
		return m, err
	}
	if m.PreviousRate, err = p.PreviousRate.Decode(); err != nil {
		return m, err
	}

	return m, nil
}

type BorrowPayment struct {
	Coin   string            `json:"coin"`
	Cost   decimal.Decimal   `json:"cost"`
	FeeUsd decimal.Decimal   `json:"feeUsd"`
	Rate   decimal.Decimal   `json:"rate"`
	Size   decimal.Decimal   `json:"size"`
	Time   types.DatetimeStr `json:"time"`
}

type BorrowPaymentPartial struct {
	Coin   string                  `json:"coin"`
	Cost   Json[decimal.Decimal]   `json:"cost"`
	FeeUsd Json[decimal.Decimal]   `json:"feeUsd"`
	Rate   Json[decimal.Decimal]   `json:"rate"`
	Size   Json[decimal.Decimal]   `json:"size"`
	Time   Json[types.DatetimeStr] `json:"time"`
}

func (p BorrowPaymentPartial) Strict() (BorrowPayment, error) {
	var (
		b   BorrowPayment
		err error
	)

	b.Coin = p.Coin
	if b.Cost, err = p.Cost.Decode(); err != nil {
		return b, err
	}
	if b.FeeUsd, err = p.FeeUsd.Decode(); err != nil {
		return b, err
	}
	if b.Rate, err = p.Rate.Decode(); err != nil {
		return b, err
	}
	if b.Size, err = p.Size.Decode(); err != nil {
		return b, err
	}
	if b.Time, err = p.Time.Decode(); err != nil {
		return b, err
	}

	return b, nil
}
