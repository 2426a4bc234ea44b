package ftxapi

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/DouglasGray/ftx-rest-client/pkg/types"
)

// FutureType distinguishes the kinds of futures contracts the exchange
// lists.
type FutureType string

const (
	FutureTypePerpetual  FutureType = "perpetual"
	FutureTypeFuture     FutureType = "future"
	FutureTypeMove       FutureType = "move"
	FutureTypePrediction FutureType = "prediction"
)

// FutureGroup is the particular group a future may belong to.
type FutureGroup string

const (
	FutureGroupPerpetual  FutureGroup = "perpetual"
	FutureGroupDaily      FutureGroup = "daily"
	FutureGroupWeekly     FutureGroup = "weekly"
	FutureGroupMonthly    FutureGroup = "monthly"
	FutureGroupQuarterly  FutureGroup = "quarterly"
	FutureGroupPrediction FutureGroup = "prediction"
)

// GetFuturesRequest retrieves information on all futures.
type GetFuturesRequest struct {
	publicRequest
	getRequest
	noQuery
	noPayload
}

func (GetFuturesRequest) Path() string { return "/futures" }

// GetFutureRequest retrieves information on a single future.
type GetFutureRequest struct {
	publicRequest
	getRequest
	noQuery
	noPayload

	Future string
}

func (r GetFutureRequest) Path() string {
	return "/futures/" + r.Future
}

// GetFutureStatsRequest retrieves future statistics, including the
// predicted funding rate.
type GetFutureStatsRequest struct {
	publicRequest
	getRequest
	noQuery
	noPayload

	Future string
}

func (r GetFutureStatsRequest) Path() string {
	return fmt.Sprintf("/futures/%s/stats", r.Future)
}

// GetFundingRatesRequest retrieves historical funding rates.
type GetFundingRatesRequest struct {
	publicRequest
	getRequest
	noPayload

	Perpetual string
	StartTime *types.UnixTimestamp
	EndTime   *types.UnixTimestamp
}

func (GetFundingRatesRequest) Path() string { return "/funding_rates" }

func (r GetFundingRatesRequest) Query() QueryParams {
	var params QueryParams

	if r.Perpetual != "" {
		params = append(params, QueryParam{"future", r.Perpetual})
	}
	if r.StartTime != nil {
		params = append(params, QueryParam{"start_time", r.StartTime.String()})
	}
	if r.EndTime != nil {
		params = append(params, QueryParam{"end_time", r.EndTime.String()})
	}

	return params
}

// GetExpiredFuturesRequest retrieves information on all expired futures.
type GetExpiredFuturesRequest struct {
	publicRequest
	getRequest
	noQuery
	noPayload
}

func (GetExpiredFuturesRequest) Path() string { return "/expired_futures" }

type Future struct {
	Name                  string                   `json:"name"`
	Underlying            string                   `json:"underlying"`
	Description           string                   `json:"description"`
	UnderlyingDescription string                   `json:"underlyingDescription"`
	ExpiryDescription     string                   `json:"expiryDescription"`
	Type                  FutureType               `json:"type"`
	Group                 FutureGroup              `json:"group"`
	Expiry                *types.DatetimeStr       `json:"expiry"`
	Perpetual             bool                     `json:"perpetual"`
	Expired               bool                     `json:"expired"`
	Enabled               bool                     `json:"enabled"`
	PostOnly              bool                     `json:"postOnly"`
	PriceIncrement        types.PositiveDecimal    `json:"priceIncrement"`
	SizeIncrement         types.PositiveDecimal    `json:"sizeIncrement"`
	Last                  *types.Price             `json:"last"`
	Bid                   *types.Price             `json:"bid"`
	Ask                   *types.Price             `json:"ask"`
	Index                 *types.Price             `json:"index"`
	Mark                  *types.Price             `json:"mark"`
	ImfFactor             types.PositiveDecimal    `json:"imfFactor"`
	LowerBound            *types.PositiveDecimal   `json:"lowerBound"`
	UpperBound            *types.PositiveDecimal   `json:"upperBound"`
	MarginPrice           *types.PositiveDecimal   `json:"marginPrice"`
	PositionLimitWeight   types.PositiveDecimal    `json:"positionLimitWeight"`
	Change1h              *decimal.Decimal         `json:"change1h"`
	Change24h             *decimal.Decimal         `json:"change24h"`
	ChangeBod             *decimal.Decimal         `json:"changeBod"`
	VolumeUsd24h          types.NonNegativeDecimal `json:"volumeUsd24h"`
	Volume                types.NonNegativeDecimal `json:"volume"`
	OpenInterest          types.NonNegativeDecimal `json:"openInterest"`
	OpenInterestUsd       types.NonNegativeDecimal `json:"openInterestUsd"`
	MoveStart             *types.DatetimeStr       `json:"moveStart"`
}

type FutureStats struct {
	Volume                   types.NonNegativeDecimal `json:"volume"`
	NextFundingRate          *decimal.Decimal         `json:"nextFundingRate"`
	NextFundingTime          types.DatetimeStr        `json:"nextFundingTime"`
	ExpirationPrice          *types.Price             `json:"expirationPrice"`
	PredictedExpirationPrice *types.Price             `json:"predictedExpirationPrice"`
	StrikePrice              *types.Price             `json:"strikePrice"`
	OpenInterest             types.NonNegativeDecimal `json:"openInterest"`
}

type FundingRate struct {
	Future string            `json:"future"`
	Rate   decimal.Decimal   `json:"rate"`
	Time   types.DatetimeStr `json:"time"`
}

// ExpiredFuture is a Future that has settled. It carries the same
// descriptive fields but none of the rolling volume statistics.
type ExpiredFuture struct {
	Name                  string                 `json:"name"`
	Underlying            string                 `json:"underlying"`
	Description           string                 `json:"description"`
	UnderlyingDescription string                 `json:"underlyingDescription"`
	ExpiryDescription     string                 `json:"expiryDescription"`
	Type                  FutureType             `json:"type"`
	Group                 FutureGroup            `json:"group"`
	Expiry                *types.DatetimeStr     `json:"expiry"`
	Perpetual             bool                   `json:"perpetual"`
	Expired               bool                   `json:"expired"`
	Enabled               bool                   `json:"enabled"`
	PostOnly              bool                   `json:"postOnly"`
	PriceIncrement        types.PositiveDecimal  `json:"priceIncrement"`
	SizeIncrement         types.PositiveDecimal  `json:"sizeIncrement"`
	Last                  *types.Price           `json:"last"`
	Bid                   *types.Price           `json:"bid"`
	Ask                   *types.Price           `json:"ask"`
	Index                 *types.Price           `json:"index"`
	Mark                  *types.Price           `json:"mark"`
	ImfFactor             types.PositiveDecimal  `json:"imfFactor"`
	LowerBound            *types.PositiveDecimal `json:"lowerBound"`
	UpperBound            *types.PositiveDecimal `json:"upperBound"`
	MarginPrice           *types.PositiveDecimal `json:"marginPrice"`
	PositionLimitWeight   types.PositiveDecimal  `json:"positionLimitWeight"`
	MoveStart             *types.DatetimeStr     `json:"moveStart"`
}
