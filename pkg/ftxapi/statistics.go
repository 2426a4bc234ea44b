package ftxapi

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// GetLatencyStatisticsRequest retrieves order placement latency
// statistics for the account, optionally scoped to one subaccount.
type GetLatencyStatisticsRequest struct {
	privateRequest
	getRequest
	noPayload

	Days               *uint32
	SubaccountNickname string
}

func (GetLatencyStatisticsRequest) Path() string { return "/stats/latency_stats" }

func (r GetLatencyStatisticsRequest) Query() QueryParams {
	var params QueryParams

	if r.Days != nil {
		params = append(params, QueryParam{"days", strconv.FormatUint(uint64(*r.Days), 10)})
	}
	if r.SubaccountNickname != "" {
		params = append(params, QueryParam{"subaccount_nickname", r.SubaccountNickname})
	}

	return params
}

type LatencyStats struct {
	Bursty       bool            `json:"bursty"`
	P50          decimal.Decimal `json:"p50"`
	RequestCount uint64          `json:"requestCount"`
}

type LatencyStatsPartial struct {
	Bursty       Json[bool]            `json:"bursty"`
	P50          Json[decimal.Decimal] `json:"p50"`
	RequestCount Json[uint64]          `json:"requestCount"`
}

func (p LatencyStatsPartial) Strict() (LatencyStats, error) {
	var (
		s   LatencyStats
		err error
	)

	if s.Bursty, err = p.Bursty.Decode(); err != nil {
		return s, err
	}
	if s.P50, err = p.P50.Decode(); err != nil {
		return s, err
	}
	if s.RequestCount, err = p.RequestCount.Decode(); err != nil {
		return s, err
	}

	return s, nil
}
