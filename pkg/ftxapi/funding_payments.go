package ftxapi

import (
	"github.com/shopspring/decimal"

	"github.com/DouglasGray/ftx-rest-client/pkg/types"
)

// GetFundingPaymentsRequest retrieves funding payments made or received
// on perpetual positions.
type GetFundingPaymentsRequest struct {
	privateRequest
	getRequest
	noPayload

	Future    string
	StartTime *types.UnixTimestamp
	EndTime   *types.UnixTimestamp
}

func (GetFundingPaymentsRequest) Path() string { return "/funding_payments" }

func (r GetFundingPaymentsRequest) Query() QueryParams {
	var params QueryParams

	if r.Future != "" {
		params = append(params, QueryParam{"future", r.Future})
	}
	if r.StartTime != nil {
		params = append(params, QueryParam{"start_time", r.StartTime.String()})
	}
	if r.EndTime != nil {
		params = append(params, QueryParam{"end_time", r.EndTime.String()})
	}

	return params
}

type FundingPayment struct {
	Future  string            `json:"future"`
	ID      uint64            `json:"id"`
	Payment decimal.Decimal   `json:"payment"`
	Rate    decimal.Decimal   `json:"rate"`
	Time    types.DatetimeStr `json:"time"`
}
