package ftxapi

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/DouglasGray/ftx-rest-client/pkg/types"
)

// AccountLeverage is a leverage multiple the exchange accepts. Only the
// listed values can be constructed.
type AccountLeverage int

const (
	LeverageOne    AccountLeverage = 1
	LeverageTwo    AccountLeverage = 2
	LeverageThree  AccountLeverage = 3
	LeverageFive   AccountLeverage = 5
	LeverageTen    AccountLeverage = 10
	LeverageTwenty AccountLeverage = 20
)

func NewAccountLeverage(leverage int) (AccountLeverage, error) {
	switch leverage {
	case 1, 2, 3, 5, 10, 20:
		return AccountLeverage(leverage), nil
	}

	return 0, errors.Errorf("invalid account leverage %d", leverage)
}

func (l AccountLeverage) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(l))), nil
}

// UnmarshalJSON accepts the float rendering the exchange uses, e.g. 3.0.
func (l *AccountLeverage) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	leverage, err := NewAccountLeverage(int(f))
	if err != nil {
		return err
	}

	*l = leverage
	return nil
}

// GetAccountInformationRequest retrieves account and position
// information.
type GetAccountInformationRequest struct {
	privateRequest
	getRequest
	noQuery
	noPayload
}

func (GetAccountInformationRequest) Path() string { return "/account" }

// GetPositionsRequest retrieves current positions.
type GetPositionsRequest struct {
	privateRequest
	getRequest
	noPayload

	ShowAvgPrice *bool
}

func (GetPositionsRequest) Path() string { return "/positions" }

func (r GetPositionsRequest) Query() QueryParams {
	if r.ShowAvgPrice == nil {
		return nil
	}

	return QueryParams{{"showAvgPrice", strconv.FormatBool(*r.ShowAvgPrice)}}
}

// ChangeAccountLeverageRequest changes the account's maximum leverage.
type ChangeAccountLeverageRequest struct {
	privateRequest
	postRequest
	noQuery

	Leverage AccountLeverage
}

func (ChangeAccountLeverageRequest) Path() string { return "/account/leverage" }

func (r ChangeAccountLeverageRequest) Payload() interface{} {
	return changeAccountLeveragePayload{Leverage: r.Leverage}
}

type changeAccountLeveragePayload struct {
	Leverage AccountLeverage `json:"leverage"`
}

type AccountInformation struct {
	AccountIdentifier            uint64                    `json:"accountIdentifier"`
	AccountType                  *string                   `json:"accountType"`
	BackstopProvider             bool                      `json:"backstopProvider"`
	Collateral                   types.NonNegativeDecimal  `json:"collateral"`
	FreeCollateral               types.NonNegativeDecimal  `json:"freeCollateral"`
	InitialMarginRequirement     types.NonNegativeDecimal  `json:"initialMarginRequirement"`
	MaintenanceMarginRequirement types.NonNegativeDecimal  `json:"maintenanceMarginRequirement"`
	Leverage                     AccountLeverage           `json:"leverage"`
	FuturesLeverage              AccountLeverage           `json:"futuresLeverage"`
	Liquidating                  bool                      `json:"liquidating"`
	MarginFraction               *types.NonNegativeDecimal `json:"marginFraction"`
	OpenMarginFraction           *types.NonNegativeDecimal `json:"openMarginFraction"`
	MakerFee                     types.PositiveDecimal     `json:"makerFee"`
	TakerFee                     types.PositiveDecimal     `json:"takerFee"`
	TotalAccountValue            types.NonNegativeDecimal  `json:"totalAccountValue"`
	TotalPositionSize            types.NonNegativeDecimal  `json:"totalPositionSize"`
	ChargeInterestOnNegativeUsd  bool                      `json:"chargeInterestOnNegativeUsd"`
	PositionLimit                *types.PositiveDecimal    `json:"positionLimit"`
	PositionLimitUsed            *types.NonNegativeDecimal `json:"positionLimitUsed"`
	UseFttCollateral             bool                      `json:"useFttCollateral"`
	Username                     string                    `json:"username"`
	SpotLendingEnabled           bool                      `json:"spotLendingEnabled"`
	SpotMarginEnabled            bool                      `json:"spotMarginEnabled"`
	SpotMarginWithdrawalsEnabled bool                      `json:"spotMarginWithdrawalsEnabled"`
	Positions                    []Position                `json:"positions"`
}

type Position struct {
	Cost                         decimal.Decimal           `json:"cost"`
	EntryPrice                   *types.Price              `json:"entryPrice"`
	EstimatedLiquidationPrice    *types.Price              `json:"estimatedLiquidationPrice"`
	Future                       string                    `json:"future"`
	InitialMarginRequirement     types.PositiveDecimal     `json:"initialMarginRequirement"`
	MaintenanceMarginRequirement types.PositiveDecimal     `json:"maintenanceMarginRequirement"`
	LongOrderSize                types.NonNegativeDecimal  `json:"longOrderSize"`
	ShortOrderSize               types.NonNegativeDecimal  `json:"shortOrderSize"`
	NetSize                      decimal.Decimal           `json:"netSize"`
	OpenSize                     types.NonNegativeDecimal  `json:"openSize"`
	RealizedPnl                  decimal.Decimal           `json:"realizedPnl"`
	Side                         types.Side                `json:"side"`
	Size                         types.NonNegativeDecimal  `json:"size"`
	UnrealizedPnl                decimal.Decimal           `json:"unrealizedPnl"`
	CollateralUsed               types.NonNegativeDecimal  `json:"collateralUsed"`
	RecentAverageOpenPrice       *types.Price              `json:"recentAverageOpenPrice"`
	RecentBreakEvenPrice         *types.Price              `json:"recentBreakEvenPrice"`
	RecentPnl                    *decimal.Decimal          `json:"recentPnl"`
	CumulativeBuySize            *types.NonNegativeDecimal `json:"cumulativeBuySize"`
	CumulativeSellSize           *types.NonNegativeDecimal `json:"cumulativeSellSize"`
}
