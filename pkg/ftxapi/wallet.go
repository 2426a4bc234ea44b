package ftxapi

import (
	"github.com/shopspring/decimal"
)

// GetCoinsRequest retrieves info on all coins.
type GetCoinsRequest struct {
	privateRequest
	getRequest
	noQuery
	noPayload
}

func (GetCoinsRequest) Path() string { return "/wallet/coins" }

// GetBalancesRequest retrieves coin balances for the calling account.
type GetBalancesRequest struct {
	privateRequest
	getRequest
	noQuery
	noPayload
}

func (GetBalancesRequest) Path() string { return "/wallet/balances" }

// GetAllBalancesRequest retrieves coin balances for all accounts, keyed
// by account name.
type GetAllBalancesRequest struct {
	privateRequest
	getRequest
	noQuery
	noPayload
}

func (GetAllBalancesRequest) Path() string { return "/wallet/all_balances" }

type Coin struct {
	ID                       string          `json:"id"`
	Name                     string          `json:"name"`
	Fiat                     bool            `json:"fiat"`
	IsToken                  bool            `json:"isToken"`
	IsEtf                    bool            `json:"isEtf"`
	TokenizedEquity          *bool           `json:"tokenizedEquity"`
	SpotMargin               bool            `json:"spotMargin"`
	Collateral               bool            `json:"collateral"`
	CollateralWeight         decimal.Decimal `json:"collateralWeight"`
	UsdFungible              bool            `json:"usdFungible"`
	CanConvert               bool            `json:"canConvert"`
	CanDeposit               bool            `json:"canDeposit"`
	CanWithdraw              bool            `json:"canWithdraw"`
	Erc20Contract            *string         `json:"erc20Contract"`
	Trc20Contract            *string         `json:"trc20Contract"`
	Bep2Asset                *string         `json:"bep2Asset"`
	SplMint                  *string         `json:"splMint"`
	Methods                  []string        `json:"methods"`
	HasTag                   bool            `json:"hasTag"`
	CreditTo                 *string         `json:"creditTo"`
	Hidden                   bool            `json:"hidden"`
	ImageURL                 *string         `json:"imageUrl"`
	NftQuoteCurrencyEligible bool            `json:"nftQuoteCurrencyEligible"`
	ImfWeight                decimal.Decimal `json:"imfWeight"`
	// Kept as a float since the values returned occasionally have a
	// scale a fixed precision decimal cannot hold.
	IndexPrice float64 `json:"indexPrice"`
}

// CoinPartial is Coin with the volatile fields held as unparsed JSON.
type CoinPartial struct {
	ID                       string                `json:"id"`
	Name                     string                `json:"name"`
	Fiat                     Json[bool]            `json:"fiat"`
	IsToken                  Json[bool]            `json:"isToken"`
	IsEtf                    Json[bool]            `json:"isEtf"`
	TokenizedEquity          OptJson[bool]         `json:"tokenizedEquity"`
	SpotMargin               Json[bool]            `json:"spotMargin"`
	Collateral               Json[bool]            `json:"collateral"`
	CollateralWeight         Json[decimal.Decimal] `json:"collateralWeight"`
	UsdFungible              Json[bool]            `json:"usdFungible"`
	CanConvert               Json[bool]            `json:"canConvert"`
	CanDeposit               Json[bool]            `json:"canDeposit"`
	CanWithdraw              Json[bool]            `json:"canWithdraw"`
	Erc20Contract            *string               `json:"erc20Contract"`
	Trc20Contract            *string               `json:"trc20Contract"`
	Bep2Asset                *string               `json:"bep2Asset"`
	SplMint                  *string               `json:"splMint"`
	Methods                  []string              `json:"methods"`
	HasTag                   Json[bool]            `json:"hasTag"`
	CreditTo                 *string               `json:"creditTo"`
	Hidden                   Json[bool]            `json:"hidden"`
	ImageURL                 *string               `json:"imageUrl"`
	NftQuoteCurrencyEligible Json[bool]            `json:"nftQuoteCurrencyEligible"`
	ImfWeight                Json[decimal.Decimal] `json:"imfWeight"`
	IndexPrice               Json[float64]         `json:"indexPrice"`
}

func (p CoinPartial) Strict() (Coin, error) {
	var (
		c   Coin
		err error
	)

	c.ID = p.ID
	c.Name = p.Name
	if c.Fiat, err = p.Fiat.Decode(); err != nil {
		return c, err
	}
	if c.IsToken, err = p.IsToken.Decode(); err != nil {
		return c, err
	}
	if c.IsEtf, err = p.IsEtf.Decode(); err != nil {
		return c, err
	}
	if c.TokenizedEquity, err = p.TokenizedEquity.Decode(); err != nil {
		return c, err
	}
	if c.SpotMargin, err = p.SpotMargin.Decode(); err != nil {
		return c, err
	}
	if c.Collateral, err = p.Collateral.Decode(); err != nil {
		return c, err
	}
	if c.CollateralWeight, err = p.CollateralWeight.Decode(); err != nil {
		return c, err
	}
	if c.UsdFungible, err = p.UsdFungible.Decode(); err != nil {
		return c, err
	}
	if c.CanConvert, err = p.CanConvert.Decode(); err != nil {
		return c, err
	}
	if c.CanDeposit, err = p.CanDeposit.Decode(); err != nil {
		return c, err
	}
	if c.CanWithdraw, err = p.CanWithdraw.Decode(); err != nil {
		return c, err
	}
	c.Erc20Contract = p.Erc20Contract
	c.Trc20Contract = p.Trc20Contract
	c.Bep2Asset = p.Bep2Asset
	c.SplMint = p.SplMint
	c.Methods = p.Methods
	if c.HasTag, err = p.HasTag.Decode(); err != nil {
		return c, err
	}
	c.CreditTo = p.CreditTo
	if c.Hidden, err = p.Hidden.Decode(); err != nil {
		return c, err
	}
	c.ImageURL = p.ImageURL
	if c.NftQuoteCurrencyEligible, err = p.NftQuoteCurrencyEligible.Decode(); err != nil {
		return c, err
	}
	if c.ImfWeight, err = p.ImfWeight.Decode(); err != nil {
		return c, err
	}
	if c.IndexPrice, err = p.IndexPrice.Decode(); err != nil {
		return c, err
	}

	return c, nil
}

type Balance struct {
	Coin                   string          `json:"coin"`
	Free                   decimal.Decimal `json:"free"`
	SpotBorrow             decimal.Decimal `json:"spotBorrow"`
	Total                  decimal.Decimal `json:"total"`
	UsdValue               decimal.Decimal `json:"usdValue"`
	AvailableWithoutBorrow decimal.Decimal `json:"availableWithoutBorrow"`
	AvailableForWithdrawal decimal.Decimal `json:"availableForWithdrawal"`
}

type BalancePartial struct {
	Coin                   string                `json:"coin"`
	Free                   Json[decimal.Decimal] `json:"free"`
	SpotBorrow             Json[decimal.Decimal] `json:"spotBorrow"`
	Total                  Json[decimal.Decimal] `json:"total"`
	UsdValue               Json[decimal.Decimal] `json:"usdValue"`
	AvailableWithoutBorrow Json[decimal.Decimal] `json:"availableWithoutBorrow"`
	AvailableForWithdrawal Json[decimal.Decimal] `json:"availableForWithdrawal"`
}

func (p BalancePartial) Strict() (Balance, error) {
	var (
		b   Balance
		err error
	)

	b.Coin = p.Coin
	if b.Free, err = p.Free.Decode(); err != nil {
		return b, err
	}
	if b.SpotBorrow, err = p.SpotBorrow.Decode(); err != nil {
		return b, err
	}
	if b.Total, err = p.Total.Decode(); err != nil {
		return b, err
	}
	if b.UsdValue, err = p.UsdValue.Decode(); err != nil {
		return b, err
	}
	if b.AvailableWithoutBorrow, err = p.AvailableWithoutBorrow.Decode(); err != nil {
		return b, err
	}
	if b.AvailableForWithdrawal, err = p.AvailableForWithdrawal.Decode(); err != nil {
		return b, err
	}

	return b, nil
}
