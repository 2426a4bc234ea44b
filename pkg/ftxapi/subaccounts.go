package ftxapi

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/DouglasGray/ftx-rest-client/pkg/types"
)

// TransferStatus of an inter-account transfer.
type TransferStatus string

const (
	TransferStatusComplete TransferStatus = "complete"
)

// GetSubaccountsRequest retrieves info on all subaccounts.
type GetSubaccountsRequest struct {
	privateRequest
	getRequest
	noQuery
	noPayload
}

func (GetSubaccountsRequest) Path() string { return "/subaccounts" }

// CreateSubaccountRequest creates a subaccount.
type CreateSubaccountRequest struct {
	privateRequest
	postRequest
	noQuery

	Nickname string
}

func (CreateSubaccountRequest) Path() string { return "/subaccounts" }

func (r CreateSubaccountRequest) Payload() interface{} {
	return subaccountNamePayload{Nickname: r.Nickname}
}

type subaccountNamePayload struct {
	Nickname string `json:"nickname"`
}

// ChangeSubaccountNameRequest renames a subaccount.
type ChangeSubaccountNameRequest struct {
	privateRequest
	postRequest
	noQuery

	Nickname    string
	NewNickname string
}

func (ChangeSubaccountNameRequest) Path() string { return "/subaccounts/update_name" }

func (r ChangeSubaccountNameRequest) Payload() interface{} {
	return changeSubaccountNamePayload{
		Nickname:    r.Nickname,
		NewNickname: r.NewNickname,
	}
}

type changeSubaccountNamePayload struct {
	Nickname    string `json:"nickname"`
	NewNickname string `json:"newNickname"`
}

// DeleteSubaccountRequest deletes a subaccount.
type DeleteSubaccountRequest struct {
	privateRequest
	deleteRequest
	noQuery

	Nickname string
}

func (DeleteSubaccountRequest) Path() string { return "/subaccounts" }

func (r DeleteSubaccountRequest) Payload() interface{} {
	return subaccountNamePayload{Nickname: r.Nickname}
}

// GetSubaccountBalancesRequest retrieves a subaccount's balances.
type GetSubaccountBalancesRequest struct {
	privateRequest
	getRequest
	noQuery
	noPayload

	Nickname string
}

func (r GetSubaccountBalancesRequest) Path() string {
	return fmt.Sprintf("/subaccounts/%s/balances", r.Nickname)
}

// TransferBetweenSubaccountsRequest transfers a coin balance between two
// subaccounts. A nil source or destination names the main account.
type TransferBetweenSubaccountsRequest struct {
	privateRequest
	postRequest
	noQuery

	Coin        string
	Size        decimal.Decimal
	Source      *string
	Destination *string
}

func (TransferBetweenSubaccountsRequest) Path() string { return "/subaccounts/transfer" }

func (r TransferBetweenSubaccountsRequest) Payload() interface{} {
	return transferBetweenSubaccountsPayload{
		Coin:        r.Coin,
		Size:        r.Size,
		Source:      r.Source,
		Destination: r.Destination,
	}
}

type transferBetweenSubaccountsPayload struct {
	Coin        string          `json:"coin"`
	Size        decimal.Decimal `json:"size"`
	Source      *string         `json:"source"`
	Destination *string         `json:"destination"`
}

type Subaccount struct {
	Nickname    string `json:"nickname"`
	Deletable   bool   `json:"deletable"`
	Editable    bool   `json:"editable"`
	Special     bool   `json:"special"`
	Competition bool   `json:"competition"`
}

type SubaccountPartial struct {
	Nickname    string     `json:"nickname"`
	Deletable   Json[bool] `json:"deletable"`
	Editable    Json[bool] `json:"editable"`
	Special     Json[bool] `json:"special"`
	Competition Json[bool] `json:"competition"`
}

func (p SubaccountPartial) Strict() (Subaccount, error) {
	var (
		s   Subaccount
		err error
	)

	s.Nickname = p.Nickname
	if s.Deletable, err = p.Deletable.Decode(); err != nil {
		return s, err
	}
	if s.Editable, err = p.Editable.Decode(); err != nil {
		return s, err
	}
	if s.Special, err = p.Special.Decode(); err != nil {
		return s, err
	}
	if s.Competition, err = p.Competition.Decode(); err != nil {
		return s, err
	}

	return s, nil
}

type SubaccountBalance struct {
	Coin                   string          `json:"coin"`
	Free                   decimal.Decimal `json:"free"`
	Total                  decimal.Decimal `json:"total"`
	SpotBorrow             decimal.Decimal `json:"spotBorrow"`
	AvailableWithoutBorrow decimal.Decimal `json:"availableWithoutBorrow"`
	AvailableForWithdrawal decimal.Decimal `json:"availableForWithdrawal"`
	UsdValue               decimal.Decimal `json:"usdValue"`
}

type SubaccountBalancePartial struct {
	Coin                   string                `json:"coin"`
	Free                   Json[decimal.Decimal] `json:"free"`
	Total                  Json[decimal.Decimal] `json:"total"`
	SpotBorrow             Json[decimal.Decimal] `json:"spotBorrow"`
	AvailableWithoutBorrow Json[decimal.Decimal] `json:"availableWithoutBorrow"`
	AvailableForWithdrawal Json[decimal.Decimal] `json:"availableForWithdrawal"`
	UsdValue               Json[decimal.Decimal] `json:"usdValue"`
}

func (p SubaccountBalancePartial) Strict() (SubaccountBalance, error) {
	var (
		b   SubaccountBalance
		err error
	)

	b.Coin = p.Coin
	if b.Free, err = p.Free.Decode(); err != nil {
		return b, err
	}
	if b.Total, err = p.Total.Decode(); err != nil {
		return b, err
	}
	if b.SpotBorrow, err = p.SpotBorrow.Decode(); err != nil {
		return b, err
	}
	if b.AvailableWithoutBorrow, err = p.AvailableWithoutBorrow.Decode(); err != nil {
		return b, err
	}
	if b.AvailableForWithdrawal, err = p.AvailableForWithdrawal.Decode(); err != nil {
		return b, err
	}
	if b.UsdValue, err = p.UsdValue.Decode(); err != nil {
		return b, err
	}

	return b, nil
}

type TransferDetails struct {
	ID     uint64            `json:"id"`
	Coin   string            `json:"coin"`
	Size   decimal.Decimal   `json:"size"`
	Time   types.DatetimeStr `json:"time"`
	Notes  string            `json:"notes"`
	Status TransferStatus    `json:"status"`
}

type TransferDetailsPartial struct {
	ID     Json[uint64]            `json:"id"`
	Coin   string                  `json:"coin"`
	Size   Json[decimal.Decimal]   `json:"size"`
	Time   Json[types.DatetimeStr] `json:"time"`
	Notes  string                  `json:"notes"`
	Status Json[TransferStatus]    `json:"status"`
}

func (p TransferDetailsPartial) Strict() (TransferDetails, error) {
	var (
		t   TransferDetails
		err error
	)

	if t.ID, err = p.ID.Decode(); err != nil {
		return t, err
	}
	t.Coin = p.Coin
	if t.Size, err = p.Size.Decode(); err != nil {
		return t, err
	}
	if t.Time, err = p.Time.Decode(); err != nil {
		return t, err
	}
	t.Notes = p.Notes
	if t.Status, err = p.Status.Decode(); err != nil {
		return t, err
	}

	return t, nil
}
