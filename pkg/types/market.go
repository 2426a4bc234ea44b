package types

import (
	"fmt"
)

// Price and Size carry quoted prices and order quantities. Both must be
// strictly positive.
type (
	Price = PositiveDecimal
	Size  = PositiveDecimal
)

// Side is a trade or order direction.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Param renders the side as a query parameter value.
func (s Side) Param() string {
	return string(s)
}

// SortOrder controls the direction in which paginated history endpoints
// return records.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// WindowLength is a candle resolution in seconds. Only the values the
// exchange accepts can be constructed.
type WindowLength int64

const (
	WindowFifteenSeconds WindowLength = 15
	WindowOneMinute      WindowLength = 60
	WindowFiveMinutes    WindowLength = 300
	WindowFifteenMinutes WindowLength = 900
	WindowOneHour        WindowLength = 3600
	WindowFourHours      WindowLength = 14400
	WindowOneDay         WindowLength = 86400
)

// WindowDays returns a multi-day window length. The exchange caps the
// multiple at 30 days.
func WindowDays(days int) (WindowLength, error) {
	if days < 1 || days > 30 {
		return 0, fmt.Errorf("window length must be between 1 and 30 days, got %d", days)
	}

	return WindowLength(int64(days) * 86400), nil
}

// Seconds returns the window length in seconds, the unit the exchange
// takes as a resolution parameter.
func (w WindowLength) Seconds() int64 {
	return int64(w)
}
