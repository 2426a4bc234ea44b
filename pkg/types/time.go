package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// UnixTimestamp is a millisecond UNIX timestamp. Signed requests carry one
// in their auth headers, and several payloads return them, occasionally as
// a float.
type UnixTimestamp int64

func NewUnixTimestamp(ms int64) (UnixTimestamp, error) {
	if ms < 0 {
		return 0, &InvalidUnixTimestampError{Value: float64(ms)}
	}

	return UnixTimestamp(ms), nil
}

// UnixTimestampNow returns the current time in milliseconds since epoch.
func UnixTimestampNow() UnixTimestamp {
	return UnixTimestamp(time.Now().UnixMilli())
}

func NewUnixTimestampFromTime(t time.Time) (UnixTimestamp, error) {
	return NewUnixTimestamp(t.UnixMilli())
}

func (t UnixTimestamp) Int64() int64 {
	return int64(t)
}

func (t UnixTimestamp) Time() time.Time {
	return time.Unix(0, int64(t)*int64(time.Millisecond))
}

func (t UnixTimestamp) String() string {
	return strconv.FormatInt(int64(t), 10)
}

func (t UnixTimestamp) MarshalJSON() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *UnixTimestamp) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	if f < 0 {
		return &InvalidUnixTimestampError{Value: f}
	}

	*t = UnixTimestamp(int64(f))
	return nil
}

// InvalidUnixTimestampError reports a pre-epoch timestamp.
type InvalidUnixTimestampError struct {
	Value float64
}

func (e *InvalidUnixTimestampError) Error() string {
	return fmt.Sprintf("invalid UNIX timestamp %v", e.Value)
}

// DatetimeStr is an RFC3339 datetime string as returned by the exchange,
// kept unparsed until the caller needs a time.Time.
type DatetimeStr string

func (s DatetimeStr) Time() (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, string(s))
	if err != nil {
		return time.Time{}, &DatetimeParseError{Input: string(s), cause: err}
	}

	return t, nil
}

// DatetimeParseError reports a datetime string that failed to parse,
// retaining the underlying cause.
type DatetimeParseError struct {
	Input string
	cause error
}

func (e *DatetimeParseError) Error() string {
	return fmt.Sprintf("failed to parse %s as a datetime", e.Input)
}

func (e *DatetimeParseError) Unwrap() error {
	return e.cause
}
