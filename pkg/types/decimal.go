package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Constraint names used in decimal errors.
const (
	constraintPositive    = "positive"
	constraintNonNegative = "non-negative"
)

// PositiveDecimal is a decimal value known to be strictly greater than
// zero. The zero value is not usable; construct one with
// NewPositiveDecimal or by unmarshalling.
type PositiveDecimal struct {
	v decimal.Decimal
}

func NewPositiveDecimal(d decimal.Decimal) (PositiveDecimal, error) {
	if d.Sign() <= 0 {
		return PositiveDecimal{}, &DecimalError{Constraint: constraintPositive, Value: d}
	}

	return PositiveDecimal{v: d}, nil
}

// NewPositiveDecimalFromString parses s and applies the sign constraint.
func NewPositiveDecimalFromString(s string) (PositiveDecimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return PositiveDecimal{}, &DecimalParseError{Constraint: constraintPositive, Input: s, cause: err}
	}

	v, err := NewPositiveDecimal(d)
	if err != nil {
		return PositiveDecimal{}, &DecimalParseError{Constraint: constraintPositive, Input: s, cause: err}
	}

	return v, nil
}

func (d PositiveDecimal) Decimal() decimal.Decimal {
	return d.v
}

func (d PositiveDecimal) String() string {
	return d.v.String()
}

// MarshalJSON renders the value as a bare JSON number, matching what the
// exchange emits and expects.
func (d PositiveDecimal) MarshalJSON() ([]byte, error) {
	return []byte(d.v.String()), nil
}

func (d *PositiveDecimal) UnmarshalJSON(data []byte) error {
	var v decimal.Decimal
	if err := v.UnmarshalJSON(data); err != nil {
		return &DecimalParseError{Constraint: constraintPositive, Input: string(data), cause: err}
	}

	nd, err := NewPositiveDecimal(v)
	if err != nil {
		return &DecimalParseError{Constraint: constraintPositive, Input: string(data), cause: err}
	}

	*d = nd
	return nil
}

// NonNegativeDecimal is a decimal value known to be greater than or equal
// to zero.
type NonNegativeDecimal struct {
	v decimal.Decimal
}

func NewNonNegativeDecimal(d decimal.Decimal) (NonNegativeDecimal, error) {
	if d.Sign() < 0 {
		return NonNegativeDecimal{}, &DecimalError{Constraint: constraintNonNegative, Value: d}
	}

	return NonNegativeDecimal{v: d}, nil
}

// NewNonNegativeDecimalFromString parses s and applies the sign constraint.
func NewNonNegativeDecimalFromString(s string) (NonNegativeDecimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return NonNegativeDecimal{}, &DecimalParseError{Constraint: constraintNonNegative, Input: s, cause: err}
	}

	v, err := NewNonNegativeDecimal(d)
	if err != nil {
		return NonNegativeDecimal{}, &DecimalParseError{Constraint: constraintNonNegative, Input: s, cause: err}
	}

	return v, nil
}

func (d NonNegativeDecimal) Decimal() decimal.Decimal {
	return d.v
}

func (d NonNegativeDecimal) String() string {
	return d.v.String()
}

func (d NonNegativeDecimal) MarshalJSON() ([]byte, error) {
	return []byte(d.v.String()), nil
}

func (d *NonNegativeDecimal) UnmarshalJSON(data []byte) error {
	var v decimal.Decimal
	if err := v.UnmarshalJSON(data); err != nil {
		return &DecimalParseError{Constraint: constraintNonNegative, Input: string(data), cause: err}
	}

	nd, err := NewNonNegativeDecimal(v)
	if err != nil {
		return &DecimalParseError{Constraint: constraintNonNegative, Input: string(data), cause: err}
	}

	*d = nd
	return nil
}

// DecimalError reports a decimal that violated its sign constraint.
type DecimalError struct {
	Constraint string
	Value      decimal.Decimal
}

func (e *DecimalError) Error() string {
	return fmt.Sprintf("expected a %s number, got %s", e.Constraint, e.Value)
}

// DecimalParseError reports input that could not be parsed into a
// constrained decimal, retaining the underlying cause.
type DecimalParseError struct {
	Constraint string
	Input      string
	cause      error
}

func (e *DecimalParseError) Error() string {
	return fmt.Sprintf("failed to parse %s as a %s decimal", e.Input, e.Constraint)
}

func (e *DecimalParseError) Unwrap() error {
	return e.cause
}
