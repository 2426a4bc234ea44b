package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPositiveDecimal(t *testing.T) {
	d, err := NewPositiveDecimal(decimal.NewFromFloat(0.001))
	require.NoError(t, err)
	assert.Equal(t, "0.001", d.String())

	_, err = NewPositiveDecimal(decimal.Zero)
	require.Error(t, err)

	var decErr *DecimalError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, "positive", decErr.Constraint)

	_, err = NewPositiveDecimal(decimal.NewFromInt(-1))
	assert.Error(t, err)
}

func TestNewPositiveDecimalFromString(t *testing.T) {
	d, err := NewPositiveDecimalFromString("8500")
	require.NoError(t, err)
	assert.Equal(t, "8500", d.String())

	_, err = NewPositiveDecimalFromString("0")
	assert.Error(t, err)

	_, err = NewPositiveDecimalFromString("not a number")
	require.Error(t, err)

	var parseErr *DecimalParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Error(t, parseErr.Unwrap())
}

func TestPositiveDecimal_JSON(t *testing.T) {
	var d PositiveDecimal
	require.NoError(t, json.Unmarshal([]byte(`0.25`), &d))
	assert.Equal(t, "0.25", d.String())

	// Marshals as a bare number, not a quoted string.
	body, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `0.25`, string(body))

	assert.Error(t, json.Unmarshal([]byte(`0`), &d))
	assert.Error(t, json.Unmarshal([]byte(`-0.25`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &d))
}

func TestNewNonNegativeDecimal(t *testing.T) {
	d, err := NewNonNegativeDecimal(decimal.Zero)
	require.NoError(t, err)
	assert.True(t, d.Decimal().IsZero())

	_, err = NewNonNegativeDecimal(decimal.NewFromFloat(-0.0001))
	require.Error(t, err)

	var decErr *DecimalError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, "non-negative", decErr.Constraint)
}

func TestNonNegativeDecimal_JSON(t *testing.T) {
	var d NonNegativeDecimal
	require.NoError(t, json.Unmarshal([]byte(`0`), &d))
	assert.True(t, d.Decimal().IsZero())

	body, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `0`, string(body))

	assert.Error(t, json.Unmarshal([]byte(`-1`), &d))
}
