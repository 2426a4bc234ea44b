package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowDays(t *testing.T) {
	w, err := WindowDays(1)
	require.NoError(t, err)
	assert.Equal(t, WindowOneDay, w)

	w, err = WindowDays(30)
	require.NoError(t, err)
	assert.Equal(t, int64(30*86400), w.Seconds())

	_, err = WindowDays(0)
	assert.Error(t, err)

	_, err = WindowDays(31)
	assert.Error(t, err)
}

func TestSideParam(t *testing.T) {
	assert.Equal(t, "buy", SideBuy.Param())
	assert.Equal(t, "sell", SideSell.Param())
}
