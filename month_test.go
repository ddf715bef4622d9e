package main

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMonthCanonical(t *testing.T) {
	for _, m := range []string{"01/25", "12/99", "09/00"} {
		assert.True(t, isMonthCanonical(m), m)
	}
	for _, m := range []string{"1/25", "13/25", "00/25", "03.25", "03/2025", "3-25", ""} {
		assert.False(t, isMonthCanonical(m), m)
	}
}

func TestIsMonthLenient(t *testing.T) {
	for _, m := range []string{"3/25", "03/25", "3.25", "12.99", "1/00"} {
		assert.True(t, isMonthLenient(m), m)
	}
	for _, m := range []string{"13/25", "0/25", "00/25", "3/2025", "3-25", "march/25"} {
		assert.False(t, isMonthLenient(m), m)
	}
}

func TestNormalizeMonth(t *testing.T) {
	tests := map[string]string{
		"3/25":  "03/25",
		"03/25": "03/25",
		"3.25":  "03/25",
		"12.25": "12/25",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizeMonth(in), in)
	}
}

func TestMonthSortKey(t *testing.T) {
	y, m := monthSortKey("03/25")
	assert.Equal(t, 25, y)
	assert.Equal(t, 3, m)

	// Junk sorts first.
	for _, in := range []string{"garbage", "ab/cd", ""} {
		y, m := monthSortKey(in)
		assert.Zero(t, y, in)
		assert.Zero(t, m, in)
	}
}

func TestNextMonth(t *testing.T) {
	next, err := nextMonth("03/25")
	require.NoError(t, err)
	assert.Equal(t, "04/25", next)

	next, err = nextMonth("12/25")
	require.NoError(t, err)
	assert.Equal(t, "01/26", next)

	_, err = nextMonth("nope")
	require.Error(t, err)
	assert.Equal(t, errInvalidMonth, errors.Cause(err))
}

func TestCalendarNextMonth(t *testing.T) {
	assert.True(t, isMonthCanonical(calendarNextMonth()))
}
