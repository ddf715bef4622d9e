package main

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFinancialAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1000", 1000},
		{"1,000 ", 1000},
		{" 2 500 ", 2500},
		{"12.75", 12},
		{"0", 0},
		{"1e3", 1000},
	}
	for _, tc := range tests {
		got, err := normalizeFinancialAmount(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}

	for _, in := range []string{"abc", "-5", "-1,000", "", "12..5", "$100"} {
		_, err := normalizeFinancialAmount(in)
		require.Error(t, err, "input %q", in)
		assert.Equal(t, errInvalidAmount, errors.Cause(err), "input %q", in)
	}

	// Large positive magnitudes never fail.
	got, err := normalizeFinancialAmount("99999999999999999999999")
	require.NoError(t, err)
	assert.Positive(t, got)
}

func TestCoerceInt(t *testing.T) {
	got, err := coerceInt("1200")
	require.NoError(t, err)
	assert.Equal(t, 1200, got)

	got, err = coerceInt(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	got, err = coerceInt(json.Number("800"))
	require.NoError(t, err)
	assert.Equal(t, 800, got)

	got, err = coerceInt(json.Number("12.9"))
	require.NoError(t, err)
	assert.Equal(t, 12, got)

	for _, v := range []interface{}{"12.5", "abc", true, []interface{}{1}} {
		_, err := coerceInt(v)
		require.Error(t, err, "value %v", v)
		assert.Equal(t, errInvalidFieldValue, errors.Cause(err), "value %v", v)
	}
}

func TestNormalizeRecord(t *testing.T) {
	rec, err := normalizeRecord(rawRecord{Month: "03/25", Salary: "1200", Expenses: json.Number("800")})
	require.NoError(t, err)
	assert.Equal(t, MonthlyRecord{Month: "03/25", Salary: 1200, Expenses: 800}, rec)

	// Absent fields default to zero.
	rec, err = normalizeRecord(rawRecord{Month: "04/25"})
	require.NoError(t, err)
	assert.Equal(t, MonthlyRecord{Month: "04/25"}, rec)

	_, err = normalizeRecord(rawRecord{Salary: "1200"})
	require.Error(t, err)
	assert.Equal(t, errMissingMonth, errors.Cause(err))

	_, err = normalizeRecord(rawRecord{Month: "03/25", Salary: "not-a-number"})
	require.Error(t, err)
	assert.Equal(t, errInvalidFieldValue, errors.Cause(err))
}

func TestNormalizeDatasetDropsBadRecords(t *testing.T) {
	records := []rawRecord{
		{Month: "01/25", Salary: "1000", Expenses: "500"},
		{Salary: "9999"},                       // no month
		{Month: "02/25", Expenses: "12.5"},     // non-coercible
		{Month: "03/25", Salary: json.Number("2000")},
	}
	ds, warnings, err := normalizeDataset(rawDataset{MonthlyRecords: &records, BankBalance: "750"})
	require.NoError(t, err)
	assert.Equal(t, 750, ds.BankBalance)
	require.Len(t, ds.Records, 2)
	assert.Equal(t, "01/25", ds.Records[0].Month)
	assert.Equal(t, "03/25", ds.Records[1].Month)
	assert.Len(t, warnings, 2)
}

func TestNormalizeDatasetBadBankBalance(t *testing.T) {
	records := []rawRecord{}
	_, _, err := normalizeDataset(rawDataset{MonthlyRecords: &records, BankBalance: "lots"})
	require.Error(t, err)
	assert.Equal(t, errInvalidFieldValue, errors.Cause(err))
}

func TestNormalizeDatasetDefaults(t *testing.T) {
	ds, warnings, err := normalizeDataset(rawDataset{})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Zero(t, ds.BankBalance)
	assert.Empty(t, ds.Records)
}
