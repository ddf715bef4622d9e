package main

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Validation failures callers branch on. Wrapped errors carry the offending
// input; compare with errors.Cause.
var (
	errInvalidAmount     = errors.New("invalid amount")
	errInvalidMonth      = errors.New("invalid month")
	errMissingMonth      = errors.New("record is missing required 'month' field")
	errInvalidFieldValue = errors.New("invalid field value")
)

// normalizeFinancialAmount cleans a user-supplied amount like "1,000 " or
// "12.75" into a non-negative integer. Fractions truncate toward zero.
func normalizeFinancialAmount(raw string) (int, error) {
	cleaned := strings.ReplaceAll(raw, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, errors.Wrapf(errInvalidAmount, "cannot parse %q", raw)
	}
	if f < 0 {
		return 0, errors.Wrapf(errInvalidAmount, "negative value %q", raw)
	}
	if f >= math.MaxInt {
		// Large positive magnitudes never fail.
		return math.MaxInt, nil
	}
	return int(f), nil
}

// coerceInt converts a JSON-decoded value, string or numeric, to an integer.
// String values must be whole numbers; numeric values truncate toward zero.
func coerceInt(v interface{}) (int, error) {
	switch x := v.(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, errors.Wrapf(errInvalidFieldValue, "value %q", x)
		}
		return n, nil
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n), nil
		}
		if f, err := x.Float64(); err == nil {
			return int(f), nil
		}
		return 0, errors.Wrapf(errInvalidFieldValue, "value %v", x)
	case float64:
		return int(x), nil
	case int:
		return x, nil
	default:
		return 0, errors.Wrapf(errInvalidFieldValue, "value %v of type %T", v, v)
	}
}

// normalizeRecord coerces one raw record into a well-typed MonthlyRecord.
// The month key must be present; absent salary or expenses default to 0.
func normalizeRecord(raw rawRecord) (MonthlyRecord, error) {
	if raw.Month == nil {
		return MonthlyRecord{}, errMissingMonth
	}
	month, ok := raw.Month.(string)
	if !ok {
		// Keep whatever was there; the sort key treats junk as epoch.
		month = fmt.Sprint(raw.Month)
	}

	rec := MonthlyRecord{Month: month}
	if raw.Salary != nil {
		n, err := coerceInt(raw.Salary)
		if err != nil {
			return MonthlyRecord{}, errors.Wrapf(err, "invalid salary in record for %v", month)
		}
		rec.Salary = n
	}
	if raw.Expenses != nil {
		n, err := coerceInt(raw.Expenses)
		if err != nil {
			return MonthlyRecord{}, errors.Wrapf(err, "invalid expenses in record for %v", month)
		}
		rec.Expenses = n
	}
	return rec, nil
}

// normalizeDataset turns raw decoded data into a Dataset. Records that fail
// normalization are dropped with a warning, never fatal. A non-coercible
// bank balance fails the whole dataset.
func normalizeDataset(raw rawDataset) (*Dataset, []string, error) {
	ds := &Dataset{}
	if raw.BankBalance != nil {
		n, err := coerceInt(raw.BankBalance)
		if err != nil {
			return nil, nil, errors.Wrap(err, "invalid bank balance value")
		}
		ds.BankBalance = n
	}

	var warnings []string
	if raw.MonthlyRecords != nil {
		for _, r := range *raw.MonthlyRecords {
			rec, err := normalizeRecord(r)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("Skipped invalid record - %v", err))
				continue
			}
			ds.Records = append(ds.Records, rec)
		}
	}
	return ds, warnings, nil
}
