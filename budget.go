package main

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// MonthlyRecord holds one month's income and expenses, keyed by the
// canonical MM/YY month string.
type MonthlyRecord struct {
	Month    string
	Salary   int
	Expenses int
}

// Dataset is the whole in-memory budget state: monthly records plus the
// bank balance, which is tracked independently of the records.
type Dataset struct {
	Records     []MonthlyRecord
	BankBalance int
}

// sortRecords orders records chronologically, oldest first. A record whose
// month fails to parse sorts to the front.
func sortRecords(records []MonthlyRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		yi, mi := monthSortKey(records[i].Month)
		yj, mj := monthSortKey(records[j].Month)
		if yi != yj {
			return yi < yj
		}
		return mi < mj
	})
}

// findRecord returns a pointer to the record for month, or nil. Matching is
// an exact comparison after trimming.
func (d *Dataset) findRecord(month string) *MonthlyRecord {
	month = strings.TrimSpace(month)
	for i := range d.Records {
		if strings.TrimSpace(d.Records[i].Month) == month {
			return &d.Records[i]
		}
	}
	return nil
}

// upsertRecord stores amount as income or expense for month, creating the
// record if needed. The untouched field keeps its value (or defaults to 0
// on a fresh record). Validation happens before any mutation.
func (d *Dataset) upsertRecord(month string, amount int, isIncome bool) error {
	if amount < 0 {
		return errors.Wrapf(errInvalidAmount, "amount %d", amount)
	}
	if !isMonthCanonical(month) {
		return errors.Wrapf(errInvalidMonth, "month %q, expected MM/YY", month)
	}

	rec := d.findRecord(month)
	if rec == nil {
		d.Records = append(d.Records, MonthlyRecord{Month: month})
		rec = &d.Records[len(d.Records)-1]
	}
	if isIncome {
		rec.Salary = amount
	} else {
		rec.Expenses = amount
	}
	// Sorting after a pure overwrite is a no-op, so no need to distinguish.
	sortRecords(d.Records)
	return nil
}

// setBankBalance replaces the bank balance wholesale.
func (d *Dataset) setBankBalance(amount int) error {
	if amount < 0 {
		return errors.Wrapf(errInvalidAmount, "balance %d", amount)
	}
	d.BankBalance = amount
	return nil
}

// remaining is income minus expenses for one month. Can go negative.
func remaining(r MonthlyRecord) int {
	return r.Salary - r.Expenses
}

// totals sums salary and expenses across all records.
func (d *Dataset) totals() (income, expenses int) {
	for _, r := range d.Records {
		income += r.Salary
		expenses += r.Expenses
	}
	return income, expenses
}

// averages returns mean salary and mean expenses across all records, or
// (0, 0) when there are none.
func averages(d *Dataset) (float64, float64) {
	if len(d.Records) == 0 {
		return 0, 0
	}
	income, expenses := d.totals()
	n := float64(len(d.Records))
	return float64(income) / n, float64(expenses) / n
}

// predictNextMonth projects next month's income, expenses and their
// difference from the historical averages, truncated toward zero.
func predictNextMonth(d *Dataset) (income, expenses, difference int) {
	ai, ae := averages(d)
	income, expenses = int(ai), int(ae)
	return income, expenses, income - expenses
}

// hasIncomeData reports whether any record carries a positive salary.
func (d *Dataset) hasIncomeData() bool {
	for _, r := range d.Records {
		if r.Salary > 0 {
			return true
		}
	}
	return false
}

// hasExpenseData reports whether any record carries positive expenses.
func (d *Dataset) hasExpenseData() bool {
	for _, r := range d.Records {
		if r.Expenses > 0 {
			return true
		}
	}
	return false
}
