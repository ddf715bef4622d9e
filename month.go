package main

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var (
	rMonthStrict  = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	rMonthLenient = regexp.MustCompile(`^([1-9]|0[1-9]|1[0-2])[/.]\d{2}$`)
)

// isMonthCanonical reports whether month is in the canonical MM/YY form,
// zero-padded, month 01-12.
func isMonthCanonical(month string) bool {
	return rMonthStrict.MatchString(month)
}

// isMonthLenient accepts the formats users may type: single- or double-digit
// month, separated from a two-digit year by / or .
func isMonthLenient(month string) bool {
	return rMonthLenient.MatchString(month)
}

// normalizeMonth rewrites a lenient month token (3/25, 03/25, 3.25, 03.25)
// to the canonical MM/YY form.
func normalizeMonth(month string) string {
	month = strings.Replace(month, ".", "/", 1)
	parts := strings.SplitN(month, "/", 2)
	if len(parts) != 2 {
		return month
	}
	if len(parts[0]) == 1 {
		return "0" + parts[0] + "/" + parts[1]
	}
	return parts[0] + "/" + parts[1]
}

// monthSortKey extracts (year, month) integers for chronological ordering.
// Anything unparseable sorts first.
func monthSortKey(month string) (year, mon int) {
	parts := strings.SplitN(month, "/", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	m, merr := strconv.Atoi(parts[0])
	y, yerr := strconv.Atoi(parts[1])
	if merr != nil || yerr != nil {
		return 0, 0
	}
	return y, m
}

// monthTime resolves a canonical MM/YY string to the first day of that
// month. Two-digit years are in the 2000s.
func monthTime(month string) (time.Time, error) {
	parts := strings.SplitN(month, "/", 2)
	if len(parts) != 2 {
		return time.Time{}, errors.Wrapf(errInvalidMonth, "month %q", month)
	}
	m, merr := strconv.Atoi(parts[0])
	y, yerr := strconv.Atoi(parts[1])
	if merr != nil || yerr != nil || m < 1 || m > 12 {
		return time.Time{}, errors.Wrapf(errInvalidMonth, "month %q", month)
	}
	return time.Date(2000+y, time.Month(m), 1, 0, 0, 0, 0, time.UTC), nil
}

// nextMonth returns the month following the given MM/YY month.
func nextMonth(month string) (string, error) {
	t, err := monthTime(month)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 1, 0).Format("01/06"), nil
}

// calendarNextMonth returns the month after the current wall-clock month.
func calendarNextMonth() string {
	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, 0).Format("01/06")
}
