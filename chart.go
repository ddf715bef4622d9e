package main

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// chartSeries builds the income and expense series with one predicted
// period appended, plus the month labels for the axis. The core only hands
// numbers to the chart renderer; it owns no plotting logic.
func chartSeries(d *Dataset) (months []string, income, expenses []float64) {
	sorted := make([]MonthlyRecord, len(d.Records))
	copy(sorted, d.Records)
	sortRecords(sorted)

	for _, rec := range sorted {
		months = append(months, rec.Month)
		income = append(income, float64(rec.Salary))
		expenses = append(expenses, float64(rec.Expenses))
	}
	if len(months) == 0 {
		return
	}

	next, err := nextMonth(months[len(months)-1])
	if err != nil {
		next = "Next"
	}
	pi, pe, _ := predictNextMonth(d)
	months = append(months, next)
	income = append(income, float64(pi))
	expenses = append(expenses, float64(pe))
	return
}

// historyChart plots income and expenses over time, one predicted period
// at the end.
func (r *Renderer) historyChart(d *Dataset) {
	months, income, expenses := chartSeries(d)
	if len(months) == 0 {
		fmt.Fprintln(r.out, "No data available to generate graph.")
		return
	}

	opts := []asciigraph.Option{
		asciigraph.Height(12),
		asciigraph.Caption("Monthly Income and Expenses"),
	}
	if r.colorized {
		opts = append(opts, asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red))
	}
	fmt.Fprintln(r.out, asciigraph.PlotMany([][]float64{income, expenses}, opts...))
	fmt.Fprintf(r.out, "%s  %s\n", r.good("# Income"), r.bad("# Expenses"))
	fmt.Fprintf(r.out, "Months: %s (last is predicted)\n", strings.Join(months, "  "))
}

// totalsChart draws total income vs expenses as horizontal bars.
func (r *Renderer) totalsChart(d *Dataset) {
	if len(d.Records) == 0 {
		fmt.Fprintln(r.out, "No data available to generate graph.")
		return
	}
	income, expenses := d.totals()

	const barWidth = 40
	max := income
	if expenses > max {
		max = expenses
	}
	bar := func(v int) string {
		if max == 0 {
			return ""
		}
		w := v * barWidth / max
		if w == 0 && v > 0 {
			w = 1
		}
		return strings.Repeat("#", w)
	}

	fmt.Fprintf(r.out, "\n%s\n", r.header("Total Income vs Expenses"))
	fmt.Fprintf(r.out, "%-9s %s %s\n", "Income", r.good("%s", bar(income)), r.money(income))
	fmt.Fprintf(r.out, "%-9s %s %s\n", "Expenses", r.bad("%s", bar(expenses)), r.money(expenses))
}
