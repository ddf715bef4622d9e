package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Renderer owns every piece of terminal output. Color printers are resolved
// once at construction from the config, so nothing else in the program
// touches escape codes.
type Renderer struct {
	out       io.Writer
	currency  string
	colorized bool

	header func(format string, a ...interface{}) string
	good   func(format string, a ...interface{}) string
	bad    func(format string, a ...interface{}) string
	info   func(format string, a ...interface{}) string
	accent func(format string, a ...interface{}) string
}

func newRenderer(out io.Writer, cfg Config) *Renderer {
	r := &Renderer{
		out:       out,
		currency:  cfg.Currency,
		colorized: cfg.Color,
		header:    fmt.Sprintf,
		good:      fmt.Sprintf,
		bad:       fmt.Sprintf,
		info:      fmt.Sprintf,
		accent:    fmt.Sprintf,
	}
	if cfg.Color {
		r.header = color.New(color.FgMagenta).SprintfFunc()
		r.good = color.New(color.FgGreen).SprintfFunc()
		r.bad = color.New(color.FgRed).SprintfFunc()
		r.info = color.New(color.FgBlue).SprintfFunc()
		r.accent = color.New(color.FgHiYellow).SprintfFunc()
	}
	return r
}

// money renders an integer amount as e.g. $1,234.00. Amounts are whole
// currency units, so the fraction is always zero.
func (r *Renderer) money(n int) string {
	return r.currency + commafy(n) + ".00"
}

// commafy groups digits by thousands: 1234567 -> "1,234,567".
func commafy(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.Itoa(n)
	if len(s) > 3 {
		var b strings.Builder
		lead := len(s) % 3
		if lead > 0 {
			b.WriteString(s[:lead])
		}
		for i := lead; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		return "-" + s
	}
	return s
}

func (r *Renderer) clearScreen() {
	fmt.Fprint(r.out, "\033[H\033[2J")
}

func (r *Renderer) errorLine(msg string) {
	fmt.Fprintln(r.out, r.bad("%s", msg))
}

func (r *Renderer) successLine(msg string) {
	fmt.Fprintln(r.out, r.good("%s", msg))
}

func (r *Renderer) title(text string) {
	fmt.Fprintf(r.out, "\n%s\n\n", r.header("===== %s =====", text))
}

func (r *Renderer) prompt() {
	fmt.Fprintf(r.out, "\n%s ", r.header(">>>"))
}

func (r *Renderer) welcome() {
	bar := strings.Repeat("=", 50)
	fmt.Fprintln(r.out, r.header("%s", bar))
	fmt.Fprintln(r.out, r.header("           Monthly Budget Management App"))
	fmt.Fprintln(r.out, r.header("%s", bar))
	fmt.Fprintln(r.out)
}

func (r *Renderer) goodbye() {
	fmt.Fprintln(r.out, "\nData saved successfully!")
	fmt.Fprintln(r.out, "\nThank you for using the Budget Management App. Goodbye!")
}

func (r *Renderer) mainMenu() {
	r.title("Main Menu")
	fmt.Fprintln(r.out, "1. View Budget Data")
	fmt.Fprintln(r.out, "2. Add or Update Data")
	fmt.Fprintln(r.out, "3. Save and Exit")
	fmt.Fprintln(r.out, "\nOr use one of the following commands:")
	fmt.Fprintln(r.out, "  - 'view' - Go to View Budget Data menu")
	fmt.Fprintln(r.out, "  - 'add' - Go to Add Data menu")
	fmt.Fprintln(r.out, "  - 'add [+/-][amount] [month/year]' - Add data directly (e.g., add +3000 3/25 or add +3000 3.25)")
	fmt.Fprintln(r.out, "  - 'bank [amount]' - Update bank balance (e.g., bank 12000)")
	fmt.Fprintln(r.out, "  - 'graph' - View graphs")
	fmt.Fprintln(r.out, "  - 'exit' - Save and exit")
	r.prompt()
}

func (r *Renderer) viewMenu(currentView string) {
	r.title("View Options")
	if currentView == "summary" {
		fmt.Fprintln(r.out, "1. View Monthly Records")
	} else {
		fmt.Fprintln(r.out, "1. View Budget Summary")
	}
	fmt.Fprintln(r.out, "2. View Graphs")
	fmt.Fprintln(r.out, "3. Return to Main Menu")
	fmt.Fprintln(r.out, "4. Save and Exit")
	fmt.Fprintln(r.out, "\nOr use one of the following commands:")
	fmt.Fprintln(r.out, "  - 'add' - Go to Add Data menu")
	fmt.Fprintln(r.out, "  - 'add [+/-][amount] [month/year]' - Add data directly (e.g., add +3000 3/25 or add +3000 3.25)")
	fmt.Fprintln(r.out, "  - 'bank [amount]' - Update bank balance (e.g., bank 12000)")
	fmt.Fprintln(r.out, "  - 'view' - Return to View Budget Data menu")
	fmt.Fprintln(r.out, "  - 'exit' - Save and exit")
	r.prompt()
}

func (r *Renderer) addMenu() {
	r.title("Add or Update Data")
	fmt.Fprintln(r.out, "Enter data in one of the following formats:")
	fmt.Fprintln(r.out, "  - Income: +[amount] [month/year] (e.g., +3000 3/25 or +3000 3.25)")
	fmt.Fprintln(r.out, "  - Expense: -[amount] [month/year] (e.g., -2500 2/25 or -2500 2.25)")
	fmt.Fprintln(r.out, "  - Bank Balance: bank [amount] (e.g., bank 12000)")
	fmt.Fprintln(r.out, "\nOr enter:")
	fmt.Fprintln(r.out, "  - Empty input / 'menu' / 'return' - Return to main menu")
	fmt.Fprintln(r.out, "  - 'view' - Go to View Budget Data menu")
	fmt.Fprintln(r.out, "  - 'graph' - View graphs")
	fmt.Fprintln(r.out, "  - 'exit' - Save and exit")
	r.prompt()
}

// summary prints the budget summary screen. It reports false, after an
// explanatory error line, when there is nothing meaningful to show yet.
func (r *Renderer) summary(d *Dataset) bool {
	r.clearScreen()
	r.title("Budget Summary")

	if len(d.Records) == 0 {
		r.errorLine("No budget data available. Please add some data first.")
		return false
	}
	if !d.hasIncomeData() {
		r.errorLine("No salary data available. Please add income data first.")
		return false
	}
	if !d.hasExpenseData() {
		r.errorLine("No expense data available. Please add expense data first.")
		return false
	}

	totalIncome, totalExpenses := d.totals()
	expIncome, expExpenses, expDifference := predictNextMonth(d)
	leftover := expDifference + d.BankBalance

	fmt.Fprintln(r.out, r.accent("Bank Balance: %s", r.money(d.BankBalance)))
	fmt.Fprintln(r.out, r.good("Total Income: %s", r.money(totalIncome)))
	fmt.Fprintln(r.out, r.bad("Total Expenses: %s", r.money(totalExpenses)))
	fmt.Fprintln(r.out, r.info("Total Difference: %s", r.money(totalIncome-totalExpenses)))

	fmt.Fprintf(r.out, "\n%s\n", r.header("===== Next Month Prediction ====="))
	fmt.Fprintln(r.out, r.info("Month: %s", calendarNextMonth()))
	fmt.Fprintln(r.out, r.good("Expected Income: %s", r.money(expIncome)))
	fmt.Fprintln(r.out, r.bad("Expected Expenses: %s", r.money(expExpenses)))
	fmt.Fprintln(r.out, r.info("Expected Difference: %s", r.money(expDifference)))
	fmt.Fprintln(r.out, r.accent("Expected Total Leftover: %s", r.money(leftover)))
	return true
}

// records prints the chronological table of monthly records. Reports false
// when there is no data yet.
func (r *Renderer) records(d *Dataset) bool {
	r.clearScreen()
	r.title("Monthly Records")

	if len(d.Records) == 0 {
		r.errorLine("No budget data available. Please add some data first.")
		return false
	}

	sorted := make([]MonthlyRecord, len(d.Records))
	copy(sorted, d.Records)
	sortRecords(sorted)

	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Month", "Income", "Expenses", "Remaining"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})
	for _, rec := range sorted {
		table.Append([]string{
			rec.Month,
			r.money(rec.Salary),
			r.money(rec.Expenses),
			r.money(remaining(rec)),
		})
	}
	table.Render()
	return true
}

// duplicatePrompt shows the modal dialog for a month that already has data
// in the targeted field.
func (r *Renderer) duplicatePrompt(rec MonthlyRecord, proposed int, isIncome bool) {
	entryType := "income"
	existing := rec.Salary
	if !isIncome {
		entryType = "expense"
		existing = rec.Expenses
	}

	r.clearScreen()
	r.title("Duplicate Entry Detected")
	fmt.Fprintf(r.out, "The month %s already has %s data:\n", rec.Month, entryType)
	fmt.Fprintf(r.out, "Existing Income: %s\n", r.money(rec.Salary))
	fmt.Fprintf(r.out, "Existing Expenses: %s\n", r.money(rec.Expenses))
	fmt.Fprintf(r.out, "\nNew %s: %s\n", strings.ToUpper(entryType[:1])+entryType[1:], r.money(proposed))
	fmt.Fprintln(r.out, "\nChoose an option:")
	fmt.Fprintln(r.out, "1. Add - Combine new amount with existing amount")
	fmt.Fprintf(r.out, "   Result: %s\n", r.money(existing+proposed))
	fmt.Fprintln(r.out, "2. Overwrite - Replace existing amount with new amount")
	fmt.Fprintf(r.out, "   Result: %s\n", r.money(proposed))
	fmt.Fprintln(r.out, "3. Cancel - Keep existing data unchanged")
	r.prompt()
}

// history prints the mutation journal.
func (r *Renderer) history(entries []journalEntry) {
	r.title("Mutation History")
	if len(entries) == 0 {
		fmt.Fprintln(r.out, "No mutations recorded yet.")
		return
	}
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"When", "Action", "Month", "Amount"})
	for _, e := range entries {
		table.Append([]string{
			e.At.Format("2006/01/02 15:04:05"),
			e.Action,
			e.Month,
			r.money(e.Amount),
		})
	}
	table.Render()
}
