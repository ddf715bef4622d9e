package main

import (
	"regexp"
	"strconv"
	"strings"
)

type commandKind int

const (
	cmdNone commandKind = iota
	cmdMenu
	cmdMenuOption
	cmdAdd
	cmdIncome
	cmdExpense
	cmdBank
	cmdView
	cmdGraph
	cmdExit
)

type parseErrorCode string

const (
	errCodeCommand parseErrorCode = "invalid_command"
	errCodeDate    parseErrorCode = "invalid_date"
	errCodeAmount  parseErrorCode = "invalid_amount"
)

// Command is the parsed form of one line of user input. Either Kind is set
// or Err holds the reason the line was rejected, never both.
type Command struct {
	Kind       commandKind
	Amount     int
	Month      string
	MenuOption int
	Err        parseErrorCode
}

var (
	rDigits      = regexp.MustCompile(`^\d+$`)
	rAddPrefix   = regexp.MustCompile(`^(?i)add\s+(.+)$`)
	rBankAmount  = regexp.MustCompile(`^(?i)bank\s+(.+)$`)
	rBankBare    = regexp.MustCompile(`^(?i)bank\b`)
	rUpdate      = regexp.MustCompile(`^([+\-])\s?(\d+)\s([0-9]+[/.]\d{2})$`)
	rSignAmount  = regexp.MustCompile(`^[+\-]\s*\d+$`)
	rSignJunk    = regexp.MustCompile(`^[+\-][^\d].*$`)
	rSignPartial = regexp.MustCompile(`^[+\-].*\d+/\d+$`)
)

// parseCommand turns one line of user input into a Command. Rules are
// ordered; the first match wins. An `add <rest>` prefix re-enters the parser
// on the rest, so `add +500 3/25` and `+500 3/25` mean the same thing.
func parseCommand(line string) Command {
	line = strings.Join(strings.Fields(line), " ")

	if line == "" {
		return Command{Kind: cmdMenu}
	}
	if rDigits.MatchString(line) {
		n, err := strconv.Atoi(line)
		if err != nil {
			// Too many digits to be a menu option.
			return Command{Err: errCodeCommand}
		}
		return Command{Kind: cmdMenuOption, MenuOption: n}
	}
	if m := rAddPrefix.FindStringSubmatch(line); m != nil {
		nested := parseCommand(m[1])
		if nested.Kind == cmdNone || nested.Err != "" {
			return Command{Err: errCodeCommand}
		}
		return nested
	}
	if m := rBankAmount.FindStringSubmatch(line); m != nil {
		amount, err := normalizeFinancialAmount(strings.TrimSpace(m[1]))
		if err != nil {
			return Command{Err: errCodeAmount}
		}
		return Command{Kind: cmdBank, Amount: amount}
	}
	if rBankBare.MatchString(line) {
		return Command{Err: errCodeCommand}
	}
	if m := rUpdate.FindStringSubmatch(line); m != nil {
		// The amount group is digit-only, but it still goes through the
		// same validator as every other amount.
		amount, err := normalizeFinancialAmount(m[2])
		if err != nil {
			return Command{Err: errCodeAmount}
		}
		if !isMonthLenient(m[3]) {
			return Command{Err: errCodeDate}
		}
		kind := cmdIncome
		if m[1] == "-" {
			kind = cmdExpense
		}
		return Command{Kind: kind, Amount: amount, Month: normalizeMonth(m[3])}
	}
	if rSignAmount.MatchString(line) || rSignJunk.MatchString(line) || rSignPartial.MatchString(line) {
		return Command{Err: errCodeCommand}
	}

	switch strings.ToLower(line) {
	case "save", "return", "menu", "main":
		return Command{Kind: cmdMenu}
	case "exit":
		return Command{Kind: cmdExit}
	case "graph":
		return Command{Kind: cmdGraph}
	case "view":
		return Command{Kind: cmdView}
	case "add":
		return Command{Kind: cmdAdd}
	}
	return Command{Err: errCodeCommand}
}

var parseErrorMessages = map[parseErrorCode]string{
	errCodeCommand: "Invalid command format. Please use one of the valid commands or menu options.",
	errCodeDate:    "Invalid date format. Month must be between 1-12 and year should be in YY format (e.g., 3/25 or 3.25).",
	errCodeAmount:  "Invalid amount format. Please enter a valid number (e.g., 1000).",
}

// errorMessage maps a parse error code to user-facing guidance.
func errorMessage(code parseErrorCode) string {
	if msg, ok := parseErrorMessages[code]; ok {
		return msg
	}
	return "An unknown error occurred."
}
