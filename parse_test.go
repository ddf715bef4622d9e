package main

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Command
	}{
		{"emptyIsMenu", "", Command{Kind: cmdMenu}},
		{"blankIsMenu", "   ", Command{Kind: cmdMenu}},
		{"menuOption", "1", Command{Kind: cmdMenuOption, MenuOption: 1}},
		{"menuOptionLarge", "42", Command{Kind: cmdMenuOption, MenuOption: 42}},
		{"income", "+3000 3/25", Command{Kind: cmdIncome, Amount: 3000, Month: "03/25"}},
		{"incomeSpacedSign", "+ 3000 3/25", Command{Kind: cmdIncome, Amount: 3000, Month: "03/25"}},
		{"expenseDotSeparator", "-2500 2.25", Command{Kind: cmdExpense, Amount: 2500, Month: "02/25"}},
		{"expensePadded", "-2500 02/25", Command{Kind: cmdExpense, Amount: 2500, Month: "02/25"}},
		{"collapsedWhitespace", "  +3000    3/25  ", Command{Kind: cmdIncome, Amount: 3000, Month: "03/25"}},
		{"monthOutOfRange", "+3000 13/25", Command{Err: errCodeDate}},
		{"monthZero", "+3000 0/25", Command{Err: errCodeDate}},
		{"fourDigitYear", "+3000 3/2025", Command{Err: errCodeCommand}},
		{"signWithoutMonth", "+3000", Command{Err: errCodeCommand}},
		{"signWithJunk", "+abc 3/25", Command{Err: errCodeCommand}},
		{"bareSign", "-", Command{Err: errCodeCommand}},
		{"bank", "bank 12000", Command{Kind: cmdBank, Amount: 12000}},
		{"bankSeparators", "bank 1,000", Command{Kind: cmdBank, Amount: 1000}},
		{"bankFraction", "bank 99.99", Command{Kind: cmdBank, Amount: 99}},
		{"bankBare", "bank", Command{Err: errCodeCommand}},
		{"bankJunk", "bank abc", Command{Err: errCodeAmount}},
		{"bankNegative", "bank -50", Command{Err: errCodeAmount}},
		{"addShorthand", "add +3000 3/25", Command{Kind: cmdIncome, Amount: 3000, Month: "03/25"}},
		{"addCaseInsensitive", "ADD +3000 3/25", Command{Kind: cmdIncome, Amount: 3000, Month: "03/25"}},
		{"addNestedKeyword", "add view", Command{Kind: cmdView}},
		{"addNestedMenuOption", "add 5", Command{Kind: cmdMenuOption, MenuOption: 5}},
		{"addNestedJunk", "add xyz", Command{Err: errCodeCommand}},
		{"addNestedError", "add +3000 13/25", Command{Err: errCodeCommand}},
		{"addBare", "add", Command{Kind: cmdAdd}},
		{"exit", "exit", Command{Kind: cmdExit}},
		{"exitCaseInsensitive", "EXIT", Command{Kind: cmdExit}},
		{"view", "view", Command{Kind: cmdView}},
		{"graph", "graph", Command{Kind: cmdGraph}},
		{"save", "save", Command{Kind: cmdMenu}},
		{"menuKeyword", "Menu", Command{Kind: cmdMenu}},
		{"returnKeyword", "return", Command{Kind: cmdMenu}},
		{"mainKeyword", "main", Command{Kind: cmdMenu}},
		{"gibberish", "hello world", Command{Err: errCodeCommand}},
		{"digitsAndLetters", "12a", Command{Err: errCodeCommand}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseCommand(tc.in)
			if got != tc.want {
				t.Errorf("parseCommand(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseCommandErrorReplacedOnAdd(t *testing.T) {
	// The nested parse fails with invalid_date, but the outer add result
	// must carry the generic invalid_command code.
	got := parseCommand("add +100 13/25")
	if got.Err != errCodeCommand {
		t.Errorf("nested error code leaked through add: got %q, want %q", got.Err, errCodeCommand)
	}
}

func TestErrorMessage(t *testing.T) {
	for _, code := range []parseErrorCode{errCodeCommand, errCodeDate, errCodeAmount} {
		if msg := errorMessage(code); msg == "" || msg == "An unknown error occurred." {
			t.Errorf("errorMessage(%q) = %q, want a specific message", code, msg)
		}
	}
	if msg := errorMessage("no_such_code"); msg != "An unknown error occurred." {
		t.Errorf("unknown code mapped to %q, want the generic fallback", msg)
	}
}
