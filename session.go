package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// session drives the interactive loops. It owns the dataset for the life of
// the process; every successful mutation is written through to the store
// (and journal) before the next prompt, so memory and disk reconverge after
// each user-visible success message.
type session struct {
	data    *Dataset
	store   *Store
	journal *Journal // nil when the journal could not be opened
	r       *Renderer
	in      *bufio.Scanner
}

func newSession(data *Dataset, store *Store, journal *Journal, r *Renderer, in io.Reader) *session {
	return &session{data: data, store: store, journal: journal, r: r, in: bufio.NewScanner(in)}
}

// readLine reads one line of input. The second result is false on EOF,
// which every loop treats as a save-and-exit.
func (s *session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// persist writes the dataset through to disk. Failures degrade to a warning;
// the in-memory state stays authoritative until the next attempt.
func (s *session) persist() {
	if err := s.store.Save(s.data); err != nil {
		s.r.errorLine(fmt.Sprintf("Error saving data: %v", err))
	}
}

func (s *session) logMutation(action, month string, amount int) {
	if s.journal == nil {
		return
	}
	e := journalEntry{At: time.Now(), Action: action, Month: month, Amount: amount}
	if err := s.journal.Append(e); err != nil {
		s.r.errorLine(fmt.Sprintf("Warning: could not record mutation: %v", err))
	}
}

func (s *session) saveAndExit() {
	s.persist()
	s.r.goodbye()
}

// missingDataMessage explains why graphs or the summary cannot be shown
// yet, or returns "" when there is enough data.
func (s *session) missingDataMessage() string {
	switch {
	case len(s.data.Records) == 0:
		return "No budget data available. Please add some data first."
	case !s.data.hasIncomeData():
		return "No salary data available. Please add income data first."
	case !s.data.hasExpenseData():
		return "No expense data available. Please add expense data first."
	}
	return ""
}

// flushMessages shows a pending error or success message on a fresh screen
// and resets it.
func (s *session) flushMessages(errMsg, okMsg *string) {
	if *errMsg != "" {
		s.r.clearScreen()
		s.r.errorLine(*errMsg)
		fmt.Fprintln(s.r.out)
		*errMsg = ""
	}
	if *okMsg != "" {
		s.r.clearScreen()
		s.r.successLine(*okMsg)
		fmt.Fprintln(s.r.out)
		*okMsg = ""
	}
}

// run is the main menu loop. It returns once the user saves and exits.
func (s *session) run() {
	s.r.clearScreen()
	s.r.welcome()

	var errMsg, okMsg string
	for {
		s.flushMessages(&errMsg, &okMsg)
		s.r.mainMenu()
		line, ok := s.readLine()
		if !ok {
			s.saveAndExit()
			return
		}

		cmd := parseCommand(line)
		switch {
		case cmd.Kind == cmdMenuOption:
			switch cmd.MenuOption {
			case 1:
				if !s.viewLoop() {
					return
				}
			case 2:
				if !s.addLoop(false) {
					return
				}
			case 3:
				s.saveAndExit()
				return
			default:
				errMsg = "Invalid choice. Please try again."
			}
		case cmd.Kind == cmdAdd:
			if !s.addLoop(false) {
				return
			}
		case cmd.Err != "":
			errMsg = errorMessage(cmd.Err)
		case cmd.Kind == cmdBank:
			okMsg, errMsg = s.applyBank(cmd.Amount)
		case cmd.Kind == cmdIncome:
			okMsg, errMsg = s.applyEntry(cmd.Month, cmd.Amount, true)
		case cmd.Kind == cmdExpense:
			okMsg, errMsg = s.applyEntry(cmd.Month, cmd.Amount, false)
		case cmd.Kind == cmdExit:
			s.saveAndExit()
			return
		case cmd.Kind == cmdGraph:
			if msg := s.missingDataMessage(); msg != "" {
				// Nothing to plot; send the user to the add menu instead.
				s.r.clearScreen()
				s.r.errorLine(msg)
				fmt.Fprintln(s.r.out)
				if !s.addLoop(true) {
					return
				}
				continue
			}
			if !s.showGraphs() {
				return
			}
		case cmd.Kind == cmdView:
			s.r.clearScreen()
			if !s.viewLoop() {
				return
			}
		default:
			errMsg = "Invalid choice or command format. Please try again."
		}
	}
}

// viewLoop is the view-data menu, toggling between the summary and the
// records table. Reports false when the program should terminate.
func (s *session) viewLoop() bool {
	if !s.r.summary(s.data) {
		s.r.clearScreen()
		s.r.errorLine(s.missingDataMessage())
		fmt.Fprintln(s.r.out)
		return s.addLoop(true)
	}

	currentView := "summary"
	redisplay := func() {
		if currentView == "summary" {
			s.r.summary(s.data)
		} else {
			s.r.records(s.data)
		}
	}

	var errMsg, okMsg string
	for {
		if errMsg != "" || okMsg != "" {
			s.flushMessages(&errMsg, &okMsg)
			redisplay()
		}
		s.r.viewMenu(currentView)
		line, ok := s.readLine()
		if !ok {
			s.saveAndExit()
			return false
		}

		cmd := parseCommand(line)
		switch {
		case cmd.Kind == cmdMenuOption:
			switch cmd.MenuOption {
			case 1:
				if currentView == "summary" {
					currentView = "records"
				} else {
					currentView = "summary"
				}
				redisplay()
			case 2:
				if !s.showGraphs() {
					return false
				}
				redisplay()
			case 3:
				s.r.clearScreen()
				return true
			case 4:
				s.saveAndExit()
				return false
			default:
				errMsg = "Invalid choice. Please try again."
			}
		case cmd.Err != "":
			errMsg = errorMessage(cmd.Err)
		case cmd.Kind == cmdMenu:
			s.r.clearScreen()
			return true
		case cmd.Kind == cmdExit:
			s.saveAndExit()
			return false
		case cmd.Kind == cmdView:
			redisplay()
		case cmd.Kind == cmdGraph:
			if msg := s.missingDataMessage(); msg != "" {
				errMsg = msg
				continue
			}
			if !s.showGraphs() {
				return false
			}
			redisplay()
		case cmd.Kind == cmdBank:
			okMsg, errMsg = s.applyBank(cmd.Amount)
		case cmd.Kind == cmdIncome:
			okMsg, errMsg = s.applyEntry(cmd.Month, cmd.Amount, true)
		case cmd.Kind == cmdExpense:
			okMsg, errMsg = s.applyEntry(cmd.Month, cmd.Amount, false)
		case cmd.Kind == cmdAdd:
			s.r.clearScreen()
			if !s.addLoop(false) {
				return false
			}
			redisplay()
		default:
			errMsg = "Invalid choice or command. Please try again."
		}
	}
}

// addLoop is the add-data menu. Reports false when the program should
// terminate.
func (s *session) addLoop(skipClear bool) bool {
	if !skipClear {
		s.r.clearScreen()
	}

	var errMsg, okMsg string
	for {
		s.flushMessages(&errMsg, &okMsg)
		s.r.addMenu()
		line, ok := s.readLine()
		if !ok {
			s.saveAndExit()
			return false
		}

		cmd := parseCommand(line)
		switch {
		case cmd.Err != "":
			errMsg = errorMessage(cmd.Err)
		case cmd.Kind == cmdMenu:
			s.r.clearScreen()
			return true
		case cmd.Kind == cmdExit:
			s.saveAndExit()
			return false
		case cmd.Kind == cmdGraph:
			if msg := s.missingDataMessage(); msg != "" {
				errMsg = msg
				continue
			}
			if !s.showGraphs() {
				return false
			}
		case cmd.Kind == cmdBank:
			okMsg, errMsg = s.applyBank(cmd.Amount)
		case cmd.Kind == cmdIncome:
			okMsg, errMsg = s.applyEntry(cmd.Month, cmd.Amount, true)
		case cmd.Kind == cmdExpense:
			okMsg, errMsg = s.applyEntry(cmd.Month, cmd.Amount, false)
		case cmd.Kind == cmdView:
			s.r.clearScreen()
			if !s.viewLoop() {
				return false
			}
			s.r.clearScreen()
		default:
			// Menu options and a bare `add` mean nothing here; just show
			// the menu again.
		}
	}
}

// showGraphs renders both charts and waits for Enter. Reports false on EOF.
func (s *session) showGraphs() bool {
	s.r.clearScreen()
	s.r.title("Viewing Budget Graphs")
	fmt.Fprintln(s.r.out, "Showing all available graphs.")
	fmt.Fprintln(s.r.out)
	s.r.historyChart(s.data)
	s.r.totalsChart(s.data)
	fmt.Fprint(s.r.out, "\nPress Enter to continue...")
	_, ok := s.readLine()
	s.r.clearScreen()
	if !ok {
		s.saveAndExit()
		return false
	}
	return true
}

func (s *session) applyBank(amount int) (okMsg, errMsg string) {
	if err := s.data.setBankBalance(amount); err != nil {
		return "", fmt.Sprintf("Error updating bank balance: %v", err)
	}
	s.logMutation("bank", "", amount)
	s.persist()
	return fmt.Sprintf("Bank balance updated to %s", s.r.money(amount)), ""
}

// applyEntry records an income or expense. When the month already has a
// strictly positive value in the targeted field, the duplicate-resolution
// dialog decides what happens.
func (s *session) applyEntry(month string, amount int, isIncome bool) (okMsg, errMsg string) {
	label, action := "Income", "income"
	if !isIncome {
		label, action = "Expense", "expense"
	}

	existing := s.data.findRecord(month)
	duplicate := existing != nil &&
		((isIncome && existing.Salary > 0) || (!isIncome && existing.Expenses > 0))
	if duplicate {
		okMsg, errMsg = s.resolveDuplicate(month, amount, isIncome)
		if errMsg == "" {
			s.persist()
		}
		return okMsg, errMsg
	}

	if err := s.data.upsertRecord(month, amount, isIncome); err != nil {
		return "", fmt.Sprintf("Error adding %s: %v", action, err)
	}
	s.logMutation(action, month, amount)
	s.persist()
	return fmt.Sprintf("%s of %s added for %s", label, s.r.money(amount), month), ""
}

// resolveDuplicate runs the modal dialog for a month that already has data
// in the targeted field. Any input other than 1 or 2 cancels. Merge and
// overwrite both commit through the same upsert used for fresh entries, so
// validation and mutation stay a single atomic step.
func (s *session) resolveDuplicate(month string, amount int, isIncome bool) (okMsg, errMsg string) {
	label, action := "Income", "income"
	if !isIncome {
		label, action = "Expense", "expense"
	}
	rec := s.data.findRecord(month)
	existingValue := rec.Salary
	if !isIncome {
		existingValue = rec.Expenses
	}

	s.r.duplicatePrompt(*rec, amount, isIncome)
	choice, ok := s.readLine()
	if !ok {
		choice = ""
	}

	switch strings.TrimSpace(choice) {
	case "1":
		combined := existingValue + amount
		if err := s.data.upsertRecord(month, combined, isIncome); err != nil {
			return "", fmt.Sprintf("Error adding %s: %v", action, err)
		}
		s.logMutation("merge", month, combined)
		return fmt.Sprintf("%s updated to %s for %s (combined)", label, s.r.money(combined), month), ""
	case "2":
		if err := s.data.upsertRecord(month, amount, isIncome); err != nil {
			return "", fmt.Sprintf("Error adding %s: %v", action, err)
		}
		s.logMutation("overwrite", month, amount)
		return fmt.Sprintf("%s updated to %s for %s (overwritten)", label, s.r.money(amount), month), ""
	default:
		return fmt.Sprintf("Operation cancelled. Existing data for %s remains unchanged.", month), ""
	}
}
