package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// rawRecord mirrors one on-disk record before normalization. Fields are
// untyped because older versions wrote salary and expenses as strings.
type rawRecord struct {
	Month    interface{} `json:"month"`
	Salary   interface{} `json:"salary"`
	Expenses interface{} `json:"expenses"`
}

// rawDataset mirrors the on-disk file. MonthlyRecords is a pointer so a
// missing key can be told apart from an empty list. current_balance is the
// pre-rename key for bank_balance.
type rawDataset struct {
	MonthlyRecords *[]rawRecord `json:"monthly_records"`
	BankBalance    interface{}  `json:"bank_balance"`
	CurrentBalance interface{}  `json:"current_balance"`
}

// diskRecord is the write-side shape. Salary and expenses go out as strings
// for compatibility with data files written by older versions.
type diskRecord struct {
	Month    string `json:"month"`
	Salary   string `json:"salary"`
	Expenses string `json:"expenses"`
}

type diskDataset struct {
	MonthlyRecords []diskRecord `json:"monthly_records"`
	BankBalance    int          `json:"bank_balance"`
}

// Store reads and writes the budget data file at a fixed path.
type Store struct {
	path string
}

func newStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the data file. Any unusable file, missing, corrupt, or lacking
// the monthly_records key, is replaced by the default empty dataset; records
// that fail normalization are dropped. The warnings describe everything
// that was substituted or skipped, and none of it is fatal.
func (s *Store) Load() (*Dataset, []string) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &Dataset{}, nil
	}
	if err != nil {
		return &Dataset{}, []string{fmt.Sprintf("Error loading data: %v", err)}
	}

	var raw rawDataset
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return &Dataset{}, []string{"Data file is corrupted. Creating a new one."}
	}
	if raw.MonthlyRecords == nil {
		return &Dataset{}, []string{"Data file is missing required fields. Using default structure."}
	}
	if raw.BankBalance == nil && raw.CurrentBalance != nil {
		// Files written before the bank_balance rename.
		raw.BankBalance = raw.CurrentBalance
	}

	ds, warnings, err := normalizeDataset(raw)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("Data normalization error - %v. Using default structure.", err))
		return &Dataset{}, warnings
	}
	return ds, warnings
}

// Save writes the dataset back to disk, creating the directory if needed.
func (s *Store) Save(d *Dataset) error {
	out := diskDataset{
		MonthlyRecords: make([]diskRecord, 0, len(d.Records)),
		BankBalance:    d.BankBalance,
	}
	for _, r := range d.Records {
		out.MonthlyRecords = append(out.MonthlyRecords, diskRecord{
			Month:    r.Month,
			Salary:   strconv.Itoa(r.Salary),
			Expenses: strconv.Itoa(r.Expenses),
		})
	}

	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return errors.Wrap(err, "marshal budget data")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrapf(err, "create data directory for %v", s.path)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %v", s.path)
	}
	return nil
}
