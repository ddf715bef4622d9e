package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	confDir  = flag.String("conf", os.Getenv("HOME")+"/.budgetbook", "Config directory to store budgetbook data and config in.")
	dataFile = flag.String("data", "", "Override the path of the budget data file.")
	noColor  = flag.Bool("no-color", false, "Disable colored output.")
	history  = flag.Bool("history", false, "Print the mutation journal and exit.")
)

func main() {
	flag.Parse()
	if flag.NArg() > 0 {
		oerr("Unexpected arguments: " + fmt.Sprint(flag.Args()))
		return
	}

	checkf(os.MkdirAll(*confDir, 0o755), "Unable to create directory: %v", *confDir)

	cfg, err := loadConfig(*confDir)
	checkf(err, "Unable to load config from %v", *confDir)
	if len(*dataFile) > 0 {
		cfg.DataFile = *dataFile
	}
	if *noColor {
		cfg.Color = false
	}

	r := newRenderer(os.Stdout, cfg)

	journal, err := openJournal(cfg.JournalFile)
	if err != nil {
		r.errorLine(fmt.Sprintf("Warning: mutation journal unavailable: %v", err))
		journal = nil
	} else {
		defer journal.Close()
	}

	if *history {
		if journal == nil {
			return
		}
		entries, err := journal.Entries()
		checkf(err, "Unable to read journal at %v", cfg.JournalFile)
		r.history(entries)
		return
	}

	store := newStore(cfg.DataFile)
	data, warnings := store.Load()
	for _, w := range warnings {
		r.errorLine("Warning: " + w)
	}

	newSession(data, store, journal, r, os.Stdin).run()
}
