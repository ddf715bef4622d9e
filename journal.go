package main

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"time"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
)

var journalBucket = []byte("mutations")

// journalEntry is one applied mutation, recorded after the dataset and the
// data file have both been updated.
type journalEntry struct {
	At     time.Time
	Action string // income, expense, bank, merge, overwrite
	Month  string // empty for bank updates
	Amount int
}

// Journal is an append-only record of applied mutations. Like the data
// file it is best effort: a journal problem never interrupts the session.
type Journal struct {
	db *bolt.DB
}

func openJournal(path string) (*Journal, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open journal at %v", path)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(journalBucket)
		return err
	}); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create journal bucket")
	}
	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// Append records one mutation keyed by its timestamp.
func (j *Journal) Append(e journalEntry) error {
	return j.db.Update(func(tx *bolt.Tx) error {
		var val bytes.Buffer
		if err := gob.NewEncoder(&val).Encode(e); err != nil {
			return errors.Wrap(err, "encode journal entry")
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, uint64(e.At.UnixNano()))
		return tx.Bucket(journalBucket).Put(key, val.Bytes())
	})
}

// Entries returns every recorded mutation, oldest first.
func (j *Journal) Entries() ([]journalEntry, error) {
	var entries []journalEntry
	err := j.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(journalBucket).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var e journalEntry
			if err := gob.NewDecoder(bytes.NewBuffer(v)).Decode(&e); err != nil {
				return errors.Wrapf(err, "decode journal entry of %d bytes", len(v))
			}
			entries = append(entries, e)
		}
		return nil
	})
	return entries, err
}
