// Package store persists the full ledger state as a single JSON document.
// Saving is write-through and best-effort: the caller saves after every
// mutation, and a failed write never touches the in-memory state. The write
// is not an atomic swap; a crash mid-write can leave a partial file, which
// the loader treats as an empty ledger.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"atmsim/internal/atm"
)

// Ledger loads and saves the durable copy of the account set and the
// transaction history. The history is truncated to the most recent keep
// entries on every save; the in-memory log is not affected.
type Ledger struct {
	path string
	keep int
	log  logrus.FieldLogger
}

func New(path string, keep int, log logrus.FieldLogger) *Ledger {
	return &Ledger{path: path, keep: keep, log: log}
}

// Path returns the location of the durable file.
func (l *Ledger) Path() string {
	return l.path
}

// Load reads the durable file. A missing file is an empty ledger, not an
// error; an unreadable or malformed file is reported and also yields an
// empty ledger so the process can start.
func (l *Ledger) Load() (map[string]*atm.Account, []atm.Record) {
	accounts := make(map[string]*atm.Account)

	f, err := os.Open(l.path)
	if err != nil {
		if !os.IsNotExist(err) {
			l.log.WithError(err).Warn("cannot open ledger file, starting with empty state")
		}
		return accounts, nil
	}
	defer f.Close()

	var doc document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		l.log.WithError(err).Warn("ledger file is malformed, starting with empty state")
		return make(map[string]*atm.Account), nil
	}

	for _, pa := range doc.Accounts {
		accounts[pa.ID] = pa.toDomain()
	}

	records := make([]atm.Record, 0, len(doc.Transactions))
	for _, pr := range doc.Transactions {
		records = append(records, pr.toDomain())
	}

	return accounts, records
}

// Save serializes every account and the most recent keep transactions in
// original order. On failure the previous durable copy is left as-is
// whenever the file could not be opened at all.
func (l *Ledger) Save(accounts map[string]*atm.Account, records []atm.Record) error {
	doc := document{
		Accounts:     make([]persistAccount, 0, len(accounts)),
		Transactions: make([]persistRecord, 0, len(records)),
	}

	ids := make([]string, 0, len(accounts))
	for id := range accounts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		doc.Accounts = append(doc.Accounts, fromAccount(accounts[id]))
	}

	if l.keep > 0 && len(records) > l.keep {
		records = records[len(records)-l.keep:]
	}
	for _, rec := range records {
		doc.Transactions = append(doc.Transactions, fromRecord(rec))
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("cannot create data directory: %w", err)
	}

	f, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("cannot open ledger file for writing: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		f.Close()
		return fmt.Errorf("cannot encode ledger: %w", err)
	}
	return f.Close()
}
