// Package audit maintains the secondary plain-text trail: one human-readable
// line per transaction record, appended as operations happen. The engine
// never truncates it; only the administrative clear-log operation does.
package audit

import (
	"fmt"
	"os"

	"atmsim/internal/atm"
)

type Trail struct {
	path string
}

func New(path string) *Trail {
	return &Trail{path: path}
}

// Path returns the location of the audit file.
func (t *Trail) Path() string {
	return t.path
}

// Append writes one line for rec at the end of the trail, creating the file
// when missing.
func (t *Trail) Append(rec atm.Record) error {
	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open audit file: %w", err)
	}

	if _, err := fmt.Fprintln(f, rec.String()); err != nil {
		f.Close()
		return fmt.Errorf("cannot write audit line: %w", err)
	}
	return f.Close()
}

// Clear truncates the trail. Used only by the administrative clear-log
// operation alongside dropping the transaction history.
func (t *Trail) Clear() error {
	if err := os.WriteFile(t.path, nil, 0o644); err != nil {
		return fmt.Errorf("cannot truncate audit file: %w", err)
	}
	return nil
}
