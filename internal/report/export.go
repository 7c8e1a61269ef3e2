// Package report generates read-only exports of the ledger: CSV dumps of
// transactions and accounts, and a full plain-text system report. It only
// consumes engine snapshots and never mutates state.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"atmsim/internal/atm"
	"atmsim/internal/utils"
)

const fileStamp = "20060102_150405"

// ExportTransactionsCSV writes every given record to a timestamped CSV file
// in dir and returns its path. Records are written in the order given.
func ExportTransactionsCSV(dir string, records []atm.Record, at time.Time) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("transactions_%s.csv", at.Format(fileStamp)))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cannot create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Date", "Time", "Account", "Kind", "Amount", "Status", "Detail"}); err != nil {
		return "", fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.Time.Format("02/01/2006"),
			rec.Time.Format("15:04:05"),
			rec.AccountID,
			string(rec.Kind),
			utils.FormatFromCents(rec.Amount),
			string(rec.Status),
			rec.Detail,
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("cannot write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("cannot flush CSV: %w", err)
	}
	return path, nil
}

// ExportAccountsCSV writes every account to a timestamped CSV file in dir
// and returns its path. PIN digests are deliberately not exported.
func ExportAccountsCSV(dir string, accounts []atm.Account, at time.Time) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("accounts_%s.csv", at.Format(fileStamp)))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cannot create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Account", "Balance", "State", "Created", "Daily_Withdrawn"}); err != nil {
		return "", fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, acct := range accounts {
		state := "ACTIVE"
		if acct.Locked {
			state = "LOCKED"
		}
		row := []string{
			acct.ID,
			utils.FormatFromCents(acct.Balance),
			state,
			acct.CreatedAt.Format("02/01/2006"),
			utils.FormatFromCents(acct.DailyWithdrawn),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("cannot write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("cannot flush CSV: %w", err)
	}
	return path, nil
}
