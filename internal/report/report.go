package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"atmsim/internal/atm"
	"atmsim/internal/utils"
)

// reportTransactions is how many of the latest records the full report
// includes, newest first.
const reportTransactions = 20

// WriteFullReport renders the system summary, the per-account detail and the
// latest transactions into a timestamped plain-text file in dir. records
// must be in chronological order; the latest-transactions section walks them
// from the back so the newest entry prints first.
func WriteFullReport(dir string, accounts []atm.Account, records []atm.Record, stats atm.Stats, at time.Time) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("report_%s.txt", at.Format(fileStamp)))

	var b strings.Builder
	rule := strings.Repeat("=", 60)

	fmt.Fprintf(&b, "%s\nATM SYSTEM REPORT\n%s\n", rule, rule)
	fmt.Fprintf(&b, "Generated: %s\n\n", at.Format("02/01/2006 15:04:05"))

	fmt.Fprintf(&b, "SUMMARY\n%s\n", strings.Repeat("-", 30))
	fmt.Fprintf(&b, "Total accounts: %d\n", stats.TotalAccounts)
	fmt.Fprintf(&b, "Active accounts: %d\n", stats.TotalAccounts-stats.LockedAccounts)
	fmt.Fprintf(&b, "Locked accounts: %d\n", stats.LockedAccounts)
	fmt.Fprintf(&b, "Total balance: $%s\n", utils.FormatFromCents(stats.TotalBalance))
	fmt.Fprintf(&b, "Transactions in log: %d\n\n", len(records))

	fmt.Fprintf(&b, "ACCOUNT DETAIL\n%s\n", strings.Repeat("-", 30))
	for _, acct := range accounts {
		state := "ACTIVE"
		if acct.Locked {
			state = "LOCKED"
		}
		fmt.Fprintf(&b, "Account: %s\n", acct.ID)
		fmt.Fprintf(&b, "  Balance: $%s\n", utils.FormatFromCents(acct.Balance))
		fmt.Fprintf(&b, "  State: %s\n", state)
		fmt.Fprintf(&b, "  Created: %s\n", acct.CreatedAt.Format("02/01/2006"))
		fmt.Fprintf(&b, "  Daily withdrawn: $%s\n\n", utils.FormatFromCents(acct.DailyWithdrawn))
	}

	fmt.Fprintf(&b, "LATEST %d TRANSACTIONS\n%s\n", reportTransactions, strings.Repeat("-", 30))
	n := len(records)
	for i := n - 1; i >= 0 && i >= n-reportTransactions; i-- {
		fmt.Fprintf(&b, "%s\n", records[i].String())
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("cannot write report: %w", err)
	}
	return path, nil
}
