package views

import (
	"github.com/pterm/pterm"

	"atmsim/internal/atm"
	"atmsim/internal/utils"
)

// RenderTransactionList prints records newest first, coloring the status
// column by outcome.
func RenderTransactionList(records []atm.Record) error {
	if len(records) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	tableData := pterm.TableData{
		{"Date", "Account", "Kind", "Amount", "Status", "Detail"},
	}

	for _, rec := range records {
		var coloredStatus string
		switch rec.Status {
		case atm.StatusSuccess:
			coloredStatus = pterm.Green(string(rec.Status))
		case atm.StatusFailed:
			coloredStatus = pterm.Red(string(rec.Status))
		case atm.StatusCancelled:
			coloredStatus = pterm.Yellow(string(rec.Status))
		default:
			coloredStatus = string(rec.Status)
		}

		amount := ""
		if rec.Amount > 0 {
			amount = utils.FormatFromCents(rec.Amount)
		}

		tableData = append(tableData, []string{
			rec.Time.Format("02/01/2006 15:04:05"),
			rec.AccountID,
			string(rec.Kind),
			amount,
			coloredStatus,
			rec.Detail,
		})
	}

	pterm.DefaultSection.Printf("Recent Transactions")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d transactions\n", len(records))
	return nil
}
