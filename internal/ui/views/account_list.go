package views

import (
	"github.com/pterm/pterm"

	"atmsim/internal/atm"
	"atmsim/internal/utils"
)

// RenderAccountList prints every account as a table row, coloring the state
// column: green for active, red for locked.
func RenderAccountList(accounts []atm.Account) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts registered")
		return nil
	}

	tableData := pterm.TableData{
		{"Account", "Balance", "State", "Daily Withdrawn", "Created"},
	}

	for _, acct := range accounts {
		state := pterm.Green("ACTIVE")
		if acct.Locked {
			state = pterm.Red("LOCKED")
		}

		tableData = append(tableData, []string{
			acct.ID,
			utils.FormatFromCents(acct.Balance),
			state,
			utils.FormatFromCents(acct.DailyWithdrawn),
			acct.CreatedAt.Format("02/01/2006 15:04"),
		})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))
	return nil
}
