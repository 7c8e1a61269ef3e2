package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"atmsim/internal/atm"
	"atmsim/internal/utils"
)

// RenderStats prints the admin system summary.
func RenderStats(s atm.Stats) error {
	tableData := pterm.TableData{
		{pterm.Blue("Total Accounts"), fmt.Sprintf("%d", s.TotalAccounts)},
		{pterm.Blue("Locked Accounts"), fmt.Sprintf("%d", s.LockedAccounts)},
		{pterm.Blue("Total Balance"), utils.FormatFromCents(s.TotalBalance)},
		{pterm.Blue("Transactions Today"), fmt.Sprintf("%d", s.TransactionsToday)},
	}

	pterm.DefaultSection.Printf("System Statistics")
	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	if len(s.TodayByKind) > 0 {
		kindData := pterm.TableData{{"Kind", "Count"}}
		for _, kind := range []atm.Kind{atm.KindWithdrawal, atm.KindDeposit, atm.KindBalanceInquiry, atm.KindPinChange, atm.KindLogin} {
			if count, ok := s.TodayByKind[kind]; ok {
				kindData = append(kindData, []string{string(kind), fmt.Sprintf("%d", count)})
			}
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(kindData).Render(); err != nil {
			return err
		}
	}

	return nil
}
