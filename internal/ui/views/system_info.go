package views

import (
	"github.com/pterm/pterm"

	"atmsim/internal/utils"
)

type SystemInfoItem struct {
	ConfigPath          string
	DataPath            string
	DataExists          bool
	AuditPath           string
	LogPath             string
	PerTransactionLimit int64
	DailyLimit          int64
	MaxPinAttempts      int
}

func RenderSystemInfo(data SystemInfoItem) error {
	dataStatus := pterm.Green("Found")
	if !data.DataExists {
		dataStatus = pterm.Red("Not Found (will be created)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Ledger File", data.DataPath},
		{"Ledger Status", dataStatus},
		{"Audit File", data.AuditPath},
		{"Log File", data.LogPath},
		{"Per-Transaction Limit", utils.FormatFromCents(data.PerTransactionLimit)},
		{"Daily Limit", utils.FormatFromCents(data.DailyLimit)},
		{"Max PIN Attempts", pterm.Sprintf("%d", data.MaxPinAttempts)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
