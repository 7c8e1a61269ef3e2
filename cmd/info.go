package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"atmsim/internal/app"
	"atmsim/internal/ui/views"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, data file paths, and withdrawal limits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: application,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := r.app.Config.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dataPath := r.app.Ledger.Path()
	dataExists := false
	if _, err := os.Stat(dataPath); err == nil {
		dataExists = true
	}

	limits := r.app.Engine.Limits()

	items := views.SystemInfoItem{
		ConfigPath:          configPath,
		DataPath:            dataPath,
		DataExists:          dataExists,
		AuditPath:           r.app.Audit.Path(),
		LogPath:             r.app.LogPath,
		PerTransactionLimit: limits.PerTransaction,
		DailyLimit:          limits.Daily,
		MaxPinAttempts:      r.app.Config.Limits.MaxPinAttempts,
	}

	return views.RenderSystemInfo(items)
}
