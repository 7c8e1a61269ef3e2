package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"atmsim/internal/app"
	"atmsim/internal/atm"
	"atmsim/internal/errhandler"
	"atmsim/internal/report"
	"atmsim/internal/ui"
	"atmsim/internal/ui/prompts"
	"atmsim/internal/ui/views"
	"atmsim/internal/utils"
	"atmsim/internal/validation"
)

const adminPinAttempts = 3

func NewAdminCmd(application *app.App) *cobra.Command {
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrator console",
		Long: `Administrative operations behind a PIN gate: system stats, account
management, transaction history and exports. Without a subcommand an
interactive menu is shown.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return adminGate(application)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return adminMenuLoop(application)
		},
	}

	recentCount := 10
	recentCmd := &cobra.Command{
		Use:   "recent",
		Short: "Show recent transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return views.RenderTransactionList(application.Engine.RecentTransactions(recentCount))
		},
	}
	recentCmd.Flags().IntVarP(&recentCount, "count", "n", 10, "number of transactions to show (0 for all)")

	exportDir := ""
	exportCmd := &cobra.Command{
		Use:       "export {transactions|accounts|report}",
		Short:     "Export data to CSV or a text report",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"transactions", "accounts", "report"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(application, args[0], exportDir)
		},
	}
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", "", "directory to write exports to (default: app data dir/exports)")

	adminCmd.AddCommand(
		&cobra.Command{
			Use:   "stats",
			Short: "Show system statistics",
			RunE: func(cmd *cobra.Command, args []string) error {
				return views.RenderStats(application.Engine.Stats())
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List all accounts",
			RunE: func(cmd *cobra.Command, args []string) error {
				return views.RenderAccountList(application.Engine.ListAccounts())
			},
		},
		&cobra.Command{
			Use:   "unlock <account>",
			Short: "Unlock a locked account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runUnlock(application, args[0])
			},
		},
		&cobra.Command{
			Use:   "create",
			Short: "Create a new account",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runCreateAccount(application)
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Clear the transaction log and audit trail",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runClearLog(application)
			},
		},
		recentCmd,
		exportCmd,
	)

	return adminCmd
}

// adminGate prompts for the administrator PIN and compares it against the
// configured credential. The credential comes from config or the environment,
// never from an account record, so there is no lockout state to track.
func adminGate(application *app.App) error {
	for attempt := 0; attempt < adminPinAttempts; attempt++ {
		pinPrompt := &survey.Password{
			Message: "Administrator PIN:",
		}

		var pin string
		if err := survey.AskOne(pinPrompt, &pin, ui.IconOption()); err != nil {
			return err
		}

		if pin == application.Config.Admin.Pin {
			application.Log.Info("admin console opened")
			return nil
		}
		pterm.Warning.Println("Wrong administrator PIN")
	}
	application.Log.Warn("admin console access denied")
	return errors.New("administrator access denied")
}

const (
	adminMenuStats  = "System stats"
	adminMenuList   = "List accounts"
	adminMenuRecent = "Recent transactions"
	adminMenuCreate = "Create account"
	adminMenuUnlock = "Unlock account"
	adminMenuClear  = "Clear transaction log"
	adminMenuExport = "Export data"
	adminMenuExit   = "Exit"
)

func adminMenuLoop(application *app.App) error {
	ui.PrintTitle("ATM - Administrator Console")

	options := []string{
		adminMenuStats, adminMenuList, adminMenuRecent, adminMenuCreate,
		adminMenuUnlock, adminMenuClear, adminMenuExport, adminMenuExit,
	}

	for {
		choice, err := prompts.PromptSelect("Choose an operation:", options)
		if err != nil {
			return err
		}

		switch choice {
		case adminMenuStats:
			err = views.RenderStats(application.Engine.Stats())
		case adminMenuList:
			err = views.RenderAccountList(application.Engine.ListAccounts())
		case adminMenuRecent:
			err = runRecentPrompt(application)
		case adminMenuCreate:
			err = runCreateAccount(application)
		case adminMenuUnlock:
			err = runUnlockPrompt(application)
		case adminMenuClear:
			err = runClearLog(application)
		case adminMenuExport:
			err = runExportPrompt(application)
		case adminMenuExit:
			return nil
		}

		if err != nil {
			if errhandler.IsCancel(err) {
				pterm.Warning.Println("Operation cancelled")
				continue
			}
			pterm.Error.Println(capitalize(err.Error()))
		}
	}
}

func runRecentPrompt(application *app.App) error {
	input, err := prompts.PromptInput("How many transactions?", "0 shows everything", func(s string) error {
		if s == "" {
			return nil
		}
		if _, err := strconv.Atoi(s); err != nil {
			return errors.New("enter a whole number")
		}
		return nil
	})
	if err != nil {
		return err
	}

	count := 10
	if input != "" {
		count, _ = strconv.Atoi(input)
	}
	return views.RenderTransactionList(application.Engine.RecentTransactions(count))
}

func runUnlockPrompt(application *app.App) error {
	id, err := prompts.PromptAccountID("Account number to unlock:")
	if err != nil {
		return err
	}
	return runUnlock(application, id)
}

func runUnlock(application *app.App, accountID string) error {
	err := application.Engine.Unlock(accountID)
	switch {
	case errors.Is(err, atm.ErrNotFound):
		return fmt.Errorf("account %s not found", accountID)
	case errors.Is(err, atm.ErrNotLocked):
		return fmt.Errorf("account %s is not locked", accountID)
	case err != nil:
		return err
	}

	pterm.Success.Printf("Account %s unlocked\n", accountID)
	return nil
}

func runCreateAccount(application *app.App) error {
	id, err := prompts.PromptAccountID("New account number (6 digits):")
	if err != nil {
		return err
	}
	pin, err := prompts.PromptPIN("Initial PIN (4 digits):")
	if err != nil {
		return err
	}
	balanceInput, err := prompts.PromptInput("Opening balance:", "leave empty for 0", validation.ValidateInitialBalance)
	if err != nil {
		return err
	}

	var balance int64
	if balanceInput != "" {
		balance, err = utils.ParseToCents(balanceInput)
		if err != nil {
			return fmt.Errorf("invalid opening balance: %w", err)
		}
	}

	acct, err := application.Engine.CreateAccount(id, pin, balance)
	switch {
	case errors.Is(err, atm.ErrDuplicateAccount):
		return fmt.Errorf("account %s already exists", id)
	case err != nil:
		return err
	}

	pterm.Success.Printf("Account %s created with balance $%s\n", acct.ID, utils.FormatFromCents(acct.Balance))
	return nil
}

func runClearLog(application *app.App) error {
	confirm, err := prompts.PromptConfirm("Clear the entire transaction log? This cannot be undone.", false)
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	removed, err := application.Engine.ClearTransactionLog()
	if err != nil {
		pterm.Warning.Printf("Removed %d transactions, but the audit file could not be truncated: %v\n", removed, err)
		return nil
	}
	pterm.Success.Printf("Removed %d transactions\n", removed)
	return nil
}

func runExportPrompt(application *app.App) error {
	what, err := prompts.PromptSelect("What to export?", []string{"transactions", "accounts", "report"})
	if err != nil {
		return err
	}
	return runExport(application, what, "")
}

func runExport(application *app.App, what, dir string) error {
	if dir == "" {
		dataDir, err := app.AppDataDir()
		if err != nil {
			return err
		}
		dir = filepath.Join(dataDir, "exports")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create export directory: %w", err)
	}

	engine := application.Engine
	now := time.Now()

	var path string
	var err error
	switch what {
	case "transactions":
		path, err = report.ExportTransactionsCSV(dir, engine.TransactionLog(), now)
	case "accounts":
		path, err = report.ExportAccountsCSV(dir, engine.ListAccounts(), now)
	case "report":
		path, err = report.WriteFullReport(dir, engine.ListAccounts(), engine.TransactionLog(), engine.Stats(), now)
	default:
		return fmt.Errorf("unknown export target %q", what)
	}
	if err != nil {
		return err
	}

	pterm.Success.Printf("Exported to %s\n", path)
	return nil
}
