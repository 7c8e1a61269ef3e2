package cmd

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"atmsim/internal/app"
	"atmsim/internal/atm"
	"atmsim/internal/constants"
	"atmsim/internal/errhandler"
	"atmsim/internal/ui"
	"atmsim/internal/ui/prompts"
	"atmsim/internal/utils"
)

// sessionRunner drives one authenticated customer session.
type sessionRunner struct {
	app     *app.App
	session *atm.Session
}

func NewSessionCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "session [account]",
		Short: "Start a customer session",
		Long: `Authenticate with an account number and PIN, then operate on the
account through the customer menu: withdraw, deposit, balance inquiry and
PIN change.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &sessionRunner{app: application}

			accountID := ""
			if len(args) == 1 {
				accountID = args[0]
			}
			return runner.Run(accountID)
		},
	}
}

// pinPrompter adapts the masked PIN prompt to the engine's PinSource. A
// prompt interrupt aborts the attempt sequence.
type pinPrompter struct{}

func (pinPrompter) RequestPIN(remaining int) (string, bool) {
	pin, err := prompts.PromptPIN(fmt.Sprintf("Enter your 4-digit PIN (%d attempts left):", remaining))
	if err != nil {
		return "", false
	}
	return pin, true
}

// confirmPrompter adapts the yes/no prompt to the engine's Confirmer.
type confirmPrompter struct{}

func (confirmPrompter) Confirm(prompt string) bool {
	ok, err := prompts.PromptConfirm(prompt, false)
	if err != nil {
		return false
	}
	return ok
}

func (r *sessionRunner) Run(accountID string) error {
	ui.PrintTitle("ATM - Customer Access")

	if accountID == "" {
		var err error
		accountID, err = prompts.PromptAccountID("Account number:")
		if err != nil {
			return err
		}
	}

	session, err := r.app.Engine.Authenticate(accountID, pinPrompter{})
	if err != nil {
		switch {
		case errors.Is(err, atm.ErrNotFound):
			return fmt.Errorf("account %s not found", accountID)
		case errors.Is(err, atm.ErrLocked):
			return fmt.Errorf("account %s is locked, contact the administrator", accountID)
		default:
			return err
		}
	}
	r.session = session
	defer session.Close()

	pterm.Success.Printf("Welcome, account %s\n", session.AccountID())
	return r.menuLoop()
}

const (
	menuWithdraw  = "Withdraw"
	menuDeposit   = "Deposit"
	menuBalance   = "Balance inquiry"
	menuChangePin = "Change PIN"
	menuExit      = "Close session"
)

func (r *sessionRunner) menuLoop() error {
	options := []string{menuWithdraw, menuDeposit, menuBalance, menuChangePin, menuExit}

	for {
		ui.Separator()
		choice, err := prompts.PromptSelect(fmt.Sprintf("Account %s - choose an operation:", r.session.AccountID()), options)
		if err != nil {
			return err
		}

		switch choice {
		case menuWithdraw:
			err = r.runWithdraw()
		case menuDeposit:
			err = r.runDeposit()
		case menuBalance:
			err = r.runBalance()
		case menuChangePin:
			err = r.runChangePin()
		case menuExit:
			confirm, cerr := prompts.PromptConfirm("Close the session?", true)
			if cerr != nil {
				return cerr
			}
			if confirm {
				pterm.Info.Println("Session closed. Thank you!")
				return nil
			}
			continue
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

const otherAmountOption = "Other amount"
const backOption = "Back"

func (r *sessionRunner) runWithdraw() error {
	options := make([]string, 0, len(r.app.Config.Limits.QuickAmounts)+2)
	for _, units := range r.app.Config.Limits.QuickAmounts {
		options = append(options, "$"+utils.FormatFromCents(units*constants.CentsPerUnit))
	}
	options = append(options, otherAmountOption, backOption)

	choice, err := prompts.PromptSelect("Withdrawal amount:", options)
	if err != nil {
		return err
	}

	var amount int64
	switch choice {
	case backOption:
		return nil
	case otherAmountOption:
		amount, err = prompts.PromptAmount("Amount to withdraw:")
		if err != nil {
			return err
		}
	default:
		for i, opt := range options {
			if opt == choice {
				amount = r.app.Config.Limits.QuickAmounts[i] * constants.CentsPerUnit
				break
			}
		}
	}

	if err := r.session.Withdraw(amount, confirmPrompter{}); err != nil {
		return err
	}

	pterm.Success.Printf("Withdrew $%s\n", utils.FormatFromCents(amount))
	r.printBalanceLine()
	return nil
}

func (r *sessionRunner) runDeposit() error {
	amount, err := prompts.PromptAmount("Amount to deposit:")
	if err != nil {
		return err
	}

	if err := r.session.Deposit(amount, confirmPrompter{}); err != nil {
		return err
	}

	pterm.Success.Printf("Deposited $%s\n", utils.FormatFromCents(amount))
	r.printBalanceLine()
	return nil
}

func (r *sessionRunner) runBalance() error {
	balance, err := r.session.Balance()
	if err != nil {
		return err
	}

	pterm.Info.Printf("Current balance: $%s\n", utils.FormatFromCents(balance))
	pterm.Info.Printf("Remaining daily withdrawal allowance: $%s\n", utils.FormatFromCents(r.session.RemainingDailyLimit()))
	return nil
}

func (r *sessionRunner) runChangePin() error {
	current, err := prompts.PromptPIN("Current PIN:")
	if err != nil {
		return err
	}
	next, err := prompts.PromptPIN("New PIN:")
	if err != nil {
		return err
	}
	confirmation, err := prompts.PromptPIN("Confirm new PIN:")
	if err != nil {
		return err
	}

	if err := r.session.ChangePIN(current, next, confirmation); err != nil {
		return err
	}

	pterm.Success.Println("PIN changed successfully")
	return nil
}

func (r *sessionRunner) printBalanceLine() {
	// read the balance without logging another inquiry record
	for _, acct := range r.app.Engine.ListAccounts() {
		if acct.ID == r.session.AccountID() {
			pterm.Info.Printf("Current balance: $%s\n", utils.FormatFromCents(acct.Balance))
			return
		}
	}
}
