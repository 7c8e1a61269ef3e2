package atm

import "time"

// DateFormat is the calendar-date layout used for daily withdrawal tracking.
const DateFormat = "2006-01-02"

// Limits bundles the withdrawal rules an account is checked against.
// Amounts are in cents.
type Limits struct {
	PerTransaction int64
	Daily          int64
}

// Account holds the full per-account state. The withdrawal counters track one
// calendar date at a time: DailyWithdrawn is only meaningful for the date in
// LastWithdrawalDate and is reset when a withdrawal commits on a later date.
type Account struct {
	ID                 string
	PINDigest          string
	Balance            int64
	Locked             bool
	FailedAttempts     int
	LastWithdrawalDate string // DateFormat, empty when no withdrawal yet
	DailyWithdrawn     int64
	CreatedAt          time.Time
}

// NewAccount creates an active account with a freshly hashed PIN.
func NewAccount(id, pin string, balance int64) *Account {
	return &Account{
		ID:        id,
		PINDigest: HashPIN(pin),
		Balance:   balance,
		CreatedAt: time.Now(),
	}
}

// VerifyPIN checks a PIN against the stored digest without mutating anything.
func (a *Account) VerifyPIN(pin string) bool {
	return VerifyPIN(pin, a.PINDigest)
}

// ChangePIN replaces the digest when the current PIN matches and the new one
// is well formed. A wrong current PIN and a malformed new PIN are reported
// the same way.
func (a *Account) ChangePIN(current, next string) error {
	if !a.VerifyPIN(current) || !ValidPINFormat(next) {
		return ErrInvalidPin
	}
	a.PINDigest = HashPIN(next)
	return nil
}

// CanWithdraw checks the withdrawal rules without mutating the account.
// The checks run in a fixed order; the first failing rule is the one
// reported. today is the current calendar date in DateFormat.
func (a *Account) CanWithdraw(amount int64, limits Limits, today string) error {
	if a.Balance < amount {
		return ErrInsufficientFunds
	}
	if amount > limits.PerTransaction {
		return ErrPerTransactionLimit
	}
	withdrawn := a.DailyWithdrawn
	if a.LastWithdrawalDate != today {
		// evaluated against a fresh day; the stored counter is only reset
		// when a withdrawal actually commits
		withdrawn = 0
	}
	if withdrawn+amount > limits.Daily {
		return ErrDailyLimit
	}
	return nil
}

// Withdraw re-runs CanWithdraw and commits the withdrawal: the balance drops,
// the daily counter rolls forward to today when the date changed, and the
// amount is added to it. Nothing changes when the check fails.
func (a *Account) Withdraw(amount int64, limits Limits, today string) error {
	if err := a.CanWithdraw(amount, limits, today); err != nil {
		return err
	}
	if a.LastWithdrawalDate != today {
		a.LastWithdrawalDate = today
		a.DailyWithdrawn = 0
	}
	a.Balance -= amount
	a.DailyWithdrawn += amount
	return nil
}

// Deposit adds a positive amount to the balance.
func (a *Account) Deposit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	a.Balance += amount
	return nil
}

// RemainingDailyLimit returns how much can still be withdrawn today.
func (a *Account) RemainingDailyLimit(limits Limits, today string) int64 {
	withdrawn := a.DailyWithdrawn
	if a.LastWithdrawalDate != today {
		withdrawn = 0
	}
	if withdrawn >= limits.Daily {
		return 0
	}
	return limits.Daily - withdrawn
}

// Unlock clears the lockout and the failed-attempt counter.
func (a *Account) Unlock() {
	a.Locked = false
	a.FailedAttempts = 0
}
