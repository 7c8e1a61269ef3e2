package atm

import (
	"fmt"

	"atmsim/internal/utils"
)

// Session is the binding between one authenticated account and the sequence
// of operations performed on its behalf. The engine keeps at most one open
// session; a new one can only be bound after Close.
type Session struct {
	id      string
	engine  *Engine
	account *Account
	closed  bool
}

// ID returns the session identifier used in log fields.
func (s *Session) ID() string {
	return s.id
}

// AccountID returns the bound account number.
func (s *Session) AccountID() string {
	return s.account.ID
}

// Withdraw runs the withdrawal protocol: rule check, external confirmation,
// commit. Every outcome is logged as a transaction record; only the success
// path mutates the balance.
func (s *Session) Withdraw(amount int64, confirm Confirmer) error {
	if s.closed {
		return ErrSessionClosed
	}
	e := s.engine

	if amount <= 0 {
		e.record(KindWithdrawal, amount, StatusFailed, s.account.ID, ErrInvalidAmount.Error())
		e.persist()
		return ErrInvalidAmount
	}

	today := e.today()
	if err := s.account.CanWithdraw(amount, e.cfg.Limits, today); err != nil {
		e.record(KindWithdrawal, amount, StatusFailed, s.account.ID, err.Error())
		e.persist()
		return err
	}

	prompt := fmt.Sprintf("Confirm withdrawal of $%s?", utils.FormatFromCents(amount))
	if !confirm.Confirm(prompt) {
		e.record(KindWithdrawal, amount, StatusCancelled, s.account.ID, "cancelled by user")
		e.persist()
		return ErrCancelled
	}

	if err := s.account.Withdraw(amount, e.cfg.Limits, today); err != nil {
		e.record(KindWithdrawal, amount, StatusFailed, s.account.ID, err.Error())
		e.persist()
		return err
	}

	e.record(KindWithdrawal, amount, StatusSuccess, s.account.ID, "")
	e.persist()
	return nil
}

// Deposit adds a confirmed positive amount to the balance.
func (s *Session) Deposit(amount int64, confirm Confirmer) error {
	if s.closed {
		return ErrSessionClosed
	}
	e := s.engine

	if amount <= 0 {
		e.record(KindDeposit, amount, StatusFailed, s.account.ID, ErrInvalidAmount.Error())
		e.persist()
		return ErrInvalidAmount
	}

	prompt := fmt.Sprintf("Confirm deposit of $%s?", utils.FormatFromCents(amount))
	if !confirm.Confirm(prompt) {
		e.record(KindDeposit, amount, StatusCancelled, s.account.ID, "cancelled by user")
		e.persist()
		return ErrCancelled
	}

	if err := s.account.Deposit(amount); err != nil {
		e.record(KindDeposit, amount, StatusFailed, s.account.ID, err.Error())
		e.persist()
		return err
	}

	e.record(KindDeposit, amount, StatusSuccess, s.account.ID, "")
	e.persist()
	return nil
}

// Balance returns the current balance. Read-only apart from the inquiry
// record appended to the log.
func (s *Session) Balance() (int64, error) {
	if s.closed {
		return 0, ErrSessionClosed
	}
	e := s.engine
	e.record(KindBalanceInquiry, 0, StatusSuccess, s.account.ID, "")
	e.persist()
	return s.account.Balance, nil
}

// RemainingDailyLimit reports today's remaining withdrawal allowance without
// logging anything.
func (s *Session) RemainingDailyLimit() int64 {
	return s.account.RemainingDailyLimit(s.engine.cfg.Limits, s.engine.today())
}

// ChangePIN requires the current PIN, the new PIN and its confirmation. A
// mismatched confirmation fails before the account is touched and is not
// recorded; the delegated change logs success or failure.
func (s *Session) ChangePIN(current, next, confirmation string) error {
	if s.closed {
		return ErrSessionClosed
	}
	e := s.engine

	if next != confirmation {
		return fmt.Errorf("%w: new PIN and confirmation do not match", ErrInvalidPin)
	}

	if err := s.account.ChangePIN(current, next); err != nil {
		e.record(KindPinChange, 0, StatusFailed, s.account.ID, err.Error())
		e.persist()
		return err
	}

	e.record(KindPinChange, 0, StatusSuccess, s.account.ID, "")
	e.persist()
	return nil
}

// Close releases the binding so another account can authenticate.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.engine.session = nil
	s.engine.log.WithField("session", s.id).Info("session closed")
}
