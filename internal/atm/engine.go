package atm

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Store persists the full ledger state. Implementations must not retain the
// arguments after Save returns.
type Store interface {
	Save(accounts map[string]*Account, records []Record) error
}

// AuditTrail mirrors every transaction record as a human-readable line.
type AuditTrail interface {
	Append(rec Record) error
	Clear() error
}

// PinSource supplies PIN attempts during authentication, one at a time.
// remaining is how many attempts are left including this one. ok is false
// when the caller aborts the sequence.
type PinSource interface {
	RequestPIN(remaining int) (pin string, ok bool)
}

// Confirmer is the synchronous yes/no round-trip used before committing a
// withdrawal or deposit.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Config carries everything the engine needs at construction. There are no
// hidden process-wide defaults; all limits come from here.
type Config struct {
	Limits         Limits
	MaxPinAttempts int

	// Clock overrides time.Now, used by tests to control calendar dates.
	Clock func() time.Time
}

// Engine orchestrates authentication sessions and every mutating operation.
// It exclusively owns the account set and the transaction log for its
// lifetime and writes the full state through to the store after each
// mutation. The engine is strictly sequential; exactly one session may be
// bound at a time.
type Engine struct {
	cfg      Config
	accounts map[string]*Account
	records  []Record
	store    Store
	audit    AuditTrail
	log      logrus.FieldLogger
	session  *Session
}

// NewEngine wraps previously loaded state. accounts may be nil.
func NewEngine(cfg Config, accounts map[string]*Account, records []Record, store Store, audit AuditTrail, log logrus.FieldLogger) *Engine {
	if accounts == nil {
		accounts = make(map[string]*Account)
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Engine{
		cfg:      cfg,
		accounts: accounts,
		records:  records,
		store:    store,
		audit:    audit,
		log:      log,
	}
}

func (e *Engine) now() time.Time {
	return e.cfg.Clock()
}

func (e *Engine) today() string {
	return e.now().Format(DateFormat)
}

// record appends a transaction record to the in-memory log and mirrors it to
// the audit trail. A failing audit write is reported, never fatal.
func (e *Engine) record(kind Kind, amount int64, status Status, accountID, detail string) {
	rec := Record{
		Time:      e.now(),
		Kind:      kind,
		Amount:    amount,
		Status:    status,
		AccountID: accountID,
		Detail:    detail,
	}
	e.records = append(e.records, rec)

	if err := e.audit.Append(rec); err != nil {
		e.log.WithError(err).Warn("failed to append to audit trail")
	}
}

// persist writes the full state through to the store. A save failure is
// reported and swallowed: the in-memory mutation already happened and the
// operation counts as succeeded.
func (e *Engine) persist() {
	if err := e.store.Save(e.accounts, e.records); err != nil {
		e.log.WithError(err).Error("ledger save failed, in-memory state is ahead of disk")
	}
}

// SaveNow forces a synchronous save, used for the best-effort save on
// process shutdown.
func (e *Engine) SaveNow() error {
	return e.store.Save(e.accounts, e.records)
}

// Authenticate resolves the account and drives the PIN-attempt protocol
// against pins. Each wrong attempt is persisted immediately; when the
// failed-attempt count reaches the configured maximum the account locks and
// ErrLocked is returned. An aborted sequence returns ErrCancelled.
func (e *Engine) Authenticate(accountID string, pins PinSource) (*Session, error) {
	if e.session != nil {
		return nil, ErrSessionActive
	}

	acct, ok := e.accounts[accountID]
	if !ok {
		e.record(KindLogin, 0, StatusFailed, SystemAccount, "unknown account "+accountID)
		e.persist()
		return nil, ErrNotFound
	}
	if acct.Locked {
		return nil, ErrLocked
	}

	// remaining counts down from the account's persisted failure counter,
	// so attempts carried over from an aborted sequence are not re-offered
	for acct.FailedAttempts < e.cfg.MaxPinAttempts {
		pin, ok := pins.RequestPIN(e.cfg.MaxPinAttempts - acct.FailedAttempts)
		if !ok {
			return nil, ErrCancelled
		}

		if acct.VerifyPIN(pin) {
			acct.FailedAttempts = 0
			e.session = &Session{
				id:      uuid.NewString(),
				engine:  e,
				account: acct,
			}
			e.record(KindLogin, 0, StatusSuccess, acct.ID, "login successful")
			e.persist()
			e.log.WithFields(logrus.Fields{
				"session": e.session.id,
				"account": acct.ID,
			}).Info("session opened")
			return e.session, nil
		}

		acct.FailedAttempts++
		if acct.FailedAttempts >= e.cfg.MaxPinAttempts {
			acct.Locked = true
			e.record(KindLogin, 0, StatusFailed, acct.ID, "account locked after too many failed PIN attempts")
			e.persist()
			e.log.WithField("account", acct.ID).Warn("account locked")
			return nil, ErrLocked
		}
		e.persist()
	}

	// unreachable: the loop always ends in success, cancel, or lockout
	return nil, ErrLocked
}

// Unlock reverses a lockout. Only applies to accounts that are currently
// locked; this is the sole Locked -> Active transition.
func (e *Engine) Unlock(accountID string) error {
	acct, ok := e.accounts[accountID]
	if !ok {
		return ErrNotFound
	}
	if !acct.Locked {
		return ErrNotLocked
	}
	acct.Unlock()
	e.persist()
	e.log.WithField("account", accountID).Info("account unlocked")
	return nil
}

// CreateAccount registers a new account with a format-validated six-digit ID,
// an initial four-digit PIN and an optional non-negative opening balance
// in cents.
func (e *Engine) CreateAccount(id, pin string, initialBalance int64) (*Account, error) {
	if !ValidAccountID(id) {
		return nil, ErrInvalidAccountID
	}
	if _, exists := e.accounts[id]; exists {
		return nil, ErrDuplicateAccount
	}
	if !ValidPINFormat(pin) {
		return nil, ErrInvalidPin
	}
	if initialBalance < 0 {
		return nil, ErrInvalidAmount
	}

	acct := NewAccount(id, pin, initialBalance)
	e.accounts[id] = acct
	e.persist()
	e.log.WithField("account", id).Info("account created")
	return acct, nil
}

// ListAccounts returns value copies of every account, ordered by ID. No
// internal pointer escapes the engine.
func (e *Engine) ListAccounts() []Account {
	out := make([]Account, 0, len(e.accounts))
	for _, acct := range e.accounts {
		out = append(out, *acct)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// TransactionLog returns a copy of the full in-memory log in chronological
// order, oldest first. Exports consume this; the interactive views use
// RecentTransactions instead.
func (e *Engine) TransactionLog() []Record {
	out := make([]Record, len(e.records))
	copy(out, e.records)
	return out
}

// RecentTransactions returns the most recent n records, newest first.
// n <= 0 returns the full in-memory log.
func (e *Engine) RecentTransactions(n int) []Record {
	if n <= 0 || n > len(e.records) {
		n = len(e.records)
	}
	out := make([]Record, 0, n)
	for i := len(e.records) - 1; i >= len(e.records)-n; i-- {
		out = append(out, e.records[i])
	}
	return out
}

// ClearTransactionLog drops the whole in-memory log, persists the empty log
// and clears the audit trail. Returns the number of records removed. A
// failing audit truncation is reported but does not undo the clear.
func (e *Engine) ClearTransactionLog() (int, error) {
	removed := len(e.records)
	e.records = nil
	e.persist()

	if err := e.audit.Clear(); err != nil {
		e.log.WithError(err).Warn("transaction log cleared, but the audit file could not be truncated")
		return removed, err
	}
	return removed, nil
}

// Stats summarizes the system state for the admin console.
type Stats struct {
	TotalAccounts     int
	LockedAccounts    int
	TotalBalance      int64
	TransactionsToday int
	TodayByKind       map[Kind]int
}

// Stats computes account totals and today's transaction counts by kind.
func (e *Engine) Stats() Stats {
	s := Stats{TodayByKind: make(map[Kind]int)}
	for _, acct := range e.accounts {
		s.TotalAccounts++
		if acct.Locked {
			s.LockedAccounts++
		}
		s.TotalBalance += acct.Balance
	}

	today := e.today()
	for _, rec := range e.records {
		if rec.Time.Format(DateFormat) != today {
			continue
		}
		s.TransactionsToday++
		s.TodayByKind[rec.Kind]++
	}
	return s
}

// Limits exposes the configured withdrawal limits, read-only.
func (e *Engine) Limits() Limits {
	return e.cfg.Limits
}
