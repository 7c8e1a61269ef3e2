package atm

import (
	"fmt"
	"time"

	"atmsim/internal/utils"
)

// Kind identifies what a transaction record describes.
type Kind string

const (
	KindWithdrawal     Kind = "WITHDRAWAL"
	KindDeposit        Kind = "DEPOSIT"
	KindBalanceInquiry Kind = "BALANCE_INQUIRY"
	KindPinChange      Kind = "PIN_CHANGE"
	KindLogin          Kind = "LOGIN"
)

// Status is the outcome of the operation the record describes.
type Status string

const (
	StatusSuccess   Status = "SUCCESS"
	StatusFailed    Status = "FAILED"
	StatusCancelled Status = "CANCELLED"
)

// SystemAccount is the account ID carried by records that are not tied to a
// customer account, e.g. a login attempt against an unknown account number.
const SystemAccount = "SYSTEM"

// Record is one immutable entry of the transaction log. Amount is zero for
// non-monetary kinds.
type Record struct {
	Time      time.Time
	Kind      Kind
	Amount    int64
	Status    Status
	AccountID string
	Detail    string
}

// String renders the record as a single audit-trail line.
func (r Record) String() string {
	ts := r.Time.Format("02/01/2006 15:04:05")
	if r.Amount > 0 {
		return fmt.Sprintf("%s | %s | %s $%s | %s", ts, r.AccountID, r.Kind, utils.FormatFromCents(r.Amount), r.Status)
	}
	return fmt.Sprintf("%s | %s | %s | %s", ts, r.AccountID, r.Kind, r.Status)
}
