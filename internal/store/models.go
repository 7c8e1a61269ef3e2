package store

import (
	"time"

	"atmsim/internal/atm"
)

// Persist formats are kept separate from the domain types so the file layout
// can evolve without leaking serialization tags into the engine.

type persistAccount struct {
	ID                 string    `json:"id"`
	PinDigest          string    `json:"pin_digest"`
	Balance            int64     `json:"balance"`
	Locked             bool      `json:"locked"`
	FailedAttempts     int       `json:"failed_attempts"`
	LastWithdrawalDate string    `json:"last_withdrawal_date,omitempty"`
	DailyWithdrawn     int64     `json:"daily_withdrawn"`
	CreatedAt          time.Time `json:"created_at"`
}

type persistRecord struct {
	Timestamp time.Time  `json:"timestamp"`
	Kind      atm.Kind   `json:"kind"`
	Amount    int64      `json:"amount"`
	Status    atm.Status `json:"status"`
	Account   string     `json:"account"`
	Detail    string     `json:"detail,omitempty"`
}

type document struct {
	Accounts     []persistAccount `json:"accounts"`
	Transactions []persistRecord  `json:"transactions"`
}

func fromAccount(a *atm.Account) persistAccount {
	return persistAccount{
		ID:                 a.ID,
		PinDigest:          a.PINDigest,
		Balance:            a.Balance,
		Locked:             a.Locked,
		FailedAttempts:     a.FailedAttempts,
		LastWithdrawalDate: a.LastWithdrawalDate,
		DailyWithdrawn:     a.DailyWithdrawn,
		CreatedAt:          a.CreatedAt,
	}
}

func (p persistAccount) toDomain() *atm.Account {
	return &atm.Account{
		ID:                 p.ID,
		PINDigest:          p.PinDigest,
		Balance:            p.Balance,
		Locked:             p.Locked,
		FailedAttempts:     p.FailedAttempts,
		LastWithdrawalDate: p.LastWithdrawalDate,
		DailyWithdrawn:     p.DailyWithdrawn,
		CreatedAt:          p.CreatedAt,
	}
}

func fromRecord(r atm.Record) persistRecord {
	return persistRecord{
		Timestamp: r.Time,
		Kind:      r.Kind,
		Amount:    r.Amount,
		Status:    r.Status,
		Account:   r.AccountID,
		Detail:    r.Detail,
	}
}

func (p persistRecord) toDomain() atm.Record {
	return atm.Record{
		Time:      p.Timestamp,
		Kind:      p.Kind,
		Amount:    p.Amount,
		Status:    p.Status,
		AccountID: p.Account,
		Detail:    p.Detail,
	}
}
