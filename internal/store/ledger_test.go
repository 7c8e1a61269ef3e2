package store_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atmsim/internal/atm"
	"atmsim/internal/store"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newLedger(t *testing.T, keep int) *store.Ledger {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.json")
	return store.New(path, keep, testLogger())
}

func sampleState() (map[string]*atm.Account, []atm.Record) {
	created := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
	accounts := map[string]*atm.Account{
		"123456": {
			ID:                 "123456",
			PINDigest:          atm.HashPIN("1234"),
			Balance:            100_000_00,
			LastWithdrawalDate: "2026-08-29",
			DailyWithdrawn:     20_000_00,
			CreatedAt:          created,
		},
		"654321": {
			ID:             "654321",
			PINDigest:      atm.HashPIN("4321"),
			Balance:        500_00,
			Locked:         true,
			FailedAttempts: 3,
			CreatedAt:      created,
		},
	}

	records := []atm.Record{
		{
			Time:      time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
			Kind:      atm.KindLogin,
			Status:    atm.StatusSuccess,
			AccountID: "123456",
			Detail:    "login successful",
		},
		{
			Time:      time.Date(2026, 8, 29, 10, 1, 0, 0, time.UTC),
			Kind:      atm.KindWithdrawal,
			Amount:    20_000_00,
			Status:    atm.StatusSuccess,
			AccountID: "123456",
		},
	}

	return accounts, records
}

func TestLedger_RoundTrip(t *testing.T) {
	ledger := newLedger(t, 1000)
	accounts, records := sampleState()

	require.NoError(t, ledger.Save(accounts, records))
	gotAccounts, gotRecords := ledger.Load()

	require.Len(t, gotAccounts, 2)
	assert.Equal(t, accounts["123456"], gotAccounts["123456"])
	assert.Equal(t, accounts["654321"], gotAccounts["654321"])
	assert.Equal(t, records, gotRecords)
}

func TestLedger_MissingFileIsEmpty(t *testing.T) {
	ledger := newLedger(t, 1000)

	accounts, records := ledger.Load()

	assert.Empty(t, accounts)
	assert.Empty(t, records)
}

func TestLedger_MalformedFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	ledger := store.New(path, 1000, testLogger())

	accounts, records := ledger.Load()

	assert.Empty(t, accounts)
	assert.Empty(t, records)
}

func TestLedger_TruncatesHistoryOnSave(t *testing.T) {
	ledger := newLedger(t, 1000)
	accounts, _ := sampleState()

	records := make([]atm.Record, 0, 1200)
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 1200; i++ {
		records = append(records, atm.Record{
			Time:      base.Add(time.Duration(i) * time.Minute),
			Kind:      atm.KindDeposit,
			Amount:    int64(i + 1),
			Status:    atm.StatusSuccess,
			AccountID: "123456",
		})
	}

	require.NoError(t, ledger.Save(accounts, records))
	_, got := ledger.Load()

	// the most recent 1000 survive, oldest first
	require.Len(t, got, 1000)
	assert.Equal(t, int64(201), got[0].Amount)
	assert.Equal(t, int64(1200), got[999].Amount)
}

func TestLedger_SaveOverwritesPreviousState(t *testing.T) {
	ledger := newLedger(t, 1000)
	accounts, records := sampleState()
	require.NoError(t, ledger.Save(accounts, records))

	delete(accounts, "654321")
	require.NoError(t, ledger.Save(accounts, nil))

	gotAccounts, gotRecords := ledger.Load()
	assert.Len(t, gotAccounts, 1)
	assert.Empty(t, gotRecords)
}
