package report_test

import (
	"encoding/csv"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atmsim/internal/atm"
	"atmsim/internal/report"
)

var exportTime = time.Date(2026, 8, 30, 16, 45, 0, 0, time.UTC)

func sampleRecords() []atm.Record {
	return []atm.Record{
		{
			Time:      time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
			Kind:      atm.KindWithdrawal,
			Amount:    50_000_00,
			Status:    atm.StatusSuccess,
			AccountID: "123456",
		},
		{
			Time:      time.Date(2026, 8, 30, 10, 5, 0, 0, time.UTC),
			Kind:      atm.KindDeposit,
			Amount:    1_500_50,
			Status:    atm.StatusFailed,
			AccountID: "654321",
			Detail:    "invalid amount",
		},
	}
}

func sampleAccounts() []atm.Account {
	return []atm.Account{
		{
			ID:             "123456",
			PINDigest:      atm.HashPIN("1234"),
			Balance:        100_000_00,
			DailyWithdrawn: 50_000_00,
			CreatedAt:      time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "654321",
			PINDigest: atm.HashPIN("4321"),
			Balance:   500_00,
			Locked:    true,
			CreatedAt: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestExportTransactionsCSV(t *testing.T) {
	dir := t.TempDir()

	path, err := report.ExportTransactionsCSV(dir, sampleRecords(), exportTime)
	require.NoError(t, err)
	assert.Contains(t, path, "transactions_20260830_164500.csv")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Date", "Time", "Account", "Kind", "Amount", "Status", "Detail"}, rows[0])
	assert.Equal(t, []string{"30/08/2026", "10:00:00", "123456", "WITHDRAWAL", "50,000.00", "SUCCESS", ""}, rows[1])
	assert.Equal(t, []string{"30/08/2026", "10:05:00", "654321", "DEPOSIT", "1,500.50", "FAILED", "invalid amount"}, rows[2])
}

func TestExportAccountsCSV_OmitsPINDigest(t *testing.T) {
	dir := t.TempDir()

	path, err := report.ExportAccountsCSV(dir, sampleAccounts(), exportTime)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), atm.HashPIN("1234"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Account", "Balance", "State", "Created", "Daily_Withdrawn"}, rows[0])
	assert.Equal(t, []string{"123456", "100,000.00", "ACTIVE", "01/08/2026", "50,000.00"}, rows[1])
	assert.Equal(t, []string{"654321", "500.00", "LOCKED", "15/08/2026", "0.00"}, rows[2])
}

func TestWriteFullReport(t *testing.T) {
	dir := t.TempDir()
	stats := atm.Stats{
		TotalAccounts:  2,
		LockedAccounts: 1,
		TotalBalance:   100_500_00,
	}

	path, err := report.WriteFullReport(dir, sampleAccounts(), sampleRecords(), stats, exportTime)
	require.NoError(t, err)
	assert.Contains(t, path, "report_20260830_164500.txt")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "ATM SYSTEM REPORT")
	assert.Contains(t, text, "Total accounts: 2")
	assert.Contains(t, text, "Locked accounts: 1")
	assert.Contains(t, text, "Total balance: $100,500.00")
	assert.Contains(t, text, "Account: 123456")
	assert.Contains(t, text, "State: LOCKED")

	// latest transactions come newest first
	deposit := strings.Index(text, "DEPOSIT")
	withdrawal := strings.Index(text, "WITHDRAWAL")
	require.Positive(t, deposit)
	require.Positive(t, withdrawal)
	assert.Less(t, deposit, withdrawal)
}

func TestWriteFullReport_LatestSectionKeepsNewestRecords(t *testing.T) {
	dir := t.TempDir()

	// a chronological log longer than the report window
	records := make([]atm.Record, 0, 30)
	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	for i := 1; i <= 30; i++ {
		records = append(records, atm.Record{
			Time:      base.Add(time.Duration(i) * time.Minute),
			Kind:      atm.KindDeposit,
			Amount:    int64(i) * 100,
			Status:    atm.StatusSuccess,
			AccountID: "123456",
		})
	}

	path, err := report.WriteFullReport(dir, nil, records, atm.Stats{}, exportTime)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	// the newest record leads the section; everything older than the
	// 20-record window is absent
	assert.Contains(t, text, "DEPOSIT $30.00")
	assert.Contains(t, text, "DEPOSIT $11.00")
	assert.NotContains(t, text, "DEPOSIT $10.00")

	newest := strings.Index(text, "DEPOSIT $30.00")
	oldestKept := strings.Index(text, "DEPOSIT $11.00")
	assert.Less(t, newest, oldestKept)
}
