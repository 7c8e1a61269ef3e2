package constants

const (
	CentsPerUnit = 100
)

// Default file names, resolved relative to the app data directory when the
// config leaves the paths empty.
const (
	DataFileName  = "ledger.json"
	AuditFileName = "audit.log"
	LogFileName   = "atmsim.log"
)

// Demo account seeded on first run so the simulator is usable out of the box.
const (
	DemoAccountID  = "123456"
	DemoAccountPIN = "1234"
	DemoBalance    = 100_000 * CentsPerUnit
)
