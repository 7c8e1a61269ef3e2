package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"atmsim/internal/atm"
	"atmsim/internal/audit"
	"atmsim/internal/config"
	"atmsim/internal/constants"
	"atmsim/internal/logx"
	"atmsim/internal/store"
)

// App wires config, ledger store, audit trail and engine together.
type App struct {
	Config *config.Config
	Engine *atm.Engine
	Ledger *store.Ledger
	Audit  *audit.Trail
	Log    *logrus.Logger

	// LogPath is the resolved location of the application log file.
	LogPath string

	// SeededDemo is true when this run created the demo account because the
	// ledger was empty.
	SeededDemo bool
}

// New loads durable state and builds the engine. File paths left empty in
// the config resolve to the app data directory.
func New(cfg *config.Config) (*App, error) {
	dataDir, err := AppDataDir()
	if err != nil {
		return nil, err
	}

	dataPath := resolvePath(cfg.Files.Data, dataDir, constants.DataFileName)
	auditPath := resolvePath(cfg.Files.Audit, dataDir, constants.AuditFileName)
	logPath := resolvePath(cfg.Files.Log, dataDir, constants.LogFileName)

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create app data directory %s: %w", dataDir, err)
	}

	logger := logx.New(logPath, cfg.Log.Level)

	ledger := store.New(dataPath, cfg.Limits.History, logger)
	accounts, records := ledger.Load()

	trail := audit.New(auditPath)

	engine := atm.NewEngine(atm.Config{
		Limits: atm.Limits{
			PerTransaction: cfg.Limits.PerTransaction * constants.CentsPerUnit,
			Daily:          cfg.Limits.Daily * constants.CentsPerUnit,
		},
		MaxPinAttempts: cfg.Limits.MaxPinAttempts,
	}, accounts, records, ledger, trail, logger)

	a := &App{
		Config:  cfg,
		Engine:  engine,
		Ledger:  ledger,
		Audit:   trail,
		Log:     logger,
		LogPath: logPath,
	}

	if len(accounts) == 0 {
		if err := a.seedDemoAccount(); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// seedDemoAccount creates the out-of-the-box demo account in an empty ledger.
func (a *App) seedDemoAccount() error {
	_, err := a.Engine.CreateAccount(constants.DemoAccountID, constants.DemoAccountPIN, constants.DemoBalance)
	if err != nil {
		return fmt.Errorf("failed to seed demo account: %w", err)
	}
	a.SeededDemo = true
	a.Log.WithField("account", constants.DemoAccountID).Info("demo account created")
	return nil
}

func resolvePath(configured, dataDir, fallback string) string {
	if configured != "" {
		return configured
	}
	return filepath.Join(dataDir, fallback)
}

// AppDataDir returns where data, audit and log files live by default.
func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".atmsim"), nil
	}

	return filepath.Join(configDir, "atmsim"), nil
}
