package config

// Config is the full runtime configuration, unmarshalled from the config
// file and ATM_* environment variables. Limits and credentials live here so
// the engine carries no hidden process-wide defaults.
type Config struct {
	Files      FilesConfig  `mapstructure:"files"`
	Limits     LimitsConfig `mapstructure:"limits"`
	Admin      AdminConfig  `mapstructure:"admin"`
	Log        LogConfig    `mapstructure:"log"`
	ConfigPath string       `mapstructure:"-"`
}

// FilesConfig holds file locations. Empty paths resolve to the app data
// directory at startup.
type FilesConfig struct {
	Data  string `mapstructure:"data"`
	Audit string `mapstructure:"audit"`
	Log   string `mapstructure:"log"`
}

// LimitsConfig holds the withdrawal rules in whole currency units; they are
// converted to cents once when the engine is constructed.
type LimitsConfig struct {
	PerTransaction int64   `mapstructure:"per_transaction"`
	Daily          int64   `mapstructure:"daily"`
	MaxPinAttempts int     `mapstructure:"max_pin_attempts"`
	QuickAmounts   []int64 `mapstructure:"quick_amounts"`
	History        int     `mapstructure:"history"`
}

// AdminConfig carries the administrator credential. The default matches the
// historical deployment; override it with ATM_ADMIN_PIN.
type AdminConfig struct {
	Pin string `mapstructure:"pin"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewDefault() *Config {
	return &Config{
		Files: FilesConfig{},
		Limits: LimitsConfig{
			PerTransaction: 50_000,
			Daily:          200_000,
			MaxPinAttempts: 3,
			QuickAmounts:   []int64{5_000, 10_000, 15_000, 20_000, 50_000},
			History:        1000,
		},
		Admin: AdminConfig{Pin: "0000"},
		Log:   LogConfig{Level: "info"},
	}
}
