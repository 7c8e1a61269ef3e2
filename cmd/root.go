package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"atmsim/internal/app"
	"atmsim/internal/config"
	"atmsim/internal/constants"
	"atmsim/internal/errhandler"
	"atmsim/internal/utils"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	// config must be loaded before the command tree is built, so the flag
	// is picked out of the raw arguments here and registered below only for
	// help text and parse acceptance
	cfgFile = configFlagValue(os.Args[1:])

	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	application, err := app.New(cfg)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	installShutdownSave(application)

	if application.SeededDemo {
		printDemoAccountInfo()
	}

	rootCmd := &cobra.Command{
		Use:           "atmsim",
		Short:         "atmsim is a CLI automated teller simulator",
		Long:          `atmsim simulates an automated teller: PIN-authenticated customer sessions, deposit and withdrawal rules, and an auditable transaction history backed by file storage.`,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(NewSessionCmd(application))
	rootCmd.AddCommand(NewAdminCmd(application))
	rootCmd.AddCommand(NewInfoCmd(application))

	if err := rootCmd.Execute(); err != nil {
		if errhandler.IsCancel(err) {
			pterm.Warning.Println("Operation Cancelled")
			finalSave(application)
			os.Exit(0)
		}
		pterm.Error.Println(capitalize(err.Error()))
		finalSave(application)
		os.Exit(1)
	}

	finalSave(application)
}

// installShutdownSave makes an external termination signal flush the ledger
// before the process dies.
func installShutdownSave(application *app.App) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sig
		finalSave(application)
		os.Exit(0)
	}()
}

// finalSave is best-effort: the ledger is written through after every
// operation anyway, so a failure here is reported and shutdown proceeds.
func finalSave(application *app.App) {
	if err := application.Engine.SaveNow(); err != nil {
		application.Log.WithError(err).Error("final save failed")
	}
}

func printDemoAccountInfo() {
	pterm.Info.Println("Demo account created:")
	pterm.Info.Printf("  Account: %s\n", constants.DemoAccountID)
	pterm.Info.Printf("  PIN: %s\n", constants.DemoAccountPIN)
	pterm.Info.Printf("  Balance: $%s\n", utils.FormatFromCents(constants.DemoBalance))
}

// configFlagValue extracts the -c/--config value from raw arguments.
func configFlagValue(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "-c" || arg == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("ATM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
