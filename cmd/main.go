package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pomotimer/internal/storage"
)

const (
	appName = "pomotimer"
	appID   = "com.pomotimer.app"
)

var (
	logLevel  = "info"
	configDir = ""
	prefsFile = storage.DefaultFileName
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pomotimer",
		Short: "pomotimer is a desktop Pomodoro timer",
		Long: `pomotimer counts down work phases and short and long breaks.

Without a subcommand it opens the timer window and a system tray menu.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGUI()
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configDir, "config-dir", configDir, "directory holding the preferences file (default: per-user config dir)")
	globalFlags.StringVar(&prefsFile, "prefs-file", prefsFile, "preferences file name inside the config dir")

	cmd.AddCommand(
		NewPrefsCommand(),
		NewHeadlessCommand(),
	)

	return cmd
}

func openStore() (*storage.Store, error) {
	if configDir != "" {
		return storage.NewStore(configDir), nil
	}
	return storage.DefaultStore(appName)
}

func openPreferences() (*storage.PreferencesFile, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}
	return store.File(prefsFile), nil
}
