/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sony-level/minecodes-launcher/internal/config"
	"github.com/sony-level/minecodes-launcher/internal/launcher"
	"github.com/sony-level/minecodes-launcher/internal/logging"
	"github.com/sony-level/minecodes-launcher/internal/notify"
	"github.com/sony-level/minecodes-launcher/internal/opener"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	consoleOnly bool
)

// exitCodeError carries a process exit code out of RunE without printing anything
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// rootCmd represents the base command - launches the companion script directly
var rootCmd = &cobra.Command{
	Use:   "minecodes",
	Short: "Launch AppDatas/Main.pyw with its associated application",
	Long: `minecodes finds the directory it is installed in and opens
AppDatas/Main.pyw from there with the application the system associates
with .pyw files, using AppDatas as the working directory.

It does not wait for the script. If the system refuses to open it, an
error dialog is shown and the exit status is 1.

Build for Windows with -ldflags "-H=windowsgui" so no console appears.

Examples:
  minecodes
  minecodes --verbose --console
  minecodes check`,
	// Arguments handed over by the shell or a file association are ignored
	Args:               cobra.ArbitraryArgs,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if code := executeLaunch(cmd); code != launcher.ExitOK {
			return &exitCodeError{code: code}
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err == nil {
		return
	}

	var exitErr *exitCodeError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.code)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(launcher.ExitFailed)
}

func init() {
	// The launcher is normally started by double-clicking it in Explorer.
	// Without this, cobra's mousetrap prints a help text and exits 1 instead of launching.
	cobra.MousetrapHelpText = ""

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config (default: launcher.yml next to the executable, if present)")
	rootCmd.PersistentFlags().BoolVar(&consoleOnly, "console", false, "Print failures to stderr instead of showing a dialog")
}

func executeLaunch(cmd *cobra.Command) int {
	logger := logging.New(verbose)
	defer func() { _ = logger.Sync() }()

	notifier := newNotifier(cmd, logger)

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("load config", zap.Error(err))
		notifier.Fatal(launcher.DialogTitle, launcher.DialogMessage+"\n\n"+err.Error())
		return launcher.ExitFailed
	}

	l := launcher.New(&launcher.Config{
		Layout:          cfg.Layout(),
		Opener:          opener.New(logger),
		Notifier:        notifier,
		Logger:          logger,
		DialogTitle:     cfg.Dialog.Title,
		DialogMessage:   cfg.Dialog.Message,
		DispatchTimeout: cfg.DispatchTimeout,
	})
	return l.Run(cmd.Context())
}

func newNotifier(cmd *cobra.Command, logger *zap.Logger) launcher.Notifier {
	if consoleOnly {
		return notify.NewConsole(cmd.ErrOrStderr())
	}
	return notify.NewDialog(logger)
}

// loadConfig reads --config when given, else the optional launcher.yml next
// to the executable. When the executable cannot be located the defaults are
// used and the launcher reports that failure itself.
func loadConfig() (*config.LauncherConfig, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	base, err := launcher.ResolveBaseDirectory()
	if err != nil {
		return config.Default(), nil
	}
	return config.LoadOptional(config.DefaultPath(base))
}
