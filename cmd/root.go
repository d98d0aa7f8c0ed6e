package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winfx/internal/logger"
	"github.com/Norgate-AV/winfx/internal/version"
)

// RootCmd is the root command for the winfx CLI application.
var RootCmd = &cobra.Command{
	Use:          "winfx",
	Short:        "winfx - Background effects and window styles for top-level windows",
	Long:         "winfx applies blur, z-order and style changes to windows selected by --hwnd, --title or the foreground window, either once or from a profile.",
	Version:      version.GetVersion(),
	Args:         cobra.NoArgs,
	RunE:         Execute,
	SilenceUsage: true, // Don't show usage on runtime errors
}

func init() {
	// Set custom version template to show full version info
	RootCmd.SetVersionTemplate("{{.Name}} " + version.GetFullVersion() + "\n")

	RootCmd.PersistentFlags().BoolP("verbose", "V", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolP("logs", "l", false, "print the current log file to stdout and exit")
	RootCmd.PersistentFlags().Bool("elevate", false, "relaunch as administrator when not elevated")
	RootCmd.PersistentFlags().String("hwnd", "", "target window handle (decimal or 0x hex)")
	RootCmd.PersistentFlags().StringP("title", "t", "", "target every visible window whose title contains this text")
	RootCmd.PersistentFlags().StringP("profile", "p", "", "profile path (default $WINFX_PROFILE or %APPDATA%\\winfx\\profile.yaml)")

	addWindowCommands(RootCmd)
}

// Execute runs the root command: --logs prints the log file, anything else
// shows help.
func Execute(cmd *cobra.Command, args []string) error {
	cfg, err := NewConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	if err := handleLogsFlag(cfg, os.Exit); err != nil {
		return err
	}

	return cmd.Help()
}

// handleLogsFlag processes the --logs flag and exits if needed
func handleLogsFlag(cfg *Config, exitFunc func(int)) error {
	if !cfg.ShowLogs {
		return nil
	}

	if err := logger.PrintLogFile(nil, logger.LoggerOptions{}); err != nil {
		if os.IsNotExist(err) {
			logPath := logger.GetLogPath(logger.LoggerOptions{})
			fmt.Fprintf(os.Stderr, "Log file does not exist: %s\n", logPath)
			exitFunc(1)
		}

		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		exitFunc(1)
	}

	exitFunc(0)
	return nil // Won't actually reach here due to exitFunc
}

// initializeLogger creates a logger and logs startup information
func initializeLogger(cfg *Config) (logger.LoggerInterface, error) {
	log, err := logger.NewLogger(logger.LoggerOptions{
		Verbose:  cfg.Verbose,
		Compress: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}

// ensureElevatedWithDeps relaunches elevated when asked to and exits this
// instance
func ensureElevatedWithDeps(
	log logger.LoggerInterface,
	isElevated func() bool,
	relaunchAsAdmin func() error,
	exitFunc func(int),
) error {
	log.Debug("Checking elevation status")
	if !isElevated() {
		log.Info("Relaunching as administrator")

		if err := relaunchAsAdmin(); err != nil {
			log.Error("RelaunchAsAdmin failed", slog.Any("error", err))
			return fmt.Errorf("error relaunching as admin: %w", err)
		}

		// Exit this instance, the elevated one will continue
		log.Debug("Relaunched successfully, exiting non-elevated instance")
		log.Close()
		exitFunc(0)
	}

	log.Debug("Running with administrator privileges")
	return nil
}

// sessionFunc is the body of a window command
type sessionFunc func(cmd *cobra.Command, s *session, args []string) error

// withSession wraps a command body with configuration, logging, panic
// recovery, elevation and desktop setup
func withSession(fn sessionFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := NewConfigFromFlags(cmd)
		if err != nil {
			return err
		}

		if err := handleLogsFlag(cfg, os.Exit); err != nil {
			return err
		}

		log, err := initializeLogger(cfg)
		if err != nil {
			return err
		}

		defer log.Close()

		log.Debug("Starting winfx",
			slog.String("command", cmd.Name()),
			slog.Any("args", args),
			slog.String("build", version.Get().String()))
		log.Debug("Flags set",
			slog.Bool("verbose", cfg.Verbose),
			slog.Uint64("hwnd", uint64(cfg.Hwnd)),
			slog.String("title", cfg.Title),
			slog.String("profile", cfg.Profile),
		)

		// Recover from panics and log them
		defer func() {
			if r := recover(); r != nil {
				log.Error("PANIC RECOVERED",
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())),
				)

				fmt.Fprintf(os.Stderr, "\n*** PANIC: %v ***\n", r)
				fmt.Fprintf(os.Stderr, "Check log file for details\n")
				err = fmt.Errorf("panic: %v", r)
			}
		}()

		desktop, err := openDesktop(log)
		if err != nil {
			return err
		}

		if cfg.Elevate {
			if err := ensureElevatedWithDeps(log, desktop.IsElevated, desktop.RelaunchAsAdmin, os.Exit); err != nil {
				return err
			}
		}

		return fn(cmd, newSession(cfg, log, desktop), args)
	}
}
