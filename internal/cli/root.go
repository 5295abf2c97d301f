package cli

import (
	"os"

	apperrors "github.com/ksyq12/passengerpane/internal/errors"
	"github.com/ksyq12/passengerpane/internal/logger"
	"github.com/ksyq12/passengerpane/internal/output"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	verbose    bool
	logLevel   string
	version    = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "passengerpane",
	Short: "Manage Passenger application vhosts",
	Long: `passengerpane manages Apache virtual hosts for Rails applications served
by Phusion Passenger on a development machine.

Each application is a directory and a host name. Adding one writes a vhost
file and an /etc/hosts entry through the config installer and reloads Apache
gracefully; changing one rewrites the vhost and restarts the application.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	cobra.OnInitialize(initLogging)

	if err := rootCmd.Execute(); err != nil {
		output.Error("%v", err)
		os.Exit(exitCode(err))
	}
}

func initLogging() {
	logger.Init(verbose)
	if logLevel == "" {
		return
	}
	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		output.Warn("%v", err)
		return
	}
	logger.SetLevel(level)
}

// exitCode maps permission failures to EX_NOPERM so scripts can retry with sudo.
func exitCode(err error) int {
	if apperrors.Is(err, apperrors.ErrRootRequired) {
		return 77
	}
	return 1
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides --verbose")
}
