package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/ksyq12/passengerpane/internal/output"
	"github.com/ksyq12/passengerpane/internal/passenger"
	"github.com/spf13/cobra"
)

var (
	logsFollow bool
	logsLines  int
)

var logsCmd = &cobra.Command{
	Use:   "logs <host>",
	Short: "View an application's Rails log",
	Long: `View the Rails log of an application, log/<environment>.log in its
directory.

Examples:
  passengerpane logs blog.local        # Last 20 lines
  passengerpane logs blog.local -f     # Follow logs in real-time
  passengerpane logs blog.local -n 50  # Show last 50 lines`,
	Args: cobra.ExactArgs(1),
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Follow log output (like tail -f)")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", 20, "Number of lines to show")

	rootCmd.AddCommand(logsCmd)
}

// logFile is where Rails writes the log for the application's environment.
func logFile(app *passenger.Application) string {
	return filepath.Join(app.Path(), "log", app.Environment().String()+".log")
}

func runLogs(cmd *cobra.Command, args []string) error {
	_, mgr, err := loadManager()
	if err != nil {
		return err
	}

	app, err := mgr.Find(args[0])
	if err != nil {
		return err
	}

	file := logFile(app)
	if _, err := os.Stat(file); err != nil {
		return fmt.Errorf("no log file found for %s: %s", app.Host(), file)
	}

	tailArgs := []string{}
	if logsFollow {
		tailArgs = append(tailArgs, "-f")
	}
	tailArgs = append(tailArgs, "-n", strconv.Itoa(logsLines), file)

	tailPath, err := deps.CommandRunner.LookPath("tail")
	if err != nil {
		return fmt.Errorf("tail command not found")
	}

	output.Info("Showing logs from: %s", file)
	output.Print("")

	if err := deps.CommandRunner.RunInteractive(tailPath, tailArgs...); err != nil {
		// 130 = SIGINT/Ctrl+C, 143 = SIGTERM
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if code := exitErr.ExitCode(); code == 130 || code == 143 {
				return nil
			}
		}
		return fmt.Errorf("failed to read logs: %w", err)
	}

	return nil
}
