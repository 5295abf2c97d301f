package cli

import (
	"fmt"
	"os"

	apperrors "github.com/ksyq12/passengerpane/internal/errors"
	"github.com/ksyq12/passengerpane/internal/output"
	"github.com/ksyq12/passengerpane/internal/passenger"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start <path>...",
	Short: "Add several applications at once",
	Long: `Add several application directories in one installer run, each with its
default host, then reload Apache once.

Examples:
  passengerpane start ~/code/blog ~/code/wiki`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	_, mgr, err := loadManager()
	if err != nil {
		return err
	}

	apps := make([]*passenger.Application, 0, len(args))
	seen := make(map[string]string, len(args))
	for _, arg := range args {
		path, err := absPath(arg)
		if err != nil {
			return err
		}

		app := mgr.NewWithPath(path)
		if err := checkApplication(app); err != nil {
			return err
		}
		if other, dup := seen[app.Host()]; dup {
			return apperrors.Validation(fmt.Sprintf("%s and %s both map to host %s", other, path, app.Host()))
		}
		if _, err := os.Stat(app.ConfigPath()); err == nil {
			return apperrors.Validation(fmt.Sprintf("application %s already exists", app.Host()))
		}
		seen[app.Host()] = path
		apps = append(apps, app)
	}

	if err := requireRoot(); err != nil {
		return err
	}

	progress("Installing %d applications...", len(apps))
	if err := mgr.StartApplications(apps); err != nil {
		return fmt.Errorf("failed to start applications: %w", err)
	}

	if jsonOutput {
		return printApplications(apps)
	}
	for _, app := range apps {
		output.Success("Application %s added (http://%s)", app.Host(), app.Host())
	}
	return nil
}
