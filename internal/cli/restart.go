package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var restartCmd = &cobra.Command{
	Use:   "restart <host>",
	Short: "Restart an application",
	Long: `Restart an application by touching tmp/restart.txt in its directory.
Passenger reloads the application on the next request.

Examples:
  passengerpane restart blog.local`,
	Args: cobra.ExactArgs(1),
	RunE: runRestart,
}

func init() {
	rootCmd.AddCommand(restartCmd)
}

func runRestart(cmd *cobra.Command, args []string) error {
	if err := requireRoot(); err != nil {
		return err
	}

	_, mgr, err := loadManager()
	if err != nil {
		return err
	}

	app, err := mgr.Find(args[0])
	if err != nil {
		return err
	}

	if err := app.Restart(); err != nil {
		return fmt.Errorf("failed to restart application: %w", err)
	}

	return outputResult(
		CommandResult{Success: true, Host: app.Host(), Action: "restart"},
		"Application %s restarted", app.Host(),
	)
}
