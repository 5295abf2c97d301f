package cli

import (
	"fmt"

	apperrors "github.com/ksyq12/passengerpane/internal/errors"
	"github.com/ksyq12/passengerpane/internal/input"
	"github.com/ksyq12/passengerpane/internal/output"
	"github.com/spf13/cobra"
)

var forceRemove bool

var removeCmd = &cobra.Command{
	Use:     "remove <host>",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove an application",
	Long: `Remove an application's vhost file and /etc/hosts entry. The application
directory itself is left alone.

Examples:
  passengerpane remove blog.local
  passengerpane rm blog.local --force`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&forceRemove, "force", "f", false, "Force removal without confirmation")

	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	host := args[0]

	if err := validateHost(host); err != nil {
		return err
	}

	if err := requireRoot(); err != nil {
		return err
	}

	_, mgr, err := loadManager()
	if err != nil {
		return err
	}

	// A malformed vhost file can still be uninstalled by host.
	uninstall := func() error { return mgr.Uninstall(host) }
	app, err := mgr.Find(host)
	switch {
	case err == nil:
		uninstall = app.Remove
	case apperrors.Is(err, apperrors.ErrMalformedConfig):
		output.Warn("%v", err)
	default:
		return err
	}

	if !forceRemove {
		output.Prompt("Are you sure you want to remove application '%s'? [y/N]: ", host)
		if !input.Confirm(deps.StdinReader) {
			output.Info("Removal cancelled")
			return nil
		}
	}

	progress("Removing vhost configuration...")
	if err := uninstall(); err != nil {
		return fmt.Errorf("failed to remove application: %w", err)
	}

	return outputResult(
		CommandResult{Success: true, Host: host, Action: "remove"},
		"Application %s removed", host,
	)
}
