package cli

import (
	"fmt"
	"os"
	"strings"

	apperrors "github.com/ksyq12/passengerpane/internal/errors"
	"github.com/ksyq12/passengerpane/internal/output"
	"github.com/ksyq12/passengerpane/internal/passenger"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <host> <field=value>...",
	Short: "Change an application's settings",
	Long: `Change one or more settings of an existing application, then save the
vhost and restart the application.

Fields:
  host               new host name (the old vhost and hosts entry are removed)
  path               application directory
  environment, env   development or production
  allow_mod_rewrite  on or off (alias: rewrite)

Examples:
  passengerpane set blog.local env=production
  passengerpane set blog.local host=blog.test rewrite=on`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

// assignment is one field=value argument
type assignment struct {
	field passenger.Field
	value string
}

func parseAssignments(args []string) ([]assignment, error) {
	result := make([]assignment, 0, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, apperrors.Validation(fmt.Sprintf("expected field=value, got %q", arg))
		}
		field, err := passenger.ParseField(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		result = append(result, assignment{field: field, value: strings.TrimSpace(value)})
	}
	return result, nil
}

func runSet(cmd *cobra.Command, args []string) error {
	assignments, err := parseAssignments(args[1:])
	if err != nil {
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
	oldHost := app.Host()

	for _, a := range assignments {
		value := a.value
		if a.field == passenger.FieldPath {
			if value, err = absPath(value); err != nil {
				return err
			}
		}
		if err := app.SetField(a.field, value); err != nil {
			return err
		}
	}

	if err := checkApplication(app); err != nil {
		return err
	}
	if app.Host() != oldHost {
		if _, err := os.Stat(app.ConfigPath()); err == nil {
			return apperrors.Validation(fmt.Sprintf("cannot rename %s: application %s already exists", oldHost, app.Host()))
		}
	}

	if err := requireRoot(); err != nil {
		return err
	}

	progress("Saving %s and restarting...", app.Host())
	if err := app.Apply(); err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}

	if app.Host() != oldHost {
		progress("Removing old host %s...", oldHost)
		if err := mgr.Uninstall(oldHost); err != nil {
			output.Warn("New vhost installed but removing %s failed: %v", oldHost, err)
		}
	}

	return outputResult(detailOf(app), "Application %s updated", app.Host())
}
