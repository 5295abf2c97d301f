package cli

import (
	"fmt"
	"os"

	"github.com/ksyq12/passengerpane/internal/config"
	apperrors "github.com/ksyq12/passengerpane/internal/errors"
	"github.com/ksyq12/passengerpane/internal/output"
	"github.com/ksyq12/passengerpane/internal/passenger"
	"github.com/ksyq12/passengerpane/internal/template"
	"github.com/spf13/cobra"
)

var (
	addHost    string
	addEnv     string
	addRewrite bool
	addDryRun  bool
)

var addCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Add a Passenger application",
	Long: `Add a Rails application directory as a new Passenger vhost.

The host defaults to the lowercased directory name with a .local suffix.
The vhost file and /etc/hosts entry are written by the config installer and
Apache is reloaded gracefully.

Examples:
  passengerpane add ~/code/blog
  passengerpane add ~/code/blog --host blog.test --env production
  passengerpane add ~/code/blog --rewrite --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addHost, "host", "", "Host name (default: <dirname>.local)")
	addCmd.Flags().StringVarP(&addEnv, "env", "e", "", "Rails environment (development, production)")
	addCmd.Flags().BoolVar(&addRewrite, "rewrite", false, "Allow mod_rewrite rules in the application")
	addCmd.Flags().BoolVar(&addDryRun, "dry-run", false, "Preview the vhost and installer call without applying")

	rootCmd.AddCommand(addCmd)
}

// DryRunResult is the preview printed by --dry-run
type DryRunResult struct {
	DryRun      bool      `json:"dry_run"`
	Application AppDetail `json:"application"`
	Config      string    `json:"config"`
	Operations  []string  `json:"operations"`
}

func runAdd(cmd *cobra.Command, args []string) error {
	path, err := absPath(args[0])
	if err != nil {
		return err
	}

	cfg, mgr, err := loadManager()
	if err != nil {
		return err
	}

	app := mgr.NewWithPath(path)
	if addHost != "" {
		app.SetHost(addHost)
	}
	if addEnv != "" {
		if err := app.SetField(passenger.FieldEnvironment, addEnv); err != nil {
			return err
		}
	}
	if addRewrite {
		app.SetAllowModRewrite(true)
	}

	if err := checkApplication(app); err != nil {
		return err
	}
	if _, err := os.Stat(app.ConfigPath()); err == nil {
		return apperrors.Validation(fmt.Sprintf("application %s already exists, use 'passengerpane set' to change it", app.Host()))
	}

	if addDryRun {
		return outputDryRun(cfg, app)
	}

	if err := requireRoot(); err != nil {
		return err
	}

	progress("Installing vhost for %s...", app.Host())
	if err := app.Apply(); err != nil {
		return fmt.Errorf("failed to add application: %w", err)
	}

	return outputResult(detailOf(app), "Application %s added (http://%s)", app.Host(), app.Host())
}

func outputDryRun(cfg *config.Config, app *passenger.Application) error {
	content, err := template.Render(app.Record())
	if err != nil {
		return err
	}

	result := DryRunResult{
		DryRun:      true,
		Application: detailOf(app),
		Config:      content,
		Operations: []string{
			fmt.Sprintf("%s %s %s <record for %s>", cfg.Ruby, cfg.Installer, cfg.HostsFile, app.Host()),
			fmt.Sprintf("write %s", app.ConfigPath()),
			fmt.Sprintf("add 127.0.0.1 %s to %s", app.Host(), cfg.HostsFile),
			fmt.Sprintf("%s graceful", cfg.Apachectl),
		},
	}

	if jsonOutput {
		return output.JSON(result)
	}

	output.Info("Dry run: nothing will be changed")
	output.Print("")
	for _, op := range result.Operations {
		output.Print("  %s", op)
	}
	output.Print("")
	output.Prompt("%s", content)
	return nil
}
