package cli

import (
	"github.com/ksyq12/passengerpane/internal/output"
	"github.com/ksyq12/passengerpane/internal/passenger"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List Passenger applications",
	Long: `List every application that has a vhost file in the apps directory.

Examples:
  passengerpane list
  passengerpane list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	_, mgr, err := loadManager()
	if err != nil {
		return err
	}

	apps, err := mgr.LoadAll()
	if err != nil {
		return err
	}

	return printApplications(apps)
}

func printApplications(apps []*passenger.Application) error {
	details := make([]AppDetail, 0, len(apps))
	for _, app := range apps {
		details = append(details, detailOf(app))
	}

	if jsonOutput {
		return output.JSON(details)
	}

	if len(details) == 0 {
		output.Info("No applications configured")
		return nil
	}

	headers := []string{"HOST", "PATH", "ENVIRONMENT", "REWRITE"}
	rows := make([][]string, 0, len(details))
	for _, d := range details {
		rows = append(rows, []string{d.Host, d.Path, d.Environment, onOff(d.AllowModRewrite)})
	}
	output.Table(headers, rows)
	return nil
}
