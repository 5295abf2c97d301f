package cli

import (
	"github.com/ksyq12/passengerpane/internal/output"
	"github.com/ksyq12/passengerpane/internal/template"
	"github.com/spf13/cobra"
)

var showConfig bool

var showCmd = &cobra.Command{
	Use:   "show <host>",
	Short: "Show application details",
	Long: `Show the settings of one application.

With --config the vhost block that the installer writes for the current
settings is printed instead.

Examples:
  passengerpane show blog.local
  passengerpane show blog.local --config`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showConfig, "config", false, "Print the rendered vhost configuration")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	_, mgr, err := loadManager()
	if err != nil {
		return err
	}

	app, err := mgr.Find(args[0])
	if err != nil {
		return err
	}

	if showConfig {
		content, err := template.Render(app.Record())
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(map[string]string{
				"host":   app.Host(),
				"config": content,
			})
		}
		output.Prompt("%s", content)
		return nil
	}

	detail := detailOf(app)
	if jsonOutput {
		return output.JSON(detail)
	}

	output.Details([]output.Detail{
		{Label: "Host", Value: detail.Host},
		{Label: "Path", Value: detail.Path},
		{Label: "Environment", Value: detail.Environment},
		{Label: "Mod rewrite", Value: onOff(detail.AllowModRewrite)},
		{Label: "Config", Value: detail.ConfigPath},
		{Label: "URL", Value: detail.URL},
	})
	return nil
}
