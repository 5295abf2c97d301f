package cli

import (
	"fmt"
	"strings"

	"github.com/ksyq12/passengerpane/internal/config"
	apperrors "github.com/ksyq12/passengerpane/internal/errors"
	"github.com/ksyq12/passengerpane/internal/output"
	"github.com/ksyq12/passengerpane/internal/platform"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show settings",
	Long: `Show where passengerpane looks for Ruby, the config installer scripts,
apachectl and the apps directory.

Settings live in ~/.config/passengerpane/config.yaml. Keys missing from the
file use defaults for the current platform.

Examples:
  passengerpane config
  passengerpane config set ruby=/opt/ruby/bin/ruby`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key=value>...",
	Short: "Change settings",
	Long: `Change one or more settings and write the settings file.

Keys: ` + strings.Join(config.Keys, ", "),
	Args: cobra.MinimumNArgs(1),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if jsonOutput {
		return output.JSON(cfg)
	}

	path, err := config.ConfigPath()
	if err != nil {
		path = "unknown"
	}

	details := []output.Detail{
		{Label: "file", Value: path},
		{Label: "platform", Value: platform.Platform()},
	}
	for _, key := range config.Keys {
		value, _ := cfg.Get(key)
		details = append(details, output.Detail{Label: key, Value: value})
	}
	output.Details(details)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return apperrors.Validation(fmt.Sprintf("expected key=value, got %q", arg))
		}
		if err := cfg.Set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeConfig, "invalid setting", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeConfig, "invalid setting", err)
	}

	if err := deps.ConfigLoader.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return outputResult(cfg, "Settings saved")
}
