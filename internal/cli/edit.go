package cli

import (
	"fmt"
	"os"

	"github.com/ksyq12/passengerpane/internal/output"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <host>",
	Short: "Edit an application's vhost file",
	Long: `Open the application's vhost file in an editor.

Uses $VISUAL or $EDITOR, defaulting to vi. Hand edits are kept until the
next 'passengerpane set' rewrites the file.

Examples:
  passengerpane edit blog.local
  EDITOR=nano passengerpane edit blog.local`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

// getEditor returns the user's editor
func getEditor() string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if editor := os.Getenv(env); editor != "" {
			return editor
		}
	}
	return "vi"
}

func runEdit(cmd *cobra.Command, args []string) error {
	host := args[0]

	if err := validateHost(host); err != nil {
		return err
	}

	_, mgr, err := loadManager()
	if err != nil {
		return err
	}

	configPath := mgr.ConfigPath(host)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found: %s", configPath)
	}

	editor := getEditor()
	editorPath, err := deps.CommandRunner.LookPath(editor)
	if err != nil {
		return fmt.Errorf("editor not found: %s", editor)
	}

	output.Info("Opening %s with %s...", configPath, editor)
	if err := deps.CommandRunner.RunInteractive(editorPath, configPath); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}

	output.Success("Editor closed")
	output.Info("Run 'sudo apachectl graceful' to apply changes")
	return nil
}
