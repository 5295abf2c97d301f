package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ksyq12/passengerpane/internal/logger"
	"github.com/ksyq12/passengerpane/internal/output"
	"github.com/ksyq12/passengerpane/internal/passenger"
	"github.com/ksyq12/passengerpane/internal/watch"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the apps directory for changes",
	Long: `Print the application list, then print it again whenever a vhost file is
added, changed or removed. Stop with Ctrl-C.

Examples:
  passengerpane watch`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	_, mgr, err := loadManager()
	if err != nil {
		return err
	}

	w, err := watch.New(mgr.AppsDir(), passenger.ConfigSuffix)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := listApplications(mgr); err != nil {
		return err
	}
	output.Info("Watching %s (Ctrl-C to stop)", mgr.AppsDir())

	return w.Run(ctx, func(ev watch.Event) {
		handleWatchEvent(mgr, ev)
	})
}

func handleWatchEvent(mgr *passenger.Manager, ev watch.Event) {
	if !jsonOutput {
		output.Info("%s %s", ev.File, ev.Op)
	}
	logger.LogError(listApplications(mgr), "reload application list")
}

func listApplications(mgr *passenger.Manager) error {
	apps, err := mgr.LoadAll()
	if err != nil {
		return err
	}
	return printApplications(apps)
}
