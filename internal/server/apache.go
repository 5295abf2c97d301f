// Package server reloads Apache and signals Passenger applications to restart.
package server

import (
	"fmt"

	"github.com/ksyq12/passengerpane/internal/config"
	apperrors "github.com/ksyq12/passengerpane/internal/errors"
	"github.com/ksyq12/passengerpane/internal/executor"
	"github.com/ksyq12/passengerpane/internal/logger"
)

// RestartMarker is the file, relative to an application root, whose
// modification tells Passenger to restart the application on the next request.
const RestartMarker = "tmp/restart.txt"

// Apache reloads the web server through apachectl.
type Apache struct {
	exec      executor.CommandExecutor
	apachectl string
	touch     string
}

// NewApache creates a reloader using the given apachectl and touch binaries.
func NewApache(exec executor.CommandExecutor, apachectl, touch string) *Apache {
	return &Apache{
		exec:      exec,
		apachectl: apachectl,
		touch:     touch,
	}
}

// NewApacheFromConfig creates a reloader from the settings file.
func NewApacheFromConfig(exec executor.CommandExecutor, cfg *config.Config) *Apache {
	return NewApache(exec, cfg.Apachectl, cfg.Touch)
}

// GracefulCommand is the command line that reloads Apache gracefully.
func (a *Apache) GracefulCommand() string {
	return a.apachectl + " graceful"
}

// GracefulReload lets Apache finish in-flight requests and then switch to
// the new configuration.
func (a *Apache) GracefulReload() error {
	logger.Debug("reload: %s", a.GracefulCommand())
	out, err := a.exec.Execute(a.apachectl, "graceful")
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeReload, "apachectl graceful failed", executor.OutputError(out, err))
	}
	return nil
}

// RestartCommand is the shell command that touches path's restart marker.
// The path is single-quoted verbatim.
func (a *Apache) RestartCommand(path string) string {
	return fmt.Sprintf("%s '%s/%s'", a.touch, path, RestartMarker)
}

// TouchRestartMarker asks Passenger to restart the application at path.
func (a *Apache) TouchRestartMarker(path string) error {
	command := a.RestartCommand(path)
	logger.Debug("restart: %s", command)
	out, err := a.exec.System(command)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeReload, "restart marker touch failed", executor.OutputError(out, err))
	}
	return nil
}

// ConfigTest runs `apachectl configtest`.
func (a *Apache) ConfigTest() error {
	out, err := a.exec.Execute(a.apachectl, "configtest")
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeReload, "apache config test failed", executor.OutputError(out, err))
	}
	return nil
}
