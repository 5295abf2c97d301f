package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ksyq12/passengerpane/internal/config"
	apperrors "github.com/ksyq12/passengerpane/internal/errors"
	"github.com/ksyq12/passengerpane/internal/installer"
	"github.com/ksyq12/passengerpane/internal/output"
	"github.com/ksyq12/passengerpane/internal/passenger"
	"github.com/ksyq12/passengerpane/internal/server"
)

// loadManager loads config and builds the application manager on top of the
// injected executor
func loadManager() (*config.Config, *passenger.Manager, error) {
	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	inst := installer.NewFromConfig(deps.Executor, cfg)
	apache := server.NewApacheFromConfig(deps.Executor, cfg)
	return cfg, passenger.NewManager(cfg.AppsDir, cfg.HostsFile, inst, apache), nil
}

// requireRoot checks if running as root
func requireRoot() error {
	return deps.RootChecker.RequireRoot()
}

// outputResult handles JSON or human-readable output
func outputResult(data interface{}, successMsg string, args ...interface{}) error {
	if jsonOutput {
		return output.JSON(data)
	}
	output.Success(successMsg, args...)
	return nil
}

// validateHost checks if host is usable as a ServerName and a file name
func validateHost(host string) error {
	if host == "" {
		return apperrors.Validation("host cannot be empty")
	}
	if strings.ContainsAny(host, " \t/") {
		return apperrors.Validation("host cannot contain spaces or slashes: " + host)
	}
	if strings.HasPrefix(host, "-") || strings.HasPrefix(host, ".") {
		return apperrors.Validation("host cannot start with a hyphen or dot: " + host)
	}
	return nil
}

// absPath resolves an application directory given on the command line
func absPath(path string) (string, error) {
	if path == "" {
		return "", apperrors.Validation("path cannot be empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeValidation, "invalid path", err)
	}
	return strings.TrimSuffix(abs, "/"), nil
}

// checkApplication validates an application before it is applied
func checkApplication(app *passenger.Application) error {
	if !app.IsValid() {
		return apperrors.Validation("application needs both a host and a path")
	}
	if err := validateHost(app.Host()); err != nil {
		return err
	}
	if !filepath.IsAbs(app.Path()) {
		return apperrors.Validation("path must be absolute: " + app.Path())
	}
	return nil
}

// AppDetail is the JSON and table view of an application
type AppDetail struct {
	Host            string `json:"host"`
	Path            string `json:"path"`
	Environment     string `json:"environment"`
	AllowModRewrite bool   `json:"allow_mod_rewrite"`
	ConfigPath      string `json:"config_path"`
	URL             string `json:"url"`
}

func detailOf(app *passenger.Application) AppDetail {
	return AppDetail{
		Host:            app.Host(),
		Path:            app.Path(),
		Environment:     app.Environment().String(),
		AllowModRewrite: app.AllowModRewrite(),
		ConfigPath:      app.ConfigPath(),
		URL:             "http://" + app.Host(),
	}
}

// CommandResult represents a common result structure for CLI commands
type CommandResult struct {
	Success bool   `json:"success"`
	Host    string `json:"host"`
	Action  string `json:"action,omitempty"`
	Message string `json:"message,omitempty"`
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// progress prints a status line unless output is JSON
func progress(format string, args ...interface{}) {
	if !jsonOutput {
		output.Info(format, args...)
	}
}
