// Package installer drives the external Ruby scripts that write and remove
// application vhost files and their /etc/hosts entries.
//
// The scripts run with elevated privileges and own every file they touch;
// this package only builds their argument lists:
//
//	<ruby> <installer> <hosts file> <records as YAML> [<reload command>]
//	<ruby> <uninstaller> <hosts file> <config path> <host>
//
// When a reload command is passed the installer runs it after writing, so a
// batch of applications is installed and Apache reloaded in one invocation.
package installer

import (
	"github.com/ksyq12/passengerpane/internal/config"
	apperrors "github.com/ksyq12/passengerpane/internal/errors"
	"github.com/ksyq12/passengerpane/internal/executor"
	"github.com/ksyq12/passengerpane/internal/logger"
	"gopkg.in/yaml.v3"
)

// Installer invokes the config installer and uninstaller scripts.
type Installer struct {
	exec        executor.CommandExecutor
	ruby        string
	installer   string
	uninstaller string
}

// New creates an Installer running scripts with the given ruby binary.
func New(exec executor.CommandExecutor, ruby, installerScript, uninstallerScript string) *Installer {
	return &Installer{
		exec:        exec,
		ruby:        ruby,
		installer:   installerScript,
		uninstaller: uninstallerScript,
	}
}

// NewFromConfig creates an Installer from the settings file.
func NewFromConfig(exec executor.CommandExecutor, cfg *config.Config) *Installer {
	return New(exec, cfg.Ruby, cfg.Installer, cfg.Uninstaller)
}

// MarshalRecords serializes records into the YAML list the installer reads.
func MarshalRecords(records []config.Record) (string, error) {
	data, err := yaml.Marshal(records)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInternal, "failed to serialize records", err)
	}
	return string(data), nil
}

// Install writes the records' vhost files and hosts entries. An optional
// reloadCommand is passed through as the trailing argument.
func (i *Installer) Install(records []config.Record, hostsFile string, reloadCommand ...string) error {
	payload, err := MarshalRecords(records)
	if err != nil {
		return err
	}

	args := []string{i.installer, hostsFile, payload}
	args = append(args, reloadCommand...)

	logger.DebugFields("installer: run "+i.ruby, logger.Fields{
		"hosts":   hostsFile,
		"records": len(records),
		"reload":  len(reloadCommand) > 0,
	})

	if out, err := i.exec.Execute(i.ruby, args...); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInstaller, "config installer failed", executor.OutputError(out, err))
	}
	return nil
}

// Uninstall removes the vhost file at configPath and the hosts entry for host.
func (i *Installer) Uninstall(hostsFile, configPath, host string) error {
	logger.DebugFields("uninstaller: run "+i.ruby, logger.Fields{
		"hosts":  hostsFile,
		"config": configPath,
		"host":   host,
	})

	if out, err := i.exec.Execute(i.ruby, i.uninstaller, hostsFile, configPath, host); err != nil {
		return apperrors.WrapHost(apperrors.ErrCodeInstaller, host, "config uninstaller failed", executor.OutputError(out, err))
	}
	return nil
}

// Scripts returns the installer and uninstaller script paths.
func (i *Installer) Scripts() (string, string) {
	return i.installer, i.uninstaller
}
