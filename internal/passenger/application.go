package passenger

import (
	"path/filepath"
	"strings"

	"github.com/ksyq12/passengerpane/internal/config"
	apperrors "github.com/ksyq12/passengerpane/internal/errors"
	"github.com/ksyq12/passengerpane/internal/logger"
)

// HostSuffix is appended to the default host derived from a path.
const HostSuffix = ".local"

// Application is one Passenger vhost being edited.
type Application struct {
	m *Manager

	host            string
	path            string
	environment     Environment
	allowModRewrite bool

	isNew bool
	dirty bool
}

// DefaultHost derives a host name from the last segment of path:
// lowercased, with spaces and underscores turned into hyphens, plus ".local".
// It returns "" when path has no usable last segment.
func DefaultHost(path string) string {
	base := filepath.Base(strings.TrimRight(path, "/"))
	if base == "" || base == "." || base == "/" {
		return ""
	}
	base = strings.ToLower(base)
	base = strings.NewReplacer(" ", "-", "_", "-").Replace(base)
	return base + HostSuffix
}

func (a *Application) Host() string             { return a.host }
func (a *Application) Path() string             { return a.path }
func (a *Application) Environment() Environment { return a.environment }
func (a *Application) AllowModRewrite() bool    { return a.allowModRewrite }

// IsNew reports whether the application has never been applied or loaded
// from an existing vhost file.
func (a *Application) IsNew() bool { return a.isNew }

// IsDirty reports whether a field was set since construction, load or the
// last Apply or Restart.
func (a *Application) IsDirty() bool { return a.dirty }

// IsValid reports whether both host and path are present. Nothing else is
// checked.
func (a *Application) IsValid() bool {
	return a.host != "" && a.path != ""
}

func (a *Application) SetHost(host string) {
	a.host = host
	a.dirty = true
}

// SetPath sets the document root path. When host is empty it is filled with
// DefaultHost(path).
func (a *Application) SetPath(path string) {
	a.path = path
	if path != "" && a.host == "" {
		a.host = DefaultHost(path)
	}
	a.dirty = true
}

func (a *Application) SetEnvironment(env Environment) {
	a.environment = env
	a.dirty = true
}

func (a *Application) SetAllowModRewrite(allow bool) {
	a.allowModRewrite = allow
	a.dirty = true
}

// SetField sets one field from its string form. Environment takes
// development or production; allow_mod_rewrite takes on/off, yes/no or
// true/false. An empty string clears host and path.
func (a *Application) SetField(f Field, value string) error {
	switch f {
	case FieldHost:
		a.SetHost(value)
	case FieldPath:
		a.SetPath(value)
	case FieldEnvironment:
		env, err := ParseEnvironment(value)
		if err != nil {
			return err
		}
		a.SetEnvironment(env)
	case FieldAllowModRewrite:
		allow, err := parseSwitch(value)
		if err != nil {
			return err
		}
		a.SetAllowModRewrite(allow)
	default:
		return apperrors.Validation("field " + f.String() + " is not settable")
	}
	return nil
}

// ConfigPath is where the vhost file for this application lives.
func (a *Application) ConfigPath() string {
	return a.m.ConfigPath(a.host)
}

// Record returns the serialized form handed to the config installer.
func (a *Application) Record() config.Record {
	return config.Record{
		ConfigPath:      a.ConfigPath(),
		Host:            a.host,
		Path:            a.path,
		Environment:     a.environment.String(),
		AllowModRewrite: a.allowModRewrite,
	}
}

// Apply persists and activates the application. A new application is
// started; an existing one is restarted, saving first when dirty. The caller
// is expected to check IsValid beforehand.
func (a *Application) Apply() error {
	logger.InfoFields("apply", logger.Fields{"host": a.host, "new": a.isNew, "dirty": a.dirty})

	if a.isNew {
		if err := a.Start(); err != nil {
			return err
		}
		a.isNew = false
		a.dirty = false
		return nil
	}

	return a.Restart()
}

// Start installs the vhost and gracefully reloads Apache.
func (a *Application) Start() error {
	if err := a.SaveConfig(); err != nil {
		return err
	}
	if err := a.m.reloader.GracefulReload(); err != nil {
		return withHost(err, a.host)
	}
	return nil
}

// SaveConfig installs the vhost file and hosts entry for this application.
func (a *Application) SaveConfig() error {
	if err := a.m.writer.Install([]config.Record{a.Record()}, a.m.hostsFile); err != nil {
		return withHost(err, a.host)
	}
	return nil
}

// Restart saves the config when dirty and touches the application's restart
// marker. The record is clean afterwards unless the save failed.
func (a *Application) Restart() error {
	if a.dirty {
		if err := a.SaveConfig(); err != nil {
			return err
		}
	}

	err := a.m.reloader.TouchRestartMarker(a.path)
	a.dirty = false
	if err != nil {
		return withHost(err, a.host)
	}
	return nil
}

// Remove uninstalls the vhost file and hosts entry. The in-memory record is
// left untouched.
func (a *Application) Remove() error {
	return a.m.Uninstall(a.host)
}

// withHost attaches host context to an AppError that has none.
func withHost(err error, host string) error {
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) && appErr.Host == "" {
		return apperrors.WrapHost(appErr.Code, host, appErr.Message, appErr.Err)
	}
	return err
}
