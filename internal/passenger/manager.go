package passenger

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ksyq12/passengerpane/internal/config"
	apperrors "github.com/ksyq12/passengerpane/internal/errors"
	"github.com/ksyq12/passengerpane/internal/logger"
)

// ConfigSuffix is the file name suffix of application vhost files.
const ConfigSuffix = ".vhost.conf"

// ConfigWriter installs and uninstalls application vhost files.
type ConfigWriter interface {
	// Install writes records and their hosts entries. A reload command, when
	// given, is run by the installer after writing.
	Install(records []config.Record, hostsFile string, reloadCommand ...string) error

	// Uninstall removes the vhost file at configPath and the hosts entry for host.
	Uninstall(hostsFile, configPath, host string) error
}

// ServerReloader reloads the web server and restarts single applications.
type ServerReloader interface {
	GracefulReload() error
	GracefulCommand() string
	TouchRestartMarker(path string) error
}

// Manager creates and loads applications that share an apps directory,
// hosts file and collaborators.
type Manager struct {
	appsDir   string
	hostsFile string
	writer    ConfigWriter
	reloader  ServerReloader
}

// NewManager creates a Manager.
func NewManager(appsDir, hostsFile string, writer ConfigWriter, reloader ServerReloader) *Manager {
	return &Manager{
		appsDir:   appsDir,
		hostsFile: hostsFile,
		writer:    writer,
		reloader:  reloader,
	}
}

func (m *Manager) AppsDir() string   { return m.appsDir }
func (m *Manager) HostsFile() string { return m.hostsFile }

// ConfigPath returns <appsDir>/<host>.vhost.conf.
func (m *Manager) ConfigPath(host string) string {
	return filepath.Join(m.appsDir, host+ConfigSuffix)
}

// New returns an empty, new application.
func (m *Manager) New() *Application {
	return &Application{
		m:           m,
		environment: Development,
		isNew:       true,
	}
}

// NewWithPath returns a new application for path with its default host.
// The derived host does not make the record dirty.
func (m *Manager) NewWithPath(path string) *Application {
	app := m.New()
	app.path = path
	app.host = DefaultHost(path)
	return app
}

// Load reads an existing vhost file.
func (m *Manager) Load(file string) (*Application, error) {
	f, err := os.Open(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NotFound(strings.TrimSuffix(filepath.Base(file), ConfigSuffix))
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeConfig, "failed to open vhost config", err)
	}
	defer f.Close()

	vc, err := Parse(file, f)
	if err != nil {
		return nil, err
	}

	logger.DebugFields("loaded vhost", logger.Fields{"file": file, "host": vc.Host})

	return &Application{
		m:               m,
		host:            vc.Host,
		path:            vc.Path,
		environment:     vc.Environment,
		allowModRewrite: vc.AllowModRewrite,
	}, nil
}

// Uninstall removes the vhost file and hosts entry for host without loading it.
func (m *Manager) Uninstall(host string) error {
	if err := m.writer.Uninstall(m.hostsFile, m.ConfigPath(host), host); err != nil {
		return withHost(err, host)
	}
	return nil
}

// Find loads the application for host from the apps directory.
func (m *Manager) Find(host string) (*Application, error) {
	return m.Load(m.ConfigPath(host))
}

// ConfigFiles lists the vhost files in the apps directory. A missing
// directory has no files.
func (m *Manager) ConfigFiles() ([]string, error) {
	entries, err := os.ReadDir(m.appsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeConfig, "failed to read apps directory", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && !strings.HasPrefix(name, ".") && strings.HasSuffix(name, ConfigSuffix) {
			files = append(files, filepath.Join(m.appsDir, name))
		}
	}
	return files, nil
}

// LoadAll loads every vhost file in the apps directory, sorted by host.
// Malformed files are skipped with a warning.
func (m *Manager) LoadAll() ([]*Application, error) {
	files, err := m.ConfigFiles()
	if err != nil {
		return nil, err
	}

	apps := make([]*Application, 0, len(files))
	for _, file := range files {
		app, err := m.Load(file)
		if err != nil {
			logger.Warn("skipping %s: %v", file, err)
			continue
		}
		apps = append(apps, app)
	}

	sort.Slice(apps, func(i, j int) bool {
		return apps[i].host < apps[j].host
	})
	return apps, nil
}

// StartApplications installs every application in a single installer call
// that also reloads Apache. On success all of them are clean and no longer new.
func (m *Manager) StartApplications(apps []*Application) error {
	if len(apps) == 0 {
		return nil
	}

	records := make([]config.Record, 0, len(apps))
	for _, app := range apps {
		records = append(records, app.Record())
	}

	logger.InfoFields("start applications", logger.Fields{"count": len(apps)})
	if err := m.writer.Install(records, m.hostsFile, m.reloader.GracefulCommand()); err != nil {
		return err
	}

	for _, app := range apps {
		app.isNew = false
		app.dirty = false
	}
	return nil
}
