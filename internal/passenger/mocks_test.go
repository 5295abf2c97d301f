package passenger

import (
	"github.com/ksyq12/passengerpane/internal/config"
	"github.com/stretchr/testify/mock"
)

const (
	testAppsDir   = "/etc/apache2/passenger_pane_vhosts"
	testHostsFile = "/etc/hosts"
	gracefulCmd   = "/usr/sbin/apachectl graceful"
)

// mockWriter implements ConfigWriter using testify/mock
type mockWriter struct {
	mock.Mock
}

func (m *mockWriter) Install(records []config.Record, hostsFile string, reloadCommand ...string) error {
	args := m.Called(records, hostsFile, reloadCommand)
	return args.Error(0)
}

func (m *mockWriter) Uninstall(hostsFile, configPath, host string) error {
	args := m.Called(hostsFile, configPath, host)
	return args.Error(0)
}

// mockReloader implements ServerReloader using testify/mock
type mockReloader struct {
	mock.Mock
}

func (m *mockReloader) GracefulReload() error {
	return m.Called().Error(0)
}

func (m *mockReloader) GracefulCommand() string {
	return gracefulCmd
}

func (m *mockReloader) TouchRestartMarker(path string) error {
	return m.Called(path).Error(0)
}

func newTestManager() (*Manager, *mockWriter, *mockReloader) {
	w := &mockWriter{}
	r := &mockReloader{}
	return NewManager(testAppsDir, testHostsFile, w, r), w, r
}

// noReload matches the variadic reload argument of a single-record install.
var noReload = []string(nil)
