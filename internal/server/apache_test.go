package server

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ksyq12/passengerpane/internal/config"
	apperrors "github.com/ksyq12/passengerpane/internal/errors"
	"github.com/ksyq12/passengerpane/internal/executor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGracefulReload(t *testing.T) {
	mock := &executor.MockExecutor{}
	a := NewApache(mock, "/usr/sbin/apachectl", "/usr/bin/touch")

	require.NoError(t, a.GracefulReload())
	require.Len(t, mock.Calls, 1)
	assert.Equal(t, executor.CommandCall{Name: "/usr/sbin/apachectl", Args: []string{"graceful"}}, mock.Calls[0])
	assert.Equal(t, "/usr/sbin/apachectl graceful", a.GracefulCommand())
}

func TestGracefulReloadFailure(t *testing.T) {
	mock := &executor.MockExecutor{
		ExecuteFunc: func(name string, args ...string) ([]byte, error) {
			return []byte("Syntax error on line 3\n"), errors.New("exit status 1")
		},
	}
	a := NewApache(mock, "/usr/sbin/apachectl", "/usr/bin/touch")

	err := a.GracefulReload()
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrReloadFailed))
	assert.Contains(t, err.Error(), "Syntax error on line 3")
}

func TestTouchRestartMarker(t *testing.T) {
	mock := &executor.MockExecutor{}
	a := NewApache(mock, "/usr/sbin/apachectl", "/usr/bin/touch")

	require.NoError(t, a.TouchRestartMarker("/Users/het-manfred/rails code/blog"))
	assert.Equal(t, []string{"/usr/bin/touch '/Users/het-manfred/rails code/blog/tmp/restart.txt'"}, mock.SystemCalls)
	assert.Empty(t, mock.Calls)
}

func TestRestartCommandIsVerbatim(t *testing.T) {
	a := NewApache(&executor.MockExecutor{}, "/usr/sbin/apachectl", "/usr/bin/touch")
	assert.Equal(t, "/usr/bin/touch '/rails/o'brien/tmp/restart.txt'", a.RestartCommand("/rails/o'brien"))
}

func TestTouchRestartMarkerFailure(t *testing.T) {
	mock := &executor.MockExecutor{
		SystemFunc: func(command string) ([]byte, error) {
			return nil, errors.New("exit status 1")
		},
	}
	a := NewApache(mock, "/usr/sbin/apachectl", "/usr/bin/touch")

	err := a.TouchRestartMarker("/missing")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrReloadFailed))
	assert.Equal(t, "restart marker touch failed: exit status 1", err.Error())
}

func TestConfigTest(t *testing.T) {
	mock := &executor.MockExecutor{}
	a := NewApacheFromConfig(mock, config.New())

	require.NoError(t, a.ConfigTest())
	assert.Equal(t, []string{"configtest"}, mock.Calls[0].Args)
	assert.Equal(t, config.DefaultApachectl, mock.Calls[0].Name)
}

func TestSystemTouch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "tmp"), 0755))

	a := NewApache(executor.NewSystemExecutor(), "/usr/sbin/apachectl", "touch")
	require.NoError(t, a.TouchRestartMarker(dir))
	assert.FileExists(t, filepath.Join(dir, RestartMarker))
}
