package executor

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/ksyq12/passengerpane/internal/logger"
)

// Shell is the interpreter used by System.
const Shell = "/bin/sh"

// OutputError folds a command's combined output into its exit error.
func OutputError(output []byte, err error) error {
	msg := strings.TrimSpace(string(output))
	if msg == "" {
		return err
	}
	return fmt.Errorf("%w: %s", err, msg)
}

// CommandExecutor is an interface for executing system commands
type CommandExecutor interface {
	// Execute runs a command with the given name and arguments
	Execute(name string, args ...string) ([]byte, error)

	// System runs a single command line through the shell
	System(command string) ([]byte, error)

	// LookPath searches for an executable in the directories named by the PATH
	LookPath(file string) (string, error)
}

// SystemExecutor implements CommandExecutor using os/exec
type SystemExecutor struct{}

// NewSystemExecutor creates a new SystemExecutor
func NewSystemExecutor() *SystemExecutor {
	return &SystemExecutor{}
}

// Execute runs a command and returns combined output
func (e *SystemExecutor) Execute(name string, args ...string) ([]byte, error) {
	logger.DebugFields("exec "+name, logger.Fields{"args": len(args)})
	cmd := exec.Command(name, args...)
	return cmd.CombinedOutput()
}

// System runs command with `/bin/sh -c` and returns combined output
func (e *SystemExecutor) System(command string) ([]byte, error) {
	logger.Debug("system: %s", command)
	cmd := exec.Command(Shell, "-c", command)
	return cmd.CombinedOutput()
}

// LookPath searches for an executable
func (e *SystemExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// MockExecutor is a mock implementation for testing
type MockExecutor struct {
	ExecuteFunc  func(name string, args ...string) ([]byte, error)
	SystemFunc   func(command string) ([]byte, error)
	LookPathFunc func(file string) (string, error)
	Calls        []CommandCall
	SystemCalls  []string
}

// CommandCall records a command execution for verification
type CommandCall struct {
	Name string
	Args []string
}

// Execute calls the mock function
func (m *MockExecutor) Execute(name string, args ...string) ([]byte, error) {
	m.Calls = append(m.Calls, CommandCall{Name: name, Args: args})
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(name, args...)
	}
	return []byte(""), nil
}

// System records the command line and calls the mock function
func (m *MockExecutor) System(command string) ([]byte, error) {
	m.SystemCalls = append(m.SystemCalls, command)
	if m.SystemFunc != nil {
		return m.SystemFunc(command)
	}
	return []byte(""), nil
}

// LookPath calls the mock function
func (m *MockExecutor) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}
