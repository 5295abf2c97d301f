package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ksyq12/passengerpane/internal/config"
	"github.com/ksyq12/passengerpane/internal/installer"
	"github.com/ksyq12/passengerpane/internal/output"
	"github.com/ksyq12/passengerpane/internal/passenger"
	"github.com/ksyq12/passengerpane/internal/server"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system status and diagnose issues",
	Long: `Run diagnostic checks on the tools passengerpane relies on and on every
application vhost.

Checks:
  - Ruby, the config installer and uninstaller scripts
  - apachectl and the Apache configuration syntax
  - The apps directory and hosts file
  - Each vhost file parses, its directory exists and its host resolves locally

Examples:
  passengerpane doctor
  passengerpane doctor --json`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// Check statuses
const (
	statusSuccess = "success"
	statusWarning = "warning"
	statusError   = "error"
)

// CheckResult represents a single diagnostic check result
type CheckResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// AppStatus represents the status of a single application vhost
type AppStatus struct {
	File   string        `json:"file"`
	Host   string        `json:"host,omitempty"`
	Checks []CheckResult `json:"checks"`
}

// DoctorReport contains all diagnostic results
type DoctorReport struct {
	SystemRequirements []CheckResult `json:"system_requirements"`
	Configuration      []CheckResult `json:"configuration"`
	Applications       []AppStatus   `json:"applications"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, mgr, err := loadManager()
	if err != nil {
		return err
	}

	report := &DoctorReport{}
	report.SystemRequirements = checkSystemRequirements(cfg)
	report.Configuration = checkConfiguration(cfg)
	report.Applications = checkApplications(mgr)

	if jsonOutput {
		return output.JSON(report)
	}

	displayDoctorResults(report)
	return nil
}

func checkSystemRequirements(cfg *config.Config) []CheckResult {
	results := []CheckResult{}

	binaries := []struct {
		name string
		path string
	}{
		{"Ruby", cfg.Ruby},
		{"apachectl", cfg.Apachectl},
		{"touch", cfg.Touch},
	}
	for _, b := range binaries {
		if found, err := deps.Executor.LookPath(b.path); err == nil {
			results = append(results, CheckResult{statusSuccess, fmt.Sprintf("%s found (%s)", b.name, found)})
		} else {
			results = append(results, CheckResult{statusError, fmt.Sprintf("%s not found (%s)", b.name, b.path)})
		}
	}

	installerScript, uninstallerScript := installer.NewFromConfig(deps.Executor, cfg).Scripts()
	scripts := []struct {
		name string
		path string
	}{
		{"Config installer", installerScript},
		{"Config uninstaller", uninstallerScript},
	}
	for _, s := range scripts {
		if fileExists(s.path) {
			results = append(results, CheckResult{statusSuccess, fmt.Sprintf("%s found (%s)", s.name, s.path)})
		} else {
			results = append(results, CheckResult{statusError, fmt.Sprintf("%s missing (%s)", s.name, s.path)})
		}
	}

	return results
}

func checkConfiguration(cfg *config.Config) []CheckResult {
	results := []CheckResult{}

	if info, err := os.Stat(cfg.AppsDir); err == nil && info.IsDir() {
		results = append(results, CheckResult{statusSuccess, fmt.Sprintf("Apps directory exists (%s)", cfg.AppsDir)})
	} else {
		results = append(results, CheckResult{statusWarning, fmt.Sprintf("Apps directory missing (%s)", cfg.AppsDir)})
	}

	if fileExists(cfg.HostsFile) {
		results = append(results, CheckResult{statusSuccess, fmt.Sprintf("Hosts file exists (%s)", cfg.HostsFile)})
	} else {
		results = append(results, CheckResult{statusError, fmt.Sprintf("Hosts file missing (%s)", cfg.HostsFile)})
	}

	apache := server.NewApacheFromConfig(deps.Executor, cfg)
	if err := apache.ConfigTest(); err == nil {
		results = append(results, CheckResult{statusSuccess, "Apache config syntax OK"})
	} else {
		results = append(results, CheckResult{statusError, fmt.Sprintf("Apache config syntax error: %v", err)})
	}

	return results
}

func checkApplications(mgr *passenger.Manager) []AppStatus {
	statuses := []AppStatus{}

	files, err := mgr.ConfigFiles()
	if err != nil {
		return append(statuses, AppStatus{
			File:   mgr.AppsDir(),
			Checks: []CheckResult{{statusError, err.Error()}},
		})
	}

	hosts := readHostNames(mgr.HostsFile())
	for _, file := range files {
		status := AppStatus{File: file, Checks: []CheckResult{}}

		app, err := mgr.Load(file)
		if err != nil {
			status.Checks = append(status.Checks, CheckResult{statusError, "malformed vhost file: " + err.Error()})
			statuses = append(statuses, status)
			continue
		}
		status.Host = app.Host()

		if filepath.Base(file) != filepath.Base(app.ConfigPath()) {
			status.Checks = append(status.Checks, CheckResult{statusWarning, "file name does not match ServerName"})
		}
		if _, err := os.Stat(app.Path()); os.IsNotExist(err) {
			status.Checks = append(status.Checks, CheckResult{statusWarning, "application directory missing"})
		} else if _, err := os.Stat(filepath.Join(app.Path(), "public")); os.IsNotExist(err) {
			status.Checks = append(status.Checks, CheckResult{statusWarning, "public directory missing"})
		}
		if hosts != nil && !hosts[app.Host()] {
			status.Checks = append(status.Checks, CheckResult{statusWarning, "no hosts file entry"})
		}

		if len(status.Checks) == 0 {
			status.Checks = append(status.Checks, CheckResult{
				statusSuccess,
				fmt.Sprintf("%s, config valid", app.Environment()),
			})
		}
		statuses = append(statuses, status)
	}

	return statuses
}

// readHostNames returns every name listed in a hosts file, or nil when the
// file cannot be read.
func readHostNames(path string) map[string]bool {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	names := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		for _, name := range fields[1:] {
			names[name] = true
		}
	}
	return names
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func displayDoctorResults(report *DoctorReport) {
	output.Print("Checking system requirements...")
	for _, check := range report.SystemRequirements {
		displayCheck(check)
	}
	output.Print("")

	output.Print("Checking configuration...")
	for _, check := range report.Configuration {
		displayCheck(check)
	}
	output.Print("")

	if len(report.Applications) == 0 {
		output.Print("No applications configured")
		return
	}

	output.Print("Checking applications...")
	for _, app := range report.Applications {
		name := app.Host
		if name == "" {
			name = filepath.Base(app.File)
		}
		for _, check := range app.Checks {
			displayCheck(CheckResult{check.Status, name + " - " + check.Message})
		}
	}
}

func displayCheck(check CheckResult) {
	switch check.Status {
	case statusSuccess:
		output.Success("%s", check.Message)
	case statusWarning:
		output.Warn("%s", check.Message)
	case statusError:
		output.Error("%s", check.Message)
	}
}
