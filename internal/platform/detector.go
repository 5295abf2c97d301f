// Package platform detects where Apache keeps its Passenger application
// vhosts and its control binary on the current operating system.
package platform

import (
	"fmt"
	"os"
	"runtime"
)

// PlatformPaths contains the detected locations for the current system.
type PlatformPaths struct {
	AppsDir   string // directory holding <host>.vhost.conf files
	Apachectl string
	HostsFile string
}

// AppsDirName is the directory, inside the Apache config root, that the
// installer writes application vhosts to.
const AppsDirName = "passenger_pane_vhosts"

// DetectPaths returns platform-specific default paths.
func DetectPaths() (*PlatformPaths, error) {
	return detect(runtime.GOOS, pathExists)
}

func detect(goos string, exists func(string) bool) (*PlatformPaths, error) {
	switch goos {
	case "darwin":
		return detectDarwinPaths(), nil
	case "linux":
		return detectLinuxPaths(exists)
	default:
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// detectDarwinPaths returns the paths of the Apache bundled with macOS.
func detectDarwinPaths() *PlatformPaths {
	return &PlatformPaths{
		AppsDir:   "/private/etc/apache2/" + AppsDirName,
		Apachectl: "/usr/sbin/apachectl",
		HostsFile: "/etc/hosts",
	}
}

// detectLinuxPaths checks Debian/Ubuntu first, then RHEL/CentOS.
func detectLinuxPaths(exists func(string) bool) (*PlatformPaths, error) {
	if exists("/etc/apache2") {
		return &PlatformPaths{
			AppsDir:   "/etc/apache2/" + AppsDirName,
			Apachectl: "/usr/sbin/apachectl",
			HostsFile: "/etc/hosts",
		}, nil
	}

	if exists("/etc/httpd") {
		return &PlatformPaths{
			AppsDir:   "/etc/httpd/" + AppsDirName,
			Apachectl: "/usr/sbin/apachectl",
			HostsFile: "/etc/hosts",
		}, nil
	}

	return nil, fmt.Errorf("apache configuration not found (checked /etc/apache2, /etc/httpd)")
}

// pathExists checks if a path exists on the filesystem.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Platform returns a string describing the current platform.
func Platform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
