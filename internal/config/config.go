package config

import (
	"os"
	"path/filepath"

	apperrors "github.com/ksyq12/passengerpane/internal/errors"
	"github.com/ksyq12/passengerpane/internal/platform"
	"gopkg.in/yaml.v3"
)

// Config holds the locations of everything passengerpane shells out to.
type Config struct {
	AppsDir     string `yaml:"apps_dir" json:"apps_dir"`
	HostsFile   string `yaml:"hosts_file" json:"hosts_file"`
	Ruby        string `yaml:"ruby" json:"ruby"`
	Installer   string `yaml:"installer" json:"installer"`
	Uninstaller string `yaml:"uninstaller" json:"uninstaller"`
	Apachectl   string `yaml:"apachectl" json:"apachectl"`
	Touch       string `yaml:"touch" json:"touch"`
}

const configDir = ".config/passengerpane"
const configFile = "config.yaml"

// Default locations of the helper scripts and binaries.
const (
	DefaultHostsFile   = "/etc/hosts"
	DefaultRuby        = "/usr/bin/ruby"
	DefaultInstaller   = "/usr/local/share/passengerpane/config_installer.rb"
	DefaultUninstaller = "/usr/local/share/passengerpane/config_uninstaller.rb"
	DefaultApachectl   = "/usr/sbin/apachectl"
	DefaultTouch       = "/usr/bin/touch"
	DefaultAppsDir     = "/private/etc/apache2/" + platform.AppsDirName
)

// New creates a new Config with default values
func New() *Config {
	return &Config{
		AppsDir:     DefaultAppsDir,
		HostsFile:   DefaultHostsFile,
		Ruby:        DefaultRuby,
		Installer:   DefaultInstaller,
		Uninstaller: DefaultUninstaller,
		Apachectl:   DefaultApachectl,
		Touch:       DefaultTouch,
	}
}

// NewForPlatform creates a Config whose apps directory, apachectl and hosts
// file come from the detected platform. Detection failures keep the defaults.
func NewForPlatform(detect func() (*platform.PlatformPaths, error)) *Config {
	cfg := New()
	paths, err := detect()
	if err != nil {
		return cfg
	}
	if paths.AppsDir != "" {
		cfg.AppsDir = paths.AppsDir
	}
	if paths.Apachectl != "" {
		cfg.Apachectl = paths.Apachectl
	}
	if paths.HostsFile != "" {
		cfg.HostsFile = paths.HostsFile
	}
	return cfg
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeConfig, "failed to get home directory", err)
	}
	return filepath.Join(home, configDir), nil
}

// ConfigPath returns the config file path
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the config from disk. Keys missing from the file keep their
// platform defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := NewForPlatform(platform.DetectPaths)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeConfig, "failed to read config", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeConfig, "failed to parse config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeConfig, "failed to create config directory", err)
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeConfig, "failed to marshal config", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeConfig, "failed to write config", err)
	}

	return nil
}

// Keys lists the settings file keys in file order.
var Keys = []string{"apps_dir", "hosts_file", "ruby", "installer", "uninstaller", "apachectl", "touch"}

func (c *Config) field(key string) *string {
	switch key {
	case "apps_dir":
		return &c.AppsDir
	case "hosts_file":
		return &c.HostsFile
	case "ruby":
		return &c.Ruby
	case "installer":
		return &c.Installer
	case "uninstaller":
		return &c.Uninstaller
	case "apachectl":
		return &c.Apachectl
	case "touch":
		return &c.Touch
	}
	return nil
}

// Get returns the value of a settings key.
func (c *Config) Get(key string) (string, error) {
	f := c.field(key)
	if f == nil {
		return "", apperrors.Config("unknown config key " + key)
	}
	return *f, nil
}

// Set changes a settings key. The result is not validated.
func (c *Config) Set(key, value string) error {
	f := c.field(key)
	if f == nil {
		return apperrors.Config("unknown config key " + key)
	}
	*f = value
	return nil
}

// Validate checks that every location is set and that the apps directory
// is absolute.
func (c *Config) Validate() error {
	for _, key := range Keys {
		if *c.field(key) == "" {
			return apperrors.Config("config key " + key + " cannot be empty")
		}
	}
	if !filepath.IsAbs(c.AppsDir) {
		return apperrors.Config("apps_dir must be absolute: " + c.AppsDir)
	}
	return nil
}
