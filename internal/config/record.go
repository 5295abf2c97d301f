package config

// Record is the plain serialized form of an application handed to the
// config installer. It only carries strings and booleans.
type Record struct {
	ConfigPath      string `yaml:"config_path" json:"config_path"`
	Host            string `yaml:"host" json:"host"`
	Path            string `yaml:"path" json:"path"`
	Environment     string `yaml:"environment" json:"environment"`
	AllowModRewrite bool   `yaml:"allow_mod_rewrite" json:"allow_mod_rewrite"`
}

// Environment names as they appear in a serialized Record.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)
