package passenger

import (
	"strings"

	"github.com/ksyq12/passengerpane/internal/config"
	apperrors "github.com/ksyq12/passengerpane/internal/errors"
)

// Environment is the Rails environment an application runs in.
type Environment int

const (
	Development Environment = iota
	Production
)

func (e Environment) String() string {
	if e == Production {
		return config.EnvProduction
	}
	return config.EnvDevelopment
}

// ParseEnvironment accepts "development" or "production" in any case.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case config.EnvDevelopment:
		return Development, nil
	case config.EnvProduction:
		return Production, nil
	default:
		return Development, apperrors.Validation("invalid environment " + s + " (valid: development, production)")
	}
}

// Field names a settable attribute of an Application.
type Field int

const (
	FieldHost Field = iota
	FieldPath
	FieldEnvironment
	FieldAllowModRewrite
)

var fieldNames = []string{"host", "path", "environment", "allow_mod_rewrite"}

func (f Field) String() string {
	if int(f) >= 0 && int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "unknown"
}

// ParseField maps a field name, or one of its short aliases, to a Field.
func ParseField(name string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "host":
		return FieldHost, nil
	case "path":
		return FieldPath, nil
	case "environment", "env":
		return FieldEnvironment, nil
	case "allow_mod_rewrite", "rewrite":
		return FieldAllowModRewrite, nil
	default:
		return 0, apperrors.Validation("unknown field " + name + " (valid: " + strings.Join(fieldNames, ", ") + ")")
	}
}

// parseSwitch reads the on/off values used both in vhost files and on the
// command line.
func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0", "":
		return false, nil
	default:
		return false, apperrors.Validation("invalid boolean " + s + " (use on or off)")
	}
}
