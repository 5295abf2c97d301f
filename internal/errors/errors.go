// Package errors provides the structured error type shared by passengerpane.
//
// Every failure that leaves a package is an *AppError carrying a Code, so the
// CLI can decide how to present it and tests can match on the category
// instead of on message text.
//
// # Error Codes
//
//   - NOT_FOUND: no vhost file exists for the requested host
//   - VALIDATION: a field value could not be accepted
//   - PARSE: an existing vhost file is malformed
//   - CONFIG: the settings file could not be read or written
//   - INSTALLER: the external config installer or uninstaller failed
//   - RELOAD: apachectl or the restart marker touch failed
//   - PERMISSION: the command needs root
//
// # Usage
//
//	if errors.Is(err, errors.ErrAppNotFound) {
//	    // offer to create the application instead
//	}
//
//	var appErr *errors.AppError
//	if errors.As(err, &appErr) {
//	    fmt.Printf("%s failed for %s\n", appErr.Code, appErr.Host)
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

const (
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeValidation ErrorCode = "VALIDATION"
	ErrCodeParse      ErrorCode = "PARSE"
	ErrCodeConfig     ErrorCode = "CONFIG"
	ErrCodeInstaller  ErrorCode = "INSTALLER"
	ErrCodeReload     ErrorCode = "RELOAD"
	ErrCodePermission ErrorCode = "PERMISSION"
	ErrCodeInternal   ErrorCode = "INTERNAL"
)

// AppError is a categorized error, optionally tied to an application host.
type AppError struct {
	Code    ErrorCode
	Message string
	Host    string
	Err     error
}

func (e *AppError) Error() string {
	prefix := ""
	if e.Host != "" {
		prefix = "application " + e.Host + ": "
	}
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s%s: %v", prefix, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s%v", prefix, e.Err)
	default:
		return prefix + e.Message
	}
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on error code only, so sentinels compare equal to any
// error of the same category.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

var (
	ErrAppNotFound     = &AppError{Code: ErrCodeNotFound, Message: "application not found"}
	ErrInvalidField    = &AppError{Code: ErrCodeValidation, Message: "invalid field"}
	ErrMalformedConfig = &AppError{Code: ErrCodeParse, Message: "malformed vhost config"}
	ErrConfigInvalid   = &AppError{Code: ErrCodeConfig, Message: "invalid configuration"}
	ErrInstallerFailed = &AppError{Code: ErrCodeInstaller, Message: "config installer failed"}
	ErrReloadFailed    = &AppError{Code: ErrCodeReload, Message: "server reload failed"}
	ErrRootRequired    = &AppError{Code: ErrCodePermission, Message: "root privileges required"}
)

// NotFound creates an error for a host without a vhost file.
func NotFound(host string) error {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: "application not found",
		Host:    host,
	}
}

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// Config creates a settings file error with a custom message.
func Config(msg string) error {
	return &AppError{
		Code:    ErrCodeConfig,
		Message: msg,
	}
}

// Parse creates an error for a malformed vhost file.
func Parse(file, msg string) error {
	return &AppError{
		Code:    ErrCodeParse,
		Message: fmt.Sprintf("%s: %s", file, msg),
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &AppError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapHost creates an error with host context and underlying error.
func WrapHost(code ErrorCode, host, msg string, err error) error {
	return &AppError{
		Code:    code,
		Message: msg,
		Host:    host,
		Err:     err,
	}
}

// Is re-exports errors.Is.
var Is = errors.Is

// As re-exports errors.As.
var As = errors.As
