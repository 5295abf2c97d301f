package passenger

import (
	"io"
	"regexp"
	"strings"

	apperrors "github.com/ksyq12/passengerpane/internal/errors"
)

// VHostConfig is what Parse extracts from a vhost file.
type VHostConfig struct {
	Host            string
	Path            string
	Environment     Environment
	AllowModRewrite bool
}

var (
	serverNameRe   = regexp.MustCompile(`(?mi)^\s*ServerName\s+(\S+)\s*$`)
	documentRootRe = regexp.MustCompile(`(?mi)^\s*DocumentRoot\s+(?:"([^"]+)"|(\S+))\s*$`)
	railsEnvRe     = regexp.MustCompile(`(?mi)^\s*RailsEnv\s+(\S+)\s*$`)
	modRewriteRe   = regexp.MustCompile(`(?mi)^\s*RailsAllowModRewrite\s+(\S+)\s*$`)
)

// publicDir is the Rails directory Apache serves; the application path is
// its parent.
const publicDir = "/public"

// Parse reads the ServerName, DocumentRoot, RailsEnv and RailsAllowModRewrite
// directives from a vhost file. ServerName and DocumentRoot are required; a
// missing RailsEnv means development and a missing RailsAllowModRewrite
// means off. name is only used in error messages.
func Parse(name string, r io.Reader) (*VHostConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeConfig, "failed to read "+name, err)
	}
	text := string(data)

	vc := &VHostConfig{Environment: Development}

	m := serverNameRe.FindStringSubmatch(text)
	if m == nil {
		return nil, apperrors.Parse(name, "missing ServerName directive")
	}
	vc.Host = m[1]

	m = documentRootRe.FindStringSubmatch(text)
	if m == nil {
		return nil, apperrors.Parse(name, "missing DocumentRoot directive")
	}
	root := m[1]
	if root == "" {
		root = m[2]
	}
	root = strings.TrimRight(root, "/")
	vc.Path = strings.TrimSuffix(root, publicDir)
	if vc.Path == "" {
		return nil, apperrors.Parse(name, "DocumentRoot has no application directory")
	}

	if m = railsEnvRe.FindStringSubmatch(text); m != nil && strings.EqualFold(m[1], Production.String()) {
		vc.Environment = Production
	}

	if m = modRewriteRe.FindStringSubmatch(text); m != nil {
		vc.AllowModRewrite = strings.EqualFold(m[1], "on")
	}

	return vc, nil
}
