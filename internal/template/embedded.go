package template

import (
	"embed"
	"fmt"
)

//go:embed apache/*.tmpl
var apacheTemplates embed.FS

// readTemplate returns the named template source for Apache.
func readTemplate(name string) (string, error) {
	content, err := apacheTemplates.ReadFile(fmt.Sprintf("apache/%s.tmpl", name))
	if err != nil {
		return "", fmt.Errorf("template not found: apache/%s", name)
	}
	return string(content), nil
}
