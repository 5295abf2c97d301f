package template

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/ksyq12/passengerpane/internal/config"
)

// Passenger is the template used for application vhosts.
const Passenger = "passenger"

// TemplateData contains data for rendering templates
type TemplateData struct {
	Host            string
	Path            string
	Environment     string
	AllowModRewrite bool
}

// Render renders the Passenger vhost block for rec.
func Render(rec config.Record) (string, error) {
	return RenderNamed(Passenger, rec)
}

// RenderNamed renders the named embedded template for rec.
func RenderNamed(name string, rec config.Record) (string, error) {
	content, err := readTemplate(name)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	data := TemplateData{
		Host:            rec.Host,
		Path:            rec.Path,
		Environment:     rec.Environment,
		AllowModRewrite: rec.AllowModRewrite,
	}
	if data.Environment == "" {
		data.Environment = config.EnvDevelopment
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}

	return buf.String(), nil
}
