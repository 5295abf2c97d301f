package template

import (
	"strings"
	"testing"

	"github.com/ksyq12/passengerpane/internal/config"
	"github.com/ksyq12/passengerpane/internal/passenger"
)

func TestRender(t *testing.T) {
	testCases := []struct {
		name        string
		record      config.Record
		contains    []string
		notContains []string
	}{
		{
			name: "development",
			record: config.Record{
				Host:        "blog.local",
				Path:        "/Users/het-manfred/rails code/blog",
				Environment: config.EnvDevelopment,
			},
			contains: []string{
				"ServerName blog.local",
				`DocumentRoot "/Users/het-manfred/rails code/blog/public"`,
				"RailsEnv development",
				`<directory "/Users/het-manfred/rails code/blog/public">`,
			},
			notContains: []string{"RailsAllowModRewrite"},
		},
		{
			name: "production with rewrite",
			record: config.Record{
				Host:            "wiki.local",
				Path:            "/rails/wiki",
				Environment:     config.EnvProduction,
				AllowModRewrite: true,
			},
			contains: []string{
				"ServerName wiki.local",
				"RailsEnv production",
				"RailsAllowModRewrite on",
			},
		},
		{
			name:     "empty environment defaults to development",
			record:   config.Record{Host: "a.local", Path: "/a"},
			contains: []string{"RailsEnv development"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Render(tc.record)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			for _, expected := range tc.contains {
				if !strings.Contains(result, expected) {
					t.Errorf("expected output to contain %q, got:\n%s", expected, result)
				}
			}
			for _, unexpected := range tc.notContains {
				if strings.Contains(result, unexpected) {
					t.Errorf("expected output not to contain %q, got:\n%s", unexpected, result)
				}
			}
		})
	}
}

func TestRenderRoundTrip(t *testing.T) {
	records := []config.Record{
		{Host: "het-manfreds-blog.local", Path: "/Users/het-manfred/rails code/blog", Environment: config.EnvDevelopment},
		{Host: "het-manfreds-wiki.local", Path: "/Users/het-manfred/rails code/wiki", Environment: config.EnvProduction, AllowModRewrite: true},
	}

	for _, rec := range records {
		t.Run(rec.Host, func(t *testing.T) {
			out, err := Render(rec)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}

			vc, err := passenger.Parse(rec.Host, strings.NewReader(out))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if vc.Host != rec.Host || vc.Path != rec.Path {
				t.Errorf("round trip mismatch: got %s %s", vc.Host, vc.Path)
			}
			if vc.Environment.String() != rec.Environment {
				t.Errorf("environment: got %s, want %s", vc.Environment, rec.Environment)
			}
			if vc.AllowModRewrite != rec.AllowModRewrite {
				t.Errorf("allow_mod_rewrite: got %v, want %v", vc.AllowModRewrite, rec.AllowModRewrite)
			}
		})
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := RenderNamed("nonexistent", config.Record{Host: "x.local"})
	if err == nil {
		t.Error("expected error for unknown template")
	}
}
