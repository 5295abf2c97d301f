package cli

import (
	"strings"
	"testing"
)

func TestRunShow(t *testing.T) {
	tests := []struct {
		name        string
		host        string
		config      bool
		json        bool
		wantErr     bool
		contains    []string
		notContains []string
	}{
		{
			name:     "details",
			host:     "blog.local",
			contains: []string{"Host:", "blog.local", "/srv/blog", "production", "Mod rewrite:", "on", "http://blog.local"},
		},
		{
			name:        "rendered config",
			host:        "blog.local",
			config:      true,
			contains:    []string{"ServerName blog.local", `DocumentRoot "/srv/blog/public"`, "RailsEnv production", "RailsAllowModRewrite on"},
			notContains: []string{"URL:"},
		},
		{
			name:     "json details",
			host:     "blog.local",
			json:     true,
			contains: []string{`"host": "blog.local"`, `"environment": "production"`, `"allow_mod_rewrite": true`},
		},
		{
			name:     "json config",
			host:     "blog.local",
			config:   true,
			json:     true,
			contains: []string{`"config": "`, "ServerName blog.local"},
		},
		{
			name:    "unknown application",
			host:    "nope.local",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTestHelper(t)
			h.WriteApp("blog.local", "/srv/blog", "production", true)
			jsonOutput = tt.json
			showConfig = tt.config
			defer func() { showConfig = false }()

			err := runShow(nil, []string{tt.host})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			out := h.Output.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(out, unwanted) {
					t.Errorf("output should not contain %q:\n%s", unwanted, out)
				}
			}
		})
	}
}
