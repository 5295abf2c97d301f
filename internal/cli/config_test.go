package cli

import (
	"errors"
	"strings"
	"testing"
)

func TestRunConfigShow(t *testing.T) {
	h := NewTestHelper(t)

	if err := runConfigShow(nil, []string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := h.Output.String()
	for _, want := range []string{"platform:", "apps_dir:", h.Config.AppsDir, "touch:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunConfigSet(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		saveErr     error
		wantErr     bool
		errContains string
		wantSaves   int
	}{
		{name: "set two keys", args: []string{"ruby=/opt/ruby/bin/ruby", "touch = /bin/touch"}, wantSaves: 1},
		{name: "missing equals", args: []string{"ruby"}, wantErr: true, errContains: "expected key=value"},
		{name: "unknown key", args: []string{"port=80"}, wantErr: true, errContains: "unknown config key"},
		{name: "relative apps dir", args: []string{"apps_dir=vhosts"}, wantErr: true, errContains: "must be absolute"},
		{name: "save failure", args: []string{"ruby=/usr/local/bin/ruby"}, saveErr: errors.New("read-only"), wantErr: true, errContains: "failed to save config", wantSaves: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTestHelper(t)
			loader := &MockConfigLoader{Cfg: h.Config, SaveErr: tt.saveErr}
			deps.ConfigLoader = loader

			err := runConfigSet(nil, tt.args)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if loader.SaveCalls != tt.wantSaves {
				t.Errorf("SaveCalls = %d, want %d", loader.SaveCalls, tt.wantSaves)
			}
			if !tt.wantErr {
				if h.Config.Ruby != "/opt/ruby/bin/ruby" || h.Config.Touch != "/bin/touch" {
					t.Errorf("settings not applied: %+v", h.Config)
				}
			}
		})
	}
}
