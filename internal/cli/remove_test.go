package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunRemove(t *testing.T) {
	tests := []struct {
		name        string
		host        string
		force       bool
		stdin       []string
		isRoot      bool
		uninstErr   error
		wantErr     bool
		errContains string
		wantCalls   int
	}{
		{name: "remove with force flag", host: "blog.local", force: true, isRoot: true, wantCalls: 1},
		{name: "confirmed with y", host: "blog.local", stdin: []string{"y\n"}, isRoot: true, wantCalls: 1},
		{name: "confirmed with YES", host: "blog.local", stdin: []string{"YES\n"}, isRoot: true, wantCalls: 1},
		{name: "declined", host: "blog.local", stdin: []string{"n\n"}, isRoot: true, wantCalls: 0},
		{name: "no answer", host: "blog.local", isRoot: true, wantCalls: 0},
		{name: "unknown application", host: "nope.local", force: true, isRoot: true, wantErr: true, errContains: "not found"},
		{name: "invalid host", host: "../etc", force: true, isRoot: true, wantErr: true, errContains: "slashes"},
		{name: "requires root", host: "blog.local", force: true, isRoot: false, wantErr: true, errContains: "root privileges"},
		{
			name:        "uninstaller failure",
			host:        "blog.local",
			force:       true,
			isRoot:      true,
			uninstErr:   errors.New("exit status 2"),
			wantErr:     true,
			errContains: "config uninstaller failed",
			wantCalls:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTestHelper(t)
			h.MockRoot.IsRoot = tt.isRoot
			h.SetStdin(tt.stdin...)
			h.MockExecutor.ExecuteFunc = func(name string, args ...string) ([]byte, error) {
				return nil, tt.uninstErr
			}
			h.WriteApp("blog.local", filepath.Join(t.TempDir(), "blog"), "development", false)

			forceRemove = tt.force
			defer func() { forceRemove = false }()

			err := runRemove(nil, []string{tt.host})

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

			if len(h.MockExecutor.Calls) != tt.wantCalls {
				t.Fatalf("expected %d uninstaller calls, got %d", tt.wantCalls, len(h.MockExecutor.Calls))
			}
			if tt.wantCalls == 1 {
				call := h.MockExecutor.Calls[0]
				want := []string{
					h.Config.Uninstaller,
					h.Config.HostsFile,
					filepath.Join(h.Config.AppsDir, "blog.local.vhost.conf"),
					"blog.local",
				}
				if call.Name != h.Config.Ruby || strings.Join(call.Args, "|") != strings.Join(want, "|") {
					t.Errorf("uninstaller call = %s %v, want %s %v", call.Name, call.Args, h.Config.Ruby, want)
				}
			}
			if tt.wantCalls == 0 && !tt.wantErr && !strings.Contains(h.Output.String(), "Removal cancelled") {
				t.Errorf("expected cancellation message, got %s", h.Output.String())
			}
		})
	}
}

func TestRunRemoveMalformed(t *testing.T) {
	h := NewTestHelper(t)
	file := filepath.Join(h.Config.AppsDir, "broken.local.vhost.conf")
	if err := os.WriteFile(file, []byte("<VirtualHost *:80>\n</VirtualHost>\n"), 0644); err != nil {
		t.Fatal(err)
	}

	forceRemove = true
	defer func() { forceRemove = false }()

	if err := runRemove(nil, []string{"broken.local"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(h.MockExecutor.Calls) != 1 {
		t.Fatalf("expected 1 uninstaller call, got %d", len(h.MockExecutor.Calls))
	}
	want := []string{h.Config.Uninstaller, h.Config.HostsFile, file, "broken.local"}
	if got := h.MockExecutor.Calls[0].Args; strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("uninstaller args = %v, want %v", got, want)
	}
	out := h.Output.String()
	if !strings.Contains(out, "missing ServerName") || !strings.Contains(out, "Application broken.local removed") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
