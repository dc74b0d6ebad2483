package executor

import (
	"context"
	"runtime"
	"strings"
	"testing"
)

func TestObfuscate(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "password masked",
			args: []string{"-t", "restart_node", "-d", "mydb", "-p", "s3cret"},
			want: "admintools -t restart_node -d mydb -p *******",
		},
		{
			name: "no password",
			args: []string{"-t", "show_active_db"},
			want: "admintools -t show_active_db",
		},
		{
			name: "trailing -p without value",
			args: []string{"-t", "restart_node", "-p"},
			want: "admintools -t restart_node -p",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := obfuscate("admintools", tt.args); got != tt.want {
				t.Errorf("obfuscate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunCapturesStdout(t *testing.T) {
	skipOnWindows(t)

	res, err := NewCommandRunner().Run(context.Background(), "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.TrimSpace(res.Stdout) != "hello" {
		t.Errorf("Stdout = %q, want %q", res.Stdout, "hello\n")
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
}

func TestRunNonzeroExitIsNotAnError(t *testing.T) {
	skipOnWindows(t)

	// The administration tool's exit codes are unreliable; the contract is
	// that stdout still comes back so callers can match against it.
	res, err := NewCommandRunner().Run(context.Background(), "sh", "-c", "echo partial; echo oops >&2; exit 3")
	if err != nil {
		t.Fatalf("Run() error = %v, want nil on nonzero exit", err)
	}
	if strings.TrimSpace(res.Stdout) != "partial" {
		t.Errorf("Stdout = %q, want %q", res.Stdout, "partial\n")
	}
	if strings.TrimSpace(res.Stderr) != "oops" {
		t.Errorf("Stderr = %q, want %q", res.Stderr, "oops\n")
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
}

func TestRunMissingBinary(t *testing.T) {
	_, err := NewCommandRunner().Run(context.Background(), "/nonexistent/bin/admintools")
	if err == nil {
		t.Error("Run() error = nil, want error for missing binary")
	}
}

func TestFakeMatchesInOrder(t *testing.T) {
	fake := &Fake{
		Responses: []Response{
			{Match: "show_active_db", Result: Result{Stdout: "mydb 3\n"}},
			{Match: "restart_node", Result: Result{Stdout: "v_mydb_node0001: (UP)\n"}},
		},
	}

	res, err := fake.Run(context.Background(), "admintools", "-t", "restart_node", "-d", "mydb")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(res.Stdout, "(UP)") {
		t.Errorf("Stdout = %q, want the restart response", res.Stdout)
	}
	if len(fake.Calls) != 1 || fake.Calls[0].Args[1] != "restart_node" {
		t.Errorf("Calls = %+v, want one recorded restart_node call", fake.Calls)
	}
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}
