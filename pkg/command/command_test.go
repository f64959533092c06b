package command

import (
	"context"
	"runtime"
	"strings"
	"testing"
	"time"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test relies on POSIX shell tools")
	}
}

func TestRun_CapturesStdout(t *testing.T) {
	skipOnWindows(t)
	r := NewRunner()

	res, err := r.Run(context.Background(), Request{
		Argv: []string{"sh", "-c", "printf 'hello\\nworld\\n'"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.Stdout != "hello\nworld\n" {
		t.Errorf("Stdout = %q, want %q", res.Stdout, "hello\nworld\n")
	}
	if res.Status != 0 {
		t.Errorf("Status = %d, want 0", res.Status)
	}
}

func TestRun_IgnoreStatus(t *testing.T) {
	skipOnWindows(t)
	r := NewRunner()

	res, err := r.Run(context.Background(), Request{
		Argv:         []string{"sh", "-c", "echo oops >&2; exit 3"},
		IgnoreStatus: true,
	})
	if err != nil {
		t.Fatalf("Run() with IgnoreStatus error = %v", err)
	}

	if res.Status != 3 {
		t.Errorf("Status = %d, want 3", res.Status)
	}
	if !strings.Contains(res.Stderr, "oops") {
		t.Errorf("Stderr = %q, want it to contain %q", res.Stderr, "oops")
	}
}

func TestRun_NonZeroIsError(t *testing.T) {
	skipOnWindows(t)
	r := NewRunner()

	_, err := r.Run(context.Background(), Request{
		Argv: []string{"sh", "-c", "exit 2"},
	})
	if err == nil {
		t.Fatal("Run() expected error for non-zero exit without IgnoreStatus")
	}
}

func TestRun_Stdin(t *testing.T) {
	skipOnWindows(t)
	r := NewRunner()

	res, err := r.Run(context.Background(), Request{
		Argv:  []string{"cat"},
		Stdin: "\tindented\n",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Stdout != "\tindented\n" {
		t.Errorf("Stdout = %q, want %q", res.Stdout, "\tindented\n")
	}
}

func TestRun_WorkingDir(t *testing.T) {
	skipOnWindows(t)
	r := NewRunner()
	dir := t.TempDir()

	res, err := r.Run(context.Background(), Request{
		Argv: []string{"pwd"},
		Dir:  dir,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.TrimSpace(res.Stdout) == "" {
		t.Error("pwd produced no output")
	}
}

func TestRun_Timeout(t *testing.T) {
	skipOnWindows(t)
	r := NewRunner()

	start := time.Now()
	_, err := r.Run(context.Background(), Request{
		Argv:    []string{"sleep", "10"},
		Timeout: 50 * time.Millisecond,
	})
	if err == nil {
		t.Fatal("Run() expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Run() took %v, timeout not enforced", elapsed)
	}
}

func TestRun_EmptyArgv(t *testing.T) {
	r := NewRunner()

	if _, err := r.Run(context.Background(), Request{}); err == nil {
		t.Fatal("Run() expected error for empty argv")
	}
}

func TestRun_MissingBinary(t *testing.T) {
	r := NewRunner()

	_, err := r.Run(context.Background(), Request{
		Argv: []string{"definitely-not-a-real-binary-9000"},
	})
	if err == nil {
		t.Fatal("Run() expected error for missing binary")
	}
}

func TestLookPath(t *testing.T) {
	skipOnWindows(t)
	r := NewRunner()

	if _, err := r.LookPath("sh"); err != nil {
		t.Errorf("LookPath(sh) error = %v", err)
	}
	if _, err := r.LookPath("definitely-not-a-real-binary-9000"); err == nil {
		t.Error("LookPath() expected error for missing binary")
	}
}
