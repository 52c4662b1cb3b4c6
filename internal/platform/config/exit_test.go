package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "help", err: fmt.Errorf("parse flags: %w", flag.ErrHelp), want: ExitOK},
		{name: "env", err: fmt.Errorf("parse env: %w", ErrInvalidEnv), want: ExitUsage},
		{name: "run", err: errors.New("listen tcp: address in use"), want: ExitFailure},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCode(tc.err); got != tc.want {
				t.Fatalf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestReportSkipsHelp(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if code := report(&buf, "storefront", flag.ErrHelp); code != ExitOK || buf.Len() != 0 {
		t.Fatalf("report(help) = %d, %q", code, buf.String())
	}
	if code := report(&buf, "storefront", errors.New("boom")); code != ExitFailure {
		t.Fatalf("report(boom) = %d, want %d", code, ExitFailure)
	}
	if got := buf.String(); got != "storefront: boom\n" {
		t.Fatalf("stderr = %q", got)
	}
}

// Exit terminates the process, so it runs in a subprocess.
func TestExitTerminatesWithUsageCode(t *testing.T) {
	if os.Getenv("STOREFRONT_TEST_EXIT_SUBPROCESS") == "1" {
		Exit("storefront", fmt.Errorf("parse env: %w", ErrInvalidEnv))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitTerminatesWithUsageCode$")
	cmd.Env = append(os.Environ(), "STOREFRONT_TEST_EXIT_SUBPROCESS=1")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != ExitUsage {
		t.Fatalf("exit code = %d, want %d", exitErr.ExitCode(), ExitUsage)
	}
	if !strings.Contains(string(out), "storefront: parse env: invalid environment") {
		t.Fatalf("stderr = %q", string(out))
	}
}
