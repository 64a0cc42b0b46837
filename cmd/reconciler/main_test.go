package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/release-state-reconciler/pkg/options"
	"github.com/release-state-reconciler/pkg/reconcile"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "dev (none)") {
		t.Errorf("output = %q, want version and commit", out)
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.Contains(out, "dev (none)") {
		t.Errorf("output = %q, want version and commit", out)
	}
}

func TestInvalidOptionRejectedForEveryCommand(t *testing.T) {
	for _, mode := range []string{"create", "check"} {
		_, err := execute(t, mode, "foo:bar")
		if !errors.Is(err, options.ErrInvalidOption) {
			t.Errorf("%s foo:bar err = %v, want ErrInvalidOption", mode, err)
		}
	}
}

func TestNoOptionsRejected(t *testing.T) {
	_, err := execute(t, "check")
	if !errors.Is(err, options.ErrNoOptions) {
		t.Errorf("err = %v, want ErrNoOptions", err)
	}
}

func TestUnknownCommandRejected(t *testing.T) {
	_, err := execute(t, "sync", "tag:v1")
	if err == nil {
		t.Error("unknown command accepted")
	}
}

func TestCreateRequiresToken(t *testing.T) {
	_, err := execute(t, "create", "tag:v1", "--repo", "octocat/hello", "--github-token", "")
	if err == nil || !strings.Contains(err.Error(), "token") {
		t.Errorf("err = %v, want missing-token error", err)
	}
}

func TestReportErrorExitStatus(t *testing.T) {
	if got := reportError(nil); got != 0 {
		t.Errorf("reportError(nil) = %d, want 0", got)
	}
	if got := reportError(reconcile.ErrDrift); got != 1 {
		t.Errorf("reportError(ErrDrift) = %d, want 1", got)
	}
	if got := reportError(errors.New("remote failure")); got != 1 {
		t.Errorf("reportError(remote failure) = %d, want 1", got)
	}
}
