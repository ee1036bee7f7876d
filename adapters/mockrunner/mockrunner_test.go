package mockrunner

import (
	"errors"
	"testing"

	"os/exec"
)

func TestRunnerStartRecordsCallMetadata(t *testing.T) {
	runner := New(func(cmd *exec.Cmd) error {
		if cmd.Path != "first-path" {
			t.Fatalf("unexpected command path: %q", cmd.Path)
		}
		return nil
	})

	cmd := &exec.Cmd{Path: "first-path", Args: []string{"first-path", "-v"}}

	if err := runner.Start(cmd); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	if runner.Calls != 1 {
		t.Fatalf("Calls = %d, want 1", runner.Calls)
	}
	if len(runner.Paths) != 1 || runner.Paths[0] != "first-path" {
		t.Fatalf("Paths recorded %v, want [first-path]", runner.Paths)
	}
	if len(runner.Args) != 1 || len(runner.Args[0]) != 2 || runner.Args[0][1] != "-v" {
		t.Fatalf("Args recorded %v, want [[first-path -v]]", runner.Args)
	}
	cmd.Args[1] = "mutated"
	if runner.Args[0][1] != "-v" {
		t.Fatalf("recorded args alias the command: %v", runner.Args[0])
	}
	if remaining := runner.Remaining(); remaining != 0 {
		t.Fatalf("Remaining() = %d, want 0", remaining)
	}
}

func TestRunnerStartSequentialBehaviors(t *testing.T) {
	sentinel := errors.New("sentinel")
	runner := New(
		func(cmd *exec.Cmd) error {
			if cmd.Path != "first" {
				t.Fatalf("first behavior got path %q", cmd.Path)
			}
			return nil
		},
		func(cmd *exec.Cmd) error {
			if cmd.Path != "second" {
				t.Fatalf("second behavior got path %q", cmd.Path)
			}
			return sentinel
		},
	)

	if err := runner.Start(&exec.Cmd{Path: "first"}); err != nil {
		t.Fatalf("first Start returned error: %v", err)
	}

	if err := runner.Start(&exec.Cmd{Path: "second"}); !errors.Is(err, sentinel) {
		t.Fatalf("second Start error = %v, want sentinel", err)
	}

	if err := runner.Start(&exec.Cmd{Path: "third"}); err != nil {
		t.Fatalf("third Start returned error: %v", err)
	}

	if runner.Calls != 3 {
		t.Fatalf("Calls = %d, want 3", runner.Calls)
	}

	wantPaths := []string{"first", "second", "third"}
	if len(runner.Paths) != len(wantPaths) {
		t.Fatalf("Paths length = %d, want %d", len(runner.Paths), len(wantPaths))
	}
	for i, want := range wantPaths {
		if got := runner.Paths[i]; got != want {
			t.Fatalf("Paths[%d] = %q, want %q", i, got, want)
		}
	}
}

func TestRunnerWaitReturnsConfiguredError(t *testing.T) {
	sentinel := errors.New("wait failed")
	runner := New()
	runner.WaitErr = sentinel
	if err := runner.Wait(&exec.Cmd{}); !errors.Is(err, sentinel) {
		t.Fatalf("Wait error = %v, want sentinel", err)
	}
	if runner.WaitCalls != 1 {
		t.Fatalf("WaitCalls = %d, want 1", runner.WaitCalls)
	}
}

func TestRunnerWaitPrefersHook(t *testing.T) {
	sentinel := errors.New("from hook")
	runner := New()
	runner.WaitErr = errors.New("ignored")
	var seen *exec.Cmd
	runner.OnWait = func(cmd *exec.Cmd) error {
		seen = cmd
		return sentinel
	}
	cmd := &exec.Cmd{Path: "hooked"}
	if err := runner.Wait(cmd); !errors.Is(err, sentinel) {
		t.Fatalf("Wait error = %v, want sentinel", err)
	}
	if seen != cmd {
		t.Fatalf("OnWait did not receive the waited command")
	}
}
