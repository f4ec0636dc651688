package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCommand_ExecutesScript(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	script := writeScript(t, dir, "write.anubhav",
		`INTENT message "from script"
WRITE_FILE "`+out+`" message
`)

	cmd := &Run{Scripts: []string{script}, Seed: 12345}
	if err := cmd.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	if string(data) != "from script" {
		t.Errorf("output = %q, want %q", string(data), "from script")
	}
}

func TestRunCommand_SharesInterpreterAcrossScripts(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	first := writeScript(t, dir, "first.anubhav",
		"INTENT greeting \"carried over\"\n")
	second := writeScript(t, dir, "second.anubhav",
		`WRITE_FILE "`+out+`" greeting
`)

	cmd := &Run{Scripts: []string{first, second}, Seed: 12345}
	if err := cmd.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	if string(data) != "carried over" {
		t.Errorf("output = %q, want %q", string(data), "carried over")
	}
}

func TestRunCommand_NoScripts(t *testing.T) {
	cmd := &Run{}
	if err := cmd.Run(context.Background()); !errors.Is(err, ErrNoScript) {
		t.Errorf("expected ErrNoScript, got %v", err)
	}
}

func TestRunCommand_RuntimeError(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "bad.anubhav", "STORE x 1 / 0\n")

	cmd := &Run{Scripts: []string{script}, Seed: 12345}
	err := cmd.Run(context.Background())
	if !errors.Is(err, ErrRunScript) {
		t.Fatalf("expected ErrRunScript, got %v", err)
	}

	if !strings.Contains(err.Error(), "division by zero") {
		t.Errorf("error should name the cause: %v", err)
	}
}
