package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestCheckCommand_ValidScript(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "ok.anubhav", `
STORE x 5
REPEAT 3 TIMES DO
INCREMENT x
END
MANIFEST x
`)

	cmd := &Check{Scripts: []string{script}, Quiet: true}
	if err := cmd.Run(context.Background()); err != nil {
		t.Fatalf("check failed: %v", err)
	}
}

func TestCheckCommand_SyntaxError(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "bad.anubhav", "REPEAT oops TIMES DO\nEND\n")

	cmd := &Check{Scripts: []string{script}, Quiet: true}
	err := cmd.Run(context.Background())
	if !errors.Is(err, ErrCheckScript) {
		t.Fatalf("expected ErrCheckScript, got %v", err)
	}

	if !strings.Contains(err.Error(), "parse error") {
		t.Errorf("error should carry parse context: %v", err)
	}
}

func TestCheckCommand_DoesNotExecute(t *testing.T) {
	dir := t.TempDir()

	// ASSERT 0 fails at runtime but parses cleanly, so check accepts it.
	script := writeScript(t, dir, "assert.anubhav", "ASSERT 0 \"never run\"\n")

	cmd := &Check{Scripts: []string{script}, Quiet: true}
	if err := cmd.Run(context.Background()); err != nil {
		t.Fatalf("check should not execute scripts: %v", err)
	}
}

func TestCheckCommand_NoScripts(t *testing.T) {
	cmd := &Check{}
	if err := cmd.Run(context.Background()); !errors.Is(err, ErrNoScript) {
		t.Errorf("expected ErrNoScript, got %v", err)
	}
}
