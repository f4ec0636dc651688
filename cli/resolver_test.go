package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func resolveFlag(t *testing.T, r kong.Resolver, name string) any {
	t.Helper()

	flag := &kong.Flag{Value: &kong.Value{Name: name}}

	val, err := r.Resolve(nil, nil, flag)
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", name, err)
	}

	return val
}

func TestResolve_ReturnsCorrectConfig(t *testing.T) {
	doc := `
config:
  log-level: debug
  log-format: text
other:
  foo: bar
`

	resolver, err := resolve(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if val := resolveFlag(t, resolver, "log-level"); val != "debug" {
		t.Errorf("expected log-level=debug, got %v", val)
	}

	if val := resolveFlag(t, resolver, "log-format"); val != "text" {
		t.Errorf("expected log-format=text, got %v", val)
	}

	// Values outside the config mapping are not included
	if val := resolveFlag(t, resolver, "foo"); val != nil {
		t.Error("config should not contain 'foo' from 'other' mapping")
	}
}

func TestResolve_FlatDocument(t *testing.T) {
	// A document without the top-level config mapping is treated as the
	// mapping itself.
	doc := `log-level: warn`

	resolver, err := resolve(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if val := resolveFlag(t, resolver, "log-level"); val != "warn" {
		t.Errorf("expected log-level=warn, got %v", val)
	}
}

func TestResolve_UnderscoreHyphenMapping(t *testing.T) {
	doc := `
config:
  log_level: debug
`

	resolver, err := resolve(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	// Underscore version as stored in the config
	if val := resolveFlag(t, resolver, "log_level"); val != "debug" {
		t.Errorf("expected log_level=debug, got %v", val)
	}

	// Hyphen version should also work via underscore mapping
	if val := resolveFlag(t, resolver, "log-level"); val != "debug" {
		t.Errorf("expected log-level=debug, got %v", val)
	}
}

func TestResolve_NumbersBecomeStrings(t *testing.T) {
	doc := `
config:
  width: 42
  ratio: 0.5
`

	resolver, err := resolve(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if val := resolveFlag(t, resolver, "width"); val != "42" {
		t.Errorf("expected width=%q, got %v (%T)", "42", val, val)
	}

	if val := resolveFlag(t, resolver, "ratio"); val != "0.5" {
		t.Errorf("expected ratio=%q, got %v (%T)", "0.5", val, val)
	}
}

func TestResolve_InvalidDocument(t *testing.T) {
	// Malformed YAML yields an empty config rather than an error so a
	// broken config file never blocks the CLI.
	doc := "config:\n\tbad: [unterminated"

	resolver, err := resolve(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if val := resolveFlag(t, resolver, "bad"); val != nil {
		t.Errorf("expected nil value from invalid document, got %v", val)
	}
}

func TestResolve_MissingFlag(t *testing.T) {
	doc := `
config:
  log-level: debug
`

	resolver, err := resolve(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if val := resolveFlag(t, resolver, "absent"); val != nil {
		t.Errorf("expected nil for missing flag, got %v", val)
	}
}
