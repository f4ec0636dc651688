package profile

import "testing"

func newConfig() Config {
	return func() (string, string, bool) { return "", "", false }
}

func TestStartWithoutMode(t *testing.T) {
	stop := newConfig().Start()
	if stop == nil {
		t.Fatal("expected a stoppable handle")
	}

	// Stop must always be safely callable.
	stop.Stop()
}

func TestStartWithUnknownMode(t *testing.T) {
	c := WithMode("bogus")(newConfig())

	stop := c.Start()
	if stop == nil {
		t.Fatal("expected a stoppable handle")
	}

	stop.Stop()
}

func TestOptionsPreserveOtherFields(t *testing.T) {
	c := WithQuiet(true)(WithPath("/tmp/profiles")(WithMode("cpu")(newConfig())))

	mode, path, quiet := c()
	if mode != "cpu" || path != "/tmp/profiles" || !quiet {
		t.Errorf("got (%q, %q, %v)", mode, path, quiet)
	}
}
