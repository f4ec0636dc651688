//go:build !pprof

package profile

// Modes returns an empty list when built without the pprof build tag.
func Modes() []string { return nil }

// start is the no-op profiler used when built without the pprof build
// tag. The CLI hides the profiling flags in those builds, so no mode is
// ever requested; any caller still gets a safely stoppable handle.
func start(_, _ string, _ bool) interface{ Stop() } {
	return ignore{}
}
