// Package cli contains the command line interface for anubhav.
//
// # Usage
//
// Scripts are executed with the run command, which is also the default
// command:
//
//	anubhav run script.anubhav
//	anubhav script.anubhav
//
// The check command parses scripts without executing them, reporting
// syntax errors with source context:
//
//	anubhav check script.anubhav
//
// The repl command starts an interactive session with completion over
// keywords and defined names:
//
//	anubhav repl
//
// Pass "-" as a script path to read from stdin. Duplicate script paths
// (including through symlinks) are detected and executed only once.
//
// # Configuration
//
// The init command writes a YAML configuration file populated with the
// current flag values. The file is loaded on every invocation, and
// command-line flags override its values:
//
//	config:
//	  log-level: debug
//	  log-format: text
//
// # Logging Options
//
//   - --log-level: Set minimum log level (debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o anubhav .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/anubhav/pprof)
//
// # Examples
//
//	# Debug logging while running a script
//	anubhav --log-level=debug run script.anubhav
//
//	# Syntax-check a script read from stdin
//	cat script.anubhav | anubhav check -
//
//	# CPU profile of a long-running script
//	anubhav --pprof-mode=cpu run bench.anubhav
package cli
