package cmd

import (
	"context"
	"log/slog"

	"github.com/anubhavg-icpl/anubhav-lang/lang"
	"github.com/anubhavg-icpl/anubhav-lang/log"
)

// Run executes one or more scripts in a single interpreter.
type Run struct {
	Scripts []string `arg:"" help:"Script file(s) or '-' for stdin" name:"script"`

	Seed uint64 `help:"Override the random generator seed" default:"12345"`
}

// Run executes the run command.
func (r *Run) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	scripts, err := ExpandScripts(r.Scripts)
	if err != nil {
		return err
	}

	if len(scripts) == 0 {
		return ErrNoScript
	}

	// All scripts share one interpreter, so STORE in the first script is
	// visible to RECALL in the last.
	in := lang.New(
		lang.WithSeed(r.Seed),
		lang.WithLogger(log.Default()),
	)

	for _, script := range scripts {
		src, err := script.Text()
		if err != nil {
			return ErrReadScript.
				With(slog.String("script", script.Name)).
				Wrap(err)
		}

		log.DebugContext(ctx, "running script",
			slog.String("script", script.Name),
			slog.Int("bytes", len(src)),
		)

		if err := in.Run(src); err != nil {
			return ErrRunScript.
				With(slog.String("script", script.Name)).
				Wrap(err)
		}
	}

	return nil
}
