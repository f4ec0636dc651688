package cmd

import (
	"context"
	"log/slog"

	"github.com/anubhavg-icpl/anubhav-lang/cli/cmd/repl"
	"github.com/anubhavg-icpl/anubhav-lang/lang"
	"github.com/anubhavg-icpl/anubhav-lang/log"
)

// Repl starts an interactive session. Scripts given as arguments are
// executed first so their definitions are available at the prompt.
type Repl struct {
	Scripts []string `arg:"" help:"Script file(s) to load before the prompt" name:"script" optional:""`

	Seed uint64 `help:"Override the random generator seed" default:"12345"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	cacheDir, ok := ktx.Model.Vars()[CacheIdentifier]
	if !ok {
		panic("internal error: cache namespace undefined")
	}

	in := lang.New(
		lang.WithSeed(r.Seed),
		lang.WithLogger(log.Default()),
	)

	scripts, err := ExpandScripts(r.Scripts)
	if err != nil {
		return err
	}

	for _, script := range scripts {
		src, err := script.Text()
		if err != nil {
			return ErrReadScript.
				With(slog.String("script", script.Name)).
				Wrap(err)
		}

		if err := in.Run(src); err != nil {
			return ErrRunScript.
				With(slog.String("script", script.Name)).
				Wrap(err)
		}
	}

	return repl.Run(ctx, in, cacheDir, log.Default())
}
