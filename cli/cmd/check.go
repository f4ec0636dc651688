package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anubhavg-icpl/anubhav-lang/lang"
	"github.com/anubhavg-icpl/anubhav-lang/log"
)

// Check parses scripts without executing them.
type Check struct {
	Scripts []string `arg:"" help:"Script file(s) or '-' for stdin" name:"script"`

	Quiet bool `help:"Suppress per-script confirmation output" short:"q"`
}

// Run executes the check command. It parses every script and reports
// the first syntax error with source context, or confirms each script.
func (c *Check) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	scripts, err := ExpandScripts(c.Scripts)
	if err != nil {
		return err
	}

	if len(scripts) == 0 {
		return ErrNoScript
	}

	for _, script := range scripts {
		src, err := script.Text()
		if err != nil {
			return ErrReadScript.
				With(slog.String("script", script.Name)).
				Wrap(err)
		}

		stmts, err := lang.NewParser(src).Parse()
		if err != nil {
			return ErrCheckScript.
				With(slog.String("script", script.Name)).
				Wrap(err)
		}

		log.DebugContext(ctx, "script parsed",
			slog.String("script", script.Name),
			slog.Int("statements", len(stmts)),
		)

		if !c.Quiet {
			fmt.Printf("%s: ok (%d statements)\n", script.Name, len(stmts))
		}
	}

	return nil
}
