package terminal

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/faktorial/core/query"
	"github.com/vadiminshakov/faktorial/internal/ctxlog"
	"github.com/vadiminshakov/faktorial/ui"
)

// Options tune how the outcome is shown.
type Options struct {
	Color bool
}

// Run reads one integer from r and writes exactly one outcome line to out.
// The returned query is in a terminal state. An error is returned only when
// out cannot be written.
func Run(ctx context.Context, r LineReader, out io.Writer, opts Options) (*query.Query, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("query started", "state", query.AwaitingInput.String())

	in := ReadInt(r, ui.Prompt)
	if v, ok := in.Get(); ok {
		logger.Debug("input read", "value", v)
	} else {
		logger.Debug("input rejected", "cause", in.Cause())
	}

	q := query.Resolve(in)

	if _, err := fmt.Fprintln(out, ui.Outcome(q, opts.Color)); err != nil {
		return q, errors.Wrap(err, "write outcome")
	}

	if q.State() == query.ComputingResult {
		if err := q.MarkPrinted(); err != nil {
			return q, err
		}
	}

	logger.Debug("query finished", "state", q.State().String())
	return q, nil
}
