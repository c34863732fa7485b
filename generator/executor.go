package generator

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ExecuteOptions configures execution behavior
type ExecuteOptions struct {
	DryRun bool
	Writer io.Writer // Where dry-run lines go (defaults to os.Stdout)
}

// Report collects the results of a pipeline run.
type Report struct {
	Results []Result
}

// Failed returns the results that carry an error.
func (r *Report) Failed() []Result {
	return Failed(r.Results)
}

// OK reports whether every step succeeded.
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}

// Execute runs ops in order. A failed step is recorded in the report and
// the remaining steps still run. The only error returned is ctx's, when
// it is cancelled between steps.
func Execute(ctx context.Context, m *Mutator, ops []Operation, opts ExecuteOptions) (*Report, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	report := &Report{}
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("generation cancelled: %w", err)
		}
		if opts.DryRun {
			fmt.Fprintf(opts.Writer, "✓ [DRY RUN] %s\n", op.Description())
			continue
		}
		report.Results = append(report.Results, op.Apply(m)...)
	}
	return report, nil
}
