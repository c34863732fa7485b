package generator

import (
	"errors"
	"fmt"

	"github.com/enzojs/enzo/output"
)

var (
	// ErrInvalidArgument means the arguments cannot be resolved to a target.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMissingArgument means a required argument was empty.
	ErrMissingArgument = errors.New("missing argument")
	// ErrPathRequired means WriteFile was called without a path.
	ErrPathRequired = errors.New("path required")
	// ErrIO wraps a failed filesystem call.
	ErrIO = errors.New("io failure")
	// ErrManifestMissing means package.json could not be read.
	ErrManifestMissing = errors.New("manifest missing")
	// ErrManifestParse means package.json is not a JSON object.
	ErrManifestParse = errors.New("manifest parse failure")
)

// Result is the outcome of a single file operation.
type Result struct {
	Op   output.Class
	Path string // display path, empty when the arguments were rejected
	Err  error
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s %s: %v", r.Op, r.Path, r.Err)
	}
	return fmt.Sprintf("%s %s", r.Op, r.Path)
}

func ioErr(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}

func argErr(kind error, msg string) error {
	return fmt.Errorf("%w: %s", kind, msg)
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.OK() {
			out = append(out, r)
		}
	}
	return out
}
