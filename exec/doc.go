// Package exec runs the external tools enzo drives, such as yarn and npm.
//
// An Executor either streams a command's output or, when built with
// Options.Spinner, shows a spinner and keeps the tail of stderr for the
// error message:
//
//	e := exec.NewExecutor(&exec.Options{Spinner: true}).In("./myapp")
//	err := e.Run(ctx, "yarn", "add", "react")
//
// Code that only needs to run commands should depend on Runner so tests
// can substitute a recorder.
package exec
