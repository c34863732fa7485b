// Package project holds the per-invocation state enzo threads through
// every file operation, and the on-disk record of a scaffolded project.
//
// # Context
//
// A Context is an immutable value describing the project being worked on:
//
//	pctx := project.New("myapp", project.Normal)
//	path, err := pctx.Resolve("src/index.js") // "./myapp/src/index.js"
//
// With no name, logical paths resolve against the current directory:
//
//	project.New("", project.Normal).Resolve("package.json") // "./package.json"
//
// The only mutable part of a Context is its Dependencies accumulator,
// which generators append package names to while they run.
//
// # Record
//
// enzo.yml is written at the root of every new project. Detect reads it
// back so later commands know what the project was created with.
package project
