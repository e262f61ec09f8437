package main

import "fmt"

// Diagnostic is one user-facing compilation error, distinct from an
// invariant-violation panic: diagnostics describe a problem with the
// input program, not a bug in this compiler.
type Diagnostic struct {
	Location string
	Message  string
}

func (d Diagnostic) String() string {
	if d.Location == "" {
		return d.Message
	}
	return fmt.Sprintf("%s: %s", d.Location, d.Message)
}

// Diagnostics accumulates user-facing errors across a compilation run
// so that independent problems (e.g. two generic entrypoints in
// different modules) are all reported together instead of stopping at
// the first one found.
type Diagnostics struct {
	errors []Diagnostic
}

// Error records a diagnostic at the given location.
func (d *Diagnostics) Error(location, format string, args ...interface{}) {
	d.errors = append(d.errors, Diagnostic{Location: location, Message: fmt.Sprintf(format, args...)})
}

// HasErrors reports whether any diagnostic has been recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.errors) > 0
}

// Errors returns every recorded diagnostic, in the order reported.
func (d *Diagnostics) Errors() []Diagnostic {
	return d.errors
}
