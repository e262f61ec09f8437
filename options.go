package main

import (
	"flag"

	env "github.com/xyproto/env/v2"
)

// Options configures one compilation run.
type Options struct {
	// Output is the destination path for emitted Yul source, or "" for
	// stdout.
	Output string
	// ForTest selects the #[test]-tagged entrypoint set instead of the
	// ordinary callable/create/receive/fallback set.
	ForTest bool
	// DumpBytecode requests a downstream bytecode dump in addition to
	// Yul source. This repo does not compile Yul to bytecode itself;
	// the flag and its plumbing exist so an embedder can plug in a
	// downstream dumper without changing call sites here.
	DumpBytecode bool
	Verbose      bool
}

// ParseOptions builds Options from command-line flags, each falling
// back to a MOVE2YUL_-prefixed environment variable when the flag is
// not passed explicitly.
func ParseOptions(args []string) (*Options, error) {
	fs := flag.NewFlagSet("move2yul", flag.ContinueOnError)

	output := fs.String("output", env.Str("MOVE2YUL_OUTPUT"), "write emitted Yul source to this path (default: stdout)")
	forTest := fs.Bool("test", env.Bool("MOVE2YUL_TEST"), "emit #[test]-tagged entrypoints instead of the normal entrypoint set")
	dumpBytecode := fs.Bool("dump-bytecode", env.Bool("MOVE2YUL_DUMP_BYTECODE"), "request a downstream bytecode dump alongside Yul source")
	verbose := fs.Bool("v", env.Bool("MOVE2YUL_VERBOSE"), "enable verbose diagnostic output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &Options{
		Output:       *output,
		ForTest:      *forTest,
		DumpBytecode: *dumpBytecode,
		Verbose:      *verbose,
	}, nil
}
