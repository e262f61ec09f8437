package main

import (
	"fmt"
	"log"
	"os"
)

const versionString = "move2yul 1.0.0"

// VerboseMode gates diagnostic tracing printed to stderr throughout
// this package.
var VerboseMode bool

func main() {
	args := os.Args[1:]
	for _, arg := range args {
		switch arg {
		case "-V", "--V", "-version", "--version":
			fmt.Println(versionString)
			os.Exit(0)
		}
	}

	options, err := ParseOptions(args)
	if err != nil {
		log.Fatalf("option parsing failed: %v", err)
	}
	VerboseMode = options.Verbose

	model := buildDemoModel()

	ctx, err := NewContext(options, model)
	if err != nil {
		log.Fatalf("compilation failed: %v", err)
	}

	emitBootstrap(ctx.Writer())
	emitYulFunctionClosure(ctx.Writer(), allRootsNeededBy(ctx))

	out := os.Stdout
	if options.Output != "" {
		f, err := os.Create(options.Output)
		if err != nil {
			log.Fatalf("failed to open output %s: %v", options.Output, err)
		}
		defer f.Close()
		out = f
	}

	if _, err := fmt.Fprint(out, ctx.Writer().String()); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}

	if options.DumpBytecode && VerboseMode {
		fmt.Fprintln(os.Stderr, "bytecode dump requested: no downstream Yul-to-bytecode compiler is wired into this repo")
	}
}

// allRootsNeededBy walks ctx's target functions looking for their
// native lowerings and returns the runtime helpers those lowerings
// root. When no target function has a native lowering with a fixed
// root, it returns the default set Malloc, LoadU256, StoreU256.
func allRootsNeededBy(ctx *Context) []YulFunction {
	seen := map[YulFunction]bool{}
	var roots []YulFunction
	for _, fn := range ctx.targets {
		entry, ok := ctx.native.lookup(fn.Module.Name, fn.Name)
		if !ok || entry.requiresInlineEmission {
			continue
		}
		if !seen[entry.yulRoot] {
			seen[entry.yulRoot] = true
			roots = append(roots, entry.yulRoot)
		}
	}
	if len(roots) == 0 {
		roots = []YulFunction{FnMalloc, FnLoadU256, FnStoreU256}
	}
	return roots
}
