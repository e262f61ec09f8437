package main

// PassPipeline runs whatever pre-emission analysis/transformation
// passes (EVM-specific lowering, reaching-definitions, liveness, ...)
// a full compiler would thread between IR construction and Yul
// emission. Those passes themselves are out of scope for this repo;
// this interface exists so NewContext has something concrete to call
// without pulling the real analysis in-tree, and so an embedder can
// supply their own implementation without changing this package.
type PassPipeline interface {
	// Run executes the pipeline's passes against model in place.
	Run(model *Model) error
	// RunWithDump is Run plus whatever extra bookkeeping the
	// implementation wants when a bytecode dump has been requested
	// downstream (see Options.DumpBytecode).
	RunWithDump(model *Model) error
}

// IdentityPipeline is the no-op PassPipeline: it leaves model
// untouched and never fails. It is NewContext's default when the
// caller supplies none.
type IdentityPipeline struct{}

func (IdentityPipeline) Run(model *Model) error         { return nil }
func (IdentityPipeline) RunWithDump(model *Model) error { return nil }
