package main

import (
	"fmt"
	"sync"
)

// Context is the single compilation session: it owns the code writer,
// the native function registry, the struct layout cache, and the
// closed set of functions to emit (the "targets"). Built once per
// model via NewContext.
type Context struct {
	options  *Options
	model    *Model
	writer   *CodeWriter
	native   *nativeRegistry
	diags    *Diagnostics
	pipeline PassPipeline

	targets []*FunctionDecl

	layoutMu    sync.Mutex
	layoutCache map[string]StructLayout
}

// NewContext builds a compilation session from model: it discovers
// the target entrypoints (callable/create/receive/fallback, or
// #[test]-tagged when options.ForTest is set), adds their transitive
// callee closure, runs the pre-emission pass pipeline (IdentityPipeline
// unless the caller supplies one), and instantiates the native
// function registry against the now-populated model.
func NewContext(options *Options, model *Model, pipeline ...PassPipeline) (*Context, error) {
	var pp PassPipeline = IdentityPipeline{}
	if len(pipeline) > 0 && pipeline[0] != nil {
		pp = pipeline[0]
	}

	c := &Context{
		options:     options,
		model:       model,
		writer:      NewCodeWriter(),
		diags:       &Diagnostics{},
		pipeline:    pp,
		layoutCache: map[string]StructLayout{},
	}

	entrypoints := c.discoverEntrypoints()
	seen := map[*FunctionDecl]bool{}
	for _, fn := range entrypoints {
		c.checkNoGenerics(fn)
		c.addFunctionClosure(fn, seen)
	}

	if c.diags.HasErrors() {
		var msg string
		for _, d := range c.diags.Errors() {
			msg += d.String() + "\n"
		}
		return nil, fmt.Errorf("compilation aborted with %d diagnostic(s):\n%s", len(c.diags.Errors()), msg)
	}

	var pipelineErr error
	if options.DumpBytecode {
		pipelineErr = c.pipeline.RunWithDump(model)
	} else {
		pipelineErr = c.pipeline.Run(model)
	}
	if pipelineErr != nil {
		return nil, fmt.Errorf("pass pipeline failed: %w", pipelineErr)
	}

	c.native = newNativeRegistry(model)
	return c, nil
}

// discoverEntrypoints selects the candidate top-level functions: the
// #[test]-tagged set under ForTest, otherwise every
// callable/create/receive/fallback function, scanning only target
// modules.
func (c *Context) discoverEntrypoints() []*FunctionDecl {
	var out []*FunctionDecl
	for _, mod := range c.model.TargetModules() {
		for _, fn := range mod.Functions {
			if c.options.ForTest {
				if isTestFun(fn) {
					out = append(out, fn)
				}
			} else if isEmittedEntrypoint(fn) {
				out = append(out, fn)
			}
		}
	}
	return out
}

// checkNoGenerics reports a diagnostic if fun carries type parameters:
// emitted entrypoints must be fully concrete, since Yul has no notion
// of generics to lower them into.
func (c *Context) checkNoGenerics(fun *FunctionDecl) {
	if fun.TypeParamCount > 0 {
		c.diags.Error(fmt.Sprintf("%s::%s", fun.Module.Name, fun.Name),
			"#[callable] or #[create] functions cannot be generic")
	}
}

// addFunctionClosure adds fun and its transitive callees to the
// target set, each function emitted exactly once regardless of how
// many call sites reach it.
func (c *Context) addFunctionClosure(fun *FunctionDecl, seen map[*FunctionDecl]bool) {
	if seen[fun] {
		return
	}
	seen[fun] = true
	c.targets = append(c.targets, fun)
	for _, called := range fun.Called {
		c.addFunctionClosure(called, seen)
	}
}

// GetTargetFunctions returns every function in the closure for which
// p holds.
func (c *Context) GetTargetFunctions(p func(*FunctionDecl) bool) []*FunctionDecl {
	var out []*FunctionDecl
	for _, fn := range c.targets {
		if p(fn) {
			out = append(out, fn)
		}
	}
	return out
}

// GetFieldTypes returns s's field types instantiated against
// typeArgs, in declaration order.
func (c *Context) GetFieldTypes(s *StructDecl, typeArgs []Type) []Type {
	return instantiatedFieldTypes(StructType(s, typeArgs))
}

// EmitBlock emits the given body function's output as an indented
// braced block on the context's writer.
func (c *Context) EmitBlock(body func()) {
	c.writer.Block(body)
}

// Writer exposes the context's code writer for components that must
// emit Yul text directly.
func (c *Context) Writer() *CodeWriter {
	return c.writer
}

// Native exposes the native function registry.
func (c *Context) Native() *nativeRegistry {
	return c.native
}
