package main

import (
	"strings"
	"testing"
)

// TestDemoModelCompilesToYul exercises the whole pipeline end to end:
// building a Context from the demo fixture, emitting the bootstrap
// prologue and the runtime helper closure allRootsNeededBy selects (the
// demo has no native module, so that is the default root set), and
// checking the expected prologue and helper text appear with every
// placeholder substituted.
func TestDemoModelCompilesToYul(t *testing.T) {
	model := buildDemoModel()
	options := &Options{}

	ctx, err := NewContext(options, model)
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}

	callables := ctx.GetTargetFunctions(isCallableFun)
	if len(callables) != 1 || callables[0].Name != "increment" {
		t.Fatalf("expected single callable entrypoint 'increment', got %v", callables)
	}

	emitBootstrap(ctx.Writer())
	emitYulFunctionClosure(ctx.Writer(), allRootsNeededBy(ctx))

	out := ctx.Writer().String()

	if !strings.Contains(out, "mstore(0, 160)") {
		t.Error("bootstrap prologue did not survive placeholder substitution")
	}
	if !strings.Contains(out, "function $Malloc") {
		t.Error("expected the allocator to be reachable from the emitted closure")
	}
	if strings.Contains(out, "${") {
		t.Errorf("unsubstituted placeholder token leaked into emitted output:\n%s", out)
	}
}

// TestContextRejectsGenericEntrypoint checks that a generic top-level
// entrypoint is reported as a diagnostic rather than silently emitted
// or causing a panic.
func TestContextRejectsGenericEntrypoint(t *testing.T) {
	model := NewModel()
	mod := model.AddModule(&ModuleDecl{Name: "Bad", IsTarget: true})
	mod.AddFunction(&FunctionDecl{
		Name:           "generic_entry",
		TypeParamCount: 1,
		Attributes:     map[string]bool{attrCallable: true},
	})

	_, err := NewContext(&Options{}, model)
	if err == nil {
		t.Fatal("expected an error for a generic callable entrypoint")
	}
	if !strings.Contains(err.Error(), "cannot be generic") {
		t.Errorf("unexpected error message: %v", err)
	}
}

// TestContextEntrypointClosureIncludesCallees checks that a callable
// function's callees are pulled into the emitted target set exactly
// once even when reachable through more than one path.
func TestContextEntrypointClosureIncludesCallees(t *testing.T) {
	model := NewModel()
	mod := model.AddModule(&ModuleDecl{Name: "M", IsTarget: true})

	leaf := mod.AddFunction(&FunctionDecl{Name: "leaf"})
	mid := mod.AddFunction(&FunctionDecl{Name: "mid"})
	mid.Called = []*FunctionDecl{leaf}

	entry := mod.AddFunction(&FunctionDecl{
		Name:       "entry",
		Attributes: map[string]bool{attrCallable: true},
	})
	entry.Called = []*FunctionDecl{mid, leaf}

	ctx, err := NewContext(&Options{}, model)
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}

	if len(ctx.targets) != 3 {
		t.Fatalf("expected 3 functions in the closure (entry, mid, leaf), got %d: %v", len(ctx.targets), ctx.targets)
	}
}

// TestContextTestModeSelectsTaggedEntrypoints checks that ForTest
// switches entrypoint discovery from the callable/create/receive/
// fallback set to the #[test]-tagged set.
func TestContextTestModeSelectsTaggedEntrypoints(t *testing.T) {
	model := NewModel()
	mod := model.AddModule(&ModuleDecl{Name: "M", IsTarget: true})
	mod.AddFunction(&FunctionDecl{Name: "callable_fn", Attributes: map[string]bool{attrCallable: true}})
	mod.AddFunction(&FunctionDecl{Name: "test_fn", Attributes: map[string]bool{attrTest: true}})

	ctx, err := NewContext(&Options{ForTest: true}, model)
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}
	if len(ctx.targets) != 1 || ctx.targets[0].Name != "test_fn" {
		t.Fatalf("expected only test_fn in test mode, got %v", ctx.targets)
	}
}
