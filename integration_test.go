package main

import (
	"os"
	"testing"
)

// TestNativeRegistryResolvesDefaultLowerings checks that a native
// module's declared functions resolve to their built-in runtime
// helper roots, and that vector operations are flagged for inline
// emission rather than given a fixed Yul root.
func TestNativeRegistryResolvesDefaultLowerings(t *testing.T) {
	model := NewModel()
	mod := model.AddModule(&ModuleDecl{Name: "Natives", IsNative: true})
	mod.AddFunction(&FunctionDecl{Name: "add"})
	mod.AddFunction(&FunctionDecl{Name: "push_back"})

	reg := newNativeRegistry(model)

	entry, ok := reg.lookup("Natives", "add")
	if !ok {
		t.Fatal("expected 'add' to be registered")
	}
	if entry.requiresInlineEmission || entry.yulRoot != FnAddU256 {
		t.Errorf("add should lower to FnAddU256 directly, got %+v", entry)
	}

	entry, ok = reg.lookup("Natives", "push_back")
	if !ok {
		t.Fatal("expected 'push_back' to be registered")
	}
	if !entry.requiresInlineEmission {
		t.Error("push_back should require inline emission (needs Context access)")
	}
}

func TestNativeRegistryLookupMissReportsFalse(t *testing.T) {
	reg := &nativeRegistry{entries: map[nativeKey]nativeEntry{}}
	if _, ok := reg.lookup("Nope", "nope"); ok {
		t.Error("lookup of an unregistered (module, name) pair should report false")
	}
}

// TestResolveNativeEntryHonorsEnvOverride checks that
// MOVE2YUL_NATIVE_<FUNC> redirects a native function to a different
// named runtime helper.
func TestResolveNativeEntryHonorsEnvOverride(t *testing.T) {
	const envVar = "MOVE2YUL_NATIVE_ADD"
	os.Setenv(envVar, "Sub")
	defer os.Unsetenv(envVar)

	entry := resolveNativeEntry("add")
	if entry.requiresInlineEmission || entry.yulRoot != FnSub {
		t.Errorf("expected override to FnSub, got %+v", entry)
	}
}

func TestResolveNativeEntryPanicsOnUnknownOverrideTarget(t *testing.T) {
	const envVar = "MOVE2YUL_NATIVE_ADD"
	os.Setenv(envVar, "NoSuchHelper")
	defer os.Unsetenv(envVar)

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an override naming an unknown runtime helper")
		}
	}()
	resolveNativeEntry("add")
}

func TestResolveNativeEntryFallsBackToInlineForUnknownNative(t *testing.T) {
	entry := resolveNativeEntry("something_never_registered")
	if !entry.requiresInlineEmission {
		t.Error("an unrecognized native function name should default to inline emission")
	}
}

// TestParseOptionsFlagsAndEnvFallback checks that an explicit flag wins
// over its MOVE2YUL_-prefixed environment default and that -test sets
// ForTest. TestParseOptionsEnvOnlyFallback covers an omitted flag
// falling back to the environment variable.
func TestParseOptionsFlagsAndEnvFallback(t *testing.T) {
	os.Setenv("MOVE2YUL_OUTPUT", "/tmp/from-env.yul")
	defer os.Unsetenv("MOVE2YUL_OUTPUT")

	opts, err := ParseOptions([]string{"-output", "/tmp/from-flag.yul", "-test"})
	if err != nil {
		t.Fatalf("ParseOptions failed: %v", err)
	}
	if opts.Output != "/tmp/from-flag.yul" {
		t.Errorf("explicit flag should win over env, got Output=%q", opts.Output)
	}
	if !opts.ForTest {
		t.Error("expected ForTest=true from -test flag")
	}
}

func TestParseOptionsEnvOnlyFallback(t *testing.T) {
	os.Setenv("MOVE2YUL_OUTPUT", "/tmp/from-env-only.yul")
	defer os.Unsetenv("MOVE2YUL_OUTPUT")

	opts, err := ParseOptions(nil)
	if err != nil {
		t.Fatalf("ParseOptions failed: %v", err)
	}
	if opts.Output != "/tmp/from-env-only.yul" {
		t.Errorf("Output = %q, want value from MOVE2YUL_OUTPUT", opts.Output)
	}
}

// TestDiagnosticsAccumulatesIndependentErrors checks that multiple
// independent problems are all collected rather than stopping at the
// first one reported.
func TestDiagnosticsAccumulatesIndependentErrors(t *testing.T) {
	var diags Diagnostics
	diags.Error("Mod1::fn1", "problem one")
	diags.Error("Mod2::fn2", "problem %d", 2)

	if !diags.HasErrors() {
		t.Fatal("expected HasErrors to be true")
	}
	errs := diags.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(errs))
	}
	if errs[1].String() != "Mod2::fn2: problem 2" {
		t.Errorf("unexpected formatted diagnostic: %q", errs[1].String())
	}
}

// TestTypeHashIsStableAndDistinguishesTypes checks that typeHash is a
// pure function of a type's mangled form: equal types hash equal,
// distinct types (overwhelmingly) hash distinct.
func TestTypeHashIsStableAndDistinguishesTypes(t *testing.T) {
	a := typeHash(Primitive(PrimU64))
	b := typeHash(Primitive(PrimU64))
	if a != b {
		t.Error("typeHash should be deterministic for the same type")
	}
	c := typeHash(Primitive(PrimU128))
	if a == c {
		t.Error("typeHash should distinguish u64 from u128")
	}
}
