package main

import (
	"fmt"
	"os"
	"strings"

	env "github.com/xyproto/env/v2"
)

// nativeKey identifies a native (intrinsic) function by its owning
// module's symbolic name and its own name, independent of address.
type nativeKey struct {
	module string
	name   string
}

// nativeEntry describes how a native function lowers: either directly
// to a runtime helper closure rooted at Yul, or by flagging that the
// call site needs bespoke inline emission with access to the
// compiling Context (vector operations allocate a linked storage
// base, for instance, which a fixed Yul body cannot parameterize).
type nativeEntry struct {
	yulRoot                YulFunction
	requiresInlineEmission bool
}

// nativeRegistry maps (module, function) to its lowering. Populated
// once per Context from the model's native declarations.
type nativeRegistry struct {
	entries map[nativeKey]nativeEntry
}

// defaultNativeLowering is the built-in table of U256 arithmetic and
// comparison natives and vector natives known to this backend. It has
// no signer/address entries; any native name not listed here resolves
// to inline emission (see resolveNativeEntry).
// Entries here can be overridden per function name via a
// MOVE2YUL_NATIVE_<FUNCTIONNAME> environment variable carrying an
// alternate YulFunction name, for embedders patching in a different
// lowering without touching source.
var defaultNativeLowering = map[string]nativeEntry{
	"add": {yulRoot: FnAddU256},
	"sub": {yulRoot: FnSub},
	"mul": {yulRoot: FnMulU256},
	"div": {yulRoot: FnDiv},
	"mod": {yulRoot: FnMod},
	"shl": {yulRoot: FnShlU256},
	"shr": {yulRoot: FnShr},
	"gt":  {yulRoot: FnGt},
	"lt":  {yulRoot: FnLt},
	"eq":  {yulRoot: FnEq},

	"empty":         {requiresInlineEmission: true},
	"push_back":     {requiresInlineEmission: true},
	"pop_back":      {requiresInlineEmission: true},
	"borrow":        {requiresInlineEmission: true},
	"length":        {requiresInlineEmission: true},
	"destroy_empty": {requiresInlineEmission: true},
	"swap":          {requiresInlineEmission: true},
}

// newNativeRegistry builds the registry for model, walking every
// module flagged IsNative and recording each of its functions.
// Environment overrides are resolved eagerly so later lookups are
// plain map reads.
func newNativeRegistry(model *Model) *nativeRegistry {
	reg := &nativeRegistry{entries: map[nativeKey]nativeEntry{}}
	for _, mod := range model.Modules() {
		if !mod.IsNative {
			continue
		}
		for _, fn := range mod.Functions {
			reg.entries[nativeKey{module: mod.Name, name: fn.Name}] = resolveNativeEntry(fn.Name)
		}
	}
	return reg
}

// resolveNativeEntry looks up funcName's default lowering, honoring a
// MOVE2YUL_NATIVE_<FUNCNAME> environment override that names a
// YulFunction by its registry name. An override that names an unknown
// function is a configuration error surfaced immediately, since a
// silently-ignored override would otherwise compile successfully
// against the wrong semantics.
func resolveNativeEntry(funcName string) nativeEntry {
	envVar := "MOVE2YUL_NATIVE_" + strings.ToUpper(funcName)
	if override := env.Str(envVar); override != "" {
		if VerboseMode {
			fmt.Fprintf(os.Stderr, "native override for %s: %s=%s\n", funcName, envVar, override)
		}
		for id, entry := range yulRegistry {
			if entry.name == override {
				return nativeEntry{yulRoot: id}
			}
		}
		panic(fmt.Sprintf("invariant violation: %s names unknown runtime helper %q", envVar, override))
	}
	if entry, ok := defaultNativeLowering[funcName]; ok {
		return entry
	}
	return nativeEntry{requiresInlineEmission: true}
}

// lookup returns the lowering for (module, name) and whether it is
// registered as native at all.
func (r *nativeRegistry) lookup(module, name string) (nativeEntry, bool) {
	e, ok := r.entries[nativeKey{module: module, name: name}]
	return e, ok
}
