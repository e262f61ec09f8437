package main

import "fmt"

// YulFunction is a closed enum tagging every runtime helper the
// backend can emit. The set is fixed at build time of this compiler —
// it is a constant, not derived from input.
type YulFunction int

const (
	FnAbort YulFunction = iota
	FnAbortBuiltin
	FnNotImplemented

	FnMalloc
	FnFree

	FnMakePtr
	FnIsStoragePtr
	FnOffsetPtr
	FnIndexPtr

	FnMaskForSize
	FnExtractBytes
	FnInjectBytes
	FnToWordOffs
	FnOverflowBytes

	FnMemoryLoadBytes
	FnMemoryStoreBytes
	FnStorageLoadBytes
	FnStorageStoreBytes
	FnStorageKey

	FnMakeTypeStorageBase
	FnNewLinkedStorageBase

	FnLoadU8
	FnMemoryLoadU8
	FnStorageLoadU8
	FnStoreU8
	FnMemoryStoreU8
	FnStorageStoreU8

	FnLoadU64
	FnMemoryLoadU64
	FnStorageLoadU64
	FnStoreU64
	FnMemoryStoreU64
	FnStorageStoreU64

	FnLoadU128
	FnMemoryLoadU128
	FnStorageLoadU128
	FnStoreU128
	FnMemoryStoreU128
	FnStorageStoreU128

	FnLoadU256
	FnMemoryLoadU256
	FnStorageLoadU256
	FnStoreU256
	FnMemoryStoreU256
	FnStorageStoreU256

	FnAlignedStorageLoad
	FnAlignedStorageStore

	FnCopyMemory

	FnAddU8
	FnMulU8
	FnAddU64
	FnMulU64
	FnAddU128
	FnMulU128
	FnAddU256
	FnMulU256
	FnSub
	FnDiv
	FnMod
	FnShr
	FnShlU8
	FnShlU64
	FnShlU128
	FnShlU256

	FnGt
	FnLt
	FnGtEq
	FnLtEq
	FnEq
	FnNeq

	FnLogicalAnd
	FnLogicalOr
	FnLogicalNot
	FnBitAnd
	FnBitOr
	FnBitXor
	FnBitNot

	FnCastU8
	FnCastU64
	FnCastU128
	FnCastU256

	yulFunctionCount
)

// yulFuncEntry is a runtime helper's declaration: its source name, the
// literal Yul body (parameter list plus braced block — no leading
// "function $name" and no trailing newline), and its direct
// dependencies.
type yulFuncEntry struct {
	id   YulFunction
	name string
	body string
	deps []YulFunction
}

// yulRegistry is the closed table built once at package init from
// every yul_*.go file's contribution.
var yulRegistry = buildYulRegistry()

func buildYulRegistry() map[YulFunction]yulFuncEntry {
	var entries []yulFuncEntry
	entries = append(entries, abortYulDefs()...)
	entries = append(entries, allocYulDefs()...)
	entries = append(entries, pointerYulDefs()...)
	entries = append(entries, bitsYulDefs()...)
	entries = append(entries, memoryYulDefs()...)
	entries = append(entries, storageYulDefs()...)
	entries = append(entries, typedIOYulDefs()...)
	entries = append(entries, arithYulDefs()...)
	entries = append(entries, relationalYulDefs()...)

	reg := make(map[YulFunction]yulFuncEntry, len(entries))
	for _, e := range entries {
		if _, dup := reg[e.id]; dup {
			panic(fmt.Sprintf("programmer error: duplicate YulFunction registration for %s", e.name))
		}
		reg[e.id] = e
	}
	if len(reg) != int(yulFunctionCount) {
		panic(fmt.Sprintf("programmer error: %d YulFunction tags declared but only %d registered", yulFunctionCount, len(reg)))
	}
	validateYulDependencyGraphAcyclic(reg)
	return reg
}

// validateYulDependencyGraphAcyclic performs a standard reverse-
// topological (DFS, path-marked) walk over the declared dependency
// graph and panics on any cycle: a cycle among runtime helpers is a
// programmer error in the library, caught at init time.
func validateYulDependencyGraphAcyclic(reg map[YulFunction]yulFuncEntry) {
	const (
		unvisited = 0
		onPath    = 1
		done      = 2
	)
	state := make(map[YulFunction]int, len(reg))

	var visit func(id YulFunction)
	visit = func(id YulFunction) {
		switch state[id] {
		case done:
			return
		case onPath:
			panic(fmt.Sprintf("programmer error: cycle in Yul runtime library dependency graph at %s", reg[id].name))
		}
		state[id] = onPath
		for _, dep := range reg[id].deps {
			visit(dep)
		}
		state[id] = done
	}
	for id := range reg {
		visit(id)
	}
}

// yuleName renders the Yul-visible function name, prefixed with "$" to
// avoid colliding with the user namespace.
func (f YulFunction) yuleName() string {
	return "$" + yulRegistry[f].name
}

// yuleDef renders "function $name<body>" for f.
func (f YulFunction) yuleDef() string {
	return fmt.Sprintf("function %s%s", f.yuleName(), yulRegistry[f].body)
}

// yuleDeps returns f's direct dependencies.
func (f YulFunction) yuleDeps() []YulFunction {
	return yulRegistry[f].deps
}

// emitYulFunctionClosure emits the transitive closure of the given
// roots' dependencies through w, each function's definition at most
// once. Emission order is deterministic: a function is emitted only after
// all of its dependencies, and roots are processed in the order given.
func emitYulFunctionClosure(w *CodeWriter, roots []YulFunction) {
	emitted := map[YulFunction]bool{}
	var emit func(id YulFunction)
	emit = func(id YulFunction) {
		if emitted[id] {
			return
		}
		emitted[id] = true
		for _, dep := range id.yuleDeps() {
			emit(dep)
		}
		w.Emitln("%s", id.yuleDef())
	}
	for _, root := range roots {
		emit(root)
	}
}
