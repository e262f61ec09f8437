package main

import "fmt"

// typeSize returns the byte width used for in-memory layout.
// Num/Range/EventStore and every
// IR-only variant are invariant violations: they must never reach
// sizing code in well-typed IR.
func typeSize(ty Type) int {
	switch ty.Kind {
	case KindPrimitive:
		switch ty.Prim {
		case PrimBool, PrimU8:
			return 1
		case PrimU64:
			return 8
		case PrimU128:
			return 16
		case PrimAddress, PrimSigner:
			return 20
		default:
			panic(fmt.Sprintf("invariant violation: unexpected field type %s", ty))
		}
	case KindStruct, KindVector:
		return 32
	default:
		panic(fmt.Sprintf("invariant violation: unexpected field type %s", ty))
	}
}

// typeAllocatesMemory is true for any Vector and any non-U256 Struct;
// false otherwise. This predicate drives both the
// struct layout planner's pointer-prefix classification (layout.go)
// and the runtime pointer emitter's choice of load/store path.
func typeAllocatesMemory(ty Type) bool {
	switch ty.Kind {
	case KindVector:
		return true
	case KindStruct:
		return !IsU256(ty.Struct)
	default:
		return false
	}
}

// maxValue returns the placeholder token for the maximum value
// representable in typeSize(ty.SkipReference()) bytes.
func maxValue(ty Type) string {
	size := typeSize(ty.SkipReference())
	switch size {
	case 1:
		return "${MAX_U8}"
	case 8:
		return "${MAX_U64}"
	case 16:
		return "${MAX_U128}"
	case 20:
		return "${ADDRESS_U160}"
	case 32:
		return "${MAX_U256}"
	default:
		if typeAllocatesMemory(ty) {
			// A type allocates a pointer which uses 256 bits, even if
			// some future variant's typeSize were to diverge from 32.
			return "${MAX_U256}"
		}
		panic(fmt.Sprintf("invariant violation: unexpected type size %d for %s", size, ty))
	}
}

// loadBuiltinFun, storeBuiltinFun, memoryLoadBuiltinFun,
// memoryStoreBuiltinFun, storageLoadBuiltinFun, storageStoreBuiltinFun
// select the width-specialized runtime helper for a given value type,
// dispatching purely on typeSize.

func loadBuiltinFun(ty Type) YulFunction {
	switch typeSize(ty.SkipReference()) {
	case 1:
		return FnLoadU8
	case 8:
		return FnLoadU64
	case 16:
		return FnLoadU128
	case 32:
		return FnLoadU256
	default:
		panic("invariant violation: unexpected type size")
	}
}

func storeBuiltinFun(ty Type) YulFunction {
	switch typeSize(ty.SkipReference()) {
	case 1:
		return FnStoreU8
	case 8:
		return FnStoreU64
	case 16:
		return FnStoreU128
	case 32:
		return FnStoreU256
	default:
		panic("invariant violation: unexpected type size")
	}
}

func memoryLoadBuiltinFun(ty Type) YulFunction {
	switch typeSize(ty.SkipReference()) {
	case 1:
		return FnMemoryLoadU8
	case 8:
		return FnMemoryLoadU64
	case 16:
		return FnMemoryLoadU128
	case 32:
		return FnMemoryLoadU256
	default:
		panic("invariant violation: unexpected type size")
	}
}

func memoryStoreBuiltinFun(ty Type) YulFunction {
	switch typeSize(ty.SkipReference()) {
	case 1:
		return FnMemoryStoreU8
	case 8:
		return FnMemoryStoreU64
	case 16:
		return FnMemoryStoreU128
	case 32:
		return FnMemoryStoreU256
	default:
		panic("invariant violation: unexpected type size")
	}
}

func storageLoadBuiltinFun(ty Type) YulFunction {
	switch typeSize(ty.SkipReference()) {
	case 1:
		return FnStorageLoadU8
	case 8:
		return FnStorageLoadU64
	case 16:
		return FnStorageLoadU128
	case 32:
		return FnStorageLoadU256
	default:
		panic("invariant violation: unexpected type size")
	}
}

func storageStoreBuiltinFun(ty Type) YulFunction {
	switch typeSize(ty.SkipReference()) {
	case 1:
		return FnStorageStoreU8
	case 8:
		return FnStorageStoreU64
	case 16:
		return FnStorageStoreU128
	case 32:
		return FnStorageStoreU256
	default:
		panic("invariant violation: unexpected type size")
	}
}

// --- ABI head size rules ---

// abiIsStaticType reports whether every transitively reachable field
// type of ty is static: primitives (excluding Num/Range/EventStore) or
// the native U256 struct are static; vectors are always dynamic;
// tuples are static iff all elements are static; an ordinary struct is
// static iff all of its field types are static.
//
// visited guards against cyclic struct definitions: this repo detects
// the cycle (by mangled struct identity) and panics with an explicit
// invariant violation instead of looping forever.
func abiIsStaticType(ty Type) bool {
	return abiIsStaticTypeVisited(ty, map[string]bool{})
}

func abiIsStaticTypeVisited(ty Type, visited map[string]bool) bool {
	switch ty.Kind {
	case KindPrimitive:
		switch ty.Prim {
		case PrimBool, PrimU8, PrimU64, PrimU128, PrimAddress, PrimSigner:
			return true
		default:
			panic(fmt.Sprintf("invariant violation: unexpected field type %s", ty))
		}
	case KindVector:
		return false
	case KindTuple:
		for _, elem := range ty.TypeArgs {
			if !abiIsStaticTypeVisited(elem, visited) {
				return false
			}
		}
		return true
	case KindStruct:
		if IsU256(ty.Struct) {
			return true
		}
		// visited tracks the current recursion path (ancestors), not
		// every struct ever seen: two sibling fields of the same
		// struct type are not a cycle, only a repeated visit along the
		// same path is.
		key := ty.StructuralKey()
		if visited[key] {
			panic(fmt.Sprintf("invariant violation: cyclic struct type at %s", ty))
		}
		visited[key] = true
		defer delete(visited, key)
		for _, f := range instantiatedFieldTypes(ty) {
			if !abiIsStaticTypeVisited(f, visited) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("invariant violation: unexpected field type %s", ty))
	}
}

// instantiatedFieldTypes returns a struct instantiation's field types,
// each specialized against ty.TypeArgs.
func instantiatedFieldTypes(ty Type) []Type {
	fields := ty.Struct.Fields
	out := make([]Type, len(fields))
	for i, f := range fields {
		out[i] = f.Type.Instantiate(ty.TypeArgs)
	}
	return out
}

// abiTypeHeadSizesSum sums abiTypeHeadSize over tys.
func abiTypeHeadSizesSum(tys []Type, padded bool) int {
	sum := 0
	for _, ty := range tys {
		sum += abiTypeHeadSize(ty, padded)
	}
	return sum
}

// abiTypeHeadSizesVec lifts abiTypeHeadSize over tys, pairing each type
// with its computed size.
type typeHeadSize struct {
	Type Type
	Size int
}

func abiTypeHeadSizesVec(tys []Type, padded bool) []typeHeadSize {
	out := make([]typeHeadSize, len(tys))
	for i, ty := range tys {
		out[i] = typeHeadSize{Type: ty, Size: abiTypeHeadSize(ty, padded)}
	}
	return out
}

// abiTypeHeadSize computes the ABI head size of ty. Dynamic types (any type failing abiIsStaticType) always occupy 32
// bytes of head, padded or not — the payload lives in the tail.
func abiTypeHeadSize(ty Type, padded bool) int {
	if !abiIsStaticType(ty) {
		return 32
	}
	switch ty.Kind {
	case KindPrimitive:
		switch ty.Prim {
		case PrimBool, PrimU8:
			if padded {
				return 32
			}
			return 1
		case PrimU64:
			if padded {
				return 32
			}
			return 8
		case PrimU128:
			if padded {
				return 32
			}
			return 16
		case PrimAddress, PrimSigner:
			if padded {
				return 32
			}
			return 20
		default:
			panic(fmt.Sprintf("invariant violation: unexpected field type %s", ty))
		}
	case KindTuple:
		return abiTypeHeadSizesSum(ty.TypeArgs, padded)
	case KindStruct:
		if IsU256(ty.Struct) {
			return 32
		}
		return abiTypeHeadSizesSum(instantiatedFieldTypes(ty), padded)
	default:
		panic(fmt.Sprintf("invariant violation: unexpected field type %s", ty))
	}
}
