package main

import (
	"fmt"
	"strings"
)

// contractName produces "A<hex-address>_<symbolic-name>" for a
// module, with the address rendered in base-16 without a fixed width
// (leading zeros elided): address 0x00a1, name "M" -> "Aa1_M".
func contractName(mod *ModuleDecl) string {
	return fmt.Sprintf("A%s_%s", mod.Address.Text(16), mod.Name)
}

// functionName produces "<contract_name>_<fn_symbol><mangled_types>".
func functionName(fun *FunctionDecl, typeArgs []Type) string {
	return fmt.Sprintf("%s_%s%s", contractName(fun.Module), fun.Name, mangleTypes(typeArgs))
}

// structName produces "<contract_name>_<struct_symbol><mangled_types>",
// analogous to functionName.
func structName(s *StructDecl, typeArgs []Type) string {
	return fmt.Sprintf("%s_%s%s", contractName(s.Module), s.Name, mangleTypes(typeArgs))
}

// mangleTypes mangles a slice of types: "" if empty, otherwise
// "$ty1_ty2_..._tyn$" with each tyi individually mangled.
//
// The mangled form is also the pre-image hashed into storage addresses
// (see typehash.go) — this grammar is a stable on-chain identity and
// must never change shape once deployed contracts depend on it.
func mangleTypes(tys []Type) string {
	if len(tys) == 0 {
		return ""
	}
	parts := make([]string, len(tys))
	for i, ty := range tys {
		parts[i] = mangleType(ty)
	}
	return "$" + strings.Join(parts, "_") + "$"
}

// mangleType mangles a single type. Primitives produce fixed strings;
// Vector(T) produces "vec" + mangleTypes([T]); Struct produces its
// structName; unsupported (IR-only) variants produce a literal debug
// rendering since they should never appear in well-typed input but
// must survive fuzzed/malformed IR without panicking.
func mangleType(ty Type) string {
	switch ty.Kind {
	case KindPrimitive:
		switch ty.Prim {
		case PrimU8:
			return "u8"
		case PrimU64:
			return "u64"
		case PrimU128:
			return "u128"
		case PrimNum:
			return "num"
		case PrimAddress:
			return "address"
		case PrimSigner:
			return "signer"
		case PrimBool:
			return "bool"
		case PrimRange:
			return "range"
		default:
			return fmt.Sprintf("<<unsupported %s>>", ty.Prim)
		}
	case KindVector:
		return "vec" + mangleTypes([]Type{*ty.Elem})
	case KindStruct:
		return structName(ty.Struct, ty.TypeArgs)
	default:
		return fmt.Sprintf("<<unsupported %s>>", ty.String())
	}
}

// makeLocalName renders an IR local's name for use as a Yul
// identifier: '#' (the IR's disambiguation character) is replaced by
// '_', since '#' is not a legal Yul identifier character.
func makeLocalName(local LocalDecl) string {
	return strings.ReplaceAll(local.Name, "#", "_")
}

// makeResultName renders the name of the idx'th result of a function
// with the given total return count: "$result" for a single-result
// function, "$result0", "$result1", ... otherwise.
func makeResultName(returnCount, idx int) string {
	if returnCount == 1 {
		return "$result"
	}
	return fmt.Sprintf("$result%d", idx)
}
