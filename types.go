package main

import (
	"fmt"
	"strings"
)

// PrimitiveKind enumerates the primitive type tags the IR can carry.
// Only a subset of these are ever valid as in-memory or in-storage
// field types; the rest are kept here because sizing/ABI/mangling code
// must still recognize them well enough to reject or special-case them.
type PrimitiveKind int

const (
	PrimBool PrimitiveKind = iota
	PrimU8
	PrimU64
	PrimU128
	PrimAddress
	PrimSigner
	PrimNum
	PrimRange
	PrimEventStore
)

func (p PrimitiveKind) String() string {
	switch p {
	case PrimBool:
		return "bool"
	case PrimU8:
		return "u8"
	case PrimU64:
		return "u64"
	case PrimU128:
		return "u128"
	case PrimAddress:
		return "address"
	case PrimSigner:
		return "signer"
	case PrimNum:
		return "num"
	case PrimRange:
		return "range"
	case PrimEventStore:
		return "event_store"
	default:
		return fmt.Sprintf("<<unknown primitive %d>>", int(p))
	}
}

// TypeKind tags the variant held by a Type value.
type TypeKind int

const (
	KindPrimitive TypeKind = iota
	KindVector
	KindStruct
	KindTypeParameter
	KindReference
	// IR-only variants: valid inside the IR but never as a value type
	// reaching the backend's sizing/ABI/layout code.
	KindTuple
	KindFun
	KindTypeDomain
	KindError
	KindVar
)

// Type is a tagged variant mirroring the source IR's type algebra.
// Only Primitive, Vector, Struct, TypeParameter, and
// Reference are ever legal where a value type is required; the
// remaining IR-only tags exist so that invariant-violation code paths
// have something concrete to name when they panic.
type Type struct {
	Kind TypeKind

	// KindPrimitive
	Prim PrimitiveKind

	// KindVector, KindReference: element/referent type
	Elem *Type

	// KindStruct
	Struct   *StructDecl
	TypeArgs []Type

	// KindTypeParameter
	ParamIndex int

	// debug-only rendering for IR-only variants
	debugName string
}

func Primitive(p PrimitiveKind) Type { return Type{Kind: KindPrimitive, Prim: p} }

func VectorOf(elem Type) Type { return Type{Kind: KindVector, Elem: &elem} }

func ReferenceTo(referent Type) Type { return Type{Kind: KindReference, Elem: &referent} }

func TypeParameter(idx int) Type { return Type{Kind: KindTypeParameter, ParamIndex: idx} }

func StructType(decl *StructDecl, typeArgs []Type) Type {
	return Type{Kind: KindStruct, Struct: decl, TypeArgs: typeArgs}
}

// irOnlyType constructs one of the IR-only variants that must never
// reach sizing/ABI/layout code. debugName feeds the fallback rendering
// used by mangleType for fuzzed/malformed input.
func irOnlyType(kind TypeKind, debugName string) Type {
	return Type{Kind: kind, debugName: debugName}
}

func TupleType(elems []Type) Type {
	t := irOnlyType(KindTuple, "tuple")
	t.TypeArgs = elems
	return t
}

func FunType() Type        { return irOnlyType(KindFun, "fun") }
func TypeDomainType() Type { return irOnlyType(KindTypeDomain, "type_domain") }
func ErrorType() Type      { return irOnlyType(KindError, "error") }
func VarType() Type        { return irOnlyType(KindVar, "var") }

// IsVector reports whether ty is a Vector(_).
func (t Type) IsVector() bool { return t.Kind == KindVector }

// IsStruct reports whether ty is a Struct(...).
func (t Type) IsStruct() bool { return t.Kind == KindStruct }

// SkipReference strips a single layer of Reference, per the original's
// Type::skip_reference used by max_value.
func (t Type) SkipReference() Type {
	if t.Kind == KindReference {
		return *t.Elem
	}
	return t
}

// String renders a debug form of the type. This is NOT the mangled
// form (see mangle.go) — it exists for diagnostics and panics only.
func (t Type) String() string {
	switch t.Kind {
	case KindPrimitive:
		return t.Prim.String()
	case KindVector:
		return fmt.Sprintf("vector<%s>", t.Elem.String())
	case KindStruct:
		var b strings.Builder
		b.WriteString(t.Struct.Module.Name)
		b.WriteByte('.')
		b.WriteString(t.Struct.Name)
		if len(t.TypeArgs) > 0 {
			b.WriteByte('<')
			for i, a := range t.TypeArgs {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(a.String())
			}
			b.WriteByte('>')
		}
		return b.String()
	case KindTypeParameter:
		return fmt.Sprintf("#%d", t.ParamIndex)
	case KindReference:
		return "&" + t.Elem.String()
	default:
		return fmt.Sprintf("<<%s>>", t.debugName)
	}
}

// Instantiate substitutes each TypeParameter(i) in t with args[i]. Used
// when a field's declared type must be specialized against the
// enclosing struct's type arguments.
func (t Type) Instantiate(args []Type) Type {
	switch t.Kind {
	case KindTypeParameter:
		if t.ParamIndex < 0 || t.ParamIndex >= len(args) {
			panic(fmt.Sprintf("invariant violation: type parameter #%d out of range for %d args", t.ParamIndex, len(args)))
		}
		return args[t.ParamIndex]
	case KindVector:
		elem := t.Elem.Instantiate(args)
		return VectorOf(elem)
	case KindReference:
		referent := t.Elem.Instantiate(args)
		return ReferenceTo(referent)
	case KindStruct:
		if len(t.TypeArgs) == 0 {
			return t
		}
		inst := make([]Type, len(t.TypeArgs))
		for i, a := range t.TypeArgs {
			inst[i] = a.Instantiate(args)
		}
		return StructType(t.Struct, inst)
	default:
		return t
	}
}

// StructuralKey returns a canonical string for structural equality of
// type instantiations, independent of pointer identity. mangleType is
// already a pure function of structural equality, so it doubles as
// the cache/equality key.
func (t Type) StructuralKey() string {
	return mangleType(t)
}
