package main

import "math/big"

// Model is the backend's read-only view of the already-parsed,
// already-type-checked source IR. Source parsing,
// type checking, and the IR transformation pipeline that produces this
// shape are out of scope for this repo; Model is the narrow interface
// at which the backend consumes their output.
type Model struct {
	modules []*ModuleDecl
}

// NewModel creates an empty Model. Frontends (or test fixtures) attach
// modules with AddModule.
func NewModel() *Model {
	return &Model{}
}

// AddModule registers a module with the model and returns it.
func (m *Model) AddModule(mod *ModuleDecl) *ModuleDecl {
	m.modules = append(m.modules, mod)
	return mod
}

// Modules returns every module known to the model, target and
// non-target alike.
func (m *Model) Modules() []*ModuleDecl {
	return m.modules
}

// TargetModules returns only the modules flagged IsTarget, in
// declaration order, skipping every module not marked as a
// compilation target.
func (m *Model) TargetModules() []*ModuleDecl {
	var out []*ModuleDecl
	for _, mod := range m.modules {
		if mod.IsTarget {
			out = append(out, mod)
		}
	}
	return out
}

// ModuleDecl is one module of the source IR.
type ModuleDecl struct {
	Address big.Int
	Name    string

	// IsTarget marks modules whose functions are candidates for
	// emission; library modules pulled in only as callees are not
	// targets themselves.
	IsTarget bool

	// IsNative marks a module whose declarations are implemented by
	// the runtime rather than by Move/IR bytecode.
	IsNative bool

	// IsEvmArithModule marks the single distinguished module housing
	// the native U256 struct.
	IsEvmArithModule bool

	Functions []*FunctionDecl
	Structs   []*StructDecl
}

// AddFunction appends and back-links a function declaration.
func (m *ModuleDecl) AddFunction(f *FunctionDecl) *FunctionDecl {
	f.Module = m
	m.Functions = append(m.Functions, f)
	return f
}

// AddStruct appends and back-links a struct declaration.
func (m *ModuleDecl) AddStruct(s *StructDecl) *StructDecl {
	s.Module = m
	m.Structs = append(m.Structs, s)
	return s
}

// FunctionDecl is one function of the source IR.
type FunctionDecl struct {
	Module *ModuleDecl
	Name   string

	// TypeParamCount is the function's generic arity; >0 on a
	// top-level entrypoint is a diagnostic, since emitted entrypoints
	// must be fully concrete.
	TypeParamCount int

	// Attributes mirrors the string/flag attribute tags consumed from
	// the IR: "callable", "create", "receive", "fallback", "test".
	Attributes map[string]bool

	// Called lists this function's direct callees, used to build the
	// transitive closure of emitted functions.
	Called []*FunctionDecl

	Params  []LocalDecl
	Locals  []LocalDecl
	Results int
}

// HasAttribute reports whether the function carries the named
// attribute tag.
func (f *FunctionDecl) HasAttribute(name string) bool {
	return f.Attributes != nil && f.Attributes[name]
}

// StructDecl is one struct of the source IR.
type StructDecl struct {
	Module   *ModuleDecl
	Name     string
	IsNative bool
	Fields   []FieldDecl
}

// FieldDecl is one field of a struct, in declaration order. A field's
// logical index is its position in this slice.
type FieldDecl struct {
	Name string
	Type Type
}

// LocalDecl is one local variable or parameter of a function; Name may
// contain '#' as the IR's disambiguation character.
type LocalDecl struct {
	Name string
	Type Type
}

// IsU256 reports whether s is the native U256 struct: its module is
// flagged as the EVM-arithmetic module AND its own declaration is
// native. Both conditions are required; neither alone is sufficient.
func IsU256(s *StructDecl) bool {
	return s != nil && s.Module != nil && s.Module.IsEvmArithModule && s.IsNative
}
