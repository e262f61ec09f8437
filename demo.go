package main

import "math/big"

// buildDemoModel constructs a minimal in-memory Model standing in for
// a real frontend's output: a single target module at address 0x1
// with one callable entrypoint and a small struct with a vector
// field. Used by main when no embedder has supplied a real Model, as
// a hello-world smoke path absent real source input.
func buildDemoModel() *Model {
	model := NewModel()

	mod := model.AddModule(&ModuleDecl{
		Address:  *big.NewInt(0x1),
		Name:     "Counter",
		IsTarget: true,
	})

	counter := mod.AddStruct(&StructDecl{
		Name: "State",
		Fields: []FieldDecl{
			{Name: "value", Type: Primitive(PrimU64)},
			{Name: "history", Type: VectorOf(Primitive(PrimU64))},
		},
	})
	_ = counter

	mod.AddFunction(&FunctionDecl{
		Name:       "increment",
		Attributes: map[string]bool{attrCallable: true},
		Params:     []LocalDecl{{Name: "by", Type: Primitive(PrimU64)}},
		Results:    1,
	})

	return model
}
