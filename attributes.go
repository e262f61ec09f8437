package main

// Attribute tag names consumed from the IR. These mirror
// Move's #[callable]/#[create]/#[receive]/#[fallback]/#[test]
// annotations, already resolved to booleans on FunctionDecl.Attributes
// by the (out-of-scope) frontend.
const (
	attrCallable = "callable"
	attrCreate   = "create"
	attrReceive  = "receive"
	attrFallback = "fallback"
	attrTest     = "test"
)

func isCallableFun(f *FunctionDecl) bool { return f.HasAttribute(attrCallable) }
func isCreateFun(f *FunctionDecl) bool   { return f.HasAttribute(attrCreate) }
func isReceiveFun(f *FunctionDecl) bool  { return f.HasAttribute(attrReceive) }
func isFallbackFun(f *FunctionDecl) bool { return f.HasAttribute(attrFallback) }
func isTestFun(f *FunctionDecl) bool     { return f.HasAttribute(attrTest) }

// isEmittedEntrypoint reports whether f is a candidate top-level
// emitted function under non-test compilation.
func isEmittedEntrypoint(f *FunctionDecl) bool {
	return isCallableFun(f) || isCreateFun(f) || isReceiveFun(f) || isFallbackFun(f)
}
