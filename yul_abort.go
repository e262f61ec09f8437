package main

// abortYulDefs declares the abort family: Abort reverts with an
// explicit code, AbortBuiltin signals an unrecoverable builtin
// failure with a distinguished sentinel code, and NotImplemented
// marks control paths that must never execute.
func abortYulDefs() []yulFuncEntry {
	return []yulFuncEntry{
		{
			id:   FnAbort,
			name: "Abort",
			body: `(code) {
  mstore(0, code)
  revert(24, 8)
}`,
		},
		{
			id:   FnAbortBuiltin,
			name: "AbortBuiltin",
			body: `() {
  $Abort(sub(0, 1))
}`,
			deps: []YulFunction{FnAbort},
		},
		{
			id:   FnNotImplemented,
			name: "NotImplemented",
			body: `() {
  $AbortBuiltin()
}`,
			deps: []YulFunction{FnAbortBuiltin},
		},
	}
}
