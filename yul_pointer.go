package main

// pointerYulDefs declares the pointer-word operations that multiplex
// memory vs. storage addressing into a single machine word.
func pointerYulDefs() []yulFuncEntry {
	return []yulFuncEntry{
		{
			id:   FnMakePtr,
			name: "MakePtr",
			body: `(is_storage, offs) -> ptr {
  ptr := or(is_storage, shl(1, offs))
}`,
		},
		{
			id:   FnIsStoragePtr,
			name: "IsStoragePtr",
			body: `(ptr) -> b {
  b := and(ptr, 0x1)
}`,
		},
		{
			id:   FnOffsetPtr,
			name: "OffsetPtr",
			body: `(ptr) -> offs {
  offs := shr(1, ptr)
}`,
		},
		{
			id:   FnIndexPtr,
			name: "IndexPtr",
			body: `(ptr, offs) -> new_ptr {
  new_ptr := $MakePtr($IsStoragePtr(ptr), add($OffsetPtr(ptr), offs))
}`,
			deps: []YulFunction{FnMakePtr, FnIsStoragePtr, FnOffsetPtr},
		},
	}
}
