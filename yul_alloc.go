package main

// allocYulDefs declares the memory allocator: a single well-known bump
// counter at MEM_SIZE_LOC that Malloc advances by the word-rounded
// request size, returning the pre-bump offset. Free is a permanent
// no-op: this backend never reclaims memory.
func allocYulDefs() []yulFuncEntry {
	return []yulFuncEntry{
		{
			id:   FnMalloc,
			name: "Malloc",
			body: `(size) -> offs {
  offs := mload(${MEM_SIZE_LOC})
  mstore(${MEM_SIZE_LOC}, add(offs, shl(5, shr(5, add(size, 31)))))
}`,
		},
		{
			id:   FnFree,
			name: "Free",
			body: `(offs, size) {
}`,
		},
	}
}
