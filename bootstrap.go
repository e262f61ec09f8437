package main

// emitBootstrap writes the fixed prologue every emitted contract
// needs before any user code runs: the bump allocator's free-memory
// pointer starts just past the reserved memory map, and the storage
// and linked-storage counters start at zero.
func emitBootstrap(w *CodeWriter) {
	w.Emitln("mstore(${MEM_SIZE_LOC}, ${USED_MEM})")
	w.Emitln("mstore(${STORAGE_GROUP_COUNTER_LOC}, 0)")
	w.Emitln("mstore(${LINKED_STORAGE_COUNTER_LOC}, 0)")
}
