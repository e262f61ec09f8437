package main

import "fmt"

// typedIOYulDefs declares the per-width load/store sextet for each of
// u8/u64/u128/u256: a pointer load that dispatches on the pointer's
// storage bit, a memory load, a storage load, and the corresponding
// three stores. The memory and storage variants call
// MemoryLoadBytes/StorageLoadBytes (or the store equivalents) at the
// type's fixed byte width. The aligned whole-word storage helpers are
// declared in yul_storage.go, not here.
func typedIOYulDefs() []yulFuncEntry {
	var out []yulFuncEntry
	for _, w := range []struct {
		suffix string
		size   int
	}{
		{"U8", 1},
		{"U64", 8},
		{"U128", 16},
		{"U256", 32},
	} {
		out = append(out, widthIOYulDefs(w.suffix, w.size)...)
	}
	return out
}

func widthIOYulDefs(suffix string, size int) []yulFuncEntry {
	loadID := map[string]YulFunction{"U8": FnLoadU8, "U64": FnLoadU64, "U128": FnLoadU128, "U256": FnLoadU256}[suffix]
	memLoadID := map[string]YulFunction{"U8": FnMemoryLoadU8, "U64": FnMemoryLoadU64, "U128": FnMemoryLoadU128, "U256": FnMemoryLoadU256}[suffix]
	storLoadID := map[string]YulFunction{"U8": FnStorageLoadU8, "U64": FnStorageLoadU64, "U128": FnStorageLoadU128, "U256": FnStorageLoadU256}[suffix]
	storeID := map[string]YulFunction{"U8": FnStoreU8, "U64": FnStoreU64, "U128": FnStoreU128, "U256": FnStoreU256}[suffix]
	memStoreID := map[string]YulFunction{"U8": FnMemoryStoreU8, "U64": FnMemoryStoreU64, "U128": FnMemoryStoreU128, "U256": FnMemoryStoreU256}[suffix]
	storStoreID := map[string]YulFunction{"U8": FnStorageStoreU8, "U64": FnStorageStoreU64, "U128": FnStorageStoreU128, "U256": FnStorageStoreU256}[suffix]

	return []yulFuncEntry{
		{
			id:   loadID,
			name: "Load" + suffix,
			body: fmt.Sprintf(`(ptr) -> val {
  switch $IsStoragePtr(ptr)
  case 0 {
    val := $MemoryLoad%s($OffsetPtr(ptr))
  }
  default {
    val := $StorageLoad%s($OffsetPtr(ptr))
  }
}`, suffix, suffix),
			deps: []YulFunction{FnIsStoragePtr, FnOffsetPtr, memLoadID, storLoadID},
		},
		{
			id:   memLoadID,
			name: "MemoryLoad" + suffix,
			body: fmt.Sprintf(`(offs) -> val {
  val := $MemoryLoadBytes(offs, %d)
}`, size),
			deps: []YulFunction{FnMemoryLoadBytes},
		},
		{
			id:   storLoadID,
			name: "StorageLoad" + suffix,
			body: fmt.Sprintf(`(offs) -> val {
  val := $StorageLoadBytes(offs, %d)
}`, size),
			deps: []YulFunction{FnStorageLoadBytes},
		},
		{
			id:   storeID,
			name: "Store" + suffix,
			body: fmt.Sprintf(`(ptr, val) {
  switch $IsStoragePtr(ptr)
  case 0 {
    $MemoryStore%s($OffsetPtr(ptr), val)
  }
  default {
    $StorageStore%s($OffsetPtr(ptr), val)
  }
}`, suffix, suffix),
			deps: []YulFunction{FnIsStoragePtr, FnOffsetPtr, memStoreID, storStoreID},
		},
		memoryStoreEntry(memStoreID, suffix, size),
		{
			id:   storStoreID,
			name: "StorageStore" + suffix,
			body: fmt.Sprintf(`(offs, val) {
  $StorageStoreBytes(offs, %d, val)
}`, size),
			deps: []YulFunction{FnStorageStoreBytes},
		},
	}
}

// memoryStoreEntry builds the MemoryStore<width> entry. U8 is
// specialized to the mstore8 opcode directly rather than going
// through MemoryStoreBytes, matching the single-byte memory store
// EVM already provides as a primitive.
func memoryStoreEntry(id YulFunction, suffix string, size int) yulFuncEntry {
	if suffix == "U8" {
		return yulFuncEntry{
			id:   id,
			name: "MemoryStore" + suffix,
			body: `(offs, val) {
  mstore8(offs, val)
}`,
		}
	}
	return yulFuncEntry{
		id:   id,
		name: "MemoryStore" + suffix,
		body: fmt.Sprintf(`(offs, val) {
  $MemoryStoreBytes(offs, %d, val)
}`, size),
		deps: []YulFunction{FnMemoryStoreBytes},
	}
}
