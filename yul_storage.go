package main

// storageYulDefs declares the storage byte-I/O, keying, and
// base-address derivation helpers.
func storageYulDefs() []yulFuncEntry {
	return []yulFuncEntry{
		{
			id:   FnStorageKey,
			name: "StorageKey",
			body: `(group, word) -> key {
  mstore(${SCRATCH1_LOC}, word)
  mstore(${SCRATCH2_LOC}, group)
  key := keccak256(${SCRATCH1_LOC}, ${WORD_AND_STORAGE_GROUP_LENGTH})
}`,
		},
		{
			id:   FnStorageLoadBytes,
			name: "StorageLoadBytes",
			body: `(offs, size) -> val {
  let word_offs, byte_offs := $ToWordOffs(offs)
  let key := $StorageKey(${LINEAR_STORAGE_GROUP}, word_offs)
  val := $ExtractBytes(sload(key), byte_offs, size)
  let overflow_bytes := $OverflowBytes(byte_offs, size)
  if not(iszero(overflow_bytes)) {
    key := $StorageKey(${LINEAR_STORAGE_GROUP}, add(word_offs, 1))
    let extra_bytes := $ExtractBytes(sload(key), 0, overflow_bytes)
    val := or(shl(shl(3, overflow_bytes), val), extra_bytes)
  }
}`,
			deps: []YulFunction{FnToWordOffs, FnStorageKey, FnExtractBytes, FnOverflowBytes},
		},
		{
			id:   FnStorageStoreBytes,
			name: "StorageStoreBytes",
			body: `(offs, size, bytes) {
  let word_offs, byte_offs := $ToWordOffs(offs)
  let key := $StorageKey(${LINEAR_STORAGE_GROUP}, word_offs)
  let overflow_bytes := $OverflowBytes(byte_offs, size)
  switch overflow_bytes
  case 0 {
    sstore(key, $InjectBytes(sload(key), byte_offs, size, bytes))
  }
  default {
    let used_bytes := sub(size, overflow_bytes)
    let higher_bytes := shr(used_bytes, bytes)
    let lower_bytes := and(bytes, $MaskForSize(overflow_bytes))
    sstore(key, $InjectBytes(sload(key), byte_offs, used_bytes, higher_bytes))
    key := $StorageKey(${LINEAR_STORAGE_GROUP}, add(word_offs, 1))
    sstore(key, $InjectBytes(sload(key), 0, overflow_bytes, lower_bytes))
  }
}`,
			deps: []YulFunction{FnToWordOffs, FnStorageKey, FnInjectBytes, FnOverflowBytes, FnMaskForSize},
		},
		{
			id:   FnMakeTypeStorageBase,
			name: "MakeTypeStorageBase",
			body: `(category, type_hash, id) -> offs {
  offs := or(shl(252, category), or(shl(220, type_hash), shl(60, id)))
}`,
		},
		{
			id:   FnNewLinkedStorageBase,
			name: "NewLinkedStorageBase",
			body: `(type_hash) -> offs {
  let handle := mload(${LINKED_STORAGE_COUNTER_LOC})
  mstore(${LINKED_STORAGE_COUNTER_LOC}, add(handle, 1))
  offs := $MakeTypeStorageBase(${LINKED_STORAGE_CATEGORY}, type_hash, handle)
}`,
			deps: []YulFunction{FnMakeTypeStorageBase},
		},
		{
			id:   FnAlignedStorageLoad,
			name: "AlignedStorageLoad",
			body: `(offs) -> val {
  let word_offs := shr(5, offs)
  val := sload($StorageKey(${LINEAR_STORAGE_GROUP}, word_offs))
}`,
			deps: []YulFunction{FnStorageKey},
		},
		{
			id:   FnAlignedStorageStore,
			name: "AlignedStorageStore",
			body: `(offs, val) {
  let word_offs := shr(5, offs)
  sstore($StorageKey(${LINEAR_STORAGE_GROUP}, word_offs), val)
}`,
			deps: []YulFunction{FnStorageKey},
		},
	}
}
