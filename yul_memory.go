package main

// memoryYulDefs declares the memory byte-I/O helpers and CopyMemory.
func memoryYulDefs() []yulFuncEntry {
	return []yulFuncEntry{
		{
			id:   FnMemoryLoadBytes,
			name: "MemoryLoadBytes",
			body: `(offs, size) -> val {
  let bit_end := shl(3, sub(32, size))
  val := shr(bit_end, mload(offs))
}`,
			deps: []YulFunction{FnMaskForSize},
		},
		{
			id:   FnMemoryStoreBytes,
			name: "MemoryStoreBytes",
			body: `(offs, size, val) {
  let bit_end := shl(3, sub(32, size))
  let mask := shl(bit_end, $MaskForSize(size))
  mstore(offs, or(and(mload(offs), not(mask)), shl(bit_end, val)))
}`,
			deps: []YulFunction{FnMaskForSize},
		},
		{
			// Copies size bytes from src to dst, full words at a
			// time, merging source high bytes into destination low
			// bytes for the final partial word.
			id:   FnCopyMemory,
			name: "CopyMemory",
			body: `(src, dst, size) {
  let i := 0
  for { } lt(add(i, 32), add(size, 1)) { i := add(i, 32) } {
    mstore(add(dst, i), mload(add(src, i)))
  }
  if lt(i, size) {
    let remaining := sub(size, i)
    let mask := sub(shl(shl(remaining, 3), 1), 1)
    let shift_bits := shl(3, sub(32, remaining))
    let src_bytes := and(shr(shift_bits, mload(add(src, i))), mask)
    let dst_word := and(mload(add(dst, i)), not(shl(shift_bits, mask)))
    mstore(add(dst, i), or(dst_word, shl(shift_bits, src_bytes)))
  }
}`,
		},
	}
}
