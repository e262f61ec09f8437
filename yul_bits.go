package main

// bitsYulDefs declares the big-endian bit-slicing helpers.
func bitsYulDefs() []yulFuncEntry {
	return []yulFuncEntry{
		{
			id:   FnMaskForSize,
			name: "MaskForSize",
			body: `(size) -> mask {
  mask := sub(shl(shl(size, 3), 1), 1)
}`,
		},
		{
			id:   FnExtractBytes,
			name: "ExtractBytes",
			body: `(word, start, size) -> bytes {
  switch size
  case 1 {
    bytes := byte(start, word)
  }
  default {
    let shift_bits := shl(3, sub(sub(32, start), size))
    bytes := and(shr(shift_bits, word), $MaskForSize(size))
  }
}`,
			deps: []YulFunction{FnMaskForSize},
		},
		{
			id:   FnInjectBytes,
			name: "InjectBytes",
			body: `(word, start, size, bytes) -> new_word {
  let shift_bits := shl(3, sub(sub(32, start), size))
  let neg_mask := not(shl(shift_bits, $MaskForSize(size)))
  word := and(word, neg_mask)
  new_word := or(word, shl(shift_bits, bytes))
}`,
			deps: []YulFunction{FnMaskForSize},
		},
		{
			id:   FnToWordOffs,
			name: "ToWordOffs",
			body: `(offs) -> word_offs, byte_offset {
  word_offs := shr(5, offs)
  byte_offset := and(offs, 0x1F)
}`,
		},
		{
			id:   FnOverflowBytes,
			name: "OverflowBytes",
			body: `(byte_offset, size) -> overflow_bytes {
  let available_bytes := sub(32, byte_offset)
  switch gt(size, available_bytes)
  case 0 {
    overflow_bytes := 0
  }
  default {
    overflow_bytes := sub(size, available_bytes)
  }
}`,
		},
	}
}
