package main

// relationalYulDefs declares relational, logical, and bitwise
// operators. These are direct EVM opcode wrappers with no overflow
// behavior of their own — width-correctness is the caller's
// responsibility, enforced upstream by typeSize dispatch.
func relationalYulDefs() []yulFuncEntry {
	return []yulFuncEntry{
		{
			id:   FnGt,
			name: "Gt",
			body: `(x, y) -> result {
  result := gt(x, y)
}`,
		},
		{
			id:   FnLt,
			name: "Lt",
			body: `(x, y) -> result {
  result := lt(x, y)
}`,
		},
		{
			id:   FnGtEq,
			name: "GtEq",
			body: `(x, y) -> result {
  result := iszero(lt(x, y))
}`,
		},
		{
			id:   FnLtEq,
			name: "LtEq",
			body: `(x, y) -> result {
  result := iszero(gt(x, y))
}`,
		},
		{
			id:   FnEq,
			name: "Eq",
			body: `(x, y) -> result {
  result := eq(x, y)
}`,
		},
		{
			id:   FnNeq,
			name: "Neq",
			body: `(x, y) -> result {
  result := iszero(eq(x, y))
}`,
		},
		{
			id:   FnLogicalAnd,
			name: "LogicalAnd",
			body: `(x, y) -> result {
  result := and(x, y)
}`,
		},
		{
			id:   FnLogicalOr,
			name: "LogicalOr",
			body: `(x, y) -> result {
  result := or(x, y)
}`,
		},
		{
			id:   FnLogicalNot,
			name: "LogicalNot",
			body: `(x) -> result {
  result := iszero(x)
}`,
		},
		{
			id:   FnBitAnd,
			name: "BitAnd",
			body: `(x, y) -> result {
  result := and(x, y)
}`,
		},
		{
			id:   FnBitOr,
			name: "BitOr",
			body: `(x, y) -> result {
  result := or(x, y)
}`,
		},
		{
			id:   FnBitXor,
			name: "BitXor",
			body: `(x, y) -> result {
  result := xor(x, y)
}`,
		},
		{
			id:   FnBitNot,
			name: "BitNot",
			body: `(x) -> result {
  result := not(x)
}`,
		},
	}
}
