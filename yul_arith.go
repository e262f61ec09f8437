package main

import "fmt"

// arithYulDefs declares checked arithmetic: per-width overflow-checked
// add/mul for u8/u64/u128/u256, width-agnostic sub/div/mod/shr,
// per-width shl (whose overflow check depends on the operand width),
// and per-width casts.
func arithYulDefs() []yulFuncEntry {
	out := []yulFuncEntry{
		{
			id:   FnAddU8,
			name: "AddU8",
			body: `(x, y) -> sum {
  sum := add(x, y)
  if gt(sum, ${MAX_U8}) { $Abort(${ARITHMETIC_ERROR}) }
}`,
			deps: []YulFunction{FnAbort},
		},
		{
			id:   FnMulU8,
			name: "MulU8",
			body: `(x, y) -> product {
  product := mul(x, y)
  if gt(product, ${MAX_U8}) { $Abort(${ARITHMETIC_ERROR}) }
}`,
			deps: []YulFunction{FnAbort},
		},
		{
			id:   FnAddU64,
			name: "AddU64",
			body: `(x, y) -> sum {
  sum := add(x, y)
  if gt(sum, ${MAX_U64}) { $Abort(${ARITHMETIC_ERROR}) }
}`,
			deps: []YulFunction{FnAbort},
		},
		{
			id:   FnMulU64,
			name: "MulU64",
			body: `(x, y) -> product {
  product := mul(x, y)
  if gt(product, ${MAX_U64}) { $Abort(${ARITHMETIC_ERROR}) }
}`,
			deps: []YulFunction{FnAbort},
		},
		{
			id:   FnAddU128,
			name: "AddU128",
			body: `(x, y) -> sum {
  sum := add(x, y)
  if gt(sum, ${MAX_U128}) { $Abort(${ARITHMETIC_ERROR}) }
}`,
			deps: []YulFunction{FnAbort},
		},
		{
			id:   FnMulU128,
			name: "MulU128",
			body: `(x, y) -> product {
  product := mul(x, y)
  if gt(product, ${MAX_U128}) { $Abort(${ARITHMETIC_ERROR}) }
}`,
			deps: []YulFunction{FnAbort},
		},
		{
			id:   FnAddU256,
			name: "AddU256",
			body: `(x, y) -> sum {
  sum := add(x, y)
  if lt(sum, x) { $Abort(${ARITHMETIC_ERROR}) }
}`,
			deps: []YulFunction{FnAbort},
		},
		{
			id:   FnMulU256,
			name: "MulU256",
			body: `(x, y) -> product {
  product := mul(x, y)
  if and(iszero(iszero(x)), iszero(eq(div(product, x), y))) { $Abort(${ARITHMETIC_ERROR}) }
}`,
			deps: []YulFunction{FnAbort},
		},
		{
			id:   FnSub,
			name: "Sub",
			body: `(x, y) -> diff {
  if lt(x, y) { $Abort(${ARITHMETIC_ERROR}) }
  diff := sub(x, y)
}`,
			deps: []YulFunction{FnAbort},
		},
		{
			id:   FnDiv,
			name: "Div",
			body: `(x, y) -> quotient {
  if iszero(y) { $Abort(${ARITHMETIC_ERROR}) }
  quotient := div(x, y)
}`,
			deps: []YulFunction{FnAbort},
		},
		{
			id:   FnMod,
			name: "Mod",
			body: `(x, y) -> remainder {
  if iszero(y) { $Abort(${ARITHMETIC_ERROR}) }
  remainder := mod(x, y)
}`,
			deps: []YulFunction{FnAbort},
		},
		{
			id:   FnShr,
			name: "Shr",
			body: `(x, y) -> result {
  result := shr(y, x)
}`,
		},
	}
	out = append(out, shlYulDefs()...)
	out = append(out, castYulDefs()...)
	return out
}

func shlYulDefs() []yulFuncEntry {
	type width struct {
		id      YulFunction
		suffix  string
		maxName string
	}
	widths := []width{
		{FnShlU8, "U8", "${MAX_U8}"},
		{FnShlU64, "U64", "${MAX_U64}"},
		{FnShlU128, "U128", "${MAX_U128}"},
	}
	var out []yulFuncEntry
	for _, w := range widths {
		out = append(out, yulFuncEntry{
			id:   w.id,
			name: "Shl" + w.suffix,
			body: fmt.Sprintf(`(x, y) -> result {
  result := shl(y, x)
  if gt(result, %s) { $Abort(${ARITHMETIC_ERROR}) }
}`, w.maxName),
			deps: []YulFunction{FnAbort},
		})
	}
	out = append(out, yulFuncEntry{
		id:   FnShlU256,
		name: "ShlU256",
		body: `(x, y) -> result {
  result := shl(y, x)
  if and(iszero(iszero(x)), iszero(eq(shr(y, result), x))) { $Abort(${ARITHMETIC_ERROR}) }
}`,
		deps: []YulFunction{FnAbort},
	})
	return out
}

// castYulDefs declares narrowing casts: CastU8/CastU64/CastU128 each
// abort if the source value exceeds the destination width's maximum.
// CastU256 is not a narrowing cast but a widening compose: it builds a
// 256-bit value from two 128-bit halves, aborting if either half
// exceeds MAX_U128.
func castYulDefs() []yulFuncEntry {
	type width struct {
		id      YulFunction
		suffix  string
		maxName string
	}
	widths := []width{
		{FnCastU8, "U8", "${MAX_U8}"},
		{FnCastU64, "U64", "${MAX_U64}"},
		{FnCastU128, "U128", "${MAX_U128}"},
	}
	var out []yulFuncEntry
	for _, w := range widths {
		out = append(out, yulFuncEntry{
			id:   w.id,
			name: "Cast" + w.suffix,
			body: fmt.Sprintf(`(x) -> result {
  if gt(x, %s) { $Abort(${ARITHMETIC_ERROR}) }
  result := x
}`, w.maxName),
			deps: []YulFunction{FnAbort},
		})
	}
	out = append(out, yulFuncEntry{
		id:   FnCastU256,
		name: "CastU256",
		body: `(hi, lo) -> result {
  if gt(hi, ${MAX_U128}) { $Abort(${ARITHMETIC_ERROR}) }
  if gt(lo, ${MAX_U128}) { $Abort(${ARITHMETIC_ERROR}) }
  result := add(shl(128, hi), lo)
}`,
		deps: []YulFunction{FnAbort},
	})
	return out
}
