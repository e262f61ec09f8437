package main

import "regexp"

// placeholderPattern matches ${NAME} tokens where NAME is uppercase
// letters, digits, and underscores only.
var placeholderPattern = regexp.MustCompile(`\$\{([A-Z0-9_]+)\}`)

// placeholderTable is the immutable mapping from uppercase tokens to
// their literal decimal/hex values. Every memory-layout offset
// referenced anywhere in the runtime library bodies (yul_*.go) must
// have an entry here, and the reserved-prefix arithmetic below is the
// textual proof that the offsets are mutually consistent.
var placeholderTable = map[string]string{
	// Numerical constants
	"MAX_U8":     "0xff",
	"MAX_U64":    "0xffffffffffffffff",
	"MAX_U128":   "0xffffffffffffffffffffffffffffffff",
	"MAX_U256":   "0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
	"ADDRESS_U160": "0xffffffffffffffffffffffffffffffffffffffff",

	// Reserved memory map
	"MEM_SIZE_LOC": "0",
	"SCRATCH1_LOC": "32",
	"SCRATCH2_LOC": "64",

	"STORAGE_GROUP_COUNTER_LOC": "96",
	"LINKED_STORAGE_COUNTER_LOC": "128",
	"USED_MEM":                   "160",

	// Storage groups / categories — stable on-chain identities
	"LINEAR_STORAGE_GROUP":          "0",
	"WORD_AND_STORAGE_GROUP_LENGTH": "36",
	"RESOURCE_STORAGE_CATEGORY":     "0",
	"LINKED_STORAGE_CATEGORY":       "1",
	"RESOURCE_EXISTS_FLAG_SIZE":     "32",

	// Abort codes
	"ARITHMETIC_ERROR": "0x1",
}

// substitutePlaceholders expands every ${NAME} occurrence in s using
// placeholderTable. It returns (original, false) when no known
// placeholder was found in s — the "no rewrite needed" signal callers
// use to skip re-emitting unchanged text — and (expanded, true)
// otherwise. Unknown
// placeholders (not present in the table) are passed through
// literally so the downstream compiler can flag them.
//
// The substitution is a single left-to-right pass: FindAllSubmatchIndex
// already returns non-overlapping, left-to-right matches, and since no
// table value itself contains "${", re-scanning the replaced text is
// unnecessary — substitution is idempotent on already-substituted text.
func substitutePlaceholders(s string) (string, bool) {
	matches := placeholderPattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s, false
	}

	changed := false
	var out []byte
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		nameStart, nameEnd := m[2], m[3]
		name := s[nameStart:nameEnd]
		out = append(out, s[last:start]...)
		if repl, ok := placeholderTable[name]; ok {
			out = append(out, repl...)
			changed = true
		} else {
			out = append(out, s[start:end]...)
		}
		last = end
	}
	out = append(out, s[last:]...)

	if !changed {
		return s, false
	}
	return string(out), true
}
