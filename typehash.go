package main

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// typeHash derives the 32-bit on-chain type identity embedded in
// storage base addresses: Keccak256 over the UTF-8 bytes of ty's
// mangled name, truncated to the digest's low 32 bits (its last four
// bytes, read big-endian). Keccak is used rather than a generic hash
// because it is the hash family native to the EVM this compiler
// targets — the emitted Yul itself derives storage keys with
// keccak256, so reusing the family keeps compile-time type identity
// and runtime storage-key derivation conceptually one scheme.
//
// This is a stable on-chain identity: changing the hash function, its
// input encoding, or the truncation rule changes every existing
// contract's storage addressing and must never happen silently.
func typeHash(ty Type) uint32 {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(mangleType(ty)))
	digest := h.Sum(nil)
	return binary.BigEndian.Uint32(digest[len(digest)-4:])
}
