// Package halo2curves provides arithmetic over the BN254 scalar field,
// ported from the halo2curves Rust library.
package halo2curves

import (
	"encoding/binary"
)

// Constants from the Rust implementation
const (
	// ScalarOrder is the BN254 scalar field modulus r (also the order of the
	// BN254 curve group), as a big-endian hex string.
	ScalarOrder = "30644E72E131A029B85045B68181585D2833E84879B9709143E1F593F0000001"
)

// Utility functions ported from the Rust crate's helpers

// readBE64 reads a uint64 in big endian
func readBE64(p []byte) uint64 {
	return binary.BigEndian.Uint64(p)
}

// writeBE64 writes a uint64 in big endian
func writeBE64(p []byte, x uint64) {
	binary.BigEndian.PutUint64(p, x)
}

// readLE64 reads a uint64 in little endian
func readLE64(p []byte) uint64 {
	return binary.LittleEndian.Uint64(p)
}
