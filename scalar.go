package halo2curves

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Scalar represents an element of the BN254 scalar field modulo the curve
// order r. This implementation uses 4 uint64 limbs, least-significant first,
// ported from the arithmetic in halo2curves' bn256 module.
type Scalar struct {
	d [4]uint64
}

// Scalar field modulus constants (BN254 curve order r)
const (
	// Limbs of the BN254 scalar field modulus
	scalarN0 = 0x43E1F593F0000001
	scalarN1 = 0x2833E84879B97091
	scalarN2 = 0xB85045B68181585D
	scalarN3 = 0x30644E72E131A029
)

// Scalar constants
var (
	// ScalarZero represents the scalar 0
	ScalarZero = Scalar{d: [4]uint64{0, 0, 0, 0}}

	// ScalarOne represents the scalar 1
	ScalarOne = Scalar{d: [4]uint64{1, 0, 0, 0}}
)

// Modulus returns the 4 limbs of the scalar field modulus, least-significant
// limb first.
func Modulus() [4]uint64 {
	return [4]uint64{scalarN0, scalarN1, scalarN2, scalarN3}
}

// NewScalar creates a new scalar from a 32-byte big-endian array, reducing
// modulo the field modulus.
func NewScalar(b32 []byte) *Scalar {
	if len(b32) != 32 {
		panic("input must be 32 bytes")
	}

	s := &Scalar{}
	s.SetB32(b32)
	return s
}

// NewScalarFromLimbs creates a new scalar from 4 little-endian limbs. The
// limbs are taken as-is; callers wanting a canonical scalar must pass a
// value below the modulus.
func NewScalarFromLimbs(l [4]uint64) *Scalar {
	return &Scalar{d: l}
}

// SetB32 sets a scalar from a 32-byte big-endian array, reducing modulo the
// field modulus. It reports whether the input was >= the modulus before
// reduction.
func (r *Scalar) SetB32(bin []byte) (overflow bool) {
	if len(bin) != 32 {
		panic("input must be 32 bytes")
	}

	// Convert from big-endian bytes to limbs
	r.d[0] = readBE64(bin[24:32])
	r.d[1] = readBE64(bin[16:24])
	r.d[2] = readBE64(bin[8:16])
	r.d[3] = readBE64(bin[0:8])

	// The modulus sits just above 2^253, so a 256-bit value can exceed it by
	// up to five multiples; keep subtracting until the value is canonical.
	overflow = r.checkOverflow()
	for r.checkOverflow() {
		r.reduce(1)
	}

	return overflow
}

// GetB32 converts a scalar to a 32-byte big-endian array
func (r *Scalar) GetB32(bin []byte) {
	if len(bin) != 32 {
		panic("output buffer must be 32 bytes")
	}

	writeBE64(bin[0:8], r.d[3])
	writeBE64(bin[8:16], r.d[2])
	writeBE64(bin[16:24], r.d[1])
	writeBE64(bin[24:32], r.d[0])
}

// SetInt sets a scalar to an unsigned integer value
func (r *Scalar) SetInt(v uint) {
	r.d[0] = uint64(v)
	r.d[1] = 0
	r.d[2] = 0
	r.d[3] = 0
}

// Limbs returns a copy of the scalar's 4 limbs, least-significant first.
func (r *Scalar) Limbs() [4]uint64 {
	return r.d
}

// checkOverflow checks if the scalar is >= the field modulus
func (r *Scalar) checkOverflow() bool {
	if r.d[3] != scalarN3 {
		return r.d[3] > scalarN3
	}
	if r.d[2] != scalarN2 {
		return r.d[2] > scalarN2
	}
	if r.d[1] != scalarN1 {
		return r.d[1] > scalarN1
	}
	return r.d[0] >= scalarN0
}

// reduce subtracts overflow * modulus from the scalar
func (r *Scalar) reduce(overflow int) {
	if overflow < 0 || overflow > 1 {
		panic("overflow must be 0 or 1")
	}

	var borrow uint64

	r.d[0], borrow = bits.Sub64(r.d[0], uint64(overflow)*scalarN0, 0)
	r.d[1], borrow = bits.Sub64(r.d[1], uint64(overflow)*scalarN1, borrow)
	r.d[2], borrow = bits.Sub64(r.d[2], uint64(overflow)*scalarN2, borrow)
	r.d[3], _ = bits.Sub64(r.d[3], uint64(overflow)*scalarN3, borrow)
}

// IsZero returns true if the scalar is zero
func (r *Scalar) IsZero() bool {
	return r.d[0] == 0 && r.d[1] == 0 && r.d[2] == 0 && r.d[3] == 0
}

// IsOne returns true if the scalar is one
func (r *Scalar) IsOne() bool {
	return r.d[0] == 1 && r.d[1] == 0 && r.d[2] == 0 && r.d[3] == 0
}

// Equal returns true if two scalars are equal. Constant-time.
func (r *Scalar) Equal(a *Scalar) bool {
	var acc uint64
	acc |= r.d[0] ^ a.d[0]
	acc |= r.d[1] ^ a.d[1]
	acc |= r.d[2] ^ a.d[2]
	acc |= r.d[3] ^ a.d[3]
	return acc == 0
}

// BigInt returns the scalar's value as a big.Int
func (r *Scalar) BigInt() *big.Int {
	var buf [32]byte
	r.GetB32(buf[:])
	return new(big.Int).SetBytes(buf[:])
}

// SetBigInt sets a scalar from a big.Int, reducing modulo the field modulus
func (r *Scalar) SetBigInt(v *big.Int) *Scalar {
	var buf [32]byte
	t := new(big.Int).Mod(v, ModulusBig())
	t.FillBytes(buf[:])
	r.SetB32(buf[:])
	return r
}

// String returns the scalar as a big-endian hex string
func (r *Scalar) String() string {
	return fmt.Sprintf("%016x%016x%016x%016x", r.d[3], r.d[2], r.d[1], r.d[0])
}

// ModulusBig returns the field modulus as a big.Int
func ModulusBig() *big.Int {
	v, ok := new(big.Int).SetString(ScalarOrder, 16)
	if !ok {
		panic("invalid modulus constant")
	}
	return v
}
