package halo2curves

import "math/bits"

// Modular subtraction over the BN254 scalar field, in two variants sharing
// the same borrow chain. Both operate on raw 4-limb little-endian values; a
// value need not be canonical (below the modulus), in which case the result
// carries the wrapped 256-bit subtraction semantics with a single conditional
// modulus add-back.
//
// The limb primitives are bits.Sub64 and bits.Add64, which the compiler
// lowers to branch-free subtract-with-borrow / add-with-carry sequences.

// SubBranching returns (x - y) mod the field modulus for canonical inputs.
//
// The add-back is guarded by a runtime branch on the final borrow, so
// execution time depends on the input values. It is kept as a correctness
// and performance baseline; use Sub wherever the inputs must not be
// inferable from timing.
//
// Precondition: a single add-back fully reduces the result only when both
// inputs are canonical, since the true difference then underflows by at most
// one modulus.
func SubBranching(x, y *[4]uint64) [4]uint64 {
	var d [4]uint64
	var borrow uint64

	d[0], borrow = bits.Sub64(x[0], y[0], 0)
	d[1], borrow = bits.Sub64(x[1], y[1], borrow)
	d[2], borrow = bits.Sub64(x[2], y[2], borrow)
	d[3], borrow = bits.Sub64(x[3], y[3], borrow)

	// Underflow on the final limb: add the modulus back. The final carry
	// always cancels against the borrow for canonical inputs.
	if borrow != 0 {
		var carry uint64
		d[0], carry = bits.Add64(d[0], scalarN0, 0)
		d[1], carry = bits.Add64(d[1], scalarN1, carry)
		d[2], carry = bits.Add64(d[2], scalarN2, carry)
		d[3], _ = bits.Add64(d[3], scalarN3, carry)
	}

	return d
}

// Sub returns (x - y) mod the field modulus for canonical inputs.
// Constant-time: the final borrow is expanded into an all-ones or all-zero
// mask and ANDed into each modulus limb, so the add-back executes
// unconditionally and the instruction sequence is independent of the input
// values. Returns the same limbs as SubBranching for every input.
func Sub(x, y *[4]uint64) [4]uint64 {
	var d [4]uint64
	var borrow, carry uint64

	d[0], borrow = bits.Sub64(x[0], y[0], 0)
	d[1], borrow = bits.Sub64(x[1], y[1], borrow)
	d[2], borrow = bits.Sub64(x[2], y[2], borrow)
	d[3], borrow = bits.Sub64(x[3], y[3], borrow)

	// mask is all ones if the subtraction underflowed, otherwise all zeros,
	// selecting between adding the modulus and adding zero.
	mask := -borrow

	d[0], carry = bits.Add64(d[0], scalarN0&mask, 0)
	d[1], carry = bits.Add64(d[1], scalarN1&mask, carry)
	d[2], carry = bits.Add64(d[2], scalarN2&mask, carry)
	d[3], _ = bits.Add64(d[3], scalarN3&mask, carry)

	return d
}

// Sub sets r = a - b mod the field modulus using the constant-time
// subtractor.
func (r *Scalar) Sub(a, b *Scalar) *Scalar {
	r.d = Sub(&a.d, &b.d)
	return r
}

// SubBranching sets r = a - b mod the field modulus using the branching
// subtractor. See the SubBranching function for the canonicity precondition
// and the timing caveat.
func (r *Scalar) SubBranching(a, b *Scalar) *Scalar {
	r.d = SubBranching(&a.d, &b.d)
	return r
}

// Neg sets r = -a mod the field modulus. Constant-time.
func (r *Scalar) Neg(a *Scalar) *Scalar {
	zero := ScalarZero
	r.d = Sub(&zero.d, &a.d)
	return r
}
