package halo2curves

import (
	"encoding/binary"
	"io"

	sha256simd "github.com/minio/sha256-simd"
)

// Input generation for the measurement harness and tests. The harness wants
// two kinds of inputs: uniformly random 4-limb values, and reproducible
// streams that make benchmark runs comparable across machines.

// RandomLimbs reads 32 bytes from rd and returns them as 4 little-endian
// limbs. The value is uniform over [0, 2^256) and not necessarily canonical.
func RandomLimbs(rd io.Reader) ([4]uint64, error) {
	var buf [32]byte
	if _, err := io.ReadFull(rd, buf[:]); err != nil {
		return [4]uint64{}, err
	}

	var l [4]uint64
	l[0] = readLE64(buf[0:8])
	l[1] = readLE64(buf[8:16])
	l[2] = readLE64(buf[16:24])
	l[3] = readLE64(buf[24:32])
	return l, nil
}

// VectorStream expands a seed into a reproducible stream of 4-limb values
// using a SHA-256 counter chain.
type VectorStream struct {
	seed [32]byte
	ctr  uint64
}

// NewVectorStream creates a stream seeded from an arbitrary byte string.
func NewVectorStream(seed []byte) *VectorStream {
	return &VectorStream{seed: sha256simd.Sum256(seed)}
}

// Next returns the next 4-limb value in the stream. The value is uniform
// over [0, 2^256) and not necessarily canonical.
func (vs *VectorStream) Next() [4]uint64 {
	h := sha256simd.New()
	h.Write(vs.seed[:])

	var ctr [8]byte
	binary.BigEndian.PutUint64(ctr[:], vs.ctr)
	h.Write(ctr[:])
	vs.ctr++

	var buf [32]byte
	h.Sum(buf[:0])

	var l [4]uint64
	l[0] = readLE64(buf[0:8])
	l[1] = readLE64(buf[8:16])
	l[2] = readLE64(buf[16:24])
	l[3] = readLE64(buf[24:32])
	return l
}

// NextCanonical returns the next value that falls below the field modulus.
// The top two bits are cleared before the range check, which makes the
// rejection loop exit quickly (the modulus sits just above 2^253).
func (vs *VectorStream) NextCanonical() [4]uint64 {
	for {
		l := vs.Next()
		l[3] &= 0x3FFFFFFFFFFFFFFF

		s := Scalar{d: l}
		if !s.checkOverflow() {
			return l
		}
	}
}
