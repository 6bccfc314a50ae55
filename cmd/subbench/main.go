// Command subbench times the BN254 scalar-field subtraction variants over
// deterministic inputs and reports the results. It mirrors the Go benchmarks
// in the bench package for use outside `go test`.
package main

import (
	"flag"
	"math/big"
	"os"
	"testing"

	fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/rs/zerolog"

	halo2curves "github.com/jonathanpwang/halo2curves"
)

var (
	sink    [4]uint64
	sinkFr  fr.Element
	sinkBig = new(big.Int)
)

func main() {
	seed := flag.String("seed", "subbench", "seed for deterministic inputs")
	flag.Parse()

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	log := zerolog.New(output).With().Timestamp().Logger()

	vs := halo2curves.NewVectorStream([]byte(*seed))
	x := vs.NextCanonical()
	y := vs.NextCanonical()

	var fx, fy fr.Element
	fx.SetBigInt(bigFromLimbs(&x))
	fy.SetBigInt(bigFromLimbs(&y))

	bx := bigFromLimbs(&x)
	by := bigFromLimbs(&y)
	modulus := halo2curves.ModulusBig()

	log.Info().
		Str("x", halo2curves.NewScalarFromLimbs(x).String()).
		Str("y", halo2curves.NewScalarFromLimbs(y).String()).
		Msg("bigint subtraction methods")

	report(log, "branching_sub", testing.Benchmark(func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink = halo2curves.SubBranching(&x, &y)
		}
	}))

	report(log, "sub", testing.Benchmark(func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink = halo2curves.Sub(&x, &y)
		}
	}))

	report(log, "gnark_crypto_sub", testing.Benchmark(func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkFr.Sub(&fx, &fy)
		}
	}))

	report(log, "big_int_sub", testing.Benchmark(func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkBig.Sub(bx, by)
			sinkBig.Mod(sinkBig, modulus)
		}
	}))
}

func report(log zerolog.Logger, name string, r testing.BenchmarkResult) {
	log.Info().
		Str("variant", name).
		Int("iterations", r.N).
		Int64("ns_per_op", r.NsPerOp()).
		Msg("measured")
}

func bigFromLimbs(l *[4]uint64) *big.Int {
	v := new(big.Int)
	for i := 3; i >= 0; i-- {
		v.Lsh(v, 64)
		v.Or(v, new(big.Int).SetUint64(l[i]))
	}
	return v
}
