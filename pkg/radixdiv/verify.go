package radixdiv

import (
	"fmt"
	"math/big"

	"lukechampine.com/uint128"

	"radixdiv/internal/core"
	"radixdiv/internal/util"
)

// Verify cross-checks every table entry against arbitrary-precision
// division on the boundary dividends where each kernel could go wrong:
// zero, the divisor's own neighborhood, the 64-bit limb boundary, the
// fast-path threshold and the top of the 128-bit range. A failure
// means a defect in classification or in a kernel; it is returned as
// an error with both results.
//
// With verbose set, each radix logs its tier and sample count through
// the shared logger.
func Verify(verbose bool) error {
	for radix := uint64(core.MinRadix); radix <= core.MaxRadix; radix++ {
		rec := table[radix]
		samples := boundarySamples(rec)
		for _, n := range samples {
			if err := check(rec, n); err != nil {
				return err
			}
		}
		util.Log(verbose, "radix %d: %s tier ok (%d boundary dividends)",
			radix, rec.Tier(), len(samples))
	}
	return nil
}

// check validates the division identity q*divisor + r == n with
// 0 <= r < divisor against a math/big oracle.
func check(rec core.Record, n uint128.Uint128) error {
	q, r := rec.DivRem(n)
	d := rec.Divisor()
	wantQ, wantR := new(big.Int).QuoRem(n.Big(), d.Big(), new(big.Int))
	if q != uint128.FromBig(wantQ) || uint128.From64(r) != uint128.FromBig(wantR) {
		return fmt.Errorf("radix %d (%s): DivRem(%v) = (%v, %d), want (%v, %v)",
			rec.Radix(), rec.Tier(), n, q, r, wantQ, wantR)
	}
	return nil
}

var maxDividend = uint128.Max.Big()

// boundarySamples returns the dividends worth checking for a record.
func boundarySamples(rec core.Record) []uint128.Uint128 {
	d := rec.Divisor()
	samples := []uint128.Uint128{
		uint128.Zero,
		uint128.From64(1),
		d.Sub64(1),
		d,
		d.Add64(1),
		uint128.From64(^uint64(0)),
		uint128.Uint128{Lo: 0, Hi: 1},
		uint128.Max,
	}
	// d^2 neighborhood, built in big.Int: for radices 2, 4 and 16 the
	// divisor is exactly 2^64, so d^2 and d^2+1 exceed the dividend
	// range (d^2-1 is then uint128.Max and stays in).
	sq := new(big.Int).Mul(d.Big(), d.Big())
	for _, delta := range []int64{-1, 0, 1} {
		n := new(big.Int).Add(sq, big.NewInt(delta))
		if n.Cmp(maxDividend) <= 0 {
			samples = append(samples, uint128.FromBig(n))
		}
	}
	if f, ok := rec.(*core.FastRecord); ok {
		threshold := uint128.From64(1).Lsh(64 + f.FastShift())
		samples = append(samples, threshold.Sub64(1), threshold, threshold.Add64(1))
	}
	return samples
}
