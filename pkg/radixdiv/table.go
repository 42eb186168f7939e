// Package radixdiv divides 128-bit unsigned integers by powers of a
// fixed radix using precomputed reciprocal constants. For every radix
// in [2,36] it derives, once at init, the largest radix power usable
// as a single division step and the multiply-and-shift constants for
// it; DivRem then replaces the 128-bit division with (at worst) one
// high multiply and a shift.
//
// The table is immutable after init and safe for concurrent use.
package radixdiv

import (
	"fmt"

	"lukechampine.com/uint128"

	"radixdiv/internal/core"
)

var table [core.MaxRadix + 1]core.Record

func init() {
	for radix := uint64(core.MinRadix); radix <= core.MaxRadix; radix++ {
		rec, err := core.Classify(radix)
		if err != nil {
			panic(err) // unreachable: radix is in range by construction
		}
		table[radix] = rec
	}
}

// Lookup returns the derived record for radix, or an error if radix is
// outside [2,36].
func Lookup(radix uint64) (core.Record, error) {
	if radix < core.MinRadix || radix > core.MaxRadix {
		return nil, fmt.Errorf("radix %d out of range [%d, %d]", radix, core.MinRadix, core.MaxRadix)
	}
	return table[radix], nil
}

// DivRem returns floor(n / radix^Digits(radix)) and the corresponding
// remainder. The remainder always fits 64 bits.
func DivRem(n uint128.Uint128, radix uint64) (q uint128.Uint128, r uint64, err error) {
	rec, err := Lookup(radix)
	if err != nil {
		return uint128.Zero, 0, err
	}
	q, r = rec.DivRem(n)
	return q, r, nil
}

// Digits returns how many radix digits one division step consumes:
// the exponent of the radix power DivRem divides by.
func Digits(radix uint64) (uint, error) {
	rec, err := Lookup(radix)
	if err != nil {
		return 0, err
	}
	return rec.Digits(), nil
}
