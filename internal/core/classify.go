package core

import (
	"fmt"
	"math/bits"

	"lukechampine.com/uint128"
)

// Classify derives the division constants for one radix and assigns it
// to its algorithm tier:
//
//  1. Exact powers of two divide with shift and mask alone.
//  2. Otherwise the largest safe radix power becomes the divisor and a
//     reciprocal multiplier is chosen for it. A multiplier that
//     overflows 128 bits routes to the Slow tier (this is a normal
//     outcome of the selection, not an error). A nonzero trailing-zero
//     shift prefers Fast over Moderate: it buys an early exit through
//     a narrow division for small dividends.
//
// Returns an error for radix outside [MinRadix, MaxRadix].
func Classify(radix uint64) (Record, error) {
	if radix < MinRadix || radix > MaxRadix {
		return nil, fmt.Errorf("radix %d out of range [%d, %d]", radix, MinRadix, MaxRadix)
	}

	if radix&(radix-1) == 0 {
		log2 := uint(bits.TrailingZeros64(radix))
		digits := 64 / log2
		shift := digits * log2
		var mask uint64
		if shift == 64 {
			mask = ^uint64(0)
		} else {
			mask = 1<<shift - 1
		}
		return &PowerOfTwoRecord{radix: radix, digits: digits, shift: shift, mask: mask}, nil
	}

	digits := FindPower(radix)
	divisor := Pow64(radix, digits)
	fastShift := FastShift(divisor)
	m, postShift, _ := ChooseMultiplier(divisor, Width, false)

	if m.BitLen() > Width {
		return &SlowRecord{
			radix:        radix,
			digits:       digits,
			divisor:      divisor,
			leadingZeros: uint(bits.LeadingZeros64(divisor)),
		}, nil
	}
	multiplier := uint128.FromBig(m)
	if fastShift != 0 {
		return &FastRecord{
			radix:      radix,
			digits:     digits,
			divisor:    divisor,
			fastShift:  fastShift,
			multiplier: multiplier,
			postShift:  postShift,
		}, nil
	}
	return &ModerateRecord{
		radix:      radix,
		digits:     digits,
		divisor:    divisor,
		multiplier: multiplier,
		postShift:  postShift,
	}, nil
}
