package core

import (
	"math/bits"

	"lukechampine.com/uint128"
)

// MulHi returns the high 128 bits of the 256-bit product x*y.
//
// Both operands split into 64-bit limbs and the partial products are
// accumulated with explicit carries:
//
//	m     = x.Lo*y.Hi + hi64(x.Lo*y.Lo)      // < 2^128, no overflow
//	high1 = m >> 64
//	high2 = hi64(x.Hi*y.Lo + lo64(m))
//	result = x.Hi*y.Hi + high1 + high2
//
// Every intermediate fits 128 bits: x.Lo*y.Hi <= (2^64-1)^2 and the
// added carry is < 2^64, so m <= (2^64-1)*2^64 < 2^128.
func MulHi(x, y uint128.Uint128) uint128.Uint128 {
	carry, _ := bits.Mul64(x.Lo, y.Lo)

	mHi, mLo := bits.Mul64(x.Lo, y.Hi)
	var c uint64
	mLo, c = bits.Add64(mLo, carry, 0)
	mHi += c // high1 = mHi

	tHi, tLo := bits.Mul64(x.Hi, y.Lo)
	_, c = bits.Add64(tLo, mLo, 0)
	high2 := tHi + c

	rHi, rLo := bits.Mul64(x.Hi, y.Hi)
	rLo, c = bits.Add64(rLo, mHi, 0)
	rHi += c
	rLo, c = bits.Add64(rLo, high2, 0)
	rHi += c
	return uint128.Uint128{Lo: rLo, Hi: rHi}
}
