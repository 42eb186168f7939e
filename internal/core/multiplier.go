package core

import (
	"math/big"
	"math/bits"
)

// ChooseMultiplier computes the reciprocal multiplier for dividing a
// width-bit value by divisor, per Granlund & Montgomery, "Division by
// Invariant Integers using Multiplication" (PLDI '94).
//
// It returns the multiplier m, the right shift applied after the high
// multiply, and the divisor's bit length ceil(log2(divisor)). The
// shift-reduction loop halves the bracketing interval [m_low, m_high]
// while it still contains a usable reciprocal, minimizing the
// multiplier's width. m may still exceed width bits: the guarantee is
// only that it fits max(precision, width-divBits)+1 bits, and callers
// must check and fall back to long division when it does not fit.
//
// The signed flag narrows precision by one bit as the paper specifies;
// nothing in this package exercises it beyond the literal formula.
// Panics if divisor is 0.
func ChooseMultiplier(divisor uint64, width uint, signed bool) (m *big.Int, postShift, divBits uint) {
	if divisor == 0 {
		panic("division by zero")
	}
	precision := width
	if signed {
		precision--
	}
	divBits = CeilLog2(divisor)
	postShift = divBits

	num := new(big.Int).Lsh(big.NewInt(1), width+divBits)
	d := new(big.Int).SetUint64(divisor)
	mLow := new(big.Int).Quo(num, d)
	mHigh := new(big.Int).Add(num, new(big.Int).Lsh(big.NewInt(1), width+divBits-precision))
	mHigh.Quo(mHigh, d)

	for postShift > 0 {
		lo := new(big.Int).Rsh(mLow, 1)
		hi := new(big.Int).Rsh(mHigh, 1)
		if lo.Cmp(hi) >= 0 {
			break
		}
		mLow, mHigh = lo, hi
		postShift--
	}
	return mHigh, postShift, divBits
}

// CeilLog2 returns ceil(log2(x)) for x > 0.
func CeilLog2(x uint64) uint {
	n := uint(bits.Len64(x))
	if x&(x-1) == 0 {
		n--
	}
	return n
}

// FastShift returns the trailing-zero count of the divisor: the widest
// right shift of both operands that loses no quotient bits, making a
// reduced-width division exact for dividends below 2^(64+shift).
func FastShift(divisor uint64) uint {
	return uint(bits.TrailingZeros64(divisor))
}
