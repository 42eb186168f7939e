package core

import (
	"lukechampine.com/uint128"
)

// DivRem divides by shift and mask. Exact for any dividend.
func (p *PowerOfTwoRecord) DivRem(n uint128.Uint128) (uint128.Uint128, uint64) {
	return n.Rsh(p.shift), n.Lo & p.mask
}

// DivRem takes the narrow 64-bit division when the dividend is below
// 2^(64+fastShift): shifting both operands right by fastShift loses no
// quotient bits because the divisor has that many trailing zeros.
// Larger dividends go through the reciprocal multiply.
func (f *FastRecord) DivRem(n uint128.Uint128) (uint128.Uint128, uint64) {
	if n.Hi>>f.fastShift == 0 {
		v := n.Hi<<(64-f.fastShift) | n.Lo>>f.fastShift
		q := v / (f.divisor >> f.fastShift)
		return uint128.From64(q), n.Lo - q*f.divisor
	}
	q := MulHi(n, f.multiplier).Rsh(f.postShift)
	return q, n.Sub(q.Mul64(f.divisor)).Lo
}

// DivRem always multiplies: the divisor is odd, so no reduced-width
// shortcut exists.
func (m *ModerateRecord) DivRem(n uint128.Uint128) (uint128.Uint128, uint64) {
	q := MulHi(n, m.multiplier).Rsh(m.postShift)
	return q, n.Sub(q.Mul64(m.divisor)).Lo
}

// DivRem falls back to long division: the high quotient limb comes
// from a native 64-bit divide, the low limb from a normalized
// two-half-limb divide seeded with the precomputed leading-zero count.
func (s *SlowRecord) DivRem(n uint128.Uint128) (uint128.Uint128, uint64) {
	qHi := n.Hi / s.divisor
	rem := n.Hi % s.divisor
	qLo, r := divNorm(rem, n.Lo, s.divisor, s.leadingZeros)
	return uint128.Uint128{Lo: qLo, Hi: qHi}, r
}

const two32 = 1 << 32

// divNorm returns the quotient and remainder of (u1<<64 | u0) / d,
// with u1 < d so the quotient fits 64 bits. shift is d's leading-zero
// count; d<<shift has its top bit set, which bounds the per-half-limb
// quotient estimates to at most two corrections (Knuth TAoCP 4.3.1,
// Algorithm D, two 32-bit digits).
func divNorm(u1, u0, d uint64, shift uint) (q, r uint64) {
	d <<= shift
	un32 := u1<<shift | u0>>(64-shift)
	un10 := u0 << shift
	vn1 := d >> 32
	vn0 := d & (two32 - 1)
	un1 := un10 >> 32
	un0 := un10 & (two32 - 1)

	q1 := un32 / vn1
	rhat := un32 - q1*vn1
	for q1 >= two32 || q1*vn0 > two32*rhat+un1 {
		q1--
		rhat += vn1
		if rhat >= two32 {
			break
		}
	}

	un21 := un32*two32 + un1 - q1*d
	q0 := un21 / vn1
	rhat = un21 - q0*vn1
	for q0 >= two32 || q0*vn0 > two32*rhat+un0 {
		q0--
		rhat += vn1
		if rhat >= two32 {
			break
		}
	}

	return q1*two32 + q0, (un21*two32 + un0 - q0*d) >> shift
}
