// Package core derives and executes 128-bit division by invariant
// radix powers: for each radix in [2,36] it picks the largest power of
// the radix usable as a single division step and the constants that
// turn the runtime division into a multiply-and-shift.
package core

import (
	"fmt"

	"lukechampine.com/uint128"
)

const (
	// MinRadix and MaxRadix bound the supported digit bases.
	MinRadix = 2
	MaxRadix = 36

	// Width is the dividend width in bits. Quotients are Width bits,
	// remainders always fit the 64-bit divisor.
	Width = 128
)

// Tier identifies which division algorithm a divisor was assigned to.
type Tier int

const (
	// TierPowerOfTwo divides with a shift and mask only.
	TierPowerOfTwo Tier = iota
	// TierFast has a reciprocal multiplier and a nonzero trailing-zero
	// shift, enabling a narrow division shortcut for small dividends.
	TierFast
	// TierModerate has a reciprocal multiplier but no usable shortcut.
	TierModerate
	// TierSlow has no 128-bit multiplier; division falls back to
	// normalized long division.
	TierSlow
)

func (t Tier) String() string {
	switch t {
	case TierPowerOfTwo:
		return "pow2"
	case TierFast:
		return "fast"
	case TierModerate:
		return "moderate"
	case TierSlow:
		return "slow"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Record is one derived divisor: the constants needed to divide a
// 128-bit value by Divisor() = Radix()^Digits(). Records are immutable
// after Classify and safe for unsynchronized concurrent use.
//
// Each tier is a distinct concrete type carrying only its own payload,
// so a constant that does not apply to the selected algorithm cannot be
// read by mistake.
type Record interface {
	// Radix returns the digit base in [MinRadix, MaxRadix].
	Radix() uint64
	// Digits returns how many radix digits one division step consumes.
	Digits() uint
	// Divisor returns Radix()^Digits(). At most 2^64: only the
	// power-of-two radices 2, 4 and 16 reach the full 2^64, every
	// other divisor fits in 64 bits.
	Divisor() uint128.Uint128
	// Tier reports the algorithm this divisor was assigned to.
	Tier() Tier
	// DivRem returns (floor(n/Divisor()), n mod Divisor()).
	DivRem(n uint128.Uint128) (q uint128.Uint128, r uint64)
}

// PowerOfTwoRecord divides by an exact power of two with shift and mask.
type PowerOfTwoRecord struct {
	radix  uint64
	digits uint
	shift  uint
	mask   uint64
}

func (p *PowerOfTwoRecord) Radix() uint64 { return p.radix }
func (p *PowerOfTwoRecord) Digits() uint  { return p.digits }
func (p *PowerOfTwoRecord) Divisor() uint128.Uint128 {
	return uint128.From64(1).Lsh(p.shift)
}
func (p *PowerOfTwoRecord) Tier() Tier { return TierPowerOfTwo }

// Shift returns the bit count discarded per step, digits*log2(radix).
func (p *PowerOfTwoRecord) Shift() uint { return p.shift }

// Mask returns 1<<Shift() - 1, the remainder mask.
func (p *PowerOfTwoRecord) Mask() uint64 { return p.mask }

// FastRecord divides with a reciprocal multiplier, taking a narrow
// 64-bit division shortcut when the dividend is below 2^(64+FastShift).
type FastRecord struct {
	radix      uint64
	digits     uint
	divisor    uint64
	fastShift  uint
	multiplier uint128.Uint128
	postShift  uint
}

func (f *FastRecord) Radix() uint64            { return f.radix }
func (f *FastRecord) Digits() uint             { return f.digits }
func (f *FastRecord) Divisor() uint128.Uint128 { return uint128.From64(f.divisor) }
func (f *FastRecord) Tier() Tier               { return TierFast }

// FastShift returns the trailing-zero count of the divisor.
func (f *FastRecord) FastShift() uint { return f.fastShift }

// Multiplier returns the 128-bit reciprocal multiplier.
func (f *FastRecord) Multiplier() uint128.Uint128 { return f.multiplier }

// PostShift returns the right shift applied after the high multiply.
func (f *FastRecord) PostShift() uint { return f.postShift }

// ModerateRecord divides with a reciprocal multiplier unconditionally:
// the divisor is odd, so no shortcut shift exists.
type ModerateRecord struct {
	radix      uint64
	digits     uint
	divisor    uint64
	multiplier uint128.Uint128
	postShift  uint
}

func (m *ModerateRecord) Radix() uint64            { return m.radix }
func (m *ModerateRecord) Digits() uint             { return m.digits }
func (m *ModerateRecord) Divisor() uint128.Uint128 { return uint128.From64(m.divisor) }
func (m *ModerateRecord) Tier() Tier               { return TierModerate }

// Multiplier returns the 128-bit reciprocal multiplier.
func (m *ModerateRecord) Multiplier() uint128.Uint128 { return m.multiplier }

// PostShift returns the right shift applied after the high multiply.
func (m *ModerateRecord) PostShift() uint { return m.postShift }

// SlowRecord is the fallback for divisors whose chosen multiplier does
// not fit 128 bits: division proceeds by normalized long division.
type SlowRecord struct {
	radix        uint64
	digits       uint
	divisor      uint64
	leadingZeros uint
}

func (s *SlowRecord) Radix() uint64            { return s.radix }
func (s *SlowRecord) Digits() uint             { return s.digits }
func (s *SlowRecord) Divisor() uint128.Uint128 { return uint128.From64(s.divisor) }
func (s *SlowRecord) Tier() Tier               { return TierSlow }

// LeadingZeros returns the leading-zero count of the divisor, the
// normalization shift the long-division kernel starts from.
func (s *SlowRecord) LeadingZeros() uint { return s.leadingZeros }
