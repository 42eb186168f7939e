package core

import (
	"math"
	"math/big"
)

var (
	maxUint64  = new(big.Int).SetUint64(math.MaxUint64)
	maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
)

// validPower reports whether radix^exp is usable as a single division
// step: the power must fit 64 bits and its cube must exceed 2^128-1,
// so that the multiplier derivation's refinement range stays in bounds.
func validPower(radix uint64, exp uint) bool {
	x := new(big.Int).Exp(
		new(big.Int).SetUint64(radix),
		new(big.Int).SetUint64(uint64(exp)), nil)
	if x.Cmp(maxUint64) > 0 {
		return false
	}
	cube := new(big.Int).Mul(x, x)
	cube.Mul(cube, x)
	return cube.Cmp(maxUint128) > 0
}

// FindPower returns the largest exponent d for which radix^d is a
// valid single-step divisor. The search starts one below the float-log
// estimate of log_radix(2^64-1) and walks upward while validity holds,
// so a logarithm rounded either way cannot skip the true maximum.
// Every radix in [MinRadix, MaxRadix] has at least one valid power.
func FindPower(radix uint64) uint {
	exp := uint(math.Floor(math.Log(math.MaxUint64)/math.Log(float64(radix)))) - 1
	for validPower(radix, exp) {
		exp++
	}
	return exp - 1
}

// Pow64 returns radix^exp. The caller guarantees the result fits 64
// bits (exp <= FindPower(radix)).
func Pow64(radix uint64, exp uint) uint64 {
	v := uint64(1)
	for i := uint(0); i < exp; i++ {
		v *= radix
	}
	return v
}
