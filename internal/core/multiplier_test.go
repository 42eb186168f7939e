package core

import (
	"math/big"
	"testing"
)

func TestChooseMultiplierKnown(t *testing.T) {
	cases := []struct {
		name      string
		divisor   uint64
		width     uint
		signed    bool
		wantM     string // decimal
		wantShift uint
		wantBits  uint
	}{
		// the classic unsigned divide-by-10 constant
		{"10/64", 10, 64, false, "14757395258967641293", 3, 4},
		// and its signed counterpart with one fewer precision bit
		{"10/64/signed", 10, 64, true, "7378697629483820647", 2, 4},
		// divide by 7 needs 33 bits at width 32: overflow by design
		{"7/32", 7, 32, false, "4908534053", 3, 3},
		{"7/32/signed", 7, 32, true, "2454267027", 2, 3},
		// radix 10's full 19-digit step at width 128
		{"1e19/128", 10000000000000000000, 128, false,
			"156927543384667019095894735580191660403", 62, 64},
		// radix 5's 27-digit step
		{"5^27/128", 7450580596923828125, 128, false,
			"105312291668557186697918027683670432319", 61, 63},
		// 3^40: the multiplier exceeds 2^128, the slow-tier trigger
		{"3^40/128", 12157665459056928801, 128, false,
			"516308147853378761080447150880966767953", 64, 64},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, shift, divBits := ChooseMultiplier(tc.divisor, tc.width, tc.signed)
			want, ok := new(big.Int).SetString(tc.wantM, 10)
			if !ok {
				t.Fatalf("bad test constant %q", tc.wantM)
			}
			if m.Cmp(want) != 0 || shift != tc.wantShift || divBits != tc.wantBits {
				t.Errorf("ChooseMultiplier(%d, %d, %v) = (%v, %d, %d), want (%v, %d, %d)",
					tc.divisor, tc.width, tc.signed, m, shift, divBits,
					want, tc.wantShift, tc.wantBits)
			}
		})
	}
}

func TestChooseMultiplierZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ChooseMultiplier(0, 128, false) did not panic")
		}
	}()
	ChooseMultiplier(0, 128, false)
}

// The returned multiplier must reproduce exact floor division through
// a high multiply and shift whenever it fits the working width.
func TestChooseMultiplierReproducesDivision(t *testing.T) {
	divisors := []uint64{3, 7, 10, 641, 1000, 1 << 20, 10000000000000000000}
	width := uint(128)
	bound := new(big.Int).Lsh(big.NewInt(1), width)
	for _, d := range divisors {
		m, shift, _ := ChooseMultiplier(d, width, false)
		if m.Cmp(bound) >= 0 {
			continue
		}
		for i := uint64(0); i < 500; i++ {
			n := sampleU128(i).Big()
			got := new(big.Int).Mul(n, m)
			got.Rsh(got, width+shift)
			want := new(big.Int).Quo(n, new(big.Int).SetUint64(d))
			if got.Cmp(want) != 0 {
				t.Fatalf("divisor %d: (n*m)>>%d = %v, want n/%d = %v (n=%v)",
					d, width+shift, got, d, want, n)
			}
		}
	}
}

func TestCeilLog2(t *testing.T) {
	cases := []struct {
		x    uint64
		want uint
	}{
		{1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4},
		{1023, 10}, {1024, 10}, {1025, 11},
		{1 << 63, 63}, {1<<63 + 1, 64}, {^uint64(0), 64},
	}
	for _, tc := range cases {
		if got := CeilLog2(tc.x); got != tc.want {
			t.Errorf("CeilLog2(%d) = %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestFastShift(t *testing.T) {
	cases := []struct {
		divisor uint64
		want    uint
	}{
		{1, 0},
		{3, 0},
		{12, 2},
		{10000000000000000000, 19},
		{876488338465357824, 39},
		{7450580596923828125, 0},
		{1 << 63, 63},
	}
	for _, tc := range cases {
		if got := FastShift(tc.divisor); got != tc.want {
			t.Errorf("FastShift(%d) = %d, want %d", tc.divisor, got, tc.want)
		}
		// the defining property: divisible by 2^n, not by 2^(n+1)
		if tc.divisor%(1<<tc.want) != 0 {
			t.Errorf("divisor %d not divisible by 2^%d", tc.divisor, tc.want)
		}
		if tc.want < 63 && tc.divisor%(1<<(tc.want+1)) == 0 {
			t.Errorf("divisor %d divisible by 2^%d", tc.divisor, tc.want+1)
		}
	}
}
