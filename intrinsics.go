// Copyright 2025 The Ryu-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ryu

import "math/bits"

// Integer primitives shared by all conversion kernels. Every multi-word
// operation is expressed through math/bits so that it lowers to single
// instructions on 64-bit targets.

// shiftright128 returns bits [dist, dist+64) of the 128-bit value hi:lo.
// Requires dist < 64; the kernels only use shift distances in [0, 58].
func shiftright128(lo, hi uint64, dist uint32) uint64 {
	return hi<<(64-dist) | lo>>dist
}

func div5(x uint64) uint64 { return x / 5 }

func div10(x uint64) uint64 { return x / 10 }

func div100(x uint64) uint64 { return x / 100 }

func div1e8(x uint64) uint64 { return x / 100000000 }

func div1e9(x uint64) uint64 { return x / 1000000000 }

func mod1e9(x uint64) uint32 {
	// x and 1e9*div1e9(x) differ by less than 1e9, so the subtraction
	// can be done in 32 bits.
	return uint32(x) - 1000000000*uint32(div1e9(x))
}

// pow5Factor returns the largest k such that 5^k divides v. Requires v != 0.
func pow5Factor(v uint64) uint32 {
	count := uint32(0)
	for {
		q := div5(v)
		r := uint32(v) - 5*uint32(q)
		if r != 0 {
			return count
		}
		v = q
		count++
	}
}

// multipleOfPowerOf5 reports whether v is divisible by 5^p.
func multipleOfPowerOf5(v uint64, p uint32) bool {
	return pow5Factor(v) >= p
}

// multipleOfPowerOf2 reports whether v is divisible by 2^p. Requires v != 0.
func multipleOfPowerOf2(v uint64, p uint32) bool {
	return v&(1<<p-1) == 0
}

// log10Pow2 returns floor(log10(2^e)) for 0 <= e <= 1650.
func log10Pow2(e int32) uint32 {
	// log10(2) = 0.3010299956639812 ~= 78913 / 2^18.
	// The first exponent this fails for is 1651.
	return uint32(e) * 78913 >> 18
}

// log10Pow5 returns floor(log10(5^e)) for 0 <= e <= 2620.
func log10Pow5(e int32) uint32 {
	// log10(5) = 0.6989700043360189 ~= 732923 / 2^20.
	return uint32(e) * 732923 >> 20
}

// pow5bits returns e == 0 ? 1 : ceil(log2(5^e)) for 0 <= e <= 3528.
func pow5bits(e int32) int32 {
	// log2(5) = 2.321928094887362 ~= 1217359 / 2^19.
	return int32(uint32(e)*1217359>>19) + 1
}

// decimalLength9 returns the number of decimal digits of v < 10^9.
func decimalLength9(v uint32) uint32 {
	if v >= 100000000 {
		return 9
	}
	if v >= 10000000 {
		return 8
	}
	if v >= 1000000 {
		return 7
	}
	if v >= 100000 {
		return 6
	}
	if v >= 10000 {
		return 5
	}
	if v >= 1000 {
		return 4
	}
	if v >= 100 {
		return 3
	}
	if v >= 10 {
		return 2
	}
	return 1
}

// decimalLength17 returns the number of decimal digits of v < 10^17.
// The average output of the shortest kernel is 16.38 digits, so the
// ladder checks high to low.
func decimalLength17(v uint64) uint32 {
	if v >= 10000000000000000 {
		return 17
	}
	if v >= 1000000000000000 {
		return 16
	}
	if v >= 100000000000000 {
		return 15
	}
	if v >= 10000000000000 {
		return 14
	}
	if v >= 1000000000000 {
		return 13
	}
	if v >= 100000000000 {
		return 12
	}
	if v >= 10000000000 {
		return 11
	}
	if v >= 1000000000 {
		return 10
	}
	if v >= 100000000 {
		return 9
	}
	if v >= 10000000 {
		return 8
	}
	if v >= 1000000 {
		return 7
	}
	if v >= 100000 {
		return 6
	}
	if v >= 10000 {
		return 5
	}
	if v >= 1000 {
		return 4
	}
	if v >= 100 {
		return 3
	}
	if v >= 10 {
		return 2
	}
	return 1
}

// mulShift64 returns floor(m * (mul[1]:mul[0]) / 2^j) for 64 < j < 128.
// m has at most 55 significant bits and the table entries at most 124, so
// the product needs only its top 64 bits after the shift.
func mulShift64(m uint64, mul *[2]uint64, j int32) uint64 {
	high1, low1 := bits.Mul64(m, mul[1])
	high0, _ := bits.Mul64(m, mul[0])
	sum, carry := bits.Add64(high0, low1, 0)
	high1 += carry
	return shiftright128(sum, high1, uint32(j)-64)
}

// mulShiftAll64 computes the three scaled interval values of the shortest
// kernel in one call: floor(x*mul/2^j) for x = 4m, 4m+2 and 4m-1-mmShift.
func mulShiftAll64(m uint64, mul *[2]uint64, j int32, mmShift uint32) (vr, vp, vm uint64) {
	vp = mulShift64(4*m+2, mul, j)
	vm = mulShift64(4*m-1-uint64(mmShift), mul, j)
	vr = mulShift64(4*m, mul, j)
	return
}

// uint128Mod1e9 returns (hi:lo) mod 10^9 using 2^64 = 709551616 (mod 10^9).
// The folded sum stays below 2^61, so a single reduction suffices.
func uint128Mod1e9(hi, lo uint64) uint32 {
	return mod1e9(uint64(mod1e9(hi))*709551616 + uint64(mod1e9(lo)))
}

// mulShiftMod1e9 returns floor(m * (mul[2]:mul[1]:mul[0]) / 2^j) mod 10^9
// for 128 <= j <= 180. This is the 256-bit primitive of the fixed-precision
// kernels: a full 64x192-bit product, of which only the upper 128 bits
// survive the shift.
func mulShiftMod1e9(m uint64, mul *[3]uint64, j int32) uint32 {
	high0, _ := bits.Mul64(m, mul[0])
	high1, low1 := bits.Mul64(m, mul[1])
	high2, low2 := bits.Mul64(m, mul[2])
	_, c1 := bits.Add64(low1, high0, 0) // only the carry reaches bit 128
	s1low, c2 := bits.Add64(low2, high1, c1)
	s1high := high2 + c2
	dist := uint32(j) - 128 // dist: [0, 52]
	shiftedHigh := s1high >> dist
	shiftedLow := shiftright128(s1low, s1high, dist)
	return uint128Mod1e9(shiftedHigh, shiftedLow)
}
