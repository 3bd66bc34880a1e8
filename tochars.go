// Copyright 2025 The Ryu-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ryu

import (
	"errors"
	"math"
	"math/bits"
)

// A Format selects the notation ToChars produces.
type Format int

const (
	// FormatDefault picks the shorter of fixed and scientific notation,
	// preferring fixed on ties.
	FormatDefault Format = iota
	// FormatScientific is d.dddde±dd notation.
	FormatScientific
	// FormatFixed is ddd.dddd notation with no exponent.
	FormatFixed
	// FormatGeneral picks fixed or scientific the way printf %g does
	// with its default precision.
	FormatGeneral
)

// ErrValueTooLarge is returned by ToChars when the destination buffer
// cannot hold the output. No bytes have been written in that case.
var ErrValueTooLarge = errors.New("ryu: value does not fit in buffer")

// maxShiftedMantissa[e] is floor((2^53 - 1) / 5^e): an odd mantissa m
// times 10^e is exactly representable as a binary64 iff m does not
// exceed it.
var maxShiftedMantissa = [23]uint64{
	9007199254740991, 1801439850948198, 360287970189639, 72057594037927,
	14411518807585, 2882303761517, 576460752303, 115292150460,
	23058430092, 4611686018, 922337203, 184467440,
	36893488, 7378697, 1475739, 295147,
	59029, 11805, 2361, 472,
	94, 18, 3,
}

// powerOfTenAdjustment[e] is 1 when the exact decimal expansion of the
// binary64 nearest to 10^e has only e digits, not e+1. For example,
// 1e23 is stored as 99999999999999991611392, which is 23 digits.
var powerOfTenAdjustment = [309]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1,
	0, 1, 0, 1, 1, 1, 0, 1, 1, 1, 0, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 1, 0, 0, 0, 0, 1, 1,
	1, 1, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 0, 1, 0, 1, 0, 1, 1, 0, 0, 0, 0, 1, 1, 1,
	1, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 1, 1, 0, 0, 1, 0, 1, 0, 1, 0, 1, 1, 0, 0, 0, 0, 0, 1, 1,
	1, 0, 0, 1, 1, 1, 1, 1, 0, 1, 0, 1, 1, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 0, 0,
	1, 0, 0, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1,
	0, 1, 0, 1, 0, 1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 1, 0, 1, 1, 1, 0, 0, 0, 1, 0,
	1, 1, 1, 1, 1, 1, 0, 1, 0, 1, 1, 0, 0, 0, 1, 1, 1, 0, 1, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 1,
	0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 1, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 1, 1, 0,
	0, 1, 0, 1, 1, 1, 0, 0, 1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0,
	0, 0, 0, 0, 1, 1, 0, 1, 0,
}

// ToChars writes the shortest-form digits of f in the requested
// notation: lowercase 'e', explicitly signed exponents of at least two
// digits (three when |exp| >= 100). In fixed notation, integers of 2^53
// and above, and values whose zero-padded shortest digits are not
// exact, are written as their exact integer expansion instead. It
// returns the number of bytes
// written, or ErrValueTooLarge (writing nothing) when buf cannot hold
// the output. f must be finite and nonnegative.
func ToChars(buf []byte, f float64, format Format) (int, error) {
	b := math.Float64bits(f)
	if b == 0 {
		if format == FormatScientific {
			if len(buf) < 5 {
				return 0, ErrValueTooLarge
			}
			return copy(buf, "0e+00"), nil
		}
		if len(buf) < 1 {
			return 0, ErrValueTooLarge
		}
		buf[0] = '0'
		return 1, nil
	}

	ieeeMantissa := b & (1<<mantBits - 1)
	ieeeExponent := uint32(b >> mantBits)

	if format == FormatFixed && ieeeExponent != 0 {
		if e2 := int32(ieeeExponent) - bias - mantBits; e2 > 0 {
			// A large integer, outside the range where shortest-form
			// digits can be re-expanded exactly; go straight to the
			// fixed-precision kernel.
			m2 := uint64(1)<<mantBits | ieeeMantissa
			if len(buf) < fixedIntegerLength(m2, e2) {
				return 0, ErrValueTooLarge
			}
			return Fixed(buf, f, 0), nil
		}
	}

	var v FloatingDecimal64
	if d2dSmallInt(ieeeMantissa, ieeeExponent, &v) {
		// Move trailing (decimal) zeros of small integers into the
		// exponent; the fixed renderer puts them back as padding.
		for {
			q := div10(v.Mantissa)
			r := uint32(v.Mantissa) - 10*uint32(q)
			if r != 0 {
				break
			}
			v.Mantissa = q
			v.Exponent++
		}
	} else {
		v = d2d(ieeeMantissa, ieeeExponent)
	}

	return writeFormatted(buf, v, format, f)
}

// writeFormatted renders the shortest-form decimal v of f in the
// requested notation. f itself is only consulted when v cannot be
// re-expanded exactly in fixed notation.
func writeFormatted(buf []byte, v FloatingDecimal64, format Format, f float64) (int, error) {
	olength := decimalLength17(v.Mantissa)
	scientificExponent := v.Exponent + int32(olength) - 1

	switch format {
	case FormatDefault:
		// Value | Fixed   | Scientific
		// 1e-3  | "0.001" | "1e-03"
		// 1e4   | "10000" | "1e+04"
		// With more digits the fixed window shifts:
		// 1234e-7 | "0.0001234" | "1.234e-04"
		// 1234e5  | "123400000" | "1.234e+08"
		var lower, upper int32
		if olength == 1 {
			lower, upper = -3, 4
		} else {
			lower, upper = -(int32(olength) + 3), 5
		}
		if lower <= v.Exponent && v.Exponent <= upper {
			format = FormatFixed
		} else {
			format = FormatScientific
		}
	case FormatGeneral:
		// C11 printf %g with omitted precision: style f iff the style-e
		// exponent X satisfies 6 > X >= -4.
		if -4 <= scientificExponent && scientificExponent < 6 {
			format = FormatFixed
		} else {
			format = FormatScientific
		}
	}

	if format == FormatFixed {
		ryuExponent := v.Exponent
		wholeDigits := int32(olength) + ryuExponent

		var totalLen int32
		switch {
		case ryuExponent >= 0: // cases "172900" and "1729"
			totalLen = wholeDigits
			if v.Mantissa == 1 {
				// Rounding can shorten the exact expansion of a power
				// of ten: 1e23 is 99999999999999991611392, which is 23
				// digits instead of 24.
				totalLen -= int32(powerOfTenAdjustment[ryuExponent])
			}
		case wholeDigits > 0: // case "17.29"
			totalLen = int32(olength) + 1
		default: // case "0.001729"
			totalLen = 2 - ryuExponent
		}
		if int32(len(buf)) < totalLen {
			return 0, ErrValueTooLarge
		}

		switch {
		case ryuExponent > 0: // case "172900"
			canUseRyu := false
			if ryuExponent <= 22 {
				// v.Mantissa * 10^e is representable iff its odd part
				// times 5^e still fits in 53 bits.
				shifted := v.Mantissa >> uint(bits.TrailingZeros64(v.Mantissa))
				canUseRyu = shifted <= maxShiftedMantissa[ryuExponent]
			}
			if !canUseRyu {
				// The zero-padded shortest form would not be the exact
				// value; re-derive the digits from the double itself.
				return Fixed(buf, f, 0), nil
			}
			writeDigits(buf[:olength], olength, v.Mantissa)
			zeroFill(buf[olength:wholeDigits])
			return int(wholeDigits), nil

		case ryuExponent == 0: // case "1729"
			writeDigits(buf[:olength], olength, v.Mantissa)
			return int(olength), nil

		case wholeDigits > 0: // case "17.29"
			// Write the digits one position right, slide the integer
			// part back, and drop the dot into the gap.
			writeDigits(buf[1:olength+1], olength, v.Mantissa)
			copy(buf[:wholeDigits], buf[1:wholeDigits+1])
			buf[wholeDigits] = '.'
			return int(olength) + 1, nil

		default: // case "0.001729"
			buf[0] = '0'
			buf[1] = '.'
			zeroFill(buf[2 : 2-wholeDigits])
			writeDigits(buf[2-wholeDigits:2-wholeDigits+int32(olength)], olength, v.Mantissa)
			return int(totalLen), nil
		}
	}

	// Scientific notation.
	totalLen := int32(olength) + 4 // leading digit, 'e', sign, two digits
	if olength > 1 {
		totalLen++ // decimal point
	}
	if scientificExponent >= 100 || scientificExponent <= -100 {
		totalLen++ // third exponent digit
	}
	if int32(len(buf)) < totalLen {
		return 0, ErrValueTooLarge
	}

	var digits [17]byte
	writeDigits(digits[:olength], olength, v.Mantissa)
	buf[0] = digits[0]
	index := 1
	if olength > 1 {
		buf[1] = '.'
		copy(buf[2:], digits[1:olength])
		index = int(olength) + 1
	}
	buf[index] = 'e'
	index++
	exp := scientificExponent
	if exp < 0 {
		buf[index] = '-'
		exp = -exp
	} else {
		buf[index] = '+'
	}
	index++
	if exp >= 100 {
		c := exp % 10
		copy(buf[index:], digitTable[2*(exp/10):2*(exp/10)+2])
		buf[index+2] = byte('0' + c)
		index += 3
	} else {
		copy(buf[index:], digitTable[2*exp:2*exp+2])
		index += 2
	}
	return index, nil
}
