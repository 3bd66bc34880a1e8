// Copyright 2025 The Ryu-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ryu

import "math"

// Shortest writes the shortest decimal representation of f that parses
// back to the same binary64, in scientific form with an uppercase 'E'
// and no sign on nonnegative exponents: "1.729E20", "0E0", "1.2E-7".
// It returns the number of bytes written, at most 24. The buffer must
// hold at least 25 bytes. f must be finite and nonnegative.
func Shortest(buf []byte, f float64) int {
	// Step 1: decode the bit pattern; exit early for zero.
	b := math.Float64bits(f)
	if b == 0 {
		return copy(buf, "0E0")
	}

	ieeeMantissa := b & (1<<mantBits - 1)
	ieeeExponent := uint32(b >> mantBits)

	var v FloatingDecimal64
	if d2dSmallInt(ieeeMantissa, ieeeExponent, &v) {
		// For small integers in the range [1, 2^53), v.Mantissa may
		// contain trailing (decimal) zeros. For scientific notation
		// they must move into the exponent.
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

	return writeShortest(buf, v)
}

// writeShortest emits v in the Shortest output format and returns the
// byte count.
func writeShortest(result []byte, v FloatingDecimal64) int {
	output := v.Mantissa
	olength := decimalLength17(output)

	// Print the decimal digits. The lower digits land one position to
	// the right of their final place, leaving index 1 free for the
	// decimal point; the leading digit is written last, at index 0.
	i := uint32(0)
	if output>>32 != 0 {
		// Expensive 64-bit division.
		q := div1e8(output)
		output2 := uint32(output) - 100000000*uint32(q)
		output = q

		c := output2 % 10000
		output2 /= 10000
		d := output2 % 10000
		c0 := c % 100 << 1
		c1 := c / 100 << 1
		d0 := d % 100 << 1
		d1 := d / 100 << 1
		copy(result[olength-i-1:], digitTable[c0:c0+2])
		copy(result[olength-i-3:], digitTable[c1:c1+2])
		copy(result[olength-i-5:], digitTable[d0:d0+2])
		copy(result[olength-i-7:], digitTable[d1:d1+2])
		i += 8
	}
	output2 := uint32(output)
	for output2 >= 10000 {
		c := output2 % 10000
		output2 /= 10000
		c0 := c % 100 << 1
		c1 := c / 100 << 1
		copy(result[olength-i-1:], digitTable[c0:c0+2])
		copy(result[olength-i-3:], digitTable[c1:c1+2])
		i += 4
	}
	if output2 >= 100 {
		c := output2 % 100 << 1
		output2 /= 100
		copy(result[olength-i-1:], digitTable[c:c+2])
		i += 2
	}
	if output2 >= 10 {
		c := output2 << 1
		// The decimal point goes between these two digits.
		result[2] = digitTable[c+1]
		result[0] = digitTable[c]
	} else {
		result[0] = byte('0' + output2)
	}

	// Print the decimal point if needed.
	var index uint32
	if olength > 1 {
		result[1] = '.'
		index = olength + 1
	} else {
		index = 1
	}

	// Print the exponent.
	result[index] = 'E'
	index++
	exp := v.Exponent + int32(olength) - 1
	if exp < 0 {
		result[index] = '-'
		index++
		exp = -exp
	}
	if exp >= 100 {
		c := exp % 10
		copy(result[index:], digitTable[2*(exp/10):2*(exp/10)+2])
		result[index+2] = byte('0' + c)
		index += 3
	} else if exp >= 10 {
		copy(result[index:], digitTable[2*exp:2*exp+2])
		index += 2
	} else {
		result[index] = byte('0' + exp)
		index++
	}

	return int(index)
}
