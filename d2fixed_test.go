// Copyright 2025 The Ryu-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ryu

import (
	"math"
	"math/rand"
	"strconv"
	"testing"
)

func fixedString(f float64, prec uint32) string {
	buf := make([]byte, int(prec)+326)
	n := Fixed(buf, f, prec)
	return string(buf[:n])
}

func TestFixed(t *testing.T) {
	tests := []struct {
		f    float64
		prec uint32
		want string
	}{
		{0, 0, "0"},
		{0, 4, "0.0000"},
		{1, 0, "1"},
		{1, 2, "1.00"},
		{0.1, 20, "0.10000000000000000555"}, // 0.1 is not exact
		{0.3, 1, "0.3"},
		{1729.1729, 4, "1729.1729"},
		// Round half to even: the ties below are exact decimals.
		{1.5, 0, "2"},
		{2.5, 0, "2"},
		{0.5, 0, "0"},
		{3.5, 0, "4"},
		{0.125, 2, "0.12"},
		{0.375, 2, "0.38"},
		// Inexact ties round by the true value, not the printed prefix.
		{9.999999999999998e-4, 3, "0.001"},
		{0.6666666666666666, 3, "0.667"},
		// Carry propagation across the decimal point.
		{9.9999, 3, "10.000"},
		{99.999999, 4, "100.0000"},
		// Values without a fractional part in range.
		{1e23, 0, "99999999999999991611392"},
		{1e23, 2, "99999999999999991611392.00"},
		{5e-324, 2, "0.00"},
		{2.2250738585072014e-308, 4, "0.0000"},
	}
	for _, test := range tests {
		if got := fixedString(test.f, test.prec); got != test.want {
			t.Errorf("Fixed(%v, %d) = %q, want %q", test.f, test.prec, got, test.want)
		}
	}
}

// The stdlib 'f' formatting is correctly rounded with ties to even, so
// it is an independent oracle for the fixed kernel.
func TestFixedMatchesStdlib(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	n := 20000
	if testing.Short() {
		n = 2000
	}
	for i := 0; i < n; i++ {
		b := r.Uint64() &^ (1 << 63)
		if b>>mantBits == 0x7FF {
			continue
		}
		f := math.Float64frombits(b)
		prec := uint32(r.Intn(40))
		got := fixedString(f, prec)
		want := strconv.FormatFloat(f, 'f', int(prec), 64)
		if got != want {
			t.Fatalf("Fixed(%b, %d) = %q, want %q", f, prec, got, want)
		}
	}
}

func TestFixedDenseSmall(t *testing.T) {
	// Small fractions with every precision up to one digit past their
	// exact expansion.
	for m := uint64(1); m < 64; m++ {
		for e := -8; e < 0; e++ {
			f := math.Ldexp(float64(m), e)
			for prec := uint32(0); prec <= 10; prec++ {
				got := fixedString(f, prec)
				want := strconv.FormatFloat(f, 'f', int(prec), 64)
				if got != want {
					t.Fatalf("Fixed(%v, %d) = %q, want %q", f, prec, got, want)
				}
			}
		}
	}
}

func TestFixedLargeIntegers(t *testing.T) {
	// Large integers print their exact decimal expansion.
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 2000; i++ {
		mant := r.Uint64() & (1<<mantBits - 1)
		exp := 1076 + r.Intn(100) // e2 in (0, 100]
		b := uint64(exp)<<mantBits | mant
		f := math.Float64frombits(b)
		s := fixedString(f, 0)
		if want := strconv.FormatFloat(f, 'f', 0, 64); s != want {
			t.Fatalf("Fixed(%b, 0) = %q, want %q", f, s, want)
		}
	}
}

func TestFixedLengthBound(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 5000; i++ {
		b := r.Uint64() &^ (1 << 63)
		if b>>mantBits == 0x7FF {
			continue
		}
		f := math.Float64frombits(b)
		prec := uint32(r.Intn(60))
		buf := make([]byte, int(prec)+326)
		if n := Fixed(buf, f, prec); n > int(prec)+326 {
			t.Fatalf("Fixed(%b, %d) wrote %d bytes", f, prec, n)
		}
	}
}

func BenchmarkFixed(b *testing.B) {
	var buf [512]byte
	for i := 0; i < b.N; i++ {
		benchSink = Fixed(buf[:], 0.1729, 17)
	}
}
