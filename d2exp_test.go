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

func expString(f float64, prec uint32) string {
	buf := make([]byte, int(prec)+9)
	n := Exp(buf, f, prec)
	return string(buf[:n])
}

func TestExp(t *testing.T) {
	tests := []struct {
		f    float64
		prec uint32
		want string
	}{
		{0, 0, "0e+00"},
		{0, 2, "0.00e+00"},
		{1, 0, "1e+00"},
		{1, 2, "1.00e+00"},
		{0.1, 17, "1.00000000000000006e-01"},
		{0.3, 0, "3e-01"},
		{1729.1729, 5, "1.72917e+03"},
		// Ties at the cut are resolved against the exact binary value.
		{0.125, 1, "1.2e-01"},
		{0.375, 1, "3.8e-01"},
		// Carry past the leading digit bumps the exponent.
		{9.999, 1, "1.0e+01"},
		{9.99951e2, 2, "1.00e+03"},
		// Three-digit exponents.
		{1e100, 2, "1.00e+100"},
		{5e-324, 2, "4.94e-324"},
		{2.2250738585072014e-308, 3, "2.225e-308"},
	}
	for _, test := range tests {
		if got := expString(test.f, test.prec); got != test.want {
			t.Errorf("Exp(%v, %d) = %q, want %q", test.f, test.prec, got, test.want)
		}
	}
}

// The stdlib 'e' formatting is correctly rounded with ties to even and
// uses the same exponent shape, so outputs must match byte for byte.
func TestExpMatchesStdlib(t *testing.T) {
	r := rand.New(rand.NewSource(7))
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
		prec := uint32(r.Intn(25))
		got := expString(f, prec)
		want := strconv.FormatFloat(f, 'e', int(prec), 64)
		if got != want {
			t.Fatalf("Exp(%b, %d) = %q, want %q", f, prec, got, want)
		}
	}
}

func TestExpAllPrecisions(t *testing.T) {
	// Every precision from 0 to 30 for a handful of awkward values.
	values := []float64{
		1.0 / 3.0,
		0.1,
		1e-10,
		123456789.123456789,
		math.Ldexp(9007199254740991, -26), // mantissa of all ones
		5e-324,
	}
	for _, f := range values {
		for prec := uint32(0); prec <= 30; prec++ {
			got := expString(f, prec)
			want := strconv.FormatFloat(f, 'e', int(prec), 64)
			if got != want {
				t.Fatalf("Exp(%b, %d) = %q, want %q", f, prec, got, want)
			}
		}
	}
}

func BenchmarkExp(b *testing.B) {
	var buf [64]byte
	for i := 0; i < b.N; i++ {
		benchSink = Exp(buf[:], 0.1729, 17)
	}
}
