// Copyright 2025 The Ryu-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ryu

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

func shortestString(f float64) string {
	var buf [25]byte
	n := Shortest(buf[:], f)
	return string(buf[:n])
}

func TestShortest(t *testing.T) {
	tests := []struct {
		f    float64
		want string
	}{
		{0, "0E0"},
		{1, "1E0"},
		{0.3, "3E-1"},
		{1e23, "1E23"},
		{1.2, "1.2E0"},
		{123456789, "1.23456789E8"},
		{4.294967294, "4.294967294E0"}, // 2^32 - 2
		{4.294967295, "4.294967295E0"}, // 2^32 - 1
		{1.2345678901234567, "1.2345678901234567E0"},
		{2.9802322387695312e-8, "2.9802322387695312E-8"}, // 2^-25
		// Integers with trailing zeros move them into the exponent.
		{2300000, "2.3E6"},
		{5e15, "5E15"},
		// Boundaries.
		{math.MaxFloat64, "1.7976931348623157E308"},
		{2.2250738585072014e-308, "2.2250738585072014E-308"}, // smallest normal
		{2.225073858507201e-308, "2.225073858507201E-308"},   // largest subnormal
		{5e-324, "5E-324"},                                   // smallest subnormal
		// chosen to maximize the output length (17 digits).
		{1.7800590868057611e-307, "1.7800590868057611E-307"},
		// Pathological cases from the Ryu paper's test suite: the
		// halfway points need the full 128-bit precision.
		{9.223372036854776e18, "9.223372036854776E18"},
		{1.6975966327722178e16, "1.6975966327722178E16"},
	}
	for _, test := range tests {
		if got := shortestString(test.f); got != test.want {
			t.Errorf("Shortest(%v) = %q, want %q", test.f, got, test.want)
		}
	}
}

// hardFloat64s lists values whose shortest decimal is close to a
// rounding boundary; they are rejected by fast-path algorithms like
// Grisu3 and exercise the exact trailing-zero logic here.
var hardFloat64s = []float64{
	// Denormals
	math.Ldexp(328742302, -1074),
	math.Ldexp(1845284427387, -1074),
	math.Ldexp(341076211242912, -1074),
	// Difficulty < 1e-15
	math.Ldexp(6417092537094053, -748),
	math.Ldexp(7675932596762664, -653),
	math.Ldexp(6419534400875886, -426),
	math.Ldexp(4566633709189828, -328),
	math.Ldexp(8640368759831959, 385),
	math.Ldexp(6503767923869541, 602),
	math.Ldexp(5662764645683412, 635),
	math.Ldexp(7953761449385755, 828),
	math.Ldexp(7953761449385755, 831),
	math.Ldexp(6018986745823044, 858),
	math.Ldexp(6018986745823044, 861),
	math.Ldexp(6018986745823044, 862),
	math.Ldexp(4787903260141515, 897),
	math.Ldexp(5349337776366262, 949),
	math.Ldexp(6073849323345086, 962),
	// Difficulty < 1e-14
	math.Ldexp(5969291480317302, -146),
	math.Ldexp(5130627738529412, -134),
	math.Ldexp(5130627738529412, -133),
	math.Ldexp(6931776026129216, -131),
	math.Ldexp(6146622122784629, -99),
	math.Ldexp(4528599518205136, -81),
	math.Ldexp(5660749397756420, -78),
	math.Ldexp(8040837212722187, -75),
	math.Ldexp(4576042559928398, 81),
	math.Ldexp(4576042559928398, 82),
	math.Ldexp(5853077692931672, 84),
	math.Ldexp(4800294408018791, 89),
	math.Ldexp(5240375412144155, 104),
	math.Ldexp(6319502805243561, 114),
	math.Ldexp(7869598596808504, 127),
	math.Ldexp(5889671799622512, 138),
	math.Ldexp(5889671799622512, 139),
	math.Ldexp(5353445750064544, 148),
	// Decimal midpoints: the shortest form removes a final '5' and
	// must round the remaining digit to even.
	2109032697706489.2, // 8436130790825957p-2
	3.8419379200351562e12,
	616658659874087.25, // rounds down to even
	593409733467153.75, // rounds up to even
	// Binary midpoints where the round-to-even convention decides.
	6.1861299179594376e16,
	280025169433345184,
	1.40737488355328e37,
	1.4073748835532801e+37,
	7.2708250389808636e19,
	1.233820315540222e+17, // golang.org/issue/29491
}

func TestShortestHard(t *testing.T) {
	for _, f := range hardFloat64s {
		checkShortest(t, f)
	}
}

func checkShortest(t *testing.T, f float64) {
	t.Helper()
	s := shortestString(f)
	back, err := strconv.ParseFloat(s, 64)
	if err != nil {
		t.Errorf("Shortest(%b) = %q: %v", f, s, err)
		return
	}
	if math.Float64bits(back) != math.Float64bits(f) {
		t.Errorf("Shortest(%b) = %q parses to %b", f, s, back)
		return
	}
	// The stdlib shortest conversion is an independent oracle for the
	// digit count.
	want := strconv.FormatFloat(f, 'e', -1, 64)
	if got, want := shortestDigits(s), stdlibDigits(want); got != want {
		t.Errorf("Shortest(%b) = %q has %d digits, stdlib %d", f, s, got, want)
	}
}

func shortestDigits(s string) int {
	mant, _, _ := strings.Cut(s, "E")
	return len(strings.Replace(mant, ".", "", 1))
}

func stdlibDigits(s string) int {
	mant, _, _ := strings.Cut(s, "e")
	return len(strings.Replace(mant, ".", "", 1))
}

/*
GenerateHardFloat64s produces floating point numbers which are hard
for the "shortest decimal" problem.

Let f  = m × 2**e (where m and e are integers)
    f+ = (2m+1) × 2**(e-1)
    f- = (2m-1) × 2**(e-1)

Let q be the smallest exponent such that 10^q × 2^e > 1, then
[f- × 10^q, f+ × 10^q] contains at least one integer, and the shortest
decimal for f is n × 10^-q where n belongs to that interval.

A floating point number f is hard if f± × 10^q is very close to an
integer. Sample mantissas for these corner cases are found by
computing continued fractions.
*/
func generateHardFloat64s() []float64 {
	var hards []float64
	for e := -1022 - 52; e <= 1023-52; e++ {
		if -10 <= e && e <= 10 {
			continue // nothing interesting here
		}

		q := int(math.Floor(math.Ln2/math.Ln10*float64(-e))) + 1

		// We are looking for a fraction x/y very close
		// to wd = 10^q × 2^(e-1), where y is a 54-bit odd integer.
		// Also, x should be a multiple of 10 to be a candidate
		// for shortest decimal.
		var y uint64
		if q >= 0 { // e < 0
			a := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(q)), nil)
			b := new(big.Int).Lsh(big.NewInt(1), uint(-(e - 1)))
			_, y = findFrac(a, b, 54)
		} else {
			a := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-q)), nil)
			b := new(big.Int).Lsh(big.NewInt(1), uint(e-1))
			_, y = findFrac(b, a, 54)
		}

		if bits.Len64(y) == 54 {
			hards = append(hards, math.Ldexp(float64(y>>1), e))
		}

		if e == -1074 {
			// also find hard denormals
			for bitlen := 30; bitlen < 54; bitlen++ {
				a := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(q)), nil)
				b := new(big.Int).Lsh(big.NewInt(1), uint(-(e - 1)))
				_, y = findFrac(a, b, bitlen)
				hards = append(hards, math.Ldexp(float64(y>>1), e))
			}
		}
	}
	return hards
}

// findFrac returns a fraction x/y very close to u/v.
func findFrac(u, v *big.Int, bitlen int) (x, y uint64) {
	for seed := uint64(1); seed < 90; seed += 3 {
		x, y = contFrac(u, v, seed, 1<<uint(bitlen-1))
		if bits.Len64(y) == bitlen && y%2 == 1 && x%10 == 0 {
			break
		}
	}
	return x, y
}

func contFrac(u, v *big.Int, seed uint64, max uint64) (x, y uint64) {
	u = new(big.Int).Set(u)
	v = new(big.Int).Set(v)
	var a, b uint64 = 1, 0
	var c, d uint64 = 0, seed
	for c < max {
		if v.BitLen() == 0 {
			break
		}
		q, r := new(big.Int), new(big.Int)
		q, r = q.DivMod(u, v, r)
		if !q.IsUint64() {
			break
		}
		quo := q.Uint64()
		a, b = quo*a+b, a
		c, d = quo*c+d, c
		u, v = v, r
	}
	return a * seed, c
}

func TestShortestHardGenerated(t *testing.T) {
	hards := generateHardFloat64s()
	t.Logf("testing %d hard float64 corner cases", len(hards))
	for _, f := range hards {
		if f == 0 || math.IsInf(f, 0) {
			continue
		}
		checkShortest(t, f)
	}
}

func TestShortestRandomRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	n := 100000
	if testing.Short() {
		n = 5000
	}
	for i := 0; i < n; i++ {
		b := r.Uint64() &^ (1 << 63)
		if b>>mantBits == 0x7FF {
			continue // Inf/NaN
		}
		checkShortest(t, math.Float64frombits(b))
	}
}

func TestShortestLengthBound(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	var buf [25]byte
	for i := 0; i < 20000; i++ {
		b := r.Uint64() &^ (1 << 63)
		if b>>mantBits == 0x7FF {
			continue
		}
		if n := Shortest(buf[:], math.Float64frombits(b)); n > 24 {
			t.Fatalf("Shortest(%016x) wrote %d bytes", b, n)
		}
	}
	// The longest possible output: 17 digits, point, 'E', '-', 3 digits.
	if n := Shortest(buf[:], 1.7800590868057611e-307); n != 24 {
		t.Errorf("expected a 24-byte output, got %d", n)
	}
}

func TestDecimalShapeInvariant(t *testing.T) {
	// The shortest kernel never produces 18 or more digits.
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 50000; i++ {
		b := r.Uint64() &^ (1 << 63)
		if b>>mantBits == 0x7FF || b == 0 {
			continue
		}
		v := d2d(b&(1<<mantBits-1), uint32(b>>mantBits))
		if v.Mantissa == 0 || v.Mantissa >= 1e17 {
			t.Fatalf("d2d(%016x) mantissa %d out of range", b, v.Mantissa)
		}
	}
}

var benchFloats = []float64{
	0.3,
	122.345,
	123456789.123456789,
	1.7800590868057611e-307,
	5e-324,
}

var benchSink int

func BenchmarkShortest(b *testing.B) {
	var buf [25]byte
	for _, f := range benchFloats {
		b.Run(fmt.Sprintf("%b", f), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				benchSink = Shortest(buf[:], f)
			}
		})
	}
}
