// Copyright 2025 The Ryu-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ryu

import (
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"testing"
)

// The integer log approximations use magic constants; correctness over
// their full input ranges is verified here against exact big.Int
// arithmetic.

func TestLog10Pow2(t *testing.T) {
	pow := big.NewInt(1)
	two := big.NewInt(2)
	for e := int32(0); e <= 1650; e++ {
		want := uint32(len(pow.Text(10)) - 1) // floor(log10(2^e))
		if got := log10Pow2(e); got != want {
			t.Fatalf("log10Pow2(%d) = %d, want %d", e, got, want)
		}
		pow.Mul(pow, two)
	}
}

func TestLog10Pow5(t *testing.T) {
	pow := big.NewInt(1)
	five := big.NewInt(5)
	for e := int32(0); e <= 2620; e++ {
		want := uint32(len(pow.Text(10)) - 1)
		if got := log10Pow5(e); got != want {
			t.Fatalf("log10Pow5(%d) = %d, want %d", e, got, want)
		}
		pow.Mul(pow, five)
	}
}

func TestPow5bits(t *testing.T) {
	if got := pow5bits(0); got != 1 {
		t.Fatalf("pow5bits(0) = %d, want 1", got)
	}
	pow := big.NewInt(1)
	five := big.NewInt(5)
	for e := int32(1); e <= 3528; e++ {
		pow.Mul(pow, five)
		want := int32(pow.BitLen()) // ceil(log2(5^e)) since 5^e is no power of two
		if got := pow5bits(e); got != want {
			t.Fatalf("pow5bits(%d) = %d, want %d", e, got, want)
		}
	}
}

func TestDecimalLength(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	for i := 0; i < 100000; i++ {
		v32 := r.Uint32() % 1e9
		if got, want := decimalLength9(v32), uint32(len(strconv.FormatUint(uint64(v32), 10))); got != want {
			t.Fatalf("decimalLength9(%d) = %d, want %d", v32, got, want)
		}
		v64 := r.Uint64() % 1e17
		if got, want := decimalLength17(v64), uint32(len(strconv.FormatUint(v64, 10))); got != want {
			t.Fatalf("decimalLength17(%d) = %d, want %d", v64, got, want)
		}
	}
	// Boundaries of every rung.
	for p := uint64(1); p < 1e17; p *= 10 {
		if got, want := decimalLength17(p), uint32(len(strconv.FormatUint(p, 10))); got != want {
			t.Fatalf("decimalLength17(%d) = %d, want %d", p, got, want)
		}
		if got, want := decimalLength17(p-1), uint32(len(strconv.FormatUint(p-1, 10))); p > 1 && got != want {
			t.Fatalf("decimalLength17(%d) = %d, want %d", p-1, got, want)
		}
	}
}

func TestPow5Factor(t *testing.T) {
	tests := []struct {
		v    uint64
		want uint32
	}{
		{1, 0}, {2, 0}, {5, 1}, {10, 1}, {25, 2}, {125, 3},
		{7812500, 9}, {1 << 60, 0},
		{19073486328125, 19},     // 5^19
		{1000000000000000, 15},   // 10^15 = 2^15 * 5^15
	}
	for _, test := range tests {
		if got := pow5Factor(test.v); got != test.want {
			t.Errorf("pow5Factor(%d) = %d, want %d", test.v, got, test.want)
		}
	}
	if !multipleOfPowerOf5(19073486328125, 19) || multipleOfPowerOf5(19073486328125, 20) {
		t.Error("multipleOfPowerOf5 miscounts 5^19")
	}
	if !multipleOfPowerOf2(1<<20, 20) || multipleOfPowerOf2(1<<20|1, 1) {
		t.Error("multipleOfPowerOf2 misreads trailing zero bits")
	}
}

func TestShiftright128(t *testing.T) {
	r := rand.New(rand.NewSource(14))
	for i := 0; i < 100000; i++ {
		lo, hi := r.Uint64(), r.Uint64()
		dist := uint32(r.Intn(63) + 1)
		v := new(big.Int).Lsh(new(big.Int).SetUint64(hi), 64)
		v.Or(v, new(big.Int).SetUint64(lo))
		v.Rsh(v, uint(dist))
		want := new(big.Int).And(v, new(big.Int).SetUint64(math.MaxUint64)).Uint64()
		if got := shiftright128(lo, hi, dist); got != want {
			t.Fatalf("shiftright128(%#x, %#x, %d) = %#x, want %#x", lo, hi, dist, got, want)
		}
	}
}

func TestMulShift64(t *testing.T) {
	r := rand.New(rand.NewSource(15))
	for i := 0; i < 50000; i++ {
		m := r.Uint64() & (1<<55 - 1)
		mul := [2]uint64{r.Uint64(), r.Uint64() & (1<<60 - 1)}
		j := int32(r.Intn(58-49+1) + 49 + 64)
		prod := new(big.Int).Mul(new(big.Int).SetUint64(m), bigFromPair(&mul))
		prod.Rsh(prod, uint(j))
		want := new(big.Int).And(prod, new(big.Int).SetUint64(math.MaxUint64)).Uint64()
		if got := mulShift64(m, &mul, j); got != want {
			t.Fatalf("mulShift64(%d, %v, %d) = %d, want %d", m, mul, j, got, want)
		}
	}
}

func TestMulShiftMod1e9(t *testing.T) {
	r := rand.New(rand.NewSource(16))
	mod := big.NewInt(1e9)
	for i := 0; i < 50000; i++ {
		m := r.Uint64() & (1<<61 - 1)
		mul := [3]uint64{r.Uint64(), r.Uint64(), r.Uint64() & (1<<54 - 1)}
		j := int32(128 + r.Intn(53))
		prod := new(big.Int).Mul(new(big.Int).SetUint64(m), bigFromTriple(&mul))
		prod.Rsh(prod, uint(j))
		prod.Mod(prod, mod)
		want := uint32(prod.Uint64())
		if got := mulShiftMod1e9(m, &mul, j); got != want {
			t.Fatalf("mulShiftMod1e9(%d, %v, %d) = %d, want %d", m, mul, j, got, want)
		}
	}
}

func bigFromPair(w *[2]uint64) *big.Int {
	v := new(big.Int).Lsh(new(big.Int).SetUint64(w[1]), 64)
	return v.Or(v, new(big.Int).SetUint64(w[0]))
}

func bigFromTriple(w *[3]uint64) *big.Int {
	v := new(big.Int).Lsh(new(big.Int).SetUint64(w[2]), 64)
	v.Or(v, new(big.Int).SetUint64(w[1]))
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(w[0]))
}
