// Copyright 2025 The Ryu-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ryu

import (
	"math/big"
	"math/rand"
	"testing"
)

// The static tables are generated offline; these tests re-derive them
// from exact big.Int arithmetic.

func TestPow5SplitTable(t *testing.T) {
	pow := big.NewInt(1)
	five := big.NewInt(5)
	for i := range pow5Split {
		want := new(big.Int).Set(pow)
		if b := pow.BitLen(); b <= pow5Bitcount {
			want.Lsh(want, uint(pow5Bitcount-b))
		} else {
			want.Rsh(want, uint(b-pow5Bitcount))
		}
		if got := bigFromPair(&pow5Split[i]); got.Cmp(want) != 0 {
			t.Fatalf("pow5Split[%d] = %v, want %v", i, got, want)
		}
		pow.Mul(pow, five)
	}
}

func TestPow5InvSplitTable(t *testing.T) {
	for q := range pow5InvSplit {
		pow := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(q)), nil)
		want := new(big.Int).Lsh(big.NewInt(1), uint(pow5bits(int32(q))-1+pow5InvBitcount))
		want.Div(want, pow)
		want.Add(want, big.NewInt(1))
		if got := bigFromPair(&pow5InvSplit[q]); got.Cmp(want) != 0 {
			t.Fatalf("pow5InvSplit[%d] = %v, want %v", q, got, want)
		}
	}
}

// checkBlocks verifies that the pow10 tables reproduce the exact
// 9-digit blocks of m2 * 2^e2 through mulShiftMod1e9.
func checkBlocks(t *testing.T, m2 uint64, e2 int32) {
	t.Helper()
	mod := big.NewInt(1e9)
	exact := new(big.Int).SetUint64(m2)
	var down uint
	if e2 >= 0 {
		exact.Lsh(exact, uint(e2))
	} else {
		down = uint(-e2)
	}

	if e2 >= -52 {
		idx := uint32(0)
		if e2 > 0 {
			idx = indexForExponent(uint32(e2))
		}
		p10bits := int32(pow10BitsForIndex(idx))
		for i := int32(lengthForIndex(idx)) - 1; i >= 0; i-- {
			got := mulShiftMod1e9(m2<<8, &pow10Split[int32(pow10Offset[idx])+i], p10bits-e2+8)
			want := new(big.Int).Rsh(exact, down)
			want.Div(want, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(9*i)), nil))
			want.Mod(want, mod)
			if uint64(got) != want.Uint64() {
				t.Fatalf("integer block %d of %d*2^%d = %d, want %v", i, m2, e2, got, want)
			}
		}
	}
	if e2 < 0 {
		idx := int32(-e2) / 16
		j := pow10AdditionalBits + (-e2 - 16*idx) + 8
		for i := int32(0); i < int32(-e2+8)/9+1; i++ {
			var got uint32
			if i >= int32(minBlock2[idx]) {
				if p := uint32(pow10Offset2[idx]) + uint32(i) - uint32(minBlock2[idx]); p < uint32(pow10Offset2[idx+1]) {
					got = mulShiftMod1e9(m2<<8, &pow10Split2[p], j)
				}
			}
			want := new(big.Int).SetUint64(m2)
			want.Mul(want, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(9*(i+1))), nil))
			want.Rsh(want, down)
			want.Mod(want, mod)
			if uint64(got) != want.Uint64() {
				t.Fatalf("fraction block %d of %d*2^%d = %d, want %v", i, m2, e2, got, want)
			}
		}
	}
}

func TestPow10TablesExhaustiveExponents(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for e2 := int32(-1074); e2 <= 971; e2++ {
		m2 := 1<<mantBits | r.Uint64()&(1<<mantBits-1)
		if e2 < -1022-52+1 {
			m2 = r.Uint64()&(1<<mantBits-1) | 1 // subnormal range
		}
		checkBlocks(t, m2, e2)
	}
}

func TestPow10TablesEdgeMantissas(t *testing.T) {
	for _, e2 := range []int32{-1074, -1073, -53, -52, -17, -16, -15, -1, 0, 1, 15, 16, 17, 955, 970, 971} {
		for _, m2 := range []uint64{1, 2, 1<<52 - 1, 1 << 52, 1<<53 - 1} {
			checkBlocks(t, m2, e2)
		}
	}
}
