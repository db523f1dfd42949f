// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package bitvec

import (
	"slices"
	"testing"
	"unsafe"
)

func TestNbit(t *testing.T) {
	for _, x := range [...][2]int{
		{int(unsafe.Sizeof(uint8(0))) * 8, (&V[uint8]{}).nbit()},
		{int(unsafe.Sizeof(uint16(0))) * 8, (&V[uint16]{}).nbit()},
		{int(unsafe.Sizeof(uint32(0))) * 8, (&V[uint32]{}).nbit()},
		{int(unsafe.Sizeof(uint64(0))) * 8, (&V[uint64]{}).nbit()},
	} {
		if x[0] != x[1] {
			t.Fatalf("V[T].nbit:\nhave %d\nwant %d", x[1], x[0])
		}
	}
}

func TestZero(t *testing.T) {
	var v V[uint16]
	if n := v.Len(); n != 0 {
		t.Fatalf("v.Len:\nhave %d\nwant 0", n)
	}
	if n := v.Rem(); n != 0 {
		t.Fatalf("v.Rem:\nhave %d\nwant 0", n)
	}
	if _, ok := v.Search(); ok {
		t.Fatal("v.Search: unexpected success on empty vector")
	}
}

func TestGrow(t *testing.T) {
	var v V[uint32]
	for _, x := range [...]struct {
		nplus, wantLen int
	}{
		{1, 32},
		{2, 96},
		{0, 96},
		{-1, 96},
		{16, 608},
	} {
		if n, i := v.Len(), v.Grow(x.nplus); n != i {
			t.Fatalf("v.Grow:\nhave %d\nwant %d", i, n)
		}
		if n := v.Len(); n != x.wantLen {
			t.Fatalf("v.Len:\nhave %d\nwant %d", n, x.wantLen)
		}
		if n := v.Rem(); n != x.wantLen {
			t.Fatalf("v.Rem:\nhave %d\nwant %d", n, x.wantLen)
		}
	}
}

func TestEnsure(t *testing.T) {
	var v V[uint8]
	v.Ensure(0)
	if n := v.Len(); n != 0 {
		t.Fatalf("v.Len:\nhave %d\nwant 0", n)
	}
	v.Ensure(9)
	if n := v.Len(); n != 16 {
		t.Fatalf("v.Len:\nhave %d\nwant 16", n)
	}
	v.Set(3)
	v.Ensure(16)
	if n := v.Len(); n != 16 {
		t.Fatalf("v.Len:\nhave %d\nwant 16", n)
	}
	v.Ensure(17)
	if n := v.Len(); n != 24 {
		t.Fatalf("v.Len:\nhave %d\nwant 24", n)
	}
	if !v.IsSet(3) {
		t.Fatal("v.IsSet(3): bit lost after Ensure")
	}
}

func TestSetUnset(t *testing.T) {
	var v V[uint16]
	v.Grow(2)
	for _, i := range [...]int{0, 1, 15, 16, 31} {
		if !v.Set(i) {
			t.Fatalf("v.Set(%d): have false\nwant true", i)
		}
		if v.Set(i) {
			t.Fatalf("v.Set(%d) again: have true\nwant false", i)
		}
		if !v.IsSet(i) {
			t.Fatalf("v.IsSet(%d): have false\nwant true", i)
		}
	}
	if n := v.Count(); n != 5 {
		t.Fatalf("v.Count:\nhave %d\nwant 5", n)
	}
	if n := v.Rem(); n != 27 {
		t.Fatalf("v.Rem:\nhave %d\nwant 27", n)
	}
	if !v.Unset(15) || v.Unset(15) || v.IsSet(15) {
		t.Fatal("v.Unset(15): bit not unset exactly once")
	}
	v.UnsetRange(0, 17)
	if n := v.Count(); n != 1 || !v.IsSet(31) {
		t.Fatalf("v.UnsetRange: have %d set bits\nwant only bit 31", n)
	}
}

func TestSearch(t *testing.T) {
	var v V[uint8]
	v.Grow(3)
	for want := 0; want < 24; want++ {
		i, ok := v.Search()
		if !ok || i != want {
			t.Fatalf("v.Search:\nhave %d, %t\nwant %d, true", i, ok, want)
		}
		v.Set(i)
	}
	if _, ok := v.Search(); ok {
		t.Fatal("v.Search: unexpected success on full vector")
	}
	v.Unset(13)
	if i, ok := v.Search(); !ok || i != 13 {
		t.Fatalf("v.Search:\nhave %d, %t\nwant 13, true", i, ok)
	}
}

func TestClear(t *testing.T) {
	var v V[uint64]
	v.Grow(2)
	v.Set(1)
	v.Set(100)
	v.Clear()
	if n := v.Rem(); n != 128 {
		t.Fatalf("v.Rem:\nhave %d\nwant 128", n)
	}
	if v.IsSet(1) || v.IsSet(100) {
		t.Fatal("v.Clear: bits still set")
	}
}

func TestSetBits(t *testing.T) {
	var v V[uint32]
	v.Grow(3)
	want := []int{0, 5, 31, 32, 63, 95}
	for _, i := range want {
		v.Set(i)
	}
	if have := slices.Collect(v.SetBits()); !slices.Equal(have, want) {
		t.Fatalf("v.SetBits:\nhave %v\nwant %v", have, want)
	}
	var first []int
	for i := range v.SetBits() {
		first = append(first, i)
		if len(first) == 2 {
			break
		}
	}
	if !slices.Equal(first, want[:2]) {
		t.Fatalf("v.SetBits (break):\nhave %v\nwant %v", first, want[:2])
	}
}
