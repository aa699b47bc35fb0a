//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.
//

package fixedpoint

import (
	"math"
	"testing"
)

func TestFromFloat32ToFloat32RoundTrip(t *testing.T) {
	for _, x := range []float32{0, 1, -1, 2048 - 1.0/16, -2048, 0.0625, -0.0625, 127.5} {
		c := FromFloat32(x)
		got := c.ToFloat32()
		if math.Abs(float64(got-x)) > 1.0/16+1e-6 {
			t.Errorf("FromFloat32(%v).ToFloat32() = %v, want within 1/16", x, got)
		}
	}
}

func TestFromFloat32Identity(t *testing.T) {
	// from_f32 . to_f32 is identity on values representable in 4
	// fractional bits.
	for raw := int16(-100); raw < 100; raw++ {
		c := FromRaw(raw)
		back := FromFloat32(c.ToFloat32())
		if !back.Equal(c) {
			t.Errorf("round trip mismatch for raw=%d: got raw=%d", raw, back.Raw())
		}
	}
}

func TestWrappingArithmetic(t *testing.T) {
	max := FromRaw(32767)
	got := max.Add(FromRaw(1))
	if got.Raw() != -32768 {
		t.Errorf("Add overflow wrap = %d, want -32768", got.Raw())
	}
}

func TestAdjustProduct(t *testing.T) {
	a := FromFloat32(2.5)
	b := FromFloat32(4.0)
	product := AdjustProduct(a.Mul(b))
	got := product.ToFloat32()
	want := float32(10.0)
	if math.Abs(float64(got-want)) > 1.0/16 {
		t.Errorf("AdjustProduct(2.5*4.0) = %v, want ~%v", got, want)
	}
}

func TestMsb(t *testing.T) {
	if FromRaw(1).Msb() {
		t.Error("Msb(1) = true, want false")
	}
	if !FromRaw(-1).Msb() {
		t.Error("Msb(-1) = false, want true")
	}
	if !FromRaw(-32768).Msb() {
		t.Error("Msb(-32768) = false, want true")
	}
}

func TestZeroOne(t *testing.T) {
	if Zero.Raw() != 0 {
		t.Errorf("Zero.Raw() = %d, want 0", Zero.Raw())
	}
	if One.Raw() != 16 {
		t.Errorf("One.Raw() = %d, want 16", One.Raw())
	}
}
