//
// Copyright (c) 2026 The NeuronVeil Authors
//
// All rights reserved.
//

// Package fixedpoint implements the Com scalar: a 16-bit wrapping
// signed fixed-point number with 4 fractional bits, and the CSPRNG
// sampling primitives used to generate shares of it.
package fixedpoint

import (
	"encoding/json"
	"math"
)

// FractionBits is the number of fractional bits in a Com value.
const FractionBits = 4

// Fraction is 2^FractionBits, the scale factor between a Com's raw
// integer representation and its fixed-point value.
const Fraction = 1 << FractionBits

// Com is a 16-bit signed fixed-point scalar with FractionBits
// fractional bits. All arithmetic wraps modulo 2^16, matching the
// semantics of a Rust Wrapping<i16>.
type Com struct {
	raw int16
}

// Zero is the additive identity.
var Zero = Com{raw: 0}

// One is the multiplicative identity in raw units (i.e. 1.0 in
// fixed-point, not raw integer 1).
var One = Com{raw: Fraction}

// FromRaw constructs a Com from its raw wrapped integer
// representation, with no scaling applied.
func FromRaw(raw int16) Com {
	return Com{raw: raw}
}

// FromBits constructs a Com from an unsigned 16-bit pattern. Used by
// the DDCF evaluator, which masks the sign bit with a constant like
// 0x7FFF.
func FromBits(bits uint16) Com {
	return Com{raw: int16(bits)}
}

// ToBits returns the raw two's-complement bit pattern of c as an
// int16, for callers (e.g. the DDCF evaluator) that need to mask
// individual bits.
func (c Com) ToBits() int16 {
	return c.raw
}

// Raw returns the raw wrapped integer representation.
func (c Com) Raw() int16 {
	return c.raw
}

// FromFloat32 converts a plaintext float into its fixed-point
// representation: from_f32(x) = floor(x * 16) as i16.
func FromFloat32(x float32) Com {
	return Com{raw: int16(int32(math.Floor(float64(x * Fraction))))}
}

// ToFloat32 converts a Com back to its plaintext float representation.
func (c Com) ToFloat32() float32 {
	return float32(c.raw) / Fraction
}

// Add returns c + other, wrapping on overflow.
func (c Com) Add(other Com) Com {
	return Com{raw: c.raw + other.raw}
}

// Sub returns c - other, wrapping on overflow.
func (c Com) Sub(other Com) Com {
	return Com{raw: c.raw - other.raw}
}

// Mul returns the raw (unscaled) product of c and other. Callers that
// want a fixed-point product must call AdjustProduct exactly once on
// the result to restore units.
func (c Com) Mul(other Com) Com {
	return Com{raw: c.raw * other.raw}
}

// Div returns the raw (unscaled) quotient of c and other.
func (c Com) Div(other Com) Com {
	return Com{raw: c.raw / other.raw}
}

// Neg returns the additive inverse of c.
func (c Com) Neg() Com {
	return Com{raw: -c.raw}
}

// Not returns the bitwise complement of c's raw representation.
func (c Com) Not() Com {
	return Com{raw: ^c.raw}
}

// And returns the bitwise AND of c's raw representation with a
// constant mask.
func (c Com) And(mask uint16) Com {
	return Com{raw: c.raw & int16(mask)}
}

// AdjustProduct rescales a raw product by dividing by 2^FractionBits,
// restoring fixed-point units. It must be applied exactly once per
// user-level multiplication of two Com values.
func AdjustProduct(raw Com) Com {
	return raw.Div(Com{raw: Fraction})
}

// Msb returns the most significant bit (the sign bit) of c's raw
// representation.
func (c Com) Msb() bool {
	return (uint16(c.raw)>>15)&1 == 1
}

// Equal reports whether c and other have the same raw representation.
func (c Com) Equal(other Com) bool {
	return c.raw == other.raw
}

// MarshalJSON encodes c as its raw int16, since raw is unexported and
// the wire format (spec §6) only ever needs the bit pattern, never a
// human-readable float.
func (c Com) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.raw)
}

// UnmarshalJSON decodes a raw int16 into c.
func (c *Com) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &c.raw)
}
