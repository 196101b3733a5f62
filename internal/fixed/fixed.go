// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fixed implements the fixed-point formats shared by the scan converters.
// Based on Skia's SkFDot6.h and SkFixed.h (Android/Skia heritage).
//
// Three formats are used:
//   - FDot6: 26.6 for line endpoints (64 subpixel positions)
//   - Fixed: 16.16 for slopes and interpolated ordinates
//   - FDot8: 24.8 for anti-aliased rectangle edges
package fixed

import (
	"math"

	xfixed "golang.org/x/image/math/fixed"
)

// FDot6 is a 26.6 fixed-point value. It shares its representation with
// golang.org/x/image/math/fixed.Int26_6, whose Floor, Ceil and Round methods
// match the rounding the hairline code relies on.
type FDot6 = xfixed.Int26_6

// Fixed is a 16.16 fixed-point value.
type Fixed int32

// FDot8 is a 24.8 fixed-point value.
type FDot8 int32

const (
	// FDot6Shift is the number of fractional bits in FDot6.
	FDot6Shift = 6
	// FDot6One is 1.0 in FDot6.
	FDot6One FDot6 = 1 << FDot6Shift
	// FDot6Mask extracts the fractional part of an FDot6.
	FDot6Mask FDot6 = FDot6One - 1

	// Shift is the number of fractional bits in Fixed.
	Shift = 16
	// One is 1.0 in Fixed.
	One Fixed = 1 << Shift
	// Half is 0.5 in Fixed.
	Half Fixed = One / 2

	// FDot8One is 1.0 in FDot8.
	FDot8One FDot8 = 1 << 8
)

// BadInt is the pattern produced when a NaN is truncated to int32.
// Coordinates carrying it are rejected by the hairline code.
const BadInt = math.MinInt32

// FDot6FromFloat converts f to FDot6, truncating toward zero.
// The caller must have clipped f to a range representable in 26.6.
func FDot6FromFloat(f float64) FDot6 {
	return FDot6(int32(f * float64(FDot6One)))
}

// FDot6FromInt converts an integer pixel coordinate to FDot6.
func FDot6FromInt(i int) FDot6 {
	return FDot6(int32(i) << FDot6Shift) //nolint:gosec // callers pass clipped pixel coordinates
}

// FDot6ToFixed widens an FDot6 to 16.16.
func FDot6ToFixed(f FDot6) Fixed {
	return Fixed(int32(f) << (Shift - FDot6Shift))
}

// FDot6ToFloat converts f to float64.
func FDot6ToFloat(f FDot6) float64 {
	return float64(f) / float64(FDot6One)
}

// FromFloat converts f to 16.16, truncating toward zero.
func FromFloat(f float64) Fixed {
	return Fixed(int32(f * float64(One)))
}

// Floor returns the integer part of f.
func (f Fixed) Floor() int {
	return int(f >> Shift)
}

// Ceil returns the smallest integer not less than f.
func (f Fixed) Ceil() int {
	return int((f + One - 1) >> Shift)
}

// Round returns f rounded to the nearest integer, halves up.
func (f Fixed) Round() int {
	return int((f + Half) >> Shift)
}

// Float returns f as float64.
func (f Fixed) Float() float64 {
	return float64(f) / float64(One)
}

// FastDiv returns (a << 16) / b. Both operands must be small enough that the
// shifted numerator fits in 32 bits, which holds for the sub-511 pixel deltas
// the hairline code produces.
func FastDiv(a, b FDot6) Fixed {
	if b == 0 {
		return 0
	}
	return Fixed((int64(a) << Shift) / int64(b)) //nolint:gosec // bounded by the 511px subdivision
}

// Div returns a / b in 16.16 for arbitrary 32-bit operands, saturating
// on overflow.
func Div(a, b int32) Fixed {
	if b == 0 {
		if a < 0 {
			return math.MinInt32
		}
		return math.MaxInt32
	}
	q := (int64(a) << Shift) / int64(b)
	switch {
	case q > math.MaxInt32:
		return math.MaxInt32
	case q < math.MinInt32:
		return math.MinInt32
	}
	return Fixed(q)
}

// Abs returns the absolute value of an FDot6.
func Abs(f FDot6) FDot6 {
	if f < 0 {
		return -f
	}
	return f
}

// SmallDot6Scale scales value by dot6/64, where dot6 is in [0, 64].
//
//nolint:gosec // (255 * 64) >> 6 = 255
func SmallDot6Scale(value uint8, dot6 int) uint8 {
	return uint8((int(value) * dot6) >> FDot6Shift)
}

// Contribution64 returns the fractional part of an ordinate in 64ths,
// reporting 64 rather than 0 for whole-pixel positions.
func Contribution64(ordinate FDot6) int {
	return int(((ordinate - 1) & FDot6Mask) + 1)
}

// FDot8FromFloat converts f to 24.8 rounding through 16.16, the same path
// rectangle edges take.
func FDot8FromFloat(f float64) FDot8 {
	return FixedToFDot8(FromFloat(f))
}

// FDot8FromFloatTrunc converts f to 24.8 by truncation.
func FDot8FromFloatTrunc(f float64) FDot8 {
	return FDot8(int32(f * float64(FDot8One)))
}

// FixedToFDot8 rounds a 16.16 value to 24.8.
func FixedToFDot8(f Fixed) FDot8 {
	return FDot8((f + 0x80) >> 8)
}

// Floor returns the integer part of f.
func (f FDot8) Floor() int {
	return int(f >> 8)
}

// Ceil returns the smallest integer not less than f.
func (f FDot8) Ceil() int {
	return int((f + 0xFF) >> 8)
}
