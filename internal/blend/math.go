// Package blend provides the 8-bit coverage arithmetic shared by the
// rasterizer, the clip combiner and the clip-applying blitter.
//
// The div255 family avoids integer division by using shifts and addition.
// These run once per pixel or per run in every clip operation.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255 divides x by 255 exactly for every x in [0, 255*255+128].
//
// Formula: (x + (x >> 8)) >> 8
func div255(x uint32) uint32 {
	return (x + (x >> 8)) >> 8
}

// MulDiv255Round returns round(a*b/255) without a division.
//
// Formula: p = a*b + 128; (p + (p >> 8)) >> 8
func MulDiv255Round(a, b uint8) uint8 {
	return uint8(div255(uint32(a)*uint32(b) + 128)) //nolint:gosec // bounded by 255
}

// Alpha255To256 maps [0, 255] to [0, 256] so that 255 scales by exactly one.
func Alpha255To256(a uint8) uint32 {
	return uint32(a) + 1
}

// AlphaMul scales value by scale256/256.
func AlphaMul(value uint32, scale256 uint32) uint32 {
	return (value * scale256) >> 8
}

// InvAlphaMul returns the coverage of two independent partial coverages,
// 1 - (1-a)(1-b), in 8-bit arithmetic.
func InvAlphaMul(a, b uint8) uint8 {
	return a + b - MulDiv255Round(a, b)
}

// CatchOverflow maps an accumulated coverage in [0, 256] to [0, 255].
func CatchOverflow(alpha int) uint8 {
	if alpha > 256 {
		alpha = 256
	}
	return uint8(alpha - (alpha >> 8)) //nolint:gosec // bounded by 255 after overflow correction
}
