// Package rowconv implements the per-row pixel shufflers: pure, reentrant,
// non-allocating functions of the shape (dst []byte, src []byte, width int)
// that each convert exactly one scanline between two pixel modes. They know
// nothing about images, palettes, or modes as a type — only byte layouts —
// so the dispatch table in the parent package is the only thing that needs
// to know which shuffler serves which (src, dst) mode pair.
package rowconv

import (
	"encoding/binary"
	"math"
)

// Luma computes the ITU-R BT.601 luma of a nonlinear RGB triple, scaled by
// 1000 (i.e. Luma(r,g,b)/1000 is the 0-255 luma byte).
func Luma(r, g, b uint8) int32 {
	return int32(r)*299 + int32(g)*587 + int32(b)*114
}

// Bit2L expands a 1-mode row to L: nonzero -> 255, zero -> 0.
func Bit2L(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		if src[x] != 0 {
			dst[x] = 255
		} else {
			dst[x] = 0
		}
	}
}

// Bit2I expands a 1-mode row to I (int32 per pixel).
func Bit2I(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		v := int32(0)
		if src[x] != 0 {
			v = 255
		}
		binary.LittleEndian.PutUint32(dst[x*4:], uint32(v))
	}
}

// Bit2F expands a 1-mode row to F (float32 per pixel).
func Bit2F(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		v := float32(0)
		if src[x] != 0 {
			v = 255.0
		}
		binary.LittleEndian.PutUint32(dst[x*4:], math.Float32bits(v))
	}
}

// L2Bit thresholds an L row at 128 (>= 128 -> 255).
func L2Bit(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		if src[x] >= 128 {
			dst[x] = 255
		} else {
			dst[x] = 0
		}
	}
}

// L2I widens an L row to I.
func L2I(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		binary.LittleEndian.PutUint32(dst[x*4:], uint32(int32(src[x])))
	}
}

// L2F widens an L row to F.
func L2F(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		binary.LittleEndian.PutUint32(dst[x*4:], math.Float32bits(float32(src[x])))
	}
}

// I2L saturates an I row to L, clamping to [0, 255].
func I2L(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		v := int32(binary.LittleEndian.Uint32(src[x*4:]))
		switch {
		case v <= 0:
			dst[x] = 0
		case v >= 255:
			dst[x] = 255
		default:
			dst[x] = uint8(v)
		}
	}
}

// I2F casts an I row to F.
func I2F(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		v := int32(binary.LittleEndian.Uint32(src[x*4:]))
		binary.LittleEndian.PutUint32(dst[x*4:], math.Float32bits(float32(v)))
	}
}

// F2L saturates an F row to L via truncating cast, clamping to [0, 255].
func F2L(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		v := math.Float32frombits(binary.LittleEndian.Uint32(src[x*4:]))
		switch {
		case v <= 0.0:
			dst[x] = 0
		case v >= 255.0:
			dst[x] = 255
		default:
			dst[x] = uint8(v)
		}
	}
}

// F2I truncating-casts an F row to I.
func F2I(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		v := math.Float32frombits(binary.LittleEndian.Uint32(src[x*4:]))
		binary.LittleEndian.PutUint32(dst[x*4:], uint32(int32(v)))
	}
}

// RGB2Bit thresholds a 4-byte-per-pixel RGB-family row at luma 128000
// (i.e. luma/1000 >= 128).
func RGB2Bit(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		p := src[x*4:]
		if Luma(p[0], p[1], p[2]) >= 128000 {
			dst[x] = 255
		} else {
			dst[x] = 0
		}
	}
}

// RGB2L converts a 4-byte-per-pixel RGB-family row to L.
func RGB2L(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		p := src[x*4:]
		dst[x] = uint8(Luma(p[0], p[1], p[2]) / 1000)
	}
}

// RGB2I converts a 4-byte-per-pixel RGB-family row to I.
func RGB2I(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		p := src[x*4:]
		v := Luma(p[0], p[1], p[2]) / 1000
		binary.LittleEndian.PutUint32(dst[x*4:], uint32(v))
	}
}

// RGB2F converts a 4-byte-per-pixel RGB-family row to F.
func RGB2F(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		p := src[x*4:]
		v := float32(Luma(p[0], p[1], p[2])) / 1000.0
		binary.LittleEndian.PutUint32(dst[x*4:], math.Float32bits(v))
	}
}

// YCbCr2L takes the Y band of a 4-byte-per-pixel YCbCr row.
func YCbCr2L(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		dst[x] = src[x*4]
	}
}
