package rowconv

import "encoding/binary"

// Bit2RGB expands a 1-mode row into a 4-byte-per-pixel RGB-family row:
// each bit becomes (v, v, v, 255). The same function serves RGB, RGBA,
// and RGBX destinations since all three always carry four stored bytes.
func Bit2RGB(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		v := byte(0)
		if src[x] != 0 {
			v = 255
		}
		d := dst[x*4:]
		d[0], d[1], d[2], d[3] = v, v, v, 255
	}
}

// L2RGB replicates an L row's luma into three channels with alpha=255.
// Serves RGB, RGBA, and RGBX destinations.
func L2RGB(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		v := src[x]
		d := dst[x*4:]
		d[0], d[1], d[2], d[3] = v, v, v, 255
	}
}

// CopyRGBForceAlpha copies the first three bytes of each 4-byte-per-pixel
// source pixel and forces the fourth to 255. This single function serves
// every RGB<->RGBA<->RGBX pairing the dispatch table needs: the source's
// rgb2rgba and rgba2rgb converters are byte-identical,
// so there is no reason to keep them as separate functions here either.
func CopyRGBForceAlpha(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		s, d := src[x*4:], dst[x*4:]
		d[0], d[1], d[2], d[3] = s[0], s[1], s[2], 255
	}
}

// RGBA2RGBa premultiplies the RGB channels of a straight-alpha RGBA row by
// their own alpha, using the exact MULDIV255 rounding: out = ((in*a + 128)
// + ((in*a + 128) >> 8)) >> 8. Alpha is copied through unchanged.
func RGBA2RGBa(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		s, d := src[x*4:], dst[x*4:]
		a := uint32(s[3])
		for c := 0; c < 3; c++ {
			tmp := uint32(s[c])*a + 128
			d[c] = byte((tmp + (tmp >> 8)) >> 8)
		}
		d[3] = s[3]
	}
}

// RGB2BGR15 packs a 4-byte-per-pixel RGB-family row into 2-byte BGR;15
// pixels: 0RRRRRGGGGGBBBBB.
func RGB2BGR15(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		s := src[x*4:]
		v := uint16(s[0]>>3)<<10 | uint16(s[1]>>3)<<5 | uint16(s[2]>>3)
		binary.LittleEndian.PutUint16(dst[x*2:], v)
	}
}

// RGB2BGR16 packs a 4-byte-per-pixel RGB-family row into 2-byte BGR;16
// pixels: RRRRRGGGGGGBBBBB.
func RGB2BGR16(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		s := src[x*4:]
		v := uint16(s[0]>>3)<<11 | uint16(s[1]>>2)<<5 | uint16(s[2]>>3)
		binary.LittleEndian.PutUint16(dst[x*2:], v)
	}
}

// RGB2BGR24 packs a 4-byte-per-pixel RGB-family row into 3-byte BGR;24
// pixels, byte order b, g, r.
func RGB2BGR24(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		s, d := src[x*4:], dst[x*3:]
		d[0], d[1], d[2] = s[2], s[1], s[0]
	}
}
