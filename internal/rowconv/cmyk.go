package rowconv

import "github.com/deepteams/pixconv/internal/clip"

// Bit2CMYK expands a 1-mode row to CMYK: (0, 0, 0, 255 if bit clear else 0).
func Bit2CMYK(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		d := dst[x*4:]
		d[0], d[1], d[2] = 0, 0, 0
		if src[x] != 0 {
			d[3] = 0
		} else {
			d[3] = 255
		}
	}
}

// L2CMYK expands an L row to CMYK: (0, 0, 0, ~v).
func L2CMYK(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		d := dst[x*4:]
		d[0], d[1], d[2] = 0, 0, 0
		d[3] = ^src[x]
	}
}

// RGB2CMYK converts a 4-byte-per-pixel RGB-family row to CMYK via
// (~r, ~g, ~b, 0), with no undercolor removal.
func RGB2CMYK(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		s, d := src[x*4:], dst[x*4:]
		d[0] = ^s[0]
		d[1] = ^s[1]
		d[2] = ^s[2]
		d[3] = 0
	}
}

// CMYK2RGB converts a CMYK row to a 4-byte-per-pixel RGB-family row:
// channel_i = saturate(255 - (c_i + k)); alpha forced to 255.
func CMYK2RGB(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		s, d := src[x*4:], dst[x*4:]
		k := int(s[3])
		d[0] = clip.Clip8(255 - (int(s[0]) + k))
		d[1] = clip.Clip8(255 - (int(s[1]) + k))
		d[2] = clip.Clip8(255 - (int(s[2]) + k))
		d[3] = 255
	}
}
