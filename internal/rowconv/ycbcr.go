package rowconv

import "github.com/deepteams/pixconv/internal/yuv"

// Bit2YCbCr expands a 1-mode row to YCbCr: (v, 128, 128, 255).
func Bit2YCbCr(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		v := byte(0)
		if src[x] != 0 {
			v = 255
		}
		d := dst[x*4:]
		d[0], d[1], d[2], d[3] = v, 128, 128, 255
	}
}

// L2YCbCr expands an L row to YCbCr: (v, 128, 128, 255).
func L2YCbCr(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		v := src[x]
		d := dst[x*4:]
		d[0], d[1], d[2], d[3] = v, 128, 128, 255
	}
}

// RGB2YCbCr converts a 4-byte-per-pixel RGB-family row to YCbCr, delegating
// the per-pixel transform to the yuv collaborator.
func RGB2YCbCr(dst, src []byte, width int) {
	yuv.RowRGBToYCbCr(dst, src, width)
}

// YCbCr2RGB converts a YCbCr row back to a 4-byte-per-pixel RGB row,
// delegating the per-pixel transform to the yuv collaborator.
func YCbCr2RGB(dst, src []byte, width int) {
	yuv.RowYCbCrToRGB(dst, src, width)
}
