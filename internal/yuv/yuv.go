// Package yuv implements the RGB<->YCbCr transform collaborator the
// dispatch table delegates to for the RGB/RGBA -> YCbCr and YCbCr -> RGB
// row shufflers.
//
// The coefficients are the full-range JFIF/ITU-R BT.601 matrix (the same
// one the luma weights used throughout this engine are drawn from), fixed
// point at 16 bits in the same style as webp's dsp.YUVToR/G/B — scaled
// integer multiplies with a rounding bias, table-free since these are
// full-range (no [16,235] clamp table is needed the way webp's limited
// -range decode path needs one).
package yuv

import "github.com/deepteams/pixconv/internal/clip"

const (
	fix  = 16
	half = 1 << (fix - 1)
)

// Forward (RGB -> YCbCr) coefficients, scaled by 1<<16.
const (
	yR, yG, yB = 19595, 38470, 7471
	cbR, cbG   = -11059, -21709
	cbB        = 32768
	crR        = 32768
	crG, crB   = -27439, -5329
)

// Inverse (YCbCr -> RGB) coefficients, scaled by 1<<16.
const (
	rCr       = 91881
	gCb, gCr  = -22554, -46802
	bCb       = 116130
)

// RGBToYCbCr converts one full-range RGB triple to YCbCr.
func RGBToYCbCr(r, g, b uint8) (y, cb, cr uint8) {
	ri, gi, bi := int(r), int(g), int(b)
	y = clip.Clip8((yR*ri + yG*gi + yB*bi + half) >> fix)
	cb = clip.Clip8((cbR*ri+cbG*gi+cbB*bi+half)>>fix + 128)
	cr = clip.Clip8((crR*ri+crG*gi+crB*bi+half)>>fix + 128)
	return
}

// YCbCrToRGB converts one YCbCr triple back to RGB.
func YCbCrToRGB(y, cb, cr uint8) (r, g, b uint8) {
	yi := int(y)
	cbo := int(cb) - 128
	cro := int(cr) - 128
	r = clip.Clip8(yi + (rCr*cro+half)>>fix)
	g = clip.Clip8(yi + (gCb*cbo+gCr*cro+half)>>fix)
	b = clip.Clip8(yi + (bCb*cbo+half)>>fix)
	return
}

// RowRGBToYCbCr converts width RGB-family pixels (4 bytes/pixel, first
// three meaningful) from src into 4-byte YCbCr pixels in dst, writing 255
// into the fourth byte of each.
func RowRGBToYCbCr(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		si, di := x*4, x*4
		y, cb, cr := RGBToYCbCr(src[si], src[si+1], src[si+2])
		dst[di+0] = y
		dst[di+1] = cb
		dst[di+2] = cr
		dst[di+3] = 255
	}
}

// RowYCbCrToRGB converts width 4-byte YCbCr pixels from src into 4-byte
// RGB pixels in dst, writing 255 into the fourth byte of each.
func RowYCbCrToRGB(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		si, di := x*4, x*4
		r, g, b := YCbCrToRGB(src[si], src[si+1], src[si+2])
		dst[di+0] = r
		dst[di+1] = g
		dst[di+2] = b
		dst[di+3] = 255
	}
}
