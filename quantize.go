package pixconv

import (
	"github.com/deepteams/pixconv/internal/clip"
	"github.com/deepteams/pixconv/internal/pool"
	"github.com/deepteams/pixconv/internal/rowconv"
	"github.com/deepteams/pixconv/palette"
)

// expandPaletteRow writes width RGBA pixels into dst by looking each src
// index up in pal.
func expandPaletteRow(dst, src []byte, pal *Palette, width int) {
	for x := 0; x < width; x++ {
		e := pal.Entries[src[x]]
		d := dst[x*4:]
		d[0], d[1], d[2], d[3] = e.R, e.G, e.B, e.A
	}
}

// fromPalette implements §4.4's "From palette" expansion: a ModeP source
// is expanded through its palette to one 4-byte RGBA pixel per index, then
// the standard RGB-family row shuffler for destMode is applied. RGBA and
// RGBX both take the palette's alpha byte directly (no forcing to 255),
// matching the source's use of p2rgba for both.
func fromPalette(c Container, out Image, src Image, pal *Palette, destMode Mode) (Image, error) {
	outImg, err := c.NewLike(destMode, src.Width(), src.Height(), out, src)
	if err != nil {
		return nil, err
	}

	width, height := src.Width(), src.Height()
	expanded := pool.Get(width * 4)
	defer pool.Put(expanded)

	for y := 0; y < height; y++ {
		expandPaletteRow(expanded, src.RowIndices(y), pal, width)
		dstRow := outImg.RowBytes(y)

		switch destMode {
		case ModeRGBA, ModeRGBX:
			copy(dstRow[:width*4], expanded[:width*4])
		case ModeRGB:
			rowconv.CopyRGBForceAlpha(dstRow, expanded, width)
		case ModeL:
			rowconv.RGB2L(dstRow, expanded, width)
		case Mode1:
			rowconv.RGB2Bit(dstRow, expanded, width)
		case ModeI:
			rowconv.RGB2I(dstRow, expanded, width)
		case ModeF:
			rowconv.RGB2F(dstRow, expanded, width)
		case ModeCMYK:
			rowconv.RGB2CMYK(dstRow, expanded, width)
		case ModeYCbCr:
			rowconv.RGB2YCbCr(dstRow, expanded, width)
		default:
			c.Delete(outImg)
			return nil, errNotSupported(ModeP, destMode)
		}
	}

	return outImg, nil
}

// toPalette implements §4.4's "To palette" quantization. The caller-
// supplied palette, if any, is ignored: the source always synthesizes a
// greyscale ramp for single-band sources or the browser colour cube
// otherwise, matching the source's behavior (see the "Palette selection on
// to-palette" note in DESIGN.md's open-question log).
func toPalette(c Container, out Image, src Image, dither bool) (Image, error) {
	srcMode := src.ModeOf()
	if srcMode != ModeL && !srcMode.IsRGBFamily() {
		return nil, errNotSupported(srcMode, ModeP)
	}

	width, height := src.Width(), src.Height()

	var synth *Palette
	if srcMode.Bands() == 1 {
		synth = palette.New()
	} else {
		synth = palette.NewBrowserCube()
	}

	outImg, err := c.NewLike(ModeP, width, height, out, src)
	if err != nil {
		return nil, err
	}
	outImg.SetPalette(synth.Duplicate())

	if srcMode.Bands() == 1 {
		for y := 0; y < height; y++ {
			copy(outImg.RowIndices(y)[:width], src.RowBytes(y)[:width])
		}
		return outImg, nil
	}

	synth.Prepare()
	defer synth.Discard()

	if dither {
		quantizeDither(outImg, src, synth, width, height)
	} else {
		quantizeClosest(outImg, src, synth, width, height)
	}
	return outImg, nil
}

// quantizeClosest maps each pixel to its nearest palette entry with no
// error diffusion.
func quantizeClosest(outImg, src Image, pal *Palette, width, height int) {
	for y := 0; y < height; y++ {
		srcRow := src.RowBytes(y)
		dstIdx := outImg.RowIndices(y)
		for x := 0; x < width; x++ {
			p := srcRow[x*4:]
			dstIdx[x] = pal.Nearest(p[0], p[1], p[2])
		}
	}
}

// quantizeDither maps each pixel to its nearest palette entry using
// Floyd-Steinberg error diffusion. Error is tracked as two rolling W+2
// scratch rows per channel (current row's carried-right error, and the
// next row's accumulated contributions), holding the *unscaled* weighted
// residual so the single divide-by-16 happens once at read time instead of
// once per weight — the same deferred-division trick the source's three-
// accumulator state machine uses, just spelled out with the four weights
// applied explicitly as DESIGN.md's notes prefer.
func quantizeDither(outImg, src Image, pal *Palette, width, height int) {
	errCurrR := make([]int32, width+2)
	errCurrG := make([]int32, width+2)
	errCurrB := make([]int32, width+2)
	errNextR := make([]int32, width+2)
	errNextG := make([]int32, width+2)
	errNextB := make([]int32, width+2)

	for y := 0; y < height; y++ {
		for i := range errNextR {
			errNextR[i], errNextG[i], errNextB[i] = 0, 0, 0
		}

		srcRow := src.RowBytes(y)
		dstIdx := outImg.RowIndices(y)

		for x := 0; x < width; x++ {
			p := srcRow[x*4:]
			r := clip.Clip8(int(p[0]) + int(errCurrR[x+1])/16)
			g := clip.Clip8(int(p[1]) + int(errCurrG[x+1])/16)
			b := clip.Clip8(int(p[2]) + int(errCurrB[x+1])/16)

			idx := pal.Nearest(r, g, b)
			dstIdx[x] = idx

			e := pal.Entries[idx]
			diffuse(errCurrR, errNextR, x, int32(r)-int32(e.R))
			diffuse(errCurrG, errNextG, x, int32(g)-int32(e.G))
			diffuse(errCurrB, errNextB, x, int32(b)-int32(e.B))
		}

		errCurrR, errNextR = errNextR, errCurrR
		errCurrG, errNextG = errNextG, errCurrG
		errCurrB, errNextB = errNextB, errCurrB
	}
}

// diffuse spreads residual d from column x across the Floyd-Steinberg
// kernel: 7/16 to the right (same row), 3/16 below-left, 5/16 below, 1/16
// below-right. curr and next are indexed with a +1 offset so column -1 and
// column width are addressable without a bounds check.
func diffuse(curr, next []int32, x int, d int32) {
	curr[x+2] += d * 7
	next[x] += d * 3
	next[x+1] += d * 5
	next[x+2] += d * 1
}
