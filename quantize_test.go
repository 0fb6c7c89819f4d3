package pixconv_test

import (
	"testing"

	"github.com/deepteams/pixconv"
	"github.com/deepteams/pixconv/raster"
)

func TestFromPaletteRGBAPreservesAlpha(t *testing.T) {
	c := raster.Container{}
	src := raster.New(pixconv.ModeP, 1, 1)
	pal := newTestPalette()
	pal.Entries[9] = paletteEntry(1, 2, 3, 77)
	src.SetPalette(pal)
	src.RowIndices(0)[0] = 9

	out, err := pixconv.Convert(c, src, pixconv.Options{DestMode: pixconv.ModeRGBA})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	row := out.RowBytes(0)
	if row[3] != 77 {
		t.Fatalf("RGBA expansion alpha = %d, want 77 (palette alpha preserved)", row[3])
	}
}

func TestFromPaletteRGBForcesAlpha(t *testing.T) {
	c := raster.Container{}
	src := raster.New(pixconv.ModeP, 1, 1)
	pal := newTestPalette()
	pal.Entries[9] = paletteEntry(1, 2, 3, 77)
	src.SetPalette(pal)
	src.RowIndices(0)[0] = 9

	out, err := pixconv.Convert(c, src, pixconv.Options{DestMode: pixconv.ModeRGB})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	row := out.RowBytes(0)
	if row[3] != 255 {
		t.Fatalf("RGB expansion alpha = %d, want 255 (forced)", row[3])
	}
}

func TestToPaletteSingleBandCopiesIndicesDirectly(t *testing.T) {
	c := raster.Container{}
	src := raster.New(pixconv.ModeL, 3, 1)
	row := src.RowBytes(0)
	row[0], row[1], row[2] = 0, 128, 255

	out, err := pixconv.Convert(c, src, pixconv.Options{DestMode: pixconv.ModeP})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	idx := out.RowIndices(0)
	if idx[0] != 0 || idx[1] != 128 || idx[2] != 255 {
		t.Fatalf("single-band to-palette indices = %v, want [0 128 255]", idx)
	}
	e := out.Palette().Entries[128]
	if e.R != 128 || e.G != 128 || e.B != 128 {
		t.Fatalf("grey-ramp entry 128 = %v, want (128,128,128,_)", e)
	}
}

func TestToPaletteDitherStaysWithinGamut(t *testing.T) {
	c := raster.Container{}
	src := raster.New(pixconv.ModeRGB, 8, 8)
	for y := 0; y < 8; y++ {
		row := src.RowBytes(y)
		for x := 0; x < 8; x++ {
			p := row[x*4:]
			p[0], p[1], p[2], p[3] = byte((x*37+y*11)%256), byte((x*53)%256), byte((y*97)%256), 255
		}
	}

	out, err := pixconv.Convert(c, src, pixconv.Options{DestMode: pixconv.ModeP, Dither: true})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	for y := 0; y < 8; y++ {
		for _, idx := range out.RowIndices(y) {
			_ = out.Palette().Entries[idx] // panics (index out of range) if idx is ever invalid
		}
	}
}

func TestToPaletteUnsupportedSource(t *testing.T) {
	c := raster.Container{}
	src := raster.New(pixconv.ModeCMYK, 1, 1)
	_, err := pixconv.Convert(c, src, pixconv.Options{DestMode: pixconv.ModeP})
	if err == nil {
		t.Fatalf("expected ConversionNotSupported for CMYK -> P")
	}
}
