package pixconv

import "github.com/deepteams/pixconv/internal/rowconv"

// shuffler converts exactly one scanline from src to dst. See
// internal/rowconv for the implementations; this package only knows which
// (src, dst) mode pair each one serves.
type shuffler func(dst, src []byte, width int)

// dispatch maps a (source mode, destination mode) pair to the shuffler that
// performs it. This is the deduplicated form of the table: the original
// converters[] array in the source repeats a few entries (RGBA->I and
// RGBA->F appear a second time under the RGBX block) as transcription
// artifacts, not intentional overrides, so each pair appears exactly once
// here.
var dispatch = map[[2]Mode]shuffler{
	{Mode1, ModeL}: rowconv.Bit2L,
	{Mode1, ModeI}: rowconv.Bit2I,
	{Mode1, ModeF}: rowconv.Bit2F,

	{Mode1, ModeRGB}:  rowconv.Bit2RGB,
	{Mode1, ModeRGBA}: rowconv.Bit2RGB,
	{Mode1, ModeRGBX}: rowconv.Bit2RGB,

	{Mode1, ModeCMYK}:  rowconv.Bit2CMYK,
	{Mode1, ModeYCbCr}: rowconv.Bit2YCbCr,

	{ModeL, Mode1}: rowconv.L2Bit,
	{ModeL, ModeI}: rowconv.L2I,
	{ModeL, ModeF}: rowconv.L2F,

	{ModeL, ModeRGB}:  rowconv.L2RGB,
	{ModeL, ModeRGBA}: rowconv.L2RGB,
	{ModeL, ModeRGBX}: rowconv.L2RGB,

	{ModeL, ModeCMYK}:  rowconv.L2CMYK,
	{ModeL, ModeYCbCr}: rowconv.L2YCbCr,

	{ModeI, ModeL}: rowconv.I2L,
	{ModeI, ModeF}: rowconv.I2F,

	{ModeF, ModeL}: rowconv.F2L,
	{ModeF, ModeI}: rowconv.F2I,

	{ModeRGB, Mode1}: rowconv.RGB2Bit,
	{ModeRGB, ModeL}: rowconv.RGB2L,
	{ModeRGB, ModeI}: rowconv.RGB2I,
	{ModeRGB, ModeF}: rowconv.RGB2F,

	{ModeRGB, ModeBGR15}: rowconv.RGB2BGR15,
	{ModeRGB, ModeBGR16}: rowconv.RGB2BGR16,
	{ModeRGB, ModeBGR24}: rowconv.RGB2BGR24,

	{ModeRGB, ModeRGBA}: rowconv.CopyRGBForceAlpha,
	{ModeRGB, ModeRGBX}: rowconv.CopyRGBForceAlpha,
	{ModeRGB, ModeCMYK}: rowconv.RGB2CMYK,
	{ModeRGB, ModeYCbCr}: rowconv.RGB2YCbCr,

	{ModeRGBA, Mode1}: rowconv.RGB2Bit,
	{ModeRGBA, ModeL}: rowconv.RGB2L,
	{ModeRGBA, ModeI}: rowconv.RGB2I,
	{ModeRGBA, ModeF}: rowconv.RGB2F,

	{ModeRGBA, ModeRGB}:   rowconv.CopyRGBForceAlpha,
	{ModeRGBA, ModeRGBa}:  rowconv.RGBA2RGBa,
	{ModeRGBA, ModeRGBX}:  rowconv.CopyRGBForceAlpha,
	{ModeRGBA, ModeCMYK}:  rowconv.RGB2CMYK,
	{ModeRGBA, ModeYCbCr}: rowconv.RGB2YCbCr,

	{ModeRGBX, Mode1}: rowconv.RGB2Bit,
	{ModeRGBX, ModeL}: rowconv.RGB2L,
	{ModeRGBX, ModeI}: rowconv.RGB2I,
	{ModeRGBX, ModeF}: rowconv.RGB2F,

	{ModeRGBX, ModeRGB}:   rowconv.CopyRGBForceAlpha,
	{ModeRGBX, ModeCMYK}:  rowconv.RGB2CMYK,
	{ModeRGBX, ModeYCbCr}: rowconv.RGB2YCbCr,

	{ModeCMYK, ModeRGB}:  rowconv.CMYK2RGB,
	{ModeCMYK, ModeRGBA}: rowconv.CMYK2RGB,
	{ModeCMYK, ModeRGBX}: rowconv.CMYK2RGB,

	{ModeYCbCr, ModeL}:   rowconv.YCbCr2L,
	{ModeYCbCr, ModeRGB}: rowconv.YCbCr2RGB,

	{ModeI, ModeI16}:  rowconv.I2I16,
	{ModeI16, ModeI}:  rowconv.I162I,
	{ModeI, ModeI16B}: rowconv.I2I16B,
	{ModeI16B, ModeI}: rowconv.I16B2I,
}

// Options controls a Convert call beyond the bare (src mode, dst mode,
// image) triple.
type Options struct {
	// Out, if non-nil, is validated and reused as the destination image
	// instead of allocating a fresh one.
	Out Image
	// DestMode is the target pixel mode. If zero (ModeInvalid) the source
	// image must carry a palette (src.Palette() non-nil); the destination
	// mode then becomes ModeRGB.
	DestMode Mode
	// SrcPalette overrides the palette used for frompalette expansion.
	// If nil, src.Palette() is used. Ignored for conversions that are
	// not FROM a ModeP source.
	SrcPalette *Palette
	// Dither enables Floyd-Steinberg error diffusion for to-palette
	// quantization and, when DestMode is Mode1, for bilevel conversion.
	Dither bool
}

// Convert performs the full conversion pipeline described in §4.2: same
// -mode copy, palette expansion/quantization special cases, bilevel
// dithering, or a plain per-row shuffle, in that priority order.
func Convert(c Container, src Image, opts Options) (Image, error) {
	if src == nil {
		return nil, errBadMode("nil source image")
	}

	destMode := opts.DestMode
	if destMode == ModeInvalid {
		pal := src.Palette()
		if pal == nil {
			return nil, errBadMode("destination mode omitted but source has no palette")
		}
		destMode = ModeRGB
	}
	if !destMode.Valid() {
		return nil, errBadMode("unrecognized destination mode %d", int(destMode))
	}

	srcMode := src.ModeOf()

	if srcMode == destMode {
		return c.Copy(opts.Out, src)
	}

	if srcMode == ModeP {
		pal := opts.SrcPalette
		if pal == nil {
			pal = src.Palette()
		}
		if pal == nil {
			return nil, errBadMode("palette source has no palette")
		}
		return fromPalette(c, opts.Out, src, pal, destMode)
	}

	if destMode == ModeP {
		return toPalette(c, opts.Out, src, opts.Dither)
	}

	if destMode == Mode1 && opts.Dither {
		return toBilevelDither(c, opts.Out, src)
	}

	fn, ok := dispatch[[2]Mode{srcMode, destMode}]
	if !ok {
		return nil, errNotSupported(srcMode, destMode)
	}

	out, err := c.NewLike(destMode, src.Width(), src.Height(), opts.Out, src)
	if err != nil {
		return nil, err
	}

	width := src.Width()
	for y := 0; y < src.Height(); y++ {
		fn(out.RowBytes(y), src.RowBytes(y), width)
	}

	return out, nil
}
