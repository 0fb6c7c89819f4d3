// Package palette implements the fixed 256-entry RGBA palette used by
// P-mode images, along with the standard palettes (greyscale ramp, browser
// colour cube) the quantizer synthesizes, and the nearest-colour cache that
// memoizes palette lookups during quantization.
package palette

// Size is the fixed number of entries in every Palette.
const Size = 256

// Entry is one RGBA palette slot.
type Entry struct {
	R, G, B, A uint8
}

// Palette holds 256 RGBA entries plus a lazily-prepared nearest-colour
// cache. The cache is nil until Prepare is called and is torn down by
// Discard; callers that quantize through a Palette must bracket the work
// with Prepare ... Discard, matching the state machine in §4.6.
type Palette struct {
	Entries [Size]Entry
	cache   *cache
}

// New returns a palette whose entries form the identity grey ramp:
// entry i is (i, i, i, 255). This is the default shape ImagingPaletteNew
// uses for an "RGB"-mode palette, and is what a single-band (greyscale)
// source is quantized against.
func New() *Palette {
	p := &Palette{}
	for i := 0; i < Size; i++ {
		v := uint8(i)
		p.Entries[i] = Entry{v, v, v, 255}
	}
	return p
}

// webRamp holds the six evenly-spaced channel values (0, 51, ..., 255)
// used by the 6x6x6 web-safe colour cube.
var webRamp = [6]uint8{0, 51, 102, 153, 204, 255}

// NewBrowserCube returns the standard "browser" palette: the 216-colour
// 6x6x6 web-safe cube in entries 0..215, with the remaining 40 entries
// left as the grey ramp (i, i, i, 255) — i.e. exactly what
// ImagingPaletteNewBrowser produces by building on top of the grey-ramp
// default and overwriting its first 216 slots.
func NewBrowserCube() *Palette {
	p := New()
	i := 0
	for _, r := range webRamp {
		for _, g := range webRamp {
			for _, b := range webRamp {
				p.Entries[i] = Entry{r, g, b, 255}
				i++
			}
		}
	}
	return p
}

// Duplicate returns an independent copy of p, including a copy of its
// entries but not its cache — the cache is always rebuilt by the new
// owner via Prepare.
func (p *Palette) Duplicate() *Palette {
	dup := &Palette{Entries: p.Entries}
	return dup
}

// Bytes returns the palette serialized as 256*4 bytes in RGBA order, the
// layout every consumer of a raw palette buffer (e.g. a P-mode Image)
// expects.
func (p *Palette) Bytes() []byte {
	out := make([]byte, Size*4)
	for i, e := range p.Entries {
		out[i*4+0] = e.R
		out[i*4+1] = e.G
		out[i*4+2] = e.B
		out[i*4+3] = e.A
	}
	return out
}
