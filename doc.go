// Package pixconv implements a pixel-format conversion engine: given a
// source raster in one of a fixed set of pixel modes, it produces a
// destination raster in another mode, performing the correct per-pixel
// transformation for that (source, destination) pair.
//
// The engine covers three kinds of work:
//   - Straight per-row shuffling between the "plain" modes (L, I, F, RGB,
//     RGBA, RGBX, RGBa, CMYK, YCbCr, the packed BGR modes, and the 16-bit
//     integer modes).
//   - Palette quantization: expanding a paletted (P-mode) image to any
//     plain mode, and reducing a greyscale or RGB-family image to a
//     256-entry palette, with an optional Floyd-Steinberg error-diffusion
//     variant.
//   - Bilevel (1-mode) error-diffusion dithering of greyscale or RGB
//     input.
//
// Image storage, palette construction beyond the two standard shapes, and
// the RGB<->YCbCr coefficients are the concern of collaborators: this
// package drives them through the Image/Container interfaces in image.go
// and the internal/yuv package, but does not own their implementation.
//
// Basic usage:
//
//	out, err := pixconv.Convert(container, src, pixconv.Options{
//		DestMode: pixconv.ModeRGBA,
//	})
package pixconv
