// Command pixconv converts an image file from one pixel mode to another.
//
// Usage:
//
//	pixconv convert [options] <input>   PNG/JPEG/WebP -> PNG
//	pixconv modes                       List supported pixel modes
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/webp"

	"github.com/deepteams/pixconv"
	"github.com/deepteams/pixconv/raster"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "convert":
		err = runConvert(os.Args[2:])
	case "modes":
		runModes()
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "pixconv: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "pixconv: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  pixconv convert [options] <input>   Decode an image and re-encode it after
                                       conversion through a pixconv mode.
  pixconv modes                       List supported pixel modes.

Use "-" as input to read from stdin.

Run "pixconv convert -h" for convert-specific options.
`)
}

func runModes() {
	for _, name := range []string{
		"1", "L", "I", "F", "P", "RGB", "RGBA", "RGBX", "RGBa",
		"CMYK", "YCbCr", "BGR;15", "BGR;16", "BGR;24", "I;16", "I;16B",
	} {
		fmt.Println(name)
	}
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func decodeAny(r io.Reader) (image.Image, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if img, err := png.Decode(bytes.NewReader(buf)); err == nil {
		return img, nil
	}
	if img, err := jpeg.Decode(bytes.NewReader(buf)); err == nil {
		return img, nil
	}
	if img, err := webp.Decode(bytes.NewReader(buf)); err == nil {
		return img, nil
	}
	return nil, fmt.Errorf("unrecognized image format (tried PNG, JPEG, WebP)")
}

// rgbaFromImage converts any stdlib image.Image into a raster.Image backed
// by straight-alpha 4-byte RGBA pixels: the entry point into the pixconv
// engine for everything this command decodes.
func rgbaFromImage(src image.Image) *raster.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := raster.New(pixconv.ModeRGBA, w, h)
	for y := 0; y < h; y++ {
		row := out.RowBytes(y)
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			p := row[x*4:]
			p[0] = c.R
			p[1] = c.G
			p[2] = c.B
			p[3] = c.A
		}
	}
	return out
}

// stdImageFromRGBFamily renders a raster.Image in an RGB-family mode back
// into a stdlib image.Image so the result can go through image/png or
// image/jpeg. Only used when the requested destination mode round-trips
// through RGBA; for any other destination mode, convert reports the raw
// pixel statistics instead of attempting to re-encode a file format that
// cannot represent it directly.
func stdImageFromRGBFamily(img pixconv.Image) *image.NRGBA {
	w, h := img.Width(), img.Height()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := img.RowBytes(y)
		copy(out.Pix[y*out.Stride:y*out.Stride+w*4], row[:w*4])
	}
	return out
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	to := fs.String("to", "RGB", "destination pixel mode")
	out := fs.String("o", "out.png", "output PNG path")
	dither := fs.Bool("dither", false, "use Floyd-Steinberg error diffusion (palette/bilevel targets)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("convert: expected exactly one input path")
	}

	destMode, ok := pixconv.ParseMode(*to)
	if !ok {
		return fmt.Errorf("convert: unrecognized destination mode %q", *to)
	}

	f, err := openInput(fs.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	decoded, err := decodeAny(f)
	if err != nil {
		return err
	}

	src := rgbaFromImage(decoded)
	c := raster.Container{}
	converted, err := pixconv.Convert(c, src, pixconv.Options{DestMode: destMode, Dither: *dither})
	if err != nil {
		return err
	}

	if destMode.IsRGBFamily() || destMode == pixconv.ModeL {
		rgb, err := pixconv.Convert(c, converted, pixconv.Options{DestMode: pixconv.ModeRGB})
		if err != nil {
			return err
		}
		rgba, err := pixconv.Convert(c, rgb, pixconv.Options{DestMode: pixconv.ModeRGBA})
		if err != nil {
			return err
		}
		w, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer w.Close()
		return png.Encode(w, stdImageFromRGBFamily(rgba))
	}

	fmt.Printf("converted %dx%d %s -> %s (%d bytes/row)\n",
		converted.Width(), converted.Height(), src.ModeOf(), converted.ModeOf(), converted.Pitch())
	return nil
}
