package pixconv

import (
	"github.com/deepteams/pixconv/internal/clip"
	"github.com/deepteams/pixconv/internal/rowconv"
)

// toBilevelDither implements §4.5: Floyd-Steinberg binarization of an L or
// RGB source. It shares the diffuse helper and the rolling two-row scratch
// layout with the to-palette quantizer's dither path, restricted to a
// single channel.
func toBilevelDither(c Container, out Image, src Image) (Image, error) {
	srcMode := src.ModeOf()
	if srcMode != ModeL && srcMode != ModeRGB {
		return nil, errNotSupported(srcMode, Mode1)
	}

	width, height := src.Width(), src.Height()
	outImg, err := c.NewLike(Mode1, width, height, out, src)
	if err != nil {
		return nil, err
	}

	errCurr := make([]int32, width+2)
	errNext := make([]int32, width+2)

	for y := 0; y < height; y++ {
		for i := range errNext {
			errNext[i] = 0
		}

		srcRow := src.RowBytes(y)
		dstRow := outImg.RowBytes(y)

		for x := 0; x < width; x++ {
			var sample int
			if srcMode == ModeL {
				sample = int(srcRow[x])
			} else {
				p := srcRow[x*4:]
				sample = int(rowconv.Luma(p[0], p[1], p[2]) / 1000)
			}

			l := clip.Clip8(sample + int(errCurr[x+1])/16)

			var bit byte
			if l > 128 {
				bit = 255
			}
			dstRow[x] = bit

			diffuse(errCurr, errNext, x, int32(l)-int32(bit))
		}

		errCurr, errNext = errNext, errCurr
	}

	return outImg, nil
}
