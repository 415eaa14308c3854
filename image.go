package gradient

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
)

// ErrDimension is returned when a gradient can't be laid out as an image.
var ErrDimension = errors.New("invalid image dimensions")

// maxRows is the largest step count (or width) we will turn into an image.
const maxRows = math.MaxInt32

// Image renders the gradient as horizontal bands, one row per sample, each
// row Width() pixels wide and filled with a single color.
func (g *Gradient) Image() (*image.RGBA, error) {
	w, h := g.width, len(g.colors)
	if w <= 0 {
		return nil, fmt.Errorf("%w: width %d", ErrDimension, w)
	}
	if h > maxRows || w > maxRows {
		return nil, fmt.Errorf("%w: %d rows of %d pixels", ErrDimension, h, w)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y, c := range g.colors {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < len(row); x += 4 {
			row[x], row[x+1], row[x+2], row[x+3] = c.R, c.G, c.B, 0xff
		}
	}
	return img, nil
}

// SavePNG renders the gradient and writes it to filename using the
// configured Encoder (a PNG file by default).
func (g *Gradient) SavePNG(filename string) error {
	img, err := g.Image()
	if err != nil {
		return err
	}
	g.log.Debug().Str("file", filename).Int("width", img.Rect.Dx()).Int("height", img.Rect.Dy()).Msg("writing gradient")
	err = g.encoder.Encode(filename, img)
	if err != nil {
		return fmt.Errorf("writing gradient to %s: %w", filename, err)
	}
	return nil
}

func savePNG(filename string, img image.Image) error {
	return gg.SavePNG(filename, img)
}
