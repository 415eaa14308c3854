package gradient

import (
	"image"
	"image/color"
)

/*
Pattern matches github.com/fogleman/gg's Pattern, so a *Gradient can be
handed straight to gg.Context.SetFillStyle.
*/

type Pattern interface {
	ColorAt(x, y int) color.Color
}

// Encoder persists a rendered image under the given filename.
type Encoder interface {
	Encode(filename string, img image.Image) error
}

// EncoderFunc adapts a function like gg.SavePNG to an Encoder.
type EncoderFunc func(filename string, img image.Image) error

// Encode calls f(filename, img).
func (f EncoderFunc) Encode(filename string, img image.Image) error {
	return f(filename, img)
}

var _ Pattern = (*Gradient)(nil)
