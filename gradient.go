package gradient

import (
	"errors"
	"fmt"
	"image/color"
	"iter"

	"github.com/rs/zerolog"
)

const (
	DefaultWidth    = 600 // pixels
	DefaultSteps    = 1024
	DefaultFilename = "gradient.png"
)

// ErrSteps is returned for a negative step count
var ErrSteps = errors.New("steps must not be negative")

// Gradient is an ordered series of colors blended between two endpoints.
//
// Samples are generated once by New and never change afterwards, except that
// Take may hand the backing slice over to the caller.
type Gradient struct {
	colors []Color
	start  Color
	end    Color
	steps  int

	width   int
	encoder Encoder
	log     zerolog.Logger
}

// Generate returns steps colors blended between start and end.
//
// Sample idx is start*(idx/steps) + end*((steps-idx)/steps), so index 0 is
// end and the series only approaches start, never reaching it.
func Generate(start, end Color, steps int) []Color {
	return generate(start, end, steps, zerolog.Nop())
}

func generate(start, end Color, steps int, log zerolog.Logger) []Color {
	if steps <= 0 {
		return []Color{}
	}
	out := make([]Color, steps)
	for idx := range out {
		a := float64(idx) / float64(steps)
		b := float64(steps-idx) / float64(steps)
		out[idx] = start.Blend(end, a, b)
		log.Debug().
			Int("idx", idx).
			Float64("a", a).
			Stringer("start", start).
			Float64("b", b).
			Stringer("end", end).
			Stringer("color", out[idx]).
			Msg("blend")
	}
	return out
}

// New generates a gradient of the given number of steps from start to end.
func New(start, end Color, steps int, opts ...Option) (*Gradient, error) {
	if steps < 0 {
		return nil, fmt.Errorf("%w, given %d", ErrSteps, steps)
	}
	g := &Gradient{
		start:   start,
		end:     end,
		steps:   steps,
		width:   DefaultWidth,
		encoder: EncoderFunc(savePNG),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		err := opt(g)
		if err != nil {
			return nil, err
		}
	}
	g.colors = generate(start, end, steps, g.log)
	return g, nil
}

// Start returns the start endpoint.
func (g *Gradient) Start() Color { return g.start }

// End returns the end endpoint.
func (g *Gradient) End() Color { return g.end }

// Steps returns the step count the gradient was generated with.
func (g *Gradient) Steps() int { return g.steps }

// Width returns the width in pixels of rendered images.
func (g *Gradient) Width() int { return g.width }

// Len returns how many samples are currently held (zero after Take).
func (g *Gradient) Len() int { return len(g.colors) }

// At returns sample i. It panics if i is out of range.
func (g *Gradient) At(i int) Color { return g.colors[i] }

// Colors returns a copy of the samples.
func (g *Gradient) Colors() []Color {
	out := make([]Color, len(g.colors))
	copy(out, g.colors)
	return out
}

// All iterates over the samples in order without consuming them.
func (g *Gradient) All() iter.Seq2[int, Color] {
	return func(yield func(int, Color) bool) {
		for i, c := range g.colors {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Take hands the samples over to the caller. The gradient is left empty,
// so a second call returns nil.
func (g *Gradient) Take() []Color {
	out := g.colors
	g.colors = nil
	return out
}

// ColorAt implements Pattern (and gg.Pattern); row y is sample y.
// Rows outside the gradient take the nearest sample.
func (g *Gradient) ColorAt(x, y int) color.Color {
	if len(g.colors) == 0 {
		return Default()
	}
	if y < 0 {
		y = 0
	} else if y >= len(g.colors) {
		y = len(g.colors) - 1
	}
	return g.colors[y]
}
