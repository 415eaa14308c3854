package gradient

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// blendTolerance is how far alpha+beta may drift from 1 before Blend panics.
// Weights like idx/steps + (steps-idx)/steps are not always exactly 1.0.
const blendTolerance = 1e-9

var (
	// ErrInvalidHex is returned when a string does not begin with #RRGGBB
	ErrInvalidHex = errors.New("invalid hex string")

	hexPrefix = regexp.MustCompile("^#[A-Fa-f0-9]{6}")
)

// Color is an 8 bit per channel RGB value.
//
// Colors are plain values; every operation returns a new Color.
type Color struct {
	R, G, B uint8
}

// NewColor returns the color with the given channels.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Default returns black, used as a placeholder before blending fills it in.
func Default() Color {
	return Color{}
}

// Random returns a color with each channel drawn uniformly from [0,255].
// If rng is nil the package level generator is used.
func Random(rng *rand.Rand) Color {
	intn := rand.IntN
	if rng != nil {
		intn = rng.IntN
	}
	return Color{
		R: uint8(intn(256)),
		G: uint8(intn(256)),
		B: uint8(intn(256)),
	}
}

// ParseHex reads a color from a string starting with #RRGGBB (any case).
// Anything after the first seven characters is ignored.
func ParseHex(s string) (Color, error) {
	if !hexPrefix.MatchString(s) {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	v, err := strconv.ParseUint(s[1:7], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustParseHex is like ParseHex but panics on bad input.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic("MustParseHex: " + err.Error())
	}
	return c
}

// ParseColor accepts either a #RRGGBB string or an SVG 1.1 color name
// such as "steelblue" (case insensitive).
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return ParseHex(s)
	}
	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return Color{}, fmt.Errorf("unknown color %q: %w", s, ErrInvalidHex)
	}
	return Color{R: named.R, G: named.G, B: named.B}, nil
}

// Blend returns c*alpha + other*beta.
//
// alpha and beta must sum to 1, anything else is a caller bug and panics.
// Channels are scaled (truncating) before they are added.
func (c Color) Blend(other Color, alpha, beta float64) Color {
	if math.Abs(alpha+beta-1) > blendTolerance {
		panic(fmt.Sprintf("blend weights must sum to 1, got %v + %v = %v", alpha, beta, alpha+beta))
	}
	return c.ScaleBy(alpha).Add(other.ScaleBy(beta))
}

// Add sums each channel. Sums over 255 wrap around, they are not clamped.
func (c Color) Add(other Color) Color {
	return Color{
		R: c.R + other.R,
		G: c.G + other.G,
		B: c.B + other.B,
	}
}

// ScaleBy multiplies each channel by f, truncating the result.
// Results outside [0,255] are clamped.
func (c Color) ScaleBy(f float64) Color {
	return Color{
		R: truncate(float64(c.R) * f),
		G: truncate(float64(c.G) * f),
		B: truncate(float64(c.B) * f),
	}
}

// Tuple returns the three channels in r, g, b order.
func (c Color) Tuple() (r, g, b uint8) {
	return c.R, c.G, c.B
}

// String formats the color as #rrggbb
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA implements image/color.Color. Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Colorful converts c for use with go-colorful's other color spaces.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// truncate converts to uint8, saturating at the ends of the range.
func truncate(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
