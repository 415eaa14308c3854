package gradient

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Option is something that can be configured on a Gradient
type Option func(*Gradient) error

// Width sets a non-default width (in pixels) for rendered images.
func Width(i int) Option {
	return func(g *Gradient) error {
		if i <= 0 {
			return fmt.Errorf("width must be greater than zero, given %d", i)
		}
		g.width = i
		return nil
	}
}

// Logger traces each generated sample (weights, endpoints and result)
// at debug level. By default nothing is logged.
func Logger(l zerolog.Logger) Option {
	return func(g *Gradient) error {
		g.log = l
		return nil
	}
}

// WithEncoder replaces the default PNG writer used by SavePNG.
func WithEncoder(e Encoder) Option {
	return func(g *Gradient) error {
		if e == nil {
			return errors.New("encoder must not be nil")
		}
		g.encoder = e
		return nil
	}
}
