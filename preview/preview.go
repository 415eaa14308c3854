// Package preview shows a gradient in a terminal, one band per screen row.
package preview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/voidshard/gradient"
)

// Draw paints g onto s. The gradient is squeezed (or stretched) to the
// screen height; every cell in a row gets that row's sample as background.
func Draw(s tcell.Screen, g *gradient.Gradient) {
	s.Clear()
	w, h := s.Size()
	n := g.Len()
	if n == 0 || w <= 0 || h <= 0 {
		return
	}
	for y := 0; y < h; y++ {
		style := tcell.StyleDefault.Background(Color(g.At(y * n / h)))
		for x := 0; x < w; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Color converts to a 24 bit terminal color.
func Color(c gradient.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Run initialises s, shows g and blocks until a key is pressed.
// The screen is finalised before returning.
func Run(s tcell.Screen, g *gradient.Gradient) error {
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	Draw(s, g)
	s.Show()
	for {
		switch s.PollEvent().(type) {
		case *tcell.EventResize:
			Draw(s, g)
			s.Sync()
		case *tcell.EventKey:
			return nil
		case nil: // screen finalised elsewhere
			return nil
		}
	}
}
