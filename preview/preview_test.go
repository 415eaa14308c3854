package preview

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/voidshard/gradient"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func background(s tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := s.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestDraw(t *testing.T) {
	s := newScreen(t, 10, 4)
	g, err := gradient.New(gradient.MustParseHex("#000000"), gradient.MustParseHex("#ffffff"), 8)
	if err != nil {
		t.Fatal(err)
	}

	Draw(s, g)

	for y := 0; y < 4; y++ {
		want := Color(g.At(y * 2))
		for x := 0; x < 10; x++ {
			if got := background(s, x, y); got != want {
				t.Errorf("cell (%d,%d) background = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDrawStretches(t *testing.T) {
	s := newScreen(t, 3, 6)
	g, err := gradient.New(gradient.MustParseHex("#ff0000"), gradient.MustParseHex("#0000ff"), 2)
	if err != nil {
		t.Fatal(err)
	}

	Draw(s, g)

	for y := 0; y < 6; y++ {
		want := Color(g.At(y * 2 / 6))
		if got := background(s, 1, y); got != want {
			t.Errorf("row %d background = %v, want %v", y, got, want)
		}
	}
}

func TestDrawEmpty(t *testing.T) {
	s := newScreen(t, 4, 2)
	g, err := gradient.New(gradient.Default(), gradient.Default(), 0)
	if err != nil {
		t.Fatal(err)
	}

	Draw(s, g)

	if got := background(s, 0, 0); got != tcell.ColorDefault {
		t.Errorf("background = %v, want default", got)
	}
}

func TestColor(t *testing.T) {
	r, g, b := Color(gradient.NewColor(12, 34, 56)).RGB()
	if r != 12 || g != 34 || b != 56 {
		t.Errorf("RGB() = %d %d %d", r, g, b)
	}
}
