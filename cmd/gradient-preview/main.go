package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/voidshard/gradient"
	"github.com/voidshard/gradient/preview"
)

func main() {
	g, err := gradient.New(gradient.Random(nil), gradient.Random(nil), gradient.DefaultSteps)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if err := preview.Run(screen, g); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println(g.End(), "->", g.Start())
}
